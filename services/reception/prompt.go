package reception

import (
	"encoding/json"
	"fmt"
	"strings"

	"ybhotels/models"
	"ybhotels/services/retrieval"
)

// PromptContext is everything the prompt builder needs about one turn.
type PromptContext struct {
	Hotel     *models.HotelInfo
	Caller    *models.User
	Rooms     []models.Room
	Bookings  []models.Booking
	Documents []retrieval.Document
	History   []models.ReceptionMessage
}

// BuildPrompt assembles the full instruction for the language model: the
// assistant persona, caller identity, hotel data, retrieved context, the
// callable function set, and the strict JSON-only-when-calling contract.
func BuildPrompt(pc PromptContext, query string) string {
	var sb strings.Builder

	hotelName := "our hotel"
	if pc.Hotel != nil && pc.Hotel.Name != "" {
		hotelName = pc.Hotel.Name
	}
	fmt.Fprintf(&sb, "Your name is Laura and you are the receptionist for %s. Be helpful, friendly, and concise; keep responses under 100 words.\n\n", hotelName)

	sb.WriteString("CURRENT GUEST:\n")
	if pc.Caller != nil {
		fmt.Fprintf(&sb, "- Name: %s\n- Email: %s\n- User ID: %s\n", pc.Caller.Name, pc.Caller.Email, pc.Caller.ID)
	} else {
		sb.WriteString("Guest is not identified.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("HOTEL INFORMATION:\n")
	if pc.Hotel != nil {
		if pc.Hotel.Address != "" {
			fmt.Fprintf(&sb, "- Address: %s\n", pc.Hotel.Address)
		}
		if pc.Hotel.CheckInTime != "" {
			fmt.Fprintf(&sb, "- Check-in time: %s\n- Check-out time: %s\n", pc.Hotel.CheckInTime, pc.Hotel.CheckOutTime)
		}
		if len(pc.Hotel.Amenities) > 0 {
			fmt.Fprintf(&sb, "- Amenities: %s\n", strings.Join(pc.Hotel.Amenities, ", "))
		}
		if len(pc.Hotel.FoodMenu) > 0 {
			fmt.Fprintf(&sb, "- Food menu: %s\n", strings.Join(pc.Hotel.FoodMenu, ", "))
		}
	}
	fmt.Fprintf(&sb, "- Rooms: %s\n", asJSON(pc.Rooms))
	if len(pc.Bookings) > 0 {
		fmt.Fprintf(&sb, "- Guest's bookings: %s\n", asJSON(pc.Bookings))
	}
	sb.WriteString("\n")

	if len(pc.Documents) > 0 {
		fmt.Fprintf(&sb, "RETRIEVED RELEVANT RECORDS:\n%s\n\n", asJSON(pc.Documents))
	}

	if len(pc.History) > 0 {
		sb.WriteString("CONVERSATION SO FAR:\n")
		for _, turn := range pc.History {
			fmt.Fprintf(&sb, "Guest: %s\n", turn.Transcript)
			if turn.Result != "" {
				fmt.Fprintf(&sb, "Laura: %s\n", turn.Result)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("AVAILABLE FUNCTIONS:\n")
	sb.WriteString(renderSchemas())
	sb.WriteString("\n")

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("If the guest's request requires a real-time action, respond with VALID JSON AND NOTHING ELSE, exactly this shape:\n")
	sb.WriteString(`{"functionCall": {"name": "functionName", "parameters": {"param1": "value1"}}, "userResponse": "What you tell the guest"}` + "\n")
	sb.WriteString("Do not include any text before or after the JSON. If no action is needed, respond with plain text, never JSON.\n")
	if pc.Caller != nil {
		fmt.Fprintf(&sb, "When booking, fill guestName with %q and guestEmail with %q from the profile above; never ask the guest for them.\n", pc.Caller.Name, pc.Caller.Email)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "GUEST QUERY: %s\n", query)
	return sb.String()
}

func asJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
