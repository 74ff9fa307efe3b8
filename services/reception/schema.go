package reception

import "strings"

// FunctionSpec describes one operation the language model may call. The
// names and parameter keys are a fixed wire contract shared with stored
// session documents; changing them breaks replay of old sessions.
type FunctionSpec struct {
	Name        string
	Description string
	Required    []string
	Optional    []string
}

// FunctionSchemas is the canonical callable set, in the order they are
// presented to the model.
var FunctionSchemas = []FunctionSpec{
	{
		Name:        "bookRoom",
		Description: "Book a room for the guest.",
		Required:    []string{"roomId", "checkInDate", "checkOutDate", "guestName", "guestEmail"},
		Optional:    []string{"guestCount", "specialRequests"},
	},
	{
		Name:        "upgradeRoom",
		Description: "Move an existing booking to a different room.",
		Required:    []string{"bookingId", "newRoomId"},
	},
	{
		Name:        "getRoomAvailability",
		Description: "List rooms available to book.",
		Optional:    []string{"roomType", "checkInDate", "checkOutDate"},
	},
	{
		Name:        "submitComplaint",
		Description: "Record a guest complaint for follow-up.",
		Required:    []string{"subject", "description", "category", "priority"},
	},
	{
		Name:        "getBookingDetails",
		Description: "Fetch one booking; defaults to the guest's most recent.",
		Optional:    []string{"bookingId"},
	},
	{
		Name:        "cancelBooking",
		Description: "Cancel one of the guest's bookings.",
		Required:    []string{"bookingId"},
	},
	{
		Name:        "orderFood",
		Description: "Place a room-service food order.",
		Required:    []string{"items"},
	},
	{
		Name:        "processCheckInOut",
		Description: "Check the guest in or out of a booking.",
		Required:    []string{"bookingId", "action"},
	},
	{
		Name:        "getUserBookings",
		Description: "List all of the guest's bookings.",
	},
}

// KnownFunction reports whether name is in the callable set.
func KnownFunction(name string) bool {
	for _, f := range FunctionSchemas {
		if f.Name == name {
			return true
		}
	}
	return false
}

// renderSchemas formats the callable set for inclusion in a prompt.
func renderSchemas() string {
	var sb strings.Builder
	for _, f := range FunctionSchemas {
		sb.WriteString("- ")
		sb.WriteString(f.Name)
		sb.WriteByte('(')
		parts := make([]string, 0, len(f.Required)+len(f.Optional))
		parts = append(parts, f.Required...)
		for _, p := range f.Optional {
			parts = append(parts, p+"?")
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("): ")
		sb.WriteString(f.Description)
		sb.WriteByte('\n')
	}
	return sb.String()
}
