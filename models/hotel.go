package models

// HotelInfo is the single hotel profile document used to ground the
// assistant's replies.
type HotelInfo struct {
	Name         string   `bson:"name" json:"name"`
	Address      string   `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string   `bson:"email,omitempty" json:"email,omitempty"`
	CheckInTime  string   `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime string   `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	Amenities    []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	FoodMenu     []string `bson:"foodMenu,omitempty" json:"foodMenu,omitempty"`
}
