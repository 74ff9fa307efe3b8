// File: ybhotels/handlers/handlerBundle.go
package handlers

import (
	userRepoPkg "ybhotels/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Reception     *ReceptionHandler
	Rooms         *RoomHandler
	Bookings      *BookingHandler
	Orders        *OrderHandler
	Complaints    *ComplaintHandler
	Notifications *NotificationHandler
	Users         *UserHandler
	Admin         *AdminHandler
}
