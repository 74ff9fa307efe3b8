package booking

import (
	"context"

	"ybhotels/models"
)

// GetRoomAvailability lists bookable rooms, optionally narrowed by type and
// by a date range. With dates, a room counts as available when no active
// booking overlaps the requested range; without dates, the room's own status
// field decides. Maintenance rooms are never offered.
func (s *Service) GetRoomAvailability(ctx context.Context, roomType, checkIn, checkOut string) ([]models.Room, error) {
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, NewStoreError("I couldn't look up our rooms right now. Please try again.")
	}

	byDates := checkIn != "" && checkOut != ""
	if byDates {
		if _, err := ValidateStay(checkIn, checkOut); err != nil {
			return nil, err
		}
	}

	available := make([]models.Room, 0, len(rooms))
	for i := range rooms {
		room := rooms[i]
		if roomType != "" && room.Type != roomType {
			continue
		}
		if room.Status == models.RoomStatusMaintenance {
			continue
		}
		if !byDates {
			if room.Status == models.RoomStatusAvailable {
				available = append(available, room)
			}
			continue
		}
		free, err := s.roomFreeForRange(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, room)
		}
	}
	return available, nil
}

func (s *Service) roomFreeForRange(ctx context.Context, roomID, checkIn, checkOut string) (bool, error) {
	existing, err := s.Bookings.GetActiveByRoomID(ctx, roomID)
	if err != nil {
		return false, NewStoreError("I couldn't check room availability right now. Please try again.")
	}
	for i := range existing {
		if Overlaps(checkIn, checkOut, existing[i].CheckInDate, existing[i].CheckOutDate) {
			return false, nil
		}
	}
	return true, nil
}
