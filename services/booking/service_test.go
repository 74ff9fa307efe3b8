package booking

import (
	"context"
	"testing"

	"ybhotels/models"
	"ybhotels/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom() models.Room {
	return models.Room{
		ID:            "r1",
		Name:          "Ocean View",
		Type:          models.RoomTypeDeluxe,
		PricePerNight: 100,
		Capacity:      2,
		Status:        models.RoomStatusAvailable,
	}
}

func TestBookRoomPricingAndConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService(testRoom())

	first, err := svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(3),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, first.Status)
	assert.InDelta(t, 200.0, first.TotalPrice, 0.001)
	assert.Equal(t, "Ocean View", first.RoomName)
	assert.NotEmpty(t, first.ID)

	// Overlapping stay on the same room is rejected with the range named.
	_, err = svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u2",
		CheckInDate:  futureDate(2),
		CheckOutDate: futureDate(4),
		GuestCount:   1,
	})
	require.Error(t, err)
	svcErr := err.(*Error)
	assert.Equal(t, CodeConflict, svcErr.Code)
	assert.Contains(t, svcErr.Message, "already booked")

	// A stay starting on the first booking's check-out day is fine.
	third, err := svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u2",
		CheckInDate:  futureDate(3),
		CheckOutDate: futureDate(5),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 200.0, third.TotalPrice, 0.001)
}

func TestBookRoomValidation(t *testing.T) {
	ctx := context.Background()
	svc, rooms, _, _, _ := newTestService(testRoom())

	_, err := svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(3),
		GuestCount:   5,
	})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, err.(*Error).Code)

	_, err = svc.BookRoom(ctx, BookRequest{
		RoomID:       "missing",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(3),
	})
	require.Error(t, err)

	require.NoError(t, rooms.SetStatus(ctx, "r1", models.RoomStatusMaintenance))
	_, err = svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(3),
	})
	require.Error(t, err)
	assert.Equal(t, CodeConflict, err.(*Error).Code)
}

func TestBookRoomDefaultsGuestCount(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService(testRoom())

	b, err := svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.GuestCount)
	assert.InDelta(t, 100.0, b.TotalPrice, 0.001)
}

func TestBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService(testRoom())

	created, err := svc.BookRoom(ctx, BookRequest{
		RoomID:       "r1",
		UserID:       "u1",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(3),
		GuestCount:   2,
	})
	require.NoError(t, err)

	fetched, err := svc.GetBookingDetails(ctx, created.ID, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, created.RoomID, fetched.RoomID)
	assert.Equal(t, created.CheckInDate, fetched.CheckInDate)
	assert.Equal(t, created.CheckOutDate, fetched.CheckOutDate)
	assert.InDelta(t, created.TotalPrice, fetched.TotalPrice, 0.001)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("pending cancel frees the room", func(t *testing.T) {
		svc, rooms, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", RoomName: "Ocean View", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusPending,
		})
		msg, err := svc.CancelBooking(ctx, b.ID, "u1", false)
		require.NoError(t, err)
		assert.Contains(t, msg, "cancelled")

		stored, _ := bookings.GetByID(ctx, b.ID)
		assert.Equal(t, models.BookingStatusCancelled, stored.Status)
		room, _ := rooms.GetByID(ctx, "r1")
		assert.Equal(t, models.RoomStatusAvailable, room.Status)
	})

	t.Run("completed cancel is rejected", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusCompleted,
		})
		_, err := svc.CancelBooking(ctx, b.ID, "u1", true)
		require.Error(t, err)
		assert.Equal(t, CodeState, err.(*Error).Code)
	})

	t.Run("already cancelled is a friendly no-op", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", RoomName: "Ocean View", UserID: "u1",
			Status: models.BookingStatusCancelled,
		})
		msg, err := svc.CancelBooking(ctx, b.ID, "u1", false)
		require.NoError(t, err)
		assert.Contains(t, msg, "already cancelled")
	})

	t.Run("guest cannot cancel another guest's booking", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusPending,
		})
		_, err := svc.CancelBooking(ctx, b.ID, "someone-else", false)
		require.Error(t, err)
		assert.Equal(t, CodePermission, err.(*Error).Code)
	})

	t.Run("guest cannot cancel a confirmed booking", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusConfirmed,
		})
		_, err := svc.CancelBooking(ctx, b.ID, "u1", false)
		require.Error(t, err)
		assert.Equal(t, CodeState, err.(*Error).Code)
	})

	t.Run("admin can cancel a confirmed booking", func(t *testing.T) {
		svc, _, bookings, _, notifier := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", RoomName: "Ocean View", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusConfirmed,
		})
		_, err := svc.CancelBooking(ctx, b.ID, "admin-1", true)
		require.NoError(t, err)
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "u1", notifier.sent[0].UserID)
		assert.Equal(t, "Booking cancelled", notifier.sent[0].Title)
	})

	t.Run("guest cancel blocked after check-in date passed", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		past := utils.Today().AddDate(0, 0, -3).Format(utils.DateLayout)
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: past, CheckOutDate: futureDate(1),
			Status: models.BookingStatusPending,
		})
		_, err := svc.CancelBooking(ctx, b.ID, "u1", false)
		require.Error(t, err)
		assert.Contains(t, err.(*Error).Message, "front desk")
	})
}

func TestCheckInAndOut(t *testing.T) {
	ctx := context.Background()

	t.Run("check-in requires confirmed status", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(0), CheckOutDate: futureDate(2),
			Status: models.BookingStatusPending,
		})
		_, err := svc.CheckIn(ctx, b.ID, "u1", false)
		require.Error(t, err)
		assert.Equal(t, CodeState, err.(*Error).Code)
	})

	t.Run("check-in before the stay starts is rejected", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(5), CheckOutDate: futureDate(7),
			Status: models.BookingStatusConfirmed,
		})
		_, err := svc.CheckIn(ctx, b.ID, "u1", false)
		require.Error(t, err)
	})

	t.Run("full stay lifecycle", func(t *testing.T) {
		svc, rooms, bookings, _, notifier := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", RoomName: "Ocean View", UserID: "u1",
			CheckInDate: futureDate(0), CheckOutDate: futureDate(2),
			Status: models.BookingStatusConfirmed,
		})

		checkedIn, err := svc.CheckIn(ctx, b.ID, "u1", false)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCheckedIn, checkedIn.Status)
		room, _ := rooms.GetByID(ctx, "r1")
		assert.Equal(t, models.RoomStatusBooked, room.Status)

		// Checking out anything but a checked-in booking fails.
		_, err = svc.CheckOut(ctx, "missing", "u1", false)
		require.Error(t, err)

		checkedOut, err := svc.CheckOut(ctx, b.ID, "u1", false)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCompleted, checkedOut.Status)
		room, _ = rooms.GetByID(ctx, "r1")
		assert.Equal(t, models.RoomStatusAvailable, room.Status)

		require.Len(t, notifier.sent, 2)
		assert.Equal(t, "Checked in", notifier.sent[0].Title)
		assert.Equal(t, "Checked out", notifier.sent[1].Title)
	})
}

func TestUpgradeRoom(t *testing.T) {
	ctx := context.Background()
	second := models.Room{
		ID: "r2", Name: "Penthouse", Type: models.RoomTypeSuite,
		PricePerNight: 250, Capacity: 4, Status: models.RoomStatusAvailable,
	}
	svc, _, bookings, _, _ := newTestService(testRoom(), second)

	b := bookings.put(models.Booking{
		RoomID: "r1", RoomName: "Ocean View", UserID: "u1",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
		GuestCount: 2, TotalPrice: 300,
		Status: models.BookingStatusConfirmed,
	})

	upgraded, err := svc.UpgradeRoom(ctx, b.ID, "r2", "u1", false)
	require.NoError(t, err)
	assert.Equal(t, "Penthouse", upgraded.RoomName)
	assert.InDelta(t, 750.0, upgraded.TotalPrice, 0.001) // 2 nights * 250 * 1.5

	stored, _ := bookings.GetByID(ctx, b.ID)
	assert.Equal(t, "r2", stored.RoomID)
}

func TestUpgradeRoomConflict(t *testing.T) {
	ctx := context.Background()
	second := models.Room{
		ID: "r2", Name: "Penthouse", PricePerNight: 250, Capacity: 4,
		Status: models.RoomStatusAvailable,
	}
	svc, _, bookings, _, _ := newTestService(testRoom(), second)

	bookings.put(models.Booking{
		RoomID: "r2", UserID: "other",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(4),
		Status: models.BookingStatusConfirmed,
	})
	b := bookings.put(models.Booking{
		RoomID: "r1", UserID: "u1",
		CheckInDate: futureDate(2), CheckOutDate: futureDate(3),
		GuestCount: 1, Status: models.BookingStatusPending,
	})

	_, err := svc.UpgradeRoom(ctx, b.ID, "r2", "u1", false)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, err.(*Error).Code)
}

func TestBookingOwnership(t *testing.T) {
	ctx := context.Background()
	second := models.Room{
		ID: "r2", Name: "Penthouse", PricePerNight: 250, Capacity: 4,
		Status: models.RoomStatusAvailable,
	}

	t.Run("check-in by another guest is rejected without mutation", func(t *testing.T) {
		svc, rooms, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(0), CheckOutDate: futureDate(2),
			Status: models.BookingStatusConfirmed,
		})
		_, err := svc.CheckIn(ctx, b.ID, "intruder", false)
		require.Error(t, err)
		assert.Equal(t, CodePermission, err.(*Error).Code)

		stored, _ := bookings.GetByID(ctx, b.ID)
		assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
		room, _ := rooms.GetByID(ctx, "r1")
		assert.Equal(t, models.RoomStatusAvailable, room.Status)
	})

	t.Run("check-out by another guest is rejected without mutation", func(t *testing.T) {
		svc, rooms, bookings, _, _ := newTestService(testRoom())
		require.NoError(t, rooms.SetStatus(ctx, "r1", models.RoomStatusBooked))
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(-1), CheckOutDate: futureDate(1),
			Status: models.BookingStatusCheckedIn,
		})
		_, err := svc.CheckOut(ctx, b.ID, "intruder", false)
		require.Error(t, err)
		assert.Equal(t, CodePermission, err.(*Error).Code)

		stored, _ := bookings.GetByID(ctx, b.ID)
		assert.Equal(t, models.BookingStatusCheckedIn, stored.Status)
		room, _ := rooms.GetByID(ctx, "r1")
		assert.Equal(t, models.RoomStatusBooked, room.Status)
	})

	t.Run("upgrade by another guest is rejected", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom(), second)
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1", GuestCount: 1,
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusPending,
		})
		_, err := svc.UpgradeRoom(ctx, b.ID, "r2", "intruder", false)
		require.Error(t, err)
		assert.Equal(t, CodePermission, err.(*Error).Code)

		stored, _ := bookings.GetByID(ctx, b.ID)
		assert.Equal(t, "r1", stored.RoomID)
	})

	t.Run("details of another guest's booking are withheld", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(1), CheckOutDate: futureDate(3),
			Status: models.BookingStatusConfirmed,
		})
		_, err := svc.GetBookingDetails(ctx, b.ID, "intruder", false)
		require.Error(t, err)
		assert.Equal(t, CodePermission, err.(*Error).Code)
	})

	t.Run("admin may act on any booking", func(t *testing.T) {
		svc, _, bookings, _, _ := newTestService(testRoom())
		b := bookings.put(models.Booking{
			RoomID: "r1", UserID: "u1",
			CheckInDate: futureDate(0), CheckOutDate: futureDate(2),
			Status: models.BookingStatusConfirmed,
		})
		fetched, err := svc.GetBookingDetails(ctx, b.ID, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, "u1", fetched.UserID)

		_, err = svc.CheckIn(ctx, b.ID, "admin-1", true)
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, b.ID, "admin-1", true)
		require.NoError(t, err)
	})
}

func TestGetRoomAvailability(t *testing.T) {
	ctx := context.Background()
	second := models.Room{
		ID: "r2", Name: "Penthouse", Type: models.RoomTypeSuite,
		PricePerNight: 250, Capacity: 4, Status: models.RoomStatusAvailable,
	}
	maintenance := models.Room{
		ID: "r3", Name: "Basement", Type: models.RoomTypeStandard,
		PricePerNight: 50, Capacity: 2, Status: models.RoomStatusMaintenance,
	}
	svc, _, bookings, _, _ := newTestService(testRoom(), second, maintenance)

	bookings.put(models.Booking{
		RoomID: "r1", UserID: "other",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(4),
		Status: models.BookingStatusConfirmed,
	})

	t.Run("date query excludes occupied and maintenance rooms", func(t *testing.T) {
		rooms, err := svc.GetRoomAvailability(ctx, "", futureDate(2), futureDate(3))
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "r2", rooms[0].ID)
	})

	t.Run("boundary dates do not conflict", func(t *testing.T) {
		rooms, err := svc.GetRoomAvailability(ctx, "", futureDate(4), futureDate(6))
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})

	t.Run("type filter applies", func(t *testing.T) {
		rooms, err := svc.GetRoomAvailability(ctx, models.RoomTypeSuite, "", "")
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "Penthouse", rooms[0].Name)
	})
}

func TestOrderFood(t *testing.T) {
	ctx := context.Background()

	t.Run("empty order creates nothing", func(t *testing.T) {
		svc, _, _, orders, _ := newTestService()
		_, _, err := svc.OrderFood(ctx, "u1", nil)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, err.(*Error).Code)
		assert.Empty(t, orders.orders)

		_, _, err = svc.OrderFood(ctx, "u1", []string{"  ", ""})
		require.Error(t, err)
		assert.Empty(t, orders.orders)
	})

	t.Run("order is persisted and confirmed naturally", func(t *testing.T) {
		svc, _, _, orders, _ := newTestService()
		msg, order, err := svc.OrderFood(ctx, "u1", []string{"tea", "toast", "eggs"})
		require.NoError(t, err)
		assert.Contains(t, msg, "tea, toast, and eggs")
		assert.Equal(t, "pending", order.Status)
		require.Len(t, orders.orders, 1)
		assert.Equal(t, []string{"tea", "toast", "eggs"}, orders.orders[0].Items)
	})
}

func TestJoinNaturally(t *testing.T) {
	assert.Equal(t, "", JoinNaturally(nil))
	assert.Equal(t, "tea", JoinNaturally([]string{"tea"}))
	assert.Equal(t, "tea and toast", JoinNaturally([]string{"tea", "toast"}))
	assert.Equal(t, "tea, toast, and eggs", JoinNaturally([]string{"tea", "toast", "eggs"}))
}

func TestSubmitComplaint(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	t.Run("high priority promises 24 hours", func(t *testing.T) {
		msg, complaint, err := svc.SubmitComplaint(ctx, "u1", "Noisy neighbours", "Room 12 is loud at night", "room", "high")
		require.NoError(t, err)
		assert.Contains(t, msg, "24 hours")
		assert.Equal(t, "open", complaint.Status)
	})

	t.Run("default priority promises 48 hours", func(t *testing.T) {
		msg, complaint, err := svc.SubmitComplaint(ctx, "u1", "", "The shower is cold", "", "")
		require.NoError(t, err)
		assert.Contains(t, msg, "48 hours")
		assert.Equal(t, "medium", complaint.Priority)
		assert.Equal(t, "The shower is cold", complaint.Subject)
	})

	t.Run("empty complaint rejected", func(t *testing.T) {
		_, _, err := svc.SubmitComplaint(ctx, "u1", "", "", "", "")
		require.Error(t, err)
	})
}

func TestCandidates(t *testing.T) {
	ctx := context.Background()
	svc, _, bookings, _, _ := newTestService(testRoom())

	pendingOld := bookings.put(models.Booking{
		RoomID: "r1", UserID: "u1", CheckInDate: futureDate(2), CheckOutDate: futureDate(3),
		Status: models.BookingStatusPending,
	})
	pendingNew := bookings.put(models.Booking{
		RoomID: "r1", UserID: "u1", CheckInDate: futureDate(8), CheckOutDate: futureDate(9),
		Status: models.BookingStatusPending,
	})
	confirmed := bookings.put(models.Booking{
		RoomID: "r1", UserID: "u1", CheckInDate: futureDate(5), CheckOutDate: futureDate(6),
		Status: models.BookingStatusConfirmed,
	})
	checkedIn := bookings.put(models.Booking{
		RoomID: "r1", UserID: "u1", CheckInDate: futureDate(0), CheckOutDate: futureDate(1),
		Status: models.BookingStatusCheckedIn,
	})

	cancel, err := svc.CancellationCandidate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, pendingNew.ID, cancel.ID)
	assert.NotEqual(t, pendingOld.ID, cancel.ID)

	in, err := svc.CheckInCandidate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, in.ID)

	out, err := svc.CheckOutCandidate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, checkedIn.ID, out.ID)

	_, err = svc.CancellationCandidate(ctx, "nobody")
	require.Error(t, err)
}
