package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"ybhotels/models"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the MongoDB implementations closely
// enough for service-level tests, including the exclusive-create conflict
// check.

type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[string]*models.Room)}
	for i := range rooms {
		r := rooms[i]
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		repo.rooms[r.ID] = &r
	}
	return repo
}

func (f *fakeRoomRepo) Create(ctx context.Context, room models.Room) (string, error) {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	f.rooms[room.ID] = &room
	return room.ID, nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	return room, nil
}

func (f *fakeRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRoomRepo) GetByStatus(ctx context.Context, status string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	room, ok := f.rooms[id]
	if !ok {
		return errors.New("room not found")
	}
	if status, ok := fields["status"].(string); ok {
		room.Status = status
	}
	return nil
}

func (f *fakeRoomRepo) SetStatus(ctx context.Context, id string, status string) error {
	room, ok := f.rooms[id]
	if !ok {
		return errors.New("room not found")
	}
	room.Status = status
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error {
	delete(f.rooms, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) put(b models.Booking) *models.Booking {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	f.bookings[b.ID] = &b
	return f.bookings[b.ID]
}

func (f *fakeBookingRepo) CreateExclusive(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	active, _ := f.GetActiveByRoomID(ctx, booking.RoomID)
	for i := range active {
		if booking.CheckInDate < active[i].CheckOutDate && booking.CheckOutDate > active[i].CheckInDate {
			conflict := active[i]
			return &conflict, nil
		}
	}
	stored := f.put(*booking)
	*booking = *stored
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) GetActiveByRoomID(ctx context.Context, roomID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		for _, status := range models.ActiveBookingStatuses {
			if b.Status == status {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	for k, v := range fields {
		switch k {
		case "status":
			b.Status, _ = v.(string)
		case "roomId":
			b.RoomID, _ = v.(string)
		case "roomName":
			b.RoomName, _ = v.(string)
		case "totalPrice":
			b.TotalPrice, _ = v.(float64)
		case "checkedInAt":
			if ts, ok := v.(time.Time); ok {
				b.CheckedInAt = ts
			}
		case "checkedOutAt":
			if ts, ok := v.(time.Time); ok {
				b.CheckedOutAt = ts
			}
		}
	}
	b.UpdatedAt = time.Now().UTC()
	return nil
}

type fakeOrderRepo struct {
	orders []models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	f.orders = append(f.orders, order)
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func (f *fakeOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	return f.orders, nil
}

type fakeComplaintRepo struct {
	complaints []models.Complaint
}

func (f *fakeComplaintRepo) Create(ctx context.Context, complaint models.Complaint) (string, error) {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	f.complaints = append(f.complaints, complaint)
	return complaint.ID, nil
}

func (f *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			return &f.complaints[i], nil
		}
	}
	return nil, errors.New("complaint not found")
}

func (f *fakeComplaintRepo) GetByUserID(ctx context.Context, userID string) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range f.complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplaintRepo) GetAll(ctx context.Context) ([]models.Complaint, error) {
	return f.complaints, nil
}

func (f *fakeComplaintRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			if resp, ok := fields["response"].(string); ok {
				f.complaints[i].Response = resp
			}
			if status, ok := fields["status"].(string); ok {
				f.complaints[i].Status = status
			}
			return nil
		}
	}
	return errors.New("complaint not found")
}

type sentNotification struct {
	UserID  string
	Title   string
	Message string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) NotifyUser(ctx context.Context, userID, title, message string) error {
	f.sent = append(f.sent, sentNotification{UserID: userID, Title: title, Message: message})
	return nil
}

// newTestService wires a Service over fresh fakes.
func newTestService(rooms ...models.Room) (*Service, *fakeRoomRepo, *fakeBookingRepo, *fakeOrderRepo, *fakeNotifier) {
	roomRepo := newFakeRoomRepo(rooms...)
	bookingRepo := newFakeBookingRepo()
	orderRepo := &fakeOrderRepo{}
	complaintRepo := &fakeComplaintRepo{}
	notifier := &fakeNotifier{}
	machine := NewStateMachine(bookingRepo, roomRepo, notifier)
	svc := NewService(roomRepo, bookingRepo, orderRepo, complaintRepo, machine)
	return svc, roomRepo, bookingRepo, orderRepo, notifier
}
