package reception

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"ybhotels/models"
	"ybhotels/services/booking"
	"ybhotels/services/notification"

	"github.com/google/uuid"
)

// In-memory stand-ins for the Mongo repositories, shared by the fast-path
// and resolver tests.

type memRoomRepo struct {
	rooms map[string]models.Room
}

func newMemRoomRepo(rooms ...models.Room) *memRoomRepo {
	f := &memRoomRepo{rooms: map[string]models.Room{}}
	for _, r := range rooms {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		f.rooms[r.ID] = r
	}
	return f
}

func (f *memRoomRepo) Create(ctx context.Context, room models.Room) (string, error) {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	f.rooms[room.ID] = room
	return room.ID, nil
}

func (f *memRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	return &r, nil
}

func (f *memRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *memRoomRepo) GetByStatus(ctx context.Context, status string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *memRoomRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r, ok := f.rooms[id]
	if !ok {
		return errors.New("room not found")
	}
	if v, ok := fields["status"].(string); ok {
		r.Status = v
	}
	f.rooms[id] = r
	return nil
}

func (f *memRoomRepo) SetStatus(ctx context.Context, id, status string) error {
	return f.Update(ctx, id, map[string]interface{}{"status": status})
}

func (f *memRoomRepo) Delete(ctx context.Context, id string) error {
	delete(f.rooms, id)
	return nil
}

type memBookingRepo struct {
	bookings map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: map[string]models.Booking{}}
}

func (f *memBookingRepo) put(b models.Booking) *models.Booking {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	f.bookings[b.ID] = b
	return &b
}

func (f *memBookingRepo) CreateExclusive(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	active, _ := f.GetActiveByRoomID(ctx, b.RoomID)
	for i := range active {
		if booking.Overlaps(b.CheckInDate, b.CheckOutDate, active[i].CheckInDate, active[i].CheckOutDate) {
			return &active[i], nil
		}
	}
	stored := f.put(*b)
	*b = *stored
	return nil, nil
}

func (f *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return &b, nil
}

func (f *memBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *memBookingRepo) GetActiveByRoomID(ctx context.Context, roomID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		for _, s := range models.ActiveBookingStatuses {
			if b.Status == s {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *memBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *memBookingRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	if v, ok := fields["status"].(string); ok {
		b.Status = v
	}
	if v, ok := fields["roomId"].(string); ok {
		b.RoomID = v
	}
	if v, ok := fields["roomName"].(string); ok {
		b.RoomName = v
	}
	if v, ok := fields["totalPrice"].(float64); ok {
		b.TotalPrice = v
	}
	f.bookings[id] = b
	return nil
}

type memOrderRepo struct {
	orders []models.Order
}

func (f *memOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	f.orders = append(f.orders, order)
	return order.ID, nil
}

func (f *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func (f *memOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *memOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	return f.orders, nil
}

type memComplaintRepo struct {
	complaints []models.Complaint
}

func (f *memComplaintRepo) Create(ctx context.Context, c models.Complaint) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.complaints = append(f.complaints, c)
	return c.ID, nil
}

func (f *memComplaintRepo) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			return &f.complaints[i], nil
		}
	}
	return nil, errors.New("complaint not found")
}

func (f *memComplaintRepo) GetByUserID(ctx context.Context, userID string) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range f.complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *memComplaintRepo) GetAll(ctx context.Context) ([]models.Complaint, error) {
	return f.complaints, nil
}

func (f *memComplaintRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

type memUserRepo struct {
	users map[string]models.User
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	f := &memUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *memUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (f *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

type memHotelRepo struct {
	info *models.HotelInfo
}

func (f *memHotelRepo) GetInfo(ctx context.Context) (*models.HotelInfo, error) {
	if f.info == nil {
		return nil, errors.New("no hotel profile")
	}
	return f.info, nil
}

type memReceptionRepo struct {
	messages map[string]models.ReceptionMessage
}

func newMemReceptionRepo() *memReceptionRepo {
	return &memReceptionRepo{messages: map[string]models.ReceptionMessage{}}
}

func (f *memReceptionRepo) Create(ctx context.Context, msg models.ReceptionMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	f.messages[msg.ID] = msg
	return msg.ID, nil
}

func (f *memReceptionRepo) GetByID(ctx context.Context, id string) (*models.ReceptionMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found")
	}
	return &m, nil
}

func (f *memReceptionRepo) MarkProcessed(ctx context.Context, id string, fields map[string]interface{}) error {
	m, ok := f.messages[id]
	if !ok {
		return errors.New("message not found")
	}
	m.Processed = true
	m.ProcessedAt = time.Now().UTC()
	if v, ok := fields["result"].(string); ok {
		m.Result = v
	}
	if v, ok := fields["error"].(string); ok {
		m.Error = v
	}
	if v, ok := fields["userId"].(string); ok {
		m.UserID = v
	}
	if v, ok := fields["functionCall"].(*models.FunctionCall); ok {
		m.FunctionCall = v
	}
	if v, ok := fields["functionResponse"].(map[string]interface{}); ok {
		m.FunctionResponse = v
	}
	f.messages[id] = m
	return nil
}

func (f *memReceptionRepo) GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]models.ReceptionMessage, error) {
	var out []models.ReceptionMessage
	for _, m := range f.messages {
		if m.SessionID == sessionID && m.Processed {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *memReceptionRepo) AwaitResult(ctx context.Context, id string) (*models.ReceptionMessage, error) {
	for {
		if m, ok := f.messages[id]; ok && m.Processed {
			return &m, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
}

type noopNotifier struct{}

func (noopNotifier) NotifyUser(ctx context.Context, userID, title, message string) error {
	return nil
}

var _ notification.NotificationService = noopNotifier{}

// scriptedModel returns a fixed reply, or an error, and records prompts.
type scriptedModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *scriptedModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// testWorld is a fully wired resolver over in-memory state.
type testWorld struct {
	Resolver   *Resolver
	Rooms      *memRoomRepo
	Bookings   *memBookingRepo
	Orders     *memOrderRepo
	Complaints *memComplaintRepo
	Users      *memUserRepo
	Hotel      *memHotelRepo
	Reception  *memReceptionRepo
	Model      *scriptedModel
}

func newTestWorld(rooms ...models.Room) *testWorld {
	roomRepo := newMemRoomRepo(rooms...)
	bookingRepo := newMemBookingRepo()
	orderRepo := &memOrderRepo{}
	complaintRepo := &memComplaintRepo{}
	machine := booking.NewStateMachine(bookingRepo, roomRepo, noopNotifier{})
	ops := booking.NewService(roomRepo, bookingRepo, orderRepo, complaintRepo, machine)

	users := newMemUserRepo()
	hotel := &memHotelRepo{info: &models.HotelInfo{Name: "Grand Plaza"}}
	receptionRepo := newMemReceptionRepo()
	model := &scriptedModel{}

	return &testWorld{
		Resolver:   NewResolver(ops, model, nil, nil, hotel, users, receptionRepo),
		Rooms:      roomRepo,
		Bookings:   bookingRepo,
		Orders:     orderRepo,
		Complaints: complaintRepo,
		Users:      users,
		Hotel:      hotel,
		Reception:  receptionRepo,
		Model:      model,
	}
}

func futureDay(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func addGuest(w *testWorld, name, email string) *models.User {
	id, _ := w.Users.Create(context.Background(), models.User{Name: name, Email: email, Role: "user"})
	u, _ := w.Users.GetByID(context.Background(), id)
	return u
}

var errModelDown = fmt.Errorf("model unavailable")
