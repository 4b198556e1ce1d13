package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore emulates the conditional updates the booking repository relies
// on. The mutex stands in for the store's per-document atomicity.
type memStore struct {
	mu           sync.Mutex
	tests        map[primitive.ObjectID][]models.AvailableDate
	appointments map[primitive.ObjectID]*models.Appointment
	users        map[string]*models.User
}

func newMemStore() *memStore {
	return &memStore{
		tests:        map[primitive.ObjectID][]models.AvailableDate{},
		appointments: map[primitive.ObjectID]*models.Appointment{},
		users:        map[string]*models.User{},
	}
}

func (m *memStore) addTest(dates ...models.AvailableDate) primitive.ObjectID {
	id := primitive.NewObjectID()
	m.tests[id] = append([]models.AvailableDate(nil), dates...)
	return id
}

func (m *memStore) slots(testID primitive.ObjectID, date string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.tests[testID] {
		if d.Date == date {
			return d.Slots
		}
	}
	return -1
}

// decrementLocked applies {_id, availableDates: $elemMatch{date, slots>0}}
// with $inc availableDates.$.slots -1.
func (m *memStore) decrementLocked(testID primitive.ObjectID, date string) models.UpdateOutcome {
	dates := m.tests[testID]
	for i := range dates {
		if dates[i].Date == date && dates[i].Slots > 0 {
			dates[i].Slots--
			return models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}
		}
	}
	return models.UpdateOutcome{}
}

func (m *memStore) DecrementSlot(_ context.Context, testID primitive.ObjectID, date string) (models.UpdateOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decrementLocked(testID, date), nil
}

func (m *memStore) BookTransactionally(_ context.Context, testID primitive.ObjectID, date string, appt *models.Appointment) (*models.BookingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	outcome := m.decrementLocked(testID, date)
	if outcome.MatchedCount == 0 {
		return nil, bookingRepo.ErrSlotUnavailable
	}
	appt.ID = primitive.NewObjectID()
	cp := *appt
	m.appointments[appt.ID] = &cp
	return &models.BookingResult{
		InsertedID:    appt.ID,
		Acknowledged:  true,
		MatchedCount:  outcome.MatchedCount,
		ModifiedCount: outcome.ModifiedCount,
		Appointment:   appt,
	}, nil
}

func (m *memStore) filter(keep func(*models.Appointment) bool) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range m.appointments {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (m *memStore) ListByEmail(_ context.Context, email string) ([]models.Appointment, error) {
	return m.filter(func(a *models.Appointment) bool { return a.Email == email }), nil
}

func (m *memStore) ListAll(context.Context) ([]models.Appointment, error) {
	return m.filter(func(*models.Appointment) bool { return true }), nil
}

func (m *memStore) ListDelivered(_ context.Context, email string) ([]models.Appointment, error) {
	return m.filter(func(a *models.Appointment) bool {
		return a.Email == email && a.ReportStatus == models.ReportStatusDelivered
	}), nil
}

func (m *memStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) Cancel(_ context.Context, id primitive.ObjectID, email string) (models.UpdateOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok || a.Email != email {
		return models.UpdateOutcome{}, nil
	}
	a.TestStatus = models.TestStatusCanceled
	return models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) DeliverReport(_ context.Context, id primitive.ObjectID, link string) (models.UpdateOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok {
		return models.UpdateOutcome{}, nil
	}
	a.TestStatus, a.ReportStatus, a.ReportLink = models.TestStatusDone, models.ReportStatusDelivered, link
	return models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) MarkReminderSent(_ context.Context, id primitive.ObjectID, at time.Time) (models.UpdateOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok || a.TestStatus == models.TestStatusCanceled {
		return models.UpdateOutcome{}, nil
	}
	a.ReminderSentAt = &at
	return models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) BookingStats(context.Context) ([]models.TestBookingStat, error) { return nil, nil }

func (m *memStore) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.appointments)), nil
}

// memUsers satisfies userRepo.UserRepository for the blocked-user check.
type memUsers struct{ store *memStore }

func (u memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return u.store.users[email], nil
}

func (memUsers) Create(context.Context, *models.User) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (memUsers) GetByID(context.Context, primitive.ObjectID) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (memUsers) GetAll(context.Context) ([]models.User, error) { return nil, nil }
func (memUsers) UpdateProfile(context.Context, primitive.ObjectID, string, models.UserProfileUpdate) (models.UpdateOutcome, error) {
	return models.UpdateOutcome{}, nil
}
func (memUsers) SetField(context.Context, primitive.ObjectID, string, string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (memUsers) Delete(context.Context, primitive.ObjectID) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (memUsers) Count(context.Context) (int64, error) { return 0, nil }

type recordingReminders struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
}

func (r *recordingReminders) ScheduleReminder(_ context.Context, p models.ReminderPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return nil
}

func newTestService(store *memStore, reminders ReminderScheduler) *DefaultBookingService {
	svc := NewBookingService(store, store, memUsers{store}, reminders)
	svc.Now = func() time.Time { return time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC) }
	return svc
}
