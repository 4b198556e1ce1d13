package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"medicare/models"
	"medicare/utils"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func request(email, date string) models.AppointmentRequest {
	return models.AppointmentRequest{Email: email, Name: "A", AppointmentDate: date, Title: "CBC", Price: 25}
}

func TestBookThreeTimesOnTwoSlots(t *testing.T) {
	store := newMemStore()
	testID := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 2})
	reminders := &recordingReminders{}
	svc := newTestService(store, reminders)
	ctx := context.Background()

	first, err := svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "3/1/2025"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ModifiedCount)
	assert.Equal(t, "2025-03-01", first.Appointment.AppointmentDate)
	assert.Equal(t, models.TestStatusPending, first.Appointment.TestStatus)
	assert.Equal(t, 1, store.slots(testID, "2025-03-01"))

	_, err = svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, store.slots(testID, "2025-03-01"))

	_, err = svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "3/1/2025"))
	assert.True(t, errors.Is(err, ErrSlotUnavailable))
	assert.Equal(t, 409, utils.StatusFor(err))
	assert.Equal(t, 0, store.slots(testID, "2025-03-01"))

	n, _ := store.Count(ctx)
	assert.Equal(t, int64(2), n, "a rejected booking writes no appointment")
	assert.Len(t, reminders.payloads, 2)
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	store := newMemStore()
	testID := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 5})
	svc := newTestService(store, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	booked, rejected := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), "a@x.com", testID.Hex(), request("a@x.com", "3/1/2025"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				booked++
			} else if errors.Is(err, ErrSlotUnavailable) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, booked)
	assert.Equal(t, 15, rejected)
	assert.Equal(t, 0, store.slots(testID, "2025-03-01"))
}

func TestDecrementSlotFloorAndScoping(t *testing.T) {
	store := newMemStore()
	target := store.addTest(
		models.AvailableDate{Date: "2025-03-01", Slots: 2},
		models.AvailableDate{Date: "2025-03-02", Slots: 4},
	)
	other := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 7})
	svc := newTestService(store, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		outcome, err := svc.DecrementSlot(ctx, target.Hex(), "2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, outcome)
	}
	_, err := svc.DecrementSlot(ctx, target.Hex(), "3/1/2025")
	assert.True(t, errors.Is(err, ErrNoMatchingSlot))

	assert.Equal(t, 0, store.slots(target, "2025-03-01"))
	assert.Equal(t, 4, store.slots(target, "2025-03-02"))
	assert.Equal(t, 7, store.slots(other, "2025-03-01"))
}

func TestDecrementSlotValidation(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	tests := []struct {
		name   string
		testID string
		date   string
		want   error
	}{
		{"missing date", id, "", ErrDateRequired},
		{"bad date", id, "13/40/2025", ErrInvalidDate},
		{"bad id", "xyz", "2025-03-01", utils.ErrInvalidID},
		{"unknown test", id, "2025-03-01", ErrNoMatchingSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecrementSlot(ctx, tt.testID, tt.date)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestBookRejections(t *testing.T) {
	store := newMemStore()
	testID := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 3})
	store.users["blocked@x.com"] = &models.User{Email: "blocked@x.com", Status: models.StatusBlocked}
	svc := newTestService(store, nil)
	ctx := context.Background()

	_, err := svc.Book(ctx, "b@x.com", testID.Hex(), request("a@x.com", "2025-03-01"))
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	_, err = svc.Book(ctx, "blocked@x.com", testID.Hex(), request("blocked@x.com", "2025-03-01"))
	assert.True(t, errors.Is(err, ErrUserBlocked))

	_, err = svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "2025-03-09"))
	assert.True(t, errors.Is(err, ErrSlotUnavailable))

	assert.Equal(t, 3, store.slots(testID, "2025-03-01"))
}

func TestOwnershipIsEnforced(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	ctx := context.Background()

	_, err := svc.Results(ctx, "b@x.com", "a@x.com")
	assert.True(t, errors.Is(err, utils.ErrForbidden))
	_, err = svc.ListUpcoming(ctx, "b@x.com", "a@x.com")
	assert.True(t, errors.Is(err, utils.ErrForbidden))
	_, err = svc.Summary(ctx, "b@x.com", "a@x.com")
	assert.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestReportDeliveryAndResults(t *testing.T) {
	store := newMemStore()
	testID := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 3})
	svc := newTestService(store, nil)
	ctx := context.Background()

	booked, err := svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "2025-03-01"))
	require.NoError(t, err)
	_, err = svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "2025-03-01"))
	require.NoError(t, err)

	outcome, err := svc.DeliverReport(ctx, booked.InsertedID.Hex(), "https://reports/1.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(1), outcome.ModifiedCount)

	gone, err := svc.DeliverReport(ctx, primitive.NewObjectID().Hex(), "https://reports/2.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gone.MatchedCount)
	assert.Equal(t, ReportAlreadyGone, gone.Message)

	_, err = svc.DeliverReport(ctx, booked.InsertedID.Hex(), "")
	assert.True(t, errors.Is(err, ErrReportLinkRequired))

	results, err := svc.Results(ctx, "a@x.com", "a@x.com")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.TestStatusDone, results[0].TestStatus)
	assert.Equal(t, "https://reports/1.pdf", results[0].ReportLink)

	summary, err := svc.Summary(ctx, "a@x.com", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, map[string]int{models.TestStatusDone: 1, models.TestStatusPending: 1}, summary.ByStatus)
}

func TestCancelOnlyOwnAppointment(t *testing.T) {
	store := newMemStore()
	testID := store.addTest(models.AvailableDate{Date: "2025-03-01", Slots: 3})
	svc := newTestService(store, nil)
	ctx := context.Background()

	booked, err := svc.Book(ctx, "a@x.com", testID.Hex(), request("a@x.com", "2025-03-01"))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, "b@x.com", booked.InsertedID.Hex())
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))

	_, err = svc.Cancel(ctx, "a@x.com", booked.InsertedID.Hex())
	require.NoError(t, err)

	require.NoError(t, svc.HandleReminder(ctx, models.ReminderPayload{AppointmentID: booked.InsertedID.Hex()}))
	appt, err := store.GetByID(ctx, booked.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusCanceled, appt.TestStatus)
	assert.Nil(t, appt.ReminderSentAt, "canceled appointments get no reminder")
}

func TestHandleReminderMalformedIDSkipsRetry(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	err := svc.HandleReminder(context.Background(), models.ReminderPayload{AppointmentID: "not-an-id"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.True(t, errors.Is(err, utils.ErrInvalidID))
}
