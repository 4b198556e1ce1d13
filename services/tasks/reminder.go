package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicare/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		// One reminder per appointment even if the booking is replayed.
		asynq.TaskID("reminder:" + payload.AppointmentID),
	}
	return task, opts, nil
}

// ParseReminder decodes a reminder task body.
func ParseReminder(t *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode %s payload: %w", TypeAppointmentReminder, err)
	}
	return p, nil
}

// ReminderAt is when the reminder for an appointment on date fires: 09:00
// UTC the day before, or now when that moment has passed.
func ReminderAt(date string, now time.Time) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, err
	}
	at := day.Add(-24 * time.Hour).Add(9 * time.Hour)
	if at.Before(now) {
		return now, nil
	}
	return at, nil
}

// Scheduler enqueues reminder tasks on asynq.
type Scheduler struct {
	client *asynq.Client
	now    func() time.Time
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client, now: time.Now}
}

func (s *Scheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error {
	fireAt, err := ReminderAt(payload.Date, s.now())
	if err != nil {
		return fmt.Errorf("reminder time for %s: %w", payload.Date, err)
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}
