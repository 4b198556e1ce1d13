package booking

import (
	"context"
	"errors"
	"fmt"

	"medicare/models"
	"medicare/utils"

	"github.com/hibiken/asynq"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) ListUpcoming(ctx context.Context, principal, email string) ([]models.Appointment, error) {
	if email != principal {
		return nil, utils.ErrForbidden
	}
	appts, err := s.Appointments.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", email, err)
	}
	return appts, nil
}

// Cancel marks the principal's own appointment as canceled. Someone else's
// appointment matches nothing and reads as not found.
func (s *DefaultBookingService) Cancel(ctx context.Context, principal, appointmentID string) (models.UpdateOutcome, error) {
	oid, err := utils.ParseObjectID(appointmentID)
	if err != nil {
		return models.UpdateOutcome{}, err
	}
	outcome, err := s.Appointments.Cancel(ctx, oid, principal)
	if err != nil {
		return outcome, fmt.Errorf("cancel appointment %s: %w", appointmentID, err)
	}
	if outcome.MatchedCount == 0 {
		return outcome, ErrAppointmentNotFound
	}
	return outcome, nil
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// DeliverReport closes an appointment with its report link. A zero match is
// reported in the outcome and is not an error.
func (s *DefaultBookingService) DeliverReport(ctx context.Context, appointmentID, reportLink string) (models.UpdateOutcome, error) {
	oid, err := utils.ParseObjectID(appointmentID)
	if err != nil {
		return models.UpdateOutcome{}, err
	}
	if reportLink == "" {
		return models.UpdateOutcome{}, ErrReportLinkRequired
	}
	outcome, err := s.Appointments.DeliverReport(ctx, oid, reportLink)
	if err != nil {
		return outcome, fmt.Errorf("deliver report %s: %w", appointmentID, err)
	}
	if outcome.MatchedCount == 0 {
		outcome.Message = ReportAlreadyGone
		utils.GetLogger().Warn("Report delivery matched no appointment", zap.String("appointmentId", appointmentID))
	}
	return outcome, nil
}

func (s *DefaultBookingService) Results(ctx context.Context, principal, email string) ([]models.Appointment, error) {
	if email != principal {
		return nil, utils.ErrForbidden
	}
	appts, err := s.Appointments.ListDelivered(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list results for %s: %w", email, err)
	}
	return appts, nil
}

func (s *DefaultBookingService) Summary(ctx context.Context, principal, email string) (*models.AppointmentSummary, error) {
	appts, err := s.ListUpcoming(ctx, principal, email)
	if err != nil {
		return nil, err
	}
	return &models.AppointmentSummary{
		Total:    len(appts),
		ByStatus: lo.CountValuesBy(appts, func(a models.Appointment) string { return a.TestStatus }),
		Delivered: lo.CountBy(appts, func(a models.Appointment) bool {
			return a.ReportStatus == models.ReportStatusDelivered
		}),
	}, nil
}

// HandleReminder records that a reminder went out. Canceled or deleted
// appointments are skipped quietly so the task is not retried.
func (s *DefaultBookingService) HandleReminder(ctx context.Context, payload models.ReminderPayload) error {
	oid, err := utils.ParseObjectID(payload.AppointmentID)
	if err != nil {
		// An unparseable id never succeeds on retry.
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	outcome, err := s.Appointments.MarkReminderSent(ctx, oid, s.Now().UTC())
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && outcome.MatchedCount == 0) {
		utils.GetLogger().Info("Reminder skipped", zap.String("appointmentId", payload.AppointmentID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark reminder %s: %w", payload.AppointmentID, err)
	}
	utils.GetLogger().Info("Reminder sent",
		zap.String("appointmentId", payload.AppointmentID), zap.String("email", payload.Email), zap.String("date", payload.Date))
	return nil
}
