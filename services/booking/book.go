package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

// Book reserves one slot of the test on the requested date and records the
// appointment. Both writes commit together or not at all.
func (s *DefaultBookingService) Book(ctx context.Context, principal, testID string, req models.AppointmentRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	oid, err := utils.ParseObjectID(testID)
	if err != nil {
		return nil, err
	}
	if req.Email != principal {
		return nil, utils.ErrForbidden
	}
	if err := s.ensureNotBlocked(ctx, principal); err != nil {
		return nil, err
	}
	date, err := utils.NormalizeDate(req.AppointmentDate)
	if err != nil {
		return nil, utils.Wrap(ErrInvalidDate, err)
	}

	appt := &models.Appointment{
		Email:           req.Email,
		Name:            req.Name,
		TestID:          oid,
		Title:           req.Title,
		Image:           req.Image,
		Price:           req.Price,
		AppointmentDate: date,
		TestStatus:      models.TestStatusPending,
		ReportStatus:    models.ReportStatusPending,
		TransactionID:   req.TransactionID,
		CreatedAt:       s.Now().UTC(),
	}

	result, err := s.Bookings.BookTransactionally(ctx, oid, date, appt)
	if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
		utils.BookingOutcomes.WithLabelValues("unavailable").Inc()
		logger.Info("Booking rejected, no slot left",
			zap.String("testId", testID), zap.String("date", date), zap.String("email", principal))
		return nil, utils.Wrap(ErrSlotUnavailable, err)
	}
	if err != nil {
		utils.BookingOutcomes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("book test %s on %s: %w", testID, date, err)
	}
	utils.BookingOutcomes.WithLabelValues("booked").Inc()
	logger.Info("Appointment booked",
		zap.String("appointmentId", result.InsertedID.Hex()), zap.String("testId", testID), zap.String("date", date))

	if s.Reminders != nil {
		payload := models.ReminderPayload{AppointmentID: result.InsertedID.Hex(), Email: principal, Date: date}
		if err := s.Reminders.ScheduleReminder(ctx, payload); err != nil {
			logger.Warn("Failed to schedule reminder", zap.String("appointmentId", payload.AppointmentID), zap.Error(err))
		}
	}
	return result, nil
}

func (s *DefaultBookingService) ensureNotBlocked(ctx context.Context, email string) error {
	if s.Users == nil {
		return nil
	}
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user %s: %w", email, err)
	}
	if user != nil && user.Status == models.StatusBlocked {
		return ErrUserBlocked
	}
	return nil
}

// DecrementSlot takes one slot from a named date. It succeeds only when a
// date with remaining slots matched and was modified.
func (s *DefaultBookingService) DecrementSlot(ctx context.Context, testID, date string) (models.UpdateOutcome, error) {
	oid, err := utils.ParseObjectID(testID)
	if err != nil {
		return models.UpdateOutcome{}, err
	}
	if date == "" {
		return models.UpdateOutcome{}, ErrDateRequired
	}
	canonical, err := utils.NormalizeDate(date)
	if err != nil {
		return models.UpdateOutcome{}, utils.Wrap(ErrInvalidDate, err)
	}
	outcome, err := s.Bookings.DecrementSlot(ctx, oid, canonical)
	if err != nil {
		return outcome, fmt.Errorf("decrement slot %s/%s: %w", testID, canonical, err)
	}
	if outcome.MatchedCount == 0 {
		return outcome, ErrNoMatchingSlot
	}
	if outcome.ModifiedCount == 0 {
		return outcome, ErrSlotNotModified
	}
	return outcome, nil
}
