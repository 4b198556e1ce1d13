package admin

import (
	"context"
	"fmt"

	appointmentRepo "medicare/database/repository/appointment"
	catalogRepo "medicare/database/repository/catalog"
	paymentRepo "medicare/database/repository/payment"
	userRepo "medicare/database/repository/user"
	"medicare/models"

	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	BookingStats(ctx context.Context) ([]models.TestBookingStat, error)
}

type DefaultAdminService struct {
	Users        userRepo.UserRepository
	Tests        catalogRepo.TestRepository
	Appointments appointmentRepo.AppointmentRepository
	Payments     paymentRepo.PaymentRepository
}

func NewAdminService(
	users userRepo.UserRepository,
	tests catalogRepo.TestRepository,
	appointments appointmentRepo.AppointmentRepository,
	payments paymentRepo.PaymentRepository,
) *DefaultAdminService {
	return &DefaultAdminService{Users: users, Tests: tests, Appointments: appointments, Payments: payments}
}

// Stats gathers the dashboard counts and revenue concurrently.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Users, err = s.Users.Count(gctx)
		return wrap("users", err)
	})
	g.Go(func() (err error) {
		stats.Tests, err = s.Tests.Count(gctx)
		return wrap("tests", err)
	})
	g.Go(func() (err error) {
		stats.Appointments, err = s.Appointments.Count(gctx)
		return wrap("appointments", err)
	})
	g.Go(func() (err error) {
		stats.Payments, err = s.Payments.Count(gctx)
		return wrap("payments", err)
	})
	g.Go(func() (err error) {
		stats.Revenue, err = s.Payments.Revenue(gctx)
		return wrap("revenue", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *DefaultAdminService) BookingStats(ctx context.Context) ([]models.TestBookingStat, error) {
	stats, err := s.Appointments.BookingStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}
	return stats, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("count %s: %w", what, err)
	}
	return nil
}
