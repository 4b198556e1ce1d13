package cmd

import (
	"os/signal"
	"syscall"

	"medicare/cron"
	"medicare/services/booking"

	"github.com/spf13/cobra"
)

func newWorkerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Process queued appointment reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := booking.NewBookingService(a.bookings, a.appointments, a.users, nil)
			return cron.RunReminderWorker(ctx, svc)
		},
	}
}
