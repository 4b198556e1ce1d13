package cmd

import (
	"context"
	"fmt"

	"medicare/utils"

	"github.com/spf13/cobra"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func newIndexesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return ensureIndexes(cmd.Context(), a)
		},
	}
}

func ensureIndexes(ctx context.Context, a *app) error {
	steps := map[string]indexer{
		"users":                a.users,
		"allTests":             a.tests,
		"upcomingAppointments": a.appointments,
		"payments":             a.payments,
		"banners":              a.banners,
	}
	for name, ix := range steps {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		utils.GetLogger().Sugar().Infof("indexes ready on %s", name)
	}
	return nil
}
