package cmd

import (
	"context"
	"fmt"
	"time"

	"medicare/models"
	"medicare/utils"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample locations, tests and a banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return seed(cmd.Context(), a, days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 14, "number of upcoming days to open for each test")
	return cmd
}

var sampleDistricts = []models.District{
	{ID: "1", Name: "Dhaka", BnName: "ঢাকা"},
	{ID: "2", Name: "Chattogram", BnName: "চট্টগ্রাম"},
	{ID: "3", Name: "Sylhet", BnName: "সিলেট"},
}

var sampleUpazilas = []models.Upazila{
	{ID: "101", DistrictID: "1", Name: "Dhanmondi"},
	{ID: "102", DistrictID: "1", Name: "Mirpur"},
	{ID: "201", DistrictID: "2", Name: "Pahartali"},
	{ID: "301", DistrictID: "3", Name: "Beanibazar"},
}

var sampleTests = []models.DiagnosticTest{
	{Title: "Complete Blood Count", Price: 25, Category: "Hematology", Details: "Red cells, white cells and platelets."},
	{Title: "Lipid Profile", Price: 40, Category: "Biochemistry", Details: "Cholesterol, HDL, LDL and triglycerides."},
	{Title: "Chest X-Ray", Price: 55, Category: "Radiology", Details: "Posteroanterior chest radiograph."},
	{Title: "Thyroid Panel", Price: 48, Category: "Endocrinology", Details: "TSH, free T3 and free T4."},
}

func seed(ctx context.Context, a *app, days int) error {
	logger := utils.GetLogger()

	if err := a.locations.Seed(ctx, sampleDistricts, sampleUpazilas); err != nil {
		return err
	}

	existing, err := a.tests.ListAll(ctx)
	if err != nil {
		return err
	}
	titles := lo.SliceToMap(existing, func(t models.DiagnosticTest) (string, bool) { return t.Title, true })

	today := time.Now().UTC()
	dates := lo.Times(days, func(i int) models.AvailableDate {
		return models.AvailableDate{Date: utils.TodayUTC(today.AddDate(0, 0, i+1)), Slots: 10}
	})
	for _, t := range sampleTests {
		if titles[t.Title] {
			continue
		}
		t.AvailableDates = dates
		if _, err := a.tests.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed test %q: %w", t.Title, err)
		}
		logger.Info("Seeded test", zap.String("title", t.Title))
	}

	banners, err := a.banners.List(ctx)
	if err != nil {
		return err
	}
	if len(banners) == 0 {
		b := &models.Banner{
			Name:       "welcome",
			Title:      "20% off your first checkup",
			CouponCode: "WELCOME20",
			CouponRate: 20,
		}
		if _, err := a.banners.Create(ctx, b); err != nil {
			return err
		}
		if _, err := a.banners.Activate(ctx, b.ID); err != nil {
			return err
		}
		logger.Info("Seeded banner", zap.String("bannerId", b.ID.Hex()))
	}
	return nil
}
