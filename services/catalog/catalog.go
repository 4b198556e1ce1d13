package catalog

import (
	"context"
	"errors"
	"fmt"

	"medicare/models"
	"medicare/utils"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) ListActive(ctx context.Context) ([]models.DiagnosticTest, error) {
	today := utils.TodayUTC(s.Now())
	tests, err := s.Repo.ListAvailable(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list active tests: %w", err)
	}
	return tests, nil
}

func (s *DefaultCatalogService) ListAll(ctx context.Context) ([]models.DiagnosticTest, error) {
	tests, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	return tests, nil
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.DiagnosticTest, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	test, err := s.Repo.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.Wrap(ErrTestNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("get test %s: %w", id, err)
	}
	return test, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, input models.DiagnosticTestInput) (*models.DiagnosticTest, error) {
	dates, err := normalizeDates(input.AvailableDates)
	if err != nil {
		return nil, err
	}
	test := &models.DiagnosticTest{
		Title:          input.Title,
		Image:          input.Image,
		Price:          input.Price,
		Details:        input.Details,
		Category:       input.Category,
		AvailableDates: dates,
	}
	if _, err := s.Repo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("create test: %w", err)
	}
	utils.GetLogger().Info("Test created", zap.String("testId", test.ID.Hex()), zap.String("title", test.Title))
	return test, nil
}

func (s *DefaultCatalogService) Update(ctx context.Context, id string, input models.DiagnosticTestInput) (models.UpdateOutcome, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return models.UpdateOutcome{}, err
	}
	if input.AvailableDates != nil {
		dates, err := normalizeDates(input.AvailableDates)
		if err != nil {
			return models.UpdateOutcome{}, err
		}
		input.AvailableDates = dates
	}
	outcome, err := s.Repo.Replace(ctx, oid, input)
	if err != nil {
		return models.UpdateOutcome{}, fmt.Errorf("update test %s: %w", id, err)
	}
	if outcome.MatchedCount == 0 {
		return outcome, ErrTestNotFound
	}
	return outcome, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete test %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrTestNotFound
	}
	return nil
}

// normalizeDates canonicalizes every date and rejects duplicates and
// negative slot counts.
func normalizeDates(in []models.AvailableDate) ([]models.AvailableDate, error) {
	out := make([]models.AvailableDate, 0, len(in))
	for _, d := range in {
		date, err := utils.NormalizeDate(d.Date)
		if err != nil {
			return nil, utils.Wrap(ErrInvalidDates, err)
		}
		if d.Slots < 0 {
			return nil, utils.Wrap(ErrInvalidDates, fmt.Errorf("negative slots on %s", date))
		}
		out = append(out, models.AvailableDate{Date: date, Slots: d.Slots})
	}
	if dups := lo.FindDuplicatesBy(out, func(d models.AvailableDate) string { return d.Date }); len(dups) > 0 {
		return nil, utils.Wrap(ErrInvalidDates, fmt.Errorf("duplicate date %s", dups[0].Date))
	}
	return out, nil
}
