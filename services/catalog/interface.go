package catalog

import (
	"context"
	"time"

	catalogRepo "medicare/database/repository/catalog"
	"medicare/models"
	"medicare/utils"
)

type CatalogService interface {
	// ListActive returns tests with at least one date on or after today (UTC).
	ListActive(ctx context.Context) ([]models.DiagnosticTest, error)
	ListAll(ctx context.Context) ([]models.DiagnosticTest, error)
	Get(ctx context.Context, id string) (*models.DiagnosticTest, error)
	Create(ctx context.Context, input models.DiagnosticTestInput) (*models.DiagnosticTest, error)
	Update(ctx context.Context, id string, input models.DiagnosticTestInput) (models.UpdateOutcome, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.TestRepository
	Now  func() time.Time
}

func NewCatalogService(repo catalogRepo.TestRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Now: time.Now}
}

var (
	ErrTestNotFound = utils.NewError(utils.KindNotFound, "test not found")
	ErrInvalidDates = utils.NewError(utils.KindBadRequest, "invalid available dates")
)
