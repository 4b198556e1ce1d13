// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestRepository is data access for the diagnostic test catalog.
type TestRepository interface {
	// ListAvailable returns tests with at least one date on or after today.
	ListAvailable(ctx context.Context, today string) ([]models.DiagnosticTest, error)
	ListAll(ctx context.Context) ([]models.DiagnosticTest, error)
	// GetByID returns mongo.ErrNoDocuments when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticTest, error)
	Create(ctx context.Context, test *models.DiagnosticTest) (primitive.ObjectID, error)
	// Replace overwrites metadata of an existing test, and its availableDates
	// when input carries them.
	Replace(ctx context.Context, id primitive.ObjectID, input models.DiagnosticTestInput) (models.UpdateOutcome, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
