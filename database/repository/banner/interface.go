package bannerRepo

import (
	"context"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerRepository is data access for promotional banners. Activate is the
// only writer of isActive.
type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Banner, error)
	// GetActive returns the active banner, or nil, nil when none is active.
	GetActive(ctx context.Context) (*models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// Activate deactivates every banner and activates id in one
	// transaction, returning how many documents the activation modified.
	// A zero count aborts the transaction and leaves the prior state.
	Activate(ctx context.Context, id primitive.ObjectID) (int64, error)
}
