package banner

import (
	"context"
	"errors"
	"fmt"

	bannerRepo "medicare/database/repository/banner"
	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

type BannerService interface {
	List(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, input models.BannerInput) (*models.Banner, error)
	Delete(ctx context.Context, id string) error
	// Active returns the active banner or nil when none is active.
	Active(ctx context.Context) (*models.Banner, error)
	// Activate makes id the only active banner and returns the modified count.
	Activate(ctx context.Context, id string) (int64, error)
}

var ErrBannerNotFound = utils.NewError(utils.KindNotFound, "banner not found")

const (
	activeKey     = "active"
	generationKey = "generation"
)

// DefaultBannerService is the production implementation. Cache may be nil.
type DefaultBannerService struct {
	Repo  bannerRepo.BannerRepository
	Cache *utils.Cache
}

func NewBannerService(repo bannerRepo.BannerRepository, cache *utils.Cache) *DefaultBannerService {
	return &DefaultBannerService{Repo: repo, Cache: cache}
}

func (s *DefaultBannerService) List(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

func (s *DefaultBannerService) Create(ctx context.Context, input models.BannerInput) (*models.Banner, error) {
	banner := &models.Banner{
		Name:        input.Name,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		CouponCode:  input.CouponCode,
		CouponRate:  input.CouponRate,
	}
	if _, err := s.Repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return banner, nil
}

func (s *DefaultBannerService) Delete(ctx context.Context, id string) error {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete banner %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrBannerNotFound
	}
	s.invalidate(ctx)
	return nil
}

// Active reads through the cache. The generation is sampled before the store
// read so a result that raced an activation is returned but never cached.
func (s *DefaultBannerService) Active(ctx context.Context) (*models.Banner, error) {
	var cached models.Banner
	err := s.Cache.Get(ctx, activeKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, utils.ErrCacheMiss) {
		utils.GetLogger().Warn("Banner cache read failed", zap.Error(err))
	}

	gen, genErr := s.Cache.Generation(ctx, generationKey)
	if genErr != nil {
		utils.GetLogger().Warn("Banner cache generation read failed", zap.Error(genErr))
	}
	banner, err := s.Repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active banner: %w", err)
	}
	if banner != nil && genErr == nil {
		if _, err := s.Cache.SetIfGeneration(ctx, generationKey, gen, activeKey, banner, utils.BannerCacheTTL); err != nil {
			utils.GetLogger().Warn("Banner cache write failed", zap.Error(err))
		}
	}
	return banner, nil
}

func (s *DefaultBannerService) Activate(ctx context.Context, id string) (int64, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return 0, err
	}
	modified, err := s.Repo.Activate(ctx, oid)
	if err != nil {
		utils.BannerActivations.WithLabelValues("aborted").Inc()
		return 0, fmt.Errorf("activate banner %s: %w", id, err)
	}
	if modified == 0 {
		utils.BannerActivations.WithLabelValues("not_found").Inc()
		return 0, ErrBannerNotFound
	}
	utils.BannerActivations.WithLabelValues("committed").Inc()
	s.invalidate(ctx)
	utils.GetLogger().Info("Banner activated", zap.String("bannerId", id))
	return modified, nil
}

// invalidate bumps the generation before deleting, so a reader that sampled
// the old generation can no longer write, and anything it already wrote is
// removed by the delete.
func (s *DefaultBannerService) invalidate(ctx context.Context) {
	if err := s.Cache.Bump(ctx, generationKey); err != nil {
		utils.GetLogger().Warn("Banner cache generation bump failed", zap.Error(err))
	}
	if err := s.Cache.Delete(ctx, activeKey); err != nil {
		utils.GetLogger().Warn("Banner cache invalidation failed", zap.Error(err))
	}
}
