package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "medicare/database/repository/user"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultUserService) Register(ctx context.Context, input models.User) (*primitive.ObjectID, bool, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, false, ErrEmailRequired
	}
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("lookup user %s: %w", email, err)
	}
	if existing != nil {
		return nil, false, nil
	}

	user := &models.User{
		Name:       input.Name,
		Email:      email,
		Image:      input.Image,
		BloodGroup: input.BloodGroup,
		District:   input.District,
		Upazila:    input.Upazila,
		Role:       models.RoleMember,
		Status:     models.StatusActive,
	}
	id, err := s.Repo.Create(ctx, user)
	if errors.Is(err, userRepo.ErrDuplicateEmail) {
		// Lost a race with a concurrent registration for the same email.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("create user %s: %w", email, err)
	}
	utils.GetLogger().Info("User registered", zap.String("userId", id.Hex()), zap.String("email", email))
	return &id, true, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return notFound(s.Repo.GetByID(ctx, oid))
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, principal, email string) (bool, error) {
	if email != principal {
		return false, utils.ErrForbidden
	}
	role, err := s.Role(ctx, email)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

func (s *DefaultUserService) Profile(ctx context.Context, principal, email string) (*models.User, error) {
	if email != principal {
		return nil, utils.ErrForbidden
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", email, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile edits the principal's own record; an id belonging to
// someone else matches nothing.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, principal, id string, update models.UserProfileUpdate) (models.UpdateOutcome, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return models.UpdateOutcome{}, err
	}
	outcome, err := s.Repo.UpdateProfile(ctx, oid, principal, update)
	if err != nil {
		return outcome, fmt.Errorf("update profile %s: %w", id, err)
	}
	if outcome.MatchedCount == 0 {
		return outcome, ErrUserNotFound
	}
	return outcome, nil
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := notFound(s.Repo.Delete(ctx, oid))
	if err != nil {
		return err
	}
	s.forgetRole(ctx, deleted.Email)
	return nil
}

func (s *DefaultUserService) SetRole(ctx context.Context, id, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		return nil, ErrInvalidRole
	}
	return s.setField(ctx, id, "role", role)
}

func (s *DefaultUserService) SetStatus(ctx context.Context, id, status string) (*models.User, error) {
	if status == "" {
		status = models.StatusBlocked
	}
	if status != models.StatusBlocked && status != models.StatusActive {
		return nil, ErrInvalidStatus
	}
	return s.setField(ctx, id, "status", status)
}

func (s *DefaultUserService) setField(ctx context.Context, id, field, value string) (*models.User, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := notFound(s.Repo.SetField(ctx, oid, field, value))
	if err != nil {
		return nil, err
	}
	s.forgetRole(ctx, user.Email)
	utils.GetLogger().Info("User updated", zap.String("userId", id), zap.String(field, value))
	return user, nil
}

func (s *DefaultUserService) Role(ctx context.Context, email string) (string, error) {
	var role string
	if err := s.RoleCache.Get(ctx, email, &role); err == nil {
		return role, nil
	} else if !errors.Is(err, utils.ErrCacheMiss) {
		utils.GetLogger().Warn("Role cache read failed", zap.Error(err))
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup role %s: %w", email, err)
	}
	if user == nil {
		return "", nil
	}
	if err := s.RoleCache.Set(ctx, email, user.Role, utils.RoleCacheTTL); err != nil {
		utils.GetLogger().Warn("Role cache write failed", zap.Error(err))
	}
	return user.Role, nil
}

func (s *DefaultUserService) forgetRole(ctx context.Context, email string) {
	if err := s.RoleCache.Delete(ctx, email); err != nil {
		utils.GetLogger().Warn("Role cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}

func notFound(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.Wrap(ErrUserNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
