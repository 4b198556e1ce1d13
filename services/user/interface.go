package user

import (
	"context"

	userRepo "medicare/database/repository/user"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	// Register creates the user unless the email is taken, in which case
	// it returns a nil id and created=false.
	Register(ctx context.Context, input models.User) (id *primitive.ObjectID, created bool, err error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	IsAdmin(ctx context.Context, principal, email string) (bool, error)
	Profile(ctx context.Context, principal, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, principal, id string, update models.UserProfileUpdate) (models.UpdateOutcome, error)
	Delete(ctx context.Context, id string) error
	SetRole(ctx context.Context, id, role string) (*models.User, error)
	SetStatus(ctx context.Context, id, status string) (*models.User, error)
	// Role returns the stored role for email, "" when no such user exists.
	Role(ctx context.Context, email string) (string, error)
}

// DefaultUserService is the production implementation. RoleCache may be nil.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	RoleCache *utils.Cache
}

func NewUserService(repo userRepo.UserRepository, roleCache *utils.Cache) *DefaultUserService {
	return &DefaultUserService{Repo: repo, RoleCache: roleCache}
}

var (
	ErrUserNotFound  = utils.NewError(utils.KindNotFound, "user not found")
	ErrEmailRequired = utils.NewError(utils.KindBadRequest, "email is required")
	ErrInvalidRole   = utils.NewError(utils.KindBadRequest, "invalid role")
	ErrInvalidStatus = utils.NewError(utils.KindBadRequest, "invalid status")
)
