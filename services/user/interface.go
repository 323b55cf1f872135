package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type UserService interface {
	// Accounts
	SaveUser(ctx context.Context, user models.User) (*models.UpdateResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Roles
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, id string) (*models.UpdateResult, error)

	// Tokens
	IssueToken(ctx context.Context, email string) (string, error)
	VerifyToken(token string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenIssuer
	Logger *zap.Logger

	// Cache holds the admin flags cached by middleware.AdminMiddleware; optional.
	Cache *redis.Client
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenIssuer, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Tokens: tokens, Logger: logger}
}
