package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// SaveUser records a user on first login; later logins only refresh the name.
func (s *DefaultUserService) SaveUser(ctx context.Context, user models.User) (*models.UpdateResult, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return nil, ErrInvalidUser
	}
	res, err := s.Repo.Save(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if res.UpsertedID != "" {
		s.Logger.Info("user created", zap.String("email", user.Email))
	}
	return res, nil
}

func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the user with this email has the admin role.
// Unknown users are not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u.IsAdmin(), nil
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, id string) (*models.UpdateResult, error) {
	res, err := s.Repo.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, userRepo.ErrInvalidID) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("failed to set admin role: %w", err)
	}
	s.Logger.Info("user promoted to admin", zap.String("userID", id))
	s.forgetAdminFlag(ctx, id)
	return res, nil
}

// forgetAdminFlag drops the cached admin flag of a promoted user so the new
// role applies on the next request. Failures only delay it until the TTL.
func (s *DefaultUserService) forgetAdminFlag(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil || u.Email == "" {
		if err != nil {
			s.Logger.Warn("could not resolve promoted user for cache invalidation", zap.String("userID", id), zap.Error(err))
		}
		return
	}
	if err := s.Cache.Del(ctx, utils.AdminCacheKey(u.Email)).Err(); err != nil {
		s.Logger.Warn("failed to clear cached admin flag", zap.String("email", u.Email), zap.Error(err))
	}
}
