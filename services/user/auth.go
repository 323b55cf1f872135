package user

import (
	"context"
	"fmt"
)

// IssueToken signs an access token for a registered email.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return s.Tokens.GenerateToken(u.Email)
}

// VerifyToken returns the email the token was issued for.
func (s *DefaultUserService) VerifyToken(token string) (string, error) {
	return s.Tokens.VerifyEmail(token)
}
