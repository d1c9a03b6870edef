package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type userService struct {
	repo UserRepository
}

// NewService creates a new user resolution service
func NewService(repo UserRepository) Service {
	return &userService{repo: repo}
}

// Resolve maps an external principal id to the internal User record
func (s *userService) Resolve(ctx context.Context, authID string) (*User, error) {
	if strings.TrimSpace(authID) == "" {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by their username
func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, ErrUserNotFound
	}

	return s.repo.GetByUsername(ctx, username)
}
