package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	GetByAuthID(ctx context.Context, authID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Service resolves externally-authenticated principals to internal users.
// Pure lookups; no mutation happens here.
type Service interface {
	// Resolve maps the identity provider's principal id (the JWT subject)
	// to the internal User. Returns ErrUserNotFound if the principal has
	// not been synced yet.
	Resolve(ctx context.Context, authID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
