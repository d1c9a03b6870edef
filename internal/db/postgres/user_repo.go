package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

const userColumns = `id, auth_id, username, first_name, last_name, avatar_url, created_at`

func scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	var avatarURL sql.NullString

	err := row.Scan(&user.ID, &user.AuthID, &user.Username, &user.FirstName,
		&user.LastName, &avatarURL, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.AvatarURL = avatarURL.String
	return user, nil
}

// GetByAuthID retrieves a user by their external identity id
func (r *postgresUserRepo) GetByAuthID(ctx context.Context, authID string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, authID))
	if err != nil {
		if err == users.ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by auth id: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by their username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == users.ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by their internal id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == users.ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
