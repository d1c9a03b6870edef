package users

import (
	"time"
)

// User represents an account synced in from the external identity provider.
// Rows are written by the identity-sync webhook consumer; this core only
// reads them, so every mutating use case treats User as a foreign-key target.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AuthID    string    `json:"-" db:"auth_id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	AvatarURL string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	ID        int64     `json:"id" db:"id"`
}

// Summary is the denormalized author view embedded in resolved posts and
// comments (username + display fields only, no auth identifiers).
type Summary struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	ID        int64  `json:"id"`
}

// Summary returns the embeddable author view for this user.
func (u *User) Summary() Summary {
	return Summary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
