package user

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxUsernameLength     = 80
	maxFavoriteTeamLength = 100
	minPasswordLength     = 6
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	username     string
	passwordHash string
	favoriteTeam string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with a pre-hashed password
func NewUser(username, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, username, passwordHash, favoriteTeam string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		favoriteTeam: favoriteTeam,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FavoriteTeam() string { return u.favoriteTeam }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID assigns the generated ID after persistence
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeFavoriteTeam updates the user's favorite team preference
func (u *User) ChangeFavoriteTeam(team string) error {
	team = strings.TrimSpace(team)
	if len(team) > maxFavoriteTeamLength {
		return fmt.Errorf("favorite team exceeds maximum length of %d characters", maxFavoriteTeamLength)
	}
	u.favoriteTeam = team
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePassword replaces the password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now().UTC()
	return nil
}

// ValidatePassword checks plaintext password constraints before hashing
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
