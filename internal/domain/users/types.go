package users

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	ErrDuplicateUsername = errors.New("that username is already taken")
	QueryTimeoutDuration = time.Second * 5
)

type Role string

const (
	RoleRegular   Role = "regular"
	RoleModerator Role = "moderator"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Role      Role      `json:"role"`
	Favorites []int64   `json:"favorites"`
	Password  password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// HasFavorite reports whether placeID is among the user's favorites.
func (u *User) HasFavorite(placeID int64) bool {
	for _, id := range u.Favorites {
		if id == placeID {
			return true
		}
	}
	return false
}

// password holds only the bcrypt hash; the plaintext is never retained.
type password struct {
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

type Store interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, userID int64, updates map[string]any) error
	UpdatePassword(ctx context.Context, user *User) error

	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	GetRefreshToken(ctx context.Context, userID int64) (string, error)
	DeleteRefreshToken(ctx context.Context, userID int64) error

	AddFavorite(ctx context.Context, userID, placeID int64) error
	RemoveFavorite(ctx context.Context, userID, placeID int64) error
}
