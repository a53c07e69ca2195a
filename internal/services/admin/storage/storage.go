package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// User is one entry of the admin user directory.
type User struct {
	ID        int64
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore persists admin users.
type UserStore interface {
	PutUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id int64) (User, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	UserStore
	Close() error
}
