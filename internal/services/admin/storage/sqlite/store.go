package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/adminchrome/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/adminchrome/internal/services/admin/storage"
	"github.com/louisbranch/adminchrome/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUser inserts or replaces a user. CreatedAt is kept from the first write.
func (s *Store) PutUser(ctx context.Context, user storage.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if user.ID <= 0 {
		return fmt.Errorf("user id must be positive")
	}
	name := strings.TrimSpace(user.Name)
	avatarURL := strings.TrimSpace(user.AvatarURL)
	if name == "" && avatarURL == "" {
		return fmt.Errorf("user name or avatar url is required")
	}

	now := time.Now().UTC()
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := user.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (id, name, avatar_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    avatar_url = excluded.avatar_url,
    updated_at = excluded.updated_at`,
		user.ID,
		name,
		avatarURL,
		createdAt.UTC().Format(timeFormat),
		updatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put user %d: %w", user.ID, err)
	}
	return nil
}

// GetUser returns the user with id, or storage.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id int64) (storage.User, error) {
	if err := ctx.Err(); err != nil {
		return storage.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.User{}, fmt.Errorf("storage is not configured")
	}

	var (
		user      storage.User
		createdAt string
		updatedAt string
	)
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, avatar_url, created_at, updated_at FROM users WHERE id = ?`, id)
	if err := row.Scan(&user.ID, &user.Name, &user.AvatarURL, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.User{}, storage.ErrNotFound
		}
		return storage.User{}, fmt.Errorf("get user %d: %w", id, err)
	}

	var err error
	if user.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return storage.User{}, fmt.Errorf("parse created_at for user %d: %w", id, err)
	}
	if user.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return storage.User{}, fmt.Errorf("parse updated_at for user %d: %w", id, err)
	}
	return user, nil
}

var _ storage.Store = (*Store)(nil)
