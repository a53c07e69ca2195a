package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// bootstrapUser is the JSON shape of one seeded user.
type bootstrapUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ParseBootstrapUsers decodes a JSON list of users such as
// [{"id":1,"name":"Ada Lovelace","avatar_url":"/avatars/ada.png"}].
// Blank input yields no users.
func ParseBootstrapUsers(raw string) ([]User, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var decoded []bootstrapUser
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode bootstrap users: %w", err)
	}
	seen := make(map[int64]struct{}, len(decoded))
	users := make([]User, 0, len(decoded))
	for i, entry := range decoded {
		if entry.ID <= 0 {
			return nil, fmt.Errorf("bootstrap user %d: id must be positive", i)
		}
		if _, ok := seen[entry.ID]; ok {
			return nil, fmt.Errorf("bootstrap user %d: duplicate id %d", i, entry.ID)
		}
		seen[entry.ID] = struct{}{}
		users = append(users, User{
			ID:        entry.ID,
			Name:      strings.TrimSpace(entry.Name),
			AvatarURL: strings.TrimSpace(entry.AvatarURL),
		})
	}
	return users, nil
}

// Seed writes users into store.
func Seed(ctx context.Context, store UserStore, users []User) error {
	if store == nil {
		return fmt.Errorf("storage is not configured")
	}
	for _, user := range users {
		if err := store.PutUser(ctx, user); err != nil {
			return fmt.Errorf("seed user %d: %w", user.ID, err)
		}
	}
	return nil
}
