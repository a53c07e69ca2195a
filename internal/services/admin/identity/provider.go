package identity

import (
	"context"
	"errors"
	"log"

	"github.com/louisbranch/adminchrome/internal/platform/requestctx"
	"github.com/louisbranch/adminchrome/internal/services/admin/header"
	"github.com/louisbranch/adminchrome/internal/services/admin/storage"
)

// Provider reads the current identity from the user directory.
type Provider struct {
	users storage.UserStore
}

// NewProvider returns a provider backed by users.
func NewProvider(users storage.UserStore) *Provider {
	return &Provider{users: users}
}

// Identity returns the display data for the request's user, if any.
func (p *Provider) Identity(ctx context.Context) (header.Identity, bool) {
	if p == nil || p.users == nil {
		return header.Identity{}, false
	}
	userID, ok := requestctx.UserIDFromContext(ctx)
	if !ok {
		return header.Identity{}, false
	}
	user, err := p.users.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("identity: load user %d: %v", userID, err)
		}
		return header.Identity{}, false
	}
	return header.Identity{ID: user.ID, Name: user.Name, AvatarURL: user.AvatarURL}, true
}
