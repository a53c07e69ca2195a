// Package sidebar keeps the admin sidebar open state in a cookie.
package sidebar

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// CookieName stores the sidebar state.
const CookieName = "admin_sidebar"

const (
	valueOpen   = "open"
	valueClosed = "closed"
)

// State is the sidebar state for one request.
type State struct {
	w    http.ResponseWriter
	open bool
}

// FromRequest reads the sidebar cookie. The sidebar starts open.
func FromRequest(w http.ResponseWriter, r *http.Request) *State {
	state := &State{w: w, open: true}
	if r == nil {
		return state
	}
	if cookie, err := r.Cookie(CookieName); err == nil && strings.TrimSpace(cookie.Value) == valueClosed {
		state.open = false
	}
	return state
}

// IsOpen reports whether the sidebar is open.
func (s *State) IsOpen() bool {
	return s != nil && s.open
}

// Toggle flips the sidebar state and persists it.
func (s *State) Toggle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.open = !s.open
	value := valueClosed
	if s.open {
		value = valueOpen
	}
	if s.w != nil {
		http.SetCookie(s.w, &http.Cookie{
			Name:     CookieName,
			Value:    value,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
	}
	return nil
}
