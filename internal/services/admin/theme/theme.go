// Package theme keeps the admin color mode in a cookie.
package theme

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/adminchrome/internal/services/admin/header"
)

// CookieName stores the color mode preference.
const CookieName = "admin_theme"

// Provider is the color mode for one request. ToggleColorMode writes the new
// mode to the response it was created with.
type Provider struct {
	w    http.ResponseWriter
	mode header.ColorMode
}

// FromRequest reads the color mode cookie; anything unknown is light.
func FromRequest(w http.ResponseWriter, r *http.Request) *Provider {
	return &Provider{w: w, mode: Read(r)}
}

// Read returns the color mode stored on r.
func Read(r *http.Request) header.ColorMode {
	if r == nil {
		return header.ColorModeLight
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return header.ColorModeLight
	}
	mode := header.ColorMode(strings.TrimSpace(cookie.Value))
	if !mode.Valid() {
		return header.ColorModeLight
	}
	return mode
}

// ColorMode returns the current mode.
func (p *Provider) ColorMode(context.Context) header.ColorMode {
	if p == nil {
		return header.ColorModeLight
	}
	return p.mode
}

// ToggleColorMode flips the mode and persists it.
func (p *Provider) ToggleColorMode(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.mode == header.ColorModeDark {
		p.mode = header.ColorModeLight
	} else {
		p.mode = header.ColorModeDark
	}
	if p.w != nil {
		http.SetCookie(p.w, &http.Cookie{
			Name:     CookieName,
			Value:    string(p.mode),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
	}
	return nil
}

// BackgroundClass is the header background for mode.
func (p *Provider) BackgroundClass(mode header.ColorMode) string {
	if mode == header.ColorModeDark {
		return "bg-neutral-900"
	}
	return "bg-white"
}

// BorderClass is the header border color for mode.
func (p *Provider) BorderClass(mode header.ColorMode) string {
	if mode == header.ColorModeDark {
		return "border-gray-700"
	}
	return "border-gray-200"
}

// DataTheme is the document data-theme attribute for mode.
func DataTheme(mode header.ColorMode) string {
	if mode == header.ColorModeDark {
		return "dark"
	}
	return "light"
}
