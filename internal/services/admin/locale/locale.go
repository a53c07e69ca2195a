// Package locale adapts request locale negotiation to the header's locale
// and routing collaborators.
package locale

import (
	"context"
	"net/http"

	platformi18n "github.com/louisbranch/adminchrome/internal/platform/i18n"
	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
	"github.com/louisbranch/adminchrome/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
)

// Provider is the locale state for one request.
type Provider struct {
	locales *platformi18n.LocaleSet
	current string
}

// FromRequest resolves the request locale. A locale chosen through the query
// string is persisted on w.
func FromRequest(w http.ResponseWriter, r *http.Request, locales *platformi18n.LocaleSet) *Provider {
	current, persist := i18nhttp.ResolveLocale(r, locales)
	if persist {
		i18nhttp.SetLanguageCookie(w, current)
	}
	return &Provider{locales: locales, current: current}
}

// CurrentLocale returns the resolved locale code.
func (p *Provider) CurrentLocale(context.Context) string {
	if p == nil {
		return ""
	}
	return p.current
}

// Locales returns the configured locale codes in configuration order.
func (p *Provider) Locales() []string {
	if p == nil {
		return nil
	}
	return p.locales.Codes()
}

// LocaleHref links to the site root with code selected.
func (p *Provider) LocaleHref(code string) string {
	return routepath.Localized(routepath.Root, code)
}

// Tag returns the language tag of the current locale.
func (p *Provider) Tag() language.Tag {
	if p == nil {
		return language.Und
	}
	return p.locales.Tag(p.current)
}
