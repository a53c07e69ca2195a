// Package i18nhttp resolves the request locale for HTTP surfaces.
package i18nhttp

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/adminchrome/internal/platform/i18n"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "admin_lang"
)

// ResolveLocale determines the best supported locale code for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveLocale(r *http.Request, locales *platformi18n.LocaleSet) (string, bool) {
	if r == nil {
		return locales.Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if code, ok := locales.Resolve(langValue); ok {
			return code, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if code, ok := locales.Resolve(cookie.Value); ok {
			return code, false
		}
	}

	if code, ok := locales.Match(r.Header.Get("Accept-Language")); ok {
		return code, false
	}

	return locales.Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, code string) {
	if w == nil || strings.TrimSpace(code) == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    strings.TrimSpace(code),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
