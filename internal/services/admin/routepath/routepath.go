// Package routepath owns the admin HTTP route table.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Healthz = "/healthz"
)

const (
	StaticPrefix = "/static/"
	FlagsPrefix  = "/images/flags/"
)

const (
	ChromeHeader  = "/chrome/header"
	ChromeSidebar = "/chrome/sidebar"
	ChromeTheme   = "/chrome/theme"
)

// LangParam is the query parameter that selects a locale.
const LangParam = "lang"

// ReturnToParam carries the page to come back to after a chrome action.
const ReturnToParam = "return_to"

// Flag returns the flag image path for a locale code.
func Flag(code string) string {
	return FlagsPrefix + escapeSegment(code) + ".svg"
}

// Localized returns path with the locale query parameter set, keeping any
// other query values already on path.
func Localized(path string, code string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = Root
	}
	parsed, err := url.Parse(path)
	if err != nil {
		parsed = &url.URL{Path: Root}
	}
	query := parsed.Query()
	query.Set(LangParam, code)
	return (&url.URL{Path: parsed.Path, RawQuery: query.Encode()}).String()
}

// SafeReturnTo accepts only same-origin absolute paths and falls back to Root.
func SafeReturnTo(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return Root
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return Root
	}
	return parsed.RequestURI()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
