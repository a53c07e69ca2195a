// Package htmx holds the small HTMX request/response conventions the admin
// chrome relies on.
package htmx

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	// RequestHeaderKey is the header HTMX sets on every request it issues.
	RequestHeaderKey = "HX-Request"
	// TriggerHeaderKey asks the client to dispatch an event after the swap.
	TriggerHeaderKey = "HX-Trigger"
	// CurrentURLHeaderKey carries the browser location of the page that
	// issued the request.
	CurrentURLHeaderKey = "HX-Current-URL"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// Trigger schedules a client-side event named event.
func Trigger(w http.ResponseWriter, event string) {
	if w == nil || strings.TrimSpace(event) == "" {
		return
	}
	w.Header().Set(TriggerHeaderKey, strings.TrimSpace(event))
}

// PagePath returns the path and query of the page a request belongs to: the
// HTMX current URL when present, otherwise the request URI itself.
func PagePath(r *http.Request) string {
	if r == nil {
		return ""
	}
	if raw := strings.TrimSpace(r.Header.Get(CurrentURLHeaderKey)); raw != "" {
		if parsed, err := url.Parse(raw); err == nil {
			return parsed.RequestURI()
		}
	}
	return r.URL.RequestURI()
}
