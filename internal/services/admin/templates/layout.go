package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/adminchrome/internal/platform/icons"
	"github.com/louisbranch/adminchrome/internal/services/admin/header"
	"github.com/louisbranch/adminchrome/internal/services/admin/htmlwrite"
	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
)

// LayoutID is the DOM id of the page layout. It refetches itself when the
// chrome changes so the sidebar column and theme follow the header.
const LayoutID = "admin-layout"

// Document wraps content in the full admin page shell.
func Document(page PageContext, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := htmlwrite.New(w)
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		theme := page.Theme
		if theme == "" {
			theme = "light"
		}
		pw.Raw(`<!doctype html><html lang="`)
		pw.Text(lang)
		pw.Raw(`" data-theme="`)
		pw.Text(theme)
		pw.Raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		pw.Text(page.Title)
		pw.Raw(`</title><link rel="stylesheet" href="` + routepath.StaticPrefix + `chrome.css">`)
		if page.HTMXScriptURL != "" {
			pw.Raw(`<script src="`)
			pw.URL(page.HTMXScriptURL)
			pw.Raw(`" defer></script>`)
		}
		pw.Raw(`</head><body>`)
		pw.Component(ctx, icons.Sprite())
		currentPath := routepath.SafeReturnTo(page.CurrentPath)
		pw.Raw(`<div id="` + LayoutID + `" class="admin-layout" data-theme="`)
		pw.Text(theme)
		pw.Raw(`" hx-get="`)
		pw.URL(currentPath)
		pw.Raw(`" hx-trigger="` + header.ChangedEvent + ` from:body" hx-select="#` + LayoutID + `" hx-swap="outerHTML">`)
		pw.Raw(`<aside class="admin-sidebar" data-open="` + strconv.FormatBool(page.SidebarOpen) + `"></aside><div class="admin-main">`)
		pw.Component(ctx, page.Header)
		pw.Raw(`<main class="admin-content">`)
		pw.Component(ctx, content)
		pw.Raw(`</main></div></div></body></html>`)
		return pw.Err()
	})
}
