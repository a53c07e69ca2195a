package templates

import "github.com/a-h/templ"

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang  string
	Loc   Localizer
	Title string
	// CurrentPath is the page URL the layout refetches after chrome changes.
	CurrentPath string
	// Theme is the document data-theme value.
	Theme string
	// SidebarOpen controls the sidebar column.
	SidebarOpen bool
	// HTMXScriptURL loads HTMX when set; without it chrome actions fall back
	// to plain form posts.
	HTMXScriptURL string
	// Header is the rendered chrome header.
	Header templ.Component
}
