package icons

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	SidebarCollapse: "panel-left-close",
	SidebarExpand:   "panel-left-open",
	Language:        "languages",
	Moon:            "moon",
	Sun:             "sun",
}

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "circle-help"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for the chrome icons.
func LucideSprite() string {
	return lucideSprite
}

// Sprite renders the hidden SVG sprite once per document.
func Sprite() templ.Component {
	return templ.Raw(lucideSprite)
}

// Use renders an inline reference to the sprite symbol for id.
func Use(id ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<svg class="`)
		b.WriteString(templ.EscapeString(strings.TrimSpace("lucide " + class)))
		b.WriteString(`" data-icon="`)
		b.WriteString(LucideNameOrDefault(id))
		b.WriteString(`" aria-hidden="true" focusable="false"><use href="#`)
		b.WriteString(LucideSymbolID(LucideNameOrDefault(id)))
		b.WriteString(`"></use></svg>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

const lucideSprite = `<svg xmlns="http://www.w3.org/2000/svg" style="display:none">` +
	`<symbol id="lucide-panel-left-close" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M9 3v18"/><path d="m16 15-3-3 3-3"/></symbol>` +
	`<symbol id="lucide-panel-left-open" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M9 3v18"/><path d="m14 9 3 3-3 3"/></symbol>` +
	`<symbol id="lucide-languages" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<path d="m5 8 6 6"/><path d="m4 14 6-6 2-3"/><path d="M2 5h12"/><path d="M7 2h1"/><path d="m22 22-5-10-5 10"/><path d="M14 18h6"/></symbol>` +
	`<symbol id="lucide-moon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/></symbol>` +
	`<symbol id="lucide-sun" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/>` +
	`<path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/></symbol>` +
	`</svg>`
