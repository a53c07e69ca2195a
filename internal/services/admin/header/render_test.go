package header

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderHTML(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestHeaderRendersFullChrome(t *testing.T) {
	t.Parallel()

	counter := &sidebarCounter{}
	theme := &fakeTheme{mode: ColorModeLight}
	in := Input{
		Props:       Props{IsSidebarOpen: true, OnToggleSidebar: counter.toggle},
		Identity:    fakeIdentity{identity: Identity{ID: 7, Name: "Ada Lovelace", AvatarURL: "/avatars/ada.png"}, ok: true},
		Locale:      &fakeLocales{current: "de", codes: []string{"en", "de"}},
		Router:      fakeRouter{},
		Theme:       theme,
		CurrentPath: "/users",
	}
	html := renderHTML(t, Header(context.Background(), in))

	for _, marker := range []string{
		`id="admin-chrome-header"`,
		`justify-end md:justify-between`,
		`bg-white border-gray-200`,
		`hx-get="/chrome/header"`,
		`hx-trigger="chromeChanged from:body"`,
		`action="/chrome/sidebar"`,
		`data-toggle-icon="collapse"`,
		`data-icon="panel-left-close"`,
		`action="/chrome/theme"`,
		`data-theme-icon="moon"`,
		`data-icon="moon"`,
		`name="return_to" value="/users"`,
		`<span class="text-sm font-bold">Ada Lovelace</span>`,
		`src="/avatars/ada.png" alt="Ada Lovelace"`,
		`aria-label="Toggle sidebar"`,
	} {
		if !strings.Contains(html, marker) {
			t.Fatalf("expected marker %q in header HTML: %s", marker, html)
		}
	}

	deIndex := strings.Index(html, `hreflang="de"`)
	enIndex := strings.Index(html, `hreflang="en"`)
	if deIndex < 0 || enIndex < 0 || deIndex > enIndex {
		t.Fatalf("expected de before en in language menu: %s", html)
	}
	if !strings.Contains(html, `href="/?lang=de" hreflang="de" class="text-green-600" aria-current="true"`) {
		t.Fatalf("expected active de entry: %s", html)
	}
	if strings.Contains(html, `hreflang="en" class="text-green-600"`) {
		t.Fatalf("en entry must not be active: %s", html)
	}
	if !strings.Contains(html, `src="/images/flags/de.svg"`) || !strings.Contains(html, `>German</a>`) || !strings.Contains(html, `>English</a>`) {
		t.Fatalf("expected flags and labels: %s", html)
	}
	if counter.calls != 0 || theme.toggles != 0 {
		t.Fatalf("render invoked collaborators: sidebar=%d theme=%d", counter.calls, theme.toggles)
	}
}

func TestHeaderWithoutSidebarCallback(t *testing.T) {
	t.Parallel()

	html := renderHTML(t, Header(context.Background(), Input{Theme: &fakeTheme{mode: ColorModeDark}}))
	if strings.Contains(html, `/chrome/sidebar`) {
		t.Fatalf("unexpected sidebar toggle: %s", html)
	}
	if strings.Contains(html, "md:justify-between") {
		t.Fatalf("unexpected justify-between without sidebar toggle: %s", html)
	}
	if !strings.Contains(html, `data-theme-icon="sun"`) || !strings.Contains(html, "bg-neutral-900") {
		t.Fatalf("expected dark chrome: %s", html)
	}
	if strings.Contains(html, `data-identity="true"`) {
		t.Fatalf("unexpected identity badge: %s", html)
	}
}

func TestHeaderRendersCustomToggleIcon(t *testing.T) {
	t.Parallel()

	in := Input{Props: Props{
		OnToggleSidebar:  func(context.Context) error { return nil },
		RenderToggleIcon: func(bool) templ.Component { return textComponent(`<i class="my-icon"></i>`) },
	}}
	html := renderHTML(t, Header(context.Background(), in))
	if !strings.Contains(html, `<i class="my-icon"></i>`) || !strings.Contains(html, `data-toggle-icon="custom"`) {
		t.Fatalf("expected custom toggle icon: %s", html)
	}
	if strings.Contains(html, "panel-left") {
		t.Fatalf("built-in toggle icon rendered alongside custom icon: %s", html)
	}
}

func TestHeaderIdentityAvatarFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("initials without avatar", func(t *testing.T) {
		t.Parallel()
		html := renderHTML(t, Header(context.Background(), Input{
			Identity: fakeIdentity{identity: Identity{Name: "Grace Hopper"}, ok: true},
		}))
		if !strings.Contains(html, `<span class="text-xs">GH</span>`) {
			t.Fatalf("expected initials placeholder: %s", html)
		}
	})

	t.Run("avatar without name", func(t *testing.T) {
		t.Parallel()
		html := renderHTML(t, Header(context.Background(), Input{
			Identity: fakeIdentity{identity: Identity{AvatarURL: "/a.png"}, ok: true},
		}))
		if !strings.Contains(html, `src="/a.png"`) {
			t.Fatalf("expected avatar image: %s", html)
		}
		if strings.Contains(html, "font-bold") {
			t.Fatalf("unexpected bold name without name: %s", html)
		}
	})
}

func TestHeaderEscapesText(t *testing.T) {
	t.Parallel()

	html := renderHTML(t, Header(context.Background(), Input{
		Identity: fakeIdentity{identity: Identity{Name: `<script>alert(1)</script>`}, ok: true},
	}))
	if strings.Contains(html, "<script>") {
		t.Fatalf("identity name was not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped identity name: %s", html)
	}
}

func TestHeaderUsesLocalizedLabels(t *testing.T) {
	t.Parallel()

	loc := mapLocalizer{
		keySidebarToggle: "Seitenleiste umschalten",
		keyLanguageMenu:  "Sprache wechseln",
		keyThemeToggle:   "Farbschema umschalten",
	}
	html := renderHTML(t, Header(context.Background(), Input{
		Props:     Props{OnToggleSidebar: func(context.Context) error { return nil }},
		Localizer: loc,
	}))
	for _, label := range []string{"Seitenleiste umschalten", "Sprache wechseln", "Farbschema umschalten"} {
		if !strings.Contains(html, `aria-label="`+label+`"`) {
			t.Fatalf("expected label %q: %s", label, html)
		}
	}
}

func TestHeaderWithUnlistedLocaleHasNoActiveEntry(t *testing.T) {
	t.Parallel()

	html := renderHTML(t, Header(context.Background(), Input{
		Locale: &fakeLocales{current: "fr", codes: []string{"en", "de"}},
		Router: fakeRouter{},
	}))
	if !strings.Contains(html, `hreflang="en"`) || !strings.Contains(html, `hreflang="de"`) {
		t.Fatalf("expected both menu entries: %s", html)
	}
	if strings.Contains(html, "aria-current") || strings.Contains(html, "text-green-600") {
		t.Fatalf("unexpected active entry: %s", html)
	}
}
