package header

import (
	"context"

	"golang.org/x/text/message"
)

// Identity is the signed-in user's display data. The zero value means no
// identity is available.
type Identity struct {
	ID        int64
	Name      string
	AvatarURL string
}

// ColorMode is the active display theme.
type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
)

// Valid reports whether m is one of the known modes.
func (m ColorMode) Valid() bool {
	return m == ColorModeLight || m == ColorModeDark
}

// IdentityProvider reads the current identity.
type IdentityProvider interface {
	Identity(ctx context.Context) (Identity, bool)
}

// LocaleProvider reads the current locale and the supported locale list.
type LocaleProvider interface {
	CurrentLocale(ctx context.Context) string
	Locales() []string
}

// Router builds the link that navigates to the site root with a locale
// selected.
type Router interface {
	LocaleHref(locale string) string
}

// ColorModeProvider reads and toggles the color mode.
type ColorModeProvider interface {
	ColorMode(ctx context.Context) ColorMode
	ToggleColorMode(ctx context.Context) error
}

// Palette is an optional ColorModeProvider extension that supplies the
// mode-dependent styling classes.
type Palette interface {
	BackgroundClass(mode ColorMode) string
	BorderClass(mode ColorMode) string
}

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

const (
	keySidebarToggle = "chrome.sidebar_toggle"
	keyLanguageMenu  = "chrome.language_menu"
	keyThemeToggle   = "chrome.theme_toggle"
)

var fallbackLabels = map[string]string{
	keySidebarToggle: "Toggle sidebar",
	keyLanguageMenu:  "Change language",
	keyThemeToggle:   "Toggle theme",
}

// T returns the translated string for key, or the English fallback when no
// localizer is available.
func T(loc Localizer, key string) string {
	if loc == nil {
		if label, ok := fallbackLabels[key]; ok {
			return label
		}
		return key
	}
	return loc.Sprintf(key)
}
