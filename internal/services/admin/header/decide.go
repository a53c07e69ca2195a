package header

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
)

// Props are the values the host layout passes to the header.
type Props struct {
	// IsSidebarOpen reflects the host's sidebar state.
	IsSidebarOpen bool
	// OnToggleSidebar is called once per sidebar-toggle activation. A nil
	// callback removes the sidebar toggle from the header.
	OnToggleSidebar func(ctx context.Context) error
	// RenderToggleIcon optionally overrides the sidebar-toggle icon. A nil
	// result falls back to the built-in collapse/expand icons.
	RenderToggleIcon func(isOpen bool) templ.Component
}

// Input bundles everything one header render reads.
type Input struct {
	Props     Props
	Identity  IdentityProvider
	Locale    LocaleProvider
	Router    Router
	Theme     ColorModeProvider
	Localizer Localizer
	// CurrentPath is where chrome actions return to after a plain form post.
	CurrentPath string
}

// ToggleIcon selects the sidebar-toggle icon.
type ToggleIcon int

const (
	ToggleIconExpand ToggleIcon = iota
	ToggleIconCollapse
	ToggleIconCustom
)

func (i ToggleIcon) String() string {
	switch i {
	case ToggleIconCollapse:
		return "collapse"
	case ToggleIconCustom:
		return "custom"
	default:
		return "expand"
	}
}

// ThemeIcon selects the theme-toggle icon.
type ThemeIcon int

const (
	ThemeIconMoon ThemeIcon = iota
	ThemeIconSun
)

func (i ThemeIcon) String() string {
	if i == ThemeIconSun {
		return "sun"
	}
	return "moon"
}

// LanguageEntry is one row of the language menu.
type LanguageEntry struct {
	Code    string
	Label   string
	FlagSrc string
	Href    string
	Active  bool
}

// ViewState is the decision record the header is drawn from.
type ViewState struct {
	ShowSidebarToggle bool
	ToggleIcon        ToggleIcon
	CustomToggleIcon  templ.Component

	Languages []LanguageEntry

	ColorMode ColorMode
	ThemeIcon ThemeIcon

	ShowIdentity    bool
	IdentityHasName bool
	Identity        Identity
	Initials        string

	SidebarToggleLabel string
	LanguageMenuLabel  string
	ThemeToggleLabel   string

	BackgroundClass string
	BorderClass     string

	SidebarActionURL string
	ThemeActionURL   string
	FragmentURL      string
	ReturnTo         string
}

// Decide computes the view state for one render. Missing collaborators
// degrade to an empty menu, no identity and the light color mode.
func Decide(ctx context.Context, in Input) ViewState {
	if ctx == nil {
		ctx = context.Background()
	}
	state := ViewState{
		SidebarToggleLabel: T(in.Localizer, keySidebarToggle),
		LanguageMenuLabel:  T(in.Localizer, keyLanguageMenu),
		ThemeToggleLabel:   T(in.Localizer, keyThemeToggle),
		SidebarActionURL:   routepath.ChromeSidebar,
		ThemeActionURL:     routepath.ChromeTheme,
		FragmentURL:        routepath.ChromeHeader,
		ReturnTo:           routepath.SafeReturnTo(in.CurrentPath),
	}

	if in.Props.OnToggleSidebar != nil {
		state.ShowSidebarToggle = true
		state.ToggleIcon, state.CustomToggleIcon = toggleIcon(in.Props)
	}

	state.Languages = languageEntries(ctx, in.Locale, in.Router)

	state.ColorMode = ColorModeLight
	if in.Theme != nil {
		if mode := in.Theme.ColorMode(ctx); mode.Valid() {
			state.ColorMode = mode
		}
	}
	state.ThemeIcon = ThemeIconMoon
	if state.ColorMode == ColorModeDark {
		state.ThemeIcon = ThemeIconSun
	}
	state.BackgroundClass, state.BorderClass = paletteClasses(in.Theme, state.ColorMode)

	if in.Identity != nil {
		if identity, ok := in.Identity.Identity(ctx); ok {
			state.Identity = identity
			state.ShowIdentity = identity.Name != "" || identity.AvatarURL != ""
			state.IdentityHasName = identity.Name != ""
			state.Initials = Initials(identity.Name)
		}
	}
	return state
}

func toggleIcon(props Props) (ToggleIcon, templ.Component) {
	if props.RenderToggleIcon != nil {
		if custom := props.RenderToggleIcon(props.IsSidebarOpen); custom != nil {
			return ToggleIconCustom, custom
		}
	}
	if props.IsSidebarOpen {
		return ToggleIconCollapse, nil
	}
	return ToggleIconExpand, nil
}

func languageEntries(ctx context.Context, locales LocaleProvider, router Router) []LanguageEntry {
	if locales == nil {
		return nil
	}
	codes := locales.Locales()
	if len(codes) == 0 {
		return nil
	}
	sorted := make([]string, len(codes))
	copy(sorted, codes)
	sort.Strings(sorted)

	current := locales.CurrentLocale(ctx)
	entries := make([]LanguageEntry, 0, len(sorted))
	for _, code := range sorted {
		href := routepath.Localized(routepath.Root, code)
		if router != nil {
			href = router.LocaleHref(code)
		}
		entries = append(entries, LanguageEntry{
			Code:    code,
			Label:   LanguageLabel(code),
			FlagSrc: routepath.Flag(code),
			Href:    href,
			Active:  code == current,
		})
	}
	return entries
}

// LanguageLabel returns the menu label for a locale code. Only "en" has its
// own label; every other code is shown as "German".
// TODO: replace with a code-to-display-name table once product confirms the
// supported locale list beyond en/de.
func LanguageLabel(code string) string {
	if code == "en" {
		return "English"
	}
	return "German"
}

// Initials returns the avatar fallback text: the first letter of the first
// two words of name.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	initials := firstRune(words[0])
	if len(words) > 1 {
		initials += firstRune(words[1])
	}
	return initials
}

func firstRune(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}

func paletteClasses(theme ColorModeProvider, mode ColorMode) (string, string) {
	if palette, ok := theme.(Palette); ok {
		return palette.BackgroundClass(mode), palette.BorderClass(mode)
	}
	if mode == ColorModeDark {
		return "bg-neutral-900", "border-gray-700"
	}
	return "bg-white", "border-gray-200"
}
