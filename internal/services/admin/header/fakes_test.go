package header

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

type fakeIdentity struct {
	identity Identity
	ok       bool
}

func (f fakeIdentity) Identity(context.Context) (Identity, bool) {
	return f.identity, f.ok
}

type fakeLocales struct {
	current string
	codes   []string
}

func (f *fakeLocales) CurrentLocale(context.Context) string { return f.current }

func (f *fakeLocales) Locales() []string { return f.codes }

type fakeRouter struct{}

func (fakeRouter) LocaleHref(locale string) string { return "/?lang=" + locale }

type fakeTheme struct {
	mode    ColorMode
	toggles int
	err     error
}

func (f *fakeTheme) ColorMode(context.Context) ColorMode { return f.mode }

func (f *fakeTheme) ToggleColorMode(context.Context) error {
	f.toggles++
	if f.err != nil {
		return f.err
	}
	if f.mode == ColorModeDark {
		f.mode = ColorModeLight
	} else {
		f.mode = ColorModeDark
	}
	return nil
}

type paletteTheme struct {
	fakeTheme
}

func (paletteTheme) BackgroundClass(mode ColorMode) string { return "bg-" + string(mode) }

func (paletteTheme) BorderClass(mode ColorMode) string { return "border-" + string(mode) }

type mapLocalizer map[string]string

func (m mapLocalizer) Sprintf(key message.Reference, args ...any) string {
	k := fmt.Sprint(key)
	if v, ok := m[k]; ok {
		return v
	}
	return k
}

type sidebarCounter struct {
	calls int
	err   error
}

func (s *sidebarCounter) toggle(context.Context) error {
	s.calls++
	return s.err
}

var errToggleFailed = errors.New("toggle failed")

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}
