// Package i18n resolves the locale codes the admin chrome supports.
//
// Codes are stored in canonical BCP 47 form ("EN" becomes "en") because they
// double as flag asset names, menu labels and query values.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleSet is an immutable list of supported locale codes.
type LocaleSet struct {
	codes   []string
	tags    []language.Tag
	matcher language.Matcher
}

// NewLocaleSet validates codes and returns the canonical set in configuration
// order.
func NewLocaleSet(codes []string) (*LocaleSet, error) {
	set := &LocaleSet{}
	seen := make(map[string]struct{}, len(codes))
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", code, err)
		}
		canonical := tag.String()
		if _, ok := seen[canonical]; ok {
			return nil, fmt.Errorf("locale %q is configured more than once", code)
		}
		seen[canonical] = struct{}{}
		set.codes = append(set.codes, canonical)
		set.tags = append(set.tags, tag)
	}
	if len(set.codes) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}
	set.matcher = language.NewMatcher(set.tags)
	return set, nil
}

// MustLocaleSet is NewLocaleSet for static inputs.
func MustLocaleSet(codes ...string) *LocaleSet {
	set, err := NewLocaleSet(codes)
	if err != nil {
		panic(err)
	}
	return set
}

// Codes returns a copy of the configured codes.
func (s *LocaleSet) Codes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Default returns the first configured code.
func (s *LocaleSet) Default() string {
	if s == nil || len(s.codes) == 0 {
		return ""
	}
	return s.codes[0]
}

// Tag returns the language tag for a configured code, or language.Und.
func (s *LocaleSet) Tag(code string) language.Tag {
	if resolved, ok := s.Resolve(code); ok {
		for i, candidate := range s.codes {
			if candidate == resolved {
				return s.tags[i]
			}
		}
	}
	return language.Und
}

// Resolve maps a user-supplied value onto a configured code. Matching is
// exact on the canonical tag, so "EN" resolves to "en" but "en-GB" does not.
func (s *LocaleSet) Resolve(value string) (string, bool) {
	if s == nil {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	for i, tag := range s.tags {
		if tag == parsed {
			return s.codes[i], true
		}
	}
	return "", false
}

// Match picks the best configured code for an Accept-Language header value.
func (s *LocaleSet) Match(acceptLanguage string) (string, bool) {
	if s == nil {
		return "", false
	}
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(s.codes) {
		return "", false
	}
	return s.codes[index], true
}
