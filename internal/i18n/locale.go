// Package i18n provides the translation catalog and the locale provider.
//
// Lookups never fail: a key missing from the active locale falls back to
// English, then to the caller's defaultValue, then to the key itself.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported interface language.
type Locale string

const (
	EN Locale = "en"
	AR Locale = "ar"
)

// Default is the fallback locale.
const Default = EN

// Supported lists the locales with translation tables, in menu order.
var Supported = []Locale{EN, AR}

// Direction is the text layout direction.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Direction returns the layout direction for l.
func (l Locale) Direction() Direction {
	if l == AR {
		return RTL
	}
	return LTR
}

// ParseLocale returns the locale named by s.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case EN, AR:
		return Locale(s), true
	}
	return "", false
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// MatchLocale maps a BCP 47 or POSIX locale string ("ar_EG.UTF-8",
// "en-US") to a supported locale. Unrecognised input resolves to EN.
func MatchLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return EN
	}
	tag, err := language.Parse(s)
	if err != nil {
		return EN
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx != 1 {
		return EN
	}
	return AR
}

// DetectDeviceLocale derives the device locale from the POSIX environment.
func DetectDeviceLocale() Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return MatchLocale(v)
		}
	}
	return EN
}
