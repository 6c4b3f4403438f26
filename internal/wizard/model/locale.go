package model

// Locale is a supported UI language. The set is fixed; anything else falls
// back to the default.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// DefaultLocale is omitted from deep links.
const DefaultLocale = LocaleEN

// IsValid reports whether the locale is in the supported set.
func (l Locale) IsValid() bool {
	switch l {
	case LocaleEN, LocaleES:
		return true
	default:
		return false
	}
}

// ParseLocale validates a raw locale code, falling back to the default for
// absent or unrecognized values.
func ParseLocale(raw string) Locale {
	l := Locale(raw)
	if !l.IsValid() {
		return DefaultLocale
	}
	return l
}
