package locales

import "strings"

// Set holds the configured locales in priority order: the default locale
// first, followed by the additional locales as configured. A Set is
// immutable; accessors hand out copies.
type Set struct {
	defaultLocale string
	more          []string
	priority      map[string]int
}

// NewSet builds a Set from the default locale and the ordered additional
// locales. Empty entries and entries equal to the default are ignored.
// Uniqueness is validated by runtimeconfig.Config.Validate.
func NewSet(defaultLocale string, more []string) Set {
	defaultLocale = strings.TrimSpace(defaultLocale)
	cleaned := make([]string, 0, len(more))
	for _, code := range more {
		code = strings.TrimSpace(code)
		if code == "" || code == defaultLocale {
			continue
		}
		cleaned = append(cleaned, code)
	}

	priority := make(map[string]int, len(cleaned)+1)
	priority[defaultLocale] = 0
	for idx, code := range cleaned {
		if _, exists := priority[code]; !exists {
			priority[code] = idx + 1
		}
	}

	return Set{
		defaultLocale: defaultLocale,
		more:          cleaned,
		priority:      priority,
	}
}

// Default returns the default locale code.
func (s Set) Default() string {
	return s.defaultLocale
}

// More returns the non-default locales in configured order.
func (s Set) More() []string {
	return append([]string(nil), s.more...)
}

// All returns the default locale followed by the non-default locales.
func (s Set) All() []string {
	out := make([]string, 0, len(s.more)+1)
	out = append(out, s.defaultLocale)
	return append(out, s.more...)
}

// Len reports the number of configured locales.
func (s Set) Len() int {
	return len(s.more) + 1
}

// Contains reports whether code is a configured locale.
func (s Set) Contains(code string) bool {
	_, ok := s.priority[code]
	return ok
}

// Priority returns the ordering weight of code: 0 for the default locale and
// the 1-based position for the others. Unknown codes report false.
func (s Set) Priority(code string) (int, bool) {
	p, ok := s.priority[code]
	return p, ok
}

// IsDefault reports whether code is the default locale.
func (s Set) IsDefault(code string) bool {
	return code == s.defaultLocale
}
