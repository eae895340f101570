package routing

import (
	"strings"

	"github.com/goliatone/go-localeroute/internal/paths"
)

// DetectLanguage maps path onto a configured locale. In BareDefault mode the
// default locale is returned when no other prefix matches, so the boolean is
// always true. In PrefixDefault mode an unprefixed path reports false.
func (r *Router) DetectLanguage(path string) (string, bool) {
	withBase := r.normalizer.Normalize(path, paths.WithBase(true))

	if r.mode == PrefixDefault {
		for _, lang := range r.locales.All() {
			if strings.HasPrefix(withBase, r.localeURL(lang, "")) {
				return lang, true
			}
		}
		return "", false
	}

	for _, lang := range r.locales.More() {
		if strings.HasPrefix(withBase, r.localeURL(lang, "")) {
			return lang, true
		}
	}
	return r.locales.Default(), true
}
