package routing

import (
	"fmt"
	"slices"
)

// NextInCycle returns the candidate following current, wrapping around at the
// end of the list. A current language missing from candidates is placed
// according to the configured MissingLocalePolicy.
func (r *Router) NextInCycle(current string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no candidate languages to cycle through", ErrInvalidArgument)
	}
	idx := r.positionOf(current, candidates)
	return candidates[(idx+1)%len(candidates)], nil
}

// Cycle returns the language following current across every configured locale.
func (r *Router) Cycle(current string) (string, error) {
	return r.NextInCycle(current, r.locales.All())
}

func (r *Router) positionOf(current string, candidates []string) int {
	if idx := slices.Index(candidates, current); idx >= 0 {
		return idx
	}
	switch r.missing {
	case MissingLocaleNext:
		return -1
	case MissingLocaleDefault:
		if idx := slices.Index(candidates, r.locales.Default()); idx >= 0 {
			return idx
		}
	}
	return 0
}

// priority orders languages for the switcher. Unknown codes share the
// default locale's weight.
func (r *Router) priority(lang string) int {
	p, _ := r.locales.Priority(lang)
	return p
}
