package routing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-localeroute/internal/paths"
)

const (
	tagsPrefix  = "tags"
	postsPrefix = "posts"
	aboutPrefix = "about"
)

// TagSegment returns the path segment used for tag, slugified when the
// router was configured with SlugifyTags.
func (r *Router) TagSegment(tag string) string {
	if r.slugify {
		if normalized, err := slug.Normalize(tag); err == nil && normalized != "" {
			return normalized
		}
	}
	return tag
}

// TagPath returns the localized URL of the tag page.
func (r *Router) TagPath(tag, lang string) string {
	return r.resolver.RelativeLocaleURL(lang, tagsPrefix+"/"+r.TagSegment(tag))
}

// PostPath returns the localized URL of the post page.
func (r *Router) PostPath(postSlug, lang string) string {
	return r.resolver.RelativeLocaleURL(lang, postsPrefix+"/"+postSlug)
}

// LocalizedPath resolves an arbitrary locale independent target under lang.
func (r *Router) LocalizedPath(lang, target string) string {
	return r.resolver.RelativeLocaleURL(lang, target)
}

// AlternativeLangPath rewrites currentPath, which must belong to currentLang,
// into the equivalent path for nextLang. A currentPath without a trailing
// slash yields a result without one.
func (r *Router) AlternativeLangPath(currentPath, currentLang, nextLang string) (string, error) {
	normalized := r.normalizer.Normalize(currentPath)
	prefix := r.normalizer.Normalize(r.resolver.RelativeLocaleURL(currentLang, ""))

	if !strings.HasPrefix(normalized, prefix) {
		return "", &LangMismatchError{Path: currentPath, Lang: currentLang}
	}

	target := r.resolver.RelativeLocaleURL(nextLang, normalized[len(prefix):])
	if !strings.HasSuffix(currentPath, "/") {
		target = paths.RemoveTrailingSlash(target)
	}
	return target, nil
}

// NextLangPath builds the path of the language that follows the one detected
// in currentPath. A nil supported list cycles through every configured
// locale; a non-nil empty list is rejected with ErrInvalidArgument.
func (r *Router) NextLangPath(currentPath string, supported []string) (string, error) {
	currentLang, ok := r.DetectLanguage(currentPath)
	if !ok {
		return "", &UnlocalizedPathError{Path: currentPath}
	}

	var candidates []string
	if supported == nil {
		candidates = r.locales.All()
	} else {
		candidates = slices.Clone(supported)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no available languages, supported list is empty", ErrInvalidArgument)
	}

	slices.SortStableFunc(candidates, func(a, b string) int {
		return cmp.Compare(r.priority(a), r.priority(b))
	})

	nextLang, err := r.NextInCycle(currentLang, candidates)
	if err != nil {
		return "", err
	}
	return r.AlternativeLangPath(currentPath, currentLang, nextLang)
}
