package routing

import (
	"strings"

	"github.com/goliatone/go-localeroute/internal/paths"
)

// PageKind flags the page types a path belongs to.
type PageKind struct {
	Home  bool
	Post  bool
	Tag   bool
	About bool
}

// Classify reports every page type path matches under any configured locale.
func (r *Router) Classify(path string) PageKind {
	return PageKind{
		Home:  r.IsHome(path),
		Post:  r.IsPost(path),
		Tag:   r.IsTag(path),
		About: r.IsAbout(path),
	}
}

// IsHome reports whether path is the home page of some locale.
func (r *Router) IsHome(path string) bool {
	return r.isPageType(path, "")
}

// IsPost reports whether path lives under the posts section of some locale.
func (r *Router) IsPost(path string) bool {
	return r.isPageType(path, postsPrefix)
}

// IsTag reports whether path lives under the tags section of some locale.
func (r *Router) IsTag(path string) bool {
	return r.isPageType(path, tagsPrefix)
}

// IsAbout reports whether path is the about page of some locale.
func (r *Router) IsAbout(path string) bool {
	return r.isPageType(path, aboutPrefix)
}

// isPageType compares the home page exactly, since every URL starts with
// some locale root, and every other section by prefix.
func (r *Router) isPageType(path, prefix string) bool {
	withBase := r.normalizer.Normalize(path, paths.WithBase(true))
	for _, lang := range r.locales.All() {
		target := r.localeURL(lang, prefix)
		if prefix == "" {
			if withBase == target {
				return true
			}
			continue
		}
		if strings.HasPrefix(withBase, target) {
			return true
		}
	}
	return false
}
