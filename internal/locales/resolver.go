package locales

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-localeroute/internal/paths"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// TrailingSlash selects how resolved URLs end.
type TrailingSlash string

const (
	// TrailingAlways appends "/" to every resolved URL.
	TrailingAlways TrailingSlash = "always"
	// TrailingNever strips trailing slashes, except for the site root.
	TrailingNever TrailingSlash = "never"
	// TrailingIgnore keeps the form of the requested path.
	TrailingIgnore TrailingSlash = "ignore"
)

// ParseTrailingSlash maps configuration strings to a TrailingSlash policy.
// The empty string selects TrailingAlways.
func ParseTrailingSlash(raw string) (TrailingSlash, error) {
	switch TrailingSlash(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TrailingAlways:
		return TrailingAlways, nil
	case TrailingNever:
		return TrailingNever, nil
	case TrailingIgnore:
		return TrailingIgnore, nil
	default:
		return "", fmt.Errorf("locales: unknown trailing slash policy %q", raw)
	}
}

// ResolverConfig configures PrefixResolver.
type ResolverConfig struct {
	Locales       Set
	BasePath      string
	PrefixDefault bool
	TrailingSlash TrailingSlash
}

// PrefixResolver implements the path prefix convention used by static site
// frameworks: every URL lives under the base path and, unless it belongs to
// the default locale in bare-default mode, under a "/<locale>" segment.
type PrefixResolver struct {
	locales       Set
	base          string
	prefixDefault bool
	trailing      TrailingSlash
}

var _ interfaces.LocaleURLResolver = (*PrefixResolver)(nil)

// NewPrefixResolver constructs a resolver from cfg.
func NewPrefixResolver(cfg ResolverConfig) *PrefixResolver {
	trailing := cfg.TrailingSlash
	if trailing == "" {
		trailing = TrailingAlways
	}
	return &PrefixResolver{
		locales:       cfg.Locales,
		base:          paths.NewNormalizer(cfg.BasePath).Base(),
		prefixDefault: cfg.PrefixDefault,
		trailing:      trailing,
	}
}

// RelativeLocaleURL implements interfaces.LocaleURLResolver.
func (r *PrefixResolver) RelativeLocaleURL(locale, path string) string {
	prefix := r.base
	if r.prefixDefault || !r.locales.IsDefault(locale) {
		prefix += "/" + locale
	}

	rest := strings.TrimLeft(path, "/")
	url := prefix + "/" + rest

	switch r.trailing {
	case TrailingNever:
		return paths.RemoveTrailingSlash(url)
	case TrailingIgnore:
		if rest == "" && !strings.HasSuffix(url, "/") {
			url += "/"
		}
		return url
	default:
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		return url
	}
}
