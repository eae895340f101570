package routing

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-localeroute/internal/locales"
	"github.com/goliatone/go-localeroute/internal/paths"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// DetectionMode selects how locales map onto path prefixes.
type DetectionMode string

const (
	// PrefixDefault expects every locale, the default included, as a path prefix.
	PrefixDefault DetectionMode = "prefix-default"
	// BareDefault serves the default locale without a prefix.
	BareDefault DetectionMode = "bare-default"
)

// ParseDetectionMode maps configuration values onto a DetectionMode. The
// empty string selects BareDefault.
func ParseDetectionMode(raw string) (DetectionMode, error) {
	switch DetectionMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", BareDefault:
		return BareDefault, nil
	case PrefixDefault:
		return PrefixDefault, nil
	default:
		return "", fmt.Errorf("routing: unknown detection mode %q", raw)
	}
}

// MissingLocalePolicy decides where cycling starts when the current language
// is not among the candidates.
type MissingLocalePolicy string

const (
	// MissingLocaleFirst treats the current language as the first candidate.
	MissingLocaleFirst MissingLocalePolicy = "first"
	// MissingLocaleDefault treats the current language as the default locale
	// when it is a candidate, and as the first candidate otherwise.
	MissingLocaleDefault MissingLocalePolicy = "default"
	// MissingLocaleNext selects the first candidate, as if the current
	// language sat just before the list.
	MissingLocaleNext MissingLocalePolicy = "next"
)

// ParseMissingLocalePolicy maps configuration values onto a policy. The
// empty string selects MissingLocaleFirst.
func ParseMissingLocalePolicy(raw string) (MissingLocalePolicy, error) {
	switch MissingLocalePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MissingLocaleFirst:
		return MissingLocaleFirst, nil
	case MissingLocaleDefault:
		return MissingLocaleDefault, nil
	case MissingLocaleNext:
		return MissingLocaleNext, nil
	default:
		return "", fmt.Errorf("routing: unknown missing locale policy %q", raw)
	}
}

// Config captures the read-only routing configuration.
type Config struct {
	Locales       locales.Set
	BasePath      string
	Mode          DetectionMode
	MissingLocale MissingLocalePolicy
	// TrailingSlash only applies to the built-in resolver used when New
	// receives a nil resolver.
	TrailingSlash locales.TrailingSlash
	SlugifyTags   bool
}

// Router derives languages from paths, classifies pages and builds localized
// paths. All methods are pure and safe for concurrent use.
type Router struct {
	locales    locales.Set
	resolver   interfaces.LocaleURLResolver
	normalizer paths.Normalizer
	mode       DetectionMode
	missing    MissingLocalePolicy
	slugify    bool
}

// New constructs a Router. When resolver is nil the prefix convention from
// the locales package is used.
func New(cfg Config, resolver interfaces.LocaleURLResolver) *Router {
	mode := cfg.Mode
	if mode == "" {
		mode = BareDefault
	}
	missing := cfg.MissingLocale
	if missing == "" {
		missing = MissingLocaleFirst
	}
	if resolver == nil {
		resolver = locales.NewPrefixResolver(locales.ResolverConfig{
			Locales:       cfg.Locales,
			BasePath:      cfg.BasePath,
			PrefixDefault: mode == PrefixDefault,
			TrailingSlash: cfg.TrailingSlash,
		})
	}

	return &Router{
		locales:    cfg.Locales,
		resolver:   resolver,
		normalizer: paths.NewNormalizer(cfg.BasePath),
		mode:       mode,
		missing:    missing,
		slugify:    cfg.SlugifyTags,
	}
}

// Locales returns the configured locale set.
func (r *Router) Locales() locales.Set {
	return r.locales
}

// Mode returns the active detection mode.
func (r *Router) Mode() DetectionMode {
	return r.mode
}

// Resolver exposes the locale-URL resolver used for every produced URL.
func (r *Router) Resolver() interfaces.LocaleURLResolver {
	return r.resolver
}

// Base returns the canonical deployment base path, "" at the root.
func (r *Router) Base() string {
	return r.normalizer.Base()
}

// Normalize canonicalizes p using the site base path.
func (r *Router) Normalize(p string, opts ...paths.Option) string {
	return r.normalizer.Normalize(p, opts...)
}

// localeURL returns the with-base, trailing slash form of the resolved URL
// so prefix comparisons stop on segment boundaries.
func (r *Router) localeURL(lang, prefix string) string {
	return r.normalizer.Normalize(r.resolver.RelativeLocaleURL(lang, prefix), paths.WithBase(true))
}
