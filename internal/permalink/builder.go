package permalink

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-localeroute/internal/logging"
	"github.com/goliatone/go-localeroute/internal/routing"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// Route names registered in every locale group.
const (
	RouteHome = "home"
	RoutePost = "post"
	RouteTag  = "tag"
	RouteRSS  = "rss"
	RouteAtom = "atom"
)

// FeedKind selects a syndication format.
type FeedKind string

const (
	FeedRSS  FeedKind = "rss"
	FeedAtom FeedKind = "atom"
)

var feedFiles = map[FeedKind]string{
	FeedRSS:  "rss.xml",
	FeedAtom: "atom.xml",
}

// XDefault is the hreflang value used for the default locale fallback.
const XDefault = "x-default"

// Alternate is one <link rel="alternate"> entry.
type Alternate struct {
	Lang string
	Href string
}

// Builder produces absolute URLs through a go-urlkit route manager holding one
// group per locale. Route templates come from the router's resolver.
type Builder struct {
	router  *routing.Router
	origin  string
	manager *urlkit.RouteManager
	logger  interfaces.Logger

	mu     sync.RWMutex
	groups map[string]*urlkit.Group
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New registers the locale groups of router under siteURL. An empty siteURL
// yields site-relative URLs.
func New(router *routing.Router, siteURL string, opts ...Option) (*Builder, error) {
	if router == nil {
		return nil, fmt.Errorf("permalink: router is required")
	}
	b := &Builder{
		router: router,
		origin: strings.TrimRight(strings.TrimSpace(siteURL), "/"),
		logger: logging.NoOp(),
		groups: make(map[string]*urlkit.Group),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.manager = urlkit.NewRouteManager(b.routeConfig())
	return b, nil
}

// Origin returns the scheme and host prefixed to every URL.
func (b *Builder) Origin() string {
	return b.origin
}

func (b *Builder) routeConfig() *urlkit.Config {
	resolver := b.router.Resolver()
	all := b.router.Locales().All()
	groups := make([]urlkit.GroupConfig, 0, len(all))
	for _, lang := range all {
		home := resolver.RelativeLocaleURL(lang, "")
		root := strings.TrimSuffix(home, "/")
		groups = append(groups, urlkit.GroupConfig{
			Name:    lang,
			BaseURL: b.origin,
			Paths: map[string]string{
				RouteHome: home,
				RoutePost: resolver.RelativeLocaleURL(lang, "posts/:slug"),
				RouteTag:  resolver.RelativeLocaleURL(lang, "tags/:tag"),
				RouteRSS:  root + "/" + feedFiles[FeedRSS],
				RouteAtom: root + "/" + feedFiles[FeedAtom],
			},
		})
	}
	return &urlkit.Config{Groups: groups}
}

// Home returns the absolute URL of the locale home page.
func (b *Builder) Home(lang string) (string, error) {
	return b.build(lang, RouteHome, nil)
}

// Post returns the absolute URL of a post.
func (b *Builder) Post(lang, slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		return "", fmt.Errorf("permalink: post slug is required")
	}
	return b.build(lang, RoutePost, map[string]any{"slug": slug})
}

// Tag returns the absolute URL of a tag page.
func (b *Builder) Tag(lang, tag string) (string, error) {
	segment := b.router.TagSegment(tag)
	if strings.TrimSpace(segment) == "" {
		return "", fmt.Errorf("permalink: tag is required")
	}
	return b.build(lang, RouteTag, map[string]any{"tag": segment})
}

// Feed returns the absolute URL of the locale feed.
func (b *Builder) Feed(lang string, kind FeedKind) (string, error) {
	switch kind {
	case FeedRSS:
		return b.build(lang, RouteRSS, nil)
	case FeedAtom:
		return b.build(lang, RouteAtom, nil)
	default:
		return "", fmt.Errorf("permalink: unknown feed kind %q", kind)
	}
}

// Alternates lists the absolute URL of path in every locale, followed by an
// x-default entry pointing at the default locale.
func (b *Builder) Alternates(path string) ([]Alternate, error) {
	current, ok := b.router.DetectLanguage(path)
	if !ok {
		return nil, &routing.UnlocalizedPathError{Path: path}
	}

	set := b.router.Locales()
	out := make([]Alternate, 0, set.Len()+1)
	var fallback string
	for _, lang := range set.All() {
		href, err := b.router.AlternativeLangPath(path, current, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, Alternate{Lang: lang, Href: b.origin + href})
		if set.IsDefault(lang) {
			fallback = b.origin + href
		}
	}
	return append(out, Alternate{Lang: XDefault, Href: fallback}), nil
}

func (b *Builder) build(lang, route string, params map[string]any) (url string, err error) {
	defer func() {
		if err != nil {
			logging.WithRouteContext(b.logger, "", lang, route).Debug("permalink.build_failed", "error", err)
		}
	}()

	group, err := b.group(lang)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}

func (b *Builder) group(lang string) (*urlkit.Group, error) {
	b.mu.RLock()
	group, ok := b.groups[lang]
	b.mu.RUnlock()
	if ok {
		return group, nil
	}

	if !b.router.Locales().Contains(lang) {
		return nil, fmt.Errorf("permalink: locale %q is not configured", lang)
	}
	group, err := lookupGroup(b.manager, lang)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.groups[lang] = group
	b.mu.Unlock()
	return group, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group, err = nil, fmt.Errorf("permalink: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	if group == nil {
		return nil, fmt.Errorf("permalink: route group %q not found", name)
	}
	return group, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			builder, err = nil, fmt.Errorf("permalink: route %q: %v", route, rec)
		}
	}()
	return group.Builder(route), nil
}
