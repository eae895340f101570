package localeroute

import (
	"context"
	"io"
	"io/fs"

	"github.com/goliatone/go-localeroute/internal/content"
	"github.com/goliatone/go-localeroute/internal/di"
	"github.com/goliatone/go-localeroute/internal/logging"
	"github.com/goliatone/go-localeroute/internal/paths"
	"github.com/goliatone/go-localeroute/internal/permalink"
	"github.com/goliatone/go-localeroute/internal/routing"
	"github.com/goliatone/go-localeroute/internal/staticpaths"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

type (
	// PageKind reports which page types a path belongs to.
	PageKind = routing.PageKind
	// PageInfo bundles the language and page kind of a path.
	PageInfo = routing.PageInfo
	// DetectionMode selects how locales map onto path prefixes.
	DetectionMode = routing.DetectionMode

	// Alternate is one hreflang link.
	Alternate = permalink.Alternate
	// FeedKind selects RSS or Atom.
	FeedKind = permalink.FeedKind
	// Entry is a post loaded from the content filesystem.
	Entry = content.Entry
	// Route is one page of the static build.
	Route = staticpaths.Route
	// LangParam is the parameter set of a [lang] route.
	LangParam = staticpaths.LangParam

	// NormalizeOption tweaks a single Normalize call.
	NormalizeOption = paths.Option
)

// Detection modes and feed kinds.
const (
	PrefixDefault = routing.PrefixDefault
	BareDefault   = routing.BareDefault

	FeedRSS  = permalink.FeedRSS
	FeedAtom = permalink.FeedAtom
)

// Normalize options.
var (
	WithLeadingSlash  = paths.WithLeadingSlash
	WithTrailingSlash = paths.WithTrailingSlash
	WithBase          = paths.WithBase
)

// Option customises the module during construction.
type Option = di.Option

// WithResolver plugs in the host framework's locale-URL resolver.
func WithResolver(resolver interfaces.LocaleURLResolver) Option {
	return di.WithResolver(resolver)
}

// WithLoggerProvider overrides the provider selected by the configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithLogWriter redirects the console logger.
func WithLogWriter(w io.Writer) Option {
	return di.WithLogWriter(w)
}

// WithContentFS sets the filesystem posts are loaded from.
func WithContentFS(fsys fs.FS) Option {
	return di.WithContentFS(fsys)
}

// Module is the locale routing façade. It is immutable and safe for
// concurrent use once constructed.
type Module struct {
	container *di.Container
	router    *routing.Router
	logger    interfaces.Logger
}

// New validates cfg and builds a module.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, wrapConfigError(err)
	}
	return &Module{
		container: container,
		router:    container.Router(),
		logger:    logging.RoutingLogger(container.LoggerProvider()),
	}, nil
}

// NewFromFile loads the configuration at path (see LoadConfig) and builds a
// module from it.
func NewFromFile(path string, opts ...Option) (*Module, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, wrapConfigError(err)
	}
	return New(cfg, opts...)
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the configuration the module was built from.
func (m *Module) Config() Config {
	return m.container.Config
}

// DefaultLocale returns the default locale code.
func (m *Module) DefaultLocale() string {
	return m.container.Locales().Default()
}

// AllLocales returns the default locale followed by the additional locales.
func (m *Module) AllLocales() []string {
	return m.container.Locales().All()
}

// Normalize canonicalises p. By default the result has a leading and a
// trailing slash and no base path.
func (m *Module) Normalize(p string, opts ...NormalizeOption) string {
	return m.router.Normalize(p, opts...)
}

// DetectLanguage returns the locale owning path. The boolean is false only in
// prefix-default mode for paths without a locale prefix.
func (m *Module) DetectLanguage(path string) (string, bool) {
	return m.router.DetectLanguage(path)
}

// NextInCycle returns the candidate following current in priority order.
func (m *Module) NextInCycle(current string, candidates []string) (string, error) {
	next, err := m.router.NextInCycle(current, candidates)
	return next, m.fail("next_in_cycle", "", current, err)
}

// Cycle returns the configured locale following current.
func (m *Module) Cycle(current string) (string, error) {
	next, err := m.router.Cycle(current)
	return next, m.fail("cycle", "", current, err)
}

// TagPath returns the localized tag page URL.
func (m *Module) TagPath(tag, lang string) string {
	return m.router.TagPath(tag, lang)
}

// PostPath returns the localized post URL.
func (m *Module) PostPath(slug, lang string) string {
	return m.router.PostPath(slug, lang)
}

// LocalizedPath resolves target under lang.
func (m *Module) LocalizedPath(lang, target string) string {
	return m.router.LocalizedPath(lang, target)
}

// AlternativeLangPath rewrites currentPath from currentLang into nextLang.
func (m *Module) AlternativeLangPath(currentPath, currentLang, nextLang string) (string, error) {
	out, err := m.router.AlternativeLangPath(currentPath, currentLang, nextLang)
	return out, m.fail("alternative_lang_path", currentPath, currentLang, err)
}

// NextLangPath returns currentPath in the language following its own. A nil
// supported list cycles through every configured locale.
func (m *Module) NextLangPath(currentPath string, supported []string) (string, error) {
	out, err := m.router.NextLangPath(currentPath, supported)
	return out, m.fail("next_lang_path", currentPath, "", err)
}

// Classify reports the page kinds of path.
func (m *Module) Classify(path string) PageKind {
	return m.router.Classify(path)
}

// IsHome, IsPost, IsTag and IsAbout report single page kinds of path.
func (m *Module) IsHome(path string) bool  { return m.router.IsHome(path) }
func (m *Module) IsPost(path string) bool  { return m.router.IsPost(path) }
func (m *Module) IsTag(path string) bool   { return m.router.IsTag(path) }
func (m *Module) IsAbout(path string) bool { return m.router.IsAbout(path) }

// PageInfo combines language detection and classification.
func (m *Module) PageInfo(path string) PageInfo {
	return m.router.PageInfo(path)
}

// PostURL returns the absolute URL of a post.
func (m *Module) PostURL(lang, slug string) (string, error) {
	out, err := m.container.Permalinks().Post(lang, slug)
	return out, wrapPermalinkError(err)
}

// TagURL returns the absolute URL of a tag page.
func (m *Module) TagURL(lang, tag string) (string, error) {
	out, err := m.container.Permalinks().Tag(lang, tag)
	return out, wrapPermalinkError(err)
}

// HomeURL returns the absolute URL of a locale home page.
func (m *Module) HomeURL(lang string) (string, error) {
	out, err := m.container.Permalinks().Home(lang)
	return out, wrapPermalinkError(err)
}

// FeedURL returns the absolute URL of a locale feed.
func (m *Module) FeedURL(lang string, kind FeedKind) (string, error) {
	out, err := m.container.Permalinks().Feed(lang, kind)
	return out, wrapPermalinkError(err)
}

// Alternates lists the absolute URL of path in every locale plus x-default.
func (m *Module) Alternates(path string) ([]Alternate, error) {
	out, err := m.container.Permalinks().Alternates(path)
	return out, wrapPermalinkError(err)
}

// LoadEntries reads posts from the configured content filesystem.
func (m *Module) LoadEntries(ctx context.Context) ([]Entry, error) {
	entries, err := m.container.ContentLoader().Load(ctx)
	return entries, wrapContentError(err)
}

// LangParams returns the parameters of [lang] routes.
func (m *Module) LangParams() []LangParam {
	return m.container.StaticPaths().LangParams()
}

// StaticRoutes loads the posts and lists every page of the site.
func (m *Module) StaticRoutes(ctx context.Context) ([]Route, error) {
	entries, err := m.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return m.container.StaticPaths().Routes(entries), nil
}

// Sitemap renders sitemap.xml for every static route.
func (m *Module) Sitemap(ctx context.Context) (string, error) {
	routes, err := m.StaticRoutes(ctx)
	if err != nil {
		return "", err
	}
	out, err := staticpaths.Sitemap(routes, m.container.Permalinks())
	return out, wrapPermalinkError(err)
}

// Robots renders robots.txt referencing the sitemap.
func (m *Module) Robots() string {
	return staticpaths.Robots(m.container.Permalinks().Origin(), m.router.Base())
}

func (m *Module) fail(op, path, lang string, err error) error {
	if err == nil {
		return nil
	}
	logging.WithRouteContext(m.logger, path, lang, op).Debug("routing.failed", "error", err)
	return wrapRoutingError(err)
}
