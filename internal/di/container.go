package di

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-localeroute/internal/content"
	"github.com/goliatone/go-localeroute/internal/locales"
	"github.com/goliatone/go-localeroute/internal/logging"
	"github.com/goliatone/go-localeroute/internal/logging/console"
	"github.com/goliatone/go-localeroute/internal/logging/gologger"
	"github.com/goliatone/go-localeroute/internal/permalink"
	"github.com/goliatone/go-localeroute/internal/routing"
	"github.com/goliatone/go-localeroute/internal/runtimeconfig"
	"github.com/goliatone/go-localeroute/internal/staticpaths"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// Container wires the routing services from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	locales        locales.Set
	resolver       interfaces.LocaleURLResolver
	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	contentFS      fs.FS

	router     *routing.Router
	permalinks *permalink.Builder
	static     *staticpaths.Enumerator
	loader     *content.Loader
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithResolver replaces the built-in prefix resolver.
func WithResolver(resolver interfaces.LocaleURLResolver) Option {
	return func(c *Container) {
		c.resolver = resolver
	}
}

// WithLoggerProvider overrides the provider selected by the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter sets the destination of the console provider.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithContentFS overrides the filesystem posts are read from. It defaults to
// the configured content directory.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureRouting(); err != nil {
		return nil, err
	}
	c.configureContent()

	logging.ModuleLogger(c.loggerProvider, "").Info("localeroute.configured",
		"locales", c.locales.All(),
		"mode", string(c.router.Mode()),
		"base_path", cfg.Routing.BasePath,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level, err := console.ParseLevel(logCfg.Level)
		if err != nil {
			return err
		}
		writer := c.logWriter
		if writer == nil {
			writer = os.Stderr
		}
		c.loggerProvider = console.NewProvider(console.Options{Writer: writer, MinLevel: &level})
	}
	return nil
}

func (c *Container) configureRouting() error {
	routingCfg := c.Config.Routing

	mode, err := routing.ParseDetectionMode(routingCfg.DetectionMode)
	if err != nil {
		return err
	}
	missing, err := routing.ParseMissingLocalePolicy(routingCfg.MissingLocale)
	if err != nil {
		return err
	}
	trailing, err := locales.ParseTrailingSlash(routingCfg.TrailingSlash)
	if err != nil {
		return err
	}

	c.locales = locales.NewSet(c.Config.DefaultLocale, c.Config.MoreLocales)
	c.router = routing.New(routing.Config{
		Locales:       c.locales,
		BasePath:      routingCfg.BasePath,
		Mode:          mode,
		MissingLocale: missing,
		TrailingSlash: trailing,
		SlugifyTags:   routingCfg.SlugifyTags,
	}, c.resolver)
	c.resolver = c.router.Resolver()

	c.permalinks, err = permalink.New(c.router, c.Config.Site.URL,
		permalink.WithLogger(logging.PermalinkLogger(c.loggerProvider)))
	if err != nil {
		return fmt.Errorf("di: permalinks: %w", err)
	}
	c.static = staticpaths.New(c.router)
	return nil
}

func (c *Container) configureContent() {
	fsys := c.contentFS
	if fsys == nil {
		dir := strings.TrimSpace(c.Config.Content.Dir)
		if dir == "" {
			dir = "."
		}
		fsys = os.DirFS(dir)
	}
	c.loader = content.NewLoader(fsys, content.Config{
		Locales:       c.locales,
		Pattern:       c.Config.Content.Pattern,
		IncludeDrafts: c.Config.Content.IncludeDrafts,
		RenderHTML:    c.Config.Content.RenderHTML,
	}, content.WithLogger(logging.ContentLogger(c.loggerProvider)))
}

// Locales returns the configured locale set.
func (c *Container) Locales() locales.Set {
	return c.locales
}

// Resolver returns the locale-URL resolver shared by every service.
func (c *Container) Resolver() interfaces.LocaleURLResolver {
	return c.resolver
}

// Router returns the path router.
func (c *Container) Router() *routing.Router {
	return c.router
}

// Permalinks returns the absolute URL builder.
func (c *Container) Permalinks() *permalink.Builder {
	return c.permalinks
}

// StaticPaths returns the static route enumerator.
func (c *Container) StaticPaths() *staticpaths.Enumerator {
	return c.static
}

// ContentLoader returns the post loader.
func (c *Container) ContentLoader() *content.Loader {
	return c.loader
}

// LoggerProvider returns the configured provider, or nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}
