package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-localeroute"
	"github.com/goliatone/go-localeroute/internal/logging"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// Options captures the command line overrides applied on top of the loaded
// configuration. Empty values keep the configured setting.
type Options struct {
	ConfigPath     string
	DefaultLocale  string
	Locales        []string
	BasePath       string
	DetectionMode  string
	SiteURL        string
	ContentDir     string
	Verbose        bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the routing module and the CLI logger.
type Module struct {
	Module *localeroute.Module
	Logger interfaces.Logger
}

// BuildModule loads the configuration, applies opts and constructs the module.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := localeroute.LoadConfig(strings.TrimSpace(opts.ConfigPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if trimmed := strings.TrimSpace(opts.DefaultLocale); trimmed != "" {
		cfg.DefaultLocale = trimmed
	}
	if len(opts.Locales) > 0 {
		cfg.MoreLocales = withoutDefault(opts.Locales, cfg.DefaultLocale)
	}
	if trimmed := strings.TrimSpace(opts.BasePath); trimmed != "" {
		cfg.Routing.BasePath = trimmed
	}
	if trimmed := strings.TrimSpace(opts.DetectionMode); trimmed != "" {
		cfg.Routing.DetectionMode = trimmed
	}
	if trimmed := strings.TrimSpace(opts.SiteURL); trimmed != "" {
		cfg.Site.URL = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ContentDir); trimmed != "" {
		cfg.Content.Dir = trimmed
	}
	if opts.Verbose {
		cfg.Features.Logger = true
		cfg.Logging.Level = "debug"
	}

	var moduleOpts []localeroute.Option
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, localeroute.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := localeroute.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise localeroute module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.CLILogger(module.Container().LoggerProvider()),
	}, nil
}

// SplitLocales parses a comma separated locale list into a trimmed slice.
func SplitLocales(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	locales := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	return locales
}

func withoutDefault(locales []string, defaultLocale string) []string {
	out := make([]string, 0, len(locales))
	for _, code := range locales {
		if code != defaultLocale {
			out = append(out, code)
		}
	}
	return out
}
