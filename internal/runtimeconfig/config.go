package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"

	"github.com/goliatone/go-localeroute/internal/paths"
)

// ErrDefaultLocaleRequired indicates the configuration lacks a default locale.
var ErrDefaultLocaleRequired = errors.New("localeroute config: default locale is required")

// ErrDuplicateLocale indicates a locale code appears more than once across the
// default and additional locales.
var ErrDuplicateLocale = errors.New("localeroute config: locale codes must be unique")
var ErrDetectionModeInvalid = errors.New("localeroute config: detection mode is invalid")
var ErrMissingLocalePolicyInvalid = errors.New("localeroute config: missing locale policy is invalid")
var ErrTrailingSlashInvalid = errors.New("localeroute config: trailing slash policy is invalid")
var ErrLoggingProviderRequired = errors.New("localeroute config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("localeroute config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("localeroute config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("localeroute config: logging format is invalid")

// Config aggregates the read-only site configuration. It is loaded once at
// startup and never mutated afterwards.
type Config struct {
	DefaultLocale string        `yaml:"default_locale" toml:"default_locale" env:"LOCALEROUTE_DEFAULT_LOCALE"`
	MoreLocales   []string      `yaml:"more_locales"   toml:"more_locales"   env:"LOCALEROUTE_MORE_LOCALES" envSeparator:","`
	Routing       RoutingConfig `yaml:"routing"        toml:"routing"`
	Site          SiteConfig    `yaml:"site"           toml:"site"`
	Content       ContentConfig `yaml:"content"        toml:"content"`
	Features      Features      `yaml:"features"       toml:"features"`
	Logging       LoggingConfig `yaml:"logging"        toml:"logging"`
}

// RoutingConfig captures how locales map onto URL paths.
type RoutingConfig struct {
	// DetectionMode is "bare-default" or "prefix-default".
	DetectionMode string `yaml:"detection_mode" toml:"detection_mode" env:"LOCALEROUTE_DETECTION_MODE"`
	BasePath      string `yaml:"base_path"      toml:"base_path"      env:"LOCALEROUTE_BASE_PATH"`
	// TrailingSlash is "always", "never" or "ignore".
	TrailingSlash string `yaml:"trailing_slash" toml:"trailing_slash" env:"LOCALEROUTE_TRAILING_SLASH"`
	// MissingLocale is "first", "default" or "next".
	MissingLocale string `yaml:"missing_locale" toml:"missing_locale" env:"LOCALEROUTE_MISSING_LOCALE"`
	SlugifyTags   bool   `yaml:"slugify_tags"   toml:"slugify_tags"   env:"LOCALEROUTE_SLUGIFY_TAGS"`
}

// SiteConfig captures the public origin used for absolute URLs.
type SiteConfig struct {
	URL string `yaml:"url" toml:"url" env:"LOCALEROUTE_SITE_URL"`
}

// ContentConfig captures where post sources live.
type ContentConfig struct {
	Dir           string `yaml:"dir"            toml:"dir"            env:"LOCALEROUTE_CONTENT_DIR"`
	Pattern       string `yaml:"pattern"        toml:"pattern"        env:"LOCALEROUTE_CONTENT_PATTERN"`
	IncludeDrafts bool   `yaml:"include_drafts" toml:"include_drafts" env:"LOCALEROUTE_CONTENT_INCLUDE_DRAFTS"`
	RenderHTML    bool   `yaml:"render_html"    toml:"render_html"    env:"LOCALEROUTE_CONTENT_RENDER_HTML"`
}

// Features toggles optional functionality.
type Features struct {
	Logger bool `yaml:"logger" toml:"logger" env:"LOCALEROUTE_FEATURE_LOGGER"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"   toml:"provider"   env:"LOCALEROUTE_LOG_PROVIDER"`
	Level     string   `yaml:"level"      toml:"level"      env:"LOCALEROUTE_LOG_LEVEL"`
	Format    string   `yaml:"format"     toml:"format"     env:"LOCALEROUTE_LOG_FORMAT"`
	AddSource bool     `yaml:"add_source" toml:"add_source" env:"LOCALEROUTE_LOG_ADD_SOURCE"`
	Focus     []string `yaml:"focus"      toml:"focus"      env:"LOCALEROUTE_LOG_FOCUS" envSeparator:","`
}

// DefaultConfig returns a single-locale site served from the root.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		MoreLocales:   nil,
		Routing: RoutingConfig{
			DetectionMode: "bare-default",
			TrailingSlash: "always",
			MissingLocale: "first",
		},
		Content: ContentConfig{
			Dir:     "content",
			Pattern: "*.md",
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// AllLocales returns the default locale followed by the additional locales.
func (cfg Config) AllLocales() []string {
	out := make([]string, 0, len(cfg.MoreLocales)+1)
	out = append(out, strings.TrimSpace(cfg.DefaultLocale))
	for _, code := range cfg.MoreLocales {
		out = append(out, strings.TrimSpace(code))
	}
	return out
}

// Validate performs consistency checks, returning sentinel errors for
// semantic problems and validation.Errors for malformed values.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	seen := map[string]struct{}{}
	for _, code := range cfg.AllLocales() {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateLocale, code)
		}
		seen[code] = struct{}{}
	}
	if mode := normalizeValue(cfg.Routing.DetectionMode); mode != "" && !isSupportedDetectionMode(mode) {
		return fmt.Errorf("%w: %s", ErrDetectionModeInvalid, cfg.Routing.DetectionMode)
	}
	if policy := normalizeValue(cfg.Routing.MissingLocale); policy != "" && !isSupportedMissingLocale(policy) {
		return fmt.Errorf("%w: %s", ErrMissingLocalePolicyInvalid, cfg.Routing.MissingLocale)
	}
	if trailing := normalizeValue(cfg.Routing.TrailingSlash); trailing != "" && !isSupportedTrailingSlash(trailing) {
		return fmt.Errorf("%w: %s", ErrTrailingSlashInvalid, cfg.Routing.TrailingSlash)
	}
	if cfg.Features.Logger {
		provider := normalizeValue(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}

	return validation.Errors{
		"default_locale": validation.Validate(strings.TrimSpace(cfg.DefaultLocale), validation.By(localeTagRule)),
		"more_locales":   validation.Validate(cfg.MoreLocales, validation.Each(validation.Required, validation.By(localeTagRule))),
		"base_path":      validation.Validate(cfg.Routing.BasePath, validation.By(basePathRule)),
		"site_url":       validation.Validate(cfg.Site.URL, validation.By(siteURLRule)),
	}.Filter()
}

func localeTagRule(value any) error {
	code, _ := value.(string)
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if strings.ContainsAny(code, "/?#") {
		return validation.NewError("localeroute.config.locale_invalid", "must be usable as a path segment")
	}
	if _, err := language.Parse(code); err != nil {
		return validation.NewError("localeroute.config.locale_invalid", "must be a valid BCP 47 language tag")
	}
	return nil
}

func basePathRule(value any) error {
	raw, _ := value.(string)
	if _, err := paths.NormalizeBasePath(raw); err != nil {
		return validation.NewError("localeroute.config.base_path_invalid", err.Error())
	}
	return nil
}

func siteURLRule(value any) error {
	raw, _ := value.(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validation.NewError("localeroute.config.site_url_invalid", "must be an absolute URL with scheme and host")
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return validation.NewError("localeroute.config.site_url_invalid", "must not carry a path, use routing.base_path instead")
	}
	return nil
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedDetectionMode(mode string) bool {
	switch mode {
	case "bare-default", "prefix-default":
		return true
	default:
		return false
	}
}

func isSupportedMissingLocale(policy string) bool {
	switch policy {
	case "first", "default", "next":
		return true
	default:
		return false
	}
}

func isSupportedTrailingSlash(policy string) bool {
	switch policy {
	case "always", "never", "ignore":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
