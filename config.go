package localeroute

import "github.com/goliatone/go-localeroute/internal/runtimeconfig"

// Configuration errors returned by Config.Validate and New.
var (
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrDuplicateLocale            = runtimeconfig.ErrDuplicateLocale
	ErrDetectionModeInvalid       = runtimeconfig.ErrDetectionModeInvalid
	ErrMissingLocalePolicyInvalid = runtimeconfig.ErrMissingLocalePolicyInvalid
	ErrTrailingSlashInvalid       = runtimeconfig.ErrTrailingSlashInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	// Config is the read-only site configuration.
	Config = runtimeconfig.Config
	// RoutingConfig maps locales onto URL paths.
	RoutingConfig = runtimeconfig.RoutingConfig
	// SiteConfig holds the public origin.
	SiteConfig = runtimeconfig.SiteConfig
	// ContentConfig locates post sources.
	ContentConfig = runtimeconfig.ContentConfig
	// Features toggles optional functionality.
	Features = runtimeconfig.Features
	// LoggingConfig selects and tunes the logger provider.
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns a single-locale "en" site served from the root.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML or TOML file, when path is not empty, and applies
// LOCALEROUTE_* environment overrides on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
