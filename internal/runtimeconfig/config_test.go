package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-localeroute/internal/runtimeconfig"
)

func TestConfigValidate_DefaultsAreValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresDefaultLocale(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsDuplicateLocales(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MoreLocales = []string{"fr", "en"}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownPolicies(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "detection mode",
			mutate: func(c *runtimeconfig.Config) { c.Routing.DetectionMode = "sometimes" },
			want:   runtimeconfig.ErrDetectionModeInvalid,
		},
		{
			name:   "missing locale",
			mutate: func(c *runtimeconfig.Config) { c.Routing.MissingLocale = "last" },
			want:   runtimeconfig.ErrMissingLocalePolicyInvalid,
		},
		{
			name:   "trailing slash",
			mutate: func(c *runtimeconfig.Config) { c.Routing.TrailingSlash = "maybe" },
			want:   runtimeconfig.ErrTrailingSlashInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_AcceptsMissingLocalePolicies(t *testing.T) {
	for _, policy := range []string{"", "first", "default", "next", " NEXT "} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Routing.MissingLocale = policy
		if err := cfg.Validate(); err != nil {
			t.Fatalf("policy %q: unexpected error %v", policy, err)
		}
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_ReportsMalformedValues(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MoreLocales = []string{"fr", "not a locale"}
	cfg.Routing.BasePath = "https://example.com/blog"
	cfg.Site.URL = "example.com"

	err := cfg.Validate()
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T: %v", err, err)
	}
	for _, key := range []string{"more_locales", "base_path", "site_url"} {
		if _, ok := verrs[key]; !ok {
			t.Fatalf("expected %s error, got %v", key, verrs)
		}
	}
	if _, ok := verrs["default_locale"]; ok {
		t.Fatalf("default locale should be valid, got %v", verrs["default_locale"])
	}
}

func TestConfigValidate_AcceptsSiteOrigin(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MoreLocales = []string{"fr", "pt-BR"}
	cfg.Routing.BasePath = "/blog"
	cfg.Site.URL = "https://example.com"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if got := cfg.AllLocales(); !slices.Equal(got, []string{"en", "fr", "pt-BR"}) {
		t.Fatalf("unexpected AllLocales(): %v", got)
	}
}

func TestLoad_YAMLWithEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	writeFile(t, path, `
default_locale: en
more_locales: [fr, de]
routing:
  detection_mode: prefix-default
  base_path: /blog
site:
  url: https://example.com
`)
	t.Setenv("LOCALEROUTE_BASE_PATH", "/docs")

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.MoreLocales, []string{"fr", "de"}) {
		t.Fatalf("unexpected locales %v", cfg.MoreLocales)
	}
	if cfg.Routing.DetectionMode != "prefix-default" {
		t.Fatalf("unexpected detection mode %q", cfg.Routing.DetectionMode)
	}
	if cfg.Routing.BasePath != "/docs" {
		t.Fatalf("expected environment override, got %q", cfg.Routing.BasePath)
	}
	if cfg.Routing.TrailingSlash != "always" {
		t.Fatalf("expected defaults to survive decoding, got %q", cfg.Routing.TrailingSlash)
	}
	if cfg.Site.URL != "https://example.com" {
		t.Fatalf("unexpected site url %q", cfg.Site.URL)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	writeFile(t, path, `
default_locale = "fr"
more_locales = ["en"]

[routing]
missing_locale = "default"
slugify_tags = true
`)

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "fr" || !slices.Equal(cfg.MoreLocales, []string{"en"}) {
		t.Fatalf("unexpected locales %q %v", cfg.DefaultLocale, cfg.MoreLocales)
	}
	if cfg.Routing.MissingLocale != "default" || !cfg.Routing.SlugifyTags {
		t.Fatalf("unexpected routing config %+v", cfg.Routing)
	}
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("LOCALEROUTE_MORE_LOCALES", "fr,de")
	t.Setenv("LOCALEROUTE_DETECTION_MODE", "prefix-default")

	cfg, err := runtimeconfig.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.MoreLocales, []string{"fr", "de"}) {
		t.Fatalf("unexpected locales %v", cfg.MoreLocales)
	}
	if cfg.Routing.DetectionMode != "prefix-default" {
		t.Fatalf("unexpected detection mode %q", cfg.Routing.DetectionMode)
	}
}

func TestLoad_RejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.ini")
	writeFile(t, path, "default_locale=en")

	if _, err := runtimeconfig.Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
