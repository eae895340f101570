package di

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-localeroute/internal/logging/gologger"
	"github.com/goliatone/go-localeroute/internal/runtimeconfig"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

func blogConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MoreLocales = []string{"fr", "de"}
	cfg.Routing.BasePath = "/blog"
	cfg.Site.URL = "https://example.com"
	return cfg
}

func TestNewContainerWiresRouting(t *testing.T) {
	container, err := NewContainer(blogConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if got := container.Locales().All(); len(got) != 3 {
		t.Fatalf("unexpected locales %v", got)
	}
	if container.Resolver() == nil || container.Router().Resolver() != container.Resolver() {
		t.Fatalf("router and container must share the resolver")
	}
	if lang, ok := container.Router().DetectLanguage("/blog/fr/posts/hello"); !ok || lang != "fr" {
		t.Fatalf("unexpected detection %q %v", lang, ok)
	}
	if got := container.Router().TagPath("typescript", "fr"); got != "/blog/fr/tags/typescript/" {
		t.Fatalf("unexpected tag path %q", got)
	}
	if container.Permalinks().Origin() != "https://example.com" {
		t.Fatalf("unexpected permalink origin %q", container.Permalinks().Origin())
	}
	if params := container.StaticPaths().LangParams(); len(params) != 3 {
		t.Fatalf("unexpected lang params %v", params)
	}
	if container.LoggerProvider() != nil {
		t.Fatalf("logging is disabled by default")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := blogConfig()
	cfg.DefaultLocale = ""

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestNewContainerUsesCustomResolver(t *testing.T) {
	resolver := interfaces.LocaleURLResolverFunc(func(locale, path string) string {
		return "/" + locale + "/" + strings.TrimLeft(path, "/")
	})

	container, err := NewContainer(blogConfig(), WithResolver(resolver))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if got := container.Router().PostPath("hello", "en"); got != "/en/posts/hello" {
		t.Fatalf("expected custom resolver output, got %q", got)
	}
}

func TestConfigureLoggerProviderUsesConsoleWriter(t *testing.T) {
	cfg := blogConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	if _, err := NewContainer(cfg, WithLogWriter(&buf)); err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if !strings.Contains(buf.String(), "localeroute.configured") {
		t.Fatalf("expected configuration entry, got %q", buf.String())
	}
}

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := blogConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if _, ok := container.loggerProvider.(*gologger.Provider); !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
}

func TestContentLoaderReadsInjectedFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/bonjour.md": {Data: []byte("---\ntitle: Bonjour\n---\n")},
	}
	container, err := NewContainer(blogConfig(), WithContentFS(fsys))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	entries, err := container.ContentLoader().Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].Lang != "fr" || entries[0].Slug != "bonjour" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestWithLoggerProviderTakesPrecedence(t *testing.T) {
	var requested []string
	provider := interfaces.LoggerProviderFunc(func(name string) interfaces.Logger {
		requested = append(requested, name)
		return nil
	})

	container, err := NewContainer(blogConfig(), WithLoggerProvider(provider))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.LoggerProvider() == nil {
		t.Fatalf("expected injected provider")
	}
	want := []string{"localeroute.permalink", "localeroute.content", "localeroute"}
	if len(requested) != len(want) {
		t.Fatalf("unexpected logger requests %v", requested)
	}
	for i := range want {
		if requested[i] != want[i] {
			t.Fatalf("request %d: got %q, want %q", i, requested[i], want[i])
		}
	}
}
