package bootstrap

import (
	"slices"
	"testing"
)

func TestSplitLocales(t *testing.T) {
	if got := SplitLocales(" en, fr ,,de "); !slices.Equal(got, []string{"en", "fr", "de"}) {
		t.Fatalf("unexpected locales %v", got)
	}
	if got := SplitLocales("  "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}

func TestBuildModuleAppliesOverrides(t *testing.T) {
	module, err := BuildModule(Options{
		DefaultLocale: "en",
		Locales:       []string{"en", "fr"},
		BasePath:      "/blog",
		DetectionMode: "prefix-default",
		SiteURL:       "https://example.com",
	})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	if got := module.Module.AllLocales(); !slices.Equal(got, []string{"en", "fr"}) {
		t.Fatalf("unexpected locales %v", got)
	}
	if got := module.Module.PostPath("a", "en"); got != "/blog/en/posts/a/" {
		t.Fatalf("unexpected post path %q", got)
	}
	if module.Logger == nil {
		t.Fatalf("expected CLI logger")
	}
}

func TestBuildModuleRejectsInvalidOverrides(t *testing.T) {
	if _, err := BuildModule(Options{DetectionMode: "sometimes"}); err == nil {
		t.Fatalf("expected error for invalid detection mode")
	}
}
