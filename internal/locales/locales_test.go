package locales

import (
	"slices"
	"testing"
)

func TestSetOrdering(t *testing.T) {
	set := NewSet("en", []string{"fr", " ", "en", "de"})

	if got := set.All(); !slices.Equal(got, []string{"en", "fr", "de"}) {
		t.Fatalf("unexpected All(): %v", got)
	}
	if got := set.More(); !slices.Equal(got, []string{"fr", "de"}) {
		t.Fatalf("unexpected More(): %v", got)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 locales, got %d", set.Len())
	}

	if p, ok := set.Priority("en"); !ok || p != 0 {
		t.Fatalf("expected default priority 0, got %d (%v)", p, ok)
	}
	if p, ok := set.Priority("de"); !ok || p != 2 {
		t.Fatalf("expected de priority 2, got %d (%v)", p, ok)
	}
	if _, ok := set.Priority("es"); ok {
		t.Fatalf("expected unknown locale to report false")
	}

	all := set.All()
	all[0] = "mutated"
	if set.Default() != "en" || set.All()[0] != "en" {
		t.Fatalf("set must not be mutated through returned slices")
	}
}

func TestPrefixResolverBareDefault(t *testing.T) {
	resolver := NewPrefixResolver(ResolverConfig{
		Locales:  NewSet("en", []string{"fr", "de"}),
		BasePath: "/blog/",
	})

	cases := []struct {
		locale string
		path   string
		want   string
	}{
		{locale: "en", path: "", want: "/blog/"},
		{locale: "fr", path: "", want: "/blog/fr/"},
		{locale: "fr", path: "tags/typescript", want: "/blog/fr/tags/typescript/"},
		{locale: "de", path: "/posts/hello/", want: "/blog/de/posts/hello/"},
		{locale: "en", path: "about", want: "/blog/about/"},
	}
	for _, tc := range cases {
		if got := resolver.RelativeLocaleURL(tc.locale, tc.path); got != tc.want {
			t.Fatalf("RelativeLocaleURL(%q, %q) = %q, want %q", tc.locale, tc.path, got, tc.want)
		}
	}
}

func TestPrefixResolverPrefixDefault(t *testing.T) {
	resolver := NewPrefixResolver(ResolverConfig{
		Locales:       NewSet("en", []string{"fr"}),
		PrefixDefault: true,
	})
	if got := resolver.RelativeLocaleURL("en", "posts/a"); got != "/en/posts/a/" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestPrefixResolverTrailingPolicies(t *testing.T) {
	set := NewSet("en", []string{"fr"})

	never := NewPrefixResolver(ResolverConfig{Locales: set, TrailingSlash: TrailingNever})
	if got := never.RelativeLocaleURL("fr", "posts/a/"); got != "/fr/posts/a" {
		t.Fatalf("never: unexpected url %q", got)
	}
	if got := never.RelativeLocaleURL("en", ""); got != "/" {
		t.Fatalf("never: root must keep its slash, got %q", got)
	}

	ignore := NewPrefixResolver(ResolverConfig{Locales: set, TrailingSlash: TrailingIgnore})
	if got := ignore.RelativeLocaleURL("fr", "rss.xml"); got != "/fr/rss.xml" {
		t.Fatalf("ignore: unexpected url %q", got)
	}
	if got := ignore.RelativeLocaleURL("fr", ""); got != "/fr/" {
		t.Fatalf("ignore: unexpected locale root %q", got)
	}
}

func TestParseTrailingSlash(t *testing.T) {
	if got, err := ParseTrailingSlash(""); err != nil || got != TrailingAlways {
		t.Fatalf("expected default always, got %q (%v)", got, err)
	}
	if got, err := ParseTrailingSlash(" Never "); err != nil || got != TrailingNever {
		t.Fatalf("expected never, got %q (%v)", got, err)
	}
	if _, err := ParseTrailingSlash("sometimes"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
