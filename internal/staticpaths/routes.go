package staticpaths

import (
	"cmp"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-localeroute/internal/content"
	"github.com/goliatone/go-localeroute/internal/paths"
	"github.com/goliatone/go-localeroute/internal/routing"
)

// Kind identifies the page template a route renders.
type Kind string

const (
	KindHome  Kind = "home"
	KindAbout Kind = "about"
	KindPost  Kind = "post"
	KindTag   Kind = "tag"
	KindRSS   Kind = "rss"
	KindAtom  Kind = "atom"
)

// LangParam is the parameter set of a [lang] route.
type LangParam struct {
	Lang string
}

// Route is one page the static build has to emit.
type Route struct {
	Lang string
	Kind Kind
	Path string
	// File is the output file relative to the build directory.
	File string
	// LastMod is the post date for post routes.
	LastMod time.Time
}

// Enumerator lists the static routes of a site.
type Enumerator struct {
	router *routing.Router
}

// New returns an Enumerator backed by router.
func New(router *routing.Router) *Enumerator {
	return &Enumerator{router: router}
}

// LangParams returns one parameter set per configured locale.
func (e *Enumerator) LangParams() []LangParam {
	all := e.router.Locales().All()
	out := make([]LangParam, len(all))
	for i, lang := range all {
		out[i] = LangParam{Lang: lang}
	}
	return out
}

// Routes lists the locale pages plus the post and tag pages of entries,
// sorted by path with duplicates removed.
func (e *Enumerator) Routes(entries []content.Entry) []Route {
	var out []Route
	add := func(lang string, kind Kind, p string) *Route {
		out = append(out, Route{Lang: lang, Kind: kind, Path: p, File: e.OutputFile(p)})
		return &out[len(out)-1]
	}

	for _, lang := range e.router.Locales().All() {
		home := e.router.LocalizedPath(lang, "")
		root := strings.TrimSuffix(home, "/")
		add(lang, KindHome, home)
		add(lang, KindAbout, e.router.LocalizedPath(lang, "about"))
		add(lang, KindRSS, root+"/rss.xml")
		add(lang, KindAtom, root+"/atom.xml")
	}
	for _, entry := range entries {
		add(entry.Lang, KindPost, e.router.PostPath(entry.Slug, entry.Lang)).LastMod = entry.Date
		for _, tag := range entry.Tags {
			add(entry.Lang, KindTag, e.router.TagPath(tag, entry.Lang))
		}
	}

	slices.SortStableFunc(out, func(a, b Route) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return slices.CompactFunc(out, func(a, b Route) bool {
		return a.Path == b.Path
	})
}

// OutputFile maps a site-relative URL onto the file the build writes.
// Directory style URLs become <dir>/index.html.
func (e *Enumerator) OutputFile(p string) string {
	rel := strings.Trim(e.router.Normalize(p, paths.WithTrailingSlash(false)), "/")
	if rel == "" {
		return "index.html"
	}
	if path.Ext(rel) != "" {
		return rel
	}
	return path.Join(rel, "index.html")
}
