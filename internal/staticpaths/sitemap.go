package staticpaths

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-localeroute/internal/permalink"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

// Sitemap renders the HTML routes as a sitemap whose entries carry an
// xhtml:link alternate for every locale that emits the same page. Feed
// routes are skipped.
func Sitemap(routes []Route, links *permalink.Builder) (string, error) {
	emitted := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		emitted[links.Origin()+route.Path] = struct{}{}
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<urlset xmlns=%q xmlns:xhtml=%q>\n", sitemapNS, xhtmlNS)

	for _, route := range routes {
		if route.Kind == KindRSS || route.Kind == KindAtom {
			continue
		}
		alternates, err := links.Alternates(route.Path)
		if err != nil {
			return "", fmt.Errorf("sitemap %s: %w", route.Path, err)
		}

		b.WriteString("  <url>\n")
		writeElement(&b, "    ", "loc", links.Origin()+route.Path)
		if !route.LastMod.IsZero() {
			writeElement(&b, "    ", "lastmod", route.LastMod.UTC().Format(time.RFC3339))
		}
		for _, alt := range alternates {
			if _, ok := emitted[alt.Href]; !ok {
				continue
			}
			fmt.Fprintf(&b, "    <xhtml:link rel=\"alternate\" hreflang=\"%s\" href=\"%s\"/>\n", escape(alt.Lang), escape(alt.Href))
		}
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String(), nil
}

// Robots renders a permissive robots.txt pointing at the sitemap under
// origin and base.
func Robots(origin, base string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
		fmt.Fprintf(&b, "\nSitemap: %s%s/sitemap.xml\n", origin, strings.TrimRight(base, "/"))
	}
	return b.String()
}

func writeElement(b *strings.Builder, indent, name, value string) {
	fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, name, escape(value), name)
}

func escape(value string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(value))
	return b.String()
}
