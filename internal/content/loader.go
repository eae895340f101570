package content

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-localeroute/internal/locales"
	"github.com/goliatone/go-localeroute/internal/logging"
	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

// Entry is a post discovered on disk.
type Entry struct {
	Path  string
	Lang  string
	Slug  string
	Title string
	Tags  []string
	Date  time.Time
	Draft bool
	Body  []byte
	// HTML is the rendered body, set when the loader renders posts.
	HTML []byte
}

// Config configures a Loader.
type Config struct {
	Locales       locales.Set
	Pattern       string
	IncludeDrafts bool
	RenderHTML    bool
}

// Loader reads posts from a filesystem laid out as <locale>/<slug>.md, with
// files outside a locale directory belonging to the frontmatter lang or the
// default locale.
type Loader struct {
	fsys          fs.FS
	locales       locales.Set
	pattern       string
	includeDrafts bool
	renderer      *Renderer
	logger        interfaces.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger interfaces.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a loader over fsys.
func NewLoader(fsys fs.FS, cfg Config, opts ...Option) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	l := &Loader{
		fsys:          fsys,
		locales:       cfg.Locales,
		pattern:       pattern,
		includeDrafts: cfg.IncludeDrafts,
		logger:        logging.NoOp(),
	}
	if cfg.RenderHTML {
		l.renderer = NewRenderer()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load walks the filesystem in lexical order and returns every published
// entry, or every entry when drafts are included.
func (l *Loader) Load(ctx context.Context) ([]Entry, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("content: filesystem is nil")
	}

	var entries []Entry
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := path.Match(l.pattern, d.Name()); !ok {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", p, err)
		}
		entry, err := l.Parse(p, data)
		if err != nil {
			return err
		}
		if entry.Draft && !l.includeDrafts {
			logging.WithRouteContext(l.logger, p, entry.Lang, "load").Debug("content.draft_skipped")
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Parse builds an Entry from the file at p.
func (l *Loader) Parse(p string, data []byte) (Entry, error) {
	meta, body, err := ParseMeta(data)
	if err != nil {
		return Entry{}, fmt.Errorf("content: %s: %w", p, err)
	}

	p = path.Clean(strings.TrimPrefix(p, "/"))
	lang, rest := l.splitLocale(p)
	if lang == "" {
		lang = strings.TrimSpace(meta.Lang)
		if lang == "" {
			lang = l.locales.Default()
		}
	}
	if !l.locales.Contains(lang) {
		return Entry{}, fmt.Errorf("content: %s: locale %q is not configured", p, lang)
	}

	entrySlug := strings.Trim(strings.TrimSpace(meta.Slug), "/")
	if entrySlug == "" {
		entrySlug, err = slugFromPath(rest)
		if err != nil {
			return Entry{}, fmt.Errorf("content: %s: %w", p, err)
		}
	}

	entry := Entry{
		Path:  p,
		Lang:  lang,
		Slug:  entrySlug,
		Title: meta.Title,
		Tags:  compactTags(meta.Tags),
		Date:  meta.Date,
		Draft: meta.Draft,
		Body:  body,
	}
	if l.renderer != nil {
		if entry.HTML, err = l.renderer.Render(body); err != nil {
			return Entry{}, fmt.Errorf("content: %s: %w", p, err)
		}
	}
	return entry, nil
}

func (l *Loader) splitLocale(p string) (string, string) {
	first, rest, ok := strings.Cut(p, "/")
	if ok && l.locales.Contains(first) {
		return first, rest
	}
	return "", p
}

func slugFromPath(rel string) (string, error) {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		normalized, err := slug.Normalize(segment)
		if err != nil {
			return "", fmt.Errorf("derive slug: %w", err)
		}
		segments[i] = normalized
	}
	out := strings.Join(segments, "/")
	if strings.Trim(out, "/") == "" {
		return "", fmt.Errorf("derive slug: empty slug for %q", rel)
	}
	return out, nil
}

func compactTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
