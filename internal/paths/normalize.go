package paths

import (
	"fmt"
	"path"
	"strings"
)

// Options controls the shape produced by Normalizer.Normalize.
type Options struct {
	LeadingSlash  bool
	TrailingSlash bool
	IncludeBase   bool
}

// Option mutates normalization options.
type Option func(*Options)

// WithLeadingSlash toggles the leading "/".
func WithLeadingSlash(enabled bool) Option {
	return func(o *Options) { o.LeadingSlash = enabled }
}

// WithTrailingSlash toggles the trailing "/".
func WithTrailingSlash(enabled bool) Option {
	return func(o *Options) { o.TrailingSlash = enabled }
}

// WithBase toggles whether the site base path is part of the result.
func WithBase(enabled bool) Option {
	return func(o *Options) { o.IncludeBase = enabled }
}

// DefaultOptions returns leading and trailing slashes without the base path.
func DefaultOptions() Options {
	return Options{
		LeadingSlash:  true,
		TrailingSlash: true,
		IncludeBase:   false,
	}
}

// Normalizer canonicalizes site paths relative to a fixed deployment base.
type Normalizer struct {
	base string
}

// NewNormalizer builds a normalizer for the provided base path. An empty base
// or "/" means the site is deployed at the root.
func NewNormalizer(base string) Normalizer {
	trimmed := strings.TrimSpace(base)
	if trimmed != "" && !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	trimmed = RemoveTrailingSlash(trimmed)
	if trimmed == "/" {
		trimmed = ""
	}
	return Normalizer{base: trimmed}
}

// Base returns the canonical base path, "" for root deployments.
func (n Normalizer) Base() string {
	return n.base
}

// Normalize applies the requested options to path. The operation is
// idempotent for a fixed option set.
func (n Normalizer) Normalize(p string, opts ...Option) string {
	options := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return n.NormalizeWith(p, options)
}

// NormalizeWith is Normalize with an explicit option set.
func (n Normalizer) NormalizeWith(p string, options Options) string {
	result := singleLeadingSlash(p)

	if n.base != "" {
		if options.IncludeBase {
			if !n.hasBase(result) {
				result = n.base + result
			}
		} else {
			for n.hasBase(result) {
				result = singleLeadingSlash(result[len(n.base):])
			}
		}
	}

	if options.LeadingSlash != strings.HasPrefix(result, "/") {
		if options.LeadingSlash {
			result = "/" + result
		} else {
			result = strings.TrimLeft(result, "/")
		}
	}

	if options.TrailingSlash != strings.HasSuffix(result, "/") {
		if options.TrailingSlash {
			result += "/"
		} else {
			result = RemoveTrailingSlash(result)
		}
	}
	return result
}

// singleLeadingSlash collapses any leading run of "/" into exactly one, so
// the base check sees the same prefix on every pass.
func singleLeadingSlash(p string) string {
	return "/" + strings.TrimLeft(p, "/")
}

// hasBase reports whether p starts with the base on a segment boundary.
func (n Normalizer) hasBase(p string) bool {
	if n.base == "" || !strings.HasPrefix(p, n.base) {
		return false
	}
	rest := p[len(n.base):]
	return rest == "" || strings.HasPrefix(rest, "/")
}

// RemoveTrailingSlash drops every trailing "/" that follows a non-slash
// character. A string made only of slashes is returned unchanged, so
// RemoveTrailingSlash("/") == "/".
func RemoveTrailingSlash(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == '/' {
		end--
	}
	if end == 0 {
		return s
	}
	return s[:end]
}

// NormalizeBasePath validates a configured deployment base path and returns
// its canonical form. The root base is returned as "".
func NormalizeBasePath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "/" {
		return "", nil
	}

	if strings.Contains(trimmed, "://") || strings.ContainsAny(trimmed, "?#") {
		return "", fmt.Errorf("paths: base path %q must be a URL path without scheme, query, or fragment", raw)
	}

	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}

	for _, seg := range strings.Split(strings.TrimPrefix(trimmed, "/"), "/") {
		if seg == "." || seg == ".." {
			return "", fmt.Errorf("paths: base path %q must not contain '.' or '..' segments", raw)
		}
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "/" || cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
