package interfaces

// LocaleURLResolver turns a locale code and a locale independent page path
// (e.g. "posts/hello") into the canonical site-relative URL. The result
// already carries the deployment base path and the locale prefix, so
// callers never rebuild either on their own.
type LocaleURLResolver interface {
	RelativeLocaleURL(locale, path string) string
}

// LocaleURLResolverFunc adapts a plain function to LocaleURLResolver.
type LocaleURLResolverFunc func(locale, path string) string

// RelativeLocaleURL implements LocaleURLResolver.
func (f LocaleURLResolverFunc) RelativeLocaleURL(locale, path string) string {
	return f(locale, path)
}
