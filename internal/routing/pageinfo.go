package routing

// PageInfo bundles the detected language and page type of a path.
type PageInfo struct {
	CurrentLang string
	Localized   bool
	Kind        PageKind

	router *Router
}

// PageInfo describes path for templates.
func (r *Router) PageInfo(path string) PageInfo {
	lang, ok := r.DetectLanguage(path)
	return PageInfo{
		CurrentLang: lang,
		Localized:   ok,
		Kind:        r.Classify(path),
		router:      r,
	}
}

// LocalizedPath resolves target under the page language, or under the
// default locale when the page is unlocalized.
func (p PageInfo) LocalizedPath(target string) string {
	if p.router == nil {
		return target
	}
	lang := p.CurrentLang
	if !p.Localized || lang == "" {
		lang = p.router.locales.Default()
	}
	return p.router.LocalizedPath(lang, target)
}
