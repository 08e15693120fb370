package view

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

type iconAsset struct {
	Key   string
	Label string
	SVG   string
}

var (
	iconDefinitions = []iconAsset{
		{Key: "previous", Label: "Previous", SVG: `<svg viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="M15.75 19.5 8.25 12l7.5-7.5"/></svg>`},
		{Key: "next", Label: "Next", SVG: `<svg viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="m8.25 4.5 7.5 7.5-7.5 7.5"/></svg>`},
		{Key: "home", Label: "Home", SVG: `<svg viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="m2.25 12 8.954-8.955a1.126 1.126 0 0 1 1.591 0L21.75 12M4.5 9.75v10.125c0 .621.504 1.125 1.125 1.125H9.75v-4.875c0-.621.504-1.125 1.125-1.125h2.25c.621 0 1.125.504 1.125 1.125V21h4.125c.621 0 1.125-.504 1.125-1.125V9.75"/></svg>`},
	}
	iconLookup = func() map[string]iconAsset {
		lookup := make(map[string]iconAsset, len(iconDefinitions))
		for _, icon := range iconDefinitions {
			lookup[icon.Key] = icon
		}
		return lookup
	}()
)

// IconSVG resolves an inline control icon; unknown keys render nothing.
func IconSVG(key string) template.HTML {
	icon, ok := iconLookup[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return ""
	}
	return template.HTML(icon.SVG)
}

// FuncMap lists the helpers available to every page template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"icon": IconSVG,
	}
}

// Templates parses the embedded page templates: list.html, play.html,
// edit.html and login.html.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html"))
}
