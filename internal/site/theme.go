package site

import (
	"embed"
	"fmt"
	"html/template"
)

// ThemeVersion participates in the cache signature; bump it whenever the
// embedded templates or stylesheet change in a way that alters output.
const ThemeVersion = "book/1"

//go:embed templates/*.tmpl templates/style.css
var themeFS embed.FS

type theme struct {
	lecture  *template.Template
	index    *template.Template
	redirect *template.Template
	style    []byte
}

func loadTheme() (*theme, error) {
	lec, err := template.ParseFS(themeFS, "templates/base.html.tmpl", "templates/lecture.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse lecture templates: %w", err)
	}
	idx, err := template.ParseFS(themeFS, "templates/base.html.tmpl", "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse index templates: %w", err)
	}
	red, err := template.ParseFS(themeFS, "templates/redirect.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse redirect template: %w", err)
	}
	style, err := themeFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &theme{lecture: lec, index: idx, redirect: red, style: style}, nil
}
