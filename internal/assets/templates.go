// Package assets holds the embedded detail-view templates.
package assets

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/word-detail.txt.go.tmpl
var fallbackWordDetailTemplate string

//go:embed templates/word-detail.html.go.tmpl
var fallbackWordDetailHTMLTemplate string

var funcMap = map[string]any{
	"join": strings.Join,
}

// ParseWordDetailTemplate parses the plain-text detail view template,
// preferring templatePath and falling back to the embedded one.
func ParseWordDetailTemplate(templatePath string) (*texttemplate.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := texttemplate.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := texttemplate.New("word-detail.txt.go.tmpl").
		Funcs(funcMap).
		Parse(fallbackWordDetailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// ParseWordDetailHTMLTemplate parses the HTML detail view template served by
// the word server, preferring templatePath and falling back to the embedded
// one.
func ParseWordDetailHTMLTemplate(templatePath string) (*htmltemplate.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := htmltemplate.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := htmltemplate.New("word-detail.html.go.tmpl").
		Funcs(funcMap).
		Parse(fallbackWordDetailHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
