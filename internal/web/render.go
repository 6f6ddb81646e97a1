package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in content is not passed through (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"markdown": renderMarkdown,
	}
	return template.New("").Option("missingkey=zero").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
