package page

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// RenderHTML writes the full storefront document. The page works without
// JavaScript: every control is a form POST.
func RenderHTML(w io.Writer, p Page) error {
	return tmpl.ExecuteTemplate(w, "storefront", p)
}
