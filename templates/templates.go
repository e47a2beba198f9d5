// Package templates embeds the storefront's HTML pages.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse loads every embedded page into one template set.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
