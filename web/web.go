// Package web holds the HTML templates of the dashboard.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates. Pages are named "login", "dashboard"
// and "profile".
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
