package web

import (
	"embed"
	"io/fs"
)

// templatesDir is where dev mode reads the views from, relative to the repository root.
const templatesDir = "./internal/web/templates"

var (
	//go:embed static
	staticFiles embed.FS

	//go:embed templates
	templateFiles embed.FS
)

// views returns the embedded templates with the "templates/" prefix stripped,
// so names like "layouts/base" resolve the same way as in dev mode.
func views() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err) // only on an invalid literal path
	}

	return sub
}
