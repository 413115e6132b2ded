// Package richtext renders the markdown stored in rich text fields.
package richtext

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Raw html in the source is dropped, the renderer is not in unsafe mode.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// Render converts src to html. On a render error the escaped source is returned.
func Render(src string) template.HTML {
	var buf bytes.Buffer

	if err := markdown.Convert([]byte(src), &buf); err != nil {
		log.Error().Err(err).Msg("failed to render markdown")

		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped
	}

	return template.HTML(buf.String()) //nolint:gosec // raw html is not rendered
}
