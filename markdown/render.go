// Package markdown renders assistant responses as styled terminal text.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 100

// Renderers are cached per wrap width so viewport resizes do not
// rebuild glamour state on every frame.
var renderers = map[int]*glamour.TermRenderer{}

func rendererFor(width int) *glamour.TermRenderer {
	if width <= 0 {
		width = defaultWrap
	}
	if r, ok := renderers[width]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = r
	return r
}

// Render converts markdown to ANSI styled text wrapped at width.
// On any renderer failure the raw text comes back unchanged; a
// response must never be lost to a formatting problem.
func Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r := rendererFor(width)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour pads with trailing newlines; trim for inline display.
	return strings.TrimRight(out, "\n")
}
