package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for terminal output when stdout is a TTY
// and color is enabled. Otherwise, or on any renderer error, md is returned
// unchanged so piped output stays plain text.
func RenderMarkdown(md string, color bool) string {
	if !color || !IsStdoutTTY() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
