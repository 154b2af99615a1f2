package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdown caches one glamour renderer, rebuilt when the width or style
// changes.
var markdown struct {
	sync.Mutex
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// RenderMarkdown renders an event description for the terminal. The input is
// returned unchanged if rendering fails.
func RenderMarkdown(content string, width int, style string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	markdown.Lock()
	defer markdown.Unlock()

	if markdown.renderer == nil || markdown.width != width || markdown.style != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		markdown.renderer, markdown.width, markdown.style = r, width, style
	}

	out, err := markdown.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
