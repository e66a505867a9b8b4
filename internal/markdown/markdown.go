// Package markdown renders Markdown for terminal display via glamour.
//
// Renderers are cached per style+width pair because glamour term
// renderers are expensive to build and screens re-render on every
// resize.
package markdown

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Style names accepted by Renderer. "auto" picks dark or light from the
// terminal background; "notty" produces plain text for pipes.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Renderer renders Markdown at a fixed style, caching glamour term
// renderers by wrap width.
type Renderer struct {
	style string

	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer for the given style name. Unknown
// styles fall back to auto.
func NewRenderer(style string) *Renderer {
	switch style {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
	default:
		style = StyleAuto
	}
	return &Renderer{
		style: style,
		cache: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders the Markdown source wrapped at the given width.
func (r *Renderer) Render(source string, width int) (string, error) {
	if width < 20 {
		width = 20
	}

	tr, err := r.renderer(width)
	if err != nil {
		return "", err
	}

	out, err := tr.Render(source)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.cache[width]; ok {
		return tr, nil
	}

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if r.style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.style))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("build markdown renderer: %w", err)
	}
	r.cache[width] = tr
	return tr, nil
}
