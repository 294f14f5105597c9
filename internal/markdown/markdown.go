// Package markdown renders card text to HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options selects renderer features. It is built by callers (usually from
// config) and handed to New; there is no package-level default instance.
type Options struct {
	GFM       bool // tables, strikethrough, autolinks, task lists
	HardWraps bool // single newlines become <br>
}

// DefaultOptions returns GitHub-flavoured Markdown with hard line breaks.
func DefaultOptions() Options {
	return Options{
		GFM:       true,
		HardWraps: true,
	}
}

// Renderer converts Markdown to HTML. Raw HTML in the source is omitted.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer for the given options.
func New(opts Options) *Renderer {
	var exts []goldmark.Extender
	if opts.GFM {
		exts = append(exts, extension.GFM)
	}

	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
	}
}

// Render returns the HTML for text. Empty text renders to an empty string.
func (r *Renderer) Render(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
