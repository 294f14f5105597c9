// Package render turns cloze card text into the strings and HTML handed to
// the web UI.
package render

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"runtime"
	"strings"

	"github.com/remaimber-it/clozeit/internal/cloze"
	"github.com/remaimber-it/clozeit/internal/markdown"
	"github.com/remaimber-it/clozeit/internal/worker"
)

// Rendered is everything a client needs to show one side of a card.
type Rendered struct {
	Clozes        []cloze.Item
	ProcessedText string
	Display       string // plain text, cloze.Format output
	HTML          string // Markdown rendered, blanks or answers wrapped in spans
}

type Renderer struct {
	md      *markdown.Renderer
	workers int
}

func New(md *markdown.Renderer) *Renderer {
	return &Renderer{md: md, workers: runtime.GOMAXPROCS(0)}
}

// Card renders text masked or revealed.
//
// Markdown runs over the placeholder skeleton, not the display string, so
// underscores in blanks and characters in answers are never read as
// Markdown. Placeholders are then substituted in the HTML with the same
// first-occurrence rule cloze.Format uses.
func (r *Renderer) Card(text string, reveal bool) (Rendered, error) {
	parsed := cloze.Parse(text)

	out := Rendered{
		Clozes:        parsed.Clozes,
		ProcessedText: parsed.ProcessedText,
		Display:       cloze.Format(text, reveal),
	}

	body, err := r.md.Render(parsed.ProcessedText)
	if err != nil {
		return Rendered{}, fmt.Errorf("render markdown: %w", err)
	}

	out.HTML = substitute(body, parsed.Clozes, reveal)

	return out, nil
}

// Cards renders several cards concurrently. Results keep the order of texts.
func (r *Renderer) Cards(texts []string, reveal bool) ([]Rendered, error) {
	type outcome struct {
		rendered Rendered
		err      error
	}

	outcomes := worker.Map(r.workers, texts, func(text string) outcome {
		rendered, err := r.Card(text, reveal)
		return outcome{rendered, err}
	})

	out := make([]Rendered, len(outcomes))
	var errs []error
	for i, o := range outcomes {
		out[i] = o.rendered
		if o.err != nil {
			errs = append(errs, fmt.Errorf("card %d: %w", i, o.err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Markdown renders free-form text such as a card's extra notes.
func (r *Renderer) Markdown(text string) (string, error) {
	return r.md.Render(text)
}

// substitute replaces the first occurrence of each placeholder in rendered
// HTML. In text content the cloze becomes a span. Inside a tag goldmark has
// written the placeholder into an attribute (image alt, title) or
// percent-encoded it into a URL; there the bare blank or answer is written,
// escaped for its context.
func substitute(body string, clozes []cloze.Item, reveal bool) string {
	for i, c := range clozes {
		ph := cloze.Placeholder(i)
		encoded := url.PathEscape(ph)

		idx, n, inURL := strings.Index(body, ph), len(ph), false
		if e := indexInTag(body, encoded); e >= 0 && (idx < 0 || e < idx) {
			idx, n, inURL = e, len(encoded), true
		}
		if idx < 0 {
			continue
		}

		var repl string
		switch {
		case inURL:
			repl = url.PathEscape(plain(c, reveal))
		case insideTag(body[:idx]):
			repl = html.EscapeString(plain(c, reveal))
		default:
			repl = span(c, reveal)
		}
		body = body[:idx] + repl + body[idx+n:]
	}
	return body
}

// indexInTag returns the first index of sub that lies inside a tag, or -1.
func indexInTag(body, sub string) int {
	from := 0
	for {
		i := strings.Index(body[from:], sub)
		if i < 0 {
			return -1
		}
		if insideTag(body[:from+i]) {
			return from + i
		}
		from += i + len(sub)
	}
}

// insideTag reports whether the end of prefix is within an open tag.
// Text and attribute values are escaped, so raw angle brackets only delimit
// tags.
func insideTag(prefix string) bool {
	return strings.LastIndexByte(prefix, '<') > strings.LastIndexByte(prefix, '>')
}

func plain(c cloze.Item, reveal bool) string {
	if reveal {
		return c.Answer
	}
	return cloze.Blank(c.Answer)
}

func span(c cloze.Item, reveal bool) string {
	var b strings.Builder
	b.WriteString(`<span class="cloze`)
	if reveal {
		b.WriteString(` cloze-revealed`)
	}
	fmt.Fprintf(&b, `" data-cloze="%d"`, c.ID)
	if c.Hint != "" {
		fmt.Fprintf(&b, ` title="%s"`, html.EscapeString(c.Hint))
	}
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(plain(c, reveal)))
	b.WriteString(`</span>`)
	return b.String()
}
