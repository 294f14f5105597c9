package cloze

import (
	"strings"
	"unicode/utf8"
)

// minBlankWidth keeps blanks for one- or two-letter answers legible.
const minBlankWidth = 3

// Format renders cloze text for display. With reveal set each cloze shows its
// answer, otherwise a bracketed blank sized to the answer.
//
// Placeholders are substituted in ordinal order, first textual occurrence
// only, so a collapsed duplicate keeps its second placeholder.
func Format(text string, reveal bool) string {
	if text == "" {
		return text
	}

	parsed := Parse(text)
	display := parsed.ProcessedText

	for i, c := range parsed.Clozes {
		replacement := Blank(c.Answer)
		if reveal {
			replacement = c.Answer
		}
		display = strings.Replace(display, Placeholder(i), replacement, 1)
	}

	return display
}

// Preview renders cloze text with every answer masked.
func Preview(text string) string {
	return Format(text, false)
}

// Blank returns "[" + max(3, len(answer)) underscores + "]". Length counts
// characters, not bytes. A character outside the Basic Multilingual Plane
// (most emoji) counts once, where a UTF-16 length would count it twice.
func Blank(answer string) string {
	width := max(minBlankWidth, utf8.RuneCountInString(answer))
	return "[" + strings.Repeat("_", width) + "]"
}
