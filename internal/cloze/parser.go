// Package cloze parses fill-in-the-blank markup of the form
// {{c<N>::answer[::hint]}} and renders it as blanks or revealed answers.
//
// Parsing replaces every recognised occurrence with an ordinal placeholder
// ([CLOZE_0], [CLOZE_1], …) so callers can substitute their own rendering.
package cloze

import (
	"math"
	"strconv"
	"strings"
)

const (
	openTag  = "{{c"
	sep      = "::"
	closeTag = "}}"

	placeholderPrefix = "[CLOZE_"
	placeholderSuffix = "]"
)

// Item is one cloze extracted from authored text.
type Item struct {
	ID          int    `json:"id"`          // author-assigned group number, may repeat or skip
	Answer      string `json:"answer"`      // trimmed
	Hint        string `json:"hint"`        // trimmed, empty when absent
	Placeholder string `json:"placeholder"` // [CLOZE_k], k = position in ParseResult.Clozes
}

// ParseResult holds the extracted clozes and the text with each cloze
// replaced by its placeholder.
type ParseResult struct {
	Clozes        []Item `json:"clozes"`
	ProcessedText string `json:"processed_text"`
}

// Placeholder returns the token that stands in for the k-th cloze.
func Placeholder(k int) string {
	return placeholderPrefix + strconv.Itoa(k) + placeholderSuffix
}

// Parse scans text left to right for cloze markup.
//
// Every occurrence of a matched literal is replaced, not only the one found
// by the scan, so identical markup repeated later in the text collapses onto
// the first placeholder and produces a single Item.
func Parse(text string) ParseResult {
	result := ParseResult{Clozes: []Item{}, ProcessedText: text}
	if text == "" {
		return result
	}

	working := text
	pos := 0
	for {
		m, ok := nextMatch(working, pos)
		if !ok {
			break
		}

		ph := Placeholder(len(result.Clozes))
		result.Clozes = append(result.Clozes, m.item(working, ph))

		literal := working[m.start:m.end]
		working = strings.ReplaceAll(working, literal, ph)
		pos = m.start + len(ph)
	}

	result.ProcessedText = working
	return result
}

// state names the scanner's position inside a candidate cloze.
type state int

const (
	stateLiteral state = iota // outside markup, looking for "{{c"
	statePrefix               // at "{{c"
	stateNumber               // reading the cloze number
	stateAnswer               // reading the answer
	stateHint                 // reading the hint
)

// match records byte offsets of one cloze occurrence in the scanned text.
type match struct {
	start, end             int
	numStart, numEnd       int
	answerStart, answerEnd int
	hintStart, hintEnd     int
	hasHint                bool
}

func (m match) item(s, placeholder string) Item {
	it := Item{
		ID:          parseNumber(s[m.numStart:m.numEnd]),
		Answer:      strings.TrimSpace(s[m.answerStart:m.answerEnd]),
		Placeholder: placeholder,
	}
	if m.hasHint {
		it.Hint = strings.TrimSpace(s[m.hintStart:m.hintEnd])
	}
	return it
}

// nextMatch returns the first cloze starting at or after from.
func nextMatch(s string, from int) (match, bool) {
	st := stateLiteral
	i := from
	for i < len(s) {
		switch st {
		case stateLiteral:
			idx := strings.Index(s[i:], openTag)
			if idx < 0 {
				return match{}, false
			}
			i += idx
			st = statePrefix
		default:
			if m, ok := matchAt(s, i); ok {
				return m, true
			}
			i++
			st = stateLiteral
		}
	}
	return match{}, false
}

// matchAt runs the cloze state machine from start, which must point at "{{c".
// The delimiters are ASCII so scanning bytes is safe for UTF-8 input.
func matchAt(s string, start int) (match, bool) {
	m := match{start: start}
	st := statePrefix
	i := start

	for {
		switch st {
		case statePrefix:
			if !strings.HasPrefix(s[i:], openTag) {
				return match{}, false
			}
			i += len(openTag)
			m.numStart = i
			st = stateNumber

		case stateNumber:
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i == m.numStart || !strings.HasPrefix(s[i:], sep) {
				return match{}, false
			}
			m.numEnd = i
			i += len(sep)
			m.answerStart = i
			st = stateAnswer

		case stateAnswer:
			for i < len(s) && s[i] != ':' && s[i] != '}' {
				i++
			}
			if i == m.answerStart {
				return match{}, false
			}
			m.answerEnd = i
			switch {
			case strings.HasPrefix(s[i:], sep):
				i += len(sep)
				m.hintStart = i
				m.hasHint = true
				st = stateHint
			case strings.HasPrefix(s[i:], closeTag):
				m.end = i + len(closeTag)
				return m, true
			default:
				return match{}, false
			}

		case stateHint:
			for i < len(s) && s[i] != '}' {
				i++
			}
			if !strings.HasPrefix(s[i:], closeTag) {
				return match{}, false
			}
			m.hintEnd = i
			m.end = i + len(closeTag)
			return m, true

		default:
			return match{}, false
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseNumber converts the digit run of a cloze. Numbers past the int range
// saturate instead of failing.
func parseNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
