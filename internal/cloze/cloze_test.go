package cloze_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remaimber-it/clozeit/internal/cloze"
)

const sample = "The {{c1::sky::color}} is {{c2::blue}}."

func TestParse_Sample(t *testing.T) {
	got := cloze.Parse(sample)

	want := cloze.ParseResult{
		Clozes: []cloze.Item{
			{ID: 1, Answer: "sky", Hint: "color", Placeholder: "[CLOZE_0]"},
			{ID: 2, Answer: "blue", Hint: "", Placeholder: "[CLOZE_1]"},
		},
		ProcessedText: "The [CLOZE_0] is [CLOZE_1].",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PlainTextUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"no markup here",
		"braces { } and {{ }} and c1:: alone",
		"[CLOZE_0] looks like a placeholder",
		"{{c",
	}

	for _, in := range inputs {
		got := cloze.Parse(in)
		if len(got.Clozes) != 0 {
			t.Errorf("Parse(%q): expected no clozes, got %d", in, len(got.Clozes))
		}
		if got.ProcessedText != in {
			t.Errorf("Parse(%q): expected text unchanged, got %q", in, got.ProcessedText)
		}
	}
}

func TestParse_EmptyReturnsEmptySlice(t *testing.T) {
	got := cloze.Parse("")
	if got.Clozes == nil {
		t.Error("expected non-nil empty clozes slice")
	}
}

func TestParse_Cases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		clozes    []cloze.Item
		processed string
	}{
		{
			name:  "trims answer and hint",
			input: "Capital: {{c3::  Paris  ::  city  }}",
			clozes: []cloze.Item{
				{ID: 3, Answer: "Paris", Hint: "city", Placeholder: "[CLOZE_0]"},
			},
			processed: "Capital: [CLOZE_0]",
		},
		{
			name:      "colon in answer blocks the match",
			input:     "Meet at {{c1::12:30::hh:mm}}",
			processed: "Meet at {{c1::12:30::hh:mm}}",
		},
		{
			name:  "colon in hint only",
			input: "Meet at {{c1::noon::format hh:mm}}",
			clozes: []cloze.Item{
				{ID: 1, Answer: "noon", Hint: "format hh:mm", Placeholder: "[CLOZE_0]"},
			},
			processed: "Meet at [CLOZE_0]",
		},
		{
			name:      "single colon inside answer does not match",
			input:     "{{c1::a:b}}",
			processed: "{{c1::a:b}}",
		},
		{
			name:      "empty answer does not match",
			input:     "{{c1::}}",
			processed: "{{c1::}}",
		},
		{
			name:  "empty hint",
			input: "{{c1::x::}}",
			clozes: []cloze.Item{
				{ID: 1, Answer: "x", Hint: "", Placeholder: "[CLOZE_0]"},
			},
			processed: "[CLOZE_0]",
		},
		{
			name:      "missing number",
			input:     "{{c::x}}",
			processed: "{{c::x}}",
		},
		{
			name:      "non digit in number",
			input:     "{{c1a::x}}",
			processed: "{{c1a::x}}",
		},
		{
			name:  "ids may repeat and skip",
			input: "{{c2::a}} {{c2::b}} {{c5::c}}",
			clozes: []cloze.Item{
				{ID: 2, Answer: "a", Placeholder: "[CLOZE_0]"},
				{ID: 2, Answer: "b", Placeholder: "[CLOZE_1]"},
				{ID: 5, Answer: "c", Placeholder: "[CLOZE_2]"},
			},
			processed: "[CLOZE_0] [CLOZE_1] [CLOZE_2]",
		},
		{
			name:  "failed candidate then valid cloze",
			input: "{{c1::bad} {{c2::good}}",
			clozes: []cloze.Item{
				{ID: 2, Answer: "good", Placeholder: "[CLOZE_0]"},
			},
			processed: "{{c1::bad} [CLOZE_0]",
		},
		{
			name:  "nested opener is swallowed into the answer",
			input: "{{c1::a{{c2::b}}",
			clozes: []cloze.Item{
				{ID: 1, Answer: "a{{c2", Hint: "b", Placeholder: "[CLOZE_0]"},
			},
			processed: "[CLOZE_0]",
		},
		{
			name:  "answer spans lines",
			input: "{{c7::line\nbreak}}",
			clozes: []cloze.Item{
				{ID: 7, Answer: "line\nbreak", Placeholder: "[CLOZE_0]"},
			},
			processed: "[CLOZE_0]",
		},
		{
			name:  "leading zeros",
			input: "{{c007::bond}}",
			clozes: []cloze.Item{
				{ID: 7, Answer: "bond", Placeholder: "[CLOZE_0]"},
			},
			processed: "[CLOZE_0]",
		},
		{
			name:  "multibyte text",
			input: "我{{c1::喜欢::like}}你",
			clozes: []cloze.Item{
				{ID: 1, Answer: "喜欢", Hint: "like", Placeholder: "[CLOZE_0]"},
			},
			processed: "我[CLOZE_0]你",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cloze.Parse(tt.input)

			want := tt.clozes
			if want == nil {
				want = []cloze.Item{}
			}
			if diff := cmp.Diff(want, got.Clozes); diff != "" {
				t.Errorf("clozes mismatch (-want +got):\n%s", diff)
			}
			if got.ProcessedText != tt.processed {
				t.Errorf("expected processed text %q, got %q", tt.processed, got.ProcessedText)
			}
		})
	}
}

func TestParse_DuplicateLiteralCollapses(t *testing.T) {
	got := cloze.Parse("{{c1::cat}} and {{c1::cat}}")

	if len(got.Clozes) != 1 {
		t.Fatalf("expected 1 cloze, got %d", len(got.Clozes))
	}
	if got.ProcessedText != "[CLOZE_0] and [CLOZE_0]" {
		t.Errorf("expected both occurrences on [CLOZE_0], got %q", got.ProcessedText)
	}
}

func TestParse_MalformedLeftVerbatim(t *testing.T) {
	in := "{{c1::oops}"
	got := cloze.Parse(in)

	if len(got.Clozes) != 0 {
		t.Errorf("expected no clozes, got %d", len(got.Clozes))
	}
	if got.ProcessedText != in {
		t.Errorf("expected %q, got %q", in, got.ProcessedText)
	}
}

func TestParse_HugeNumberSaturates(t *testing.T) {
	got := cloze.Parse("{{c99999999999999999999999::x}}")

	if len(got.Clozes) != 1 {
		t.Fatalf("expected 1 cloze, got %d", len(got.Clozes))
	}
	if got.Clozes[0].ID != math.MaxInt {
		t.Errorf("expected ID %d, got %d", math.MaxInt, got.Clozes[0].ID)
	}
}

func TestParse_PlaceholderCountMatchesClozes(t *testing.T) {
	inputs := []string{
		sample,
		"{{c1::a}}{{c2::b}}{{c3::c::d}}",
		"x {{c1::one}} y {{c1::two::hint}} z",
	}

	for _, in := range inputs {
		got := cloze.Parse(in)
		if n := strings.Count(got.ProcessedText, "[CLOZE_"); n != len(got.Clozes) {
			t.Errorf("Parse(%q): %d placeholders for %d clozes", in, n, len(got.Clozes))
		}
		for i, c := range got.Clozes {
			if c.Placeholder != cloze.Placeholder(i) {
				t.Errorf("Parse(%q): cloze %d has placeholder %q", in, i, c.Placeholder)
			}
			if !strings.Contains(got.ProcessedText, c.Placeholder) {
				t.Errorf("Parse(%q): placeholder %q missing from text", in, c.Placeholder)
			}
		}
	}
}

func TestFormat_Masked(t *testing.T) {
	got := cloze.Format(sample, false)
	want := "The [___] is [____]."

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormat_Revealed(t *testing.T) {
	got := cloze.Format(sample, true)
	want := "The sky is blue."

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormat_EmptyPassThrough(t *testing.T) {
	if got := cloze.Format("", true); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormat_RevealLeavesNoPlaceholders(t *testing.T) {
	in := "{{c1::Go}} was designed at {{c2::Google::company}} in {{c3::2007}}."
	got := cloze.Format(in, true)

	if strings.Contains(got, "[CLOZE_") {
		t.Errorf("expected no placeholders, got %q", got)
	}
	for _, c := range cloze.Parse(in).Clozes {
		if !strings.Contains(got, c.Answer) {
			t.Errorf("expected answer %q in %q", c.Answer, got)
		}
	}
}

func TestFormat_DuplicateKeepsSecondPlaceholder(t *testing.T) {
	got := cloze.Format("{{c1::cat}} and {{c1::cat}}", true)
	want := "cat and [CLOZE_0]"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormat_LiteralPlaceholderInSourceIsReplacedFirst(t *testing.T) {
	got := cloze.Format("[CLOZE_0] then {{c1::x}}", true)
	want := "x then [CLOZE_0]"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPreview_MatchesMaskedFormat(t *testing.T) {
	if cloze.Preview(sample) != cloze.Format(sample, false) {
		t.Error("expected Preview to equal masked Format")
	}
}

func TestBlank_Width(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"", "[___]"},
		{"a", "[___]"},
		{"sky", "[___]"},
		{"blue", "[____]"},
		{"Mississippi", "[___________]"},
		{"日本", "[___]"},
		{"über", "[____]"},
		{"\U0001F431\U0001F431\U0001F431\U0001F431", "[____]"},
	}

	for _, tt := range tests {
		if got := cloze.Blank(tt.answer); got != tt.want {
			t.Errorf("Blank(%q): expected %q, got %q", tt.answer, tt.want, got)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add(sample)
	f.Add("{{c1::cat}} and {{c1::cat}}")
	f.Add("{{c1::oops}")
	f.Add("{{c1::a{{c2::b}}")

	f.Fuzz(func(t *testing.T, in string) {
		got := cloze.Parse(in)
		if !strings.Contains(in, "{{c") {
			if got.ProcessedText != in || len(got.Clozes) != 0 {
				t.Fatalf("plain text %q was modified", in)
			}
		}
		for i, c := range got.Clozes {
			if c.Placeholder != cloze.Placeholder(i) {
				t.Fatalf("cloze %d has placeholder %q", i, c.Placeholder)
			}
		}
		_ = cloze.Format(in, false)
		_ = cloze.Format(in, true)
	})
}
