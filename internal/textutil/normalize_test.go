package textutil

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed runs", "Hello   world\n\t!", "Hello world !"},
		{"leading and trailing", "  padded \n", "padded"},
		{"empty", "", ""},
		{"only whitespace", " \t\r\n ", ""},
		{"unicode space", "a  b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemovePunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"commas and bangs", "hello, world!!!", "hello world"},
		{"keeps underscore", "snake_case-name", "snake_casename"},
		{"keeps digits", "v1.2 (draft)", "v12 draft"},
		{"keeps non-latin letters", "привет, мир", "привет мир"},
		{"symbols only", "#$%&", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemovePunctuation(tt.input); got != tt.want {
				t.Errorf("RemovePunctuation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and punctuation", "Hello, WORLD!!!", "hello world"},
		{"punctuation between spaces", "alpha - beta", "alpha beta"},
		{"newlines", "Line one.\nLine two.\n", "line one line two"},
		{"empty", "", ""},
		{"punctuation only", "?!...", ""},
		{"accented", "Café Ünïcode", "café ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, WORLD!!!",
		"  Tabs\tand\nnewlines  ",
		"İstanbul ΣΟΦΟΣ straße",
		"a - b -- c --- d",
		"mixed_under_scores and 123 numbers!",
		" leading nbsp and trailing ",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeCorpusPreservesOrder(t *testing.T) {
	got := NormalizeCorpus([]string{"B!", "a?", ""})
	want := []string{"b", "a", ""}
	if len(got) != len(want) {
		t.Fatalf("NormalizeCorpus() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeCorpus()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
