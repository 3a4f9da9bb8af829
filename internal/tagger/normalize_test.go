package tagger

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "Handmade Ceramic MUG", want: "handmade ceramic mug"},
		{name: "slash splits words", in: "wood/metal", want: "wood metal"},
		{name: "keeps apostrophe and hyphen", in: "Mother's hand-made gift!", want: "mother's hand-made gift"},
		{name: "collapses whitespace", in: "  a\t\tb \n c  ", want: "a b c"},
		{name: "punctuation only", in: "!!! ... ,,,", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "unicode letters", in: "Café Crème", want: "café crème"},
		{name: "compatibility forms", in: "ｍｕｇ", want: "mug"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Custom ceramic mug, with name.")
	want := []string{"custom", "ceramic", "mug", "with", "name"}
	if !slices.Equal(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	if got := Tokenize("   "); len(got) != 0 {
		t.Fatalf("Tokenize(blank) = %v, want empty", got)
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "home_decor", want: "home decor"},
		{in: "Mother's Day", want: "mothers day"},
		{in: "hand-made", want: "hand made"},
		{in: "  gift   for  her ", want: "gift for her"},
		{in: "---", want: ""},
	}
	for _, tc := range tests {
		if got := NormalizeTag(tc.in); got != tc.want {
			t.Fatalf("NormalizeTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAnalyzeFiltersStopwordsAndShortTokens(t *testing.T) {
	g := New(DefaultVocabulary(), DefaultOptions())
	a := g.analyze("The art of a mug is in the mug, an ox")

	want := []string{"mug", "art"}
	if !slices.Equal(a.ranked, want) {
		t.Fatalf("ranked = %v, want %v", a.ranked, want)
	}
	if a.freq["mug"] != 2 {
		t.Fatalf("freq[mug] = %d, want 2", a.freq["mug"])
	}
	if len(a.tokens) != 12 {
		t.Fatalf("tokens = %v, want the full stream of 12", a.tokens)
	}
}
