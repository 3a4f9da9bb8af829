package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and replaces every rune that is not a letter,
// digit, apostrophe, hyphen or whitespace with a space, so "wood/metal"
// becomes "wood metal". Whitespace is collapsed and trimmed.
func Normalize(text string) string {
	// cases.Caser keeps state between calls and must not be shared.
	text = cases.Lower(language.Und).String(norm.NFKC.String(text))
	return strings.Join(strings.Fields(strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'', r == '’', r == '-':
			return r
		default:
			return ' '
		}
	}, text)), " ")
}

// Tokenize splits normalized text into its tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// NormalizeTag produces the canonical text of a tag: lowercase, letters and
// digits only, single spaces between words. Apostrophes are dropped so
// "mother's" stays one word; any other separator becomes a space.
func NormalizeTag(text string) string {
	text = cases.Lower(language.Und).String(norm.NFKC.String(text))
	return strings.Join(strings.Fields(strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '\'' || r == '’':
			return -1
		default:
			return ' '
		}
	}, text)), " ")
}

// WordCount returns the number of space separated words in a tag.
func WordCount(tag string) int {
	return len(strings.Fields(tag))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
