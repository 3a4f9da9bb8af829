package tagger

import (
	"slices"
	"testing"
)

func TestDefaultVocabularyIsACopy(t *testing.T) {
	v := DefaultVocabulary()
	v.Materials[0] = "unobtainium"
	v.Categories["jewelry"][0] = "changed"

	fresh := DefaultVocabulary()
	if fresh.Materials[0] == "unobtainium" {
		t.Fatalf("materials table was mutated through a copy")
	}
	if fresh.Categories["jewelry"][0] == "changed" {
		t.Fatalf("category templates were mutated through a copy")
	}
}

func TestVocabularyMerge(t *testing.T) {
	base := DefaultVocabulary()
	merged := base.Merge(Vocabulary{
		Materials:  []string{"bamboo", "cork"},
		Categories: map[string][]string{"Pet Supplies": {"dog collar", "pet gift"}},
	})

	if !slices.Equal(merged.Materials, []string{"bamboo", "cork"}) {
		t.Fatalf("materials = %v", merged.Materials)
	}
	if !slices.Equal(merged.Occasions, base.Occasions) {
		t.Fatalf("occasions should be kept from base")
	}
	if got := merged.Templates("pet-supplies"); !slices.Equal(got, []string{"dog collar", "pet gift"}) {
		t.Fatalf("templates = %v", got)
	}
	if got := merged.Templates("jewelry"); len(got) == 0 {
		t.Fatalf("existing categories should survive a merge")
	}
	if slices.Contains(base.Materials, "bamboo") {
		t.Fatalf("merge must not modify the receiver")
	}
}

func TestCategoryNamesSorted(t *testing.T) {
	names := DefaultVocabulary().CategoryNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "home_decor") {
		t.Fatalf("home_decor missing from %v", names)
	}
}

func TestCategoryKey(t *testing.T) {
	for _, in := range []string{"home_decor", "Home Decor", "home-decor", " HOME  decor "} {
		if got := CategoryKey(in); got != "home_decor" {
			t.Fatalf("CategoryKey(%q) = %q", in, got)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := map[string]string{
		"toys_games":     "Toys Games",
		"art":            "Art",
		"craft-supplies": "Craft Supplies",
	}
	for in, want := range tests {
		if got := CategoryLabel(in); got != want {
			t.Fatalf("CategoryLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
