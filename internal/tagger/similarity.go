package tagger

import "strings"

// DefaultSimilarityThreshold is the shared-word ratio above which two tags
// count as near duplicates.
const DefaultSimilarityThreshold = 0.7

// Similarity decides whether two normalized tags are too close to both
// appear in one result.
type Similarity struct {
	Threshold float64
}

// TooSimilar reports whether a and b collide: identical texts, one text
// contained in the other, or a shared-word ratio above the threshold. The
// ratio is |words(a) ∩ words(b)| divided by the larger word count.
func (s Similarity) TooSimilar(a, b string) bool {
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return s.SharedWordRatio(a, b) > s.Threshold
}

// SharedWordRatio returns the fraction of distinct words a and b have in common.
func (Similarity) SharedWordRatio(a, b string) float64 {
	wa, wb := strings.Fields(a), strings.Fields(b)
	larger := max(len(wa), len(wb))
	if larger == 0 {
		return 0
	}
	inB := make(map[string]struct{}, len(wb))
	for _, w := range wb {
		inB[w] = struct{}{}
	}
	shared := 0
	seen := make(map[string]struct{}, len(wa))
	for _, w := range wa {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := inB[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(larger)
}

// filterSimilar walks ranked candidates in order and keeps each one that does
// not collide with anything already kept. Earlier (higher ranked) entries win.
func (s Similarity) filterSimilar(ranked []Candidate) []Candidate {
	kept := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		clash := false
		for _, k := range kept {
			if s.TooSimilar(c.Text, k.Text) {
				clash = true
				break
			}
		}
		if !clash {
			kept = append(kept, c)
		}
	}
	return kept
}
