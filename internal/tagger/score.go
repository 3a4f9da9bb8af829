package tagger

import (
	"fmt"
	"strings"
)

// MaxRelevanceScore is the top of the presentational relevance scale.
const MaxRelevanceScore = 99

// ScorePolicy turns a final tag list into the relevance number shown to the user.
type ScorePolicy interface {
	Score(tags []string, in Input) int
}

// FixedScore always reports the same value. FixedScore(MaxRelevanceScore)
// is the default policy.
type FixedScore int

func (s FixedScore) Score([]string, Input) int { return int(s) }

// CompositeScore derives the score from how many tags were produced, how
// varied their word counts are, how many mention the category and how many
// longer description words they cover. The result is capped at
// MaxRelevanceScore.
type CompositeScore struct{}

func (CompositeScore) Score(tags []string, in Input) int {
	if len(tags) == 0 {
		return 0
	}
	lengths := make(map[int]struct{})
	for _, t := range tags {
		lengths[WordCount(t)] = struct{}{}
	}
	categoryMatches := 0
	if category := NormalizeTag(in.Category); category != "" {
		for _, t := range tags {
			if strings.Contains(t, category) {
				categoryMatches++
			}
		}
	}
	keywordMatches := 0
	for _, w := range Tokenize(in.Description) {
		if runeLen(w) <= 4 {
			continue
		}
		w = NormalizeTag(w)
		for _, t := range tags {
			if strings.Contains(t, w) {
				keywordMatches++
				break
			}
		}
	}
	score := 40 + 2*len(tags) + 5*len(lengths) + 3*categoryMatches + 2*keywordMatches
	return min(score, MaxRelevanceScore)
}

// ParseScorePolicy maps a configuration name to a policy.
func ParseScorePolicy(name string) (ScorePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fixed":
		return FixedScore(MaxRelevanceScore), nil
	case "composite":
		return CompositeScore{}, nil
	default:
		return nil, fmt.Errorf("unknown score policy %q", name)
	}
}
