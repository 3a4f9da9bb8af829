// Package tagger turns a product description into ranked listing tags.
//
// Generation is a single pass: the description is normalized and tokenized,
// candidates are extracted from single words, adjacent phrases and the
// category/style/material/occasion tables, boilerplate marketplace tags are
// appended, and the merged set is ranked, limited by word count, filtered
// for near duplicates and truncated. A Generator holds only immutable data
// and is safe for concurrent use.
package tagger

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidInput is returned when Generate is called with limits the
// request validator should have rejected.
var ErrInvalidInput = errors.New("tagger: invalid input")

// Input is one generation request.
type Input struct {
	Description    string
	Category       string
	Style          string
	MaxTags        int
	MaxWordsPerTag int
}

// Result is the outcome of one generation.
type Result struct {
	Tags           []string `json:"tags"`
	RelevanceScore int      `json:"relevanceScore"`
	// TotalAvailableTags counts unique candidates before the word limit.
	TotalAvailableTags int `json:"totalAvailableTags"`
	// TotalFilteredTags counts candidates left after the word limit and the
	// similarity filter, before truncation.
	TotalFilteredTags int `json:"totalFilteredTags"`
	// Ranked carries the returned tags with their weights and sources.
	Ranked []Candidate `json:"-"`
}

// Generator produces tags from a fixed vocabulary and tuning.
type Generator struct {
	vocab      compiled
	opts       Options
	similarity Similarity
}

// New builds a Generator. Zero fields in opts take their DefaultOptions value.
func New(v Vocabulary, opts Options) *Generator {
	opts = opts.withDefaults()
	return &Generator{
		vocab:      compile(v),
		opts:       opts,
		similarity: Similarity{Threshold: opts.SimilarityThreshold},
	}
}

// Options returns the effective tuning.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate runs the full pipeline. Identical input always yields an
// identical result.
func (g *Generator) Generate(in Input) (Result, error) {
	if strings.TrimSpace(in.Description) == "" {
		return Result{}, fmt.Errorf("%w: description is empty", ErrInvalidInput)
	}
	if in.MaxTags < 1 || in.MaxWordsPerTag < 1 {
		return Result{}, fmt.Errorf("%w: limits must be positive (maxTags=%d, maxWordsPerTag=%d)", ErrInvalidInput, in.MaxTags, in.MaxWordsPerTag)
	}

	ranked := g.Candidates(in)
	available := len(ranked)

	limited := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		if WordCount(c.Text) <= in.MaxWordsPerTag {
			limited = append(limited, c)
		}
	}
	kept := g.similarity.filterSimilar(limited)
	filtered := len(kept)
	kept = truncate(kept, in.MaxTags, g.opts.BoilerplateReserve)

	tags := make([]string, len(kept))
	for i, c := range kept {
		tags[i] = c.Text
	}
	return Result{
		Tags:               tags,
		RelevanceScore:     g.opts.Score.Score(tags, in),
		TotalAvailableTags: available,
		TotalFilteredTags:  filtered,
		Ranked:             kept,
	}, nil
}

// truncate keeps the first n candidates. When fewer than reserve of them
// are boilerplate, the lowest-ranked other entries give way to the best
// boilerplate candidates that were cut. Rank order is preserved.
func truncate(ranked []Candidate, n, reserve int) []Candidate {
	if len(ranked) <= n {
		return ranked
	}
	reserve = min(reserve, n-1)
	out := slices.Clone(ranked[:n])
	have := 0
	for _, c := range out {
		if c.Source == SourceBoilerplate {
			have++
		}
	}
	for _, c := range ranked[n:] {
		if have >= reserve {
			break
		}
		if c.Source != SourceBoilerplate {
			continue
		}
		drop := -1
		for i := len(out) - 1; i >= 0; i-- {
			if out[i].Source != SourceBoilerplate {
				drop = i
				break
			}
		}
		if drop < 0 {
			break
		}
		out = append(slices.Delete(out, drop, drop+1), c)
		have++
	}
	return out
}

// Candidates returns every unique candidate for the input in rank order,
// before word limiting and similarity filtering.
func (g *Generator) Candidates(in Input) []Candidate {
	a := g.analyze(in.Description)
	c := newCollector()
	g.extractWords(c, a)
	g.extractPhrases(c, a)
	ceiling := max(c.maxWeight(), 1)
	g.extractAttributes(c, a, in.Category, in.Style, ceiling)
	g.extractBoilerplate(c, a)

	ranked := slices.Clone(c.items)
	slices.SortFunc(ranked, compareRank)
	return ranked
}

// compareRank orders by weight, then word count, then text length, all
// descending, and finally by emission order.
func compareRank(x, y Candidate) int {
	if d := cmp.Compare(y.Weight, x.Weight); d != 0 {
		return d
	}
	if d := cmp.Compare(WordCount(y.Text), WordCount(x.Text)); d != 0 {
		return d
	}
	if d := cmp.Compare(runeLen(y.Text), runeLen(x.Text)); d != 0 {
		return d
	}
	return cmp.Compare(x.seq, y.seq)
}
