package tagger

import (
	"slices"
	"strings"
)

// Source names the extractor that produced a candidate.
type Source string

const (
	SourceWord        Source = "word"
	SourcePhrase      Source = "phrase"
	SourceCategory    Source = "category"
	SourceStyle       Source = "style"
	SourceMaterial    Source = "material"
	SourceOccasion    Source = "occasion"
	SourceBoilerplate Source = "boilerplate"
)

// Candidate is a proposed tag before ranking and filtering.
type Candidate struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
	Source Source  `json:"source"`
	seq    int
}

// analysis is the tokenized view of one description.
type analysis struct {
	normalized string
	// plain is normalized without apostrophes or hyphens, so "mother's day"
	// reads "mothers day".
	plain     string
	tokens    []string
	content   []bool
	freq      map[string]int
	positions map[string][]int
	// ranked lists unique content tokens by frequency, ties by first appearance.
	ranked []string
}

func (g *Generator) analyze(description string) analysis {
	a := analysis{
		normalized: Normalize(description),
		freq:       make(map[string]int),
		positions:  make(map[string][]int),
	}
	a.plain = NormalizeTag(a.normalized)
	a.tokens = strings.Fields(a.normalized)
	a.content = make([]bool, len(a.tokens))
	for i, tok := range a.tokens {
		a.positions[tok] = append(a.positions[tok], i)
		if _, stop := g.vocab.stopwords[tok]; stop || runeLen(tok) < g.opts.MinTokenLength {
			continue
		}
		a.content[i] = true
		if a.freq[tok] == 0 {
			a.ranked = append(a.ranked, tok)
		}
		a.freq[tok]++
	}
	slices.SortStableFunc(a.ranked, func(x, y string) int {
		return a.freq[y] - a.freq[x]
	})
	return a
}

// mentions reports whether term appears in the description, with or without
// apostrophes.
func (a analysis) mentions(term string) bool {
	return strings.Contains(a.normalized, term) || strings.Contains(a.plain, term)
}

// nearbyElsewhere reports whether words co-occur within the proximity window
// around some occurrence of words[0] other than the one at anchor.
func (a analysis) nearbyElsewhere(anchor int, words []string, window int) bool {
	for _, p := range a.positions[words[0]] {
		if p == anchor {
			continue
		}
		all := true
		for _, w := range words[1:] {
			found := false
			for _, q := range a.positions[w] {
				if q != p && q >= p-window && q <= p+window {
					found = true
					break
				}
			}
			if !found {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// collector accumulates candidates, merging identical texts and keeping the
// highest weight and the earliest emission position.
type collector struct {
	items []Candidate
	index map[string]int
}

func newCollector() *collector {
	return &collector{index: make(map[string]int)}
}

func (c *collector) add(text string, weight float64, src Source) {
	text = NormalizeTag(text)
	if text == "" {
		return
	}
	if i, ok := c.index[text]; ok {
		if weight > c.items[i].Weight {
			c.items[i].Weight = weight
			c.items[i].Source = src
		}
		return
	}
	c.index[text] = len(c.items)
	c.items = append(c.items, Candidate{Text: text, Weight: weight, Source: src, seq: len(c.items)})
}

// maxWeight returns the highest weight collected so far.
func (c *collector) maxWeight() float64 {
	var w float64
	for _, it := range c.items {
		w = max(w, it.Weight)
	}
	return w
}

func (g *Generator) extractWords(c *collector, a analysis) {
	for _, tok := range a.ranked {
		c.add(tok, float64(a.freq[tok]), SourceWord)
	}
}

func (g *Generator) extractPhrases(c *collector, a analysis) {
	pool := make(map[string]struct{}, g.opts.NgramPoolSize)
	for _, tok := range a.ranked[:min(len(a.ranked), g.opts.NgramPoolSize)] {
		pool[tok] = struct{}{}
	}
	usable := func(i int) bool {
		if i >= len(a.tokens) || !a.content[i] {
			return false
		}
		_, ok := pool[a.tokens[i]]
		return ok
	}
	for i := range a.tokens {
		if !usable(i) || !usable(i+1) {
			continue
		}
		g.addPhrase(c, a, i, a.tokens[i:i+2])
		if usable(i + 2) {
			g.addPhrase(c, a, i, a.tokens[i:i+3])
		}
	}
}

func (g *Generator) addPhrase(c *collector, a analysis, anchor int, words []string) {
	var sum float64
	for _, w := range words {
		sum += float64(a.freq[w])
	}
	weight := sum / float64(len(words))
	if a.nearbyElsewhere(anchor, words, g.opts.ProximityWindow) {
		weight *= g.opts.ProximityBoost
	}
	c.add(strings.Join(words, " "), weight, SourcePhrase)
}

func (g *Generator) extractAttributes(c *collector, a analysis, category, style string, ceiling float64) {
	w := g.opts.Weights
	label := NormalizeTag(category)
	if label != "" {
		c.add(label, ceiling+w.Category, SourceCategory)
		c.add(label+" gift", ceiling+w.Category, SourceCategory)
		for _, t := range g.vocab.categories[CategoryKey(category)] {
			c.add(t, ceiling+w.Category, SourceCategory)
		}
	}
	target := label
	if target == "" {
		target = "item"
	}

	for _, m := range g.vocab.materials {
		if !a.mentions(m) {
			continue
		}
		c.add(m, ceiling+w.Material, SourceMaterial)
		c.add(m+" "+target, ceiling+w.MaterialCombo, SourceMaterial)
		c.add(m+" gift", ceiling+w.MaterialCombo, SourceMaterial)
	}

	for _, o := range g.vocab.occasions {
		if !a.mentions(o) && !a.mentions(strings.ReplaceAll(o, " ", "")) {
			continue
		}
		c.add(o+" gift", ceiling+w.Occasion, SourceOccasion)
		c.add(o+" present", ceiling+w.Occasion, SourceOccasion)
	}

	s := NormalizeTag(style)
	if s == "" {
		return
	}
	c.add(s, ceiling+w.Style, SourceStyle)
	c.add(s+" "+target, ceiling+w.Style, SourceStyle)
	c.add(s+" design", ceiling+w.Style, SourceStyle)
	c.add(s+" style", ceiling+w.Style, SourceStyle)
	paired := 0
	for _, tok := range a.ranked {
		if paired >= g.opts.StyleComboTokens {
			break
		}
		if NormalizeTag(tok) == s {
			continue
		}
		c.add(s+" "+tok, ceiling+w.StyleCombo, SourceStyle)
		paired++
	}
}

func (g *Generator) extractBoilerplate(c *collector, a analysis) {
	weight := g.opts.Weights.Boilerplate
	if strings.Contains(a.normalized, "gift") {
		for _, t := range g.vocab.giftPhrases {
			c.add(t, weight, SourceBoilerplate)
		}
	}
	for _, t := range g.vocab.boilerplate {
		c.add(t, weight, SourceBoilerplate)
	}
}
