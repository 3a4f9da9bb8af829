package tagger

// Weights are the fixed boosts given to attribute-derived tags. Attribute
// weights are added on top of the highest frequency-derived weight of the
// request, so they always rank above phrases taken from the description.
// Boilerplate is absolute and sits below every frequency weight (which is
// at least 1).
type Weights struct {
	Category      float64
	Material      float64
	Occasion      float64
	Style         float64
	MaterialCombo float64
	StyleCombo    float64
	Boilerplate   float64
}

// Options tune candidate extraction and filtering.
type Options struct {
	// MinTokenLength is the shortest token kept as content, in runes.
	MinTokenLength int
	// NgramPoolSize caps how many of the most frequent tokens may start or
	// join an n-gram.
	NgramPoolSize int
	// ProximityWindow is the distance, in tokens, within which n-gram
	// components count as related elsewhere in the description.
	ProximityWindow int
	ProximityBoost  float64
	// StyleComboTokens is how many top content tokens are paired with the
	// style. Negative disables the pairing.
	StyleComboTokens int
	// BoilerplateReserve is how many of the returned slots are kept for
	// boilerplate tags when the ranked list is longer than maxTags. Never
	// more than maxTags-1. Negative disables the reserve.
	BoilerplateReserve  int
	SimilarityThreshold float64
	Weights             Weights
	Score               ScorePolicy
}

// DefaultOptions returns the production tuning.
func DefaultOptions() Options {
	return Options{
		MinTokenLength:      3,
		NgramPoolSize:       30,
		ProximityWindow:     5,
		ProximityBoost:      1.5,
		StyleComboTokens:    3,
		BoilerplateReserve:  1,
		SimilarityThreshold: DefaultSimilarityThreshold,
		Weights: Weights{
			Category:      10,
			Material:      9,
			Occasion:      8,
			Style:         7,
			MaterialCombo: 6,
			StyleCombo:    5,
			Boilerplate:   0.5,
		},
		Score: FixedScore(MaxRelevanceScore),
	}
}

// withDefaults fills zero values from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinTokenLength <= 0 {
		o.MinTokenLength = d.MinTokenLength
	}
	if o.NgramPoolSize <= 0 {
		o.NgramPoolSize = d.NgramPoolSize
	}
	if o.ProximityWindow <= 0 {
		o.ProximityWindow = d.ProximityWindow
	}
	if o.ProximityBoost <= 0 {
		o.ProximityBoost = d.ProximityBoost
	}
	switch {
	case o.StyleComboTokens == 0:
		o.StyleComboTokens = d.StyleComboTokens
	case o.StyleComboTokens < 0:
		o.StyleComboTokens = 0
	}
	switch {
	case o.BoilerplateReserve == 0:
		o.BoilerplateReserve = d.BoilerplateReserve
	case o.BoilerplateReserve < 0:
		o.BoilerplateReserve = 0
	}
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = d.SimilarityThreshold
	}
	if o.Weights == (Weights{}) {
		o.Weights = d.Weights
	}
	if o.Score == nil {
		o.Score = d.Score
	}
	return o
}
