package tagger

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vocabulary holds the word lists the generator draws attribute and
// boilerplate tags from. Values are treated as read-only once handed to New.
type Vocabulary struct {
	Stopwords   []string            `yaml:"stopwords" json:"stopwords"`
	Materials   []string            `yaml:"materials" json:"materials"`
	Occasions   []string            `yaml:"occasions" json:"occasions"`
	Categories  map[string][]string `yaml:"categories" json:"categories"`
	Boilerplate []string            `yaml:"boilerplate" json:"boilerplate"`
	GiftPhrases []string            `yaml:"gift_phrases" json:"gift_phrases"`
}

var defaultStopwords = []string{
	"a", "an", "the", "and", "or", "but", "nor", "for", "so", "yet",
	"on", "at", "to", "by", "in", "of", "with", "from", "as", "about", "into",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"have", "has", "had", "do", "does", "did",
	"this", "that", "these", "those", "it", "its",
	"they", "them", "their", "there", "here",
	"you", "your", "our", "very", "also", "just",
}

var defaultMaterials = []string{
	"wood", "wooden", "metal", "ceramic", "glass", "cotton", "linen", "silk",
	"leather", "paper", "plastic", "stone", "silver", "gold", "brass", "copper",
	"steel", "bronze", "iron", "clay", "porcelain", "fabric", "wool", "acrylic", "resin",
}

var defaultOccasions = []string{
	"wedding", "birthday", "anniversary", "christmas", "holiday", "halloween",
	"thanksgiving", "easter", "mothers day", "fathers day", "valentines",
	"graduation", "baby shower", "retirement", "housewarming",
}

var defaultCategories = map[string][]string{
	"jewelry":        {"handmade jewelry", "custom jewelry", "unique jewelry", "jewelry gift", "statement piece"},
	"clothing":       {"handmade clothing", "custom apparel", "unique clothing", "fashion gift", "boutique clothing"},
	"home_decor":     {"home decor", "handmade decor", "custom home gift", "interior design", "home accent"},
	"art":            {"original art", "handmade art", "wall art", "custom artwork", "unique art"},
	"accessories":    {"handmade accessories", "custom accessories", "fashion accessory", "unique accessory"},
	"craft_supplies": {"craft supplies", "crafting materials", "art supplies", "diy materials", "crafting tools"},
	"toys_games":     {"handmade toys", "custom game", "unique toy", "kids gift", "educational toy"},
	"vintage":        {"vintage item", "retro find", "antique gift", "collectible", "nostalgic gift"},
}

var defaultBoilerplate = []string{
	"handmade", "custom gift", "personalized", "unique gift", "gift idea",
	"one of a kind", "handcrafted", "made to order", "unique design", "quality product",
	"etsy bestseller", "trending item", "special gift", "gift for her", "gift for him",
	"perfect gift", "anniversary gift", "birthday gift", "holiday gift", "christmas gift",
	"holiday present", "bestselling item", "popular gift", "customizable", "handmade with love",
}

var defaultGiftPhrases = []string{
	"gift for her", "gift for him", "special gift", "thoughtful gift", "perfect gift",
}

// DefaultVocabulary returns a fresh copy of the built-in word lists.
func DefaultVocabulary() Vocabulary {
	v := Vocabulary{
		Stopwords:   defaultStopwords,
		Materials:   defaultMaterials,
		Occasions:   defaultOccasions,
		Categories:  defaultCategories,
		Boilerplate: defaultBoilerplate,
		GiftPhrases: defaultGiftPhrases,
	}
	return v.Clone()
}

// Clone returns a deep copy so callers can customise a vocabulary without
// touching shared tables.
func (v Vocabulary) Clone() Vocabulary {
	out := Vocabulary{
		Stopwords:   slices.Clone(v.Stopwords),
		Materials:   slices.Clone(v.Materials),
		Occasions:   slices.Clone(v.Occasions),
		Boilerplate: slices.Clone(v.Boilerplate),
		GiftPhrases: slices.Clone(v.GiftPhrases),
	}
	if v.Categories != nil {
		out.Categories = make(map[string][]string, len(v.Categories))
		for k, templates := range v.Categories {
			out.Categories[k] = slices.Clone(templates)
		}
	}
	return out
}

// Merge overlays o onto v. Non-empty lists in o replace the matching list in
// v; category templates are merged per key.
func (v Vocabulary) Merge(o Vocabulary) Vocabulary {
	out := v.Clone()
	if len(o.Stopwords) > 0 {
		out.Stopwords = slices.Clone(o.Stopwords)
	}
	if len(o.Materials) > 0 {
		out.Materials = slices.Clone(o.Materials)
	}
	if len(o.Occasions) > 0 {
		out.Occasions = slices.Clone(o.Occasions)
	}
	if len(o.Boilerplate) > 0 {
		out.Boilerplate = slices.Clone(o.Boilerplate)
	}
	if len(o.GiftPhrases) > 0 {
		out.GiftPhrases = slices.Clone(o.GiftPhrases)
	}
	if len(o.Categories) > 0 && out.Categories == nil {
		out.Categories = make(map[string][]string, len(o.Categories))
	}
	for k, templates := range o.Categories {
		out.Categories[CategoryKey(k)] = slices.Clone(templates)
	}
	return out
}

// CategoryNames returns the known category keys in sorted order.
func (v Vocabulary) CategoryNames() []string {
	return slices.Sorted(maps.Keys(v.Categories))
}

// Templates returns the canned tags for a category, matching the key
// loosely ("Home Decor", "home-decor" and "home_decor" are the same).
func (v Vocabulary) Templates(category string) []string {
	return v.Categories[CategoryKey(category)]
}

// CategoryKey canonicalises a category name to its lookup key.
func CategoryKey(category string) string {
	return strings.Join(strings.Fields(NormalizeTag(category)), "_")
}

// CategoryLabel turns a category key such as "toys_games" into the display
// label "Toys Games".
func CategoryLabel(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(CategoryKey(category), "_", " "))
}

// compiled is the lookup-friendly form of a Vocabulary.
type compiled struct {
	stopwords   map[string]struct{}
	materials   []string
	occasions   []string
	categories  map[string][]string
	boilerplate []string
	giftPhrases []string
}

func compile(v Vocabulary) compiled {
	c := compiled{
		stopwords:   make(map[string]struct{}, len(v.Stopwords)),
		materials:   normalizeList(v.Materials),
		occasions:   normalizeList(v.Occasions),
		categories:  make(map[string][]string, len(v.Categories)),
		boilerplate: slices.Clone(v.Boilerplate),
		giftPhrases: slices.Clone(v.GiftPhrases),
	}
	for _, w := range v.Stopwords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			c.stopwords[w] = struct{}{}
		}
	}
	for k, templates := range v.Categories {
		c.categories[CategoryKey(k)] = slices.Clone(templates)
	}
	return c
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if n := Normalize(item); n != "" {
			out = append(out, n)
		}
	}
	return out
}
