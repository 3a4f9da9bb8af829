package vocabulary

import (
	"context"
	"fmt"

	"tagsmith/internal/infra"
	"tagsmith/internal/sqlinline"
	"tagsmith/internal/tagger"
)

// Term kinds stored in vocabulary_terms.kind.
const (
	KindStopword    = "stopword"
	KindMaterial    = "material"
	KindOccasion    = "occasion"
	KindCategory    = "category"
	KindBoilerplate = "boilerplate"
	KindGiftPhrase  = "gift_phrase"
)

// Store reads and writes vocabulary terms in Postgres.
type Store struct {
	SQL infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{SQL: sql}
}

// Load returns the enabled terms as a vocabulary overlay. Category rows
// carry the category key the template belongs to.
func (s *Store) Load(ctx context.Context) (tagger.Vocabulary, error) {
	rows, err := s.SQL.Query(ctx, sqlinline.QListVocabularyTerms)
	if err != nil {
		return tagger.Vocabulary{}, fmt.Errorf("vocabulary: query terms: %w", err)
	}
	defer rows.Close()

	var v tagger.Vocabulary
	for rows.Next() {
		var kind, term, category string
		if err := rows.Scan(&kind, &term, &category); err != nil {
			return tagger.Vocabulary{}, fmt.Errorf("vocabulary: scan term: %w", err)
		}
		switch kind {
		case KindStopword:
			v.Stopwords = append(v.Stopwords, term)
		case KindMaterial:
			v.Materials = append(v.Materials, term)
		case KindOccasion:
			v.Occasions = append(v.Occasions, term)
		case KindBoilerplate:
			v.Boilerplate = append(v.Boilerplate, term)
		case KindGiftPhrase:
			v.GiftPhrases = append(v.GiftPhrases, term)
		case KindCategory:
			if category == "" {
				return tagger.Vocabulary{}, fmt.Errorf("vocabulary: category term %q has no category", term)
			}
			if v.Categories == nil {
				v.Categories = make(map[string][]string)
			}
			key := tagger.CategoryKey(category)
			v.Categories[key] = append(v.Categories[key], term)
		default:
			return tagger.Vocabulary{}, fmt.Errorf("vocabulary: unknown term kind %q", kind)
		}
	}
	if err := rows.Err(); err != nil {
		return tagger.Vocabulary{}, fmt.Errorf("vocabulary: iterate terms: %w", err)
	}
	return v, nil
}

// Seed upserts every term of v, keeping list order in the position column.
func (s *Store) Seed(ctx context.Context, v tagger.Vocabulary) (int, error) {
	n := 0
	put := func(kind, category string, terms []string) error {
		for i, term := range terms {
			if _, err := s.SQL.Exec(ctx, sqlinline.QUpsertVocabularyTerm, kind, term, category, i); err != nil {
				return fmt.Errorf("vocabulary: upsert %s %q: %w", kind, term, err)
			}
			n++
		}
		return nil
	}

	lists := []struct {
		kind  string
		terms []string
	}{
		{KindStopword, v.Stopwords},
		{KindMaterial, v.Materials},
		{KindOccasion, v.Occasions},
		{KindBoilerplate, v.Boilerplate},
		{KindGiftPhrase, v.GiftPhrases},
	}
	for _, l := range lists {
		if err := put(l.kind, "", l.terms); err != nil {
			return n, err
		}
	}
	for _, category := range v.CategoryNames() {
		if err := put(KindCategory, category, v.Categories[category]); err != nil {
			return n, err
		}
	}
	return n, nil
}
