package vocabulary

import (
	"context"

	"tagsmith/internal/tagger"
)

// Resolve builds the effective vocabulary: built-in defaults, then the YAML
// file at path, then the database terms when store is non-nil. Each layer
// replaces only the lists it defines.
func Resolve(ctx context.Context, path string, store *Store) (tagger.Vocabulary, error) {
	v := tagger.DefaultVocabulary()

	fromFile, err := LoadFile(path)
	if err != nil {
		return tagger.Vocabulary{}, err
	}
	v = v.Merge(fromFile)

	if store != nil {
		fromDB, err := store.Load(ctx)
		if err != nil {
			return tagger.Vocabulary{}, err
		}
		v = v.Merge(fromDB)
	}
	return v, nil
}
