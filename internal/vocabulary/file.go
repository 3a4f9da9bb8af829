// Package vocabulary loads the generator word lists from YAML files and from
// the vocabulary_terms table, layered over the built-in defaults.
package vocabulary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tagsmith/internal/tagger"
)

// Decode reads a YAML vocabulary document. Unknown keys are rejected so a
// typo does not silently fall back to the defaults.
func Decode(r io.Reader) (tagger.Vocabulary, error) {
	var v tagger.Vocabulary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return tagger.Vocabulary{}, nil
		}
		return tagger.Vocabulary{}, fmt.Errorf("vocabulary: decode yaml: %w", err)
	}
	return v, nil
}

// LoadFile reads a YAML vocabulary file. An empty path yields an empty
// overlay.
func LoadFile(path string) (tagger.Vocabulary, error) {
	if strings.TrimSpace(path) == "" {
		return tagger.Vocabulary{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return tagger.Vocabulary{}, fmt.Errorf("vocabulary: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(raw))
}

// Encode writes v as YAML.
func Encode(w io.Writer, v tagger.Vocabulary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("vocabulary: encode yaml: %w", err)
	}
	return enc.Close()
}
