package vocabulary

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"tagsmith/internal/tagger"
)

func TestDecode(t *testing.T) {
	doc := `
materials: [bamboo, cork]
categories:
  Pet Supplies:
    - dog collar
    - pet gift
`
	v, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !slices.Equal(v.Materials, []string{"bamboo", "cork"}) {
		t.Fatalf("materials = %v", v.Materials)
	}
	if len(v.Stopwords) != 0 {
		t.Fatalf("stopwords should be empty, got %v", v.Stopwords)
	}
	if got := v.Categories["Pet Supplies"]; !slices.Equal(got, []string{"dog collar", "pet gift"}) {
		t.Fatalf("categories = %v", v.Categories)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode(strings.NewReader("matrials: [wood]\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	v, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(v.Materials) != 0 || v.Categories != nil {
		t.Fatalf("expected empty vocabulary, got %+v", v)
	}
}

func TestEncodeWritesYAMLKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, tagger.DefaultVocabulary()); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	out := buf.String()
	for _, key := range []string{"stopwords:", "materials:", "occasions:", "categories:", "boilerplate:", "gift_phrases:", "home_decor:"} {
		if !strings.Contains(out, key) {
			t.Fatalf("encoded vocabulary missing %q", key)
		}
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode()) returned error: %v", err)
	}
	if !slices.Equal(back.CategoryNames(), tagger.DefaultVocabulary().CategoryNames()) {
		t.Fatalf("category names changed: %v", back.CategoryNames())
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	v, err := LoadFile("  ")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(v.Materials) != 0 {
		t.Fatalf("expected empty overlay, got %+v", v)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolveLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, []byte("occasions: [diwali]\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	v, err := Resolve(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !slices.Equal(v.Occasions, []string{"diwali"}) {
		t.Fatalf("occasions = %v", v.Occasions)
	}
	if !slices.Equal(v.Materials, tagger.DefaultVocabulary().Materials) {
		t.Fatalf("materials should come from defaults")
	}
}
