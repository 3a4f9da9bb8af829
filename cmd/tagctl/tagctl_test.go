package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mugDescription = "Handmade ceramic mug with custom name, personalized gift for coffee lovers, birthday present"

func runTagctl(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VOCABULARY_PATH", "")
	t.Setenv("DATABASE_URL", "")
	color.NoColor = true

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCopyFormat(t *testing.T) {
	out, err := runTagctl(t, "", "generate", "--category", "home_decor", "--style", "minimalist", "--format", "copy", mugDescription)
	require.NoError(t, err)

	tags := strings.Split(strings.TrimSpace(out), ", ")
	assert.Len(t, tags, 13)
	assert.Contains(t, tags, "ceramic")
}

func TestGenerateJSONWithExplainAndShare(t *testing.T) {
	out, err := runTagctl(t, "", "generate", "-c", "home_decor", "-n", "5", "-f", "json", "--explain",
		"--share-base", "https://tags.example.com/", mugDescription)
	require.NoError(t, err)

	var payload struct {
		Tags        []string `json:"tags"`
		Score       int      `json:"relevanceScore"`
		Share       string   `json:"share"`
		Explanation []struct {
			Tag    string  `json:"tag"`
			Weight float64 `json:"weight"`
			Source string  `json:"source"`
		} `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Len(t, payload.Tags, 5)
	assert.Equal(t, 99, payload.Score)
	require.Len(t, payload.Explanation, 5)
	assert.Equal(t, payload.Tags[0], payload.Explanation[0].Tag)
	assert.Equal(t, "category", payload.Explanation[0].Source)
	assert.True(t, strings.HasPrefix(payload.Share, "https://tags.example.com/?"), payload.Share)
	assert.Contains(t, payload.Share, "maxTags=5")
}

func TestGenerateReadsStdin(t *testing.T) {
	out, err := runTagctl(t, "Sterling silver ring with moonstone\n", "generate", "--format", "csv", "--max-words", "1")
	require.NoError(t, err)
	fields := strings.Split(strings.TrimSpace(out), ",")
	assert.Contains(t, fields, "silver")
	for _, f := range fields {
		assert.NotContains(t, f, " ")
	}
}

func TestGenerateTextFormat(t *testing.T) {
	out, err := runTagctl(t, "", "generate", "-n", "3", "--explain", "--score-policy", "composite", mugDescription)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "  1. "), lines[0])
	assert.Contains(t, lines[3], "3 of ")
}

func TestGenerateValidation(t *testing.T) {
	_, err := runTagctl(t, "", "generate", "--max-tags", "0", "mug")
	require.Error(t, err)
	assert.Equal(t, "maxTags must be between 1 and 300", err.Error())

	_, err = runTagctl(t, "   ", "generate")
	require.Error(t, err)
	assert.Equal(t, "Product description is required", err.Error())

	_, err = runTagctl(t, "", "generate", "--format", "xml", "mug")
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestCategoriesCommand(t *testing.T) {
	out, err := runTagctl(t, "", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "home_decor (Home Decor)")
	assert.Contains(t, out, "home decor, handmade decor")
}

func TestVocabularyDumpWithOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("materials: [bamboo]\n"), 0o600))

	out, err := runTagctl(t, "", "vocabulary", "dump", "--vocabulary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "materials:")
	assert.Contains(t, out, "- bamboo")
	assert.NotContains(t, out, "- ceramic")
	assert.Contains(t, out, "boilerplate:")
}

func TestVocabularySeedNeedsDatabase(t *testing.T) {
	_, err := runTagctl(t, "", "vocabulary", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database-url")
}
