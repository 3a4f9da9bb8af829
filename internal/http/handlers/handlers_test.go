package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tagsmith/internal/metrics"
	"tagsmith/internal/tagger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mugBody = `{"description":"Handmade ceramic mug with custom name, personalized gift for coffee lovers, birthday present","category":"home_decor","style":"minimalist","maxTags":13,"maxWordsPerTag":3}`

type generationResponse struct {
	Tags               []string `json:"tags"`
	RelevanceScore     int      `json:"relevanceScore"`
	TotalAvailableTags int      `json:"totalAvailableTags"`
	TotalFilteredTags  int      `json:"totalFilteredTags"`
}

type stubGenerator struct {
	err   error
	panic any
}

func (s stubGenerator) Generate(tagger.Input) (tagger.Result, error) {
	if s.panic != nil {
		panic(s.panic)
	}
	return tagger.Result{}, s.err
}

func newTestApp(gen TagGenerator) *App {
	vocab := tagger.DefaultVocabulary()
	if gen == nil {
		gen = tagger.New(vocab, tagger.DefaultOptions())
	}
	return NewApp(zerolog.Nop(), gen, vocab, metrics.New())
}

func postGenerate(app *App, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	app.GenerateTags(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload errorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	return payload.Message
}

func TestGenerateTagsListing(t *testing.T) {
	app := newTestApp(nil)
	rr := postGenerate(app, "/api/generate-tags", mugBody)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res generationResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Len(t, res.Tags, 13)
	assert.Contains(t, res.Tags, "ceramic")
	assert.Contains(t, res.Tags, "birthday gift")
	assert.Equal(t, 99, res.RelevanceScore)
	assert.GreaterOrEqual(t, res.TotalAvailableTags, res.TotalFilteredTags)
	assert.GreaterOrEqual(t, res.TotalFilteredTags, len(res.Tags))
}

func TestGenerateTagsDefaults(t *testing.T) {
	app := newTestApp(nil)
	rr := postGenerate(app, "/api/generate-tags", `{"description":"Rustic oak serving board, handmade kitchen gift for foodies"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res generationResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.LessOrEqual(t, len(res.Tags), 13)
	for _, tag := range res.Tags {
		assert.LessOrEqual(t, tagger.WordCount(tag), 3, tag)
	}
}

func TestGenerateTagsValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing description", body: `{"category":"art"}`, wantMsg: "Product description is required"},
		{name: "blank description", body: `{"description":"   "}`, wantMsg: "Product description is required"},
		{name: "max tags zero", body: `{"description":"mug","maxTags":0}`, wantMsg: "maxTags must be between 1 and 300"},
		{name: "max tags too big", body: `{"description":"mug","maxTags":301}`, wantMsg: "maxTags must be between 1 and 300"},
		{name: "max words too big", body: `{"description":"mug","maxWordsPerTag":6}`, wantMsg: "maxWordsPerTag must be between 1 and 5"},
		{name: "malformed json", body: `{"description":`, wantMsg: "invalid payload"},
		{name: "wrong type", body: `{"description":"mug","category":7}`, wantMsg: "invalid payload"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postGenerate(newTestApp(nil), "/api/generate-tags", tc.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tc.wantMsg, decodeMessage(t, rr))
		})
	}
}

func TestGenerateTagsBodyTooLarge(t *testing.T) {
	app := newTestApp(nil)
	app.MaxBodyBytes = 32
	rr := postGenerate(app, "/api/generate-tags", mugBody)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "payload too large", decodeMessage(t, rr))
}

func TestGenerateTagsInternalFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  stubGenerator
	}{
		{name: "error", gen: stubGenerator{err: errors.New("boom")}},
		{name: "panic", gen: stubGenerator{panic: "index out of range"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postGenerate(newTestApp(tc.gen), "/api/generate-tags", mugBody)
			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "Failed to generate tags", decodeMessage(t, rr))
		})
	}
}

func TestGenerateTagsCSV(t *testing.T) {
	app := newTestApp(nil)
	rr := postGenerate(app, "/api/generate-tags?format=csv", mugBody)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="tags.csv"`, rr.Header().Get("Content-Disposition"))

	fields := strings.Split(rr.Body.String(), ",")
	assert.Len(t, fields, 13)
	assert.Contains(t, fields, "ceramic")
}

func TestGenerateTagsFromShareLink(t *testing.T) {
	app := newTestApp(nil)

	post := postGenerate(app, "/api/generate-tags", mugBody)
	require.Equal(t, http.StatusOK, post.Code)
	var want generationResponse
	require.NoError(t, json.NewDecoder(post.Body).Decode(&want))

	target := "/api/generate-tags?description=Handmade+ceramic+mug+with+custom+name%2C+personalized+gift+for+coffee+lovers%2C+birthday+present&category=home_decor&style=minimalist&maxTags=13&maxWordsPerTag=3"
	rr := httptest.NewRecorder()
	app.GenerateTags(rr, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got generationResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestGenerateTagsShareLinkBadLimit(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestApp(nil).GenerateTags(rr, httptest.NewRequest(http.MethodGet, "/api/generate-tags?description=mug&maxTags=many", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "maxTags must be a number", decodeMessage(t, rr))
}

func TestCategories(t *testing.T) {
	app := newTestApp(nil)
	rr := httptest.NewRecorder()
	app.Categories(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Categories []categoryDTO `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	require.NotEmpty(t, payload.Categories)

	var homeDecor *categoryDTO
	for i := range payload.Categories {
		if payload.Categories[i].Value == "home_decor" {
			homeDecor = &payload.Categories[i]
		}
	}
	require.NotNil(t, homeDecor)
	assert.Equal(t, "Home Decor", homeDecor.Label)
	assert.Contains(t, homeDecor.Tags, "home decor")
}

func TestHealth(t *testing.T) {
	app := newTestApp(nil)
	app.Now = func() time.Time { return time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("WIB", 7*3600)) }

	rr := httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "2024-03-03T22:06:07Z", payload["timestamp"])
}
