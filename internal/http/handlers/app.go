package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"tagsmith/internal/infra"
	"tagsmith/internal/metrics"
	"tagsmith/internal/tagger"
)

const defaultMaxBodyBytes = 64 << 10

// TagGenerator produces tags for one request. *tagger.Generator satisfies it.
type TagGenerator interface {
	Generate(in tagger.Input) (tagger.Result, error)
}

// App carries the dependencies shared by every handler.
type App struct {
	Logger       infra.Logger
	Generator    TagGenerator
	Vocabulary   tagger.Vocabulary
	Metrics      *metrics.Recorder
	MaxBodyBytes int64
	Now          func() time.Time
}

func NewApp(logger infra.Logger, gen TagGenerator, vocab tagger.Vocabulary, rec *metrics.Recorder) *App {
	return &App{
		Logger:       logger,
		Generator:    gen,
		Vocabulary:   vocab,
		Metrics:      rec,
		MaxBodyBytes: defaultMaxBodyBytes,
		Now:          time.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorResponse{Code: code, Message: message})
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
