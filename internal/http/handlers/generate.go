package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tagsmith/internal/domain"
	"tagsmith/internal/export"
	"tagsmith/internal/metrics"
	"tagsmith/internal/middleware"
	"tagsmith/internal/tagger"
)

// GenerateTags serves POST with a JSON body and GET with a share-link
// query. ?format=csv returns the tags as a CSV attachment.
func (a *App) GenerateTags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := a.decodeGenerationRequest(w, r)
	if err != nil {
		a.Metrics.ObserveGeneration(metrics.OutcomeInvalid, time.Since(start), 0, 0)
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		a.Metrics.ObserveGeneration(metrics.OutcomeInvalid, time.Since(start), 0, 0)
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	res, err := a.generate(req.Input())
	if err != nil {
		a.Metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start), 0, 0)
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("tag generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to generate tags")
		return
	}
	a.Metrics.ObserveGeneration(metrics.OutcomeOK, time.Since(start), len(res.Tags), res.TotalAvailableTags)

	if r.URL.Query().Get("format") == "csv" {
		body, err := export.CSV(res.Tags)
		if err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "Failed to generate tags")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="tags.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) decodeGenerationRequest(w http.ResponseWriter, r *http.Request) (domain.GenerationRequest, error) {
	if r.Method == http.MethodGet {
		return export.ParseShare(r.URL.Query())
	}

	limit := a.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	var req domain.GenerationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errors.New("payload too large")
		}
		return req, errors.New("invalid payload")
	}
	return req, nil
}

// generate converts generator errors and panics into ErrGenerationFailed.
func (a *App) generate(in tagger.Input) (res tagger.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrGenerationFailed, p)
		}
	}()
	res, err = a.Generator.Generate(in)
	if err != nil {
		return tagger.Result{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	return res, nil
}
