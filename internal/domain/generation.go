package domain

import (
	"strings"

	"tagsmith/internal/tagger"
)

const (
	DefaultMaxTags        = 13
	MinMaxTags            = 1
	MaxMaxTags            = 300
	DefaultMaxWordsPerTag = 3
	MinMaxWordsPerTag     = 1
	MaxMaxWordsPerTag     = 5
)

// GenerationRequest is the body accepted by the generate endpoint.
// Absent limits take their defaults; present values outside the allowed
// range are rejected rather than clamped.
type GenerationRequest struct {
	Description    string `json:"description"`
	Category       string `json:"category,omitempty"`
	Style          string `json:"style,omitempty"`
	MaxTags        *int   `json:"maxTags,omitempty"`
	MaxWordsPerTag *int   `json:"maxWordsPerTag,omitempty"`
}

// Normalize trims the free-text fields in place.
func (r *GenerationRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Style = strings.TrimSpace(r.Style)
}

// Validate reports the first failing rule as a *ValidationError.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return &ValidationError{Field: "description", Message: "Product description is required"}
	}
	if r.MaxTags != nil && (*r.MaxTags < MinMaxTags || *r.MaxTags > MaxMaxTags) {
		return &ValidationError{Field: "maxTags", Message: "maxTags must be between 1 and 300"}
	}
	if r.MaxWordsPerTag != nil && (*r.MaxWordsPerTag < MinMaxWordsPerTag || *r.MaxWordsPerTag > MaxMaxWordsPerTag) {
		return &ValidationError{Field: "maxWordsPerTag", Message: "maxWordsPerTag must be between 1 and 5"}
	}
	return nil
}

func (r GenerationRequest) Limits() (maxTags, maxWords int) {
	maxTags, maxWords = DefaultMaxTags, DefaultMaxWordsPerTag
	if r.MaxTags != nil {
		maxTags = *r.MaxTags
	}
	if r.MaxWordsPerTag != nil {
		maxWords = *r.MaxWordsPerTag
	}
	return maxTags, maxWords
}

// Input converts a validated request into generator input.
func (r GenerationRequest) Input() tagger.Input {
	maxTags, maxWords := r.Limits()
	return tagger.Input{
		Description:    r.Description,
		Category:       r.Category,
		Style:          r.Style,
		MaxTags:        maxTags,
		MaxWordsPerTag: maxWords,
	}
}
