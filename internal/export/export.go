// Package export renders generated tags for copying, CSV download and
// shareable links.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tagsmith/internal/domain"
)

// CopyAll joins tags the way they are pasted into a listing form.
func CopyAll(tags []string) string {
	return strings.Join(tags, ", ")
}

// CSV renders tags as a single CSV record without a trailing newline.
func CSV(tags []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(tags); err != nil {
		return "", fmt.Errorf("export: write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: flush csv: %w", err)
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}

// ShareQuery encodes the request that produced a result so the same tags
// can be regenerated from a link.
func ShareQuery(req domain.GenerationRequest) url.Values {
	maxTags, maxWords := req.Limits()
	q := url.Values{}
	q.Set("description", req.Description)
	q.Set("category", req.Category)
	q.Set("style", req.Style)
	q.Set("maxTags", strconv.Itoa(maxTags))
	q.Set("maxWordsPerTag", strconv.Itoa(maxWords))
	return q
}

// ShareURL appends the share query to base, replacing any query base had.
func ShareURL(base string, req domain.GenerationRequest) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("export: parse base url: %w", err)
	}
	u.RawQuery = ShareQuery(req).Encode()
	return u.String(), nil
}

// ParseShare decodes a share query. Missing limits stay nil so the request
// defaults apply; non-numeric limits are rejected.
func ParseShare(q url.Values) (domain.GenerationRequest, error) {
	req := domain.GenerationRequest{
		Description: q.Get("description"),
		Category:    q.Get("category"),
		Style:       q.Get("style"),
	}
	var err error
	if req.MaxTags, err = optionalInt(q, "maxTags"); err != nil {
		return domain.GenerationRequest{}, err
	}
	if req.MaxWordsPerTag, err = optionalInt(q, "maxWordsPerTag"); err != nil {
		return domain.GenerationRequest{}, err
	}
	return req, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &domain.ValidationError{Field: key, Message: key + " must be a number"}
	}
	return &v, nil
}
