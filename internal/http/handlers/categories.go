package handlers

import (
	"net/http"

	"tagsmith/internal/tagger"
)

type categoryDTO struct {
	Value string   `json:"value"`
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
}

// Categories lists the known categories for the category picker.
func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	names := a.Vocabulary.CategoryNames()
	items := make([]categoryDTO, 0, len(names))
	for _, name := range names {
		items = append(items, categoryDTO{
			Value: name,
			Label: tagger.CategoryLabel(name),
			Tags:  a.Vocabulary.Templates(name),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"categories": items})
}
