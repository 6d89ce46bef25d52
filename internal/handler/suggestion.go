package handler

import (
	"log/slog"
	"net/http"

	"github.com/gustavor29/Tablon/internal/store"
)

type SuggestionHandler struct {
	suggestions *store.SuggestionStore
	logger      *slog.Logger
}

func NewSuggestionHandler(ss *store.SuggestionStore, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestions: ss, logger: logger}
}

func (h *SuggestionHandler) Search(w http.ResponseWriter, r *http.Request) {
	names, err := h.suggestions.SearchPrefix(r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("search suggestions", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to search suggestions"})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": names})
}

func (h *SuggestionHandler) LastUnit(w http.ResponseWriter, r *http.Request) {
	sg, err := h.suggestions.LastUnit(r.URL.Query().Get("name"))
	if err != nil {
		h.logger.Error("get last unit", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get last unit"})
		return
	}
	if sg == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no unit recorded for this product"})
		return
	}
	writeJSON(w, http.StatusOK, sg)
}
