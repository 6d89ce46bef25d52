package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/auth"
	"github.com/gustavor29/Tablon/internal/household"
)

type HouseholdHandler struct {
	svc    *household.Service
	logger *slog.Logger
}

func NewHouseholdHandler(svc *household.Service, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{svc: svc, logger: logger}
}

func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := h.svc.Create(userID)
	switch {
	case errors.Is(err, apperr.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case err != nil:
		h.logger.Error("create household", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create household"})
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

type joinRequest struct {
	Code string `json:"code"`
}

func (h *HouseholdHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.svc.Join(req.Code, userID)
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invitation code is required"})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "invalid invitation code"})
	case errors.Is(err, apperr.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case err != nil:
		h.logger.Error("join household", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to join household"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	}
}
