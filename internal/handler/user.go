package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gustavor29/Tablon/internal/auth"
	"github.com/gustavor29/Tablon/internal/store"
)

type UserHandler struct {
	users  *store.UserStore
	logger *slog.Logger
}

func NewUserHandler(us *store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: us, logger: logger}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("get user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get user"})
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not registered"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type registerRequest struct {
	Email string `json:"email"`
}

// Register records the authenticated identity as a user document. The
// identity provider owns credentials; this only mirrors the stable id.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	existing, err := h.users.Get(userID)
	if err != nil {
		h.logger.Error("get user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register user"})
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	u, err := h.users.Create(userID, req.Email)
	if err != nil {
		h.logger.Error("create user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register user"})
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
