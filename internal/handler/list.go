package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/list"
	"github.com/gustavor29/Tablon/internal/model"
)

type ListHandler struct {
	svc    *list.Service
	logger *slog.Logger
}

func NewListHandler(svc *list.Service, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, logger: logger}
}

type itemRequest struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// CreateItem appends an item. The write is fire-and-forget: the built
// item is acknowledged with 202 whether or not the store write landed,
// and failures show up only in the log and in later snapshots.
func (h *ListHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	householdID := r.PathValue("id")

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must not be negative"})
		return
	}

	item := h.svc.AddItem(householdID, req.Name, req.Quantity, req.Unit, req.Description)
	writeJSON(w, http.StatusAccepted, item)
}

func (h *ListHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Items(r.PathValue("id"))
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list items"})
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	householdID := r.PathValue("id")

	var item model.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	item.ID = r.PathValue("item_id")
	if item.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item id is required"})
		return
	}

	h.svc.UpdateItem(householdID, item)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// RemoveItem takes the full item in the body: removal matches by value
// across every field, not by id alone.
func (h *ListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	householdID := r.PathValue("id")

	var item model.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.svc.RemoveItem(householdID, item)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

type archiveRequest struct {
	Items []model.Item `json:"items"`
}

// Archive snapshots the caller's observed list. Unlike item mutations,
// failures here are surfaced.
func (h *ListHandler) Archive(w http.ResponseWriter, r *http.Request) {
	householdID := r.PathValue("id")

	var req archiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	archived, err := h.svc.Archive(householdID, req.Items)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "household not found"})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to archive list"})
	case archived == nil:
		// Empty snapshot: nothing archived, by contract not an error
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusCreated, archived)
	}
}

func (h *ListHandler) ListArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.Archives(r.PathValue("id"))
	if err != nil {
		h.logger.Error("list archives", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list archives"})
		return
	}
	if archives == nil {
		archives = []model.ArchivedList{}
	}
	writeJSON(w, http.StatusOK, archives)
}

func (h *ListHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.svc.ArchiveByID(r.PathValue("archive_id"))
	if err != nil {
		h.logger.Error("get archive", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get archive"})
		return
	}
	if archived == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "archive not found"})
		return
	}
	writeJSON(w, http.StatusOK, archived)
}
