// Package list implements shopping-list operations on top of the
// stores, plus the live view that UI clients consume.
package list

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gustavor29/Tablon/internal/model"
	"github.com/gustavor29/Tablon/internal/store"
)

type Service struct {
	lists       *store.ListStore
	archives    *store.ArchiveStore
	suggestions *store.SuggestionStore
	logger      *slog.Logger
}

func NewService(ls *store.ListStore, as *store.ArchiveStore, ss *store.SuggestionStore, logger *slog.Logger) *Service {
	return &Service{lists: ls, archives: as, suggestions: ss, logger: logger}
}

// AddItem builds a new item with a fresh id and appends it to the
// household's list, then records the name/unit pair for autocomplete.
// Item mutations are fire-and-forget: a store failure is logged and
// swallowed, the caller's view is not rolled back, and nothing is
// retried. The built item is returned either way.
func (s *Service) AddItem(householdID, name string, quantity float64, unit, description string) model.Item {
	if unit == "" {
		unit = model.DefaultUnit
	}
	item := model.Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Quantity:    quantity,
		Unit:        unit,
		Description: strings.TrimSpace(description),
	}

	if err := s.lists.AddItem(householdID, item); err != nil {
		s.logger.Error("add item", "household_id", householdID, "item_id", item.ID, "error", err)
	}
	if err := s.suggestions.RecordUsage(name, unit); err != nil {
		s.logger.Error("record suggestion", "name", name, "error", err)
	}
	return item
}

// UpdateItem replaces the matching list entry wholesale. Failures are
// logged, not surfaced.
func (s *Service) UpdateItem(householdID string, item model.Item) {
	if err := s.lists.UpdateItem(householdID, item); err != nil {
		s.logger.Error("update item", "household_id", householdID, "item_id", item.ID, "error", err)
	}
}

// RemoveItem removes the entry by value equality. Failures are logged,
// not surfaced.
func (s *Service) RemoveItem(householdID string, item model.Item) {
	if err := s.lists.RemoveItem(householdID, item); err != nil {
		s.logger.Error("remove item", "household_id", householdID, "item_id", item.ID, "error", err)
	}
}

// Archive snapshots items into the household's archive and clears the
// active list atomically. Unlike item mutations, archive failures are
// surfaced to the caller.
func (s *Service) Archive(householdID string, items []model.Item) (*model.ArchivedList, error) {
	archived, err := s.archives.ArchiveActiveList(householdID, items)
	if err != nil {
		s.logger.Error("archive list", "household_id", householdID, "error", err)
		return nil, err
	}
	if archived != nil {
		s.logger.Info("list archived", "household_id", householdID, "archive_id", archived.ID, "items", len(archived.Products))
	}
	return archived, nil
}

func (s *Service) Items(householdID string) ([]model.Item, error) {
	return s.lists.ActiveList(householdID)
}

func (s *Service) Subscribe(ctx context.Context, householdID string) *store.Subscription {
	return s.lists.Subscribe(ctx, householdID)
}

func (s *Service) Archives(householdID string) ([]model.ArchivedList, error) {
	return s.archives.ListByHousehold(householdID)
}

func (s *Service) ArchiveByID(id string) (*model.ArchivedList, error) {
	return s.archives.GetByID(id)
}

func (s *Service) SearchSuggestions(query string) ([]string, error) {
	return s.suggestions.SearchPrefix(query)
}

func (s *Service) LastUnit(name string) (*model.Suggestion, error) {
	return s.suggestions.LastUnit(name)
}
