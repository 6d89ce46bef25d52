package store

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/gustavor29/Tablon/internal/database"
	"github.com/gustavor29/Tablon/internal/model"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// newHousehold persists a household with one owner and returns it.
func newHousehold(t *testing.T, hs *HouseholdStore, ownerID string) *model.Household {
	t.Helper()
	h, err := hs.Create(model.Household{
		ID:             uuid.NewString(),
		Name:           model.DefaultHouseholdName,
		InvitationCode: "AB12CD",
		Members:        []string{ownerID},
	})
	if err != nil {
		t.Fatalf("create household: %v", err)
	}
	return h
}

func item(id, name string, qty float64, unit string) model.Item {
	return model.Item{ID: id, Name: name, Quantity: qty, Unit: unit}
}
