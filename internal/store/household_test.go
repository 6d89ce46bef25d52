package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gustavor29/Tablon/internal/model"
)

func setupHouseholdStore(t *testing.T) *HouseholdStore {
	t.Helper()
	return NewHouseholdStore(setupTestDB(t))
}

func TestHouseholdCreateAndGet(t *testing.T) {
	hs := setupHouseholdStore(t)

	h := newHousehold(t, hs, "owner-1")

	if h.Name != model.DefaultHouseholdName {
		t.Errorf("name = %q, want %q", h.Name, model.DefaultHouseholdName)
	}
	if h.InvitationCode != "AB12CD" {
		t.Errorf("invitation code = %q, want %q", h.InvitationCode, "AB12CD")
	}
	if len(h.Members) != 1 || h.Members[0] != "owner-1" {
		t.Errorf("members = %v, want [owner-1]", h.Members)
	}
	if len(h.ActiveList) != 0 {
		t.Errorf("expected empty active list, got %d items", len(h.ActiveList))
	}

	got, err := hs.GetByID(h.ID)
	if err != nil {
		t.Fatalf("get household: %v", err)
	}
	if got == nil || got.ID != h.ID {
		t.Fatalf("get household returned %v, want id %s", got, h.ID)
	}
}

func TestHouseholdGetByIDNotFound(t *testing.T) {
	hs := setupHouseholdStore(t)

	got, err := hs.GetByID("missing")
	if err != nil {
		t.Fatalf("get household: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent household")
	}
}

func TestHouseholdGetByCode(t *testing.T) {
	hs := setupHouseholdStore(t)

	h := newHousehold(t, hs, "owner-1")

	got, err := hs.GetByCode("AB12CD")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got == nil || got.ID != h.ID {
		t.Fatalf("get by code returned %v, want id %s", got, h.ID)
	}

	// Case-sensitive lookup
	got, err = hs.GetByCode("ab12cd")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got != nil {
		t.Error("expected nil for lowercased code")
	}

	got, err = hs.GetByCode("ZZZZZZ")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown code")
	}
}

func TestHouseholdGetByCodeDuplicatesReturnOne(t *testing.T) {
	hs := setupHouseholdStore(t)

	// Two households sharing a code: an arbitrary one is returned, not
	// an error.
	newHousehold(t, hs, "owner-1")
	newHousehold(t, hs, "owner-2")

	got, err := hs.GetByCode("AB12CD")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got == nil {
		t.Fatal("expected a household for the shared code")
	}
}

func TestAddMember(t *testing.T) {
	hs := setupHouseholdStore(t)

	h := newHousehold(t, hs, "owner-1")

	if err := hs.AddMember(h.ID, "friend-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	got, _ := hs.GetByID(h.ID)
	if len(got.Members) != 2 {
		t.Fatalf("expected 2 members, got %v", got.Members)
	}
	if !got.HasMember("friend-1") {
		t.Error("friend-1 should be a member")
	}
}

func TestAddMemberIdempotent(t *testing.T) {
	hs := setupHouseholdStore(t)

	h := newHousehold(t, hs, "owner-1")

	if err := hs.AddMember(h.ID, "owner-1"); err != nil {
		t.Fatalf("re-add member: %v", err)
	}

	got, _ := hs.GetByID(h.ID)
	if len(got.Members) != 1 {
		t.Fatalf("re-adding a member must not grow the set, got %v", got.Members)
	}
}

func TestAddMemberHouseholdNotFound(t *testing.T) {
	hs := setupHouseholdStore(t)

	err := hs.AddMember(uuid.NewString(), "user-1")
	if err == nil {
		t.Fatal("expected error for missing household")
	}
}
