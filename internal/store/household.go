package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/model"
)

type HouseholdStore struct {
	db *sql.DB
}

func NewHouseholdStore(db *sql.DB) *HouseholdStore {
	return &HouseholdStore{db: db}
}

const householdCols = `id, name, invitation_code, members, active_list, created_at, updated_at`

func scanHousehold(scanner interface{ Scan(...any) error }) (*model.Household, error) {
	var h model.Household
	var members, activeList string
	err := scanner.Scan(&h.ID, &h.Name, &h.InvitationCode, &members, &activeList, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(members), &h.Members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	if err := json.Unmarshal([]byte(activeList), &h.ActiveList); err != nil {
		return nil, fmt.Errorf("decode active list: %w", err)
	}
	return &h, nil
}

func encodeMembers(members []string) (string, error) {
	if members == nil {
		members = []string{}
	}
	data, err := json.Marshal(members)
	if err != nil {
		return "", fmt.Errorf("encode members: %w", err)
	}
	return string(data), nil
}

func (s *HouseholdStore) Create(h model.Household) (*model.Household, error) {
	members, err := encodeMembers(h.Members)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(
		`INSERT INTO households (id, name, invitation_code, members) VALUES (?, ?, ?, ?)`,
		h.ID, h.Name, h.InvitationCode, members,
	)
	if err != nil {
		return nil, persistence("insert household", err)
	}
	return s.GetByID(h.ID)
}

func (s *HouseholdStore) GetByID(id string) (*model.Household, error) {
	row := s.db.QueryRow(`SELECT `+householdCols+` FROM households WHERE id = ?`, id)
	h, err := scanHousehold(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("get household", err)
	}
	return h, nil
}

// GetByCode looks up a household by invitation code. Exactly one lookup
// with LIMIT 1 semantics: if several households share a code, an
// arbitrary one is returned. Returns nil when no household matches.
func (s *HouseholdStore) GetByCode(code string) (*model.Household, error) {
	row := s.db.QueryRow(`SELECT `+householdCols+` FROM households WHERE invitation_code = ? LIMIT 1`, code)
	h, err := scanHousehold(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("get household by code", err)
	}
	return h, nil
}

// AddMember adds userID to the household's member array. Idempotent:
// re-adding an existing member leaves the array unchanged.
func (s *HouseholdStore) AddMember(householdID, userID string) error {
	h, err := s.GetByID(householdID)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("add member: household %s: %w", householdID, apperr.ErrNotFound)
	}
	if h.HasMember(userID) {
		return nil
	}

	members, err := encodeMembers(append(h.Members, userID))
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`UPDATE households SET members = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		members, householdID,
	)
	if err != nil {
		return persistence("add member", err)
	}
	return nil
}
