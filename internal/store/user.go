package store

import (
	"database/sql"

	"github.com/gustavor29/Tablon/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userCols = `id, email, household_id, created_at, updated_at`

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var householdID sql.NullString
	err := scanner.Scan(&u.ID, &u.Email, &householdID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if householdID.Valid {
		u.HouseholdID = householdID.String
	}
	return &u, nil
}

func (s *UserStore) Create(id, email string) (*model.User, error) {
	_, err := s.db.Exec(
		`INSERT INTO users (id, email) VALUES (?, ?)`,
		id, email,
	)
	if err != nil {
		return nil, persistence("insert user", err)
	}
	return s.Get(id)
}

func (s *UserStore) Get(id string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("get user", err)
	}
	return u, nil
}

// SetHousehold links a user to a household, creating the user row when
// it does not exist yet. Merge semantics: only the association changes,
// any existing email is kept. Last association wins — a user belongs to
// at most one household.
func (s *UserStore) SetHousehold(userID, householdID string) error {
	_, err := s.db.Exec(
		`INSERT INTO users (id, household_id) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET household_id = excluded.household_id, updated_at = CURRENT_TIMESTAMP`,
		userID, householdID,
	)
	if err != nil {
		return persistence("set user household", err)
	}
	return nil
}
