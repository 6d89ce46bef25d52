package store

import (
	"database/sql"
	"strings"

	"github.com/gustavor29/Tablon/internal/model"
)

// SuggestionStore is the local product-name memory used for
// autocomplete. It has no dependency on household state and keeps one
// row per distinct normalized product name.
type SuggestionStore struct {
	db *sql.DB
}

func NewSuggestionStore(db *sql.DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

// suggestionLimit caps prefix lookups so typing never floods the UI.
const suggestionLimit = 10

// Normalize trims and lowercases a product name; names are stored and
// queried only in this form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RecordUsage upserts the unit last used for a product name. A name
// that normalizes to empty is ignored.
func (s *SuggestionStore) RecordUsage(name, unit string) error {
	name = Normalize(name)
	if name == "" {
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO suggestions (product_name, last_used_unit) VALUES (?, ?)
		 ON CONFLICT(product_name) DO UPDATE SET last_used_unit = excluded.last_used_unit`,
		name, unit,
	)
	if err != nil {
		return persistence("record suggestion", err)
	}
	return nil
}

// SearchPrefix returns up to ten normalized product names starting with
// the normalized query.
func (s *SuggestionStore) SearchPrefix(query string) ([]string, error) {
	query = Normalize(query)

	rows, err := s.db.Query(
		`SELECT product_name FROM suggestions WHERE product_name LIKE ? || '%' LIMIT ?`,
		query, suggestionLimit,
	)
	if err != nil {
		return nil, persistence("search suggestions", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, persistence("scan suggestion", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LastUnit returns the suggestion row for the exact normalized name,
// or nil when the name has never been seen.
func (s *SuggestionStore) LastUnit(name string) (*model.Suggestion, error) {
	sg := model.Suggestion{ProductName: Normalize(name)}
	err := s.db.QueryRow(
		`SELECT last_used_unit FROM suggestions WHERE product_name = ?`,
		sg.ProductName,
	).Scan(&sg.LastUsedUnit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("get last unit", err)
	}
	return &sg, nil
}
