package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/feed"
	"github.com/gustavor29/Tablon/internal/model"
)

type ArchiveStore struct {
	db   *sql.DB
	feed *feed.Feed
}

func NewArchiveStore(db *sql.DB, f *feed.Feed) *ArchiveStore {
	return &ArchiveStore{db: db, feed: f}
}

const archiveCols = `id, household_id, archived_at, products`

func scanArchive(scanner interface{ Scan(...any) error }) (*model.ArchivedList, error) {
	var a model.ArchivedList
	var products string
	err := scanner.Scan(&a.ID, &a.HouseholdID, &a.ArchivedAt, &products)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(products), &a.Products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return &a, nil
}

// ArchiveActiveList snapshots items into a new archive record and clears
// the household's active list in one transaction: both effects become
// visible together or neither does. An empty snapshot is a no-op, not an
// error, and returns nil.
//
// The snapshot is caller-supplied, typically the last state the caller
// observed, and is not re-read from the store before committing.
func (s *ArchiveStore) ArchiveActiveList(householdID string, items []model.Item) (*model.ArchivedList, error) {
	if len(items) == 0 {
		return nil, nil
	}

	raw, err := encodeItems(items)
	if err != nil {
		return nil, persistence("archive list", err)
	}

	archived := model.ArchivedList{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		ArchivedAt:  time.Now().UTC(),
		Products:    items,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, persistence("archive list: begin tx", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO archived_lists (id, household_id, archived_at, products) VALUES (?, ?, ?, ?)`,
		archived.ID, archived.HouseholdID, archived.ArchivedAt, raw,
	); err != nil {
		return nil, persistence("archive list: insert", err)
	}

	result, err := tx.Exec(
		`UPDATE households SET active_list = '[]', updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		householdID,
	)
	if err != nil {
		return nil, persistence("archive list: clear active", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, persistence("archive list: clear active", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("archive list: household %s: %w", householdID, apperr.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistence("archive list: commit", err)
	}

	s.feed.Notify(householdID)
	return &archived, nil
}

func (s *ArchiveStore) GetByID(id string) (*model.ArchivedList, error) {
	row := s.db.QueryRow(`SELECT `+archiveCols+` FROM archived_lists WHERE id = ?`, id)
	a, err := scanArchive(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("get archive", err)
	}
	return a, nil
}

func (s *ArchiveStore) ListByHousehold(householdID string) ([]model.ArchivedList, error) {
	rows, err := s.db.Query(
		`SELECT `+archiveCols+` FROM archived_lists WHERE household_id = ? ORDER BY archived_at DESC`,
		householdID,
	)
	if err != nil {
		return nil, persistence("list archives", err)
	}
	defer rows.Close()

	var archives []model.ArchivedList
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, persistence("scan archive", err)
		}
		archives = append(archives, *a)
	}
	return archives, rows.Err()
}
