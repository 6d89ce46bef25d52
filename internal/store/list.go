package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/feed"
	"github.com/gustavor29/Tablon/internal/model"
)

// ListStore owns the active-list field of a household document. All
// mutations read the whole array, modify it in memory, and write the
// whole array back. Two clients racing on the same household can lose
// one write (last writer wins on the full list); that trade-off is part
// of the contract, so no per-item locking is applied here.
type ListStore struct {
	db   *sql.DB
	feed *feed.Feed
}

func NewListStore(db *sql.DB, f *feed.Feed) *ListStore {
	return &ListStore{db: db, feed: f}
}

func decodeItems(raw string) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode active list: %w", err)
	}
	return items, nil
}

func encodeItems(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode active list: %w", err)
	}
	return string(data), nil
}

// ActiveList returns the household's current list. A household document
// that does not exist yet reads as an empty list, not an error.
func (s *ListStore) ActiveList(householdID string) ([]model.Item, error) {
	var raw string
	err := s.db.QueryRow(`SELECT active_list FROM households WHERE id = ?`, householdID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistence("read active list", err)
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, persistence("read active list", err)
	}
	return items, nil
}

// writeList replaces the household's active-list field and notifies
// subscribers. Writing to a missing household is an error, mirroring a
// field update against a document that does not exist.
func (s *ListStore) writeList(householdID string, items []model.Item) error {
	raw, err := encodeItems(items)
	if err != nil {
		return persistence("write active list", err)
	}

	result, err := s.db.Exec(
		`UPDATE households SET active_list = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		raw, householdID,
	)
	if err != nil {
		return persistence("write active list", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return persistence("write active list", err)
	}
	if n == 0 {
		return fmt.Errorf("write active list: household %s: %w", householdID, apperr.ErrNotFound)
	}

	s.feed.Notify(householdID)
	return nil
}

// AddItem appends item to the active list. Duplicate-by-value entries
// are kept as separate entries; the store does not deduplicate.
func (s *ListStore) AddItem(householdID string, item model.Item) error {
	items, err := s.ActiveList(householdID)
	if err != nil {
		return err
	}
	return s.writeList(householdID, append(items, item))
}

// UpdateItem replaces the list entry whose id matches. When no entry
// matches, the list is written back unchanged.
func (s *ListStore) UpdateItem(householdID string, updated model.Item) error {
	items, err := s.ActiveList(householdID)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == updated.ID {
			items[i] = updated
		}
	}
	return s.writeList(householdID, items)
}

// RemoveItem removes every entry equal to item across all fields. When
// nothing matches (the entry was already edited or removed), the
// operation is a no-op.
func (s *ListStore) RemoveItem(householdID string, item model.Item) error {
	items, err := s.ActiveList(householdID)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it != item {
			kept = append(kept, it)
		}
	}
	return s.writeList(householdID, kept)
}

// Subscription is a live view of one household's active list. Snapshots
// arrive in commit order; rapid changes may coalesce, but the last
// snapshot always reflects the latest committed state. The snapshot
// channel closes when the subscription ends — check Err afterwards to
// distinguish failure from cancellation.
type Subscription struct {
	snapshots chan []model.Item
	cancel    context.CancelFunc
	done      chan struct{}
	err       error
}

// Snapshots returns the snapshot channel.
func (sub *Subscription) Snapshots() <-chan []model.Item {
	return sub.snapshots
}

// Err reports why the subscription terminated. Valid once Snapshots is
// closed; nil means a clean cancellation.
func (sub *Subscription) Err() error {
	<-sub.done
	return sub.err
}

// Close cancels the subscription and waits until its listener slot has
// been released.
func (sub *Subscription) Close() {
	sub.cancel()
	<-sub.done
}

func (sub *Subscription) deliver(ctx context.Context, items []model.Item) bool {
	select {
	case sub.snapshots <- items:
		return true
	case <-ctx.Done():
		return false
	}
}

// Subscribe registers a listener for the household and returns a live
// subscription. The current list is delivered immediately; each
// subsequent committed change triggers a fresh snapshot. The listener
// slot is released on every exit path: consumer Close, context
// cancellation, or a read failure (which terminates the subscription
// with that error — there is no automatic resubscribe).
func (s *ListStore) Subscribe(ctx context.Context, householdID string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		snapshots: make(chan []model.Item, 1),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	slot := s.feed.Register(householdID)

	go func() {
		defer close(sub.done)
		defer close(sub.snapshots)
		defer s.feed.Unregister(householdID, slot)

		items, err := s.ActiveList(householdID)
		if err != nil {
			sub.err = err
			return
		}
		if !sub.deliver(ctx, items) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-slot.C():
				items, err := s.ActiveList(householdID)
				if err != nil {
					sub.err = err
					return
				}
				if !sub.deliver(ctx, items) {
					return
				}
			}
		}
	}()

	return sub
}
