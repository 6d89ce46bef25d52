package model

import "time"

// ArchivedList is an immutable snapshot of a completed active list.
// Records are write-once: the store exposes no update or delete path.
type ArchivedList struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	ArchivedAt  time.Time `json:"archived_at"`
	Products    []Item    `json:"products"`
}
