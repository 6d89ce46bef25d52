package model

import "time"

// User mirrors the identity provider's stable user id. A user belongs
// to at most one household at a time; re-linking overwrites the
// previous association.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	HouseholdID string    `json:"household_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
