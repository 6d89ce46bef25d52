package model

import "time"

// DefaultHouseholdName is used when a household is created without an
// explicit display name.
const DefaultHouseholdName = "My Home"

type Household struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InvitationCode string    `json:"invitation_code"`
	Members        []string  `json:"members"`
	ActiveList     []Item    `json:"active_list"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasMember reports whether userID is already in the member list.
func (h *Household) HasMember(userID string) bool {
	for _, m := range h.Members {
		if m == userID {
			return true
		}
	}
	return false
}
