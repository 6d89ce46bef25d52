// Package household manages household creation and membership via
// invitation codes.
package household

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/gustavor29/Tablon/internal/apperr"
	"github.com/gustavor29/Tablon/internal/model"
	"github.com/gustavor29/Tablon/internal/store"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 6

// NewInvitationCode returns a fresh 6-character [A-Z0-9] code. Codes are
// not checked for uniqueness among live households; a collision at this
// code space is accepted risk.
func NewInvitationCode() (string, error) {
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("generate invitation code: %w", err)
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b), nil
}

type Service struct {
	households *store.HouseholdStore
	users      *store.UserStore
	logger     *slog.Logger
}

func NewService(hs *store.HouseholdStore, us *store.UserStore, logger *slog.Logger) *Service {
	return &Service{households: hs, users: us, logger: logger}
}

// Create makes a new household owned by ownerID, generates its
// invitation code, and links the owner's user record to it. Store
// failures are returned as-is; nothing is retried here.
func (s *Service) Create(ownerID string) (string, error) {
	if ownerID == "" {
		return "", apperr.ErrAuthRequired
	}

	code, err := NewInvitationCode()
	if err != nil {
		return "", err
	}

	h, err := s.households.Create(model.Household{
		ID:             uuid.NewString(),
		Name:           model.DefaultHouseholdName,
		InvitationCode: code,
		Members:        []string{ownerID},
	})
	if err != nil {
		return "", err
	}

	if err := s.users.SetHousehold(ownerID, h.ID); err != nil {
		return "", err
	}

	s.logger.Info("household created", "household_id", h.ID, "owner", ownerID)
	return h.ID, nil
}

// Join looks up a household by invitation code and adds userID to it.
// The code is trimmed and uppercased before the lookup. When no
// household matches, ErrNotFound is returned and the user's household
// association is left untouched.
func (s *Service) Join(code, userID string) (string, error) {
	if userID == "" {
		return "", apperr.ErrAuthRequired
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("invitation code is blank: %w", apperr.ErrValidation)
	}

	h, err := s.households.GetByCode(code)
	if err != nil {
		return "", err
	}
	if h == nil {
		return "", fmt.Errorf("invitation code %s: %w", code, apperr.ErrNotFound)
	}

	if err := s.households.AddMember(h.ID, userID); err != nil {
		return "", err
	}
	if err := s.users.SetHousehold(userID, h.ID); err != nil {
		return "", err
	}

	s.logger.Info("household joined", "household_id", h.ID, "user", userID)
	return h.ID, nil
}
