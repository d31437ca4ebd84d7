package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"passvault/internal/common"
)

// Account is one credential record. The secret is held in clear in memory;
// confidentiality at rest comes from whole-collection encryption, never
// from per-field encryption.
//
// Platform is the lookup key for repository operations but is not unique:
// several accounts may share a platform (multiple logins per service), so
// each record also carries a generated ID.
type Account struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	Identifier string    `json:"identifier"`
	Secret     string    `json:"secret"`
	Category   string    `json:"category"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewAccount validates required fields and stamps both timestamps with now.
// Platform, identifier and secret must be non-empty.
func NewAccount(platform, identifier, secret, category, notes string, now time.Time) (*Account, error) {
	if strings.TrimSpace(platform) == "" {
		return nil, fmt.Errorf("%w: platform is required", common.ErrValidation)
	}
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("%w: identifier is required", common.ErrValidation)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: secret is required", common.ErrValidation)
	}

	return &Account{
		ID:         uuid.NewString(),
		Platform:   platform,
		Identifier: identifier,
		Secret:     secret,
		Category:   category,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// AccountUpdate carries the mutable fields of an Account. Nil pointers
// leave the corresponding field unchanged; Platform, ID and CreatedAt are
// immutable through updates.
type AccountUpdate struct {
	Identifier *string
	Secret     *string
	Category   *string
	Notes      *string
}

// Apply copies the set fields onto the account and bumps UpdatedAt.
func (u AccountUpdate) Apply(a *Account, now time.Time) {
	if u.Identifier != nil {
		a.Identifier = *u.Identifier
	}
	if u.Secret != nil {
		a.Secret = *u.Secret
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	a.UpdatedAt = now
}
