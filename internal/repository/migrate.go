package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"passvault/internal/cryptox"
	"passvault/internal/models"
)

// legacyAccount matches the superseded persistence format: a plaintext JSON
// document where only the password field of each record was encrypted
// (base64 of an individual cipher token). That format leaked record counts,
// platforms and categories at rest, which is why it was replaced by the
// whole-collection blob. It is accepted here strictly as a migration input.
type legacyAccount struct {
	Platform        string `json:"platform"`
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
	Category        string `json:"category"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type legacyFile struct {
	Accounts []legacyAccount `json:"accounts"`
}

// ImportLegacy converts a legacy per-field-encrypted document into current
// records, appends them to the collection and persists it once. The same
// session key is used to decrypt the individual password tokens. Returns
// the number of imported records.
func (r *AccountRepository) ImportLegacy(ctx context.Context, data []byte) (int, error) {
	key, err := r.keys.Key()
	if err != nil {
		return 0, err
	}

	var f legacyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("decode legacy data: %w", err)
	}

	imported := make([]*models.Account, 0, len(f.Accounts))
	for _, la := range f.Accounts {
		token, err := base64.StdEncoding.DecodeString(la.Password)
		if err != nil {
			return 0, fmt.Errorf("decode legacy password for %q: %w", la.Platform, err)
		}
		secret, err := cryptox.Decrypt(token, key)
		if err != nil {
			return 0, fmt.Errorf("decrypt legacy password for %q: %w", la.Platform, err)
		}

		account, err := models.NewAccount(la.Platform, la.EmailOrUsername, string(secret), la.Category, la.Notes, timeNow())
		if err != nil {
			return 0, err
		}
		// Preserve original timestamps when the legacy record carries them.
		if ts, err := time.Parse(time.RFC3339, la.CreatedAt); err == nil {
			account.CreatedAt = ts
		}
		if ts, err := time.Parse(time.RFC3339, la.UpdatedAt); err == nil {
			account.UpdatedAt = ts
		}
		imported = append(imported, account)
	}

	prevLen := len(r.accounts)
	r.accounts = append(r.accounts, imported...)
	if err := r.save(); err != nil {
		r.accounts = r.accounts[:prevLen]
		return 0, err
	}

	r.log.Info(ctx, "legacy data imported", "accounts", len(imported))
	return len(imported), nil
}
