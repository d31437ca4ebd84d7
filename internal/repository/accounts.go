// Package repository implements the in-memory credential collection backed
// by an encrypted, atomically persisted snapshot.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"passvault/internal/common"
	"passvault/internal/cryptox"
	"passvault/internal/logging"
	"passvault/internal/models"
	"passvault/internal/store"
)

// BlobName is the store entry holding the encrypted collection.
const BlobName = "accounts.enc"

// blobVersion tags the plaintext envelope so later formats can migrate.
const blobVersion = 1

var timeNow = time.Now

// blob is the plaintext envelope of the persisted collection. It is
// serialized to JSON and encrypted as one token, so record count, platform
// names and categories are hidden at rest.
type blob struct {
	Version  int               `json:"version"`
	Accounts []*models.Account `json:"accounts"`
}

// KeySource yields the active symmetric key and fails once the owning
// session has expired. *session.Session satisfies it.
type KeySource interface {
	Key() ([]byte, error)
}

// Summary aggregates collection counts for presentation.
type Summary struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

// AccountRepository owns the decrypted credential collection of one
// authenticated session. Every mutation re-encrypts and atomically saves
// the whole collection before returning; a failed save rolls the in-memory
// state back, so callers never observe a mutation that did not persist.
//
// Not safe for concurrent use: the vault has a single active session and
// the core performs no internal parallelism.
type AccountRepository struct {
	store    store.Store
	keys     KeySource
	log      logging.Logger
	accounts []*models.Account
}

// New loads and decrypts the collection under the session key. A vault that
// has never saved a collection starts empty.
func New(ctx context.Context, st store.Store, keys KeySource, log logging.Logger) (*AccountRepository, error) {
	r := &AccountRepository{store: st, keys: keys, log: log.With("component", "accounts")}
	if err := r.load(); err != nil {
		return nil, err
	}
	r.log.Info(ctx, "collection loaded", "accounts", len(r.accounts))
	return r, nil
}

func (r *AccountRepository) load() error {
	token, err := r.store.Load(BlobName)
	if errors.Is(err, store.ErrAbsent) {
		r.accounts = nil
		return nil
	}
	if err != nil {
		return err
	}

	key, err := r.keys.Key()
	if err != nil {
		return err
	}
	plaintext, err := cryptox.Decrypt(token, key)
	if err != nil {
		return err
	}

	var b blob
	if err := json.Unmarshal(plaintext, &b); err != nil {
		return fmt.Errorf("decode collection: %w", err)
	}
	r.accounts = b.Accounts
	return nil
}

// save re-encrypts and atomically persists the whole collection. There is
// no incremental persistence by design.
func (r *AccountRepository) save() error {
	key, err := r.keys.Key()
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(blob{Version: blobVersion, Accounts: r.accounts})
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	token, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("encrypt collection: %w", err)
	}
	return r.store.Save(BlobName, token)
}

// Create appends a new account and persists the collection. Fails with
// common.ErrValidation when platform, identifier or secret is empty.
// Duplicate platforms are accepted: multiple logins per service are a
// feature, and platform-keyed operations act on the first match.
func (r *AccountRepository) Create(ctx context.Context, platform, identifier, secret, category, notes string) (*models.Account, error) {
	account, err := models.NewAccount(platform, identifier, secret, category, notes, timeNow())
	if err != nil {
		return nil, err
	}

	r.accounts = append(r.accounts, account)
	if err := r.save(); err != nil {
		r.accounts = r.accounts[:len(r.accounts)-1]
		r.log.Error(ctx, "create did not persist", "platform", platform, "error", err)
		return nil, err
	}

	r.log.Info(ctx, "account created", "platform", platform)
	return account.Clone(), nil
}

func (r *AccountRepository) findIndex(platform string) int {
	for i, a := range r.accounts {
		if strings.EqualFold(a.Platform, platform) {
			return i
		}
	}
	return -1
}

// FindByPlatform returns the first account whose platform matches
// case-insensitively, or common.ErrNotFound.
func (r *AccountRepository) FindByPlatform(ctx context.Context, platform string) (*models.Account, error) {
	i := r.findIndex(platform)
	if i < 0 {
		return nil, fmt.Errorf("%w: platform %q", common.ErrNotFound, platform)
	}
	return r.accounts[i].Clone(), nil
}

// Update mutates the first account matching platform and persists the
// collection. Only identifier, secret, category and notes are mutable;
// UpdatedAt is bumped. Fails with common.ErrNotFound when nothing matches.
func (r *AccountRepository) Update(ctx context.Context, platform string, upd models.AccountUpdate) (*models.Account, error) {
	i := r.findIndex(platform)
	if i < 0 {
		return nil, fmt.Errorf("%w: platform %q", common.ErrNotFound, platform)
	}

	prev := r.accounts[i].Clone()
	upd.Apply(r.accounts[i], timeNow())
	if err := r.save(); err != nil {
		r.accounts[i] = prev
		r.log.Error(ctx, "update did not persist", "platform", platform, "error", err)
		return nil, err
	}

	r.log.Info(ctx, "account updated", "platform", platform)
	return r.accounts[i].Clone(), nil
}

// Delete removes the first account matching platform and persists the
// collection. Fails with common.ErrNotFound when nothing matches.
func (r *AccountRepository) Delete(ctx context.Context, platform string) error {
	i := r.findIndex(platform)
	if i < 0 {
		return fmt.Errorf("%w: platform %q", common.ErrNotFound, platform)
	}

	removed := r.accounts[i]
	r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
	if err := r.save(); err != nil {
		r.accounts = append(r.accounts[:i], append([]*models.Account{removed}, r.accounts[i:]...)...)
		r.log.Error(ctx, "delete did not persist", "platform", platform, "error", err)
		return err
	}

	r.log.Info(ctx, "account deleted", "platform", platform)
	return nil
}

// Search returns accounts whose platform, identifier or notes contain the
// query, case-insensitively.
func (r *AccountRepository) Search(ctx context.Context, query string) []*models.Account {
	q := strings.ToLower(query)
	var out []*models.Account
	for _, a := range r.accounts {
		if strings.Contains(strings.ToLower(a.Platform), q) ||
			strings.Contains(strings.ToLower(a.Identifier), q) ||
			strings.Contains(strings.ToLower(a.Notes), q) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// FilterByCategory returns accounts with a case-insensitive category match.
func (r *AccountRepository) FilterByCategory(ctx context.Context, category string) []*models.Account {
	var out []*models.Account
	for _, a := range r.accounts {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// ListCategories returns the sorted set of distinct categories.
func (r *AccountRepository) ListCategories(ctx context.Context) []string {
	seen := make(map[string]struct{}, len(r.accounts))
	var out []string
	for _, a := range r.accounts {
		if _, ok := seen[a.Category]; !ok {
			seen[a.Category] = struct{}{}
			out = append(out, a.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Summary returns the total count and per-category counts.
func (r *AccountRepository) Summary(ctx context.Context) Summary {
	s := Summary{Total: len(r.accounts), ByCategory: make(map[string]int)}
	for _, a := range r.accounts {
		s.ByCategory[a.Category]++
	}
	return s
}

// All returns the whole collection in insertion order.
func (r *AccountRepository) All(ctx context.Context) []*models.Account {
	out := make([]*models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a.Clone())
	}
	return out
}
