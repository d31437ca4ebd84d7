// Package auth orchestrates administrator creation, login, the second-factor
// challenge and session lifecycle for one vault.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"passvault/internal/common"
	"passvault/internal/cryptox"
	"passvault/internal/logging"
	"passvault/internal/models"
	"passvault/internal/session"
	"passvault/internal/store"
	"passvault/internal/twofactor"
)

const (
	// SaltName is the store entry holding the raw key-derivation salt. It is
	// stored in clear: the salt must be readable before the master password
	// is known.
	SaltName = "admin.salt"

	// RecordName is the store entry holding the AdminRecord, encrypted under
	// the key derived from the master password.
	RecordName = "admin.enc"

	// MinMasterPasswordLength is the minimum accepted master password length.
	MinMasterPasswordLength = 8
)

var timeNow = time.Now

// State enumerates the authentication state machine.
type State string

const (
	StateNoAdmin              State = "no_admin"
	StateAdminCreated         State = "admin_created"
	StateUnauthenticated      State = "unauthenticated"
	StateAwaitingSecondFactor State = "awaiting_second_factor"
	StateAuthenticated        State = "authenticated"
	StateEnded                State = "ended"
)

// Flow drives a vault through NoAdmin → AdminCreated → Unauthenticated →
// AwaitingSecondFactor → Authenticated → Ended. It holds no ambient global
// state: every Flow owns its own store, issuer and session, so multiple
// vaults can run in isolation.
//
// Not safe for concurrent use; the vault has a single active session.
type Flow struct {
	store   store.Store
	issuer  *twofactor.Issuer
	log     logging.Logger
	timeout time.Duration

	state      State
	admin      *models.AdminRecord
	pendingKey []byte
	code       *models.TwoFactorCode
	session    *session.Session
}

// New constructs a Flow over the given store. The initial state depends on
// whether an admin record already exists.
func New(st store.Store, issuer *twofactor.Issuer, log logging.Logger, sessionTimeout time.Duration) *Flow {
	state := StateNoAdmin
	if st.Exists(RecordName) {
		state = StateUnauthenticated
	}
	return &Flow{
		store:   st,
		issuer:  issuer,
		log:     log.With("component", "auth"),
		timeout: sessionTimeout,
		state:   state,
	}
}

// State returns the current state of the flow.
func (f *Flow) State() State {
	return f.state
}

// Session returns the active session, or nil before authentication
// completes.
func (f *Flow) Session() *session.Session {
	return f.session
}

// HasAdmin reports whether the vault already has its administrator.
func (f *Flow) HasAdmin() bool {
	return f.store.Exists(RecordName)
}

// CreateAdmin creates the single administrator of the vault: it generates
// the key-derivation salt, hashes both passwords with bcrypt, persists the
// salt in clear and the AdminRecord encrypted under the derived key.
// The two-factor password is optional; when empty the second-factor
// challenge is skipped at login.
func (f *Flow) CreateAdmin(ctx context.Context, username, masterPassword, twoFactorPassword string) (*models.AdminRecord, error) {
	if f.HasAdmin() {
		return nil, common.ErrAdminExists
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if masterPassword == "" {
		return nil, fmt.Errorf("%w: master password is required", common.ErrValidation)
	}
	if len(masterPassword) < MinMasterPasswordLength {
		return nil, fmt.Errorf("%w: master password must be at least %d characters", common.ErrValidation, MinMasterPasswordLength)
	}

	passwordHash, err := cryptox.HashPassword([]byte(masterPassword))
	if err != nil {
		return nil, fmt.Errorf("hash master password: %w", err)
	}
	var twoFactorHash string
	if twoFactorPassword != "" {
		if twoFactorHash, err = cryptox.HashPassword([]byte(twoFactorPassword)); err != nil {
			return nil, fmt.Errorf("hash two-factor password: %w", err)
		}
	}

	salt := cryptox.GenerateSalt()
	admin := &models.AdminRecord{
		Username:      username,
		PasswordHash:  passwordHash,
		TwoFactorHash: twoFactorHash,
		KeySalt:       salt,
	}

	key := cryptox.DeriveKey([]byte(masterPassword), salt)
	defer common.WipeByteArray(key)

	plaintext, err := json.Marshal(admin)
	if err != nil {
		return nil, fmt.Errorf("encode admin record: %w", err)
	}
	token, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt admin record: %w", err)
	}

	// The salt lands first: without it the record is undecryptable anyway.
	if err := f.store.Save(SaltName, salt); err != nil {
		return nil, err
	}
	if err := f.store.Save(RecordName, token); err != nil {
		return nil, err
	}

	f.state = StateAdminCreated
	f.log.Info(ctx, "admin created", "username", username, "two_factor", admin.HasTwoFactor())
	return admin, nil
}

// Authenticate verifies the master password: it loads the clear salt,
// derives the key, decrypts the admin record and checks username and
// bcrypt hash. Decryption failure, username mismatch and hash mismatch all
// surface as the same common.ErrAuthentication so no oracle is leaked.
//
// On success with no second factor configured the session starts
// immediately and is returned. With a second factor the returned session is
// nil and the flow awaits VerifyTwoFactor/ConfirmCode.
func (f *Flow) Authenticate(ctx context.Context, username, password string) (*models.AdminRecord, *session.Session, error) {
	switch f.state {
	case StateNoAdmin:
		return nil, nil, common.ErrNoAdmin
	case StateAdminCreated, StateUnauthenticated, StateEnded:
		// proceed
	default:
		return nil, nil, fmt.Errorf("%w: %s", common.ErrInvalidState, f.state)
	}
	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	salt, err := f.store.Load(SaltName)
	if errors.Is(err, store.ErrAbsent) {
		return nil, nil, common.ErrNoAdmin
	}
	if err != nil {
		return nil, nil, err
	}
	token, err := f.store.Load(RecordName)
	if errors.Is(err, store.ErrAbsent) {
		return nil, nil, common.ErrNoAdmin
	}
	if err != nil {
		return nil, nil, err
	}

	key := cryptox.DeriveKey([]byte(password), salt)

	plaintext, err := cryptox.Decrypt(token, key)
	if err != nil {
		// Wrong password or tampered record: indistinguishable on purpose.
		common.WipeByteArray(key)
		f.log.Warn(ctx, "authentication failed", "username", username)
		return nil, nil, common.ErrAuthentication
	}

	var admin models.AdminRecord
	if err := json.Unmarshal(plaintext, &admin); err != nil {
		common.WipeByteArray(key)
		return nil, nil, common.ErrAuthentication
	}

	if admin.Username != username || !cryptox.VerifyPassword([]byte(password), admin.PasswordHash) {
		common.WipeByteArray(key)
		f.log.Warn(ctx, "authentication failed", "username", username)
		return nil, nil, common.ErrAuthentication
	}

	f.admin = &admin
	if admin.HasTwoFactor() {
		f.pendingKey = key
		f.state = StateAwaitingSecondFactor
		f.log.Info(ctx, "master password verified, awaiting second factor", "username", username)
		return &admin, nil, nil
	}

	f.startSession(key)
	f.log.Info(ctx, "authenticated", "username", username)
	return &admin, f.session, nil
}

// VerifyTwoFactor checks the second-factor password and, on success, issues
// a verification code. The caller must display the code to the user and
// echo the user's entry back through ConfirmCode to complete the login.
// A wrong password keeps the flow in AwaitingSecondFactor without penalty.
func (f *Flow) VerifyTwoFactor(ctx context.Context, password string) (*models.TwoFactorCode, error) {
	if f.state != StateAwaitingSecondFactor {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidState, f.state)
	}
	if !cryptox.VerifyPassword([]byte(password), f.admin.TwoFactorHash) {
		f.log.Warn(ctx, "second factor rejected", "username", f.admin.Username)
		return nil, common.ErrAuthentication
	}

	code, err := f.issuer.Generate()
	if err != nil {
		return nil, fmt.Errorf("issue code: %w", err)
	}
	f.code = code
	f.log.Info(ctx, "verification code issued", "username", f.admin.Username)
	return code, nil
}

// ConfirmCode completes the second-factor challenge. The entered code must
// match the issued one exactly, within its validity window; a confirmed
// code cannot be reused. A mismatch keeps the flow in AwaitingSecondFactor
// so the user may retry without lockout.
func (f *Flow) ConfirmCode(ctx context.Context, entered string) (*session.Session, error) {
	if f.state != StateAwaitingSecondFactor || f.code == nil {
		return nil, fmt.Errorf("%w: no code pending", common.ErrInvalidState)
	}
	if f.code.Used || f.code.Expired(timeNow()) {
		f.code = nil
		f.log.Warn(ctx, "verification code expired", "username", f.admin.Username)
		return nil, common.ErrAuthentication
	}
	if subtle.ConstantTimeCompare([]byte(entered), []byte(f.code.Code)) == 0 {
		return nil, common.ErrAuthentication
	}

	f.code.Used = true
	f.code = nil
	f.startSession(f.pendingKey)
	f.pendingKey = nil
	f.log.Info(ctx, "authenticated", "username", f.admin.Username)
	return f.session, nil
}

// Logout ends the session and wipes all key material.
func (f *Flow) Logout(ctx context.Context) {
	if f.session != nil {
		f.session.End()
		f.session = nil
	}
	common.WipeByteArray(f.pendingKey)
	f.pendingKey = nil
	f.code = nil
	f.admin = nil
	f.state = StateEnded
	f.log.Info(ctx, "logged out")
}

func (f *Flow) startSession(key []byte) {
	s := session.New(f.timeout)
	s.Start(f.admin, key)
	f.session = s
	f.state = StateAuthenticated
}
