// Package models defines the vault's record types: the administrator
// identity, credential accounts and second-factor codes.
package models

// AdminRecord is the single administrator identity of a vault. A vault has
// exactly zero or one AdminRecord.
//
// KeySalt is generated once at creation and never changes afterwards:
// rewriting it would invalidate every blob encrypted under the derived key.
// The salt is also persisted separately in clear, because it must be
// readable before the master password is known.
type AdminRecord struct {
	Username      string `json:"username"`
	PasswordHash  string `json:"passwordHash"`
	TwoFactorHash string `json:"twoFactorHash,omitempty"`
	KeySalt       []byte `json:"keySalt"`
}

// HasTwoFactor reports whether a second-factor password is configured.
func (a *AdminRecord) HasTwoFactor() bool {
	return a.TwoFactorHash != ""
}
