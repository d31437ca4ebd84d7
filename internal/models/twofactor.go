package models

import "time"

// TwoFactorCode is a short-lived numeric verification code issued after the
// second-factor password has been verified. A code is confirmable until
// ExpiresAt and at most once.
type TwoFactorCode struct {
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

// Expired reports whether the code's validity window has passed.
func (c *TwoFactorCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
