package domain

import "time"

// PasswordResetToken is single use: it is consumed on a successful reset or
// invalidated by its expiry, whichever comes first.
type PasswordResetToken struct {
	ID        int32      `json:"id"`
	UserID    int32      `json:"user_id"`
	Token     string     `json:"token"`
	ExpiresOn time.Time  `json:"expires_on"`
	UsedOn    *time.Time `json:"used_on,omitempty"`
	CreatedOn time.Time  `json:"created_on"`
}

func (t PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiresOn.Before(now)
}

func (t PasswordResetToken) Used() bool {
	return t.UsedOn != nil
}
