package domain

import "time"

// Member is an enrolled gym member. The TOTP secret is a symmetric capability
// credential shared with the member's device; only the provisioning flow may
// read it back out. The PIN hash gates that flow.
type Member struct {
	ID         string
	MemberNo   string // front-desk facing member number, unique
	Name       string
	PINHash    string     // argon2id encoded
	TOTPSecret string     // base32 encoded
	ExpiresAt  *time.Time // nil means never paid; past means lapsed
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Membership status values exposed to the front desk.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// ActiveAt reports whether the membership is paid up at t. Status is derived
// from the expiration timestamp on every read; it is never stored.
func (m Member) ActiveAt(t time.Time) bool {
	return m.ExpiresAt != nil && m.ExpiresAt.After(t)
}

// StatusAt returns the display status for the membership at t.
func (m Member) StatusAt(t time.Time) string {
	if m.ActiveAt(t) {
		return StatusActive
	}
	return StatusExpired
}
