package domain

import "time"

// Outcome of a single validation attempt.
type Outcome string

const (
	OutcomeGranted Outcome = "granted"
	OutcomeDenied  Outcome = "denied"
)

// DenyReason is the wire-level reason code attached to a denied decision.
// These are the only reasons ever exposed to callers; storage failures are
// reported generically and never reach this type.
type DenyReason string

const (
	DenyMalformedPayload DenyReason = "malformed_payload"
	DenyUnknownMember    DenyReason = "unknown_member"
	DenyInvalidCode      DenyReason = "invalid_code"
	DenyExpired          DenyReason = "expired"
)

// AccessDecision is an audit record. Exactly one is appended per validation
// attempt; rows are never mutated or deleted outside retention housekeeping.
type AccessDecision struct {
	ID        string
	MemberID  *string // nil when the payload never resolved to a member
	Outcome   Outcome
	Reason    DenyReason // empty when granted
	DecidedAt time.Time
}
