package domain

import "time"

// Payment records a membership purchase. Payments are immutable once applied;
// a reversal deletes the record and retracts the purchased time from the
// member's current expiration.
type Payment struct {
	ID          string
	MemberID    string
	Months      int   // membership-months purchased; 1 month buys 30 days
	AmountCents int64 // charged amount, minor units
	AppliedAt   time.Time
	CreatedAt   time.Time
}
