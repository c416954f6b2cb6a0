package domain

import "time"

// ScanEvent is a queued hand-off from a scanning device to a polling
// terminal. Consumed events are never re-delivered.
type ScanEvent struct {
	ID         string
	Payload    string // raw scanned payload; validity is the validator's concern
	ReceivedAt time.Time
	Consumed   bool
}
