package store

import (
	"context"
	"errors"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a guarded update that matched zero rows because a
	// concurrent writer got there first. Callers should re-read and retry.
	ErrConflict = errors.New("store: concurrent update conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Members() Members
	Payments() Payments
	AccessLog() AccessLog
	ScanEvents() ScanEvents

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step atomic operations (payment apply,
	// scan poll).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Members interface {
	// GetMemberByID returns a member by id.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// GetMemberByNumber returns a member by their front-desk member number.
	// Used during device provisioning.
	GetMemberByNumber(ctx context.Context, memberNo string) (domain.Member, error)

	// CreateMember inserts a new member (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the member number is taken.
	CreateMember(ctx context.Context, m domain.Member) error

	// ListMembers returns all members ordered by enrollment date (newest first).
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// UpdateExpiration sets expires_at guarded on the previously observed
	// value. A zero-row update means a concurrent ledger mutation won the
	// race and surfaces as ErrConflict.
	UpdateExpiration(ctx context.Context, memberID string, old, updated *time.Time) error
}

type Payments interface {
	// CreatePayment stores a new payment record.
	CreatePayment(ctx context.Context, p domain.Payment) error

	// GetPaymentByID returns a payment by id.
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)

	// ListPaymentsByMember returns a member's payments, newest applied first.
	ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error)

	// DeletePayment removes a payment record (reversal path).
	DeletePayment(ctx context.Context, id string) error
}

type AccessLog interface {
	// AppendDecision writes one audit row. Rows are append-only.
	AppendDecision(ctx context.Context, d domain.AccessDecision) error

	// ListRecentDecisions returns the newest decisions up to limit.
	ListRecentDecisions(ctx context.Context, limit int) ([]domain.AccessDecision, error)

	// DeleteDecisionsBefore is retention housekeeping.
	DeleteDecisionsBefore(ctx context.Context, cutoff time.Time) error
}

type ScanEvents interface {
	// CreateScanEvent appends a new unconsumed event.
	CreateScanEvent(ctx context.Context, e domain.ScanEvent) error

	// GetOldestUnconsumed returns the FIFO head of the queue, or ErrNotFound
	// when the queue is drained.
	GetOldestUnconsumed(ctx context.Context) (domain.ScanEvent, error)

	// MarkConsumed flips the consumed flag. Returns ErrConflict when the
	// event was already consumed (another poller won the race).
	MarkConsumed(ctx context.Context, id string) error

	// DeleteConsumedBefore is retention housekeeping.
	DeleteConsumedBefore(ctx context.Context, cutoff time.Time) error
}
