package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/idx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

// daysPerMonth is the billing convention: one membership-month buys 30 days,
// regardless of the calendar month it lands in.
const daysPerMonth = 30

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidMonths   = errors.New("months must be positive")

	// ErrLedgerConflict reports a ledger mutation that lost a race with a
	// concurrent mutation on the same member. The caller should re-read and
	// retry rather than assume the update landed.
	ErrLedgerConflict = errors.New("concurrent ledger update, retry with fresh data")
)

// LedgerService owns every mutation of a member's expiration timestamp.
// Nothing else in the system writes that field.
type LedgerService struct {
	Store store.Store

	// Location sets the day boundary for end-of-day normalization.
	// Defaults to UTC.
	Location *time.Location
}

func (s *LedgerService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

// endOfDay normalizes t to the last instant of its calendar day, so "still
// active" checks at any time of day compare against a whole-day boundary.
func (s *LedgerService) endOfDay(t time.Time) time.Time {
	year, month, day := t.In(s.location()).Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), s.location())
}

// ApplyPayment extends the member's expiration by months*30 days. An active
// member extends from their current expiration; an expired or never-active
// member extends from the application time, so already-paid-for time is never
// lost and lapsed time is never back-billed.
//
// The payment record and the expiration update commit atomically; the update
// is guarded on the expiration this call observed, so a concurrent mutation
// on the same member surfaces as ErrLedgerConflict instead of a lost update.
func (s *LedgerService) ApplyPayment(
	ctx context.Context,
	memberID string,
	months int,
	amountCents int64,
	appliedAt time.Time,
) (domain.Payment, time.Time, error) {
	log := slogx.FromContext(ctx)

	if months <= 0 {
		return domain.Payment{}, time.Time{}, ErrInvalidMonths
	}

	member, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, time.Time{}, ErrMemberNotFound
		}
		return domain.Payment{}, time.Time{}, fmt.Errorf("failed to load member: %w", err)
	}

	baseline := appliedAt
	if member.ExpiresAt != nil && member.ExpiresAt.After(appliedAt) {
		baseline = *member.ExpiresAt
	}
	newExpiration := s.endOfDay(baseline.AddDate(0, 0, months*daysPerMonth))

	payment := domain.Payment{
		ID:          idx.New().String(),
		MemberID:    member.ID,
		Months:      months,
		AmountCents: amountCents,
		AppliedAt:   appliedAt,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Payments().CreatePayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to store payment: %w", err)
		}
		return tx.Members().UpdateExpiration(ctx, member.ID, member.ExpiresAt, &newExpiration)
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Warn("payment application lost a concurrent race",
				"member_id", member.ID,
			)
			return domain.Payment{}, time.Time{}, ErrLedgerConflict
		}
		return domain.Payment{}, time.Time{}, err
	}

	log.Info("payment applied",
		"member_id", member.ID,
		"payment_id", payment.ID,
		"months", months,
		"expires_at", newExpiration,
	)
	return payment, newExpiration, nil
}

// ReversePayment deletes the payment and subtracts its months*30 days from
// the member's current expiration, whatever that is at reversal time. This is
// deliberately not an undo of the payment's original contribution: reversing
// payments out of chronological order can land on a different date than
// reversing in order. That is the ledger's contract, not a bug to fix here.
func (s *LedgerService) ReversePayment(ctx context.Context, paymentID string) (*time.Time, error) {
	log := slogx.FromContext(ctx)

	payment, err := s.Store.Payments().GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	member, err := s.Store.Members().GetMemberByID(ctx, payment.MemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	// A member with recorded payments but no expiration has nothing left to
	// retract; the reversal then only removes the payment record.
	var newExpiration *time.Time
	if member.ExpiresAt != nil {
		e := member.ExpiresAt.AddDate(0, 0, -payment.Months*daysPerMonth)
		newExpiration = &e
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Payments().DeletePayment(ctx, payment.ID); err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}
		return tx.Members().UpdateExpiration(ctx, member.ID, member.ExpiresAt, newExpiration)
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Warn("payment reversal lost a concurrent race",
				"member_id", member.ID,
				"payment_id", payment.ID,
			)
			return nil, ErrLedgerConflict
		}
		return nil, err
	}

	log.Info("payment reversed",
		"member_id", member.ID,
		"payment_id", payment.ID,
		"months", payment.Months,
	)
	return newExpiration, nil
}

// ListPayments returns a member's payment history, newest first.
func (s *LedgerService) ListPayments(ctx context.Context, memberID string) ([]domain.Payment, error) {
	if _, err := s.Store.Members().GetMemberByID(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return s.Store.Payments().ListPaymentsByMember(ctx, memberID)
}
