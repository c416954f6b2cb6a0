package service

import (
	"context"
	"testing"
	"time"

	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentFirstPayment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1001", nil)

	appliedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	payment, expiresAt, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, appliedAt)
	require.NoError(t, err)
	require.Equal(t, member.ID, payment.MemberID)
	require.Equal(t, 1, payment.Months)

	// One month buys 30 days from the application time, pushed to end of day.
	want := time.Date(2026, 3, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	require.Equal(t, want, expiresAt.UTC())

	stored, err := st.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ExpiresAt)
	require.True(t, stored.ExpiresAt.Equal(want))
}

func TestApplyPaymentExtendsActiveMembership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1002", nil)

	appliedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	_, firstExp, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, appliedAt)
	require.NoError(t, err)

	// Paying again while active stacks on top of the current expiration, not
	// on top of the payment time.
	secondAt := appliedAt.Add(48 * time.Hour)
	_, secondExp, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, secondAt)
	require.NoError(t, err)

	want := firstExp.AddDate(0, 0, 30)
	require.Equal(t, want.UTC(), secondExp.UTC())
}

func TestApplyPaymentAfterLapseStartsFresh(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	expired := time.Date(2026, 1, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	member := seedMember(t, st, "1003", timePtr(expired))

	// The lapse between January and March is not back-billed.
	appliedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, expiresAt, err := svc.ApplyPayment(ctx, member.ID, 2, 9000, appliedAt)
	require.NoError(t, err)

	want := time.Date(2026, 5, 9, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	require.Equal(t, want, expiresAt.UTC())
}

func TestApplyPaymentRejectsNonPositiveMonths(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1004", nil)

	for _, months := range []int{0, -1} {
		_, _, err := svc.ApplyPayment(ctx, member.ID, months, 0, time.Now())
		require.ErrorIs(t, err, ErrInvalidMonths)
	}

	payments, err := svc.ListPayments(ctx, member.ID)
	require.NoError(t, err)
	require.Empty(t, payments, "rejected payments must not be recorded")
}

func TestApplyPaymentUnknownMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	_, _, err := svc.ApplyPayment(ctx, "no-such-member", 1, 4500, time.Now())
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestReversePaymentRestoresPriorExpiration(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1005", nil)

	appliedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	_, firstExp, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, appliedAt)
	require.NoError(t, err)

	second, _, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, appliedAt.Add(time.Hour))
	require.NoError(t, err)

	// Reversing the most recent payment lands exactly on the pre-payment
	// expiration.
	got, err := svc.ReversePayment(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Equal(firstExp))

	payments, err := svc.ListPayments(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
}

func TestReversePaymentIsOrderSensitive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1006", nil)

	// Payment A covers March. The member then lapses, and payment B in May
	// restarts from its own application date.
	aAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	paymentA, _, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, aAt)
	require.NoError(t, err)

	bAt := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	_, expAfterB, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, bAt)
	require.NoError(t, err)

	// Reversing A subtracts its 30 days from the CURRENT expiration, which is
	// not the same as a world where A never happened (that would leave
	// expAfterB untouched).
	got, err := svc.ReversePayment(ctx, paymentA.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := expAfterB.AddDate(0, 0, -30)
	require.True(t, got.Equal(want))
	require.False(t, got.Equal(expAfterB))
}

func TestReversePaymentWithoutExpiration(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	member := seedMember(t, st, "1007", nil)

	payment, _, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, time.Now().UTC())
	require.NoError(t, err)

	// Simulate an operator clearing the expiration out of band; the reversal
	// then only removes the record.
	stored, err := st.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NoError(t, st.Members().UpdateExpiration(ctx, member.ID, stored.ExpiresAt, nil))

	got, err := svc.ReversePayment(ctx, payment.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = st.Payments().GetPaymentByID(ctx, payment.ID)
	require.Error(t, err)
}

func TestReversePaymentUnknownPayment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	_, err := svc.ReversePayment(ctx, "no-such-payment")
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestApplyPaymentEndOfDayInConfiguredZone(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	loc, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)
	svc := &LedgerService{Store: st, Location: loc}

	member := seedMember(t, st, "1008", nil)

	// 20:00 UTC on March 1 is already March 2 in Brisbane (+10), so the day
	// boundary comes from the gym's zone, not UTC.
	appliedAt := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	_, expiresAt, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, appliedAt)
	require.NoError(t, err)

	want := time.Date(2026, 4, 1, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	require.True(t, expiresAt.Equal(want))
}

func TestListPaymentsUnknownMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LedgerService{Store: st}

	_, err := svc.ListPayments(ctx, "no-such-member")
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateExpirationGuardsOnObservedValue(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	member := seedMember(t, st, "1009", nil)

	first := time.Date(2026, 4, 1, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	require.NoError(t, st.Members().UpdateExpiration(ctx, member.ID, nil, &first))

	// A writer still holding the nil it observed before that update lost the
	// race and must not clobber it.
	stale := first.AddDate(0, 0, 30)
	err := st.Members().UpdateExpiration(ctx, member.ID, nil, &stale)
	require.ErrorIs(t, err, store.ErrConflict)

	// Same for a non-nil guard that no longer matches the row.
	wrong := first.AddDate(0, 0, 1)
	err = st.Members().UpdateExpiration(ctx, member.ID, &wrong, &stale)
	require.ErrorIs(t, err, store.ErrConflict)

	stored, err := st.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ExpiresAt)
	require.True(t, stored.ExpiresAt.Equal(first), "losing writers must not change the row")

	// The writer holding the current value still goes through.
	second := first.AddDate(0, 0, 30)
	require.NoError(t, st.Members().UpdateExpiration(ctx, member.ID, &first, &second))
}

// racingStore wedges a competing expiration write into the ledger's
// transaction, after the service has read the member but before its guarded
// update runs.
type racingStore struct {
	store.Store
	memberID string
	clashAt  time.Time
}

func (s *racingStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Members().GetMemberByID(ctx, s.memberID)
		if err != nil {
			return err
		}
		if err := tx.Members().UpdateExpiration(ctx, s.memberID, m.ExpiresAt, &s.clashAt); err != nil {
			return err
		}
		return fn(tx)
	})
}

func TestApplyPaymentSurfacesConcurrentConflict(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	member := seedMember(t, st, "1010", nil)
	clashAt := time.Date(2026, 7, 1, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	svc := &LedgerService{Store: &racingStore{Store: st, memberID: member.ID, clashAt: clashAt}}

	_, _, err := svc.ApplyPayment(ctx, member.ID, 1, 4500, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrLedgerConflict)

	// The losing transaction rolled back whole: no payment row, no
	// expiration change.
	payments, err := st.Payments().ListPaymentsByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Empty(t, payments)

	stored, err := st.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.Nil(t, stored.ExpiresAt)
}

func TestReversePaymentSurfacesConcurrentConflict(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	plain := &LedgerService{Store: st}

	member := seedMember(t, st, "1011", nil)
	payment, applied, err := plain.ApplyPayment(ctx, member.ID, 1, 4500, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	clashAt := applied.AddDate(0, 0, 30)
	racing := &LedgerService{Store: &racingStore{Store: st, memberID: member.ID, clashAt: clashAt}}

	_, err = racing.ReversePayment(ctx, payment.ID)
	require.ErrorIs(t, err, ErrLedgerConflict)

	// The payment survives and the expiration is untouched.
	_, err = st.Payments().GetPaymentByID(ctx, payment.ID)
	require.NoError(t, err)

	stored, err := st.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ExpiresAt)
	require.True(t, stored.ExpiresAt.Equal(applied))
}
