package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/pkg/totpx"
	"github.com/stretchr/testify/require"
)

func scanJSON(t *testing.T, memberID, token string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"id": memberID, "token": token})
	require.NoError(t, err)
	return string(raw)
}

func countDecisions(t *testing.T, svc *ValidatorService) int {
	t.Helper()
	decisions, err := svc.Store.AccessLog().ListRecentDecisions(context.Background(), 100)
	require.NoError(t, err)
	return len(decisions)
}

func TestValidateGrantsActiveMemberWithFreshCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	member := seedMember(t, st, "2001", timePtr(now.Add(30*24*time.Hour)))

	code, err := totpx.Generate(member.TOTPSecret, now)
	require.NoError(t, err)

	decision, err := svc.Validate(ctx, scanJSON(t, member.ID, code), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeGranted, decision.Outcome)
	require.Empty(t, decision.Reason)
	require.NotNil(t, decision.Member)
	require.Equal(t, member.ID, decision.Member.ID)
	require.Equal(t, 0, decision.Offset)
}

func TestValidateAcceptsPreviousStepCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	member := seedMember(t, st, "2002", timePtr(now.Add(24*time.Hour)))

	// A code minted one full step ago is still inside the default window and
	// reports its offset.
	code, err := totpx.Generate(member.TOTPSecret, now.Add(-totpx.Period))
	require.NoError(t, err)

	decision, err := svc.Validate(ctx, scanJSON(t, member.ID, code), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeGranted, decision.Outcome)
	require.Equal(t, -1, decision.Offset)
}

func TestValidateDenialReasons(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	active := seedMember(t, st, "2003", timePtr(now.Add(24*time.Hour)))
	lapsed := seedMember(t, st, "2004", timePtr(now.Add(-time.Hour)))

	goodCode, err := totpx.Generate(testSecret, now)
	require.NoError(t, err)
	staleCode, err := totpx.Generate(testSecret, now.Add(-10*totpx.Period))
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		reason  domain.DenyReason
	}{
		{"not json", "??not-json??", domain.DenyMalformedPayload},
		{"missing token", fmt.Sprintf(`{"id":%q}`, active.ID), domain.DenyMalformedPayload},
		{"blank fields", `{"id":"  ","token":""}`, domain.DenyMalformedPayload},
		{"unknown member", scanJSON(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", goodCode), domain.DenyUnknownMember},
		{"code outside window", scanJSON(t, active.ID, staleCode), domain.DenyInvalidCode},
		{"lapsed membership", scanJSON(t, lapsed.ID, goodCode), domain.DenyExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := svc.Validate(ctx, tt.payload, now)
			require.NoError(t, err)
			require.Equal(t, domain.OutcomeDenied, decision.Outcome)
			require.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestValidateExpiryCheckedAfterCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	lapsed := seedMember(t, st, "2005", timePtr(now.Add(-time.Hour)))

	// A lapsed member presenting a bad code is denied for the code, not the
	// lapse: the pipeline stops at the first failing step.
	staleCode, err := totpx.Generate(lapsed.TOTPSecret, now.Add(-10*totpx.Period))
	require.NoError(t, err)

	decision, err := svc.Validate(ctx, scanJSON(t, lapsed.ID, staleCode), now)
	require.NoError(t, err)
	require.Equal(t, domain.DenyInvalidCode, decision.Reason)
}

func TestValidateAppendsExactlyOneAuditRecordPerAttempt(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	member := seedMember(t, st, "2006", timePtr(now.Add(24*time.Hour)))

	code, err := totpx.Generate(member.TOTPSecret, now)
	require.NoError(t, err)

	attempts := []string{
		scanJSON(t, member.ID, code), // granted
		scanJSON(t, member.ID, "000000"),
		"not json at all",
		scanJSON(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", code),
	}
	for _, payload := range attempts {
		_, err := svc.Validate(ctx, payload, now)
		require.NoError(t, err)
	}

	require.Equal(t, len(attempts), countDecisions(t, svc))

	decisions, err := st.AccessLog().ListRecentDecisions(ctx, 100)
	require.NoError(t, err)

	var granted, denied int
	for _, d := range decisions {
		switch d.Outcome {
		case domain.OutcomeGranted:
			granted++
			require.NotNil(t, d.MemberID)
			require.Equal(t, member.ID, *d.MemberID)
		case domain.OutcomeDenied:
			denied++
			require.NotEmpty(t, d.Reason)
		}
	}
	require.Equal(t, 1, granted)
	require.Equal(t, 3, denied)
}

func TestValidateAuditsUnresolvedAttemptsWithoutMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st}

	now := time.Now().UTC()
	_, err := svc.Validate(ctx, "garbage", now)
	require.NoError(t, err)

	decisions, err := st.AccessLog().ListRecentDecisions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.Nil(t, decisions[0].MemberID)
	require.Equal(t, domain.DenyMalformedPayload, decisions[0].Reason)
}

func TestValidateRespectsConfiguredWindow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	strict := &ValidatorService{Store: st, Window: uintPtr(1)}

	now := time.Now().UTC()
	member := seedMember(t, st, "2007", timePtr(now.Add(24*time.Hour)))

	// Two steps old: outside window 1, inside window 2.
	code, err := totpx.Generate(member.TOTPSecret, now.Add(-2*totpx.Period))
	require.NoError(t, err)

	decision, err := strict.Validate(ctx, scanJSON(t, member.ID, code), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeDenied, decision.Outcome)
	require.Equal(t, domain.DenyInvalidCode, decision.Reason)

	relaxed := &ValidatorService{Store: st, Window: uintPtr(2)}
	decision, err = relaxed.Validate(ctx, scanJSON(t, member.ID, code), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeGranted, decision.Outcome)
	require.Equal(t, -2, decision.Offset)
}

func TestValidateZeroWindowAcceptsOnlyCurrentStep(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ValidatorService{Store: st, Window: uintPtr(0)}

	now := time.Now().UTC()
	member := seedMember(t, st, "2009", timePtr(now.Add(24*time.Hour)))

	// An explicit zero window is stricter than the default: one step of
	// drift, fine under the default window, is refused.
	prev, err := totpx.Generate(member.TOTPSecret, now.Add(-totpx.Period))
	require.NoError(t, err)

	decision, err := svc.Validate(ctx, scanJSON(t, member.ID, prev), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeDenied, decision.Outcome)
	require.Equal(t, domain.DenyInvalidCode, decision.Reason)

	fresh, err := totpx.Generate(member.TOTPSecret, now)
	require.NoError(t, err)

	decision, err = svc.Validate(ctx, scanJSON(t, member.ID, fresh), now)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeGranted, decision.Outcome)
	require.Equal(t, 0, decision.Offset)
}

func TestValidateMembershipLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	validator := &ValidatorService{Store: st}

	member := seedMember(t, st, "2008", nil)

	paidAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	_, expiresAt, err := ledger.ApplyPayment(ctx, member.ID, 1, 4500, paidAt)
	require.NoError(t, err)

	// Just after paying, a fresh code opens the door.
	at := paidAt.Add(time.Second)
	code, err := totpx.Generate(member.TOTPSecret, at)
	require.NoError(t, err)
	decision, err := validator.Validate(ctx, scanJSON(t, member.ID, code), at)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeGranted, decision.Outcome)

	// A day past expiration the same device, with a perfectly valid code, is
	// denied for the lapse.
	at = expiresAt.Add(24 * time.Hour)
	code, err = totpx.Generate(member.TOTPSecret, at)
	require.NoError(t, err)
	decision, err = validator.Validate(ctx, scanJSON(t, member.ID, code), at)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeDenied, decision.Outcome)
	require.Equal(t, domain.DenyExpired, decision.Reason)
}
