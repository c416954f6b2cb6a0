package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/idx"
	"github.com/barzolagym/gymos/pkg/slogx"
	"github.com/barzolagym/gymos/pkg/totpx"
)

// scanPayload is the record the member's device encodes into the QR code.
// The shape is agreed with the QR generator and is a wire contract.
type scanPayload struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Decision is the terminal result of one validation attempt. Denial is a
// normal outcome, not an error; only storage failures escape as errors.
type Decision struct {
	Outcome domain.Outcome
	Reason  domain.DenyReason // set when denied
	Member  *domain.Member    // attached when the payload resolved to a member
	Offset  int               // matched TOTP step offset; persistent non-zero means client clock skew
}

// ValidatorService turns a raw scanned payload into an authorize/deny
// decision and appends exactly one audit record per attempt. It never mutates
// membership state.
type ValidatorService struct {
	Store store.Store

	// Window overrides the TOTP validation window in steps. Nil falls back
	// to totpx.DefaultWindow; an explicit zero accepts only the current
	// step.
	Window *uint
}

func (s *ValidatorService) window() uint {
	if s.Window != nil {
		return *s.Window
	}
	return totpx.DefaultWindow
}

// Validate runs the decision pipeline: parse payload, resolve member, check
// the TOTP code, check expiration. The first failing step denies with its
// reason; later steps are not consulted.
func (s *ValidatorService) Validate(ctx context.Context, rawPayload string, now time.Time) (Decision, error) {
	log := slogx.FromContext(ctx)

	payload, ok := parseScanPayload(rawPayload)
	if !ok {
		return s.deny(ctx, nil, domain.DenyMalformedPayload, now)
	}

	member, err := s.Store.Members().GetMemberByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.deny(ctx, nil, domain.DenyUnknownMember, now)
		}
		return Decision{}, fmt.Errorf("failed to resolve member: %w", err)
	}

	offset, matched, err := totpx.Validate(member.TOTPSecret, payload.Token, now, s.window())
	if err != nil {
		// Undecodable stored secret is corrupt data, not a bad scan.
		return Decision{}, fmt.Errorf("totp validation failed: %w", err)
	}
	if !matched {
		return s.deny(ctx, &member, domain.DenyInvalidCode, now)
	}
	if offset != 0 {
		log.Info("totp matched off-step",
			"member_id", member.ID,
			"offset", offset,
		)
	}

	if !member.ActiveAt(now) {
		return s.deny(ctx, &member, domain.DenyExpired, now)
	}

	decision := Decision{
		Outcome: domain.OutcomeGranted,
		Member:  &member,
		Offset:  offset,
	}
	if err := s.audit(ctx, decision, now); err != nil {
		return Decision{}, err
	}

	log.Info("access granted", "member_id", member.ID)
	return decision, nil
}

func (s *ValidatorService) deny(
	ctx context.Context,
	member *domain.Member,
	reason domain.DenyReason,
	now time.Time,
) (Decision, error) {
	decision := Decision{
		Outcome: domain.OutcomeDenied,
		Reason:  reason,
		Member:  member,
	}
	if err := s.audit(ctx, decision, now); err != nil {
		return Decision{}, err
	}

	log := slogx.FromContext(ctx)
	if member != nil {
		log.Info("access denied", "member_id", member.ID, "reason", reason)
	} else {
		log.Info("access denied", "reason", reason)
	}
	return decision, nil
}

// audit appends the one-and-only record for this attempt. A failed append
// fails the attempt: an unauditable decision must not be handed out.
func (s *ValidatorService) audit(ctx context.Context, d Decision, now time.Time) error {
	record := domain.AccessDecision{
		ID:        idx.New().String(),
		Outcome:   d.Outcome,
		Reason:    d.Reason,
		DecidedAt: now,
	}
	if d.Member != nil {
		memberID := d.Member.ID
		record.MemberID = &memberID
	}

	if err := s.Store.AccessLog().AppendDecision(ctx, record); err != nil {
		return fmt.Errorf("failed to append access decision: %w", err)
	}
	return nil
}

func parseScanPayload(raw string) (scanPayload, bool) {
	var p scanPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return scanPayload{}, false
	}
	p.ID = strings.TrimSpace(p.ID)
	p.Token = strings.TrimSpace(p.Token)
	if p.ID == "" || p.Token == "" {
		return scanPayload{}, false
	}
	return p, true
}
