package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/cryptox"
	"github.com/barzolagym/gymos/pkg/idx"
	"github.com/barzolagym/gymos/pkg/slogx"
	"github.com/barzolagym/gymos/pkg/totpx"
	"github.com/pquerna/otp/totp"
)

var (
	ErrMemberNumberTaken  = errors.New("member number already enrolled")
	ErrInvalidEnrollment  = errors.New("name and member number are required")
	ErrInvalidCredentials = errors.New("invalid member number or PIN")
)

// EnrollmentService creates members and provisions their devices. It is the
// only collaborator allowed to hand the TOTP secret out, and only after PIN
// verification.
type EnrollmentService struct {
	Store  store.Store
	Issuer string // issuer label baked into otpauth:// URLs, e.g. "GymOS"
}

// ProvisionResult is what the member's device needs to start generating
// codes. Secret exposure ends here.
type ProvisionResult struct {
	MemberID   string
	Name       string
	Secret     string
	OtpauthURL string
	Status     string
	ExpiresAt  *time.Time
}

// Enroll registers a new member with a freshly minted TOTP secret and a
// hashed PIN. Identifier and secret are immutable for the member's lifetime.
// The membership starts inactive; the first payment activates it.
func (s *EnrollmentService) Enroll(ctx context.Context, name, memberNo, pin string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	if name == "" || memberNo == "" {
		return domain.Member{}, ErrInvalidEnrollment
	}
	// Front-desk quick enrollment: the member number doubles as the initial
	// PIN until the member changes it.
	if pin == "" {
		pin = memberNo
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: memberNo,
		Period:      uint(totpx.Period / time.Second),
		Digits:      totpx.Digits,
		Algorithm:   totpx.Algorithm,
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to mint TOTP secret: %w", err)
	}

	pinHash, err := cryptox.HashPIN(pin)
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to hash PIN: %w", err)
	}

	now := time.Now().UTC()
	member := domain.Member{
		ID:         idx.New().String(),
		MemberNo:   memberNo,
		Name:       name,
		PINHash:    pinHash,
		TOTPSecret: key.Secret(),
		ExpiresAt:  nil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.Members().CreateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrMemberNumberTaken
		}
		return domain.Member{}, fmt.Errorf("failed to create member: %w", err)
	}

	log.Info("member enrolled", "member_id", member.ID, "member_no", member.MemberNo)
	return member, nil
}

// Provision releases the TOTP secret to a device after PIN verification.
// Unknown member numbers and wrong PINs are indistinguishable to the caller.
func (s *EnrollmentService) Provision(ctx context.Context, memberNo, pin string) (ProvisionResult, error) {
	log := slogx.FromContext(ctx)

	member, err := s.Store.Members().GetMemberByNumber(ctx, memberNo)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProvisionResult{}, ErrInvalidCredentials
		}
		return ProvisionResult{}, fmt.Errorf("failed to load member: %w", err)
	}

	if err := cryptox.VerifyPIN(pin, member.PINHash); err != nil {
		if errors.Is(err, cryptox.ErrPINMismatch) {
			log.Warn("provisioning rejected", "member_no", memberNo)
			return ProvisionResult{}, ErrInvalidCredentials
		}
		return ProvisionResult{}, fmt.Errorf("failed to verify PIN: %w", err)
	}

	now := time.Now()
	log.Info("device provisioned", "member_id", member.ID)
	return ProvisionResult{
		MemberID:   member.ID,
		Name:       member.Name,
		Secret:     member.TOTPSecret,
		OtpauthURL: s.otpauthURL(member),
		Status:     member.StatusAt(now),
		ExpiresAt:  member.ExpiresAt,
	}, nil
}

// otpauthURL rebuilds the provisioning URL from the stored secret with the
// same wire parameters the secret was minted with.
func (s *EnrollmentService) otpauthURL(m domain.Member) string {
	u := url.URL{
		Scheme: "otpauth",
		Host:   "totp",
		Path:   "/" + s.Issuer + ":" + m.MemberNo,
	}
	q := u.Query()
	q.Set("secret", m.TOTPSecret)
	q.Set("issuer", s.Issuer)
	q.Set("algorithm", totpx.Algorithm.String())
	q.Set("digits", totpx.Digits.String())
	q.Set("period", fmt.Sprintf("%d", uint(totpx.Period/time.Second)))
	u.RawQuery = q.Encode()
	return u.String()
}

// GetMember fetches a member by id.
func (s *EnrollmentService) GetMember(ctx context.Context, memberID string) (domain.Member, error) {
	member, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	return member, nil
}

// ListMembers returns all members, newest enrollment first.
func (s *EnrollmentService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.Store.Members().ListMembers(ctx)
}
