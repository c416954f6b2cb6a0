package gymsdk

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidateRequest carries the raw scanned payload to the validation endpoint.
type ValidateRequest struct {
	// Payload is the raw string read off the QR code, passed through verbatim
	Payload string `json:"payload"`
}

// ValidateResponse is the decision for one validation attempt. Denials are
// returned with 200; only infrastructure failures produce error statuses.
type ValidateResponse struct {
	// Outcome is "granted" or "denied"
	Outcome string `json:"outcome"`

	// Reason is the denial reason, present only when denied
	Reason string `json:"reason,omitempty"`

	// MemberID is set when the payload resolved to a known member
	MemberID string `json:"member_id,omitempty"`

	// MemberName is set when the payload resolved to a known member
	MemberName string `json:"member_name,omitempty"`

	// ExpiresAt is the member's expiration in RFC3339, when known
	ExpiresAt string `json:"expires_at,omitempty"`
}

// SubmitScanRequest enqueues one raw scan from a door device.
type SubmitScanRequest struct {
	// Payload is the raw scanned string; the queue does not inspect it
	Payload string `json:"payload"`
}

// SubmitScanResponse acknowledges an enqueued scan.
type SubmitScanResponse struct {
	// EventID identifies the queued event
	EventID string `json:"event_id"`
}

// PollScanResponse is the front-desk poll result. Found is false on an empty
// queue; each event is delivered to exactly one poller.
type PollScanResponse struct {
	Found      bool   `json:"found"`
	EventID    string `json:"event_id,omitempty"`
	Payload    string `json:"payload,omitempty"`
	ReceivedAt string `json:"received_at,omitempty"`
}

// EnrollMemberRequest registers a new member.
type EnrollMemberRequest struct {
	// Name is the member's display name
	Name string `json:"name"`

	// MemberNo is the front-desk member number; must be unique
	MemberNo string `json:"member_no"`

	// PIN is optional; when empty the member number is used until changed
	PIN string `json:"pin,omitempty"`
}

// MemberResponse is the public view of a member. The TOTP secret and PIN hash
// are never included; provisioning is the only path to the secret.
type MemberResponse struct {
	ID        string `json:"id"`
	MemberNo  string `json:"member_no"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

// MemberListResponse wraps the member listing.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ApplyPaymentRequest records a payment against a member.
type ApplyPaymentRequest struct {
	// Months is the number of 30-day membership months purchased
	Months int `json:"months"`

	// AmountCents is the paid amount in cents
	AmountCents int64 `json:"amount_cents"`
}

// PaymentResponse describes one recorded payment.
type PaymentResponse struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	Months      int    `json:"months"`
	AmountCents int64  `json:"amount_cents"`
	AppliedAt   string `json:"applied_at"`
}

// ApplyPaymentResponse returns the recorded payment and the member's new
// expiration.
type ApplyPaymentResponse struct {
	Payment   PaymentResponse `json:"payment"`
	ExpiresAt string          `json:"expires_at"`
}

// ReversePaymentResponse returns the member's expiration after a reversal.
// ExpiresAt is empty when the member had no expiration to retract.
type ReversePaymentResponse struct {
	ExpiresAt string `json:"expires_at,omitempty"`
}

// PaymentListResponse wraps a member's payment history.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ProvisionRequest authenticates a member's device for secret release.
type ProvisionRequest struct {
	MemberNo string `json:"member_no"`
	PIN      string `json:"pin"`
}

// ProvisionResponse carries everything the device needs to generate codes.
// Responses are marked no-store; this is the only endpoint exposing the secret.
type ProvisionResponse struct {
	MemberID   string `json:"member_id"`
	Name       string `json:"name"`
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauth_url"`
	Status     string `json:"status"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

// AccessLogEntry is one audited validation attempt.
type AccessLogEntry struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id,omitempty"`
	Outcome   string `json:"outcome"`
	Reason    string `json:"reason,omitempty"`
	DecidedAt string `json:"decided_at"`
}

// AccessLogResponse wraps the recent decision listing.
type AccessLogResponse struct {
	Decisions []AccessLogEntry `json:"decisions"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
