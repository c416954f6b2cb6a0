// Package totpx is the time-based one-time-password engine for member
// credentials. Codes are a pure function of the shared secret and the 30
// second step containing the supplied timestamp, so both sides stay
// interoperable as long as the wire constants below never change.
package totpx

import (
	"crypto/subtle"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Wire-level constants. These must match whatever generated the member's
// secret; changing any of them breaks every previously issued credential.
const (
	Period    = 30 * time.Second
	Digits    = otp.DigitsSix
	Algorithm = otp.AlgorithmSHA1

	// DefaultWindow tolerates one step of drift on either side (±30s).
	DefaultWindow = 1
)

func validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(Period / time.Second),
		Skew:      0,
		Digits:    Digits,
		Algorithm: Algorithm,
	}
}

// Generate returns the 6-digit code for the step containing t. The only error
// path is a secret that fails base32 decoding.
func Generate(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, validateOpts())
}

// Validate checks code against every step within ±window of t and returns the
// signed step offset of the match. A persistent non-zero offset from one
// device is a clock-skew signal worth surfacing. Offsets are tried closest
// first so the common zero-drift case reports 0 even when neighbouring steps
// would also match.
//
// The comparison itself is constant-time per candidate; pquerna's
// ValidateCustom only reports a boolean, so the windowed offset search lives
// here.
func Validate(secret, code string, t time.Time, window uint) (offset int, ok bool, err error) {
	for _, off := range offsets(window) {
		candidate, err := totp.GenerateCodeCustom(secret, t.Add(time.Duration(off)*Period), validateOpts())
		if err != nil {
			return 0, false, err
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			return off, true, nil
		}
	}
	return 0, false, nil
}

// offsets returns 0, -1, +1, -2, +2, ... out to ±window.
func offsets(window uint) []int {
	out := make([]int, 0, 2*window+1)
	out = append(out, 0)
	for i := 1; i <= int(window); i++ {
		out = append(out, -i, i)
	}
	return out
}
