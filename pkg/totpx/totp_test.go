package totpx_test

import (
	"testing"
	"time"

	"github.com/barzolagym/gymos/pkg/totpx"
	"github.com/stretchr/testify/require"
)

const testSecret = "JBSWY3DPEHPK3PXP"

func TestGenerateIsDeterministicPerStep(t *testing.T) {
	t.Parallel()

	base := time.Unix(1700000010, 0).UTC() // 10s into a step

	code, err := totpx.Generate(testSecret, base)
	require.NoError(t, err)
	require.Len(t, code, 6)

	// Same step, different instant: same code.
	again, err := totpx.Generate(testSecret, base.Add(15*time.Second))
	require.NoError(t, err)
	require.Equal(t, code, again)

	// Next step: different code (astronomically unlikely to collide, and
	// deterministic for this fixed secret/time anyway).
	next, err := totpx.Generate(testSecret, base.Add(totpx.Period))
	require.NoError(t, err)
	require.NotEqual(t, code, next)
}

func TestValidateRoundTripZeroWindow(t *testing.T) {
	t.Parallel()

	for _, ts := range []int64{0, 59, 1700000000, 2000000000} {
		now := time.Unix(ts, 0).UTC()
		code, err := totpx.Generate(testSecret, now)
		require.NoError(t, err)

		offset, ok, err := totpx.Validate(testSecret, code, now, 0)
		require.NoError(t, err)
		require.True(t, ok, "code generated at %d must match at %d", ts, ts)
		require.Equal(t, 0, offset)
	}
}

func TestValidateWindowBoundary(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0).UTC()

	for window := uint(0); window <= 3; window++ {
		// A code from one step beyond the window never matches.
		beyond := now.Add(time.Duration(window+1) * totpx.Period)
		code, err := totpx.Generate(testSecret, beyond)
		require.NoError(t, err)

		_, ok, err := totpx.Validate(testSecret, code, now, window)
		require.NoError(t, err)
		require.False(t, ok, "code %d steps ahead must not match with window %d", window+1, window)

		// A code from exactly the window edge does.
		edge := now.Add(time.Duration(window) * totpx.Period)
		code, err = totpx.Generate(testSecret, edge)
		require.NoError(t, err)

		offset, ok, err := totpx.Validate(testSecret, code, now, window)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, int(window), offset)
	}
}

func TestValidateReportsSignedOffset(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0).UTC()

	// Code from the immediately-prior step: client clock running slow.
	stale, err := totpx.Generate(testSecret, now.Add(-totpx.Period))
	require.NoError(t, err)

	offset, ok, err := totpx.Validate(testSecret, stale, now, 1)
	require.NoError(t, err)
	require.True(t, ok, "30s-old code must validate under window 1")
	require.Equal(t, -1, offset)

	// The same code fails under window 0.
	_, ok, err = totpx.Validate(testSecret, stale, now, 0)
	require.NoError(t, err)
	require.False(t, ok, "30s-old code must not validate under window 0")
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0).UTC()

	_, ok, err := totpx.Validate(testSecret, "000000", now, 1)
	require.NoError(t, err)
	// "000000" could in principle be the real code for some step, but not
	// for this fixed secret and timestamp.
	require.False(t, ok)

	_, _, err = totpx.Validate("not!base32!!", "123456", now, 1)
	require.Error(t, err, "undecodable secret is an engine error, not a mismatch")
}
