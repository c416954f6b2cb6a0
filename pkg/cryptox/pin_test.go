package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	tmpDir := os.TempDir()
	pepperPath := filepath.Join(tmpDir, "gymos-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPIN(t *testing.T) {
	tests := []struct {
		name string
		pin  string
	}{
		{"numeric pin", "4821"},
		{"member number as pin", "12345678"},
		{"long pin", strings.Repeat("9", 32)},
		{"empty pin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPIN(tt.pin)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// Verify PHC format
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
		})
	}
}

func TestHashPINUniqueSalts(t *testing.T) {
	a, err := HashPIN("4821")
	require.NoError(t, err)
	b, err := HashPIN("4821")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "same pin must hash differently per salt")
}

func TestVerifyPIN(t *testing.T) {
	hash, err := HashPIN("4821")
	require.NoError(t, err)

	t.Run("accepts the right pin", func(t *testing.T) {
		require.NoError(t, VerifyPIN("4821", hash))
	})

	t.Run("rejects the wrong pin", func(t *testing.T) {
		require.ErrorIs(t, VerifyPIN("0000", hash), ErrPINMismatch)
	})

	t.Run("rejects malformed hashes", func(t *testing.T) {
		err := VerifyPIN("4821", "$argon2id$broken")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPINMismatch)
	})
}
