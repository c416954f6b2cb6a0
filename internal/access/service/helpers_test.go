package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/internal/access/store/drivers/sqlite"
	"github.com/barzolagym/gymos/pkg/cryptox"
	"github.com/barzolagym/gymos/pkg/idx"
	"github.com/stretchr/testify/require"
)

// testSecret is a well-known base32 TOTP secret used across the tests.
const testSecret = "JBSWY3DPEHPK3PXP"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "gymos-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedMember inserts a member directly, bypassing enrollment, so ledger and
// validator tests control every field.
func seedMember(t *testing.T, st store.Store, memberNo string, expiresAt *time.Time) domain.Member {
	t.Helper()

	now := time.Now().UTC()
	member := domain.Member{
		ID:         idx.New().String(),
		MemberNo:   memberNo,
		Name:       "Test Member " + memberNo,
		PINHash:    "unused",
		TOTPSecret: testSecret,
		ExpiresAt:  expiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Members().CreateMember(context.Background(), member))
	return member
}

func timePtr(t time.Time) *time.Time { return &t }

func uintPtr(v uint) *uint { return &v }
