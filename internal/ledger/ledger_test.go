package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/config"
	"github.com/fazetdev/zimam-delivery/internal/database"
	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// testLogbook returns a logbook on a fresh database with a controllable
// clock, initially 2026-03-14 09:30.
func testLogbook(t *testing.T) (*Logbook, func(time.Time)) {
	t.Helper()
	s := store.New(testDB(t), zap.NewNop(), "zimam-logbook-storage",
		func(d *models.Delivery) string { return d.ID })
	s.Load()

	lb := NewLogbook(s)
	current := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	lb.now = func() time.Time { return current }
	return lb, func(tm time.Time) { current = tm }
}

// testWallet is the wallet counterpart of testLogbook.
func testWallet(t *testing.T) (*Wallet, func(time.Time)) {
	t.Helper()
	s := store.New(testDB(t), zap.NewNop(), "zimam-wallet-storage",
		func(tx *models.Transaction) string { return tx.ID })
	s.Load()

	w := NewWallet(s)
	current := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	w.now = func() time.Time { return current }
	return w, func(tm time.Time) { current = tm }
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func assertDec(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %d, got %s", want, got)
}
