package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-sign-key-0123456789abcdef"

// testNow is the fixed clock of every service test.
var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:       testSignKey,
		TokenIssuer:        "go-table-order-test",
		SessionDuration:    time.Hour,
		TableTokenDuration: 2 * time.Hour,
		AdminUsername:      "admin",
		AdminPassword:      "s3cret-password",
		BcryptCost:         bcrypt.MinCost,
	}
}

func ptr[T any](v T) *T {
	return &v
}

// newTestStore returns an in-memory state store seeded with snap.
func newTestStore(t *testing.T, snap models.Snapshot) store.StateStore {
	t.Helper()
	s := store.NewStateStore(store.NewMemorySnapshotBackend(), logger.Nop())
	_, err := s.Update(context.Background(), func(cur *models.Snapshot) error {
		*cur = snap
		if cur.Tables == nil {
			cur.Tables = []models.Table{}
		}
		if cur.Orders == nil {
			cur.Orders = []models.Order{}
		}
		return nil
	})
	require.NoError(t, err)
	return s
}

func hashOf(t *testing.T, secret string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// countingStore counts the Update calls that reached the backend.
type countingStore struct {
	store.StateStore
	updates int
}

func (c *countingStore) Update(ctx context.Context, fn func(*models.Snapshot) error) (models.Snapshot, error) {
	snap, err := c.StateStore.Update(ctx, fn)
	if err == nil {
		c.updates++
	}
	return snap, err
}
