package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotBackend_MissingFile(t *testing.T) {
	b := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "data.json"), logger.Nop())

	_, err := b.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestFileSnapshotBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	b := NewFileSnapshotBackend(path, logger.Nop())
	ctx := context.Background()

	created := time.Date(2026, 2, 14, 19, 30, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Admin = &models.AdminAccount{Username: "admin", PasswordHash: "$2a$10$hash"}
	snap.Tables = append(snap.Tables, models.Table{ID: 2, Name: "Patio", PinHash: "$2a$10$pin"})
	snap.Orders = append(snap.Orders, models.Order{
		ID:        "0190",
		TableID:   2,
		Items:     []models.OrderItem{{Name: "Pizza", Qty: 2, Price: 8.5}},
		Total:     17,
		CreatedAt: created,
	})

	require.NoError(t, b.Save(ctx, snap))

	loaded, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSnapshotBackend_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	b := NewFileSnapshotBackend(path, logger.Nop())

	require.NoError(t, b.Save(context.Background(), models.Snapshot{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `[]`, string(doc["tables"]))
	assert.JSONEq(t, `[]`, string(doc["orders"]))
	assert.JSONEq(t, `null`, string(doc["admin"]))
}

func TestFileSnapshotBackend_CorruptFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tables": [`), 0o600))
	b := NewFileSnapshotBackend(path, logger.Nop())

	_, err := b.Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptSnapshot)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"tables": [`, string(raw))
}

func TestFileSnapshotBackend_EmptyFileIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewFileSnapshotBackend(path, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestFileSnapshotBackend_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := NewFileSnapshotBackend(filepath.Join(dir, "data.json"), logger.Nop())

	for range 3 {
		require.NoError(t, b.Save(context.Background(), models.NewSnapshot()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestFileSnapshotBackend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "data.json"), logger.Nop())
	assert.ErrorIs(t, b.Save(ctx, models.NewSnapshot()), context.Canceled)
}
