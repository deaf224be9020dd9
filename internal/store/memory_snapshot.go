package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-table-order/models"
)

// memorySnapshotBackend keeps the encoded snapshot in memory. It round-trips
// through the same JSON codec as the file backend.
type memorySnapshotBackend struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemorySnapshotBackend returns an empty in-memory backend.
func NewMemorySnapshotBackend() SnapshotBackend {
	return &memorySnapshotBackend{}
}

func (m *memorySnapshotBackend) Load(ctx context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return decodeSnapshot(m.payload)
}

func (m *memorySnapshotBackend) Save(ctx context.Context, snapshot models.Snapshot) error {
	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
	return nil
}

func (m *memorySnapshotBackend) Close() error {
	return nil
}
