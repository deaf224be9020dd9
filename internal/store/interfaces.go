package store

import (
	"context"

	"github.com/MKhiriev/go-table-order/models"
)

// SnapshotBackend loads and saves the whole application snapshot as one
// document.
type SnapshotBackend interface {
	// Load returns the stored snapshot, ErrSnapshotNotFound when nothing has
	// been stored yet, or ErrCorruptSnapshot when the document is unreadable.
	Load(ctx context.Context) (models.Snapshot, error)
	// Save replaces the stored snapshot. A reader never observes a partially
	// written document.
	Save(ctx context.Context, snapshot models.Snapshot) error
	Close() error
}

// StateStore serializes every read-modify-write of the snapshot.
type StateStore interface {
	// Read returns a copy of the current snapshot.
	Read(ctx context.Context) (models.Snapshot, error)
	// Update loads the current snapshot, applies fn to it and saves the
	// result. When fn returns an error nothing is saved and the error is
	// returned unchanged. The saved snapshot is returned.
	Update(ctx context.Context, fn func(*models.Snapshot) error) (models.Snapshot, error)
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
