package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
)

// memoryDSN selects the in-memory backend, used by tests and demos.
const memoryDSN = "memory"

// NewStorage opens the backend selected by cfg and wraps it in a
// [StateStore]:
//   - DB.DSN == "memory": in-memory snapshot
//   - DB.DSN set: PostgreSQL, after applying migrations
//   - otherwise: the JSON file at DataFile
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (StateStore, error) {
	backend, err := newBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return NewStateStore(backend, log), nil
}

func newBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (SnapshotBackend, error) {
	switch cfg.DB.DSN {
	case memoryDSN:
		log.Info().Msg("using in-memory snapshot storage")
		return NewMemorySnapshotBackend(), nil
	case "":
		log.Info().Str("path", cfg.DataFile).Msg("using file snapshot storage")
		return NewFileSnapshotBackend(cfg.DataFile, log), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Msg("using postgres snapshot storage")
	return NewPostgresSnapshotBackend(db, log), nil
}
