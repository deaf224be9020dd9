package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
)

// saveAttempts bounds retries of a retryable save failure.
const saveAttempts = 3

// postgresSnapshotBackend keeps the snapshot as one JSONB row.
type postgresSnapshotBackend struct {
	db     *DB
	logger *logger.Logger
	// retryWait is the pause between retryable save attempts.
	retryWait time.Duration
}

// NewPostgresSnapshotBackend stores the snapshot in db. Migrations must
// already be applied.
func NewPostgresSnapshotBackend(db *DB, log *logger.Logger) SnapshotBackend {
	log.Debug().Msg("creating postgres snapshot backend")
	return &postgresSnapshotBackend{
		db:        db,
		logger:    log,
		retryWait: 100 * time.Millisecond,
	}
}

func (p *postgresSnapshotBackend) Load(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSnapshotQuery()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document []byte
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		log.Err(err).Str("func", "*postgresSnapshotBackend.Load").Str("pg_code", postgresError(err)).Msg("error selecting snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeSnapshot(document)
}

func (p *postgresSnapshotBackend) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	document, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query, args, err := upsertSnapshotQuery(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = p.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if attempt >= saveAttempts || p.db.errorClassificator.Classify(err) != Retryable {
			log.Err(err).Str("func", "*postgresSnapshotBackend.Save").Int("attempt", attempt).Msg("error saving snapshot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying snapshot save")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.retryWait):
		}
	}
}

func (p *postgresSnapshotBackend) Close() error {
	return p.db.Close()
}
