package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectSnapshotSQL = regexp.QuoteMeta("SELECT document FROM snapshots WHERE id = $1")
	upsertSnapshotSQL = regexp.QuoteMeta("INSERT INTO snapshots")
)

func newTestPostgresBackend(t *testing.T) (*postgresSnapshotBackend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	backend := &postgresSnapshotBackend{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return backend, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresSnapshotBackend_Load(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	rows := sqlmock.NewRows([]string{"document"}).
		AddRow([]byte(`{"admin":{"username":"admin"},"tables":[{"id":4,"pinHash":"$2a$10$x"}],"orders":[]}`))
	mock.ExpectQuery(selectSnapshotSQL).WithArgs(1).WillReturnRows(rows)

	snap, err := backend.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap.Admin)
	assert.Equal(t, "admin", snap.Admin.Username)
	table, ok := snap.FindTable(4)
	require.True(t, ok)
	assert.Equal(t, "$2a$10$x", table.PinHash)
	assert.NotNil(t, snap.Orders)
}

func TestPostgresSnapshotBackend_LoadNoRows(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectQuery(selectSnapshotSQL).WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	_, err := backend.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestPostgresSnapshotBackend_LoadCorrupt(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectQuery(selectSnapshotSQL).WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(`[1,2,3]`)))

	_, err := backend.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestPostgresSnapshotBackend_LoadQueryError(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectQuery(selectSnapshotSQL).WithArgs(1).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := backend.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPostgresSnapshotBackend_Save(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectExec(upsertSnapshotSQL).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := backend.Save(context.Background(), models.NewSnapshot())
	assert.NoError(t, err)
}

func TestPostgresSnapshotBackend_SaveRetriesTransientErrors(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectExec(upsertSnapshotSQL).WithArgs(1, sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec(upsertSnapshotSQL).WithArgs(1, sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec(upsertSnapshotSQL).WithArgs(1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := backend.Save(context.Background(), models.NewSnapshot())
	assert.NoError(t, err)
}

func TestPostgresSnapshotBackend_SaveGivesUpAfterAttempts(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	for range saveAttempts {
		mock.ExpectExec(upsertSnapshotSQL).WithArgs(1, sqlmock.AnyArg()).
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := backend.Save(context.Background(), models.NewSnapshot())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPostgresSnapshotBackend_SaveDoesNotRetryPermanentErrors(t *testing.T) {
	backend, mock := newTestPostgresBackend(t)

	mock.ExpectExec(upsertSnapshotSQL).WithArgs(1, sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.CheckViolation))

	err := backend.Save(context.Background(), models.NewSnapshot())
	require.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.CheckViolation, pgErr.Code)
}
