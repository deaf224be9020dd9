package store

import "errors"

// Sentinel errors returned by snapshot backends and the state store.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure to read or write the snapshot.
	ErrStorage = errors.New("storage error")

	// ErrSnapshotNotFound is returned by a backend that has never been
	// written. The state store answers it by bootstrapping a default
	// snapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrCorruptSnapshot is returned when the stored document cannot be
	// decoded. A corrupt snapshot is never overwritten automatically.
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the PostgreSQL backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
