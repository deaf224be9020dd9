package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	snapshotsTable = "snapshots"
	// snapshotRowID is the id of the only row in snapshots.
	snapshotRowID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectSnapshotQuery builds
// SELECT document FROM snapshots WHERE id = $1.
func selectSnapshotQuery() (string, []any, error) {
	return psql.
		Select("document").
		From(snapshotsTable).
		Where(sq.Eq{"id": snapshotRowID}).
		ToSql()
}

// upsertSnapshotQuery builds an INSERT of the single row that replaces the
// document when the row exists.
func upsertSnapshotQuery(document []byte) (string, []any, error) {
	return psql.
		Insert(snapshotsTable).
		Columns("id", "document", "updated_at").
		Values(snapshotRowID, document, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
}
