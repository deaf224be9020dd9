package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSnapshotQuery(t *testing.T) {
	query, args, err := selectSnapshotQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT document FROM snapshots WHERE id = $1", query)
	assert.Equal(t, []any{snapshotRowID}, args)
}

func TestUpsertSnapshotQuery(t *testing.T) {
	doc := []byte(`{"tables":[]}`)

	query, args, err := upsertSnapshotQuery(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO snapshots (id,document,updated_at) VALUES ($1,$2,NOW())"), query)
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document")
	require.Len(t, args, 2)
	assert.Equal(t, snapshotRowID, args[0])
	assert.Equal(t, doc, args[1])
}
