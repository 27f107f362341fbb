package follow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertQueryIgnoresDuplicates(t *testing.T) {
	query, args, err := InsertQuery(1, 2).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO follows (profile_id,follower_id) VALUES ($1,$2) ON CONFLICT (profile_id, follower_id) DO NOTHING",
		query,
	)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}
