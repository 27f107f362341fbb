package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery(t *testing.T) {
	query, args, err := SearchQuery("cat").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, profile_id, caption, created_at FROM posts WHERE strpos(caption, $1) > 0 ORDER BY created_at DESC, id ASC",
		query,
	)
	assert.Equal(t, []any{"cat"}, args)
}
