package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("POSTGRES_USER", "insta")
	t.Setenv("POSTGRES_PASS", "pw")
	t.Setenv("POSTGRES_NAME", "mini_insta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, time.Minute, cfg.RateLimit.Per)
	assert.EqualValues(t, 10, cfg.Postgres.MaxConns)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "dbname=mini_insta user=insta password=pw host=localhost port=5432 sslmode=disable", cfg.GetDSN())
	assert.Equal(t, "postgres://insta:pw@localhost:5432/mini_insta?sslmode=disable", cfg.GetURL())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "restored-after-test")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	_, err := Load()
	require.Error(t, err)
}
