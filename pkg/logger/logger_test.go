package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.WithComponent("GraphService").Info("Follow created", "profile_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Follow created", line["message"])
	assert.Equal(t, "GraphService", line["component"])
	assert.EqualValues(t, 7, line["profile_id"])
}

func TestProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.Debug("noisy")

	assert.Empty(t, buf.String())
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "development", Output: &buf})

	log.Printf("PROVIDE %s", "config")

	assert.Contains(t, buf.String(), "PROVIDE config")
}
