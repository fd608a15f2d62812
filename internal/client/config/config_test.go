package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendLocal, c.Backend)
	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "wellfinder.db", c.LocalDSN)
	assert.Equal(t, time.Duration(0), c.SimulatedLatency)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-m", "remote", "-a", "http://api:9090", "-r", "5", "-d", "/tmp/x.db", "-l", "250"}

	config := &Config{}
	require.NotPanics(t, func() { parseFlags(config) })

	assert.Equal(t, BackendRemote, config.Backend)
	assert.Equal(t, "http://api:9090", config.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, config.RequestTimeout)
	assert.Equal(t, "/tmp/x.db", config.LocalDSN)
	assert.Equal(t, 250*time.Millisecond, config.SimulatedLatency)
}

func TestParseFlags_KeepsExistingValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-m", "remote"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, BackendRemote, config.Backend)
	assert.Equal(t, "http://127.0.0.1:8080", config.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, config.RequestTimeout)
}
