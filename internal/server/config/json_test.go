package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	content := `{
		"endpoint_addr_http": ":8088",
		"database_dsn": "postgres://json:json@db:5432/auth",
		"secret_key": "json-secret",
		"token_validity_duration": "45m",
		"bcrypt_cost": 11,
		"max_db_connections": 15,
		"cors_allowed_origins": ["https://app.example"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"prog", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddrHTTP, ":8088")
	assert.Equal(t, c.DatabaseDSN, "postgres://json:json@db:5432/auth")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.TokenValidityDuration, 45*time.Minute)
	assert.Equal(t, c.BcryptCost, 11)
	assert.Equal(t, c.MaxDBConnections, 15)
	assert.Equal(t, c.CORSAllowedOrigins, []string{"https://app.example"})
}

func TestParseJson_NoFileFlag_NoChange(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"prog"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddrHTTP, ":3000")
	assert.Equal(t, c.SecretKey, "secretKey")
}
