package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
  port: 5433
  user: patio
  password: secret
  database: patio
rabbitmq:
  host: mq.internal
  user: guest
  password: guest
roles:
  kitchen:
    - kitchen@patio.example
  admin:
    - manager@patio.example
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "patio", cfg.Database.Database)

	// omitted fields fall back to defaults
	assert.Equal(t, 5672, cfg.RabbitMQ.Port)
	assert.Equal(t, "/", cfg.RabbitMQ.VHost)

	assert.Equal(t, []string{"kitchen@patio.example"}, cfg.Roles.Kitchen)
	assert.Equal(t, []string{"manager@patio.example"}, cfg.Roles.Admin)
}

func TestLoadConfigIncomplete(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
rabbitmq:
  host: mq.internal
  user: guest
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database config incomplete")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "database: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
