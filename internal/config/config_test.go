package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "agendasis"
password = "secret"
dbname = "agendasis_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/booking.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "agendasis-booking"

[auth]
token_secret = "change-me"

[notify_service]
url = "http://localhost:8090"
timeout = 5
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "agendasis_booking", cfg.Database.DBName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "change-me", cfg.Auth.TokenSecret)
	assert.Equal(t, 5, cfg.NotifyService.Timeout)
	assert.Equal(t,
		"host=localhost port=5432 user=agendasis password=secret dbname=agendasis_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s string) string
		wantErr string
	}{
		{
			name:    "missing token secret",
			mutate:  func(s string) string { return replaceLine(s, `token_secret = "change-me"`, `token_secret = ""`) },
			wantErr: "token_secret",
		},
		{
			name:    "missing database host",
			mutate:  func(s string) string { return replaceLine(s, `host = "localhost"`, `host = ""`) },
			wantErr: "database.host",
		},
		{
			name:    "invalid port",
			mutate:  func(s string) string { return replaceLine(s, "http_port = 8080", "http_port = 0") },
			wantErr: "http_port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func replaceLine(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}
