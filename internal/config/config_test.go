package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimal = `
[database]
host = "localhost"
user = "consult"
dbname = "consultations"

[auth]
jwt_secret = "from-file"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, uint64(2), cfg.Database.ReadRetries)
	assert.Equal(t, "07:00", cfg.Grid.Start)
	assert.Equal(t, 75, cfg.Grid.IntervalMinutes)
	assert.Equal(t, 14, cfg.Booking.HorizonWeekdays)
	assert.Equal(t, NotificationDisabled, cfg.Notification.Mode)

	grid, err := cfg.BuildGrid()
	require.NoError(t, err)
	assert.Len(t, grid.Pairs(), 11)
}

func TestLoad_EnvSecretsOverrideFile(t *testing.T) {
	t.Setenv(envJWTSecret, "from-env")
	t.Setenv(envDBPassword, "s3cret")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), ":s3cret@")
}

func TestDSN_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "consult user",
		Password: "p@ss w'rd/#?",
		DBName:   "consultations",
		SSLMode:  "require",
	}

	u, err := url.Parse(d.DSN())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/consultations", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "consult user", u.User.Username())
	password, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss w'rd/#?", password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing database", body: `[auth]
jwt_secret = "x"`},
		{name: "no secret", body: `[database]
host = "h"
user = "u"
dbname = "d"`},
		{name: "grid end unreachable", body: minimal + `
[grid]
start = "07:00"
end = "20:00"
interval_minutes = 75`},
		{name: "bad timezone", body: minimal + `
[booking]
timezone = "Mars/Olympus"`},
		{name: "http mode without url", body: minimal + `
[notification]
mode = "http"`},
		{name: "unknown mode", body: minimal + `
[notification]
mode = "pigeon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
