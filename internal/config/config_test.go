package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Africa/Johannesburg", cfg.App.Timezone)
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, "ncl_", cfg.Session.KeyPrefix)
	assert.Equal(t, LedgerDriverMemory, cfg.Ledger.Driver)
	assert.Equal(t, time.Second, cfg.Timekeeping.ClockInterval)
	assert.Equal(t, 12*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "Africa/Johannesburg", cfg.Location().String())
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET_KEY": ""}},
		{"bad port", map[string]string{"APP_PORT": "eighty"}},
		{"bad clock interval", map[string]string{"CLOCK_INTERVAL": "soon"}},
		{"zero clock interval", map[string]string{"CLOCK_INTERVAL": "0s"}},
		{"unknown session driver", map[string]string{"SESSION_DRIVER": "cookie"}},
		{"postgres without password", map[string]string{"LEDGER_DRIVER": "postgres", "DB_PASSWORD": ""}},
		{"bad timezone", map[string]string{"APP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "secret")
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_PostgresLedger(t *testing.T) {
	cfg := &Config{
		App:         AppConfig{Timezone: "UTC"},
		JWT:         JWTConfig{Secret: "secret", AccessExpiration: time.Hour},
		Session:     SessionConfig{Driver: SessionDriverRedis},
		Redis:       RedisConfig{Addr: "localhost:6379"},
		Ledger:      LedgerConfig{Driver: LedgerDriverPostgres},
		Database:    DatabaseConfig{User: "postgres", Password: "pw", Host: "db", Port: 5432, Name: "ncl", SSLMode: "disable"},
		Timekeeping: TimekeepingConfig{ClockInterval: time.Second},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "postgres://postgres:pw@db:5432/ncl?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "debug"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
