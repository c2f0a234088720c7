package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Location.String())
	assert.Equal(t, 480, cfg.Defaults.ExpectedMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Defaults.WorkDays)
	assert.Equal(t, "1.5", cfg.Defaults.OvertimeMultiplier.String())
	assert.Equal(t, "21.66", cfg.Defaults.MonthlyWorkDays.String())
	assert.Equal(t, 7, cfg.Sweep.LookbackDays)
}

func TestLoad_OverridesEngineDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DEFAULT_EXPECTED_MINUTES", "420")
	t.Setenv("DEFAULT_WORK_DAYS", "1, 2, 3, 4, 5, 6")
	t.Setenv("DEFAULT_HOLIDAY_MULTIPLIER", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 420, cfg.Defaults.ExpectedMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cfg.Defaults.WorkDays)
	assert.Equal(t, "3", cfg.Defaults.HolidayMultiplier.String())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without password": {"STORAGE_DRIVER": "postgres", "DB_PASSWORD": ""},
		"unknown driver":            {"STORAGE_DRIVER": "sqlite"},
		"bad timezone":              {"STORAGE_DRIVER": "memory", "APP_TIMEZONE": "Mars/Olympus"},
		"bad work day":              {"STORAGE_DRIVER": "memory", "DEFAULT_WORK_DAYS": "1,8"},
		"bad multiplier":            {"STORAGE_DRIVER": "memory", "DEFAULT_OVERTIME_MULTIPLIER": "x"},
		"bad interval":              {"STORAGE_DRIVER": "memory", "SWEEP_INTERVAL": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "worktime", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@db:5433/worktime?sslmode=disable", cfg.DatabaseURL())
}
