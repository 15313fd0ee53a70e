package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TIMEOUT",
		"UPLOAD_PATH", "MAX_FILE_SIZE", "UPLOAD_RETENTION", "SWEEP_INTERVAL", "DB_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, time.Duration(0), cfg.Storage.Retention)
	assert.Equal(t, 10*time.Minute, cfg.Storage.SweepInterval)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("UPLOAD_RETENTION", "24h")
	t.Setenv("SWEEP_INTERVAL", "5m")
	t.Setenv("DB_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 24*time.Hour, cfg.Storage.Retention)
	assert.Equal(t, 5*time.Minute, cfg.Storage.SweepInterval)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("GEMINI_TIMEOUT", "soon")
	t.Setenv("DB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.Database.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Gemini:  GeminiConfig{APIKey: "key"},
			Storage: StorageConfig{MaxFileSize: 1024, SweepInterval: time.Minute},
		}
	}

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing api key fails fast", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.APIKey = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
	})

	t.Run("non-positive max file size", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.MaxFileSize = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative retention", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Retention = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("retention without sweep interval", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Retention = time.Hour
		cfg.Storage.SweepInterval = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "resumes",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=resumes sslmode=disable", cfg.GetDatabaseDSN())
}
