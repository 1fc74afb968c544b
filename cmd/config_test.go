package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		HTTPPort:               "8080",
		DBName:                 "storefront",
		JWTSecret:              "secret",
		SLAWindow:              2 * time.Minute,
		SLASweepInterval:       30 * time.Second,
		DispatchInterval:       15 * time.Second,
		DispatchBatch:          50,
		KafkaOrderChangedTopic: "order.changed",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 2*time.Minute, cfg.SLAWindow)
	assert.Equal(t, 30*time.Second, cfg.SLASweepInterval)
	assert.Equal(t, 15*time.Second, cfg.DispatchInterval)
	assert.Equal(t, 50, cfg.DispatchBatch)
	assert.Equal(t, "order.changed", cfg.KafkaOrderChangedTopic)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.KafkaHost)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_NAME=from_file\nJWT_SECRET=file-secret\nSLA_WINDOW=10m\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv writes into the process environment; keep it out of other tests.
	for _, key := range []string{"DB_NAME", "SLA_WINDOW"} {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	// Variables that are already set win over the file.
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from_file", cfg.DBName)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 10*time.Minute, cfg.SLAWindow)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"sweep at half window", func(c *Config) { c.SLASweepInterval = time.Minute }, nil},
		{"sweep longer than half window", func(c *Config) { c.SLASweepInterval = 61 * time.Second }, errs.ErrValueIsOutOfRange},
		{"zero window", func(c *Config) { c.SLAWindow = 0 }, errs.ErrValueIsInvalid},
		{"zero batch", func(c *Config) { c.DispatchBatch = 0 }, errs.ErrValueIsInvalid},
		{"kafka without topic", func(c *Config) {
			c.KafkaHost = "kafka:9092"
			c.KafkaOrderChangedTopic = ""
		}, errs.ErrValueIsRequired},
		{"no database", func(c *Config) { c.DBName = "" }, errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
