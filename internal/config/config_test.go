package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"LOG_MODE",
	"SERVER_PORT",
	"OUTPUT_DIR",
	"MAX_WORKERS",
	"MAX_PER_HOST",
	"REQUEST_TIMEOUT",
	"MAX_RETRIES",
	"RETRY_BACKOFF",
	"UPGRADE_HTTPS",
	"USER_AGENT",
}

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configKeys {
			os.Unsetenv(key)
		}
	})
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp .env file: %v", err)
	}
	return path
}

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   []string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name:    "AllVariablesPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
				os.Setenv("TEST_VAR_2", "value2")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
				os.Unsetenv("TEST_VAR_2")
			},
			wantError: false,
		},
		{
			name:    "OneVariableMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
		{
			name:    "VariablePresentButEmpty",
			envVars: []string{"TEST_VAR_1"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := checkEnv(tt.envVars)
			if (err != nil) != tt.wantError {
				t.Errorf("checkEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
	}{
		{
			name: "AllRequiredVariablesPresent",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
			},
			wantError: false,
		},
		{
			name: "MissingServerPort",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)
			tt.setup()

			err := validateEnv()
			if (err != nil) != tt.wantError {
				t.Errorf("validateEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestStringToInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "ValidNumber",
			input: "42",
			want:  42,
		},
		{
			name:  "InvalidNumber",
			input: "not_a_number",
			want:  0,
		},
		{
			name:  "EmptyString",
			input: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringToInt(tt.input))
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetConfigEnv(t)
	envPath := writeEnvFile(t, "LOG_MODE=debug\nSERVER_PORT=8080\n")

	cfg, err := LoadConfig(envPath)

	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogMode)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultMaxWorkers, cfg.MaxWorkers)
	assert.Equal(t, DefaultMaxPerHost, cfg.MaxPerHost)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, DefaultRetryBackoff, cfg.RetryBackoff)
	assert.False(t, cfg.UpgradeHTTPS)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

func TestLoadConfig_Overrides(t *testing.T) {
	unsetConfigEnv(t)
	envPath := writeEnvFile(t, `LOG_MODE=release
SERVER_PORT=9090
OUTPUT_DIR=/tmp/imgs
MAX_WORKERS=3
MAX_PER_HOST=2
REQUEST_TIMEOUT=5s
MAX_RETRIES=2
RETRY_BACKOFF=100ms
UPGRADE_HTTPS=true
USER_AGENT=test-agent
`)

	cfg, err := LoadConfig(envPath)

	assert.NoError(t, err)
	assert.Equal(t, "/tmp/imgs", cfg.OutputDir)
	assert.Equal(t, 3, cfg.MaxWorkers)
	assert.Equal(t, 2, cfg.MaxPerHost)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryBackoff)
	assert.True(t, cfg.UpgradeHTTPS)
	assert.Equal(t, "test-agent", cfg.UserAgent)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		envFile func(t *testing.T) string
	}{
		{
			name:    "missing env file",
			envFile: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nonexistent_file") },
		},
		{
			name:    "empty env file path",
			envFile: func(t *testing.T) string { return "" },
		},
		{
			name:    "missing required variable",
			envFile: func(t *testing.T) string { return writeEnvFile(t, "LOG_MODE=debug\n") },
		},
		{
			name: "bad timeout",
			envFile: func(t *testing.T) string {
				return writeEnvFile(t, "LOG_MODE=debug\nSERVER_PORT=8080\nREQUEST_TIMEOUT=soon\n")
			},
		},
		{
			name: "bad https flag",
			envFile: func(t *testing.T) string {
				return writeEnvFile(t, "LOG_MODE=debug\nSERVER_PORT=8080\nUPGRADE_HTTPS=maybe\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)

			cfg, err := LoadConfig(tt.envFile(t))

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
