package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BOT_TOKEN", "BOT_PASSWORD",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"STORE_URL", "STORE_TIMEOUT", "WORDS_PER_PAGE", "SHUFFLE_SEED",
}

// clearEnv empties every config key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		missing string
	}{
		{
			name:    "missing bot token",
			set:     map[string]string{},
			missing: "BOT_TOKEN",
		},
		{
			name:    "missing bot password",
			set:     map[string]string{"BOT_TOKEN": "test_token", "DB_PASSWORD": "x"},
			missing: "BOT_PASSWORD",
		},
		{
			name:    "missing db password",
			set:     map[string]string{"BOT_TOKEN": "test_token", "BOT_PASSWORD": "x"},
			missing: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wortschatz", cfg.Database.Name)
	assert.Equal(t, "wortschatz", cfg.Database.User)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Store.URL)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 20, cfg.WordsPerPage)
	assert.Nil(t, cfg.ShuffleSeed)
}

func TestLoad_StoreAndSession(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("STORE_URL", "http://words.internal:9000")
	t.Setenv("STORE_TIMEOUT", "2500ms")
	t.Setenv("WORDS_PER_PAGE", "12")
	t.Setenv("SHUFFLE_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://words.internal:9000", cfg.Store.URL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Store.Timeout)
	assert.Equal(t, 12, cfg.WordsPerPage)
	require.NotNil(t, cfg.ShuffleSeed)
	assert.Equal(t, uint64(42), *cfg.ShuffleSeed)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "timeout not a duration", key: "STORE_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "STORE_TIMEOUT", value: "-1s"},
		{name: "zero page size", key: "WORDS_PER_PAGE", value: "0"},
		{name: "page size not a number", key: "WORDS_PER_PAGE", value: "twenty"},
		{name: "negative seed", key: "SHUFFLE_SEED", value: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
