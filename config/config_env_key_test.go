package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl":   "",
			"userAgent": "",
		},
		"storage": map[string]any{
			"credentialsPath": "",
		},
		"backend": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_USERAGENT", want: "api.userAgent"},
		{envKey: "STORAGE_CREDENTIALSPATH", want: "storage.credentialsPath"},
		{envKey: "BACKEND_TOKENTTL", want: "backend.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testYAML = `
env:
  serviceName: snapdish
  log:
    level: debug
api:
  baseUrl: http://127.0.0.1:8000
storage:
  imageDir: /tmp/images
  credentialsPath: /tmp/creds.db
  timezone: Europe/Warsaw
backend:
  port: 8000
`

func TestLoadWithEnv_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapdish-test.yaml"), []byte(testYAML), 0o600))

	t.Chdir(dir)
	t.Setenv("SNAPDISHTEST_API_BASEURL", "http://backend.local:9000")
	t.Setenv("SNAPDISHTEST_BACKEND_TOKENTTL", "90m")

	cfg, err := LoadWithEnv[Config]("snapdish-test", "SNAPDISHTEST_")
	require.NoError(t, err)

	cfg, err = finalize(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://backend.local:9000", cfg.API.BaseURL)
	assert.Equal(t, defaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, defaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, 90*time.Minute, cfg.Backend.TokenTTL)
	assert.Equal(t, StoreMemory, cfg.Backend.Store)
	assert.Equal(t, "debug", cfg.Env.Log.Level)

	loc, err := cfg.Storage.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Warsaw", loc.String())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent", defaultEnvPrefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestFinalize_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		API:     &APIConfig{BaseURL: "not a url"},
		Storage: &StorageConfig{ImageDir: "img", CredentialsPath: "c.db"},
	}
	_, err := finalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	cfg.API.BaseURL = "http://127.0.0.1:8000"
	cfg.Storage.Timezone = "Nowhere/Atlantis"
	_, err = finalize(cfg)
	require.Error(t, err)
}

func TestFinalize_PostgresStoreNeedsSection(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		API:     &APIConfig{BaseURL: "http://127.0.0.1:8000"},
		Storage: &StorageConfig{ImageDir: "img", CredentialsPath: "c.db"},
		Backend: &BackendConfig{Store: StorePostgres},
	}
	_, err := finalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres section is missing")

	cfg.Backend.Store = "cassandra"
	_, err = finalize(cfg)
	require.Error(t, err)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("SNAPDISHTEST_REPLICAS_0_HOST", "replica-a")
	t.Setenv("SNAPDISHTEST_REPLICAS_0_PORT", "5432")
	t.Setenv("SNAPDISHTEST_REPLICAS_0_USERNAME", "reader")
	t.Setenv("SNAPDISHTEST_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv("SNAPDISHTEST_REPLICAS_")
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
