package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "morse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray morse.yaml is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "international", cfg.Alphabet)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, "morse:translation:", cfg.Redis.Prefix)
	assert.Equal(t, TransportStdio, cfg.MCP.Transport)
	assert.Equal(t, 8081, cfg.MCP.Port)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
alphabet: legacy
log_level: debug
max_input_size: 2048
http:
  addr: 127.0.0.1:9000
metrics:
  enabled: false
cache:
  backend: redis
  ttl: 90s
redis:
  addr: redis:6379
  db: 2
mcp:
  transport: sse
  port: 7000
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Alphabet)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2048, cfg.MaxInputSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 1024, cfg.Cache.Size, "unset keys keep defaults")
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, TransportSSE, cfg.MCP.Transport)
	assert.Equal(t, 7000, cfg.MCP.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "cache:\n  backend: none\n  ttl: 1m\n")
	t.Setenv("MORSE_CACHE_TTL", "5m")
	t.Setenv("MORSE_HTTP_ADDR", ":9999")
	t.Setenv("MORSE_METRICS_ENABLED", "false")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.False(t, cfg.Metrics.Enabled)
}

const testKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func TestLoad_EncryptionKeys(t *testing.T) {
	path := writeConfig(t, "cache:\n  encryption_key: "+testKey+"\n  fallback_keys:\n    - "+testKey+"\n")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, testKey, cfg.Cache.EncryptionKey)
	assert.Equal(t, []string{testKey}, cfg.Cache.FallbackKeys)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MORSE_ALPHABET", "legacy")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("alphabet", "", "")
	require.NoError(t, flags.Parse([]string{"--alphabet", "itu"}))

	v := New()
	require.NoError(t, v.BindPFlag(KeyAlphabet, flags.Lookup("alphabet")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "itu", cfg.Alphabet)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Unknown Cache Backend", "cache:\n  backend: memcached\n"},
		{"Unknown Transport", "mcp:\n  transport: websocket\n"},
		{"Bad Log Level", "log_level: loud\n"},
		{"Negative Size", "max_input_size: -1\n"},
		{"Bad Duration", "cache:\n  ttl: soon\n"},
		{"Short Encryption Key", "cache:\n  encryption_key: c2hvcnQ=\n"},
		{"Fallback Without Active Key", "cache:\n  fallback_keys: [" + testKey + "]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("Missing Explicit File", func(t *testing.T) {
		_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate_Sentinel(t *testing.T) {
	cfg := &Config{LogLevel: "info", Cache: CacheConfig{Backend: "disk"}, MCP: MCPConfig{Transport: TransportStdio}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
