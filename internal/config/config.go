// Package config loads CLI settings from defaults, a YAML file, MORSE_*
// environment variables and bound flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/morse/internal/logging"
	"github.com/aretw0/morse/pkg/persistence/middleware"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	configFileName = "morse"
	configFileType = "yaml"
	envPrefix      = "MORSE"
)

// Config keys.
const (
	KeyAlphabet       = "alphabet"
	KeyLogLevel       = "log_level"
	KeyMaxInputSize   = "max_input_size"
	KeyHTTPAddr       = "http.addr"
	KeyMetricsEnabled = "metrics.enabled"
	KeyCacheBackend   = "cache.backend"
	KeyCacheTTL       = "cache.ttl"
	KeyCacheSize      = "cache.size"
	KeyCacheKey       = "cache.encryption_key"
	KeyCacheOldKeys   = "cache.fallback_keys"
	KeyRedisAddr      = "redis.addr"
	KeyRedisPassword  = "redis.password"
	KeyRedisDB        = "redis.db"
	KeyRedisPrefix    = "redis.prefix"
	KeyMCPTransport   = "mcp.transport"
	KeyMCPPort        = "mcp.port"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the decoded configuration.
type Config struct {
	Alphabet     string        `mapstructure:"alphabet"`
	LogLevel     string        `mapstructure:"log_level"`
	MaxInputSize int           `mapstructure:"max_input_size"`
	HTTP         HTTPConfig    `mapstructure:"http"`
	Metrics      MetricsConfig `mapstructure:"metrics"`
	Cache        CacheConfig   `mapstructure:"cache"`
	Redis        RedisConfig   `mapstructure:"redis"`
	MCP          MCPConfig     `mapstructure:"mcp"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Size    int           `mapstructure:"size"`
	// EncryptionKey is a base64 AES-256 key. When set, cached translations
	// are encrypted at rest.
	EncryptionKey string   `mapstructure:"encryption_key"`
	FallbackKeys  []string `mapstructure:"fallback_keys"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

// New returns a viper instance with defaults and environment binding.
// Callers bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAlphabet, "international")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMaxInputSize, 0)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyMetricsEnabled, true)
	v.SetDefault(KeyCacheBackend, CacheMemory)
	v.SetDefault(KeyCacheTTL, 10*time.Minute)
	v.SetDefault(KeyCacheSize, 1024)
	v.SetDefault(KeyCacheKey, "")
	v.SetDefault(KeyCacheOldKeys, []string{})
	v.SetDefault(KeyRedisAddr, "localhost:6379")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyRedisPrefix, "morse:translation:")
	v.SetDefault(KeyMCPTransport, TransportStdio)
	v.SetDefault(KeyMCPPort, 8081)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and decodes every setting into a Config.
// With an empty path, morse.yaml is searched in the working directory and
// the user config directory; a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "morse"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}
	if c.MaxInputSize < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, KeyMaxInputSize)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: %s %q (want none, memory or redis)", ErrInvalidConfig, KeyCacheBackend, c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, KeyCacheTTL)
	}
	if c.Cache.EncryptionKey != "" {
		if _, err := middleware.DecodeKey(c.Cache.EncryptionKey); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyCacheKey, err)
		}
	} else if len(c.Cache.FallbackKeys) > 0 {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidConfig, KeyCacheOldKeys, KeyCacheKey)
	}
	for i, k := range c.Cache.FallbackKeys {
		if _, err := middleware.DecodeKey(k); err != nil {
			return fmt.Errorf("%w: %s[%d]: %v", ErrInvalidConfig, KeyCacheOldKeys, i, err)
		}
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("%w: %s %q (want stdio or sse)", ErrInvalidConfig, KeyMCPTransport, c.MCP.Transport)
	}
	return nil
}
