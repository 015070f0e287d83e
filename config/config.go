package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ARCHIVEINSIGHT"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ArchiveConfig selects where archived projects are read from
type ArchiveConfig struct {
	Type       string `mapstructure:"type"` // "memory" or "sqlite"
	SQLitePath string `mapstructure:"sqlite_path"`
}

// CacheConfig holds report cache configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory", "redis" or "none"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// UploadConfig bounds accepted uploads
type UploadConfig struct {
	MaxBytes          int64    `mapstructure:"max_bytes"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// AnalysisConfig tunes the duplicate-detection engine
type AnalysisConfig struct {
	GatingPolicy       string            `mapstructure:"gating_policy"` // "two_gate" or "strict"
	TechSynonyms       map[string]string `mapstructure:"tech_synonyms"`
	EnableDebugLogging bool              `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFile(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/archiveinsight/")
	}

	// ARCHIVEINSIGHT_CACHE_REDIS_URL -> cache.redis_url
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values. Every key needs a default so
// that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("archive.type", "memory")
	v.SetDefault("archive.sqlite_path", "data/archive.db")

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("ratelimit.per_ip", 60)

	v.SetDefault("upload.max_bytes", 10<<20)
	v.SetDefault("upload.allowed_extensions", []string{".pdf", ".docx", ".doc", ".txt"})

	v.SetDefault("analysis.gating_policy", "two_gate")
	v.SetDefault("analysis.tech_synonyms", map[string]string{})
	v.SetDefault("analysis.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Archive.Type {
	case "memory":
	case "sqlite":
		if config.Archive.SQLitePath == "" {
			return fmt.Errorf("archive sqlite_path is required when archive type is 'sqlite'")
		}
	default:
		return fmt.Errorf("archive type must be 'memory' or 'sqlite', got: %s", config.Archive.Type)
	}

	switch config.Cache.Type {
	case "memory", "none":
	case "redis":
		if config.Cache.RedisURL == "" {
			return fmt.Errorf("redis URL is required when cache type is 'redis'")
		}
	default:
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'none', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max_bytes must be positive, got: %d", config.Upload.MaxBytes)
	}
	if len(config.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("upload allowed_extensions must not be empty")
	}

	switch config.Analysis.GatingPolicy {
	case "two_gate", "strict":
	default:
		return fmt.Errorf("analysis gating_policy must be 'two_gate' or 'strict', got: %s", config.Analysis.GatingPolicy)
	}

	return nil
}
