package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const defaultCacheSize = 500

type MergeConfig struct {
	CacheSize int
	Separator string
	Prefix    string
	// ExtensionFile is an optional YAML document extending the default class groups.
	ExtensionFile string
}

type Config struct {
	Merge    MergeConfig
	LogLevel string
}

func Load() (*Config, error) {
	cacheSize, err := getEnvInt("TWMERGE_CACHE_SIZE", defaultCacheSize)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Merge: MergeConfig{
			CacheSize:     cacheSize,
			Separator:     getEnvOrDefault("TWMERGE_SEPARATOR", ":"),
			Prefix:        getEnvOrDefault("TWMERGE_PREFIX", ""),
			ExtensionFile: getEnvOrDefault("TWMERGE_CONFIG_FILE", ""),
		},
		LogLevel: getEnvOrDefault("TWMERGE_LOG_LEVEL", "warn"),
	}

	if cfg.Merge.CacheSize < 0 {
		return nil, errors.Errorf("TWMERGE_CACHE_SIZE must not be negative, got %d", cfg.Merge.CacheSize)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an integer", key)
	}
	return n, nil
}
