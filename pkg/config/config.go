package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

// Files looked up for variables, in order. Variables already present in the
// environment are never overridden.
var envFiles = []string{"./configs/.env", "./.env"}

type Config struct {
}

func New() *Config {
	once.Do(func() {
		for _, f := range envFiles {
			err := godotenv.Load(f)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("loading env file error", slog.String("file", f), slog.String("error", err.Error()))
			}
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := c.GetString(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in env, using default", slog.String("key", key), slog.Int("default", def))
		return def
	}
	return n
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := c.GetString(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in env, using default", slog.String("key", key), slog.String("default", def.String()))
		return def
	}
	return d
}

// Location resolves APP_TIMEZONE, UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.GetStringOr("APP_TIMEZONE", "UTC"))
}

func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.GetStringOr("LOG_LEVEL", "info")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
