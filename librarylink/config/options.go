package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(c *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.ReadTimeout = timeout
	}
}

// WithStorageDriver picks the store unless STORAGE_DRIVER overrides it.
func WithStorageDriver(driver string) Option {
	return func(c *Config) {
		c.Storage.Driver = driver
	}
}
