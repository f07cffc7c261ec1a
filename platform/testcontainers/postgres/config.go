package postgres

import (
	"context"

	"github.com/docker/docker/api/types/container"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	NetworkName   string
	NetworkAlias  string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		NetworkAlias:  "postgres",
		ContainerName: "postgres-container",
		ImageName:     "postgres:17.0-alpine3.20",
		Database:      "test",
		Username:      "postgres",
		Password:      "postgres",
		Logger:        &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
