package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/stock-dashboard/internal/config/env"
)

var cfg *config

type config struct {
	Server    Server
	Logger    Logger
	Postgres  Database
	Dashboard Dashboard
	RateLimit RateLimit
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	dashboardCfg, err := envconfig.NewDashboardConfig()
	if err != nil {
		return fmt.Errorf("%s Dashboard: %w", op, err)
	}

	rateLimitCfg, err := envconfig.NewRateLimitConfig()
	if err != nil {
		return fmt.Errorf("%s RateLimit: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		Logger:    loggerCfg,
		Postgres:  postgresCfg,
		Dashboard: dashboardCfg,
		RateLimit: rateLimitCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
