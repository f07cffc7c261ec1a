package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

const (
	postgresPort           = "5432"
	postgresStartupTimeout = 1 * time.Minute
)

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := startPostgresContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
			}
		}
	}()

	cfg.Host, cfg.Port, err = getContainerHostPort(ctx, container)
	if err != nil {
		return nil, err
	}

	dsn := buildPostgresDSN(cfg)

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Postgres container started", logger.String("dsn", redactedDSN(cfg)))
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

// DSN is reachable from the test process, not from other containers.
func (c *Container) DSN() string {
	return c.dsn
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}
