package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgresContainer(ctx context.Context, cfg *Config) (*tcpostgres.PostgresContainer, error) {
	opts := []testcontainers.ContainerCustomizer{
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{Name: cfg.ContainerName},
		}),
		testcontainers.WithHostConfigModifier(defaultHostConfig()),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(postgresPort + "/tcp").WithStartupTimeout(postgresStartupTimeout),
		),
	}
	if cfg.NetworkName != "" {
		opts = append(opts, tcnetwork.WithNetworkName([]string{cfg.NetworkAlias}, cfg.NetworkName))
	}

	container, err := tcpostgres.Run(ctx, cfg.ImageName, opts...)
	if err != nil {
		return nil, errors.Errorf("failed to start postgres container: %v", err)
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container testcontainers.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", errors.Errorf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, postgresPort+"/tcp")
	if err != nil {
		return "", "", errors.Errorf("failed to get mapped port: %v", err)
	}

	return host, port.Port(), nil
}

func buildPostgresDSN(cfg *Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// InternalEnv is the environment an application container on the same
// network needs to reach this database.
func InternalEnv(cfg *Config) map[string]string {
	return map[string]string{
		"POSTGRES_HOST":     cfg.NetworkAlias,
		"POSTGRES_PORT":     postgresPort,
		"POSTGRES_USER":     cfg.Username,
		"POSTGRES_PASSWORD": cfg.Password,
		"POSTGRES_DB":       cfg.Database,
		"POSTGRES_SSL_MODE": "disable",
	}
}

func redactedDSN(cfg *Config) string {
	return fmt.Sprintf("postgres://%s:***@%s/%s", cfg.Username, net.JoinHostPort(cfg.Host, cfg.Port), cfg.Database)
}
