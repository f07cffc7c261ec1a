package app

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

const (
	defaultAppName        = "app"
	defaultAppPort        = "8080"
	defaultReadyPath      = "/ready"
	defaultStartupTimeout = 2 * time.Minute
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	Name          string
	DockerfileDir string
	Dockerfile    string
	Port          string
	ReadyPath     string
	Env           map[string]string
	Networks      []string
	LogOutput     io.Writer
	StartupWait   wait.Strategy
	Logger        Logger
}

// Container is an HTTP application built from a Dockerfile.
type Container struct {
	container    testcontainers.Container
	externalHost string
	externalPort string
	cfg          *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		Name:          defaultAppName,
		Port:          defaultAppPort,
		ReadyPath:     defaultReadyPath,
		Dockerfile:    "Dockerfile",
		DockerfileDir: ".",
		LogOutput:     io.Discard,
		Env:           make(map[string]string),
		Logger:        &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.StartupWait == nil {
		cfg.StartupWait = wait.ForHTTP(cfg.ReadyPath).
			WithPort(nat.Port(cfg.Port + "/tcp")).
			WithStartupTimeout(defaultStartupTimeout)
	}

	req := testcontainers.ContainerRequest{
		Name: cfg.Name,
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    cfg.DockerfileDir,
			Dockerfile: cfg.Dockerfile,
		},
		Networks:           cfg.Networks,
		Env:                cfg.Env,
		WaitingFor:         cfg.StartupWait,
		ExposedPorts:       []string{cfg.Port + "/tcp"},
		HostConfigModifier: DefaultHostConfig(),
	}

	genericContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start app container: %v", err)
	}

	mappedPort, err := genericContainer.MappedPort(ctx, nat.Port(cfg.Port+"/tcp"))
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}

	host, err := genericContainer.Host(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}

	go streamContainerLogs(ctx, genericContainer, cfg.LogOutput)

	c := &Container{
		container:    genericContainer,
		externalHost: host,
		externalPort: mappedPort.Port(),
		cfg:          cfg,
	}
	cfg.Logger.Info(ctx, "App container started", logger.String("url", c.BaseURL()))

	return c, nil
}

func (a *Container) Address() string {
	return net.JoinHostPort(a.externalHost, a.externalPort)
}

func (a *Container) BaseURL() string {
	return "http://" + a.Address()
}

func (a *Container) Terminate(ctx context.Context) error {
	return a.container.Terminate(ctx)
}

func streamContainerLogs(ctx context.Context, container testcontainers.Container, out io.Writer) {
	logs, err := container.Logs(ctx)
	if err != nil {
		logger.Error(ctx, "failed to get container logs", logger.ErrorF(err))
		return
	}
	defer func() {
		if err := logs.Close(); err != nil {
			logger.Error(ctx, "failed to close container logs", logger.ErrorF(err))
		}
	}()

	if _, err := io.Copy(out, logs); err != nil && !errors.Is(err, io.EOF) {
		logger.Error(ctx, "error copying container logs", logger.ErrorF(err))
	}
}

func DefaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
