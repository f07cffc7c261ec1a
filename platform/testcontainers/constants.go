package testcontainers

// Dashboard application container constants
const (
	DashboardContainerName = "stock-dashboard"
	DashboardHTTPPort      = "8080"
	DashboardDockerfile    = "cmd/dashboard/Dockerfile"

	PostgresNetworkAlias = "postgres-dashboard"
	PostgresImageName    = "postgres:17.0-alpine3.20"
	MigrationsDir        = "migrations"
)
