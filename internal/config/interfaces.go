package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
	MaxConns() int32
}

type Dashboard interface {
	RecentTransactionsLimit() int
	PendingOrdersLimit() int
	LowStockLimit() int
	OverviewActivityLimit() int
	MaxLimit() int
}

type RateLimit interface {
	Enabled() bool
	RPS() float64
	Burst() int
	VisitorTTL() time.Duration
}
