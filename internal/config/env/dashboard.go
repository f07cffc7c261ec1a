package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ======= Dashboard =======

type dashboardEnv struct {
	RecentTransactionsLimit int `env:"DASHBOARD_RECENT_TRANSACTIONS_LIMIT" envDefault:"10"`
	PendingOrdersLimit      int `env:"DASHBOARD_PENDING_ORDERS_LIMIT" envDefault:"5"`
	LowStockLimit           int `env:"DASHBOARD_LOW_STOCK_LIMIT" envDefault:"5"`
	OverviewActivityLimit   int `env:"DASHBOARD_OVERVIEW_ACTIVITY_LIMIT" envDefault:"5"`
	MaxLimit                int `env:"DASHBOARD_MAX_LIMIT" envDefault:"100"`
}

type dashboard struct {
	raw dashboardEnv
}

func NewDashboardConfig() (*dashboard, error) {
	var raw dashboardEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	limits := map[string]int{
		"DASHBOARD_RECENT_TRANSACTIONS_LIMIT": raw.RecentTransactionsLimit,
		"DASHBOARD_PENDING_ORDERS_LIMIT":      raw.PendingOrdersLimit,
		"DASHBOARD_LOW_STOCK_LIMIT":           raw.LowStockLimit,
		"DASHBOARD_OVERVIEW_ACTIVITY_LIMIT":   raw.OverviewActivityLimit,
	}
	for name, v := range limits {
		if v < 1 || v > raw.MaxLimit {
			return nil, fmt.Errorf("%s must be in [1, %d], got %d", name, raw.MaxLimit, v)
		}
	}

	return &dashboard{raw: raw}, nil
}

func (cfg *dashboard) RecentTransactionsLimit() int { return cfg.raw.RecentTransactionsLimit }
func (cfg *dashboard) PendingOrdersLimit() int      { return cfg.raw.PendingOrdersLimit }
func (cfg *dashboard) LowStockLimit() int           { return cfg.raw.LowStockLimit }
func (cfg *dashboard) OverviewActivityLimit() int   { return cfg.raw.OverviewActivityLimit }
func (cfg *dashboard) MaxLimit() int                { return cfg.raw.MaxLimit }

// ======= Rate limit =======

type rateLimitEnv struct {
	Enabled    bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS        float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst      int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
	VisitorTTL time.Duration `env:"RATE_LIMIT_VISITOR_TTL" envDefault:"5m"`
}

type rateLimit struct {
	raw rateLimitEnv
}

func NewRateLimitConfig() (*rateLimit, error) {
	var raw rateLimitEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if raw.Enabled {
		switch {
		case raw.RPS <= 0:
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", raw.RPS)
		case raw.Burst < 1:
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", raw.Burst)
		case raw.VisitorTTL <= 0:
			return nil, fmt.Errorf("RATE_LIMIT_VISITOR_TTL must be positive, got %s", raw.VisitorTTL)
		}
	}

	return &rateLimit{raw: raw}, nil
}

func (cfg *rateLimit) Enabled() bool             { return cfg.raw.Enabled }
func (cfg *rateLimit) RPS() float64              { return cfg.raw.RPS }
func (cfg *rateLimit) Burst() int                { return cfg.raw.Burst }
func (cfg *rateLimit) VisitorTTL() time.Duration { return cfg.raw.VisitorTTL }
