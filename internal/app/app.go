package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/stock-dashboard/internal/config"
	"github.com/you-humble/stock-dashboard/internal/repository/loader"
	"github.com/you-humble/stock-dashboard/internal/transport/http/health"
	"github.com/you-humble/stock-dashboard/internal/transport/http/middleware"
	"github.com/you-humble/stock-dashboard/platform/closer"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	if err := logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	); err != nil {
		return err
	}

	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.L().Sync()
		return nil
	})
	return nil
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logging(logger.L()),
		middleware.Recovery(logger.L()),
	)

	r.Get("/health", health.HealthCheck)
	r.Get("/ready", health.Ready(a.di.InventoryRepository(ctx), cfg.Server.DBReadTimeout()))

	r.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled() {
			r.Use(a.di.RateLimiter(ctx).Handler)
		}
		r.Use(loader.Middleware(a.di.InventoryRepository(ctx), loader.DefaultWait))

		a.di.DashboardHandler(ctx).Register(r)
	})

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 dashboard server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(
			context.Background(), // egCtx is already done
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		logger.Info(sdCtx, "🛑 Server shutdown...")
		return a.server.Shutdown(sdCtx)
	})

	if config.C().RateLimit.Enabled() {
		eg.Go(func() error {
			return a.di.RateLimiter(egCtx).Run(egCtx)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
