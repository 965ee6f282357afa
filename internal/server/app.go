// Package server runs the gateway behind its gRPC endpoint and, when
// configured, a Prometheus /metrics endpoint. It serves until a stop signal,
// then stops gracefully and releases the credential database.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/core"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/metrics"

	gs "github.com/dmitrijs2005/healthgate/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	core    *core.Core
	metrics *metrics.Metrics
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	cr, err := core.Build(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	if c.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "access tokens are signed with the built-in default secret key; set -s or HEALTHGATE_SECRET_KEY")
	}

	m := metrics.New()
	for _, st := range cr.Registry.Status() {
		m.SetModelAvailable(string(st.Disease), st.Available)
	}

	return &App{config: c, logger: logger.With("module", "app"), core: cr, metrics: m}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) grpcServer() *gs.GRPCServer {
	return gs.NewGRPCServer(
		app.config.EndpointAddrGRPC,
		app.logger,
		app.core.Gate,
		app.core.Pipeline,
		app.config.SecretKey,
		app.config.AccessTokenValidityDuration,
	).WithMetrics(app.metrics)
}

// Run serves until ctx is cancelled or a stop signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "models_available", len(app.core.Registry.Available()))

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup
	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := app.metrics.Serve(ctx, app.config.MetricsAddr, app.logger); err != nil {
				app.logger.Error(ctx, "metrics server failed", "error", err)
				cancelFunc()
			}
		}()
	}

	err := app.grpcServer().Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
	}
	cancelFunc()
	wg.Wait()

	if cerr := app.core.Close(); cerr != nil && err == nil {
		err = cerr
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}
