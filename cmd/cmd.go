package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anicoll/webthings-integration/internal/pkg/config"
	"github.com/anicoll/webthings-integration/internal/pkg/server"
	"github.com/anicoll/webthings-integration/internal/pkg/smarthome"
	"github.com/anicoll/webthings-integration/internal/pkg/webthings"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const watchRetryInterval = time.Second * 10

func AssistantCommand(ctx *cli.Context) error {
	cfg := &config.Config{
		GatewayCfg: &config.GatewayConfig{
			URL:            ctx.String("gateway-url"),
			Token:          ctx.String("gateway-token"),
			RequestTimeout: ctx.Duration("request-timeout"),
		},
		ServerCfg: &config.ServerConfig{
			ListenAddress: ctx.String("listen-address"),
			AgentUserID:   ctx.String("agent-user-id"),
		},
		LogLevel:     ctx.String("log-level"),
		StatePolling: ctx.Bool("state-polling"),
	}
	return run(ctx.Context, cfg)
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	gateway := webthings.New(cfg.GatewayCfg)
	smartHomeSvc := smarthome.New(gateway, cfg.StatePolling)
	srv := server.New(smartHomeSvc, cfg.ServerCfg.AgentUserID)

	return serve(ctx, cfg, srv.Handler(), gateway, logger)
}

func newLogger(level string) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	logCfg.Level = lvl
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	return logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func serve(ctx context.Context, cfg *config.Config, handler http.Handler, watcher GatewayWatcher, logger *zap.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			if err := watcher.Watch(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("gateway event stream closed, retrying", zap.Error(err))
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(watchRetryInterval):
			}
		}
	})

	httpServer := &http.Server{
		Handler:      handler,
		Addr:         cfg.ServerCfg.ListenAddress,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
	}
	eg.Go(func() error {
		logger.Info("fulfillment server listening", zap.String("address", cfg.ServerCfg.ListenAddress))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		return ctx.Err()
	})

	return eg.Wait()
}
