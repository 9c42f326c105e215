package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/linkhub"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/profile"
	"github.com/MrSnakeDoc/linkhub/internal/upstream"
	"github.com/MrSnakeDoc/linkhub/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Profile is compiled in; a broken one means a broken build.
	p, err := profile.Default()
	if err != nil {
		_ = loggerClient.Sync()
		return nil, err
	}
	loggerClient.Info("profile loaded",
		logger.String("display_name", p.DisplayName),
		logger.Int("links", len(p.Links)))

	rw := linkhub.New(p)
	fetcher := upstream.NewFetcher(cfg.TemplateURL, cfg.FetchTimeout)
	loggerClient.Info("template source configured",
		logger.String("url", fetcher.URL()),
		logger.Duration("timeout", cfg.FetchTimeout))

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Profile:      p,
		Rewriter:     rw,
		Fetcher:      fetcher,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkhub %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return multierr.Append(err, a.syncLogger())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var errs error
	if err := a.server.Stop(shutdownCtx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to stop server: %w", err))
	} else {
		a.logger.Info("✅ linkhub stopped cleanly")
	}

	return multierr.Append(errs, a.syncLogger())
}

// syncLogger flushes buffered log entries. Syncing a terminal returns
// EINVAL/ENOTTY on most platforms, which is not worth reporting.
func (a *App) syncLogger() error {
	if err := a.logger.Sync(); err != nil && !isTerminalSyncErr(err) {
		return fmt.Errorf("failed to sync logger: %w", err)
	}
	return nil
}

func isTerminalSyncErr(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
