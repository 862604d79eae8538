package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	httpdelivery "github.com/Xausdorf/mem-ledger/internal/delivery/http"
	"github.com/Xausdorf/mem-ledger/internal/infrastructure/config"
	"github.com/Xausdorf/mem-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/mem-ledger/internal/usecase/process"
	"github.com/Xausdorf/mem-ledger/internal/worker"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "ledger",
		Short:         "In-memory ledger with a concurrent transaction worker pool",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "path to a config file")
	flags.String("addr", "", "HTTP listen address")
	flags.Int("workers", 0, "number of transaction workers")
	flags.Duration("interval", 0, "worker polling interval")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("http.addr", flags.Lookup("addr"))
	_ = v.BindPFlag("worker.count", flags.Lookup("workers"))
	_ = v.BindPFlag("worker.interval", flags.Lookup("interval"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}

func run(parent context.Context, cfg *config.Config) error {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, router := buildApp(cfg, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return pool.Run(ctx)
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", "addr", cfg.HTTP.Addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", serveErr)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func buildApp(cfg *config.Config, logger *slog.Logger) (*worker.Pool, http.Handler) {
	accounts := memory.NewAccountStore()
	ledger := memory.NewLedger()

	processUC := process.NewUseCase(accounts, logger)
	pool := worker.NewPool(ledger, processUC, worker.Config{
		Workers:  cfg.Worker.Count,
		Interval: cfg.Worker.Interval,
	}, logger)

	handler := httpdelivery.NewHandler(accounts, ledger, logger)
	return pool, httpdelivery.NewRouter(handler, memory.NewIdempotencyStore(), logger)
}
