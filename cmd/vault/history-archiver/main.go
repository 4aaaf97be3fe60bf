// Package main copies ledger-confirmed vault history into ClickHouse.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/sharedvault-backend/internal/metrics"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/repository/clickhouse"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/service"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"VAULT_ARCHIVER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	NodeURL       string        `long:"node-url" env:"VAULT_ARCHIVER_NODE_URL" description:"ledger node REST URL" required:"true"`
	ModuleAddress string        `long:"module-address" env:"VAULT_ARCHIVER_MODULE_ADDRESS" description:"vault module address" required:"true"`
	ModuleName    string        `long:"module-name" env:"VAULT_ARCHIVER_MODULE_NAME" description:"vault module name" default:"multisig_vault"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"VAULT_ARCHIVER_HTTP_TIMEOUT" description:"HTTP timeout for ledger requests" default:"30s"`
	ViewRPS       int           `long:"view-rps" env:"VAULT_ARCHIVER_VIEW_RPS" description:"max ledger view calls per second" default:"20"`
	MetricsAddr   string        `long:"metrics-addr" env:"VAULT_ARCHIVER_METRICS_ADDR" description:"metrics listen address" default:":9100"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("vault history archiver failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	moduleAddress, err := model.ParseAddress(cfg.ModuleAddress)
	if err != nil {
		return fmt.Errorf("module address: %w", err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	client, err := ledger.NewClient(ledger.Config{
		NodeURL:       cfg.NodeURL,
		ModuleAddress: moduleAddress,
		ModuleName:    cfg.ModuleName,
		HTTPTimeout:   cfg.HTTPTimeout,
		ViewRPS:       cfg.ViewRPS,
	}, metrics.NewLedgerClient(cfg.NodeURL))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	archiver, err := service.NewHistoryArchiver(client, repo, metrics.NewHistoryArchiver(), logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return archiver.Run(gctx)
	})
	g.Go(func() error {
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return metricsServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
