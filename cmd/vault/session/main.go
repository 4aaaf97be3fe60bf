// Package main runs a shared vault session for the member connected through the wallet bridge.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/sharedvault-backend/internal/metrics"
	"github.com/goodnatureofminers/sharedvault-backend/internal/transport"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/repository/clickhouse"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/service"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/wallet"
)

type config struct {
	Addr     string `long:"addr" env:"VAULT_SESSION_ADDR" description:"gRPC health listen address" default:":8000"`
	RestAddr string `long:"rest-addr" env:"VAULT_SESSION_REST_ADDR" description:"REST and metrics listen address" default:":8001"`

	NodeURL             string        `long:"node-url" env:"VAULT_SESSION_NODE_URL" description:"ledger node REST URL" required:"true"`
	ModuleAddress       string        `long:"module-address" env:"VAULT_SESSION_MODULE_ADDRESS" description:"vault module (deployer) address" required:"true"`
	ModuleName          string        `long:"module-name" env:"VAULT_SESSION_MODULE_NAME" description:"vault module name" default:"multisig_vault"`
	HTTPTimeout         time.Duration `long:"http-timeout" env:"VAULT_SESSION_HTTP_TIMEOUT" description:"ledger HTTP timeout" default:"30s"`
	ConfirmationTimeout time.Duration `long:"confirmation-timeout" env:"VAULT_SESSION_CONFIRMATION_TIMEOUT" description:"time to wait for a submitted transaction" default:"60s"`
	PollInterval        time.Duration `long:"poll-interval" env:"VAULT_SESSION_POLL_INTERVAL" description:"confirmation poll interval" default:"1s"`
	ViewRPS             int           `long:"view-rps" env:"VAULT_SESSION_VIEW_RPS" description:"max ledger view calls per second" default:"20"`

	WalletURL     string        `long:"wallet-url" env:"VAULT_SESSION_WALLET_URL" description:"wallet bridge URL" default:"http://127.0.0.1:8547"`
	WalletTimeout time.Duration `long:"wallet-timeout" env:"VAULT_SESSION_WALLET_TIMEOUT" description:"wallet bridge timeout, covers member signing" default:"5m"`

	SyncInterval    time.Duration `long:"sync-interval" env:"VAULT_SESSION_SYNC_INTERVAL" description:"ledger sync interval" default:"30s"`
	SweepInterval   time.Duration `long:"sweep-interval" env:"VAULT_SESSION_SWEEP_INTERVAL" description:"expiry sweep interval" default:"1s"`
	SyncWorkers     int           `long:"sync-workers" env:"VAULT_SESSION_SYNC_WORKERS" description:"concurrent vault hydrations" default:"8"`
	RejectionPolicy string        `long:"rejection-policy" env:"VAULT_SESSION_REJECTION_POLICY" description:"when rejections finalize a request" choice:"veto" choice:"quorum" choice:"unreachable" default:"veto"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"VAULT_SESSION_CLICKHOUSE_DSN" description:"ClickHouse DSN for activity export, disabled when empty"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("vault session failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	moduleAddress, err := model.ParseAddress(cfg.ModuleAddress)
	if err != nil {
		return fmt.Errorf("module address: %w", err)
	}
	policy, err := service.ParseRejectionPolicy(cfg.RejectionPolicy)
	if err != nil {
		return err
	}

	client, err := ledger.NewClient(ledger.Config{
		NodeURL:             cfg.NodeURL,
		ModuleAddress:       moduleAddress,
		ModuleName:          cfg.ModuleName,
		HTTPTimeout:         cfg.HTTPTimeout,
		ConfirmationTimeout: cfg.ConfirmationTimeout,
		PollInterval:        cfg.PollInterval,
		ViewRPS:             cfg.ViewRPS,
	}, metrics.NewLedgerClient(cfg.NodeURL))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	w, err := wallet.NewRemoteAdapter(cfg.WalletURL, cfg.WalletTimeout)
	if err != nil {
		return fmt.Errorf("init wallet adapter: %w", err)
	}
	account, err := w.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect wallet: %w", err)
	}
	logger = logger.With(zap.Stringer("member", account.Address))
	logger.Info("wallet connected")

	var storeOpts []store.Option
	var exporter *service.ActivityExporter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		exporter, err = service.NewActivityExporter(repo, account.Address, metrics.NewActivityExporter(), logger)
		if err != nil {
			return err
		}
		storeOpts = append(storeOpts, store.WithActivitySink(exporter.Sink()))
	}
	st := store.New(account.Address, storeOpts...)

	var synchronizer *service.Synchronizer
	trigger := service.SyncTriggerFunc(func() {
		synchronizer.Trigger()
	})

	engine, err := service.NewApprovalEngine(st, trigger, metrics.NewApprovalEngine(), logger,
		service.WithRejectionPolicy(policy))
	if err != nil {
		return err
	}
	synchronizer, err = service.NewSynchronizer(client, st, engine, metrics.NewSynchronizer(), logger, service.SyncConfig{
		Interval:      cfg.SyncInterval,
		SweepInterval: cfg.SweepInterval,
		Workers:       cfg.SyncWorkers,
	})
	if err != nil {
		return err
	}
	deposits, err := service.NewDepositPipeline(client, w, st, trigger, metrics.NewDepositPipeline(), logger)
	if err != nil {
		return err
	}
	registrar, err := service.NewVaultRegistrar(client, w, trigger, moduleAddress, metrics.NewVaultRegistrar(), logger)
	if err != nil {
		return err
	}
	history, err := service.NewHistoryReader(client, st)
	if err != nil {
		return err
	}

	handler, err := transport.NewVaultHandler(transport.VaultHandlerDeps{
		Reader:      st,
		Withdrawals: engine,
		Deposits:    deposits,
		Registrar:   registrar,
		History:     history,
		Syncer:      synchronizer,
	}, logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer()
	syncHealth, err := transport.NewSyncHealth(healthServer, logger)
	if err != nil {
		return err
	}
	synchronizer.OnSync(syncHealth.Observe)

	grpcServer := newGRPCServer(logger)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WalletTimeout + cfg.ConfirmationTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	if exporter != nil {
		exporter.Start(ctx)
		defer exporter.Stop()
	}
	synchronizer.Start(ctx)
	defer synchronizer.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting gRPC server", zap.String("addr", cfg.Addr))
		return grpcServer.Serve(socket)
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err := w.Disconnect(context.Background()); err != nil {
		logger.Warn("wallet disconnect failed", zap.Error(err))
	}
	return nil
}

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	streamChain := []grpc.StreamServerInterceptor{
		grpcRecovery.StreamServerInterceptor(),
		grpcCtxTags.StreamServerInterceptor(),
		grpcPrometheus.StreamServerInterceptor,
		grpcZap.StreamServerInterceptor(logger),
	}
	grpcPrometheus.EnableHandlingTimeHistogram()
	return grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(streamChain...)),
	)
}
