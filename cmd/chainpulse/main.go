// Package main runs the chainpulse backend: upstream ingestion, subscriber hub and HTTP API.
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

	"github.com/goodnatureofminers/chainpulse-backend/internal/aggregator"
	"github.com/goodnatureofminers/chainpulse-backend/internal/alerting"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain/ethereum"
	"github.com/goodnatureofminers/chainpulse-backend/internal/hub"
	"github.com/goodnatureofminers/chainpulse-backend/internal/ingestion"
	"github.com/goodnatureofminers/chainpulse-backend/internal/metrics"
	"github.com/goodnatureofminers/chainpulse-backend/internal/ratelimit"
	"github.com/goodnatureofminers/chainpulse-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/chainpulse-backend/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
)

type config struct {
	Addr           string        `long:"addr" env:"CHAINPULSE_ADDR" description:"HTTP listen address" default:":8001"`
	GRPCAddr       string        `long:"grpc-addr" env:"CHAINPULSE_GRPC_ADDR" description:"gRPC listen address" default:":8000"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"CHAINPULSE_CLICKHOUSE_DSN" description:"ClickHouse DSN; persistence is disabled when empty"`
	HealthInterval time.Duration `long:"health-interval" env:"CHAINPULSE_HEALTH_INTERVAL" description:"Health probe period" default:"10s"`
	AlertBuffer    int           `long:"alert-buffer" env:"CHAINPULSE_ALERT_BUFFER" description:"Queued alerts before new ones are dropped" default:"64"`
	LogJSON        bool          `long:"log-json" env:"CHAINPULSE_LOG_JSON" description:"Production JSON logging"`

	Ingestion ingestion.Config     `group:"Upstream" namespace:"upstream" env-namespace:"CHAINPULSE_UPSTREAM"`
	Health    aggregator.Thresholds `group:"Health score" namespace:"health" env-namespace:"CHAINPULSE_HEALTH"`
	Alerts    alerting.Thresholds   `group:"Alerts" namespace:"alert" env-namespace:"CHAINPULSE_ALERT"`
	Broadcast hub.Intervals         `group:"Broadcast" namespace:"broadcast" env-namespace:"CHAINPULSE_BROADCAST"`
	RateLimit ratelimit.Config      `group:"Rate limiting" namespace:"ratelimit" env-namespace:"CHAINPULSE_RATELIMIT"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chainpulse failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	var (
		samplesStore ingestion.Persistence
		queryStore   hub.Persistence
		alertStore   alerting.Store
		alertAdmin   transport.AlertStore
		pinger       transport.Pinger
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()
		samplesStore, queryStore, alertStore, alertAdmin, pinger = repo, repo, repo, repo, repo
	} else {
		logger.Warn("ClickHouse DSN not set, running without persistence")
	}

	evaluator := alerting.New(cfg.Alerts, alertStore, metrics.NewAlertEvaluator(), logger.Named("alerting"), cfg.AlertBuffer)
	defer evaluator.Close()

	connector := ethereum.NewConnector(func(endpoint string) ethereum.RPCMetrics {
		return metrics.NewRPCClient(endpoint)
	}, logger.Named("upstream"))

	engine, err := ingestion.New(
		cfg.Ingestion,
		connector,
		aggregator.New(cfg.Health),
		metrics.NewIngestionEngine(),
		samplesStore,
		logger.Named("ingestion"),
		evaluator,
	)
	if err != nil {
		return fmt.Errorf("init ingestion engine: %w", err)
	}
	if err := engine.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize ingestion engine: %w", err)
	}
	defer engine.Close()

	subscribers := hub.New(engine, queryStore, metrics.NewBroadcastHub(), cfg.Broadcast, logger.Named("hub"))
	subscribers.Start(ctx, evaluator.Alerts())
	defer subscribers.Close()

	healthServer := health.NewServer()
	reporter := transport.NewHealthReporter(healthServer, engine, pinger, cfg.HealthInterval, logger, evaluator)
	go reporter.Run(ctx)

	grpcServer := transport.NewGRPCServer(healthServer, logger)
	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc on %s: %w", cfg.GRPCAddr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	defer func() {
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	healthz, closeHealthz, err := transport.NewHealthGateway(cfg.GRPCAddr)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeHealthz()
	}()

	gate, closeGate := newRateLimitGate(cfg.RateLimit, logger)
	defer closeGate()

	handler := transport.NewHTTPHandler(transport.HTTPRoutes{
		WebSocket: transport.NewWebSocketHandler(subscribers, logger),
		REST:      transport.NewRESTHandler(engine, subscribers, alertAdmin, logger),
		Health:    healthz,
		Gate:      gate,
	})

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr), zap.String("upstream", engine.Endpoint()))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func newRateLimitGate(cfg ratelimit.Config, logger *zap.Logger) (transport.Gate, func()) {
	var (
		store   ratelimit.Store = ratelimit.NewMemoryStore()
		closeFn                 = func() {}
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = ratelimit.NewRedisStore(client)
		closeFn = func() {
			_ = client.Close()
		}
		logger.Info("rate limit counters in redis", zap.String("addr", cfg.RedisAddr))
	}

	mw := ratelimit.NewMiddleware(
		ratelimit.NewLimiter(store, cfg.Budgets()),
		cfg.Classifier(),
		ratelimit.ClientKey(cfg.KeyHeader, cfg.TrustProxy),
		metrics.NewRateLimiter(),
		logger,
	)
	return mw.Handler, closeFn
}
