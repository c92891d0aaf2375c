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
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/featuregate/internal/catalog"
	"github.com/goodnatureofminers/featuregate/internal/epoch"
	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/metrics"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/internal/repository/clickhouse"
	"github.com/goodnatureofminers/featuregate/internal/service/recorder"
	"github.com/goodnatureofminers/featuregate/internal/service/replay"
	"github.com/goodnatureofminers/featuregate/internal/transport"
	"github.com/goodnatureofminers/featuregate/pkg/batcher"
	"github.com/goodnatureofminers/featuregate/pkg/safe"
)

type config struct {
	Addr          string        `long:"addr" env:"FEATURE_API_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"FEATURE_API_REST_ADDR" description:"REST listen address" default:":8001"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"FEATURE_API_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network       string        `long:"network" env:"FEATURE_API_NETWORK" description:"network name" default:"mainnet"`
	CatalogFile   string        `long:"catalog-file" env:"FEATURE_API_CATALOG_FILE" description:"TOML file with extra catalog features"`
	PollInterval  time.Duration `long:"poll-interval" env:"FEATURE_API_POLL_INTERVAL" description:"activation store poll interval" default:"5s"`
	SlotsPerEpoch int64         `long:"slots-per-epoch" env:"FEATURE_API_SLOTS_PER_EPOCH" description:"slots per normal epoch" default:"432000"`
	NoWarmup      bool          `long:"no-warmup" env:"FEATURE_API_NO_WARMUP" description:"disable epoch warmup"`
	FlushSize     int           `long:"flush-size" env:"FEATURE_API_FLUSH_SIZE" description:"activations per store batch" default:"100"`
	FlushInterval time.Duration `long:"flush-interval" env:"FEATURE_API_FLUSH_INTERVAL" description:"max delay before a batch is stored" default:"1s"`
	FlushRPS      int           `long:"flush-rps" env:"FEATURE_API_FLUSH_RPS" description:"max store batches per second" default:"10"`
	MaxPending    int           `long:"max-pending" env:"FEATURE_API_MAX_PENDING" description:"activations held for retry before recording blocks" default:"1000"`
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
		logger.Fatal("feature api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	features, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Int("features", features.Len()),
		zap.Stringer("identity", features.Identity()),
	)

	schedule, err := newSchedule(cfg)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	rec, err := recorder.NewRecorder(repo, features, metrics.NewRecorder(), logger, batcher.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
		MaxPending:    cfg.MaxPending,
	})
	if err != nil {
		return fmt.Errorf("init recorder: %w", err)
	}

	healthServer := health.NewServer()
	readiness := transport.NewReadiness(healthServer, "featuregate."+cfg.Network)

	replayer, err := replay.NewReplayer(repo, features, network, metrics.NewReplay(network), logger)
	if err != nil {
		return fmt.Errorf("init replayer: %w", err)
	}
	follower, err := replay.NewFollower(replayer, cfg.PollInterval, readiness, rec.Flushed())
	if err != nil {
		return fmt.Errorf("init follower: %w", err)
	}

	fullInflation, err := catalog.NewFullInflationResolver(features)
	if err != nil {
		return fmt.Errorf("init full inflation resolver: %w", err)
	}
	handler, err := transport.NewFeatureHandler(transport.FeatureHandlerConfig{
		Catalog:       features,
		Network:       network,
		Snapshots:     follower,
		Recorder:      rec,
		Schedule:      schedule,
		Composites:    map[string]*feature.Resolver{"full-inflation": fullInflation},
		EpochFeatures: map[string]feature.ID{"warmup-cooldown-rate": catalog.ReduceStakeWarmupCooldown},
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("init feature handler: %w", err)
	}

	grpcServer := newGRPCServer(logger, healthServer)
	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial grpc: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/healthz", gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	))
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)

	rec.Start(gctx)
	defer rec.Stop()

	g.Go(func() error {
		if err := follower.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("follower: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting gRPC server", zap.String("addr", cfg.Addr))
		if err := grpcServer.Serve(socket); err != nil {
			return fmt.Errorf("serve grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}

func newSchedule(cfg config) (epoch.Schedule, error) {
	slotsPerEpoch, err := safe.Uint64(cfg.SlotsPerEpoch)
	if err != nil {
		return epoch.Schedule{}, fmt.Errorf("slots per epoch: %w", err)
	}
	schedule, err := epoch.New(slotsPerEpoch, slotsPerEpoch, !cfg.NoWarmup)
	if err != nil {
		return epoch.Schedule{}, fmt.Errorf("init epoch schedule: %w", err)
	}
	return schedule, nil
}

func newGRPCServer(logger *zap.Logger, healthServer *health.Server) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)
	return grpcServer
}
