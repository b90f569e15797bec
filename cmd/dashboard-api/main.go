package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/chain"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/metrics"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/repository"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/service"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/transport"
)

type config struct {
	Addr       string `long:"addr" env:"CRONCOIN_API_ADDR" description:"listen address" default:":5000"`
	Network    string `long:"network" env:"CRONCOIN_NETWORK" description:"network name" default:"regtest"`
	RPCURL     string `long:"rpc-url" env:"CRONCOIN_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:19443"`
	RPCUser    string `long:"rpc-user" env:"CRONCOIN_RPC_USER" description:"node RPC username"`
	RPCPass    string `long:"rpc-password" env:"CRONCOIN_RPC_PASSWORD" description:"node RPC password"`
	RPCCookie  string `long:"rpc-cookie" env:"CRONCOIN_RPC_COOKIE" description:"node RPC cookie file" default:"~/.croncoin/regtest/.cookie"`
	WalletName string `long:"wallet-name" env:"CRONCOIN_WALLET_NAME" description:"wallet endpoint name" default:"default"`
	RedisURL   string `long:"redis-url" env:"CRONCOIN_REDIS_URL" description:"redis URL, empty keeps snapshots in memory"`
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

	_ = godotenv.Load()
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("dashboard api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

	client, err := repository.NewNodeClient(repository.NodeConnConfig{
		URL:        cfg.RPCURL,
		User:       cfg.RPCUser,
		Password:   cfg.RPCPass,
		CookiePath: expandHome(cfg.RPCCookie),
		WalletName: cfg.WalletName,
	})
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	node := repository.NewNodeRepository(client, metrics.NewNodeRPC(network))
	defer node.Shutdown()

	decoder, err := chain.NewScriptDecoder(network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}

	var (
		snapshots service.SnapshotCache = service.NewMemorySnapshotCache()
		recent    transport.RecentBlocks
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		cache := repository.NewCacheRepository(redis.NewClient(opts), network)
		snapshots = cache
		recent = cache
	} else {
		logger.Info("redis not configured, rich-list snapshots stay in memory")
	}

	explorer := service.NewExplorerService(node, logger)
	richlist, err := service.NewRichListService(node, decoder, snapshots, metrics.NewRichList(network), logger)
	if err != nil {
		return fmt.Errorf("init richlist service: %w", err)
	}

	mux := http.NewServeMux()
	transport.NewDashboardHandler(node, explorer, richlist, recent, logger).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// A cold rich-list scan walks the whole chain.
		WriteTimeout:   15 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server",
		zap.String("addr", cfg.Addr), zap.String("network", cfg.Network))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// expandHome resolves a leading ~/ the way the node's own tooling does.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
