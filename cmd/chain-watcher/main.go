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
	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/metrics"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/repository"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/service"
)

type config struct {
	MetricsAddr string `long:"metrics-addr" env:"CRONCOIN_WATCHER_METRICS_ADDR" description:"metrics listen address" default:":5001"`
	Network     string `long:"network" env:"CRONCOIN_NETWORK" description:"network name" default:"regtest"`
	RPCURL      string `long:"rpc-url" env:"CRONCOIN_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:19443"`
	RPCUser     string `long:"rpc-user" env:"CRONCOIN_RPC_USER" description:"node RPC username"`
	RPCPass     string `long:"rpc-password" env:"CRONCOIN_RPC_PASSWORD" description:"node RPC password"`
	RPCCookie   string `long:"rpc-cookie" env:"CRONCOIN_RPC_COOKIE" description:"node RPC cookie file" default:"~/.croncoin/regtest/.cookie"`
	RedisURL    string `long:"redis-url" env:"CRONCOIN_REDIS_URL" description:"redis URL backing the recent-blocks feed" default:"redis://127.0.0.1:6379/0"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("chain watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

	client, err := repository.NewNodeClient(repository.NodeConnConfig{
		URL:        cfg.RPCURL,
		User:       cfg.RPCUser,
		Password:   cfg.RPCPass,
		CookiePath: expandHome(cfg.RPCCookie),
	})
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	node := repository.NewNodeRepository(client, metrics.NewNodeRPC(network))
	defer node.Shutdown()

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	cache := repository.NewCacheRepository(redis.NewClient(opts), network)

	feed := service.NewBatchingFeed(cache, logger)
	feed.Start(ctx)
	defer feed.Stop()

	watcher, err := service.NewChainWatcherService(node, feed, metrics.NewWatcher(network), logger)
	if err != nil {
		return fmt.Errorf("init chain watcher: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return watcher.Run(ctx)
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
