package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/tradematch/engine/internal/adapter/cache"
	"github.com/tradematch/engine/internal/adapter/pg"
	"github.com/tradematch/engine/internal/config"
	"github.com/tradematch/engine/internal/core"
	"github.com/tradematch/engine/internal/ingest"
	"github.com/tradematch/engine/internal/logging"
	"github.com/tradematch/engine/internal/port"
	"github.com/tradematch/engine/internal/report"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	clientsFile, err := os.Open(cfg.Files.Clients)
	if err != nil {
		logger.Fatalw("open clients file", "path", cfg.Files.Clients, "err", err)
	}
	clients, err := ingest.ReadClients(clientsFile, cfg.Files.Symbols)
	clientsFile.Close()
	if err != nil {
		logger.Fatalw("load clients", "err", err)
	}

	ordersFile, err := os.Open(cfg.Files.Orders)
	if err != nil {
		logger.Fatalw("open orders file", "path", cfg.Files.Orders, "err", err)
	}
	orders, err := ingest.ReadOrders(ordersFile)
	ordersFile.Close()
	if err != nil {
		logger.Fatalw("load orders", "err", err)
	}

	var repo port.Repository
	if cfg.Storage.PostgresDSN != "" {
		pgRepo, err := pg.NewPgRepo(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			logger.Fatalw("connect postgres", "err", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
	}

	var snapCache port.Cache
	if cfg.Storage.RedisAddr != "" {
		redisCache := cache.NewRedisCache(
			cfg.Storage.RedisAddr,
			cfg.Storage.RedisPassword,
			cfg.Storage.RedisDB,
			24*time.Hour,
		)
		defer redisCache.Close()
		snapCache = redisCache
	}

	ledger := core.NewLedger(clients)
	engine := core.NewEngine(ledger, repo, snapCache, logger)

	logger.Infow("starting batch", "clients", ledger.Len(), "orders", len(orders))
	snap, err := engine.Run(ctx, orders)
	if err != nil {
		logger.Fatalw("matching failed", "err", err)
	}

	out, err := os.Create(cfg.Files.Result)
	if err != nil {
		logger.Fatalw("create result file", "path", cfg.Files.Result, "err", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err := report.WriteLedger(w, snap.Clients, cfg.Files.Symbols); err != nil {
		logger.Fatalw("write result", "err", err)
	}
	if err := w.Flush(); err != nil {
		logger.Fatalw("flush result", "err", err)
	}

	for _, s := range report.Summarize(engine.Trades()) {
		logger.Infow("asset summary",
			"asset", s.Asset, "trades", s.Trades, "volume", s.Volume, "vwap", s.VWAP)
	}
	logger.Infow("result written", "path", cfg.Files.Result, "run_id", snap.RunID)
}
