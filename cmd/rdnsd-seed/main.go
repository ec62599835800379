// Command rdnsd-seed imports record seed files into the configured backing
// store. It is the administrative companion to the record store consumed by
// the DNS server framework: the server reads through the store's handler,
// this tool writes the initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redstore-dns/redstore/internal/dns/common/log"
	"github.com/redstore-dns/redstore/internal/dns/config"
	"github.com/redstore-dns/redstore/internal/dns/repos/records"
	"github.com/redstore-dns/redstore/internal/dns/repos/records/bolt"
	"github.com/redstore-dns/redstore/internal/dns/repos/records/memory"
	"github.com/redstore-dns/redstore/internal/dns/repos/records/redis"
	"github.com/redstore-dns/redstore/internal/dns/repos/seed"
	"github.com/redstore-dns/redstore/internal/dns/services/store"
)

const version = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":  version,
		"backend":  cfg.Backend,
		"seed_dir": cfg.SeedDir,
	}, "Starting record seed import")

	if cfg.SeedDir == "" {
		log.Fatal(nil, "RDNS_SEED_DIR must point at a directory of seed files")
	}

	ctx := context.Background()

	backing, err := buildBackingStore(ctx, cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to open backing store")
	}

	repo := records.New(backing, log.GetLogger())
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error(map[string]any{"error": err}, "Failed to close backing store")
		}
	}()

	s := store.New(store.Options{Records: repo, Logger: log.GetLogger()})

	n, err := seed.LoadDirectory(ctx, cfg.SeedDir, s)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Seed import failed")
	}

	log.Info(map[string]any{"lists_written": n}, "Seed import complete")
}

// buildBackingStore opens the HashStore adapter selected by the config.
func buildBackingStore(ctx context.Context, cfg *config.AppConfig) (records.HashStore, error) {
	switch cfg.Backend {
	case "redis":
		return redis.New(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "bolt":
		return bolt.New(cfg.BoltPath)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
