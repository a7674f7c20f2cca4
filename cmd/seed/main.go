// Command seed replaces the job and client collections with a named
// deterministic profile. Destructive: refuses to run without -yes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jcallaghan/tradebook/internal/client"
	clientStore "github.com/jcallaghan/tradebook/internal/client/store"
	"github.com/jcallaghan/tradebook/internal/config"
	"github.com/jcallaghan/tradebook/internal/database"
	"github.com/jcallaghan/tradebook/internal/job"
	jobStore "github.com/jcallaghan/tradebook/internal/job/store"
	"github.com/jcallaghan/tradebook/internal/seed"
	"github.com/jcallaghan/tradebook/internal/storage"
	fileStore "github.com/jcallaghan/tradebook/internal/storage/file"
	postgresStore "github.com/jcallaghan/tradebook/internal/storage/postgres"
	redisStore "github.com/jcallaghan/tradebook/internal/storage/redis"
)

func main() {
	profile := flag.String("profile", string(seed.ProfileMinimal), "seed profile: minimal, fullWorkflow, edgeCases")
	yes := flag.Bool("yes", false, "confirm replacing the stored collections")
	flag.Parse()

	if !*yes {
		fmt.Fprintln(os.Stderr, "seeding replaces the stored job and client collections; pass -yes to confirm")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open storage backend", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	jobService := job.NewService(jobStore.New(store), nil)
	clientService := client.NewService(clientStore.New(store))

	if err := seed.Apply(ctx, seed.Profile(*profile), jobService, clientService); err != nil {
		slog.Error("seeding failed", "profile", *profile, "error", err)
		os.Exit(1)
	}

	slog.Info("seeded", "profile", *profile, "backend", cfg.Storage.Backend)
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		return fileStore.New(cfg.Storage.DataDir)
	case "redis":
		rdb, err := redisStore.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}

		return redisStore.New(rdb), nil
	case "postgres":
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		store := postgresStore.New(db)
		if err := store.Migrate(context.Background()); err != nil {
			return nil, err
		}

		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
