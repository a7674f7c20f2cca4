package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jcallaghan/tradebook/internal/client"
	clientStore "github.com/jcallaghan/tradebook/internal/client/store"
	"github.com/jcallaghan/tradebook/internal/config"
	"github.com/jcallaghan/tradebook/internal/database"
	tradebookHttp "github.com/jcallaghan/tradebook/internal/http"
	adminHandler "github.com/jcallaghan/tradebook/internal/http/admin"
	budgetHandler "github.com/jcallaghan/tradebook/internal/http/budget"
	clientHandler "github.com/jcallaghan/tradebook/internal/http/client"
	importHandler "github.com/jcallaghan/tradebook/internal/http/importcsv"
	jobHandler "github.com/jcallaghan/tradebook/internal/http/job"
	"github.com/jcallaghan/tradebook/internal/importer"
	"github.com/jcallaghan/tradebook/internal/job"
	jobStore "github.com/jcallaghan/tradebook/internal/job/store"
	"github.com/jcallaghan/tradebook/internal/metrics"
	"github.com/jcallaghan/tradebook/internal/payment"
	"github.com/jcallaghan/tradebook/internal/receipt"
	"github.com/jcallaghan/tradebook/internal/storage"
	fileStore "github.com/jcallaghan/tradebook/internal/storage/file"
	memoryStore "github.com/jcallaghan/tradebook/internal/storage/memory"
	postgresStore "github.com/jcallaghan/tradebook/internal/storage/postgres"
	redisStore "github.com/jcallaghan/tradebook/internal/storage/redis"
)

func main() {
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

	store = storage.WithMetrics(store, metrics.New())

	var uploader receipt.Uploader
	if cfg.Receipts.Endpoint != "" {
		uploader = receipt.NewHTTPUploader(cfg.Receipts.Endpoint, cfg.Receipts.Token)
	}

	var (
		jobService    = job.NewService(jobStore.New(store), uploader)
		clientService = client.NewService(clientStore.New(store))
		importService = importer.NewService()
		processor     = payment.New(
			payment.WithLatency(cfg.Payments.Latency),
			payment.WithDeclineRate(cfg.Payments.DeclineRate),
		)
	)

	var (
		jobsH    = jobHandler.NewHandler(jobService, processor)
		clientsH = clientHandler.NewHandler(clientService)
		budgetH  = budgetHandler.NewHandler(jobService)
		importH  = importHandler.NewHandler(importService, jobService)
		adminH   = adminHandler.NewHandler(jobService, clientService)
	)

	router := tradebookHttp.New(jobsH, clientsH, budgetH, importH, adminH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "backend", cfg.Storage.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		return fileStore.New(cfg.Storage.DataDir)
	case "memory":
		return memoryStore.New(), nil
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
