package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	cartapp "github.com/neonthreads/storefront/internal/cart/app"
	"github.com/neonthreads/storefront/internal/cart/infra/adapter"
	cartpg "github.com/neonthreads/storefront/internal/cart/infra/postgres"
	"github.com/neonthreads/storefront/internal/cart/infra/snapshot"
	catalogapp "github.com/neonthreads/storefront/internal/catalog/app"
	"github.com/neonthreads/storefront/internal/catalog/infra/content"
	"github.com/neonthreads/storefront/internal/httpapi"
	"github.com/neonthreads/storefront/pkg/config"
	"github.com/neonthreads/storefront/pkg/logger"
	"github.com/neonthreads/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if cfg.ClientID == "" {
		cfg.ClientID = uuid.NewString()
		log.Info("generated client id", slog.String("client_id", cfg.ClientID))
	}

	// Snapshot backend: Postgres when a DSN is configured, a local file
	// otherwise.
	var snaps cartapp.SnapshotStore
	if cfg.PostgresDSN != "" {
		db, err := cartpg.Open(cfg.PostgresDSN)
		if err != nil {
			log.Error("db open failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer db.Close()
		snaps = cartpg.NewSnapshotRepo(db, cfg.ClientID)
	} else {
		snaps = snapshot.NewFileStore(cfg.SnapshotPath)
	}

	store := cartapp.NewStore(snaps, log)
	store.Load(ctx)

	// Catalog: hosted content API when configured, the static catalog
	// otherwise.
	var source catalogapp.ContentSource
	if cfg.ContentURL != "" {
		source = content.NewClient(cfg.ContentURL, cfg.ContentDataset)
	} else {
		log.Info("no content url configured, serving static catalog")
		source = content.NewStatic()
	}
	catalogSvc := catalogapp.NewService(source)

	summarySvc := cartapp.NewSummaryService(store, adapter.NewCatalogServiceReader(catalogSvc), 10)

	api := httpapi.NewServer(store, summarySvc, catalogSvc, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// No write timeout: /api/cart/events holds its response open.
		IdleTimeout: 60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()

	// Flush the last cart snapshot before exiting.
	store.Close()
	log.Info("bye")
}
