package main

import (
	"context"
	"embed"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"catalogsite/internal/catalog"
	"catalogsite/internal/db"
	"catalogsite/internal/fetch"
	"catalogsite/internal/site"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Config
	port := getEnv("PORT", "7521")
	mongoURI := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGODB_DB", "catalogsite")
	databaseURL := os.Getenv("DATABASE_URL")
	apiBase := getEnv("API_BASE_URL", "http://localhost:"+port)
	apiFallback := os.Getenv("API_FALLBACK_URL")
	seedFile := os.Getenv("SEED_FILE")
	fetchTimeout := getDuration("FETCH_TIMEOUT", 10*time.Second)
	rateLimit := getInt("RATE_LIMIT", 300)

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Context for startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore, err := openStore(ctx, logger, databaseURL, mongoURI, mongoDB)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	// Wire dependencies
	catalogSvc := catalog.NewService(store)
	if seedFile != "" {
		seedStore(ctx, logger, catalogSvc, seedFile)
	}

	fetcher := fetch.NewClient(&http.Client{Timeout: fetchTimeout})
	siteHandler := site.NewHandler(fetcher, site.Endpoints{Base: apiBase, Fallback: apiFallback}, logger)

	r, err := newRouter(logger, catalogSvc, siteHandler, rateLimit)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", port)
	logger.Info("endpoints available",
		"web", "http://localhost:"+port,
		"api", apiBase+"/api",
		"mcp", "http://localhost:"+port+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}

// openStore connects to Postgres when a database URL is set and to MongoDB otherwise.
func openStore(ctx context.Context, logger *slog.Logger, databaseURL, mongoURI, mongoDB string) (catalog.Store, func(), error) {
	if databaseURL != "" {
		logger.Info("connecting to Postgres")
		pool, err := db.ConnectPostgres(ctx, databaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to Postgres")

		repo := catalog.NewPgRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	}

	logger.Info("connecting to MongoDB", "uri", mongoURI)
	database, err := db.Connect(ctx, mongoURI, mongoDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to MongoDB")

	repo := catalog.NewRepo(database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure indexes", "error", err)
	}
	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Client().Disconnect(ctx)
	}
	return repo, closeFn, nil
}

func seedStore(ctx context.Context, logger *slog.Logger, svc *catalog.Service, path string) {
	data, err := catalog.LoadSeed(path)
	if err != nil {
		logger.Warn("failed to load seed file", "path", path, "error", err)
		return
	}
	switch err := svc.SeedIfEmpty(ctx, data); {
	case errors.Is(err, catalog.ErrStoreNotEmpty):
		logger.Info("store already populated, seed skipped", "path", path)
	case err != nil:
		logger.Warn("failed to seed store", "path", path, "error", err)
	default:
		logger.Info("store seeded", "path", path, "software", len(data.Software))
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
