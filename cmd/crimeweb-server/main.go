package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/config"
	"github.com/crimewebhq/crimeweb-go/internal/database"
	"github.com/crimewebhq/crimeweb-go/internal/metrics"
	"github.com/crimewebhq/crimeweb-go/internal/server"
	"github.com/crimewebhq/crimeweb-go/internal/snapshot"
)

var (
	libsqlURL    = flag.String("libsql-url", "", "libSQL database URL (default: file:./crimeweb.db)")
	authToken    = flag.String("auth-token", "", "Authentication token for remote databases")
	projectsDir  = flag.String("projects-dir", "", "Base directory for projects. Enables multi-project mode.")
	configPath   = flag.String("config", "", "Path to a TOML config file")
	snapshotPath = flag.String("snapshot", "", "Episode snapshot JSON to import at startup")
	watch        = flag.Bool("watch", false, "Re-import the snapshot whenever it changes")
	transport    = flag.String("transport", "stdio", "Transport to use: stdio or sse")
	addr         = flag.String("addr", ":8080", "Address to listen on when using SSE transport")
	sseEndpoint  = flag.String("sse-endpoint", "/sse", "SSE endpoint path when using SSE transport")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *snapshotPath != "" {
		cfg.Snapshot.Path = *snapshotPath
	}
	if *watch {
		cfg.Snapshot.Watch = true
	}

	logger, cleanupLog := cfg.Logging.SetupLogger()
	defer cleanupLog()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal, closing server")
		cancel()
	}()

	// Initialize database configuration
	dbConfig := database.NewConfig()

	// Initialize metrics (noop if disabled)
	metrics.InitFromEnv()

	// Override with command line flags if provided
	if *libsqlURL != "" {
		dbConfig.URL = *libsqlURL
	}
	if *authToken != "" {
		dbConfig.AuthToken = *authToken
	}
	if *projectsDir != "" {
		dbConfig.ProjectsDir = *projectsDir
		dbConfig.MultiProjectMode = true
	}

	// Create database manager
	db, err := database.NewDBManager(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create database manager: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	// Import the snapshot catalog before serving, then keep watching it if
	// asked to.
	if cfg.Snapshot.Path != "" {
		project := cfg.Snapshot.Project
		episodes, err := snapshot.Load(cfg.Snapshot.Path)
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
		if err := db.UpsertEpisodes(ctx, project, episodes); err != nil {
			log.Fatalf("Failed to import snapshot: %v", err)
		}
		logger.Info("snapshot imported", "path", cfg.Snapshot.Path, "episodes", len(episodes))

		if cfg.Snapshot.Watch {
			watcher, err := snapshot.NewWatcher(cfg.Snapshot.Path, logger)
			if err != nil {
				log.Fatalf("Failed to create snapshot watcher: %v", err)
			}
			defer watcher.Close()
			go func() {
				err := watcher.Watch(ctx, func(ctx context.Context, episodes []apptype.Episode) error {
					return db.UpsertEpisodes(ctx, project, episodes)
				})
				if err != nil && ctx.Err() == nil {
					logger.Error("snapshot watcher stopped", "error", err)
				}
			}()
		}
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(db)
	mcpServer.SetMatchDefaults(cfg.Matching.Options())

	// Run the server with selected transport
	logger.Info("starting CrimeWeb matcher server", "transport", *transport)
	switch *transport {
	case "stdio":
		go func() {
			if err := mcpServer.Run(ctx); err != nil {
				logger.Error("server error", "error", err)
			}
		}()
	case "sse":
		go func() {
			if err := mcpServer.RunSSE(ctx, *addr, *sseEndpoint); err != nil {
				logger.Error("SSE server error", "error", err)
			}
		}()
	default:
		log.Fatalf("unknown transport: %s (expected: stdio or sse)", *transport)
	}

	<-ctx.Done()

	logger.Info("server stopped")
}
