/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the HR leave management MCP server. Handles
  configuration, dependency injection, transport selection, and
  graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment configuration, then apply flag overrides
  2. Build the zap logger on stderr (stdout belongs to the protocol)
  3. Open the JSON file store; load or seed the snapshot
  4. Assemble the workflow service and the MCP server
  5. Serve stdio, or HTTP with graceful shutdown

COMMAND-LINE FLAGS:
  -data       Path to the JSON data file (default: employee_data.json)
  -http       HTTP listen address; empty means stdio
  -log-level  Log level: debug, info, warn, error (default: info)
  -seed       Write the built-in dataset when the data file is missing

ENVIRONMENT:
  LEAVE_DATA_PATH, LEAVE_HTTP_ADDR, LEAVE_LOG_LEVEL,
  LEAVE_SEED_ON_MISSING. Flags win over the environment.

GRACEFUL SHUTDOWN (http mode):
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Stdio transport for a desktop agent host
  ./server -data=./employee_data.json

  # Network transport
  ./server -http=:8080

  # Fail fast instead of seeding when the data file is missing
  ./server -seed=false

SEE ALSO:
  - api/server.go: Tool and resource registration
  - store/jsonfile/jsonfile.go: Persistence
  - config/config.go: Environment configuration
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/config"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store/jsonfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags default from the environment so either works.
	dataPath := flag.String("data", cfg.DataPath, "path to the JSON data file")
	httpAddr := flag.String("http", cfg.HTTPAddr, "HTTP listen address; empty serves stdio")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	seed := flag.Bool("seed", cfg.SeedOnMissing, "seed the built-in dataset when the data file is missing")
	flag.Parse()

	logger, err := buildLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := jsonfile.New(*dataPath, logger)

	// Load once up front so a corrupt or missing file fails fast, before
	// any client connects.
	ctx := context.Background()
	if _, err := store.Load(ctx); err != nil {
		switch {
		case leave.IsNotFound(err) && *seed:
			logger.Info("data file missing, writing built-in dataset", zap.String("path", *dataPath))
			if err := store.Save(ctx, leave.SeedState()); err != nil {
				logger.Fatal("seed data file", zap.Error(err))
			}
		case leave.IsNotFound(err):
			logger.Fatal("data file missing and seeding disabled", zap.String("path", *dataPath))
		default:
			logger.Fatal("load data file", zap.Error(err))
		}
	}

	svc := leave.NewService(store, logger)
	srv := api.New(svc, store, logger)

	if *httpAddr == "" {
		logger.Info("serving MCP over stdio", zap.String("data", *dataPath))
		if err := srv.ServeStdio(); err != nil {
			logger.Fatal("stdio server", zap.Error(err))
		}
		return
	}

	httpServer := &http.Server{
		Addr:        *httpAddr,
		Handler:     srv.Router(),
		ReadTimeout: 15 * time.Second,
		// Streamed responses stay open indefinitely, so no write timeout.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serving MCP over HTTP",
			zap.String("addr", *httpAddr),
			zap.String("data", *dataPath))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// buildLogger returns a console logger writing to stderr. Stdout belongs
// to the protocol in stdio mode; HTTP mode logs the same way.
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	return zap.New(core), nil
}
