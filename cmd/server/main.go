/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the cohort revenue projection server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env and parse command-line flags
  2. Build the scenario catalog (builtin presets)
  3. Load the scenario file, if one was given
  4. Start the file watcher, if requested
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080, or PORT from the env)
  -scenarios  YAML scenario file to load on top of the builtin presets
  -watch      Reload the scenario file when it changes (needs -scenarios)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the scenario watcher
  4. Exit

EXAMPLES:
  # Builtin scenarios only
  ./server

  # Load a scenario file and keep it live
  ./server -scenarios=./scenarios.yaml -watch

  # Run on different port
  ./server -port=3000

ENVIRONMENT:
  PORT overrides the default port. A .env file in the working directory
  is read first, so PORT can live there too.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - catalog/watch.go: Scenario file watching
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/cohort-engine/api"
	"github.com/warp/cohort-engine/catalog"
)

func main() {
	// A missing .env is fine; it only exists to carry PORT in dev setups.
	_ = godotenv.Load()

	defaultPort := 8080
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			defaultPort = p
		}
	}

	// Flags
	port := flag.Int("port", defaultPort, "HTTP server port")
	scenarios := flag.String("scenarios", "", "YAML scenario file to load")
	watch := flag.Bool("watch", false, "reload the scenario file on change")
	flag.Parse()

	// Initialize catalog
	cat := catalog.NewWithDefaults()
	if *scenarios != "" {
		if err := cat.LoadFile(*scenarios); err != nil {
			log.Printf("Warning: Failed to load scenarios: %v", err)
		} else {
			log.Printf("📁 Loaded %s (%d scenarios available)", *scenarios, len(cat.List()))
		}
	}

	// Start watcher
	if *watch {
		if *scenarios == "" {
			log.Fatalf("The -watch flag requires -scenarios")
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		watcher := catalog.NewWatcher(cat, *scenarios, logger)
		if err := watcher.Start(); err != nil {
			log.Fatalf("Failed to start scenario watcher: %v", err)
		}
		defer watcher.Stop()
	}

	// Initialize handler
	handler := api.NewHandler(cat)

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
