/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the sales engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Initialize the store backend (memory or sqlite)
  3. Build the simulated transport and ID generator
  4. Create the sales service and API handler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -backend    Store backend: "memory" or "sqlite" (default: memory)
  -db         SQLite database path (default: ":memory:")
  -latency    Simulated per-call latency (default: 300ms)
  -fail-rate  Simulated failure probability 0..1 (default: 0.05)
  -seed       RNG seed; 0 means time-based (default: 0)
  -demo       Load the demo dataset on startup (default: true)

  Each flag falls back to the matching environment variable
  (PORT, BACKEND, DB, LATENCY_MS, FAIL_RATE, SEED) when unset.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the store
  4. Exit

EXAMPLES:
  # In-memory store with demo data
  ./server

  # SQLite-backed, no simulated failures
  ./server -backend=sqlite -db=./sales.db -fail-rate=0

  # Deterministic IDs and failures for demos
  ./server -seed=42

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - sales/service.go: The engine itself
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/sales-engine/api"
	"github.com/warp/sales-engine/ident"
	"github.com/warp/sales-engine/netsim"
	"github.com/warp/sales-engine/sales"
	"github.com/warp/sales-engine/store/memory"
	"github.com/warp/sales-engine/store/sqlite"
)

func main() {
	// .env is optional; flags still win over it.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	backend := flag.String("backend", envStr("BACKEND", "memory"), "Store backend: memory or sqlite")
	dbPath := flag.String("db", envStr("DB", ":memory:"), "SQLite database path")
	latencyMS := flag.Int("latency", envInt("LATENCY_MS", 300), "Simulated per-call latency in milliseconds")
	failRate := flag.Float64("fail-rate", envFloat("FAIL_RATE", 0.05), "Simulated failure probability (0..1)")
	seed := flag.Int64("seed", int64(envInt("SEED", 0)), "RNG seed; 0 means time-based")
	demo := flag.Bool("demo", true, "Load the demo dataset on startup")
	flag.Parse()

	// Initialize store
	var (
		store  sales.Backend
		closer interface{ Close() error }
	)
	switch *backend {
	case "memory":
		store = memory.New()
	case "sqlite":
		s, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		store = s
		closer = s
	default:
		log.Fatalf("Unknown backend %q (want memory or sqlite)", *backend)
	}
	if closer != nil {
		defer closer.Close()
	}

	// One seed drives both ID generation and failure rolls, so a
	// fixed -seed reproduces a whole session.
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := ident.New(rand.New(rand.NewSource(*seed)))
	transport := netsim.New(
		time.Duration(*latencyMS)*time.Millisecond,
		*failRate,
		rand.New(rand.NewSource(*seed+1)),
	)

	svc := sales.New(store, transport, gen)

	if *demo {
		if err := svc.LoadDemoDataset(context.Background()); err != nil {
			log.Printf("Warning: Failed to load demo dataset: %v", err)
		}
	}

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

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

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
