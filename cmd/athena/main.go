package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/fortuna/athena/internal/api/rest"
	"github.com/fortuna/athena/internal/api/websocket"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/provider/cached"
	"github.com/fortuna/athena/internal/provider/fixture"
	"github.com/fortuna/athena/internal/provider/sportsref"
	"github.com/fortuna/athena/internal/store"
)

const (
	serviceName    = "athena"
	serviceVersion = "1.0.0"
)

// Config is loaded from ATHENA_* environment variables.
type Config struct {
	RESTPort      string        `envconfig:"REST_PORT" default:"8080"`
	WSPort        string        `envconfig:"WS_PORT" default:"8081"`
	SourceBaseURL string        `envconfig:"SOURCE_BASE_URL"`
	FixtureDir    string        `envconfig:"FIXTURE_DIR"`
	RedisURL      string        `envconfig:"REDIS_URL"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	PostgresDSN   string        `envconfig:"POSTGRES_DSN"`
}

func main() {
	log.Printf("Starting %s v%s - College Basketball Stats Extraction Service", serviceName, serviceVersion)

	var config Config
	if err := envconfig.Process("athena", &config); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Page data provider: local fixtures when configured, live pages
	// otherwise, with an optional Redis read-through cache on top.
	var pageProvider provider.Provider
	if config.FixtureDir != "" {
		pageProvider = fixture.New(config.FixtureDir)
		log.Printf("✓ Using fixture provider rooted at %s", config.FixtureDir)
	} else {
		pageProvider = sportsref.New(config.SourceBaseURL)
		log.Println("✓ Using live page provider")
	}

	if config.RedisURL != "" {
		var cachedProvider *cached.Provider
		var err error

		maxRetries := 30
		retryDelay := 2 * time.Second

		log.Println("Connecting to Redis...")
		for i := 0; i < maxRetries; i++ {
			cachedProvider, err = cached.New(pageProvider, config.RedisURL, config.CacheTTL)
			if err == nil {
				break
			}
			if i < maxRetries-1 {
				log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
				time.Sleep(retryDelay)
			} else {
				log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
			}
		}
		defer cachedProvider.Close()
		pageProvider = cachedProvider
		log.Println("✓ Page cache connected")
	}

	// Export persistence is optional; the service runs fine without it.
	var db *store.Database
	if config.PostgresDSN != "" {
		var err error
		db, err = store.NewDatabase(config.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("✓ Connected to database")

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		log.Println("✓ Database migrations applied")
	}

	restServer := rest.NewServer(config.RESTPort, pageProvider, db)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	wsServer := websocket.NewServer(pageProvider)
	go func() {
		log.Printf("Starting WebSocket server on port %s", config.WSPort)
		if err := wsServer.Start(config.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s", config.WSPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}
