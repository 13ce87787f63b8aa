package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mathgames/internal/config"
	"mathgames/internal/database"
	"mathgames/internal/handlers"
	"mathgames/internal/leaderboard"
	"mathgames/internal/repository"
	"mathgames/internal/security"
	"mathgames/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed starter game catalog
	if err := db.SeedGames(); err != nil {
		log.Printf("Warning: failed to seed game catalog: %v", err)
	}

	// Optional Redis leaderboard cache
	var board *leaderboard.Board
	if cfg.RedisAddr != "" {
		board, err = leaderboard.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("Warning: leaderboard cache disabled: %v", err)
			board = nil
		} else {
			defer board.Close()
			log.Printf("Leaderboard cache connected (addr: %s)", cfg.RedisAddr)
		}
	}

	// Initialize services
	gameService := service.NewGameService(repository.NewGameRepository(db))
	statsService := service.NewStatsService(db, board)

	// Initialize middleware and handlers
	limiter := security.NewRateLimiter(60, time.Minute)
	middleware := handlers.NewMiddleware(cfg.AllowedOrigins, limiter)

	mux := http.NewServeMux()
	handlers.NewGameHandler(gameService).Register(mux, middleware)
	handlers.NewStatsHandler(statsService).Register(mux, middleware)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		handlers.Info(w, r, cfg.AllowedOrigins)
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.RequestLog(middleware.CORS(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background so we can handle shutdown signals
	go func() {
		log.Printf("Server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
