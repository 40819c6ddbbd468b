package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	"github.com/brandwave/social-backend/internal/auth"
	"github.com/brandwave/social-backend/internal/handlers"
	"github.com/brandwave/social-backend/internal/logs"
	"github.com/brandwave/social-backend/internal/middleware"
	"github.com/brandwave/social-backend/internal/workers"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logs.Init()
	log := logs.Logger

	// Root context for background workers and graceful shutdown
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Run migrations on startup
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to init migration driver: %v", err)
	}
	migrator, err := migrate.NewWithDatabaseInstance("file://db/migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Database migration failed: %v", err)
	}
	log.Info("Database is up-to-date")

	tokens := auth.NewTokenManager(jwtSecret, auth.DefaultTTL)
	h := handlers.New(db, tokens)
	gate := middleware.NewAuthGate(tokens)

	r := mux.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.RequestLogger,
		gate.Middleware,
	)

	r.HandleFunc("/health", h.Health).Methods("GET")
	handlers.RegisterRoutes(r, h)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}

	srv := &http.Server{
		Handler:      handler,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Handle graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Background: retention cleanup for read notifications
	if enabled := os.Getenv("NOTIFICATION_CLEANUP_ENABLED"); enabled == "" || enabled == "true" {
		w := &workers.NotificationCleanupWorker{DB: db}
		if v := os.Getenv("NOTIFICATION_RETENTION_HOURS"); v != "" {
			if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
				w.RetentionHours = hours
			}
		}
		go w.Start(rootCtx)
	} else {
		log.Infof("[NotificationCleanup] disabled via NOTIFICATION_CLEANUP_ENABLED=%q", enabled)
	}

	go func() {
		<-stop
		log.Info("Shutting down server...")
		cancel()
		ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Server shutdown error: %v", err)
		}
	}()

	log.Infof("Server starting on port %s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Info("Server stopped")
}
