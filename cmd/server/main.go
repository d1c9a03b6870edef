package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Ripple/internal/api/middleware"
	"Ripple/internal/api/routes"
	"Ripple/internal/config"
	"Ripple/internal/core/interactions"
	"Ripple/internal/core/notifications"
	"Ripple/internal/core/users"
	postgresRepo "Ripple/internal/db/postgres"
	"Ripple/internal/images"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Image store
	imageStore, err := images.New(images.Config{
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.ImageBaseURL,
		UseSSL:        cfg.S3UseSSL,
	})
	if err != nil {
		log.Fatal("Failed to create image store:", err)
	}
	if err := imageStore.EnsureBucket(context.Background()); err != nil {
		log.Fatal("Failed to prepare image bucket:", err)
	}

	// Repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)

	userService := users.NewService(userRepo)
	emitter := notifications.NewEmitter(notificationRepo, nil)
	interactionService := interactions.NewService(userService, postRepo, commentRepo, emitter, imageStore, nil)

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Metrics)

	routes.RegisterPostRoutes(r, interactionService, auth)
	routes.RegisterCommentRoutes(r, interactionService, auth)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Ripple server starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
