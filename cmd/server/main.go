package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers/upload"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/api/routes"
	"github.com/MarinaMenezess/devSocial/internal/auth"
	"github.com/MarinaMenezess/devSocial/internal/config"
	"github.com/MarinaMenezess/devSocial/internal/core/feed"
	"github.com/MarinaMenezess/devSocial/internal/core/interactions"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
	postgresRepo "github.com/MarinaMenezess/devSocial/internal/db/postgres"
	"github.com/MarinaMenezess/devSocial/internal/imagestore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

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
	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Migrations completed successfully")

	ctx := context.Background()

	images, err := imagestore.New(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatal("Failed to connect to image store:", err)
	}

	// Repositories and services
	postRepo := postgresRepo.NewPostRepository(db)
	userRepo := postgresRepo.NewUserRepository(db)
	interactionRepo := postgresRepo.NewInteractionRepository(db)
	feedRepo := postgresRepo.NewFeedRepository(db)

	postService := posts.NewService(postRepo, nil)
	userService := users.NewService(userRepo, nil)
	interactionService := interactions.NewService(interactionRepo, nil)
	feedService := feed.NewService(feedRepo, nil)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authMiddleware := middleware.NewAuthMiddleware(tokens, nil)
	uploadHandler := upload.NewHandler(images, cfg.PublicBaseURL, nil)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.Use(rateLimiter.Middleware)

	r.Route("/api", func(r chi.Router) {
		routes.RegisterAccountRoutes(r, userService, tokens)
		routes.RegisterPostRoutes(r, postService, feedService, interactionService, authMiddleware)
		routes.RegisterUserRoutes(r, userService, feedService, authMiddleware)
		routes.RegisterUploadRoutes(r, uploadHandler, authMiddleware)
	})
	routes.RegisterImageRoutes(r, uploadHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
