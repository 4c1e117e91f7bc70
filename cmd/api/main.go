package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arqsuite/arqsuite-api/internal/config"
	"github.com/arqsuite/arqsuite-api/internal/domain/catalog"
	"github.com/arqsuite/arqsuite-api/internal/domain/media"
	"github.com/arqsuite/arqsuite-api/internal/middleware"
	"github.com/arqsuite/arqsuite-api/internal/pkg/database"
	pkgresponse "github.com/arqsuite/arqsuite-api/internal/pkg/response"
	"github.com/arqsuite/arqsuite-api/internal/pkg/storage"
	"github.com/arqsuite/arqsuite-api/internal/pkg/token"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting ArqSuite API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	store, err := storage.New(storage.Config{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		Region:    cfg.StorageRegion,
		UseSSL:    cfg.StorageUseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create object storage client")
	}

	tokenService := token.NewService(cfg.AuthSecret, cfg.AuthIssuer, cfg.AuthAudience, cfg.AuthTokenTTL)
	authMiddleware := middleware.Auth(tokenService)

	// ---------- Handlers ----------
	// One repository/handler pair per kind, all driven by descriptors.
	catalogHandlers := make(map[string]*catalog.Handler, len(catalog.All))
	for _, desc := range catalog.All {
		repo := catalog.NewRepository(db, desc)
		catalogHandlers[desc.Resource] = catalog.NewHandler(repo, desc)
	}

	mediaService := media.NewService(store)
	mediaHandler := media.NewHandler(mediaService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		for _, desc := range catalog.All {
			r.Mount("/"+desc.Resource, catalogHandlers[desc.Resource].Routes())
		}

		r.Mount("/media", mediaHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
