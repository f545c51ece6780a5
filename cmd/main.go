// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"go_verb_master/internal/catalog"
	"go_verb_master/internal/config"
	"go_verb_master/internal/handlers"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/repository"
	"go_verb_master/internal/scheduler"
	"go_verb_master/internal/service"
	"go_verb_master/internal/speech"
)

func main() {
	// temporary logger until the configured one exists
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("env", cfg.Env))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Catalog
	source, err := catalog.NewSource(cfg.Catalog.Source, cfg.Catalog.Location, cfg.Catalog.Timeout)
	if err != nil {
		slog.Error("Invalid catalog source", slog.Any("error", err))
		os.Exit(1)
	}
	verbCatalog := catalog.New(source, logger)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Catalog.Timeout)
	verbs := verbCatalog.Load(loadCtx)
	cancelLoad()
	slog.Info("Verb catalog ready", slog.String("source", source.Name()), slog.Int("verbs", len(verbs)))

	refresher := scheduler.New(verbCatalog, cfg.Catalog.RefreshInterval, cfg.Catalog.Timeout, logger)
	if err := refresher.Start(); err != nil {
		slog.Error("Could not schedule catalog refresh", slog.Any("error", err))
	}
	defer refresher.Stop()

	synthesizer := newSynthesizer(cfg, logger)
	defer synthesizer.Close()

	// Dependency Injection
	progressRepo := repository.NewProgressRepository(repository.NewGormKVRepository())
	trainer := service.NewTrainer(db, progressRepo, verbCatalog, cfg, logger)

	api := handlers.Handlers{
		Session:  handlers.NewSessionHandler(service.NewSessionService(trainer, synthesizer), logger),
		Review:   handlers.NewReviewHandler(service.NewReviewService(trainer), logger),
		Game:     handlers.NewGameHandler(service.NewGameService(trainer), logger),
		Progress: handlers.NewProgressHandler(service.NewProgressService(trainer), logger),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	r.Route("/api/v1", api.Routes)
	r.Get("/health", healthHandler(db))

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	slog.Info("Server exiting")
}

func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch cfg.Log.Level {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	if cfg.IsDev() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

// newSynthesizer falls back to the no-op synthesizer when Google TTS is
// disabled or cannot be initialized.
func newSynthesizer(cfg *config.Config, logger *slog.Logger) speech.Synthesizer {
	if !cfg.Speech.GoogleTTSEnabled {
		logger.Info("Speech output disabled")
		return speech.NoopSynthesizer{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	synth, err := speech.NewGoogleSynthesizer(ctx, speech.GoogleConfig{
		LanguageCode: cfg.Speech.LanguageCode,
		VoiceName:    cfg.Speech.VoiceName,
		SpeakingRate: cfg.Speech.SpeakingRate,
	}, logger)
	if err != nil {
		logger.Warn("Google Text-to-Speech unavailable, speech output disabled", slog.Any("error", err))
		return speech.NoopSynthesizer{}
	}
	logger.Info("Google Text-to-Speech enabled", slog.String("language", cfg.Speech.LanguageCode))
	return synth
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
