// Mood Tracker API
//
// REST API for logging moods and analyzing mood patterns.
//
//	@title			Mood Tracker API
//	@version		1.0
//	@description	Log mood check-ins with energy, stress, sleep and emotions, and get rule-based insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			mood-entries
//	@tag.description	Mood check-in endpoints
//
//	@tag.name			mood
//	@tag.description	Mood chart data and statistics
//
//	@tag.name			mood-insights
//	@tag.description	Rule-based and LLM mood insights
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/mood-tracker/internal/api"
	"github.com/blaisecz/mood-tracker/internal/api/handler"
	"github.com/blaisecz/mood-tracker/internal/config"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/langfuse"
	"github.com/blaisecz/mood-tracker/internal/llm"
	"github.com/blaisecz/mood-tracker/internal/logging"
	"github.com/blaisecz/mood-tracker/internal/metrics"
	"github.com/blaisecz/mood-tracker/internal/repository"
	"github.com/blaisecz/mood-tracker/internal/seed"
	"github.com/blaisecz/mood-tracker/internal/service"
	"github.com/blaisecz/mood-tracker/internal/telemetry"
	"go.uber.org/zap"
)

const (
	serviceName     = "mood-tracker-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mood-tracker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName, log)
	if err != nil {
		return err
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.MoodEntry{}, &domain.JournalEntry{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data")
		if err := seed.Run(db, log); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	moodEntryRepo := repository.NewMoodEntryRepository(db)
	journalEntryRepo := repository.NewJournalEntryRepository(db)

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// The coach is optional: without an API key the summary endpoint answers 503
	var coach llm.CoachLLM
	if c := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIMoodCoachModel, loadCoachPrompt(ctx, cfg, log)); c != nil {
		coach = c
	} else {
		log.Warn("OpenAI API key not configured, coach summary endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	moodEntryService := service.NewMoodEntryService(moodEntryRepo, userRepo)
	journalEntryService := service.NewJournalEntryService(journalEntryRepo, moodEntryRepo, userRepo)
	statsService := service.NewStatsService(moodEntryRepo, userRepo)
	insightsService := service.NewInsightsService(service.InsightsDeps{
		MoodEntryRepo:     moodEntryRepo,
		UserRepo:          userRepo,
		Coach:             coach,
		Langfuse:          langfuseClient,
		Metrics:           m,
		Logger:            log,
		DefaultWindowDays: cfg.InsightsWindowDays,
	})

	// Setup router
	router := api.NewRouter(api.Handlers{
		User:         handler.NewUserHandler(userService),
		MoodEntry:    handler.NewMoodEntryHandler(moodEntryService),
		JournalEntry: handler.NewJournalEntryHandler(journalEntryService),
		Mood:         handler.NewMoodHandler(moodEntryService, statsService),
		Insights:     handler.NewInsightsHandler(insightsService),
	}, log, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		log.Warn("langfuse flush incomplete", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
	return nil
}

// loadCoachPrompt fetches the coach system prompt from Langfuse, falling back
// to the cached file and then to the built-in prompt.
func loadCoachPrompt(ctx context.Context, cfg *config.Config, log *zap.Logger) string {
	if cfg.LangfuseCoachPrompt == "" && cfg.CoachPromptPath == "" {
		return llm.DefaultSystemPrompt
	}

	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prompt, err := langfuse.LoadCoachPrompt(loadCtx, langfuse.CoachPromptConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		Name:      cfg.LangfuseCoachPrompt,
		Label:     cfg.LangfuseCoachPromptLabel,
		CachePath: cfg.CoachPromptPath,
		Logger:    log,
	})
	if err != nil || prompt == "" {
		log.Info("using built-in coach prompt", zap.Error(err))
		return llm.DefaultSystemPrompt
	}
	return prompt
}
