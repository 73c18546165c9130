package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/langfuse"
	"github.com/blaisecz/mood-tracker/internal/llm"
	"github.com/blaisecz/mood-tracker/internal/metrics"
	"github.com/blaisecz/mood-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultInsightsWindowDays is used when no window is configured.
	DefaultInsightsWindowDays = 90

	// MinInsightEntries is the entry count below which a keep-logging notice is added.
	MinInsightEntries = 3

	feedbackScoreName = "user_rating"
)

// Analyzer runs the rule-based mood analysis.
type Analyzer interface {
	Analyze(records []analysis.Record) (*analysis.Result, error)
}

// InsightsService produces rule-based mood insights and the optional coach narrative.
type InsightsService interface {
	// Generate analyzes the user's entries of the last windowDays days.
	Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.InsightsResponse, error)
	// Summarize narrates the Generate result with the LLM coach.
	Summarize(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.CoachSummaryResponse, error)
	// Feedback attaches a user rating to a previous insights trace.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

// InsightsDeps groups the collaborators of the insights service.
type InsightsDeps struct {
	Analyzer      Analyzer
	MoodEntryRepo repository.MoodEntryRepository
	UserRepo      repository.UserRepository
	Coach         llm.CoachLLM
	Langfuse      langfuse.Client
	Metrics       *metrics.Metrics
	Logger        *zap.Logger

	// DefaultWindowDays applies when callers pass a non-positive window.
	DefaultWindowDays int
}

type insightsService struct {
	analyzer      Analyzer
	moodEntryRepo repository.MoodEntryRepository
	userRepo      repository.UserRepository
	coach         llm.CoachLLM
	langfuse      langfuse.Client
	metrics       *metrics.Metrics
	log           *zap.Logger
	defaultWindow int
	now           func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(deps InsightsDeps) InsightsService {
	s := &insightsService{
		analyzer:      deps.Analyzer,
		moodEntryRepo: deps.MoodEntryRepo,
		userRepo:      deps.UserRepo,
		coach:         deps.Coach,
		langfuse:      deps.Langfuse,
		metrics:       deps.Metrics,
		log:           deps.Logger,
		defaultWindow: deps.DefaultWindowDays,
		now:           time.Now,
	}
	if s.analyzer == nil {
		s.analyzer = analysis.NewEngine()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.defaultWindow <= 0 {
		s.defaultWindow = DefaultInsightsWindowDays
	}
	return s
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.InsightsResponse, error) {
	if windowDays <= 0 {
		windowDays = s.defaultWindow
	}
	if windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidInput
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	tracer := otel.Tracer("mood-tracker-api/insights")
	ctx, span := tracer.Start(ctx, "MoodInsights.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	to := s.now().UTC()
	from := to.AddDate(0, 0, -windowDays)

	entries, err := s.moodEntryRepo.ListByLoggedRange(ctx, userID, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	records := domain.ToRecords(entries)
	input := map[string]any{
		"user_id":     userID.String(),
		"window_days": windowDays,
		"entries":     len(records),
	}
	if inputJSON, err := json.Marshal(input); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	result, err := s.analyzer.Analyze(records)
	if err != nil {
		s.observeFailure(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		s.log.Error("mood analysis failed",
			zap.String("user_id", userID.String()),
			zap.Int("entries", len(records)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("analyze mood entries: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveResult(result)
	}

	response := &domain.InsightsResponse{
		Patterns:        result.Patterns,
		Insights:        result.Insights,
		Recommendations: result.Recommendations,
		EntriesAnalyzed: len(records),
		WindowDays:      windowDays,
	}
	if len(records) < MinInsightEntries {
		response.Notice = domain.KeepLoggingNotice
	}

	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response.TraceID = s.recordTrace(ctx, span, userID, input, result)

	return response, nil
}

func (s *insightsService) Summarize(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.CoachSummaryResponse, error) {
	if s.coach == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	insights, err := s.Generate(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	summary, err := s.coach.Summarize(ctx, insights.Result())
	if err != nil {
		if !errors.Is(err, llm.ErrOpenAIUnavailable) {
			s.log.Warn("mood coach failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, err
	}

	return &domain.CoachSummaryResponse{
		Coach:           *summary,
		EntriesAnalyzed: insights.EntriesAnalyzed,
		TraceID:         insights.TraceID,
	}, nil
}

func (s *insightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}

	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		// Feedback is still accepted so clients need not know about tracing
		s.log.Debug("feedback dropped: langfuse disabled", zap.String("trace_id", req.TraceID))
		return nil
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}

// recordTrace returns the ID clients use for feedback: the Langfuse trace when
// enabled, otherwise the OpenTelemetry trace ID if one is recording.
func (s *insightsService) recordTrace(ctx context.Context, span trace.Span, userID uuid.UUID, input map[string]any, result *analysis.Result) string {
	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		return traceID
	}

	id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: userID.String(),
		Name:   "mood-insights",
		Input:  input,
		Output: result,
		Tags:   []string{"mood-tracker", "insights"},
		Metadata: map[string]any{
			"patterns":        len(result.Patterns),
			"insights":        len(result.Insights),
			"recommendations": len(result.Recommendations),
		},
	})
	if err != nil {
		s.log.Warn("langfuse trace failed", zap.Error(err))
		return traceID
	}
	return id
}

func (s *insightsService) observeFailure(err error) {
	if s.metrics == nil {
		return
	}
	if errors.Is(err, analysis.ErrInvalidRecord) {
		s.metrics.ObserveFailure(metrics.ResultInvalid)
		return
	}
	s.metrics.ObserveFailure(metrics.ResultError)
}

func (s *insightsService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
