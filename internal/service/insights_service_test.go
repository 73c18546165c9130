package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/llm"
	"github.com/blaisecz/mood-tracker/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type insightsFixture struct {
	svc      *insightsService
	repo     *MockMoodEntryRepository
	users    *MockUserRepository
	langfuse *MockLangfuseClient
	user     *domain.User
}

func newInsightsFixture(deps InsightsDeps) *insightsFixture {
	f := &insightsFixture{
		repo:     NewMockMoodEntryRepository(),
		users:    NewMockUserRepository(),
		langfuse: &MockLangfuseClient{enabled: true},
	}
	deps.MoodEntryRepo = f.repo
	deps.UserRepo = f.users
	if deps.Langfuse == nil {
		deps.Langfuse = f.langfuse
	}
	f.svc = NewInsightsService(deps).(*insightsService)
	f.svc.now = fixedClock(testNow)
	f.user = f.users.addUser("UTC")
	return f
}

// addDays logs one entry per day going back from testNow.
func (f *insightsFixture) addDays(n int, entry domain.MoodEntry) {
	for i := 0; i < n; i++ {
		e := entry
		e.UserID = f.user.ID
		e.LoggedAt = testNow.Add(-time.Hour).AddDate(0, 0, -i)
		e.LocalTimezone = "UTC"
		f.repo.add(e)
	}
}

func TestInsightsService_Generate_LowMoodWeek(t *testing.T) {
	m := metrics.New()
	before := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(metrics.ResultOK))

	f := newInsightsFixture(InsightsDeps{Metrics: m})
	f.addDays(7, domain.MoodEntry{MoodScore: 3, StressLevel: intPtr(8), SleepHours: floatPtr(5)})

	resp, err := f.svc.Generate(context.Background(), f.user.ID, 30)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if resp.EntriesAnalyzed != 7 || resp.WindowDays != 30 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.Notice != "" {
		t.Errorf("unexpected notice %q", resp.Notice)
	}

	got := map[analysis.RecommendationCategory]bool{}
	for _, r := range resp.Recommendations {
		got[r.Category] = true
	}
	for _, want := range []analysis.RecommendationCategory{analysis.RecommendSleep, analysis.RecommendStress, analysis.RecommendSupport} {
		if !got[want] {
			t.Errorf("expected %s recommendation, got %+v", want, resp.Recommendations)
		}
	}

	if resp.TraceID != "trace-mood-insights" {
		t.Errorf("expected langfuse trace id, got %q", resp.TraceID)
	}
	if len(f.langfuse.traces) != 1 || f.langfuse.traces[0].UserID != f.user.ID.String() {
		t.Errorf("expected one trace for the user, got %+v", f.langfuse.traces)
	}

	if after := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(metrics.ResultOK)); after != before+1 {
		t.Errorf("expected analysis run counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestInsightsService_Generate_KeepLoggingNotice(t *testing.T) {
	f := newInsightsFixture(InsightsDeps{})
	f.addDays(2, domain.MoodEntry{MoodScore: 7})

	resp, err := f.svc.Generate(context.Background(), f.user.ID, 0)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if resp.Notice != domain.KeepLoggingNotice {
		t.Errorf("expected keep logging notice, got %q", resp.Notice)
	}
	if resp.WindowDays != DefaultInsightsWindowDays {
		t.Errorf("expected default window, got %d", resp.WindowDays)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Category != analysis.RecommendGeneral {
		t.Errorf("expected single general recommendation, got %+v", resp.Recommendations)
	}
	if resp.Patterns == nil || resp.Insights == nil {
		t.Error("expected non-nil slices")
	}
}

func TestInsightsService_Generate_RecordsOldestFirstInLocalTime(t *testing.T) {
	analyzer := &MockAnalyzer{AnalyzeFunc: func(records []analysis.Record) (*analysis.Result, error) {
		return &analysis.Result{Patterns: []analysis.Pattern{}, Insights: []analysis.Insight{}, Recommendations: []analysis.Recommendation{}}, nil
	}}
	f := newInsightsFixture(InsightsDeps{Analyzer: analyzer, DefaultWindowDays: 14})

	f.repo.add(domain.MoodEntry{UserID: f.user.ID, MoodScore: 5, LoggedAt: testNow.Add(-time.Hour), LocalTimezone: "Asia/Tokyo"})
	f.repo.add(domain.MoodEntry{UserID: f.user.ID, MoodScore: 6, LoggedAt: testNow.Add(-48 * time.Hour), LocalTimezone: "UTC"})

	if _, err := f.svc.Generate(context.Background(), f.user.ID, 0); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(analyzer.calls) != 1 || len(analyzer.calls[0]) != 2 {
		t.Fatalf("expected one call with 2 records, got %+v", analyzer.calls)
	}
	records := analyzer.calls[0]
	if records[0].MoodScore != 6 || records[1].MoodScore != 5 {
		t.Errorf("expected oldest first, got %d then %d", records[0].MoodScore, records[1].MoodScore)
	}
	if records[1].Timestamp.Location().String() != "Asia/Tokyo" {
		t.Errorf("expected local timezone, got %s", records[1].Timestamp.Location())
	}
	if !f.repo.rangeFrom.Equal(testNow.AddDate(0, 0, -14)) {
		t.Errorf("expected configured default window, got from=%v", f.repo.rangeFrom)
	}
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newInsightsFixture(InsightsDeps{})
		if _, err := f.svc.Generate(context.Background(), uuid.New(), 30); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("window too large", func(t *testing.T) {
		f := newInsightsFixture(InsightsDeps{})
		if _, err := f.svc.Generate(context.Background(), f.user.ID, 366); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid stored record", func(t *testing.T) {
		m := metrics.New()
		before := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(metrics.ResultInvalid))

		f := newInsightsFixture(InsightsDeps{Metrics: m})
		f.addDays(1, domain.MoodEntry{MoodScore: 11})

		_, err := f.svc.Generate(context.Background(), f.user.ID, 30)
		if !errors.Is(err, analysis.ErrInvalidRecord) {
			t.Fatalf("expected ErrInvalidRecord, got %v", err)
		}
		if after := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(metrics.ResultInvalid)); after != before+1 {
			t.Errorf("expected invalid counter to increase, got %v -> %v", before, after)
		}
		if len(f.langfuse.traces) != 0 {
			t.Error("no trace expected for a failed analysis")
		}
	})
}

func TestInsightsService_Generate_LangfuseDisabled(t *testing.T) {
	lf := &MockLangfuseClient{enabled: false}
	f := newInsightsFixture(InsightsDeps{Langfuse: lf})
	f.addDays(3, domain.MoodEntry{MoodScore: 6})

	resp, err := f.svc.Generate(context.Background(), f.user.ID, 30)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if resp.TraceID != "" {
		t.Errorf("expected no trace id without tracing, got %q", resp.TraceID)
	}
	if len(lf.traces) != 0 {
		t.Error("disabled client must not receive traces")
	}
}

func TestInsightsService_Summarize(t *testing.T) {
	t.Run("coach not configured", func(t *testing.T) {
		f := newInsightsFixture(InsightsDeps{})
		if _, err := f.svc.Summarize(context.Background(), f.user.ID, 30); !errors.Is(err, llm.ErrOpenAIUnavailable) {
			t.Fatalf("expected ErrOpenAIUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		var received *analysis.Result
		coach := &MockCoachLLM{SummarizeFunc: func(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error) {
			received = result
			return &domain.CoachSummary{Summary: "A calm week.", Highlights: []string{}, Suggestions: []string{}}, nil
		}}
		f := newInsightsFixture(InsightsDeps{Coach: coach})
		f.addDays(4, domain.MoodEntry{MoodScore: 7})

		resp, err := f.svc.Summarize(context.Background(), f.user.ID, 30)
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		if resp.Coach.Summary != "A calm week." || resp.EntriesAnalyzed != 4 || resp.TraceID == "" {
			t.Errorf("unexpected response %+v", resp)
		}
		if received == nil || received.Recommendations == nil {
			t.Error("coach should receive the analysis result")
		}
	})

	t.Run("llm failure", func(t *testing.T) {
		coach := &MockCoachLLM{SummarizeFunc: func(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error) {
			return nil, llm.ErrOpenAIResponse
		}}
		f := newInsightsFixture(InsightsDeps{Coach: coach})

		if _, err := f.svc.Summarize(context.Background(), f.user.ID, 30); !errors.Is(err, llm.ErrOpenAIResponse) {
			t.Fatalf("expected ErrOpenAIResponse, got %v", err)
		}
	})
}

func TestInsightsService_Feedback(t *testing.T) {
	f := newInsightsFixture(InsightsDeps{})
	req := &domain.InsightsFeedbackRequest{TraceID: "trace-1", Score: 4, Comment: "helpful"}

	if err := f.svc.Feedback(context.Background(), f.user.ID, req); err != nil {
		t.Fatalf("Feedback() error: %v", err)
	}
	if len(f.langfuse.scores) != 1 {
		t.Fatalf("expected one score, got %d", len(f.langfuse.scores))
	}
	score := f.langfuse.scores[0]
	if score.TraceID != "trace-1" || score.Value != 4 || score.Name != "user_rating" || score.Comment != "helpful" {
		t.Errorf("unexpected score %+v", score)
	}

	if err := f.svc.Feedback(context.Background(), uuid.New(), req); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	disabled := newInsightsFixture(InsightsDeps{Langfuse: &MockLangfuseClient{}})
	if err := disabled.svc.Feedback(context.Background(), disabled.user.ID, req); err != nil {
		t.Errorf("feedback without langfuse should be accepted, got %v", err)
	}
}
