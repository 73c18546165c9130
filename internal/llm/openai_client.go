package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no managed prompt could be loaded.
const DefaultSystemPrompt = `You are a supportive, non-medical mood journaling coach.

You receive the output of a rule-based analysis of one user's mood log: weekly patterns, statistical insights and recommendations. Base your answer only on that data.

Your goals:
- Summarize how the user's mood has been going in warm, neutral language.
- Point out the patterns and insights that matter most.
- Turn the recommendations into small, practical next steps.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention disorders, medication or treatment.
- If a recommendation has the "support" category, gently encourage talking to someone they trust.
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's recent mood.",
  "highlights": ["2-4 short observations drawn from the patterns and insights."],
  "suggestions": ["2-4 concrete, non-medical next steps drawn from the recommendations."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the analysis of this user's mood log.

- "patterns" are weekday patterns (best and worst day with averages).
- "insights" are correlations, trends and frequent emotions, each with a polarity and evidence.
- "recommendations" are rule-based suggestions with a category and priority.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM turns an analysis result into a short narrative.
type CoachLLM interface {
	Summarize(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error)
}

// chatCompletions is the subset of the OpenAI SDK the client calls.
type chatCompletions interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	completions  chatCompletions
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for the mood coach.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return newOpenAIClient(&client.Chat.Completions, model, systemPrompt)
}

func newOpenAIClient(completions chatCompletions, model, systemPrompt string) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &OpenAIClient{
		completions:  completions,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Summarize calls OpenAI to narrate an analysis result.
func (c *OpenAIClient) Summarize(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}
	if result == nil {
		return nil, fmt.Errorf("%w: nothing to summarize", ErrOpenAIRequest)
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize result: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(resultJSON))),
		},
		Temperature: openai.Float(0.4),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseCoachSummary(resp.Choices[0].Message.Content)
}

func parseCoachSummary(content string) (*domain.CoachSummary, error) {
	// Some models wrap JSON in a markdown fence despite instructions.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out domain.CoachSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	if out.Highlights == nil {
		out.Highlights = []string{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	return &out, nil
}
