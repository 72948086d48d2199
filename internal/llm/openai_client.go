package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gstrauss42/life-tracker/internal/domain"
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

// DefaultSystemPrompt is used when no prompt override is configured.
const DefaultSystemPrompt = `You are a non-medical personal health habit assistant.

You receive an aggregated summary of one user's recent habit data: nutrition, exercise, social activity, water, sunlight, sleep, and detected patterns. Base your conclusions only on the provided data.

Your goals:
- Recognize habits the user is keeping up well.
- Point out metrics and nutrients that need attention, especially consistent deficiencies and broken streaks.
- Give practical, behavioral suggestions grounded in the numbers.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, supplements dosing, or treatment.
- Focus only on behavior and routines (meal planning, scheduling exercise, winding down for sleep, getting outside).
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "working": [
    "2-4 bullet points naming habits the user is doing well, with the numbers that show it."
  ],
  "attention": [
    "2-4 bullet points naming metrics or nutrients that need attention, with the numbers that show it."
  ],
  "recommendations": [
    "3-5 concrete, non-medical suggestions tailored to these numbers."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is a plain-text summary of this user's recent health tracking data.

It covers nutrition (averages, goal hit rates, consistent deficiencies), exercise (sessions, streaks, preferred workout types), social activity, daily habits (water, sunlight, sleep), and detected patterns (day-of-week peaks, correlations, trends).

Summary:

%s

Based on this data, respond in the required JSON format.`

// RecommendationLLM generates habit recommendations from an aggregated
// context string.
type RecommendationLLM interface {
	// GenerateRecommendations takes the rendered analytics context and
	// returns the structured analysis.
	GenerateRecommendations(ctx context.Context, aiContext string) (*domain.AIAnalysis, error)
}

// OpenAIClient implements RecommendationLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating
// recommendations. systemPrompt overrides the default when non-empty.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateRecommendations calls OpenAI to generate habit recommendations.
func (c *OpenAIClient) GenerateRecommendations(ctx context.Context, aiContext string) (*domain.AIAnalysis, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, aiContext)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var analysis domain.AIAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &analysis, nil
}
