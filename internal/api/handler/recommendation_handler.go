package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/langfuse"
	"github.com/gstrauss42/life-tracker/internal/llm"
	"github.com/gstrauss42/life-tracker/internal/service"
	"github.com/gstrauss42/life-tracker/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// RecommendationHandler handles AI recommendation endpoints.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
	langfuseClient        langfuse.Client
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService, langfuseClient langfuse.Client) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		langfuseClient:        langfuseClient,
	}
}

// Generate handles POST /v1/users/{userId}/recommendations
// @Summary Generate AI habit recommendations
// @Description Build the analytics snapshot, generate an LLM analysis from it, and store the result.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param window_days query integer false "Number of days to analyze" default(14) minimum(1) maximum(365)
// @Success 200 {object} domain.RecommendationsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /users/{userId}/recommendations [post]
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultAggregateWindowDays)
	if windowDays < 1 || windowDays > service.MaxWindowDays {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	analysis, err := h.recommendationService.Generate(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate recommendations from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate recommendations").Write(w)
		return
	}

	response := domain.RecommendationsResponse{Analysis: *analysis}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		response.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetLatest handles GET /v1/users/{userId}/recommendations/latest
// @Summary Get the latest stored recommendations
// @Tags recommendations
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.RecommendationsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or analysis not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations/latest [get]
func (h *RecommendationHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	analysis, err := h.recommendationService.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No stored analysis for user").Write(w)
			return
		}
		problem.InternalError("Failed to get recommendations").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.RecommendationsResponse{Analysis: *analysis})
}

// FeedbackRequest is the request body for recommendation feedback.
// @Description Request body for submitting feedback on recommendations.
type FeedbackRequest struct {
	// Trace ID from the recommendations response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Spot on about the fiber."`
}

// PostFeedback handles POST /v1/users/{userId}/recommendations/feedback
// @Summary Submit feedback on recommendations
// @Description Submit a user rating and optional comment for a previous recommendations response.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations/feedback [post]
func (h *RecommendationHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged inside the client; feedback is accepted either way
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
