package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/service"
	"github.com/gstrauss42/life-tracker/pkg/problem"
)

// AnalyticsHandler handles derived analytics endpoints.
type AnalyticsHandler struct {
	nutritionService service.NutritionService
	overviewService  service.OverviewService
	streakService    service.StreakService
	patternService   service.PatternService
	aggregateService service.AggregateService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(
	nutritionService service.NutritionService,
	overviewService service.OverviewService,
	streakService service.StreakService,
	patternService service.PatternService,
	aggregateService service.AggregateService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		nutritionService: nutritionService,
		overviewService:  overviewService,
		streakService:    streakService,
		patternService:   patternService,
		aggregateService: aggregateService,
	}
}

// GetTodayNutrition handles GET /v1/users/{userId}/analytics/nutrition/today
// @Summary Get today's nutrition summary
// @Description Totals, deficiencies, and goal progress for the current calendar date. A day with nothing logged yields all-zero totals and every tracked nutrient flagged deficient.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.TodayNutrition
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/nutrition/today [get]
func (h *AnalyticsHandler) GetTodayNutrition(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.nutritionService.Today(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute nutrition summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetNutritionOverview handles GET /v1/users/{userId}/analytics/nutrition/overview
// @Summary Get multi-day nutrition overview
// @Description Average intake, per-nutrient deficiency trends, and consistent deficiencies over a configurable window.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param window_days query integer false "Number of days to analyze" default(14) minimum(1) maximum(365)
// @Success 200 {object} domain.MultiDayNutritionOverviewResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/nutrition/overview [get]
func (h *AnalyticsHandler) GetNutritionOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultOverviewWindowDays)
	if windowDays < 1 || windowDays > service.MaxWindowDays {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	overview, err := h.overviewService.Build(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute nutrition overview").Write(w)
		return
	}

	response := domain.MultiDayNutritionOverviewResponse{
		MultiDayNutritionOverview: *overview,
		HasEnoughData:             overview.HasEnoughData(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetStreaks handles GET /v1/users/{userId}/analytics/streaks
// @Summary Get streaks for a metric
// @Description Current streak, longest streak, and goal-hit rate for one metric over a configurable window.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param metric query string true "Metric name" Enums(water, exercise, sunlight, sleep, social, nutrition, overall)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.StreakResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/streaks [get]
func (h *AnalyticsHandler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		problem.BadRequest("metric is required").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultStreakWindowDays)
	if windowDays < 1 || windowDays > service.MaxWindowDays {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	result, err := h.streakService.Compute(r.Context(), userID, metric, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Unknown metric: " + metric).Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute streaks").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetPatterns handles GET /v1/users/{userId}/analytics/patterns
// @Summary Get behavioral patterns
// @Description Day-of-week averages, metric correlations, and trend classifications over a configurable window.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.PatternData
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/patterns [get]
func (h *AnalyticsHandler) GetPatterns(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultPatternWindowDays)
	if windowDays < 1 || windowDays > service.MaxWindowDays {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	patterns, err := h.patternService.Build(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute patterns").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patterns)
}

// GetSummary handles GET /v1/users/{userId}/analytics/summary
// @Summary Get the full analytics snapshot
// @Description Complete aggregated snapshot across all metric families plus its deterministic text rendering.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param window_days query integer false "Number of days to analyze" default(14) minimum(1) maximum(365)
// @Success 200 {object} domain.AggregateSummaryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.aggregateService.Build(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build summary").Write(w)
		return
	}

	response := domain.AggregateSummaryResponse{
		Data:      *data,
		AIContext: service.RenderAIContext(*data),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
