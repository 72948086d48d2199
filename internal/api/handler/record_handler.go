package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/api/validation"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/service"
	"github.com/gstrauss42/life-tracker/pkg/problem"
)

// RecordHandler handles daily record endpoints.
type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/records/{date}
// @Summary Log or update a day's metrics
// @Description Create or patch the record for a calendar date. Omitted fields keep their current value.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date path string true "Date key (yyyy-MM-dd)" example(2024-03-15)
// @Param request body domain.UpsertDailyRecordRequest true "Day metrics"
// @Success 200 {object} domain.DailyRecordResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/records/{date} [put]
func (h *RecordHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	date := chi.URLParam(r, "date")

	var req domain.UpsertDailyRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Upsert(r.Context(), userID, date, &req)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// GetByDate handles GET /v1/users/{userId}/records/{date}
// @Summary Get one day's record
// @Tags records
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date path string true "Date key (yyyy-MM-dd)" example(2024-03-15)
// @Success 200 {object} domain.DailyRecordResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/records/{date} [get]
func (h *RecordHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	date := chi.URLParam(r, "date")

	record, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// List handles GET /v1/users/{userId}/records
// @Summary List daily records
// @Description List records newest first with cursor pagination and optional date bounds.
// @Tags records
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Lower date bound (yyyy-MM-dd)"
// @Param to query string false "Upper date bound (yyyy-MM-dd)"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.DailyRecordListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter := domain.DailyRecordFilter{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Cursor: r.URL.Query().Get("cursor"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Limit = parsed
		}
	}
	if !validation.ValidDateKey(filter.From) || !validation.ValidDateKey(filter.To) {
		problem.BadRequest("Date bounds must be yyyy-MM-dd").Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AddFoodEntry handles POST /v1/users/{userId}/records/{date}/food-entries
// @Summary Log a food item
// @Description Append a food entry to the date's record, creating the record when needed.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date path string true "Date key (yyyy-MM-dd)" example(2024-03-15)
// @Param request body domain.CreateFoodEntryRequest true "Food entry"
// @Success 201 {object} domain.FoodEntry
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/records/{date}/food-entries [post]
func (h *RecordHandler) AddFoodEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	date := chi.URLParam(r, "date")

	var req domain.CreateFoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.AddFoodEntry(r.Context(), userID, date, &req)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

// BulkClear handles DELETE /v1/users/{userId}/records
// @Summary Delete all records
// @Description Wipe the user's entire log history. Irreversible.
// @Tags records
// @Param userId path string true "User ID" format(uuid)
// @Success 204 "History cleared"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/records [delete]
func (h *RecordHandler) BulkClear(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.BulkClear(r.Context(), userID); err != nil {
		writeRecordError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		problem.BadRequest("Date must be yyyy-MM-dd").Write(w)
	case errors.Is(err, domain.ErrInvalidCursor):
		problem.BadRequest("Invalid pagination cursor").Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Resource not found").Write(w)
	default:
		problem.InternalError("Request failed").Write(w)
	}
}
