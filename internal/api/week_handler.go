package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WeekHandler serves weeks, their daily weights and the weight summary.
type WeekHandler struct {
	weekService     service.WeekService
	progressService service.ProgressService
}

// NewWeekHandler creates a new WeekHandler.
func NewWeekHandler(weekService service.WeekService, progressService service.ProgressService) *WeekHandler {
	return &WeekHandler{weekService: weekService, progressService: progressService}
}

// --- DTOs ---

type CreateWeekRequest struct {
	Name       string `json:"name" binding:"required"`
	Target     string `json:"target" binding:"required,oneof=bulk cut"`
	IsArchived *bool  `json:"isArchived"`
}

type UpdateWeekRequest struct {
	Name       *string `json:"name"`
	Target     *string `json:"target" binding:"omitempty,oneof=bulk cut"`
	IsArchived *bool   `json:"isArchived"`
}

type WeekResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Target     string `json:"target"`
	IsArchived bool   `json:"isArchived"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type CreateDailyWeightRequest struct {
	Weight *float64 `json:"weight" binding:"required,gte=0"`
	Date   string   `json:"date" binding:"required"`
}

type UpdateDailyWeightRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
	Date   *string  `json:"date"`
}

type DailyWeightResponse struct {
	ID        string  `json:"id"`
	WeekID    string  `json:"weekId"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func MapWeekToResponse(w *domain.Week) WeekResponse {
	return WeekResponse{
		ID:         w.ID.Hex(),
		UserID:     w.UserID,
		Name:       w.Name,
		Target:     string(w.Target),
		IsArchived: w.IsArchived,
		CreatedAt:  domain.FormatDate(w.CreatedAt),
		UpdatedAt:  domain.FormatDate(w.UpdatedAt),
	}
}

func MapDailyWeightToResponse(d *domain.DailyWeight) DailyWeightResponse {
	return DailyWeightResponse{
		ID:        d.ID.Hex(),
		WeekID:    d.WeekID.Hex(),
		Weight:    d.Weight,
		Date:      domain.FormatDate(d.Date),
		CreatedAt: domain.FormatDate(d.CreatedAt),
		UpdatedAt: domain.FormatDate(d.UpdatedAt),
	}
}

// --- Week handlers ---

// CreateWeek godoc
// @Summary Create a bulk or cut week
// @Tags Weeks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param week body CreateWeekRequest true "Week details"
// @Success 201 {object} WeekResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /weeks [post]
func (h *WeekHandler) CreateWeek(c *gin.Context) {
	var req CreateWeekRequest
	if !bindJSON(c, &req) {
		return
	}
	archived := req.IsArchived != nil && *req.IsArchived
	week, err := h.weekService.CreateWeek(c.Request.Context(), callerFromContext(c), req.Name, req.Target, archived)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapWeekToResponse(week))
}

// ListWeeks returns an empty list for anonymous callers.
func (h *WeekHandler) ListWeeks(c *gin.Context) {
	weeks, err := h.weekService.ListWeeks(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]WeekResponse, len(weeks))
	for i := range weeks {
		resp[i] = MapWeekToResponse(&weeks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WeekHandler) GetWeek(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	week, err := h.weekService.GetWeekByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWeekToResponse(week))
}

func (h *WeekHandler) UpdateWeek(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateWeekRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.WeekPatch{Name: req.Name, IsArchived: req.IsArchived}
	if req.Target != nil {
		target, err := domain.ParseTarget(*req.Target)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		patch.Target = &target
	}
	if err := h.weekService.UpdateWeek(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WeekHandler) DeleteWeek(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.weekService.DeleteWeek(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// WeekSummary godoc
// @Summary Weight statistics for a week
// @Description Starting, current, average, min and max weight in date order. A week without entries yields count 0.
// @Tags Weeks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Week ID"
// @Success 200 {object} service.WeightSummary
// @Failure 403 {object} gin.H "Week belongs to another user"
// @Failure 404 {object} gin.H "Week not found"
// @Router /weeks/{id}/summary [get]
func (h *WeekHandler) WeekSummary(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	summary, err := h.progressService.WeekSummary(c.Request.Context(), callerFromContext(c), id)
	if err != nil && !errors.Is(err, service.ErrEmptySeries) {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --- Daily weight handlers ---

func (h *WeekHandler) CreateDailyWeight(c *gin.Context) {
	weekID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateDailyWeightRequest
	if !bindJSON(c, &req) {
		return
	}
	date, ok := dateField(c, "date", req.Date)
	if !ok {
		return
	}

	entry, err := h.weekService.CreateDailyWeight(c.Request.Context(), callerFromContext(c), weekID, *req.Weight, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapDailyWeightToResponse(entry))
}

func (h *WeekHandler) ListDailyWeights(c *gin.Context) {
	weekID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	entries, err := h.weekService.ListDailyWeightsByWeek(c.Request.Context(), callerFromContext(c), weekID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]DailyWeightResponse, len(entries))
	for i := range entries {
		resp[i] = MapDailyWeightToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WeekHandler) GetDailyWeight(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.weekService.GetDailyWeightByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDailyWeightToResponse(entry))
}

func (h *WeekHandler) UpdateDailyWeight(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateDailyWeightRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.DailyWeightPatch{Weight: req.Weight}
	if req.Date != nil {
		date, ok := dateField(c, "date", *req.Date)
		if !ok {
			return
		}
		patch.Date = &date
	}
	if err := h.weekService.UpdateDailyWeight(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WeekHandler) DeleteDailyWeight(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.weekService.DeleteDailyWeight(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
