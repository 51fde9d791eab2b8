package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TrackingPeriodHandler serves tracking periods and the views scoped to one period.
type TrackingPeriodHandler struct {
	periodService   service.TrackingPeriodService
	logService      service.ExerciseLogService
	progressService service.ProgressService
}

// NewTrackingPeriodHandler creates a new TrackingPeriodHandler.
func NewTrackingPeriodHandler(periodService service.TrackingPeriodService, logService service.ExerciseLogService, progressService service.ProgressService) *TrackingPeriodHandler {
	return &TrackingPeriodHandler{
		periodService:   periodService,
		logService:      logService,
		progressService: progressService,
	}
}

// --- DTOs ---

type CreateTrackingPeriodRequest struct {
	Name      string  `json:"name" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   *string `json:"endDate"`
}

// UpdateTrackingPeriodRequest sets clearEndDate to make the period open-ended again.
type UpdateTrackingPeriodRequest struct {
	Name         *string `json:"name"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	ClearEndDate bool    `json:"clearEndDate"`
}

type TrackingPeriodResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type ExerciseProgressResponse struct {
	Exercise ExerciseResponse      `json:"exercise"`
	Latest   ExerciseLogResponse   `json:"latest"`
	Logs     []ExerciseLogResponse `json:"logs"`
}

func MapTrackingPeriodToResponse(p *domain.TrackingPeriod) TrackingPeriodResponse {
	resp := TrackingPeriodResponse{
		ID:        p.ID.Hex(),
		UserID:    p.UserID,
		Name:      p.Name,
		StartDate: domain.FormatDate(p.StartDate),
		CreatedAt: domain.FormatDate(p.CreatedAt),
		UpdatedAt: domain.FormatDate(p.UpdatedAt),
	}
	if p.EndDate != nil {
		end := domain.FormatDate(*p.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// optionalDate parses value when present. ok is false if the request was aborted.
func optionalDate(c *gin.Context, name string, value *string) (t *time.Time, ok bool) {
	if value == nil {
		return nil, true
	}
	parsed, ok := dateField(c, name, *value)
	if !ok {
		return nil, false
	}
	return &parsed, true
}

// CreateTrackingPeriod godoc
// @Summary Create a tracking period
// @Tags TrackingPeriods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param period body CreateTrackingPeriodRequest true "Period details, ISO-8601 dates"
// @Success 201 {object} TrackingPeriodResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /periods [post]
func (h *TrackingPeriodHandler) CreateTrackingPeriod(c *gin.Context) {
	var req CreateTrackingPeriodRequest
	if !bindJSON(c, &req) {
		return
	}
	start, ok := dateField(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	end, ok := optionalDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	period, err := h.periodService.CreateTrackingPeriod(c.Request.Context(), callerFromContext(c), service.TrackingPeriodInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapTrackingPeriodToResponse(period))
}

func (h *TrackingPeriodHandler) ListTrackingPeriods(c *gin.Context) {
	periods, err := h.periodService.ListTrackingPeriods(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]TrackingPeriodResponse, len(periods))
	for i := range periods {
		resp[i] = MapTrackingPeriodToResponse(&periods[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrackingPeriodHandler) GetTrackingPeriod(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	period, err := h.periodService.GetTrackingPeriodByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapTrackingPeriodToResponse(period))
}

func (h *TrackingPeriodHandler) UpdateTrackingPeriod(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateTrackingPeriodRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.TrackingPeriodPatch{Name: req.Name, ClearEndDate: req.ClearEndDate}
	if patch.StartDate, ok = optionalDate(c, "startDate", req.StartDate); !ok {
		return
	}
	if patch.EndDate, ok = optionalDate(c, "endDate", req.EndDate); !ok {
		return
	}
	if err := h.periodService.UpdateTrackingPeriod(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackingPeriodHandler) DeleteTrackingPeriod(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.periodService.DeleteTrackingPeriod(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPeriodLogs returns the period's logs, newest first.
func (h *TrackingPeriodHandler) ListPeriodLogs(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	logs, err := h.logService.ListExerciseLogsByPeriod(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseLogsToResponse(logs))
}

// PeriodProgress godoc
// @Summary Exercise logs of a period grouped by exercise
// @Description Each group lists its logs newest first; latest is the first of them.
// @Tags TrackingPeriods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tracking period ID"
// @Success 200 {array} ExerciseProgressResponse
// @Failure 403 {object} gin.H "Period belongs to another user"
// @Failure 404 {object} gin.H "Period not found"
// @Router /periods/{id}/progress [get]
func (h *TrackingPeriodHandler) PeriodProgress(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	progress, err := h.progressService.PeriodProgress(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]ExerciseProgressResponse, len(progress))
	for i := range progress {
		resp[i] = ExerciseProgressResponse{
			Exercise: MapExerciseToResponse(&progress[i].Exercise),
			Latest:   MapExerciseLogToResponse(&progress[i].Latest),
			Logs:     MapExerciseLogsToResponse(progress[i].Logs),
		}
	}
	c.JSON(http.StatusOK, resp)
}
