package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrackedExerciseHandler serves tracked exercises.
type TrackedExerciseHandler struct {
	trackedService service.TrackedExerciseService
}

// NewTrackedExerciseHandler creates a new TrackedExerciseHandler.
func NewTrackedExerciseHandler(trackedService service.TrackedExerciseService) *TrackedExerciseHandler {
	return &TrackedExerciseHandler{trackedService: trackedService}
}

type CreateTrackedExerciseRequest struct {
	PeriodID   string `json:"periodId" binding:"required"`
	ExerciseID string `json:"exerciseId" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

type UpdateTrackedExerciseRequest struct {
	PeriodID   *string `json:"periodId"`
	ExerciseID *string `json:"exerciseId"`
	Date       *string `json:"date"`
}

type TrackedExerciseResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	PeriodID   string `json:"periodId"`
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func MapTrackedExerciseToResponse(t *domain.TrackedExercise) TrackedExerciseResponse {
	return TrackedExerciseResponse{
		ID:         t.ID.Hex(),
		UserID:     t.UserID,
		PeriodID:   t.PeriodID.Hex(),
		ExerciseID: t.ExerciseID.Hex(),
		Date:       domain.FormatDate(t.Date),
		CreatedAt:  domain.FormatDate(t.CreatedAt),
		UpdatedAt:  domain.FormatDate(t.UpdatedAt),
	}
}

func (h *TrackedExerciseHandler) CreateTrackedExercise(c *gin.Context) {
	var req CreateTrackedExerciseRequest
	if !bindJSON(c, &req) {
		return
	}
	periodID, ok := objectIDField(c, "periodId", req.PeriodID)
	if !ok {
		return
	}
	exerciseID, ok := objectIDField(c, "exerciseId", req.ExerciseID)
	if !ok {
		return
	}
	date, ok := dateField(c, "date", req.Date)
	if !ok {
		return
	}

	tracked, err := h.trackedService.CreateTrackedExercise(c.Request.Context(), callerFromContext(c), periodID, exerciseID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapTrackedExerciseToResponse(tracked))
}

func (h *TrackedExerciseHandler) ListTrackedExercises(c *gin.Context) {
	tracked, err := h.trackedService.ListTrackedExercises(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]TrackedExerciseResponse, len(tracked))
	for i := range tracked {
		resp[i] = MapTrackedExerciseToResponse(&tracked[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrackedExerciseHandler) GetTrackedExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	tracked, err := h.trackedService.GetTrackedExerciseByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapTrackedExerciseToResponse(tracked))
}

func (h *TrackedExerciseHandler) UpdateTrackedExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateTrackedExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	var patch domain.TrackedExercisePatch
	if patch.PeriodID, ok = optionalObjectID(c, "periodId", req.PeriodID); !ok {
		return
	}
	if patch.ExerciseID, ok = optionalObjectID(c, "exerciseId", req.ExerciseID); !ok {
		return
	}
	if patch.Date, ok = optionalDate(c, "date", req.Date); !ok {
		return
	}
	if err := h.trackedService.UpdateTrackedExercise(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackedExerciseHandler) DeleteTrackedExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.trackedService.DeleteTrackedExercise(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
