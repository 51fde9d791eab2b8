package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLogHandler serves exercise logs.
type ExerciseLogHandler struct {
	logService service.ExerciseLogService
}

// NewExerciseLogHandler creates a new ExerciseLogHandler.
func NewExerciseLogHandler(logService service.ExerciseLogService) *ExerciseLogHandler {
	return &ExerciseLogHandler{logService: logService}
}

// --- DTOs ---

// CreateExerciseLogRequest: createdAt defaults to the time of the request.
type CreateExerciseLogRequest struct {
	PeriodID   string   `json:"periodId" binding:"required"`
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Weight     *float64 `json:"weight" binding:"required,gte=0"`
	Reps       *int     `json:"reps" binding:"required,gte=0"`
	Sets       *int     `json:"sets" binding:"required,gte=0"`
	CreatedAt  *string  `json:"createdAt"`
}

type UpdateExerciseLogRequest struct {
	PeriodID   *string  `json:"periodId"`
	ExerciseID *string  `json:"exerciseId"`
	Weight     *float64 `json:"weight" binding:"omitempty,gte=0"`
	Reps       *int     `json:"reps" binding:"omitempty,gte=0"`
	Sets       *int     `json:"sets" binding:"omitempty,gte=0"`
	CreatedAt  *string  `json:"createdAt"`
}

type ExerciseLogResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	PeriodID   string  `json:"periodId"`
	ExerciseID string  `json:"exerciseId"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Sets       int     `json:"sets"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func MapExerciseLogToResponse(l *domain.ExerciseLog) ExerciseLogResponse {
	return ExerciseLogResponse{
		ID:         l.ID.Hex(),
		UserID:     l.UserID,
		PeriodID:   l.PeriodID.Hex(),
		ExerciseID: l.ExerciseID.Hex(),
		Weight:     l.Weight,
		Reps:       l.Reps,
		Sets:       l.Sets,
		CreatedAt:  domain.FormatDate(l.CreatedAt),
		UpdatedAt:  domain.FormatDate(l.UpdatedAt),
	}
}

func MapExerciseLogsToResponse(logs []domain.ExerciseLog) []ExerciseLogResponse {
	resp := make([]ExerciseLogResponse, len(logs))
	for i := range logs {
		resp[i] = MapExerciseLogToResponse(&logs[i])
	}
	return resp
}

// optionalObjectID parses value when present. ok is false if the request was aborted.
func optionalObjectID(c *gin.Context, name string, value *string) (*primitive.ObjectID, bool) {
	if value == nil {
		return nil, true
	}
	id, ok := objectIDField(c, name, *value)
	if !ok {
		return nil, false
	}
	return &id, true
}

// CreateExerciseLog godoc
// @Summary Log a set of an exercise within a tracking period
// @Tags ExerciseLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body CreateExerciseLogRequest true "Log details"
// @Success 201 {object} ExerciseLogResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Period or exercise belongs to another user"
// @Failure 404 {object} gin.H "Period or exercise not found"
// @Router /logs [post]
func (h *ExerciseLogHandler) CreateExerciseLog(c *gin.Context) {
	var req CreateExerciseLogRequest
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
	var createdAt time.Time
	if req.CreatedAt != nil {
		if createdAt, ok = dateField(c, "createdAt", *req.CreatedAt); !ok {
			return
		}
	}

	entry, err := h.logService.CreateExerciseLog(c.Request.Context(), callerFromContext(c), service.ExerciseLogInput{
		PeriodID:   periodID,
		ExerciseID: exerciseID,
		Weight:     *req.Weight,
		Reps:       *req.Reps,
		Sets:       *req.Sets,
		CreatedAt:  createdAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseLogToResponse(entry))
}

func (h *ExerciseLogHandler) ListExerciseLogs(c *gin.Context) {
	logs, err := h.logService.ListExerciseLogs(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseLogsToResponse(logs))
}

func (h *ExerciseLogHandler) GetExerciseLog(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.logService.GetExerciseLogByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseLogToResponse(entry))
}

func (h *ExerciseLogHandler) UpdateExerciseLog(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateExerciseLogRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.ExerciseLogPatch{Weight: req.Weight, Reps: req.Reps, Sets: req.Sets}
	if patch.PeriodID, ok = optionalObjectID(c, "periodId", req.PeriodID); !ok {
		return
	}
	if patch.ExerciseID, ok = optionalObjectID(c, "exerciseId", req.ExerciseID); !ok {
		return
	}
	if patch.CreatedAt, ok = optionalDate(c, "createdAt", req.CreatedAt); !ok {
		return
	}
	if err := h.logService.UpdateExerciseLog(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExerciseLogHandler) DeleteExerciseLog(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.logService.DeleteExerciseLog(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
