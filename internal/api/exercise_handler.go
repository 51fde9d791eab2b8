package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateExerciseRequest carries only the fields to change.
type UpdateExerciseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:          ex.ID.Hex(),
		UserID:      ex.UserID,
		Name:        ex.Name,
		Description: ex.Description,
		CreatedAt:   domain.FormatDate(ex.CreatedAt),
		UpdatedAt:   domain.FormatDate(ex.UpdatedAt),
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Adds an exercise to the authenticated user's library.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), callerFromContext(c), req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary Get the caller's exercises
// @Description Retrieves every exercise in the caller's library. Anonymous callers get an empty list.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.ExercisePatch{Name: req.Name, Description: req.Description}
	if err := h.exerciseService.UpdateExercise(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
