package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutPlanHandler serves workout plans and their workouts.
type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
}

// NewWorkoutPlanHandler creates a new WorkoutPlanHandler.
func NewWorkoutPlanHandler(planService service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// --- DTOs ---

type CreateWorkoutPlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateWorkoutPlanRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type WorkoutPlanResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type CreateWorkoutRequest struct {
	Weight      *float64 `json:"weight" binding:"required,gte=0"`
	Reps        *int     `json:"reps" binding:"required,gte=0"`
	Week        *int     `json:"week" binding:"required,gte=0"`
	Description string   `json:"description"`
}

type UpdateWorkoutRequest struct {
	Weight      *float64 `json:"weight" binding:"omitempty,gte=0"`
	Reps        *int     `json:"reps" binding:"omitempty,gte=0"`
	Week        *int     `json:"week" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type WorkoutResponse struct {
	ID            string  `json:"id"`
	WorkoutPlanID string  `json:"workoutPlanId"`
	Weight        float64 `json:"weight"`
	Reps          int     `json:"reps"`
	Week          int     `json:"week"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func MapWorkoutPlanToResponse(p *domain.WorkoutPlan) WorkoutPlanResponse {
	return WorkoutPlanResponse{
		ID:          p.ID.Hex(),
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   domain.FormatDate(p.CreatedAt),
		UpdatedAt:   domain.FormatDate(p.UpdatedAt),
	}
}

func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:            w.ID.Hex(),
		WorkoutPlanID: w.WorkoutPlanID.Hex(),
		Weight:        w.Weight,
		Reps:          w.Reps,
		Week:          w.Week,
		Description:   w.Description,
		CreatedAt:     domain.FormatDate(w.CreatedAt),
		UpdatedAt:     domain.FormatDate(w.UpdatedAt),
	}
}

// --- Workout plan handlers ---

// CreateWorkoutPlan godoc
// @Summary Create a workout plan
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreateWorkoutPlanRequest true "Plan details"
// @Success 201 {object} WorkoutPlanResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /plans [post]
func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.CreateWorkoutPlan(c.Request.Context(), callerFromContext(c), req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutPlanToResponse(plan))
}

// ListWorkoutPlans godoc
// @Summary List the caller's workout plans
// @Tags WorkoutPlans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WorkoutPlanResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /plans [get]
func (h *WorkoutPlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context(), callerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]WorkoutPlanResponse, len(plans))
	for i := range plans {
		resp[i] = MapWorkoutPlanToResponse(&plans[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.planService.GetWorkoutPlanByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutPlanToResponse(plan))
}

func (h *WorkoutPlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateWorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.WorkoutPlanPatch{Name: req.Name, Description: req.Description}
	if err := h.planService.UpdateWorkoutPlan(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.planService.DeleteWorkoutPlan(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Workout handlers ---

// CreateWorkout godoc
// @Summary Add a workout to a plan
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout plan ID"
// @Param workout body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} WorkoutResponse
// @Failure 403 {object} gin.H "Plan belongs to another user"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id}/workouts [post]
func (h *WorkoutPlanHandler) CreateWorkout(c *gin.Context) {
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.planService.CreateWorkout(c.Request.Context(), callerFromContext(c), service.WorkoutInput{
		WorkoutPlanID: planID,
		Weight:        *req.Weight,
		Reps:          *req.Reps,
		Week:          *req.Week,
		Description:   req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

func (h *WorkoutPlanHandler) ListWorkouts(c *gin.Context) {
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	workouts, err := h.planService.ListWorkoutsByPlan(c.Request.Context(), callerFromContext(c), planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		resp[i] = MapWorkoutToResponse(&workouts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkoutPlanHandler) GetWorkout(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	workout, err := h.planService.GetWorkoutByID(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

func (h *WorkoutPlanHandler) UpdateWorkout(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.WorkoutPatch{
		Weight:      req.Weight,
		Reps:        req.Reps,
		Week:        req.Week,
		Description: req.Description,
	}
	if err := h.planService.UpdateWorkout(c.Request.Context(), callerFromContext(c), id, patch); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutPlanHandler) DeleteWorkout(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.planService.DeleteWorkout(c.Request.Context(), callerFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
