package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	entityWorkoutPlan = "workout plan"
	entityWorkout     = "workout"
)

// WorkoutInput carries the fields of a new workout.
type WorkoutInput struct {
	WorkoutPlanID primitive.ObjectID
	Weight        float64
	Reps          int
	Week          int
	Description   string
}

// WorkoutPlanService manages workout plans and the workouts inside them.
type WorkoutPlanService interface {
	CreateWorkoutPlan(ctx context.Context, caller domain.Caller, name, description string) (*domain.WorkoutPlan, error)
	GetWorkoutPlanByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, caller domain.Caller) ([]domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WorkoutPlanPatch) error
	DeleteWorkoutPlan(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error

	CreateWorkout(ctx context.Context, caller domain.Caller, input WorkoutInput) (*domain.Workout, error)
	GetWorkoutByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Workout, error)
	ListWorkoutsByPlan(ctx context.Context, caller domain.Caller, planID primitive.ObjectID) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WorkoutPatch) error
	DeleteWorkout(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

type workoutPlanService struct {
	planRepo    repository.WorkoutPlanRepository
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutPlanService creates a new instance of workoutPlanService.
func NewWorkoutPlanService(planRepo repository.WorkoutPlanRepository, workoutRepo repository.WorkoutRepository) WorkoutPlanService {
	return &workoutPlanService{
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
	}
}

// === Workout plans ===

func (s *workoutPlanService) CreateWorkoutPlan(ctx context.Context, caller domain.Caller, name, description string) (*domain.WorkoutPlan, error) {
	if err := requireCaller(caller, "create a workout plan"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("workout plan name is required")
	}

	plan := &domain.WorkoutPlan{
		UserID:      caller.Subject,
		Name:        name,
		Description: description,
	}
	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetWorkoutPlanByID returns a plan owned by the caller.
func (s *workoutPlanService) GetWorkoutPlanByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	if err := requireCaller(caller, "view a workout plan"); err != nil {
		return nil, err
	}
	return s.ownedPlan(ctx, caller, id)
}

// ListWorkoutPlans fails for anonymous callers instead of returning an empty list,
// unlike the other "list mine" operations.
func (s *workoutPlanService) ListWorkoutPlans(ctx context.Context, caller domain.Caller) ([]domain.WorkoutPlan, error) {
	if err := requireCaller(caller, "view workout plans"); err != nil {
		return nil, err
	}
	return s.planRepo.GetByUserID(ctx, caller.Subject)
}

func (s *workoutPlanService) UpdateWorkoutPlan(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WorkoutPlanPatch) error {
	if err := requireCaller(caller, "update a workout plan"); err != nil {
		return err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalidArgument("workout plan name cannot be empty")
	}
	if _, err := s.ownedPlan(ctx, caller, id); err != nil {
		return err
	}
	if err := s.planRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityWorkoutPlan)
	}
	return nil
}

// DeleteWorkoutPlan removes the plan only; its workouts are left orphaned.
func (s *workoutPlanService) DeleteWorkoutPlan(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a workout plan"); err != nil {
		return err
	}
	if _, err := s.ownedPlan(ctx, caller, id); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityWorkoutPlan)
	}
	return nil
}

func (s *workoutPlanService) ownedPlan(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityWorkoutPlan)
	}
	if err := checkOwner(caller, plan.UserID, entityWorkoutPlan, id); err != nil {
		return nil, err
	}
	return plan, nil
}

// === Workouts ===

func validateWorkout(weight float64, reps, week int) error {
	if err := nonNegative("weight", weight); err != nil {
		return err
	}
	if reps < 0 {
		return invalidArgument("reps must not be negative")
	}
	if week < 0 {
		return invalidArgument("week must not be negative")
	}
	return nil
}

// CreateWorkout adds a workout to a plan the caller owns.
func (s *workoutPlanService) CreateWorkout(ctx context.Context, caller domain.Caller, input WorkoutInput) (*domain.Workout, error) {
	if err := requireCaller(caller, "create a workout"); err != nil {
		return nil, err
	}
	if input.WorkoutPlanID == primitive.NilObjectID {
		return nil, invalidArgument("workoutPlanId is required")
	}
	if err := validateWorkout(input.Weight, input.Reps, input.Week); err != nil {
		return nil, err
	}
	if _, err := s.ownedPlan(ctx, caller, input.WorkoutPlanID); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		WorkoutPlanID: input.WorkoutPlanID,
		Weight:        input.Weight,
		Reps:          input.Reps,
		Week:          input.Week,
		Description:   input.Description,
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutPlanService) GetWorkoutByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Workout, error) {
	if err := requireCaller(caller, "view a workout"); err != nil {
		return nil, err
	}
	return s.ownedWorkout(ctx, caller, id)
}

// ListWorkoutsByPlan returns every workout of a plan the caller owns.
func (s *workoutPlanService) ListWorkoutsByPlan(ctx context.Context, caller domain.Caller, planID primitive.ObjectID) ([]domain.Workout, error) {
	if err := requireCaller(caller, "view workouts"); err != nil {
		return nil, err
	}
	if _, err := s.ownedPlan(ctx, caller, planID); err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByPlanID(ctx, planID)
}

func (s *workoutPlanService) UpdateWorkout(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WorkoutPatch) error {
	if err := requireCaller(caller, "update a workout"); err != nil {
		return err
	}
	if patch.Weight != nil {
		if err := nonNegative("weight", *patch.Weight); err != nil {
			return err
		}
	}
	if (patch.Reps != nil && *patch.Reps < 0) || (patch.Week != nil && *patch.Week < 0) {
		return invalidArgument("reps and week must not be negative")
	}
	if _, err := s.ownedWorkout(ctx, caller, id); err != nil {
		return err
	}
	if err := s.workoutRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityWorkout)
	}
	return nil
}

func (s *workoutPlanService) DeleteWorkout(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a workout"); err != nil {
		return err
	}
	if _, err := s.ownedWorkout(ctx, caller, id); err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, entityWorkout)
	}
	return nil
}

// ownedWorkout authorizes through the parent plan. A workout whose plan has been
// deleted is reported as forbidden: nobody owns it anymore.
func (s *workoutPlanService) ownedWorkout(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityWorkout)
	}
	plan, err := s.planRepo.GetByID(ctx, workout.WorkoutPlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, checkOwner(caller, "", entityWorkout, id)
		}
		return nil, lookupErr(err, entityWorkoutPlan)
	}
	if err := checkOwner(caller, plan.UserID, entityWorkout, id); err != nil {
		return nil, err
	}
	return workout, nil
}
