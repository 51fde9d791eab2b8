package repository

import (
	"alcyxob/fitness-tracker/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Owner-stamped collections take the owner in Delete so the store filter
// itself refuses to remove another user's record.

// WorkoutPlanRepository defines the interface for interacting with workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.WorkoutPlanPatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.WorkoutPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WeekRepository defines the interface for interacting with week data.
type WeekRepository interface {
	Create(ctx context.Context, week *domain.Week) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Week, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Week, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.WeekPatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// DailyWeightRepository defines the interface for interacting with daily weight data.
type DailyWeightRepository interface {
	Create(ctx context.Context, weight *domain.DailyWeight) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyWeight, error)
	GetByWeekID(ctx context.Context, weekID primitive.ObjectID) ([]domain.DailyWeight, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.DailyWeightPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Exercise, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ExercisePatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// TrackingPeriodRepository defines the interface for interacting with tracking period data.
type TrackingPeriodRepository interface {
	Create(ctx context.Context, period *domain.TrackingPeriod) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrackingPeriod, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.TrackingPeriod, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.TrackingPeriodPatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// ExerciseLogRepository defines the interface for interacting with exercise log data.
type ExerciseLogRepository interface {
	Create(ctx context.Context, log *domain.ExerciseLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseLog, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.ExerciseLog, error)
	GetByPeriodID(ctx context.Context, userID string, periodID primitive.ObjectID) ([]domain.ExerciseLog, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ExerciseLogPatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// TrackedExerciseRepository defines the interface for interacting with tracked exercise data.
type TrackedExerciseRepository interface {
	Create(ctx context.Context, tracked *domain.TrackedExercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrackedExercise, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.TrackedExercise, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.TrackedExercisePatch) error
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

// Repositories bundles every collection so stores can be swapped as a unit.
type Repositories struct {
	WorkoutPlans     WorkoutPlanRepository
	Workouts         WorkoutRepository
	Weeks            WeekRepository
	DailyWeights     DailyWeightRepository
	Exercises        ExerciseRepository
	TrackingPeriods  TrackingPeriodRepository
	ExerciseLogs     ExerciseLogRepository
	TrackedExercises TrackedExerciseRepository
}
