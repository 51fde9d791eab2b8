package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const entityExercise = "exercise"

// ExerciseService defines the interface for exercise library operations.
type ExerciseService interface {
	CreateExercise(ctx context.Context, caller domain.Caller, name, description string) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, caller domain.Caller) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.ExercisePatch) error
	DeleteExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise adds a new exercise to the caller's library.
func (s *exerciseService) CreateExercise(ctx context.Context, caller domain.Caller, name, description string) (*domain.Exercise, error) {
	if err := requireCaller(caller, "create an exercise"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("exercise name is required")
	}

	exercise := &domain.Exercise{
		UserID:      caller.Subject,
		Name:        name,
		Description: description,
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetExerciseByID retrieves an exercise owned by the caller.
func (s *exerciseService) GetExerciseByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Exercise, error) {
	if err := requireCaller(caller, "view an exercise"); err != nil {
		return nil, err
	}
	return s.ownedExercise(ctx, caller, id)
}

// ListExercises retrieves all exercises in the caller's library.
func (s *exerciseService) ListExercises(ctx context.Context, caller domain.Caller) ([]domain.Exercise, error) {
	if !caller.Authenticated() {
		return []domain.Exercise{}, nil
	}
	return s.exerciseRepo.GetByUserID(ctx, caller.Subject)
}

// UpdateExercise modifies an existing exercise, checking ownership.
func (s *exerciseService) UpdateExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.ExercisePatch) error {
	if err := requireCaller(caller, "update an exercise"); err != nil {
		return err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalidArgument("exercise name cannot be empty")
	}
	if _, err := s.ownedExercise(ctx, caller, id); err != nil {
		return err
	}
	if err := s.exerciseRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityExercise)
	}
	return nil
}

// DeleteExercise removes an exercise, checking ownership. Logs referencing it are kept.
func (s *exerciseService) DeleteExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete an exercise"); err != nil {
		return err
	}
	if _, err := s.ownedExercise(ctx, caller, id); err != nil {
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityExercise)
	}
	return nil
}

func (s *exerciseService) ownedExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityExercise)
	}
	if err := checkOwner(caller, exercise.UserID, entityExercise, id); err != nil {
		return nil, err
	}
	return exercise, nil
}
