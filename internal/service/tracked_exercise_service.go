package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const entityTrackedExercise = "tracked exercise"

// TrackedExerciseService marks exercises as tracked on a date within a period.
type TrackedExerciseService interface {
	CreateTrackedExercise(ctx context.Context, caller domain.Caller, periodID, exerciseID primitive.ObjectID, date time.Time) (*domain.TrackedExercise, error)
	GetTrackedExerciseByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackedExercise, error)
	ListTrackedExercises(ctx context.Context, caller domain.Caller) ([]domain.TrackedExercise, error)
	UpdateTrackedExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.TrackedExercisePatch) error
	DeleteTrackedExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

type trackedExerciseService struct {
	trackedRepo repository.TrackedExerciseRepository
	refs        periodExerciseRefs
}

// NewTrackedExerciseService creates a new instance of trackedExerciseService.
func NewTrackedExerciseService(trackedRepo repository.TrackedExerciseRepository, periodRepo repository.TrackingPeriodRepository, exerciseRepo repository.ExerciseRepository) TrackedExerciseService {
	return &trackedExerciseService{
		trackedRepo: trackedRepo,
		refs:        periodExerciseRefs{periodRepo: periodRepo, exerciseRepo: exerciseRepo},
	}
}

func (s *trackedExerciseService) CreateTrackedExercise(ctx context.Context, caller domain.Caller, periodID, exerciseID primitive.ObjectID, date time.Time) (*domain.TrackedExercise, error) {
	if err := requireCaller(caller, "track an exercise"); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, invalidArgument("date is required")
	}
	if err := s.refs.check(ctx, caller, &periodID, &exerciseID); err != nil {
		return nil, err
	}

	tracked := &domain.TrackedExercise{
		UserID:     caller.Subject,
		PeriodID:   periodID,
		ExerciseID: exerciseID,
		Date:       date.UTC(),
	}
	if _, err := s.trackedRepo.Create(ctx, tracked); err != nil {
		return nil, err
	}
	return tracked, nil
}

func (s *trackedExerciseService) GetTrackedExerciseByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackedExercise, error) {
	if err := requireCaller(caller, "view a tracked exercise"); err != nil {
		return nil, err
	}
	return s.ownedTracked(ctx, caller, id)
}

func (s *trackedExerciseService) ListTrackedExercises(ctx context.Context, caller domain.Caller) ([]domain.TrackedExercise, error) {
	if !caller.Authenticated() {
		return []domain.TrackedExercise{}, nil
	}
	return s.trackedRepo.GetByUserID(ctx, caller.Subject)
}

func (s *trackedExerciseService) UpdateTrackedExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.TrackedExercisePatch) error {
	if err := requireCaller(caller, "update a tracked exercise"); err != nil {
		return err
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return invalidArgument("date cannot be empty")
		}
		patch.Date = utcPtr(patch.Date)
	}
	if _, err := s.ownedTracked(ctx, caller, id); err != nil {
		return err
	}
	if err := s.refs.check(ctx, caller, patch.PeriodID, patch.ExerciseID); err != nil {
		return err
	}
	if err := s.trackedRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityTrackedExercise)
	}
	return nil
}

func (s *trackedExerciseService) DeleteTrackedExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a tracked exercise"); err != nil {
		return err
	}
	if _, err := s.ownedTracked(ctx, caller, id); err != nil {
		return err
	}
	if err := s.trackedRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityTrackedExercise)
	}
	return nil
}

func (s *trackedExerciseService) ownedTracked(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackedExercise, error) {
	tracked, err := s.trackedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityTrackedExercise)
	}
	if err := checkOwner(caller, tracked.UserID, entityTrackedExercise, id); err != nil {
		return nil, err
	}
	return tracked, nil
}
