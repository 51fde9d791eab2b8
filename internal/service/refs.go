package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// periodExerciseRefs verifies that the period and exercise a record points at
// both belong to the caller.
type periodExerciseRefs struct {
	periodRepo   repository.TrackingPeriodRepository
	exerciseRepo repository.ExerciseRepository
}

func (r periodExerciseRefs) checkPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return invalidArgument("periodId is required")
	}
	period, err := r.periodRepo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err, entityTrackingPeriod)
	}
	return checkOwner(caller, period.UserID, entityTrackingPeriod, id)
}

func (r periodExerciseRefs) checkExercise(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return invalidArgument("exerciseId is required")
	}
	exercise, err := r.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err, entityExercise)
	}
	return checkOwner(caller, exercise.UserID, entityExercise, id)
}

// check verifies whichever references are non-nil.
func (r periodExerciseRefs) check(ctx context.Context, caller domain.Caller, periodID, exerciseID *primitive.ObjectID) error {
	if periodID != nil {
		if err := r.checkPeriod(ctx, caller, *periodID); err != nil {
			return err
		}
	}
	if exerciseID != nil {
		if err := r.checkExercise(ctx, caller, *exerciseID); err != nil {
			return err
		}
	}
	return nil
}
