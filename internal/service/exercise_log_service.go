package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const entityExerciseLog = "exercise log"

// ExerciseLogInput carries the fields of a new log entry. A zero CreatedAt means "now".
type ExerciseLogInput struct {
	PeriodID   primitive.ObjectID
	ExerciseID primitive.ObjectID
	Weight     float64
	Reps       int
	Sets       int
	CreatedAt  time.Time
}

// ExerciseLogService records performed sets against an exercise within a tracking period.
type ExerciseLogService interface {
	CreateExerciseLog(ctx context.Context, caller domain.Caller, input ExerciseLogInput) (*domain.ExerciseLog, error)
	GetExerciseLogByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.ExerciseLog, error)
	ListExerciseLogs(ctx context.Context, caller domain.Caller) ([]domain.ExerciseLog, error)
	ListExerciseLogsByPeriod(ctx context.Context, caller domain.Caller, periodID primitive.ObjectID) ([]domain.ExerciseLog, error)
	UpdateExerciseLog(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.ExerciseLogPatch) error
	DeleteExerciseLog(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

type exerciseLogService struct {
	logRepo repository.ExerciseLogRepository
	refs    periodExerciseRefs
}

// NewExerciseLogService creates a new instance of exerciseLogService.
func NewExerciseLogService(logRepo repository.ExerciseLogRepository, periodRepo repository.TrackingPeriodRepository, exerciseRepo repository.ExerciseRepository) ExerciseLogService {
	return &exerciseLogService{
		logRepo: logRepo,
		refs:    periodExerciseRefs{periodRepo: periodRepo, exerciseRepo: exerciseRepo},
	}
}

func validateSets(weight float64, reps, sets int) error {
	if err := nonNegative("weight", weight); err != nil {
		return err
	}
	if reps < 0 || sets < 0 {
		return invalidArgument("reps and sets must not be negative")
	}
	return nil
}

// CreateExerciseLog verifies both the period and the exercise belong to the caller.
func (s *exerciseLogService) CreateExerciseLog(ctx context.Context, caller domain.Caller, input ExerciseLogInput) (*domain.ExerciseLog, error) {
	if err := requireCaller(caller, "log an exercise"); err != nil {
		return nil, err
	}
	if err := validateSets(input.Weight, input.Reps, input.Sets); err != nil {
		return nil, err
	}
	if err := s.refs.check(ctx, caller, &input.PeriodID, &input.ExerciseID); err != nil {
		return nil, err
	}

	entry := &domain.ExerciseLog{
		UserID:     caller.Subject,
		PeriodID:   input.PeriodID,
		ExerciseID: input.ExerciseID,
		Weight:     input.Weight,
		Reps:       input.Reps,
		Sets:       input.Sets,
		CreatedAt:  input.CreatedAt.UTC(),
	}
	if _, err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *exerciseLogService) GetExerciseLogByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.ExerciseLog, error) {
	if err := requireCaller(caller, "view an exercise log"); err != nil {
		return nil, err
	}
	return s.ownedLog(ctx, caller, id)
}

// ListExerciseLogs returns every log of the caller, newest first.
func (s *exerciseLogService) ListExerciseLogs(ctx context.Context, caller domain.Caller) ([]domain.ExerciseLog, error) {
	if !caller.Authenticated() {
		return []domain.ExerciseLog{}, nil
	}
	return s.logRepo.GetByUserID(ctx, caller.Subject)
}

func (s *exerciseLogService) ListExerciseLogsByPeriod(ctx context.Context, caller domain.Caller, periodID primitive.ObjectID) ([]domain.ExerciseLog, error) {
	if err := requireCaller(caller, "view exercise logs"); err != nil {
		return nil, err
	}
	if err := s.refs.checkPeriod(ctx, caller, periodID); err != nil {
		return nil, err
	}
	return s.logRepo.GetByPeriodID(ctx, caller.Subject, periodID)
}

// UpdateExerciseLog re-verifies any reference the patch moves the log to.
func (s *exerciseLogService) UpdateExerciseLog(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.ExerciseLogPatch) error {
	if err := requireCaller(caller, "update an exercise log"); err != nil {
		return err
	}
	if patch.Weight != nil {
		if err := nonNegative("weight", *patch.Weight); err != nil {
			return err
		}
	}
	if (patch.Reps != nil && *patch.Reps < 0) || (patch.Sets != nil && *patch.Sets < 0) {
		return invalidArgument("reps and sets must not be negative")
	}
	if patch.CreatedAt != nil {
		if patch.CreatedAt.IsZero() {
			return invalidArgument("createdAt cannot be empty")
		}
		patch.CreatedAt = utcPtr(patch.CreatedAt)
	}
	if _, err := s.ownedLog(ctx, caller, id); err != nil {
		return err
	}
	if err := s.refs.check(ctx, caller, patch.PeriodID, patch.ExerciseID); err != nil {
		return err
	}
	if err := s.logRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityExerciseLog)
	}
	return nil
}

func (s *exerciseLogService) DeleteExerciseLog(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete an exercise log"); err != nil {
		return err
	}
	if _, err := s.ownedLog(ctx, caller, id); err != nil {
		return err
	}
	if err := s.logRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityExerciseLog)
	}
	return nil
}

func (s *exerciseLogService) ownedLog(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.ExerciseLog, error) {
	entry, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityExerciseLog)
	}
	if err := checkOwner(caller, entry.UserID, entityExerciseLog, id); err != nil {
		return nil, err
	}
	return entry, nil
}
