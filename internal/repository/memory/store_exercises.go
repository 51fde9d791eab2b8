package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func exerciseOwner(e domain.Exercise) string       { return e.UserID }
func periodOwner(p domain.TrackingPeriod) string   { return p.UserID }
func logOwner(l domain.ExerciseLog) string         { return l.UserID }
func trackedOwner(t domain.TrackedExercise) string { return t.UserID }

// --- exercises ---

type exerciseRepo struct{ s *Store }

func (r *exerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.UserID == "" || exercise.Name == "" {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&exercise.ID, &exercise.CreatedAt, &exercise.UpdatedAt)
	r.s.exercises.insert(exercise.ID, *exercise)
	return exercise.ID, nil
}

func (r *exerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, ok := r.s.exercises.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

func (r *exerciseRepo) GetByUserID(_ context.Context, userID string) ([]domain.Exercise, error) {
	return r.s.exercises.scan(ownedBy(userID, exerciseOwner)), nil
}

func (r *exerciseRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.ExercisePatch) error {
	return notFoundUnless(r.s.exercises.update(id, func(e *domain.Exercise) {
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		e.UpdatedAt = r.s.now()
	}))
}

func (r *exerciseRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.exercises.remove(id, ownedBy(userID, exerciseOwner)))
}

// --- tracking periods ---

type trackingPeriodRepo struct{ s *Store }

func (r *trackingPeriodRepo) Create(_ context.Context, period *domain.TrackingPeriod) (primitive.ObjectID, error) {
	if period.UserID == "" || period.Name == "" || period.StartDate.IsZero() {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	r.s.trackingPeriods.insert(period.ID, clonePeriod(*period))
	return period.ID, nil
}

func (r *trackingPeriodRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrackingPeriod, error) {
	period, ok := r.s.trackingPeriods.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	period = clonePeriod(period)
	return &period, nil
}

// GetByUserID lists the user's periods, most recently started first.
func (r *trackingPeriodRepo) GetByUserID(_ context.Context, userID string) ([]domain.TrackingPeriod, error) {
	periods := r.s.trackingPeriods.scan(ownedBy(userID, periodOwner))
	for i := range periods {
		periods[i] = clonePeriod(periods[i])
	}
	sort.SliceStable(periods, func(i, j int) bool { return periods[i].StartDate.After(periods[j].StartDate) })
	return periods, nil
}

func (r *trackingPeriodRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.TrackingPeriodPatch) error {
	return notFoundUnless(r.s.trackingPeriods.update(id, func(p *domain.TrackingPeriod) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.ClearEndDate {
			p.EndDate = nil
		} else if patch.EndDate != nil {
			end := *patch.EndDate
			p.EndDate = &end
		}
		p.UpdatedAt = r.s.now()
	}))
}

// clonePeriod detaches EndDate so stored rows never alias caller memory.
func clonePeriod(p domain.TrackingPeriod) domain.TrackingPeriod {
	if p.EndDate != nil {
		end := *p.EndDate
		p.EndDate = &end
	}
	return p
}

func (r *trackingPeriodRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.trackingPeriods.remove(id, ownedBy(userID, periodOwner)))
}

// --- exercise logs ---

type exerciseLogRepo struct{ s *Store }

func (r *exerciseLogRepo) Create(_ context.Context, log *domain.ExerciseLog) (primitive.ObjectID, error) {
	if log.UserID == "" || log.PeriodID == primitive.NilObjectID || log.ExerciseID == primitive.NilObjectID {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	r.s.exerciseLogs.insert(log.ID, *log)
	return log.ID, nil
}

func (r *exerciseLogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ExerciseLog, error) {
	log, ok := r.s.exerciseLogs.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &log, nil
}

func (r *exerciseLogRepo) GetByUserID(_ context.Context, userID string) ([]domain.ExerciseLog, error) {
	return newestFirst(r.s.exerciseLogs.scan(ownedBy(userID, logOwner))), nil
}

func (r *exerciseLogRepo) GetByPeriodID(_ context.Context, userID string, periodID primitive.ObjectID) ([]domain.ExerciseLog, error) {
	return newestFirst(r.s.exerciseLogs.scan(func(l domain.ExerciseLog) bool {
		return l.UserID == userID && l.PeriodID == periodID
	})), nil
}

func newestFirst(logs []domain.ExerciseLog) []domain.ExerciseLog {
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return logs
}

func (r *exerciseLogRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.ExerciseLogPatch) error {
	return notFoundUnless(r.s.exerciseLogs.update(id, func(l *domain.ExerciseLog) {
		if patch.PeriodID != nil {
			l.PeriodID = *patch.PeriodID
		}
		if patch.ExerciseID != nil {
			l.ExerciseID = *patch.ExerciseID
		}
		if patch.Weight != nil {
			l.Weight = *patch.Weight
		}
		if patch.Reps != nil {
			l.Reps = *patch.Reps
		}
		if patch.Sets != nil {
			l.Sets = *patch.Sets
		}
		if patch.CreatedAt != nil {
			l.CreatedAt = *patch.CreatedAt
		}
		l.UpdatedAt = r.s.now()
	}))
}

func (r *exerciseLogRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.exerciseLogs.remove(id, ownedBy(userID, logOwner)))
}

// --- tracked exercises ---

type trackedExerciseRepo struct{ s *Store }

func (r *trackedExerciseRepo) Create(_ context.Context, tracked *domain.TrackedExercise) (primitive.ObjectID, error) {
	if tracked.UserID == "" || tracked.PeriodID == primitive.NilObjectID || tracked.ExerciseID == primitive.NilObjectID {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&tracked.ID, &tracked.CreatedAt, &tracked.UpdatedAt)
	r.s.trackedExercises.insert(tracked.ID, *tracked)
	return tracked.ID, nil
}

func (r *trackedExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrackedExercise, error) {
	tracked, ok := r.s.trackedExercises.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tracked, nil
}

func (r *trackedExerciseRepo) GetByUserID(_ context.Context, userID string) ([]domain.TrackedExercise, error) {
	tracked := r.s.trackedExercises.scan(ownedBy(userID, trackedOwner))
	sort.SliceStable(tracked, func(i, j int) bool { return tracked[i].Date.Before(tracked[j].Date) })
	return tracked, nil
}

func (r *trackedExerciseRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.TrackedExercisePatch) error {
	return notFoundUnless(r.s.trackedExercises.update(id, func(t *domain.TrackedExercise) {
		if patch.PeriodID != nil {
			t.PeriodID = *patch.PeriodID
		}
		if patch.ExerciseID != nil {
			t.ExerciseID = *patch.ExerciseID
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		t.UpdatedAt = r.s.now()
	}))
}

func (r *trackedExerciseRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.trackedExercises.remove(id, ownedBy(userID, trackedOwner)))
}
