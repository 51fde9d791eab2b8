package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds one table per collection.
type Store struct {
	workoutPlans     *table[domain.WorkoutPlan]
	workouts         *table[domain.Workout]
	weeks            *table[domain.Week]
	dailyWeights     *table[domain.DailyWeight]
	exercises        *table[domain.Exercise]
	trackingPeriods  *table[domain.TrackingPeriod]
	exerciseLogs     *table[domain.ExerciseLog]
	trackedExercises *table[domain.TrackedExercise]

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		workoutPlans:     newTable[domain.WorkoutPlan](),
		workouts:         newTable[domain.Workout](),
		weeks:            newTable[domain.Week](),
		dailyWeights:     newTable[domain.DailyWeight](),
		exercises:        newTable[domain.Exercise](),
		trackingPeriods:  newTable[domain.TrackingPeriod](),
		exerciseLogs:     newTable[domain.ExerciseLog](),
		trackedExercises: newTable[domain.TrackedExercise](),
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		WorkoutPlans:     &workoutPlanRepo{s},
		Workouts:         &workoutRepo{s},
		Weeks:            &weekRepo{s},
		DailyWeights:     &dailyWeightRepo{s},
		Exercises:        &exerciseRepo{s},
		TrackingPeriods:  &trackingPeriodRepo{s},
		ExerciseLogs:     &exerciseLogRepo{s},
		TrackedExercises: &trackedExerciseRepo{s},
	}
}

// NewRepositories is a shortcut for NewStore().Repositories().
func NewRepositories() repository.Repositories {
	return NewStore().Repositories()
}

func (s *Store) stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	*id = primitive.NewObjectID()
	now := s.now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func notFoundUnless(ok bool) error {
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

func ownedBy[T any](userID string, owner func(T) string) func(T) bool {
	return func(row T) bool { return owner(row) == userID }
}

var errMissingFields = errors.New("required fields missing")

// --- workout plans ---

type workoutPlanRepo struct{ s *Store }

func (r *workoutPlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.UserID == "" || plan.Name == "" {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	r.s.workoutPlans.insert(plan.ID, *plan)
	return plan.ID, nil
}

func (r *workoutPlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, ok := r.s.workoutPlans.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &plan, nil
}

func (r *workoutPlanRepo) GetByUserID(_ context.Context, userID string) ([]domain.WorkoutPlan, error) {
	return r.s.workoutPlans.scan(ownedBy(userID, func(p domain.WorkoutPlan) string { return p.UserID })), nil
}

func (r *workoutPlanRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.WorkoutPlanPatch) error {
	return notFoundUnless(r.s.workoutPlans.update(id, func(p *domain.WorkoutPlan) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		p.UpdatedAt = r.s.now()
	}))
}

func (r *workoutPlanRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.workoutPlans.remove(id, ownedBy(userID, func(p domain.WorkoutPlan) string { return p.UserID })))
}

// --- workouts ---

type workoutRepo struct{ s *Store }

func (r *workoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.WorkoutPlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
	r.s.workouts.insert(workout.ID, *workout)
	return workout.ID, nil
}

func (r *workoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, ok := r.s.workouts.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

func (r *workoutRepo) GetByPlanID(_ context.Context, planID primitive.ObjectID) ([]domain.Workout, error) {
	workouts := r.s.workouts.scan(func(w domain.Workout) bool { return w.WorkoutPlanID == planID })
	sort.SliceStable(workouts, func(i, j int) bool { return workouts[i].Week < workouts[j].Week })
	return workouts, nil
}

func (r *workoutRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.WorkoutPatch) error {
	return notFoundUnless(r.s.workouts.update(id, func(w *domain.Workout) {
		if patch.Weight != nil {
			w.Weight = *patch.Weight
		}
		if patch.Reps != nil {
			w.Reps = *patch.Reps
		}
		if patch.Week != nil {
			w.Week = *patch.Week
		}
		if patch.Description != nil {
			w.Description = *patch.Description
		}
		w.UpdatedAt = r.s.now()
	}))
}

func (r *workoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return notFoundUnless(r.s.workouts.remove(id, matchAll[domain.Workout]))
}

// --- weeks ---

type weekRepo struct{ s *Store }

func (r *weekRepo) Create(_ context.Context, week *domain.Week) (primitive.ObjectID, error) {
	if week.UserID == "" || week.Name == "" {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&week.ID, &week.CreatedAt, &week.UpdatedAt)
	r.s.weeks.insert(week.ID, *week)
	return week.ID, nil
}

func (r *weekRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Week, error) {
	week, ok := r.s.weeks.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &week, nil
}

func (r *weekRepo) GetByUserID(_ context.Context, userID string) ([]domain.Week, error) {
	return r.s.weeks.scan(ownedBy(userID, func(w domain.Week) string { return w.UserID })), nil
}

func (r *weekRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.WeekPatch) error {
	return notFoundUnless(r.s.weeks.update(id, func(w *domain.Week) {
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.Target != nil {
			w.Target = *patch.Target
		}
		if patch.IsArchived != nil {
			w.IsArchived = *patch.IsArchived
		}
		w.UpdatedAt = r.s.now()
	}))
}

func (r *weekRepo) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	return notFoundUnless(r.s.weeks.remove(id, ownedBy(userID, func(w domain.Week) string { return w.UserID })))
}

// --- daily weights ---

type dailyWeightRepo struct{ s *Store }

func (r *dailyWeightRepo) Create(_ context.Context, weight *domain.DailyWeight) (primitive.ObjectID, error) {
	if weight.WeekID == primitive.NilObjectID || weight.Date.IsZero() {
		return primitive.NilObjectID, errMissingFields
	}
	r.s.stamp(&weight.ID, &weight.CreatedAt, &weight.UpdatedAt)
	r.s.dailyWeights.insert(weight.ID, *weight)
	return weight.ID, nil
}

func (r *dailyWeightRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.DailyWeight, error) {
	weight, ok := r.s.dailyWeights.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &weight, nil
}

// GetByWeekID returns the week's entries in ascending date order, like the mongo store.
func (r *dailyWeightRepo) GetByWeekID(_ context.Context, weekID primitive.ObjectID) ([]domain.DailyWeight, error) {
	weights := r.s.dailyWeights.scan(func(w domain.DailyWeight) bool { return w.WeekID == weekID })
	sort.SliceStable(weights, func(i, j int) bool { return weights[i].Date.Before(weights[j].Date) })
	return weights, nil
}

func (r *dailyWeightRepo) Update(_ context.Context, id primitive.ObjectID, patch domain.DailyWeightPatch) error {
	return notFoundUnless(r.s.dailyWeights.update(id, func(w *domain.DailyWeight) {
		if patch.Weight != nil {
			w.Weight = *patch.Weight
		}
		if patch.Date != nil {
			w.Date = *patch.Date
		}
		w.UpdatedAt = r.s.now()
	}))
}

func (r *dailyWeightRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return notFoundUnless(r.s.dailyWeights.remove(id, matchAll[domain.DailyWeight]))
}
