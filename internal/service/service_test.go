package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	alice = domain.Caller{Subject: "user-alice"}
	bob   = domain.Caller{Subject: "user-bob"}
	anon  = domain.Caller{}
)

type testServices struct {
	repos     repository.Repositories
	plans     WorkoutPlanService
	weeks     WeekService
	exercises ExerciseService
	periods   TrackingPeriodService
	logs      ExerciseLogService
	tracked   TrackedExerciseService
	progress  ProgressService
}

func newTestServices() *testServices {
	repos := memory.NewRepositories()
	return &testServices{
		repos:     repos,
		plans:     NewWorkoutPlanService(repos.WorkoutPlans, repos.Workouts),
		weeks:     NewWeekService(repos.Weeks, repos.DailyWeights),
		exercises: NewExerciseService(repos.Exercises),
		periods:   NewTrackingPeriodService(repos.TrackingPeriods),
		logs:      NewExerciseLogService(repos.ExerciseLogs, repos.TrackingPeriods, repos.Exercises),
		tracked:   NewTrackedExerciseService(repos.TrackedExercises, repos.TrackingPeriods, repos.Exercises),
		progress:  NewProgressService(repos),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}
