package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummarizeWeights(t *testing.T) {
	entries := []domain.DailyWeight{
		{Weight: 70.0},
		{Weight: 71.5},
		{Weight: 69.0},
	}

	summary, err := SummarizeWeights(entries)
	require.NoError(t, err)
	assert.Equal(t, 70.0, summary.Starting)
	assert.Equal(t, 69.0, summary.Current)
	assert.Equal(t, 70.17, summary.Average)
	assert.Equal(t, 69.0, summary.Min)
	assert.Equal(t, 71.5, summary.Max)
	assert.Equal(t, -1.0, summary.Change)
	assert.Equal(t, 3, summary.Count)
}

func TestSummarizeWeights_Empty(t *testing.T) {
	_, err := SummarizeWeights(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	summary, err := SummarizeWeights([]domain.DailyWeight{{Weight: 80}})
	require.NoError(t, err)
	assert.Equal(t, WeightSummary{Starting: 80, Current: 80, Average: 80, Min: 80, Max: 80, Count: 1}, summary)
}

func TestGroupLogsByExercise(t *testing.T) {
	x := domain.Exercise{ID: primitive.NewObjectID(), Name: "X"}
	y := domain.Exercise{ID: primitive.NewObjectID(), Name: "Y"}
	idle := domain.Exercise{ID: primitive.NewObjectID(), Name: "Idle"}

	logs := []domain.ExerciseLog{
		{ID: primitive.NewObjectID(), ExerciseID: x.ID, Reps: 1, CreatedAt: date(t, "2024-01-01T00:00:00Z")},
		{ID: primitive.NewObjectID(), ExerciseID: y.ID, Reps: 2, CreatedAt: date(t, "2024-01-03T00:00:00Z")},
		{ID: primitive.NewObjectID(), ExerciseID: x.ID, Reps: 5, CreatedAt: date(t, "2024-01-05T00:00:00Z")},
		// a log for an exercise not in the list is dropped
		{ID: primitive.NewObjectID(), ExerciseID: primitive.NewObjectID(), Reps: 9, CreatedAt: date(t, "2024-01-09T00:00:00Z")},
	}

	groups := GroupLogsByExercise([]domain.Exercise{y, idle, x}, logs)
	require.Len(t, groups, 2)

	assert.Equal(t, "Y", groups[0].Exercise.Name)
	assert.Len(t, groups[0].Logs, 1)

	assert.Equal(t, "X", groups[1].Exercise.Name)
	require.Len(t, groups[1].Logs, 2)
	assert.True(t, groups[1].Latest.CreatedAt.Equal(date(t, "2024-01-05T00:00:00Z")))
	assert.Equal(t, groups[1].Logs[0], groups[1].Latest)
	assert.Equal(t, 1, groups[1].Logs[1].Reps)
}

func TestGroupLogsByExercise_MixedOffsets(t *testing.T) {
	// Lexically "2024-01-05T01:00:00+05:00" sorts after "2024-01-04T22:00:00Z",
	// but it is the earlier instant.
	x := domain.Exercise{ID: primitive.NewObjectID(), Name: "X"}
	logs := []domain.ExerciseLog{
		{ExerciseID: x.ID, Reps: 1, CreatedAt: date(t, "2024-01-05T01:00:00+05:00")},
		{ExerciseID: x.ID, Reps: 2, CreatedAt: date(t, "2024-01-04T22:00:00Z")},
	}

	groups := GroupLogsByExercise([]domain.Exercise{x}, logs)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Latest.Reps)
}

func TestGroupLogsByExercise_Empty(t *testing.T) {
	groups := GroupLogsByExercise(nil, nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestProgressService_PeriodProgress(t *testing.T) {
	ctx := context.Background()
	f := newLogFixture(t)

	_, err := f.s.logs.CreateExerciseLog(ctx, alice, ExerciseLogInput{PeriodID: f.alicePeriod.ID, ExerciseID: f.aliceEx.ID, Weight: 100, Reps: 5, CreatedAt: date(t, "2024-01-01T00:00:00Z")})
	require.NoError(t, err)
	latest, err := f.s.logs.CreateExerciseLog(ctx, alice, ExerciseLogInput{PeriodID: f.alicePeriod.ID, ExerciseID: f.aliceEx.ID, Weight: 105, Reps: 5, CreatedAt: date(t, "2024-01-05T00:00:00Z")})
	require.NoError(t, err)

	progress, err := f.s.progress.PeriodProgress(ctx, alice, f.alicePeriod.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, f.aliceEx.ID, progress[0].Exercise.ID)
	assert.Equal(t, latest.ID, progress[0].Latest.ID)
	assert.Len(t, progress[0].Logs, 2)

	_, err = f.s.progress.PeriodProgress(ctx, bob, f.alicePeriod.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.s.progress.PeriodProgress(ctx, anon, f.alicePeriod.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.s.progress.PeriodProgress(ctx, alice, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressService_WeekSummary(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)

	_, err = s.progress.WeekSummary(ctx, alice, week.ID)
	assert.ErrorIs(t, err, ErrEmptySeries)

	// inserted out of order; the summary follows the dates
	for _, e := range []struct {
		weight float64
		day    string
	}{
		{69.0, "2024-01-03"},
		{70.0, "2024-01-01"},
		{71.5, "2024-01-02"},
	} {
		_, err := s.weeks.CreateDailyWeight(ctx, alice, week.ID, e.weight, date(t, e.day))
		require.NoError(t, err)
	}

	summary, err := s.progress.WeekSummary(ctx, alice, week.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, summary.Starting)
	assert.Equal(t, 69.0, summary.Current)
	assert.Equal(t, 70.17, summary.Average)

	_, err = s.progress.WeekSummary(ctx, bob, week.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
