package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackedExercise_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newLogFixture(t)

	_, err := f.s.tracked.CreateTrackedExercise(ctx, alice, f.alicePeriod.ID, f.aliceEx.ID, date(t, "2024-01-03"))
	require.NoError(t, err)
	first, err := f.s.tracked.CreateTrackedExercise(ctx, alice, f.alicePeriod.ID, f.aliceEx.ID, date(t, "2024-01-01"))
	require.NoError(t, err)

	list, err := f.s.tracked.ListTrackedExercises(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	require.NoError(t, f.s.tracked.UpdateTrackedExercise(ctx, alice, first.ID, domain.TrackedExercisePatch{Date: ptr(date(t, "2024-01-02"))}))
	got, err := f.s.tracked.GetTrackedExerciseByID(ctx, alice, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(date(t, "2024-01-02")))
	assert.Equal(t, f.aliceEx.ID, got.ExerciseID)

	require.NoError(t, f.s.tracked.DeleteTrackedExercise(ctx, alice, first.ID))
	_, err = f.s.tracked.GetTrackedExerciseByID(ctx, alice, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrackedExercise_Ownership(t *testing.T) {
	ctx := context.Background()
	f := newLogFixture(t)

	_, err := f.s.tracked.CreateTrackedExercise(ctx, alice, f.bobPeriod.ID, f.aliceEx.ID, date(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.s.tracked.CreateTrackedExercise(ctx, alice, f.alicePeriod.ID, f.aliceEx.ID, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	tracked, err := f.s.tracked.CreateTrackedExercise(ctx, alice, f.alicePeriod.ID, f.aliceEx.ID, date(t, "2024-01-01"))
	require.NoError(t, err)

	_, err = f.s.tracked.GetTrackedExerciseByID(ctx, bob, tracked.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.s.tracked.UpdateTrackedExercise(ctx, bob, tracked.ID, domain.TrackedExercisePatch{}), ErrForbidden)
	assert.ErrorIs(t, f.s.tracked.DeleteTrackedExercise(ctx, bob, tracked.ID), ErrForbidden)
	assert.ErrorIs(t, f.s.tracked.UpdateTrackedExercise(ctx, alice, tracked.ID, domain.TrackedExercisePatch{PeriodID: &f.bobPeriod.ID}), ErrForbidden)

	bobs, err := f.s.tracked.ListTrackedExercises(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)
	none, err := f.s.tracked.ListTrackedExercises(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, none)
}
