package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExercise_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	ex, err := s.exercises.CreateExercise(ctx, alice, "Bench press", "flat bench")
	require.NoError(t, err)

	require.NoError(t, s.exercises.UpdateExercise(ctx, alice, ex.ID, domain.ExercisePatch{Description: ptr("incline")}))
	got, err := s.exercises.GetExerciseByID(ctx, alice, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bench press", got.Name)
	assert.Equal(t, "incline", got.Description)

	list, err := s.exercises.ListExercises(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.exercises.DeleteExercise(ctx, alice, ex.ID))
	_, err = s.exercises.GetExerciseByID(ctx, alice, ex.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExercise_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	_, err := s.exercises.CreateExercise(ctx, alice, "", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.exercises.CreateExercise(ctx, anon, "Squat", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	ex, err := s.exercises.CreateExercise(ctx, alice, "Squat", "")
	require.NoError(t, err)

	_, err = s.exercises.GetExerciseByID(ctx, bob, ex.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.exercises.UpdateExercise(ctx, bob, ex.ID, domain.ExercisePatch{Name: ptr("x")}), ErrForbidden)
	assert.ErrorIs(t, s.exercises.DeleteExercise(ctx, bob, ex.ID), ErrForbidden)
	_, err = s.exercises.GetExerciseByID(ctx, alice, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.exercises.ListExercises(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = s.exercises.ListExercises(ctx, anon)
	require.NoError(t, err)
	assert.Empty(t, list)
}
