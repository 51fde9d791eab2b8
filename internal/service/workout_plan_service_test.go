package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkoutPlan_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "push/pull")
	require.NoError(t, err)
	require.False(t, plan.ID.IsZero())
	assert.Equal(t, alice.Subject, plan.UserID)
	assert.False(t, plan.CreatedAt.IsZero())

	got, err := s.plans.GetWorkoutPlanByID(ctx, alice, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "push/pull", got.Description)
}

func TestWorkoutPlan_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	_, err := s.plans.CreateWorkoutPlan(ctx, anon, "A", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.plans.CreateWorkoutPlan(ctx, alice, "  ", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	err = s.plans.UpdateWorkoutPlan(ctx, alice, plan.ID, domain.WorkoutPlanPatch{Name: ptr("")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWorkoutPlan_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)

	_, err = s.plans.GetWorkoutPlanByID(ctx, bob, plan.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	err = s.plans.UpdateWorkoutPlan(ctx, bob, plan.ID, domain.WorkoutPlanPatch{Name: ptr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)
	err = s.plans.DeleteWorkoutPlan(ctx, bob, plan.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	bobs, err := s.plans.ListWorkoutPlans(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	got, err := s.plans.GetWorkoutPlanByID(ctx, alice, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestWorkoutPlan_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "original")
	require.NoError(t, err)

	require.NoError(t, s.plans.UpdateWorkoutPlan(ctx, alice, plan.ID, domain.WorkoutPlanPatch{Name: ptr("B")}))

	got, err := s.plans.GetWorkoutPlanByID(ctx, alice, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "original", got.Description)
	assert.Equal(t, plan.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(plan.UpdatedAt))

	// an empty patch is still authorized and succeeds
	require.NoError(t, s.plans.UpdateWorkoutPlan(ctx, alice, plan.ID, domain.WorkoutPlanPatch{}))
}

func TestWorkoutPlan_DeleteFinality(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	require.NoError(t, s.plans.DeleteWorkoutPlan(ctx, alice, plan.ID))

	_, err = s.plans.GetWorkoutPlanByID(ctx, alice, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.plans.DeleteWorkoutPlan(ctx, alice, plan.ID), ErrNotFound)
	assert.ErrorIs(t, s.plans.UpdateWorkoutPlan(ctx, alice, plan.ID, domain.WorkoutPlanPatch{}), ErrNotFound)
}

func TestListWorkoutPlans_UnauthenticatedFails(t *testing.T) {
	s := newTestServices()

	plans, err := s.plans.ListWorkoutPlans(context.Background(), anon)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, plans)
}

func TestWorkoutPlan_GetRequiresOwner(t *testing.T) {
	// Reading a plan by id is ownership checked even though the original
	// data layer allowed any caller to fetch it.
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)

	_, err = s.plans.GetWorkoutPlanByID(ctx, anon, plan.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = s.plans.GetWorkoutPlanByID(ctx, bob, plan.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestWorkout_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)

	workout, err := s.plans.CreateWorkout(ctx, alice, WorkoutInput{
		WorkoutPlanID: plan.ID,
		Weight:        100,
		Reps:          5,
		Week:          1,
	})
	require.NoError(t, err)

	workouts, err := s.plans.ListWorkoutsByPlan(ctx, alice, plan.ID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, workout.ID, workouts[0].ID)
	assert.Equal(t, 100.0, workouts[0].Weight)

	_, err = s.plans.ListWorkoutsByPlan(ctx, bob, plan.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.plans.ListWorkoutsByPlan(ctx, anon, plan.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestWorkout_TransitiveOwnership(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	workout, err := s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: plan.ID, Weight: 80, Reps: 8, Week: 2})
	require.NoError(t, err)

	// Creating under someone else's plan is rejected, unlike the original data layer.
	_, err = s.plans.CreateWorkout(ctx, bob, WorkoutInput{WorkoutPlanID: plan.ID, Weight: 1, Reps: 1, Week: 1})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.plans.GetWorkoutByID(ctx, bob, workout.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.plans.UpdateWorkout(ctx, bob, workout.ID, domain.WorkoutPatch{Reps: ptr(1)}), ErrForbidden)
	assert.ErrorIs(t, s.plans.DeleteWorkout(ctx, bob, workout.ID), ErrForbidden)

	_, err = s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: primitive.NewObjectID(), Reps: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkout_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	workout, err := s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: plan.ID, Weight: 80, Reps: 8, Week: 2, Description: "squat"})
	require.NoError(t, err)

	require.NoError(t, s.plans.UpdateWorkout(ctx, alice, workout.ID, domain.WorkoutPatch{Weight: ptr(85.5)}))
	got, err := s.plans.GetWorkoutByID(ctx, alice, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, 85.5, got.Weight)
	assert.Equal(t, 8, got.Reps)
	assert.Equal(t, 2, got.Week)
	assert.Equal(t, "squat", got.Description)

	assert.ErrorIs(t, s.plans.UpdateWorkout(ctx, alice, workout.ID, domain.WorkoutPatch{Reps: ptr(-1)}), ErrInvalidArgument)

	require.NoError(t, s.plans.DeleteWorkout(ctx, alice, workout.ID))
	_, err = s.plans.GetWorkoutByID(ctx, alice, workout.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkout_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	_, err := s.plans.CreateWorkout(ctx, alice, WorkoutInput{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	_, err = s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: plan.ID, Weight: -5})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: plan.ID, Week: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWorkout_OrphanedByPlanDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	plan, err := s.plans.CreateWorkoutPlan(ctx, alice, "A", "")
	require.NoError(t, err)
	workout, err := s.plans.CreateWorkout(ctx, alice, WorkoutInput{WorkoutPlanID: plan.ID, Weight: 100, Reps: 5, Week: 1})
	require.NoError(t, err)

	require.NoError(t, s.plans.DeleteWorkoutPlan(ctx, alice, plan.ID))

	// Deletes do not cascade: the workout row survives but nobody can reach it.
	stored, err := s.repos.Workouts.GetByID(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, stored.WorkoutPlanID)

	_, err = s.plans.GetWorkoutByID(ctx, alice, workout.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.plans.ListWorkoutsByPlan(ctx, alice, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
