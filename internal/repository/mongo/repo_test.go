package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestWorkoutPlanRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()
	ns := "fitness." + workoutPlanCollectionName

	mt.Run("create stamps id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		plan := &domain.WorkoutPlan{UserID: "u1", Name: "A"}
		id, err := repo.Create(ctx, plan)
		require.NoError(mt, err)
		assert.Equal(mt, plan.ID, id)
		assert.False(mt, plan.CreatedAt.IsZero())
		assert.Equal(mt, plan.CreatedAt, plan.UpdatedAt)
	})

	mt.Run("create rejects missing fields", func(mt *mtest.T) {
		repo := NewMongoWorkoutPlanRepository(mt.DB)
		_, err := repo.Create(ctx, &domain.WorkoutPlan{UserID: "u1"})
		assert.Error(mt, err)
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)
		_, err := repo.Create(ctx, &domain.WorkoutPlan{UserID: "u1", Name: "A"})
		assert.Error(mt, err)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "userId", Value: "u1"},
			{Key: "name", Value: "A"},
		}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		plan, err := repo.GetByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, id, plan.ID)
		assert.Equal(mt, "u1", plan.UserID)
		assert.Equal(mt, "A", plan.Name)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		_, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("get by user id across batches", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "name", Value: "A"},
		})
		second := mtest.CreateCursorResponse(1, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "name", Value: "B"},
		})
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, second, end)
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		plans, err := repo.GetByUserID(ctx, "u1")
		require.NoError(mt, err)
		require.Len(mt, plans, 2)
		assert.Equal(mt, "A", plans[0].Name)
		assert.Equal(mt, "B", plans[1].Name)
	})

	mt.Run("get by user id empty is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		plans, err := repo.GetByUserID(ctx, "nobody")
		require.NoError(mt, err)
		assert.NotNil(mt, plans)
		assert.Empty(mt, plans)
	})

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		name := "B"
		assert.NoError(mt, repo.Update(ctx, primitive.NewObjectID(), domain.WorkoutPlanPatch{Name: &name}))
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)

		err := repo.Update(ctx, primitive.NewObjectID(), domain.WorkoutPlanPatch{})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)
		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID(), "u1"))
	})

	mt.Run("delete foreign or missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewMongoWorkoutPlanRepository(mt.DB)
		assert.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID(), "u2"), repository.ErrNotFound)
	})
}

func TestTrackingPeriodRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()
	ns := "fitness." + trackingPeriodCollectionName

	mt.Run("decodes optional end date", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "userId", Value: "u1"},
			{Key: "name", Value: "Jan"},
			{Key: "startDate", Value: primitive.NewDateTimeFromTime(start)},
		}))
		repo := NewMongoTrackingPeriodRepository(mt.DB)

		period, err := repo.GetByID(ctx, id)
		require.NoError(mt, err)
		assert.True(mt, start.Equal(period.StartDate))
		assert.Nil(mt, period.EndDate)
	})

	mt.Run("clear end date", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewMongoTrackingPeriodRepository(mt.DB)
		assert.NoError(mt, repo.Update(ctx, primitive.NewObjectID(), domain.TrackingPeriodPatch{ClearEndDate: true}))
	})

	mt.Run("create requires start date", func(mt *mtest.T) {
		repo := NewMongoTrackingPeriodRepository(mt.DB)
		_, err := repo.Create(ctx, &domain.TrackingPeriod{UserID: "u1", Name: "Jan"})
		assert.Error(mt, err)
	})
}

func TestExerciseLogRepository_GetByPeriodID(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()
	ns := "fitness." + exerciseLogCollectionName

	mt.Run("decodes logs", func(mt *mtest.T) {
		periodID, exerciseID := primitive.NewObjectID(), primitive.NewObjectID()
		at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "periodId", Value: periodID},
			{Key: "exerciseId", Value: exerciseID},
			{Key: "weight", Value: 105.0},
			{Key: "reps", Value: int32(5)},
			{Key: "sets", Value: int32(3)},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(at)},
		}))
		repo := NewMongoExerciseLogRepository(mt.DB)

		logs, err := repo.GetByPeriodID(ctx, "u1", periodID)
		require.NoError(mt, err)
		require.Len(mt, logs, 1)
		assert.Equal(mt, exerciseID, logs[0].ExerciseID)
		assert.Equal(mt, 105.0, logs[0].Weight)
		assert.Equal(mt, 3, logs[0].Sets)
		assert.True(mt, at.Equal(logs[0].CreatedAt))
	})
}

func TestDailyWeightRepository_Create(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("requires week and date", func(mt *mtest.T) {
		repo := NewMongoDailyWeightRepository(mt.DB)
		_, err := repo.Create(ctx, &domain.DailyWeight{Weight: 70})
		assert.Error(mt, err)
	})

	mt.Run("inserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoDailyWeightRepository(mt.DB)
		entry := &domain.DailyWeight{WeekID: primitive.NewObjectID(), Weight: 70, Date: time.Now().UTC()}
		id, err := repo.Create(ctx, entry)
		require.NoError(mt, err)
		assert.Equal(mt, entry.ID, id)
	})
}

func TestEnsureIndexes_ToleratesFailures(t *testing.T) {
	mt := newMockT(t)

	mt.Run("no responses", func(mt *mtest.T) {
		assert.NotPanics(mt, func() { EnsureIndexes(context.Background(), mt.DB) })
	})
}
