package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trackedExerciseCollectionName = "tracked_exercises"

// mongoTrackedExerciseRepository implements repository.TrackedExerciseRepository
type mongoTrackedExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoTrackedExerciseRepository(db *mongo.Database) repository.TrackedExerciseRepository {
	return &mongoTrackedExerciseRepository{
		collection: db.Collection(trackedExerciseCollectionName),
	}
}

func (r *mongoTrackedExerciseRepository) Create(ctx context.Context, tracked *domain.TrackedExercise) (primitive.ObjectID, error) {
	if tracked.UserID == "" || tracked.PeriodID == primitive.NilObjectID || tracked.ExerciseID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("tracked exercise requires userId, periodId and exerciseId")
	}
	stampNew(&tracked.ID, &tracked.CreatedAt, &tracked.UpdatedAt)
	return insertOne(ctx, r.collection, tracked)
}

func (r *mongoTrackedExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrackedExercise, error) {
	return findOne[domain.TrackedExercise](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoTrackedExerciseRepository) GetByUserID(ctx context.Context, userID string) ([]domain.TrackedExercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return findMany[domain.TrackedExercise](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

func (r *mongoTrackedExerciseRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.TrackedExercisePatch) error {
	set := bson.M{}
	if patch.PeriodID != nil {
		set["periodId"] = *patch.PeriodID
	}
	if patch.ExerciseID != nil {
		set["exerciseId"] = *patch.ExerciseID
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

func (r *mongoTrackedExerciseRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func trackedExerciseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
}
