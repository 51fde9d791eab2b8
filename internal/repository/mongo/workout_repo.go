// internal/repository/mongo/workout_repo.go
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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.WorkoutPlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout requires workoutPlanId")
	}
	stampNew(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
	return insertOne(ctx, r.collection, workout)
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	return findOne[domain.Workout](ctx, r.collection, bson.M{"_id": id})
}

// GetByPlanID retrieves all workouts associated with a specific plan, ordered by week.
func (r *mongoWorkoutRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "week", Value: 1}, {Key: "createdAt", Value: 1}})
	return findMany[domain.Workout](ctx, r.collection, bson.M{"workoutPlanId": planID}, findOptions)
}

// Update sets only the fields present in patch. The parent plan cannot be changed.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.WorkoutPatch) error {
	set := bson.M{}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.Reps != nil {
		set["reps"] = *patch.Reps
	}
	if patch.Week != nil {
		set["week"] = *patch.Week
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id})
}

func workoutIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// Workouts are always listed within a plan, ordered by week
			Keys:    bson.D{{Key: "workoutPlanId", Value: 1}, {Key: "week", Value: 1}},
			Options: options.Index(),
		},
	}
}
