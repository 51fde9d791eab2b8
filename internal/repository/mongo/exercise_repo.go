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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.UserID == "" {
		return primitive.NilObjectID, errors.New("exercise name and user ID are required")
	}
	stampNew(&exercise.ID, &exercise.CreatedAt, &exercise.UpdatedAt)
	return insertOne(ctx, r.collection, exercise)
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	return findOne[domain.Exercise](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID retrieves all exercises created by a specific user.
func (r *mongoExerciseRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findMany[domain.Exercise](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

// Update modifies an existing exercise. The owner is never changed.
func (r *mongoExerciseRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ExercisePatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

// Delete removes an exercise, ensuring it belongs to the specified user.
func (r *mongoExerciseRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func exerciseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		ownerIndex(),
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("exercise_text_search"),
		},
	}
}
