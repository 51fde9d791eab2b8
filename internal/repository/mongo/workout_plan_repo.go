// internal/repository/mongo/workout_plan_repo.go
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

const workoutPlanCollectionName = "workout_plans"

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutPlanRepository creates a new WorkoutPlan repository.
func NewMongoWorkoutPlanRepository(db *mongo.Database) repository.WorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

// Create inserts a new workout plan.
func (r *mongoWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.UserID == "" || plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan requires userId and name")
	}
	stampNew(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	return insertOne(ctx, r.collection, plan)
}

// GetByID retrieves a single workout plan by its ID.
func (r *mongoWorkoutPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	return findOne[domain.WorkoutPlan](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID retrieves all plans owned by userID, oldest first.
func (r *mongoWorkoutPlanRepository) GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findMany[domain.WorkoutPlan](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

// Update sets only the fields present in patch. The owner is never changed.
func (r *mongoWorkoutPlanRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.WorkoutPlanPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

// Delete removes a plan, ensuring it belongs to userID. Workouts referencing it are left in place.
func (r *mongoWorkoutPlanRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func workoutPlanIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		ownerIndex(),
	}
}
