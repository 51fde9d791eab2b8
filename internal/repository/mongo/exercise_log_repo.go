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

const exerciseLogCollectionName = "exercise_logs"

// mongoExerciseLogRepository implements repository.ExerciseLogRepository
type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{
		collection: db.Collection(exerciseLogCollectionName),
	}
}

// Create inserts a new log. A zero CreatedAt is replaced with the insertion time.
func (r *mongoExerciseLogRepository) Create(ctx context.Context, log *domain.ExerciseLog) (primitive.ObjectID, error) {
	if log.UserID == "" || log.PeriodID == primitive.NilObjectID || log.ExerciseID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise log requires userId, periodId and exerciseId")
	}
	stampNew(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	return insertOne(ctx, r.collection, log)
}

func (r *mongoExerciseLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseLog, error) {
	return findOne[domain.ExerciseLog](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID returns all of the user's logs, newest first.
func (r *mongoExerciseLogRepository) GetByUserID(ctx context.Context, userID string) ([]domain.ExerciseLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findMany[domain.ExerciseLog](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

// GetByPeriodID returns the user's logs within one tracking period, newest first.
func (r *mongoExerciseLogRepository) GetByPeriodID(ctx context.Context, userID string, periodID primitive.ObjectID) ([]domain.ExerciseLog, error) {
	filter := bson.M{
		"userId":   userID,
		"periodId": periodID,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findMany[domain.ExerciseLog](ctx, r.collection, filter, findOptions)
}

func (r *mongoExerciseLogRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ExerciseLogPatch) error {
	set := bson.M{}
	if patch.PeriodID != nil {
		set["periodId"] = *patch.PeriodID
	}
	if patch.ExerciseID != nil {
		set["exerciseId"] = *patch.ExerciseID
	}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.Reps != nil {
		set["reps"] = *patch.Reps
	}
	if patch.Sets != nil {
		set["sets"] = *patch.Sets
	}
	if patch.CreatedAt != nil {
		set["createdAt"] = *patch.CreatedAt
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

func (r *mongoExerciseLogRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func exerciseLogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		ownerIndex(),
		{
			// Progress view: one period's logs for one user, grouped by exercise
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "periodId", Value: 1}, {Key: "exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}
}
