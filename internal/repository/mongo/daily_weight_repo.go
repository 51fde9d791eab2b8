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

const dailyWeightCollectionName = "daily_weights"

// mongoDailyWeightRepository implements repository.DailyWeightRepository
type mongoDailyWeightRepository struct {
	collection *mongo.Collection
}

func NewMongoDailyWeightRepository(db *mongo.Database) repository.DailyWeightRepository {
	return &mongoDailyWeightRepository{
		collection: db.Collection(dailyWeightCollectionName),
	}
}

func (r *mongoDailyWeightRepository) Create(ctx context.Context, weight *domain.DailyWeight) (primitive.ObjectID, error) {
	if weight.WeekID == primitive.NilObjectID || weight.Date.IsZero() {
		return primitive.NilObjectID, errors.New("daily weight requires weekId and date")
	}
	stampNew(&weight.ID, &weight.CreatedAt, &weight.UpdatedAt)
	return insertOne(ctx, r.collection, weight)
}

func (r *mongoDailyWeightRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyWeight, error) {
	return findOne[domain.DailyWeight](ctx, r.collection, bson.M{"_id": id})
}

// GetByWeekID returns the week's entries in ascending date order.
func (r *mongoDailyWeightRepository) GetByWeekID(ctx context.Context, weekID primitive.ObjectID) ([]domain.DailyWeight, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})
	return findMany[domain.DailyWeight](ctx, r.collection, bson.M{"weekId": weekID}, findOptions)
}

func (r *mongoDailyWeightRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.DailyWeightPatch) error {
	set := bson.M{}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

func (r *mongoDailyWeightRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id})
}

func dailyWeightIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weekId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
}
