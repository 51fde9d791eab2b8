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

const weekCollectionName = "weeks"

// mongoWeekRepository implements repository.WeekRepository
type mongoWeekRepository struct {
	collection *mongo.Collection
}

// NewMongoWeekRepository creates a new Week repository backed by MongoDB.
func NewMongoWeekRepository(db *mongo.Database) repository.WeekRepository {
	return &mongoWeekRepository{
		collection: db.Collection(weekCollectionName),
	}
}

// Create inserts a new week.
func (r *mongoWeekRepository) Create(ctx context.Context, week *domain.Week) (primitive.ObjectID, error) {
	if week.UserID == "" || week.Name == "" {
		return primitive.NilObjectID, errors.New("week requires userId and name")
	}
	stampNew(&week.ID, &week.CreatedAt, &week.UpdatedAt)
	return insertOne(ctx, r.collection, week)
}

func (r *mongoWeekRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Week, error) {
	return findOne[domain.Week](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID lists every week of userID, archived ones included.
func (r *mongoWeekRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Week, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findMany[domain.Week](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

func (r *mongoWeekRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.WeekPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Target != nil {
		set["target"] = *patch.Target
	}
	if patch.IsArchived != nil {
		set["isArchived"] = *patch.IsArchived
	}
	return updateByID(ctx, r.collection, id, set, nil)
}

// Delete removes a week owned by userID. Daily weights referencing it are not touched.
func (r *mongoWeekRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func weekIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		ownerIndex(),
	}
}
