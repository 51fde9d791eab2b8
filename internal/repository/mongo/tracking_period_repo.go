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

const trackingPeriodCollectionName = "tracking_periods"

// mongoTrackingPeriodRepository implements repository.TrackingPeriodRepository
type mongoTrackingPeriodRepository struct {
	collection *mongo.Collection
}

func NewMongoTrackingPeriodRepository(db *mongo.Database) repository.TrackingPeriodRepository {
	return &mongoTrackingPeriodRepository{
		collection: db.Collection(trackingPeriodCollectionName),
	}
}

func (r *mongoTrackingPeriodRepository) Create(ctx context.Context, period *domain.TrackingPeriod) (primitive.ObjectID, error) {
	if period.UserID == "" || period.Name == "" || period.StartDate.IsZero() {
		return primitive.NilObjectID, errors.New("tracking period requires userId, name and startDate")
	}
	stampNew(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	return insertOne(ctx, r.collection, period)
}

func (r *mongoTrackingPeriodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrackingPeriod, error) {
	return findOne[domain.TrackingPeriod](ctx, r.collection, bson.M{"_id": id})
}

// GetByUserID lists the user's periods, most recently started first.
func (r *mongoTrackingPeriodRepository) GetByUserID(ctx context.Context, userID string) ([]domain.TrackingPeriod, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	return findMany[domain.TrackingPeriod](ctx, r.collection, bson.M{"userId": userID}, findOptions)
}

func (r *mongoTrackingPeriodRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.TrackingPeriodPatch) error {
	set := bson.M{}
	var unset bson.M
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.ClearEndDate {
		unset = bson.M{"endDate": ""}
	} else if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	return updateByID(ctx, r.collection, id, set, unset)
}

// Delete removes a period owned by userID. Logs and tracked exercises referencing it remain.
func (r *mongoTrackingPeriodRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) error {
	return deleteOne(ctx, r.collection, bson.M{"_id": id, "userId": userID})
}

func trackingPeriodIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "startDate", Value: -1}},
			Options: options.Index(),
		},
	}
}
