package mongo

import (
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The initial connect can succeed against an unresponsive server, so ping the primary.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// NewRepositories wires every MongoDB-backed repository against db.
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		WorkoutPlans:     NewMongoWorkoutPlanRepository(db),
		Workouts:         NewMongoWorkoutRepository(db),
		Weeks:            NewMongoWeekRepository(db),
		DailyWeights:     NewMongoDailyWeightRepository(db),
		Exercises:        NewMongoExerciseRepository(db),
		TrackingPeriods:  NewMongoTrackingPeriodRepository(db),
		ExerciseLogs:     NewMongoExerciseLogRepository(db),
		TrackedExercises: NewMongoTrackedExerciseRepository(db),
	}
}

// EnsureIndexes creates the owner and parent-reference indexes for every collection.
// Failures are logged, not returned: the service still works without indexes, only slower.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	ensure := func(collection string, indexes []mongo.IndexModel) {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			log.WithError(err).WithField("collection", collection).Warn("failed to create indexes")
		}
	}
	ensure(workoutPlanCollectionName, workoutPlanIndexes())
	ensure(workoutCollectionName, workoutIndexes())
	ensure(weekCollectionName, weekIndexes())
	ensure(dailyWeightCollectionName, dailyWeightIndexes())
	ensure(exerciseCollectionName, exerciseIndexes())
	ensure(trackingPeriodCollectionName, trackingPeriodIndexes())
	ensure(exerciseLogCollectionName, exerciseLogIndexes())
	ensure(trackedExerciseCollectionName, trackedExerciseIndexes())
	log.Debug("index creation process completed")
}

func ownerIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index(),
	}
}

// insertOne stores doc and returns the identifier the driver reports back.
func insertOne(ctx context.Context, collection *mongo.Collection, doc interface{}) (primitive.ObjectID, error) {
	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func findOne[T any](ctx context.Context, collection *mongo.Collection, filter interface{}) (*T, error) {
	var doc T
	if err := collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// findMany returns an empty (non-nil) slice when nothing matches.
func findMany[T any](ctx context.Context, collection *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// updateByID applies set (plus a fresh updatedAt) and, when given, unset to the document.
func updateByID(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, set bson.M, unset bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// deleteOne removes the single document matching filter.
// A filter that includes userId makes a foreign record indistinguishable from a missing one.
func deleteOne(ctx context.Context, collection *mongo.Collection, filter bson.M) error {
	result, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func stampNew(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	*id = primitive.NewObjectID()
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
