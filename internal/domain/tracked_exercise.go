package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackedExercise marks an exercise as scheduled on a date within a period.
type TrackedExercise struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	PeriodID   primitive.ObjectID `bson:"periodId" json:"periodId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Date       time.Time          `bson:"date" json:"date"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type TrackedExercisePatch struct {
	PeriodID   *primitive.ObjectID
	ExerciseID *primitive.ObjectID
	Date       *time.Time
}
