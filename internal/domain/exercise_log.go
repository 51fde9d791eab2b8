package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLog records the weight, reps and sets performed for an exercise
// during a tracking period. CreatedAt is the time the set was performed and
// is supplied by the caller.
type ExerciseLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	PeriodID   primitive.ObjectID `bson:"periodId" json:"periodId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Weight     float64            `bson:"weight" json:"weight"`
	Reps       int                `bson:"reps" json:"reps"`
	Sets       int                `bson:"sets" json:"sets"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ExerciseLogPatch struct {
	PeriodID   *primitive.ObjectID
	ExerciseID *primitive.ObjectID
	Weight     *float64
	Reps       *int
	Sets       *int
	CreatedAt  *time.Time
}
