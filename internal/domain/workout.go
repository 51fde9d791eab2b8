package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single weight/reps entry inside a WorkoutPlan.
// It has no owner of its own; access is derived from the parent plan.
type Workout struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutPlanID primitive.ObjectID `bson:"workoutPlanId" json:"workoutPlanId"` // Link back to the plan
	Weight        float64            `bson:"weight" json:"weight"`
	Reps          int                `bson:"reps" json:"reps"`
	Week          int                `bson:"week" json:"week"` // Week number within the plan
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type WorkoutPatch struct {
	Weight      *float64
	Reps        *int
	Week        *int
	Description *string
}
