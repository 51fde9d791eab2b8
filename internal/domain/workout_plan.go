// internal/domain/workout_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlan is a named collection of workouts owned by a single user.
type WorkoutPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"` // Owner (identity provider subject)
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutPlanPatch lists the mutable plan fields. Nil fields are left untouched.
type WorkoutPlanPatch struct {
	Name        *string
	Description *string
}
