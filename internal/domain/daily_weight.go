package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyWeight is a body-weight measurement recorded within a Week.
type DailyWeight struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WeekID    primitive.ObjectID `bson:"weekId" json:"weekId"`
	Weight    float64            `bson:"weight" json:"weight"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type DailyWeightPatch struct {
	Weight *float64
	Date   *time.Time
}
