package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingPeriod is a named date range within which exercise logs are recorded.
type TrackingPeriod struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"` // Open-ended when nil
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TrackingPeriodPatch lists the mutable period fields.
// ClearEndDate removes the end date and takes precedence over EndDate.
type TrackingPeriodPatch struct {
	Name         *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
}
