package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Target is the goal of a tracking week.
type Target string

const (
	TargetBulk Target = "bulk"
	TargetCut  Target = "cut"
)

// ParseTarget converts s into a Target, rejecting anything but "bulk" and "cut".
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetBulk, TargetCut:
		return t, nil
	default:
		return "", fmt.Errorf("invalid target %q: must be %q or %q", s, TargetBulk, TargetCut)
	}
}

// Valid reports whether t is one of the known targets.
func (t Target) Valid() bool {
	_, err := ParseTarget(string(t))
	return err == nil
}

// Week groups daily weight entries under a bulk or cut phase.
// IsArchived is stored but archived weeks are still listed.
type Week struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Target     Target             `bson:"target" json:"target"`
	IsArchived bool               `bson:"isArchived" json:"isArchived"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type WeekPatch struct {
	Name       *string
	Target     *Target
	IsArchived *bool
}
