package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptySeries is returned by aggregations that need at least one value.
	ErrEmptySeries = errors.New("empty series")
)

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// requireCaller fails with ErrUnauthenticated when the caller has no identity.
func requireCaller(caller domain.Caller, action string) error {
	if !caller.Authenticated() {
		return fmt.Errorf("%w: you must be logged in to %s", ErrUnauthenticated, action)
	}
	return nil
}

// lookupErr maps a repository failure for entity into the service taxonomy.
func lookupErr(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return fmt.Errorf("%s lookup: %w", entity, err)
}

// checkOwner fails with ErrForbidden when ownerID is not the caller.
func checkOwner(caller domain.Caller, ownerID, entity string, id primitive.ObjectID) error {
	if caller.Owns(ownerID) {
		return nil
	}
	log.WithFields(log.Fields{
		"subject": caller.Subject,
		"entity":  entity,
		"id":      id.Hex(),
	}).Warn("ownership check failed")
	return fmt.Errorf("%w: %s %s does not belong to caller", ErrForbidden, entity, id.Hex())
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return invalidArgument("%s must not be negative", name)
	}
	return nil
}
