package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const entityTrackingPeriod = "tracking period"

// TrackingPeriodInput carries the fields of a new tracking period.
type TrackingPeriodInput struct {
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}

// TrackingPeriodService manages named date ranges that group exercise logs.
type TrackingPeriodService interface {
	CreateTrackingPeriod(ctx context.Context, caller domain.Caller, input TrackingPeriodInput) (*domain.TrackingPeriod, error)
	GetTrackingPeriodByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackingPeriod, error)
	ListTrackingPeriods(ctx context.Context, caller domain.Caller) ([]domain.TrackingPeriod, error)
	UpdateTrackingPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.TrackingPeriodPatch) error
	DeleteTrackingPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

type trackingPeriodService struct {
	periodRepo repository.TrackingPeriodRepository
}

// NewTrackingPeriodService creates a new instance of trackingPeriodService.
func NewTrackingPeriodService(periodRepo repository.TrackingPeriodRepository) TrackingPeriodService {
	return &trackingPeriodService{periodRepo: periodRepo}
}

func validatePeriodRange(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return invalidArgument("start date is required")
	}
	if end != nil && end.Before(start) {
		return invalidArgument("end date must not be before start date")
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (s *trackingPeriodService) CreateTrackingPeriod(ctx context.Context, caller domain.Caller, input TrackingPeriodInput) (*domain.TrackingPeriod, error) {
	if err := requireCaller(caller, "create a tracking period"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalidArgument("period name is required")
	}
	if err := validatePeriodRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	period := &domain.TrackingPeriod{
		UserID:    caller.Subject,
		Name:      input.Name,
		StartDate: input.StartDate.UTC(),
		EndDate:   utcPtr(input.EndDate),
	}
	if _, err := s.periodRepo.Create(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *trackingPeriodService) GetTrackingPeriodByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackingPeriod, error) {
	if err := requireCaller(caller, "view a tracking period"); err != nil {
		return nil, err
	}
	return s.ownedPeriod(ctx, caller, id)
}

// ListTrackingPeriods returns the caller's periods, most recent start first.
func (s *trackingPeriodService) ListTrackingPeriods(ctx context.Context, caller domain.Caller) ([]domain.TrackingPeriod, error) {
	if !caller.Authenticated() {
		return []domain.TrackingPeriod{}, nil
	}
	return s.periodRepo.GetByUserID(ctx, caller.Subject)
}

// UpdateTrackingPeriod validates the merged date range, not just the patched fields.
func (s *trackingPeriodService) UpdateTrackingPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.TrackingPeriodPatch) error {
	if err := requireCaller(caller, "update a tracking period"); err != nil {
		return err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalidArgument("period name cannot be empty")
	}
	if patch.ClearEndDate && patch.EndDate != nil {
		return invalidArgument("cannot both set and clear the end date")
	}
	period, err := s.ownedPeriod(ctx, caller, id)
	if err != nil {
		return err
	}

	start, end := period.StartDate, period.EndDate
	if patch.StartDate != nil {
		start = *patch.StartDate
	}
	if patch.EndDate != nil {
		end = patch.EndDate
	}
	if patch.ClearEndDate {
		end = nil
	}
	if err := validatePeriodRange(start, end); err != nil {
		return err
	}
	patch.StartDate = utcPtr(patch.StartDate)
	patch.EndDate = utcPtr(patch.EndDate)

	if err := s.periodRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityTrackingPeriod)
	}
	return nil
}

// DeleteTrackingPeriod removes the period only; logs and tracked exercises keep their periodId.
func (s *trackingPeriodService) DeleteTrackingPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a tracking period"); err != nil {
		return err
	}
	if _, err := s.ownedPeriod(ctx, caller, id); err != nil {
		return err
	}
	if err := s.periodRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityTrackingPeriod)
	}
	return nil
}

func (s *trackingPeriodService) ownedPeriod(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.TrackingPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityTrackingPeriod)
	}
	if err := checkOwner(caller, period.UserID, entityTrackingPeriod, id); err != nil {
		return nil, err
	}
	return period, nil
}
