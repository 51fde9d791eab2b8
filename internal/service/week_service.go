package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	entityWeek        = "week"
	entityDailyWeight = "daily weight"
)

// WeekService manages weeks and their daily body-weight entries.
type WeekService interface {
	CreateWeek(ctx context.Context, caller domain.Caller, name, target string, archived bool) (*domain.Week, error)
	GetWeekByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Week, error)
	ListWeeks(ctx context.Context, caller domain.Caller) ([]domain.Week, error)
	UpdateWeek(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WeekPatch) error
	DeleteWeek(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error

	CreateDailyWeight(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID, weight float64, date time.Time) (*domain.DailyWeight, error)
	GetDailyWeightByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.DailyWeight, error)
	ListDailyWeightsByWeek(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID) ([]domain.DailyWeight, error)
	UpdateDailyWeight(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.DailyWeightPatch) error
	DeleteDailyWeight(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error
}

type weekService struct {
	weekRepo   repository.WeekRepository
	weightRepo repository.DailyWeightRepository
}

// NewWeekService creates a new instance of weekService.
func NewWeekService(weekRepo repository.WeekRepository, weightRepo repository.DailyWeightRepository) WeekService {
	return &weekService{
		weekRepo:   weekRepo,
		weightRepo: weightRepo,
	}
}

func (s *weekService) CreateWeek(ctx context.Context, caller domain.Caller, name, target string, archived bool) (*domain.Week, error) {
	if err := requireCaller(caller, "create a week"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("week name is required")
	}
	t, err := domain.ParseTarget(target)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	week := &domain.Week{
		UserID:     caller.Subject,
		Name:       name,
		Target:     t,
		IsArchived: archived,
	}
	if _, err := s.weekRepo.Create(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

func (s *weekService) GetWeekByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Week, error) {
	if err := requireCaller(caller, "view a week"); err != nil {
		return nil, err
	}
	return s.ownedWeek(ctx, caller, id)
}

// ListWeeks returns the caller's weeks, archived ones included.
// Anonymous callers get an empty list.
func (s *weekService) ListWeeks(ctx context.Context, caller domain.Caller) ([]domain.Week, error) {
	if !caller.Authenticated() {
		return []domain.Week{}, nil
	}
	return s.weekRepo.GetByUserID(ctx, caller.Subject)
}

func (s *weekService) UpdateWeek(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.WeekPatch) error {
	if err := requireCaller(caller, "update a week"); err != nil {
		return err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalidArgument("week name cannot be empty")
	}
	if patch.Target != nil && !patch.Target.Valid() {
		return invalidArgument("invalid target %q", *patch.Target)
	}
	if _, err := s.ownedWeek(ctx, caller, id); err != nil {
		return err
	}
	if err := s.weekRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityWeek)
	}
	return nil
}

// DeleteWeek removes the week only; its daily weights are left orphaned.
func (s *weekService) DeleteWeek(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a week"); err != nil {
		return err
	}
	if _, err := s.ownedWeek(ctx, caller, id); err != nil {
		return err
	}
	if err := s.weekRepo.Delete(ctx, id, caller.Subject); err != nil {
		return lookupErr(err, entityWeek)
	}
	return nil
}

func (s *weekService) ownedWeek(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.Week, error) {
	week, err := s.weekRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityWeek)
	}
	if err := checkOwner(caller, week.UserID, entityWeek, id); err != nil {
		return nil, err
	}
	return week, nil
}

// --- daily weights ---

// CreateDailyWeight records a body-weight entry in a week the caller owns.
func (s *weekService) CreateDailyWeight(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID, weight float64, date time.Time) (*domain.DailyWeight, error) {
	if err := requireCaller(caller, "record a daily weight"); err != nil {
		return nil, err
	}
	if weekID == primitive.NilObjectID {
		return nil, invalidArgument("weekId is required")
	}
	if err := nonNegative("weight", weight); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, invalidArgument("date is required")
	}
	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
		return nil, err
	}

	entry := &domain.DailyWeight{
		WeekID: weekID,
		Weight: weight,
		Date:   date.UTC(),
	}
	if _, err := s.weightRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *weekService) GetDailyWeightByID(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.DailyWeight, error) {
	if err := requireCaller(caller, "view a daily weight"); err != nil {
		return nil, err
	}
	return s.ownedDailyWeight(ctx, caller, id)
}

// ListDailyWeightsByWeek returns the week's entries ordered by date.
func (s *weekService) ListDailyWeightsByWeek(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID) ([]domain.DailyWeight, error) {
	if err := requireCaller(caller, "view daily weights"); err != nil {
		return nil, err
	}
	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
		return nil, err
	}
	return s.weightRepo.GetByWeekID(ctx, weekID)
}

func (s *weekService) UpdateDailyWeight(ctx context.Context, caller domain.Caller, id primitive.ObjectID, patch domain.DailyWeightPatch) error {
	if err := requireCaller(caller, "update a daily weight"); err != nil {
		return err
	}
	if patch.Weight != nil {
		if err := nonNegative("weight", *patch.Weight); err != nil {
			return err
		}
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return invalidArgument("date cannot be empty")
		}
		d := patch.Date.UTC()
		patch.Date = &d
	}
	if _, err := s.ownedDailyWeight(ctx, caller, id); err != nil {
		return err
	}
	if err := s.weightRepo.Update(ctx, id, patch); err != nil {
		return lookupErr(err, entityDailyWeight)
	}
	return nil
}

func (s *weekService) DeleteDailyWeight(ctx context.Context, caller domain.Caller, id primitive.ObjectID) error {
	if err := requireCaller(caller, "delete a daily weight"); err != nil {
		return err
	}
	if _, err := s.ownedDailyWeight(ctx, caller, id); err != nil {
		return err
	}
	if err := s.weightRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, entityDailyWeight)
	}
	return nil
}

// ownedDailyWeight authorizes through the parent week. Entries of a deleted week are forbidden.
func (s *weekService) ownedDailyWeight(ctx context.Context, caller domain.Caller, id primitive.ObjectID) (*domain.DailyWeight, error) {
	entry, err := s.weightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityDailyWeight)
	}
	week, err := s.weekRepo.GetByID(ctx, entry.WeekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, checkOwner(caller, "", entityDailyWeight, id)
		}
		return nil, lookupErr(err, entityWeek)
	}
	if err := checkOwner(caller, week.UserID, entityDailyWeight, id); err != nil {
		return nil, err
	}
	return entry, nil
}
