package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseProgress is the log history of one exercise, newest first.
type ExerciseProgress struct {
	Exercise domain.Exercise      `json:"exercise"`
	Logs     []domain.ExerciseLog `json:"logs"`
	Latest   domain.ExerciseLog   `json:"latest"`
}

// WeightSummary describes a week's body-weight series in date order.
type WeightSummary struct {
	Starting float64 `json:"starting"`
	Current  float64 `json:"current"`
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Change   float64 `json:"change"`
	Count    int     `json:"count"`
}

// GroupLogsByExercise partitions logs by exercise. Each group is sorted by CreatedAt
// descending, so Latest is the first log. Exercises without logs are left out and
// the remaining groups keep the order of exercises.
func GroupLogsByExercise(exercises []domain.Exercise, logs []domain.ExerciseLog) []ExerciseProgress {
	byExercise := make(map[primitive.ObjectID][]domain.ExerciseLog)
	for _, l := range logs {
		byExercise[l.ExerciseID] = append(byExercise[l.ExerciseID], l)
	}

	progress := make([]ExerciseProgress, 0, len(byExercise))
	for _, ex := range exercises {
		group, ok := byExercise[ex.ID]
		if !ok {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.After(group[j].CreatedAt)
		})
		progress = append(progress, ExerciseProgress{
			Exercise: ex,
			Logs:     group,
			Latest:   group[0],
		})
	}
	return progress
}

// SummarizeWeights expects entries already in date order.
func SummarizeWeights(entries []domain.DailyWeight) (WeightSummary, error) {
	if len(entries) == 0 {
		return WeightSummary{}, ErrEmptySeries
	}

	first, last := entries[0].Weight, entries[len(entries)-1].Weight
	summary := WeightSummary{
		Starting: first,
		Current:  last,
		Min:      first,
		Max:      first,
		Change:   round2(last - first),
		Count:    len(entries),
	}
	var total float64
	for _, e := range entries {
		total += e.Weight
		summary.Min = math.Min(summary.Min, e.Weight)
		summary.Max = math.Max(summary.Max, e.Weight)
	}
	summary.Average = round2(total / float64(len(entries)))
	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProgressService computes read-only views over a caller's records.
type ProgressService interface {
	PeriodProgress(ctx context.Context, caller domain.Caller, periodID primitive.ObjectID) ([]ExerciseProgress, error)
	WeekSummary(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID) (WeightSummary, error)
}

type progressService struct {
	repos repository.Repositories
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(repos repository.Repositories) ProgressService {
	return &progressService{repos: repos}
}

// PeriodProgress groups the period's logs by the caller's exercises.
func (s *progressService) PeriodProgress(ctx context.Context, caller domain.Caller, periodID primitive.ObjectID) ([]ExerciseProgress, error) {
	if err := requireCaller(caller, "view progress"); err != nil {
		return nil, err
	}
	period, err := s.repos.TrackingPeriods.GetByID(ctx, periodID)
	if err != nil {
		return nil, lookupErr(err, entityTrackingPeriod)
	}
	if err := checkOwner(caller, period.UserID, entityTrackingPeriod, periodID); err != nil {
		return nil, err
	}

	exercises, err := s.repos.Exercises.GetByUserID(ctx, caller.Subject)
	if err != nil {
		return nil, err
	}
	logs, err := s.repos.ExerciseLogs.GetByPeriodID(ctx, caller.Subject, periodID)
	if err != nil {
		return nil, err
	}
	return GroupLogsByExercise(exercises, logs), nil
}

// WeekSummary sorts the week's entries by date before summarizing, whatever order the store returned.
func (s *progressService) WeekSummary(ctx context.Context, caller domain.Caller, weekID primitive.ObjectID) (WeightSummary, error) {
	if err := requireCaller(caller, "view a week summary"); err != nil {
		return WeightSummary{}, err
	}
	week, err := s.repos.Weeks.GetByID(ctx, weekID)
	if err != nil {
		return WeightSummary{}, lookupErr(err, entityWeek)
	}
	if err := checkOwner(caller, week.UserID, entityWeek, weekID); err != nil {
		return WeightSummary{}, err
	}

	entries, err := s.repos.DailyWeights.GetByWeekID(ctx, weekID)
	if err != nil {
		return WeightSummary{}, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return SummarizeWeights(entries)
}
