package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const exportContentType = "application/json"

// ExportedPlan is a workout plan together with its workouts.
type ExportedPlan struct {
	domain.WorkoutPlan
	Workouts []domain.Workout `json:"workouts"`
}

// ExportedWeek is a week together with its daily weights.
type ExportedWeek struct {
	domain.Week
	DailyWeights []domain.DailyWeight `json:"dailyWeights"`
}

// ExportDocument is everything a caller owns, directly or through a parent.
type ExportDocument struct {
	Subject          string                   `json:"subject"`
	ExportedAt       time.Time                `json:"exportedAt"`
	WorkoutPlans     []ExportedPlan           `json:"workoutPlans"`
	Weeks            []ExportedWeek           `json:"weeks"`
	Exercises        []domain.Exercise        `json:"exercises"`
	TrackingPeriods  []domain.TrackingPeriod  `json:"trackingPeriods"`
	ExerciseLogs     []domain.ExerciseLog     `json:"exerciseLogs"`
	TrackedExercises []domain.TrackedExercise `json:"trackedExercises"`
}

// ExportResult points at an uploaded export.
type ExportResult struct {
	ObjectKey   string         `json:"objectKey"`
	DownloadURL string         `json:"downloadUrl"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	Counts      map[string]int `json:"counts"`
}

// ExportService writes a snapshot of the caller's data to object storage.
type ExportService interface {
	ExportMine(ctx context.Context, caller domain.Caller) (*ExportResult, error)
}

type exportService struct {
	repos     repository.Repositories
	storage   storage.FileStorage
	metrics   *metrics.Manager
	urlExpiry time.Duration
	now       func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(repos repository.Repositories, fileStorage storage.FileStorage, metricsManager *metrics.Manager, urlExpiry time.Duration) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		repos:     repos,
		storage:   fileStorage,
		metrics:   metricsManager,
		urlExpiry: urlExpiry,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// exportKey keeps the raw subject out of object keys.
func exportKey(subject string) string {
	sum := sha256.Sum256([]byte(subject))
	return fmt.Sprintf("exports/%s/%s.json", hex.EncodeToString(sum[:]), uuid.NewString())
}

func (s *exportService) ExportMine(ctx context.Context, caller domain.Caller) (*ExportResult, error) {
	if err := requireCaller(caller, "export data"); err != nil {
		return nil, err
	}

	doc, err := s.collect(ctx, caller)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := exportKey(caller.Subject)
	if err := s.storage.PutObject(ctx, key, exportContentType, body); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}
	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			log.Warnf("export %s left behind after presign failure: %v", key, delErr)
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterExports.Inc()
	}
	log.WithFields(log.Fields{"subject": caller.Subject, "key": key, "bytes": len(body)}).Info("export written")

	return &ExportResult{
		ObjectKey:   key,
		DownloadURL: url,
		ExpiresAt:   doc.ExportedAt.Add(s.urlExpiry),
		Counts: map[string]int{
			"workoutPlans":     len(doc.WorkoutPlans),
			"weeks":            len(doc.Weeks),
			"exercises":        len(doc.Exercises),
			"trackingPeriods":  len(doc.TrackingPeriods),
			"exerciseLogs":     len(doc.ExerciseLogs),
			"trackedExercises": len(doc.TrackedExercises),
		},
	}, nil
}

func (s *exportService) collect(ctx context.Context, caller domain.Caller) (*ExportDocument, error) {
	doc := &ExportDocument{Subject: caller.Subject, ExportedAt: s.now()}

	plans, err := s.repos.WorkoutPlans.GetByUserID(ctx, caller.Subject)
	if err != nil {
		return nil, err
	}
	doc.WorkoutPlans = make([]ExportedPlan, 0, len(plans))
	for _, p := range plans {
		workouts, err := s.repos.Workouts.GetByPlanID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		doc.WorkoutPlans = append(doc.WorkoutPlans, ExportedPlan{WorkoutPlan: p, Workouts: workouts})
	}

	weeks, err := s.repos.Weeks.GetByUserID(ctx, caller.Subject)
	if err != nil {
		return nil, err
	}
	doc.Weeks = make([]ExportedWeek, 0, len(weeks))
	for _, w := range weeks {
		weights, err := s.repos.DailyWeights.GetByWeekID(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		doc.Weeks = append(doc.Weeks, ExportedWeek{Week: w, DailyWeights: weights})
	}

	if doc.Exercises, err = s.repos.Exercises.GetByUserID(ctx, caller.Subject); err != nil {
		return nil, err
	}
	if doc.TrackingPeriods, err = s.repos.TrackingPeriods.GetByUserID(ctx, caller.Subject); err != nil {
		return nil, err
	}
	if doc.ExerciseLogs, err = s.repos.ExerciseLogs.GetByUserID(ctx, caller.Subject); err != nil {
		return nil, err
	}
	if doc.TrackedExercises, err = s.repos.TrackedExercises.GetByUserID(ctx, caller.Subject); err != nil {
		return nil, err
	}
	return doc, nil
}
