package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeek_CreateValidatesTarget(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "bulk", false)
	require.NoError(t, err)
	assert.Equal(t, domain.TargetBulk, week.Target)
	assert.False(t, week.IsArchived)

	_, err = s.weeks.CreateWeek(ctx, alice, "Week 2", "maintain", false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.weeks.CreateWeek(ctx, alice, "", "cut", false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.weeks.CreateWeek(ctx, anon, "Week 3", "cut", false)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	bad := domain.Target("maintain")
	err = s.weeks.UpdateWeek(ctx, alice, week.ID, domain.WeekPatch{Target: &bad})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWeek_CreateArchived(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Old week", "cut", true)
	require.NoError(t, err)
	assert.True(t, week.IsArchived)

	got, err := s.weeks.GetWeekByID(ctx, alice, week.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)

	weeks, err := s.weeks.ListWeeks(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, weeks, 1)
}

func TestWeek_ListMine(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	w1, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "bulk", false)
	require.NoError(t, err)
	_, err = s.weeks.CreateWeek(ctx, bob, "Bob week", "cut", false)
	require.NoError(t, err)

	// archived weeks stay listed
	require.NoError(t, s.weeks.UpdateWeek(ctx, alice, w1.ID, domain.WeekPatch{IsArchived: ptr(true)}))

	weeks, err := s.weeks.ListWeeks(ctx, alice)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, w1.ID, weeks[0].ID)
	assert.True(t, weeks[0].IsArchived)
	assert.Equal(t, "Week 1", weeks[0].Name)

	weeks, err = s.weeks.ListWeeks(ctx, anon)
	require.NoError(t, err)
	assert.NotNil(t, weeks)
	assert.Empty(t, weeks)
}

func TestWeek_OwnershipAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)

	_, err = s.weeks.GetWeekByID(ctx, bob, week.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.weeks.UpdateWeek(ctx, bob, week.ID, domain.WeekPatch{Name: ptr("x")}), ErrForbidden)
	assert.ErrorIs(t, s.weeks.DeleteWeek(ctx, bob, week.ID), ErrForbidden)

	require.NoError(t, s.weeks.DeleteWeek(ctx, alice, week.ID))
	_, err = s.weeks.GetWeekByID(ctx, alice, week.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDailyWeight_TransitiveOwnership(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)
	entry, err := s.weeks.CreateDailyWeight(ctx, alice, week.ID, 70, date(t, "2024-01-01"))
	require.NoError(t, err)

	_, err = s.weeks.CreateDailyWeight(ctx, bob, week.ID, 90, date(t, "2024-01-02"))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.weeks.GetDailyWeightByID(ctx, bob, entry.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.weeks.ListDailyWeightsByWeek(ctx, bob, week.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.weeks.UpdateDailyWeight(ctx, bob, entry.ID, domain.DailyWeightPatch{Weight: ptr(1.0)}), ErrForbidden)
	assert.ErrorIs(t, s.weeks.DeleteDailyWeight(ctx, bob, entry.ID), ErrForbidden)

	_, err = s.weeks.ListDailyWeightsByWeek(ctx, anon, week.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDailyWeight_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)

	_, err = s.weeks.CreateDailyWeight(ctx, alice, week.ID, 71.5, date(t, "2024-01-02"))
	require.NoError(t, err)
	first, err := s.weeks.CreateDailyWeight(ctx, alice, week.ID, 70, date(t, "2024-01-01"))
	require.NoError(t, err)

	entries, err := s.weeks.ListDailyWeightsByWeek(ctx, alice, week.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)

	require.NoError(t, s.weeks.UpdateDailyWeight(ctx, alice, first.ID, domain.DailyWeightPatch{Weight: ptr(69.9)}))
	got, err := s.weeks.GetDailyWeightByID(ctx, alice, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 69.9, got.Weight)
	assert.True(t, got.Date.Equal(date(t, "2024-01-01")))

	require.NoError(t, s.weeks.DeleteDailyWeight(ctx, alice, first.ID))
	_, err = s.weeks.GetDailyWeightByID(ctx, alice, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDailyWeight_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)

	_, err = s.weeks.CreateDailyWeight(ctx, alice, week.ID, -1, date(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.weeks.CreateDailyWeight(ctx, alice, week.ID, 70, domain.DailyWeight{}.Date)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDailyWeight_OrphanedByWeekDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	week, err := s.weeks.CreateWeek(ctx, alice, "Week 1", "cut", false)
	require.NoError(t, err)
	entry, err := s.weeks.CreateDailyWeight(ctx, alice, week.ID, 70, date(t, "2024-01-01"))
	require.NoError(t, err)

	require.NoError(t, s.weeks.DeleteWeek(ctx, alice, week.ID))

	_, err = s.repos.DailyWeights.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, s.weeks.DeleteDailyWeight(ctx, alice, entry.ID), ErrForbidden)
}
