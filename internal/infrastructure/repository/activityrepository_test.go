package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/activity"
)

func createTestActivity(t *testing.T, repo activity.Repository, title string) *activity.Activity {
	t.Helper()

	start := time.Now().AddDate(0, 0, 7)
	a, err := activity.NewActivity(title, activity.ActivityTypeAdoption, start, start.Add(4*time.Hour),
		"city park", "", "shelter staff")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	require.NotZero(t, a.ID())
	return a
}

func TestActivityRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db, testLogger())
	ctx := context.Background()

	a := createTestActivity(t, repo, "Adoption day")

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Adoption day", found.Title())
	assert.Equal(t, activity.StatusUpcoming, found.Status())
	assert.Equal(t, 0, found.ParticipantCount())
}

func TestActivityRepository_ParticipantCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db, testLogger())
	ctx := context.Background()

	a := createTestActivity(t, repo, "Adoption day")

	require.NoError(t, repo.IncrementParticipantCount(ctx, a.ID()))
	require.NoError(t, repo.IncrementParticipantCount(ctx, a.ID()))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, found.ParticipantCount())

	require.NoError(t, repo.DecrementParticipantCount(ctx, a.ID()))
	require.NoError(t, repo.DecrementParticipantCount(ctx, a.ID()))
	require.NoError(t, repo.DecrementParticipantCount(ctx, a.ID()))

	found, err = repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.ParticipantCount(), "participant count never goes below zero")

	assert.ErrorIs(t, repo.IncrementParticipantCount(ctx, 9999), activity.ErrActivityNotFound)
	assert.ErrorIs(t, repo.DecrementParticipantCount(ctx, 9999), activity.ErrActivityNotFound)
}

func TestActivityRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db, testLogger())
	ctx := context.Background()

	createTestActivity(t, repo, "Adoption day")
	createTestActivity(t, repo, "Fundraising gala")

	activities, total, err := repo.List(ctx, activity.ListFilter{Title: "gala"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, activities, 1)
	assert.Equal(t, "Fundraising gala", activities[0].Title())

	upcoming := activity.StatusUpcoming
	_, total, err = repo.List(ctx, activity.ListFilter{Status: &upcoming})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
