package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
)

func createTestVolunteer(t *testing.T, repo volunteer.Repository, name string) *volunteer.Volunteer {
	t.Helper()

	v, err := volunteer.NewVolunteer(name, "13800000000", name+"@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), v))
	require.NotZero(t, v.ID())
	return v
}

func TestVolunteerRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())
	ctx := context.Background()

	v := createTestVolunteer(t, repo, "Alice")

	found, err := repo.GetByID(ctx, v.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, volunteer.StatusActive, found.Status())
	assert.Equal(t, 0, found.ActivitiesParticipated())
	assert.Zero(t, found.TotalHours())
}

func TestVolunteerRepository_AddHours(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())
	ctx := context.Background()

	v := createTestVolunteer(t, repo, "Alice")

	require.NoError(t, repo.AddHours(ctx, v.ID(), 2.5))
	require.NoError(t, repo.AddHours(ctx, v.ID(), 1.5))

	found, err := repo.GetByID(ctx, v.ID())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, found.TotalHours(), 1e-9)
	assert.Equal(t, 2, found.ActivitiesParticipated(), "each credit counts one activity")
}

func TestVolunteerRepository_AddHours_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())

	err := repo.AddHours(context.Background(), 9999, 2)
	assert.ErrorIs(t, err, volunteer.ErrVolunteerNotFound)
}

func TestVolunteerRepository_SumTotalHours(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())
	ctx := context.Background()

	total, err := repo.SumTotalHours(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	a := createTestVolunteer(t, repo, "Alice")
	b := createTestVolunteer(t, repo, "Bob")
	require.NoError(t, repo.AddHours(ctx, a.ID(), 3))
	require.NoError(t, repo.AddHours(ctx, b.ID(), 4.5))

	total, err = repo.SumTotalHours(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, total, 1e-9)
}

func TestVolunteerRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())
	ctx := context.Background()

	createTestVolunteer(t, repo, "Alice Zhang")
	createTestVolunteer(t, repo, "Bob Li")

	volunteers, total, err := repo.List(ctx, volunteer.ListFilter{Name: "Alice"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "Alice Zhang", volunteers[0].Name())

	active := volunteer.StatusActive
	volunteers, total, err = repo.List(ctx, volunteer.ListFilter{Status: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, volunteers, 2)

	inactive := volunteer.StatusInactive
	_, total, err = repo.List(ctx, volunteer.ListFilter{Status: &inactive})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestVolunteerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db, testLogger())
	ctx := context.Background()

	v := createTestVolunteer(t, repo, "Alice")

	require.NoError(t, repo.Delete(ctx, v.ID()))

	found, err := repo.GetByID(ctx, v.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, v.ID()), volunteer.ErrVolunteerNotFound)
}
