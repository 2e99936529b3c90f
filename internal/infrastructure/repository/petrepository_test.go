package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/pet"
)

func createTestPet(t *testing.T, repo pet.Repository, name string, petType pet.PetType, gender pet.Gender) *pet.Pet {
	t.Helper()

	p, err := pet.NewPet(name, petType, "Mixed", 2, gender)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	require.NotZero(t, p.ID())
	return p
}

func TestPetRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	p := createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Buddy", found.Name())
	assert.Equal(t, pet.PetTypeDog, found.Type())
	assert.Equal(t, pet.GenderMale, found.Gender())
	assert.Equal(t, pet.HealthStatusHealthy, found.HealthStatus())
	assert.Equal(t, pet.AdoptionStatusAvailable, found.AdoptionStatus())
	assert.Equal(t, 0, found.ViewCount())
	assert.Equal(t, 0, found.FavoriteCount())
	assert.Equal(t, 1, found.Version())
}

func TestPetRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())

	found, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPetRepository_Update_OptimisticLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	p := createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)

	name := "Max"
	location := "shelter A"
	require.NoError(t, p.Update(pet.UpdateAttrs{Name: &name, Location: &location}))
	p.IncrementVersion()
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Max", found.Name())
	require.NotNil(t, found.Location())
	assert.Equal(t, "shelter A", *found.Location())
	assert.Equal(t, 2, found.Version())

	// Replaying the same version is a stale write
	err = repo.Update(ctx, p)
	assert.ErrorIs(t, err, pet.ErrVersionConflict)
}

func TestPetRepository_Counters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	p := createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)

	require.NoError(t, repo.IncrementViewCount(ctx, p.ID()))
	require.NoError(t, repo.IncrementViewCount(ctx, p.ID()))
	require.NoError(t, repo.IncrementFavoriteCount(ctx, p.ID()))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, found.ViewCount())
	assert.Equal(t, 1, found.FavoriteCount())

	require.NoError(t, repo.DecrementFavoriteCount(ctx, p.ID()))
	require.NoError(t, repo.DecrementFavoriteCount(ctx, p.ID()))

	found, err = repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.FavoriteCount(), "favorite count never goes below zero")

	assert.ErrorIs(t, repo.IncrementViewCount(ctx, 9999), pet.ErrPetNotFound)
	assert.ErrorIs(t, repo.IncrementFavoriteCount(ctx, 9999), pet.ErrPetNotFound)
	assert.ErrorIs(t, repo.DecrementFavoriteCount(ctx, 9999), pet.ErrPetNotFound)
}

func TestPetRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	p := createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)

	require.NoError(t, repo.Delete(ctx, p.ID()))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID()), pet.ErrPetNotFound)
}

func TestPetRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)
	createTestPet(t, repo, "Rex", pet.PetTypeDog, pet.GenderMale)
	createTestPet(t, repo, "Whiskers", pet.PetTypeCat, pet.GenderFemale)

	dogType := pet.PetTypeDog
	pets, total, err := repo.List(ctx, pet.ListFilter{Type: &dogType})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pets, 2)

	female := pet.GenderFemale
	pets, total, err = repo.List(ctx, pet.ListFilter{Gender: &female})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, pets, 1)
	assert.Equal(t, "Whiskers", pets[0].Name())

	pets, total, err = repo.List(ctx, pet.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, pets, 3)
}

func TestPetRepository_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		createTestPet(t, repo, name, pet.PetTypeDog, pet.GenderMale)
	}

	pets, total, err := repo.List(ctx, pet.ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, pets, 2)

	pets, total, err = repo.List(ctx, pet.ListFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, pets, 1)
}

func TestPetRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetRepository(db, testLogger())
	ctx := context.Background()

	createTestPet(t, repo, "Buddy", pet.PetTypeDog, pet.GenderMale)
	createTestPet(t, repo, "Rex", pet.PetTypeDog, pet.GenderMale)
	createTestPet(t, repo, "Whiskers", pet.PetTypeCat, pet.GenderFemale)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	available, err := repo.CountByAdoptionStatus(ctx, pet.AdoptionStatusAvailable)
	require.NoError(t, err)
	assert.EqualValues(t, 3, available)

	adopted, err := repo.CountByAdoptionStatus(ctx, pet.AdoptionStatusAdopted)
	require.NoError(t, err)
	assert.EqualValues(t, 0, adopted)

	byType, err := repo.CountGroupByType(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byType[pet.PetTypeDog])
	assert.EqualValues(t, 1, byType[pet.PetTypeCat])
}
