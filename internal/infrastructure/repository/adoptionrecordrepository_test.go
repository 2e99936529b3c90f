package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/adoptionrecord"
)

func createTestRecord(t *testing.T, repo adoptionrecord.Repository, recordNumber string) *adoptionrecord.Record {
	t.Helper()

	rec, err := adoptionrecord.NewRecord(recordNumber, 1, "Buddy", 10, "Alice", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), rec))
	return rec
}

func TestAdoptionRecordRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	rec := createTestRecord(t, repo, "AR-2026-000001")

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, rec.ID(), found.ID())
	assert.Equal(t, "AR-2026-000001", found.RecordNumber())
	assert.Equal(t, "Buddy", found.PetName())
	assert.Equal(t, "Alice", found.AdopterName())
	assert.Equal(t, adoptionrecord.StatusActive, found.Status())
	assert.Empty(t, found.FollowUps())
}

func TestAdoptionRecordRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())

	found, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAdoptionRecordRepository_Create_DuplicateRecordNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	createTestRecord(t, repo, "AR-2026-000001")

	dup, err := adoptionrecord.NewRecord("AR-2026-000001", 2, "Rex", 11, "Bob", time.Now())
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, adoptionrecord.ErrRecordNumberTaken)
}

func TestAdoptionRecordRepository_MaxRecordSequence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	seq, err := repo.MaxRecordSequence(ctx, "AR-2026-")
	require.NoError(t, err)
	assert.Equal(t, 0, seq)

	createTestRecord(t, repo, "AR-2026-000003")
	createTestRecord(t, repo, "AR-2026-000012")
	createTestRecord(t, repo, "AR-2025-000099")

	seq, err = repo.MaxRecordSequence(ctx, "AR-2026-")
	require.NoError(t, err)
	assert.Equal(t, 12, seq)

	seq, err = repo.MaxRecordSequence(ctx, "AR-2025-")
	require.NoError(t, err)
	assert.Equal(t, 99, seq)
}

func TestAdoptionRecordRepository_Update_FollowUps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	rec := createTestRecord(t, repo, "AR-2026-000001")

	next := time.Now().AddDate(0, 1, 0)
	_, err := rec.AddFollowUp("pet is settling in well", "staff-1", &next)
	require.NoError(t, err)
	rec.IncrementVersion()
	require.NoError(t, repo.Update(ctx, rec))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	require.Len(t, found.FollowUps(), 1)
	assert.Equal(t, "pet is settling in well", found.FollowUps()[0].Content)
	assert.Equal(t, "staff-1", found.FollowUps()[0].Operator)
	require.NotNil(t, found.NextFollowUpDate())
	assert.Equal(t, 2, found.Version())

	// Stale version loses
	err = repo.Update(ctx, rec)
	assert.ErrorIs(t, err, adoptionrecord.ErrVersionConflict)
}

func TestAdoptionRecordRepository_CountPendingFollowUp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	overdue, err := adoptionrecord.NewRecord("AR-2026-000001", 1, "Buddy", 10, "Alice", time.Now())
	require.NoError(t, err)
	past := time.Now().AddDate(0, 0, -7)
	_, err = overdue.AddFollowUp("initial visit", "staff-1", &past)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, overdue))

	scheduled, err := adoptionrecord.NewRecord("AR-2026-000002", 2, "Rex", 11, "Bob", time.Now())
	require.NoError(t, err)
	future := time.Now().AddDate(0, 1, 0)
	_, err = scheduled.AddFollowUp("initial visit", "staff-1", &future)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, scheduled))

	createTestRecord(t, repo, "AR-2026-000003")

	count, err := repo.CountPendingFollowUp(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAdoptionRecordRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	createTestRecord(t, repo, "AR-2026-000001")
	createTestRecord(t, repo, "AR-2026-000002")

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	active, err := repo.CountByStatus(ctx, adoptionrecord.StatusActive)
	require.NoError(t, err)
	assert.EqualValues(t, 2, active)

	completed, err := repo.CountByStatus(ctx, adoptionrecord.StatusCompleted)
	require.NoError(t, err)
	assert.EqualValues(t, 0, completed)
}

func TestAdoptionRecordRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	createTestRecord(t, repo, "AR-2026-000001")

	other, err := adoptionrecord.NewRecord("AR-2026-000002", 2, "Whiskers", 11, "Bob", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	records, total, err := repo.List(ctx, adoptionrecord.ListFilter{PetName: "Whisk"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, "Whiskers", records[0].PetName())

	records, total, err = repo.List(ctx, adoptionrecord.ListFilter{RecordNumber: "AR-2026-000001"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].AdopterName())

	_, total, err = repo.List(ctx, adoptionrecord.ListFilter{AdopterName: "Carol"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestAdoptionRecordRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdoptionRecordRepository(db, testLogger())
	ctx := context.Background()

	rec := createTestRecord(t, repo, "AR-2026-000001")

	require.NoError(t, repo.Delete(ctx, rec.ID()))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, rec.ID()), adoptionrecord.ErrRecordNotFound)
}
