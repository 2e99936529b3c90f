package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/donation"
)

func createTestDonation(t *testing.T, repo donation.Repository, donorName string, amount float64) *donation.Donation {
	t.Helper()

	d, err := donation.NewDonation(donorName, donation.DonorTypeIndividual, amount, time.Now(), donation.DonationTypeMoney)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), d))
	require.NotZero(t, d.ID())
	return d
}

func TestDonationRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db, testLogger())
	ctx := context.Background()

	d := createTestDonation(t, repo, "Alice", 100)

	found, err := repo.GetByID(ctx, d.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.DonorName())
	assert.Equal(t, donation.StatusPending, found.Status())
	assert.InDelta(t, 100, found.Amount(), 1e-9)
}

func TestDonationRepository_SumConfirmedAmount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db, testLogger())
	ctx := context.Background()

	total, err := repo.SumConfirmedAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	a := createTestDonation(t, repo, "Alice", 100)
	b := createTestDonation(t, repo, "Bob", 250.5)
	createTestDonation(t, repo, "Carol", 999)

	a.Confirm()
	require.NoError(t, repo.Update(ctx, a))
	b.Confirm()
	require.NoError(t, repo.Update(ctx, b))

	// Carol's donation stays pending and does not count
	total, err = repo.SumConfirmedAmount(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 350.5, total, 1e-9)
}

func TestDonationRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db, testLogger())
	ctx := context.Background()

	a := createTestDonation(t, repo, "Alice", 100)
	createTestDonation(t, repo, "Bob", 50)

	a.Confirm()
	require.NoError(t, repo.Update(ctx, a))

	pending, err := repo.CountByStatus(ctx, donation.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	confirmed, err := repo.CountByStatus(ctx, donation.StatusConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, confirmed)
}
