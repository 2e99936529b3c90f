package adoptionrecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord("AR-2026-000001", 1, "Buddy", 10, "Alice", time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	r := newActiveRecord(t)

	assert.NotEmpty(t, r.ID(), "record ID must be generated")
	assert.Equal(t, "AR-2026-000001", r.RecordNumber())
	assert.Equal(t, StatusActive, r.Status())
	assert.Empty(t, r.FollowUps())
	assert.Nil(t, r.LastFollowUpDate())
	assert.Nil(t, r.NextFollowUpDate())
	assert.Equal(t, 1, r.Version())
}

func TestNewRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name         string
		recordNumber string
		petID        uint
		petName      string
		adopterID    uint
		adopterName  string
	}{
		{"missing record number", "", 1, "Buddy", 10, "Alice"},
		{"missing pet ID", "AR-2026-000001", 0, "Buddy", 10, "Alice"},
		{"missing pet name", "AR-2026-000001", 1, "", 10, "Alice"},
		{"missing adopter ID", "AR-2026-000001", 1, "Buddy", 0, "Alice"},
		{"missing adopter name", "AR-2026-000001", 1, "Buddy", 10, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecord(tc.recordNumber, tc.petID, tc.petName, tc.adopterID, tc.adopterName, time.Now())
			assert.Error(t, err)
		})
	}
}

func TestNewRecord_ZeroAdoptionDateDefaultsToNow(t *testing.T) {
	r, err := NewRecord("AR-2026-000002", 1, "Buddy", 10, "Alice", time.Time{})
	require.NoError(t, err)
	assert.False(t, r.AdoptionDate().IsZero())
}

func TestAddFollowUp(t *testing.T) {
	r := newActiveRecord(t)
	next := time.Now().AddDate(0, 1, 0)

	entry, err := r.AddFollowUp("pet is settling in well", "staff1", &next)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "pet is settling in well", entry.Content)
	assert.Equal(t, "staff1", entry.Operator)

	require.Len(t, r.FollowUps(), 1)
	require.NotNil(t, r.LastFollowUpDate())
	require.NotNil(t, r.NextFollowUpDate())
	assert.Equal(t, next, *r.NextFollowUpDate())
	require.NotNil(t, r.UpdatedBy())
	assert.Equal(t, "staff1", *r.UpdatedBy())
}

func TestAddFollowUp_AppendsInOrder(t *testing.T) {
	r := newActiveRecord(t)

	_, err := r.AddFollowUp("first visit", "staff1", nil)
	require.NoError(t, err)
	_, err = r.AddFollowUp("second visit", "staff2", nil)
	require.NoError(t, err)

	ups := r.FollowUps()
	require.Len(t, ups, 2)
	assert.Equal(t, "first visit", ups[0].Content)
	assert.Equal(t, "second visit", ups[1].Content)
	assert.NotEqual(t, ups[0].ID, ups[1].ID)
}

func TestAddFollowUp_NilNextDateClearsSchedule(t *testing.T) {
	r := newActiveRecord(t)
	next := time.Now().AddDate(0, 0, 7)

	_, err := r.AddFollowUp("scheduled visit", "staff1", &next)
	require.NoError(t, err)
	require.NotNil(t, r.NextFollowUpDate())

	_, err = r.AddFollowUp("final visit", "staff1", nil)
	require.NoError(t, err)
	assert.Nil(t, r.NextFollowUpDate(), "nil next date must clear the schedule")
	require.NotNil(t, r.LastFollowUpDate())
}

func TestAddFollowUp_Validation(t *testing.T) {
	r := newActiveRecord(t)

	_, err := r.AddFollowUp("", "staff1", nil)
	assert.Error(t, err)

	_, err = r.AddFollowUp("content", "", nil)
	assert.Error(t, err)

	assert.Empty(t, r.FollowUps())
}

func TestSetRecordNumber(t *testing.T) {
	r := newActiveRecord(t)

	require.NoError(t, r.SetRecordNumber("AR-2026-000009"))
	assert.Equal(t, "AR-2026-000009", r.RecordNumber())

	assert.Error(t, r.SetRecordNumber(""))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("archived").IsValid())
}
