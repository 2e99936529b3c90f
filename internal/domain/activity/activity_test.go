package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpcomingActivity(t *testing.T) *Activity {
	t.Helper()
	start := time.Now().AddDate(0, 0, 7)
	a, err := NewActivity("Adoption day", ActivityTypeAdoption, start, start.Add(4*time.Hour), "Main shelter", "meet the pets", "shelter team")
	require.NoError(t, err)
	return a
}

func TestNewActivity(t *testing.T) {
	a := newUpcomingActivity(t)

	assert.Equal(t, StatusUpcoming, a.Status())
	assert.Equal(t, 0, a.ParticipantCount())
	assert.Nil(t, a.ParticipantLimit())
	assert.Equal(t, 1, a.Version())
}

func TestNewActivity_Validation(t *testing.T) {
	start := time.Now()

	_, err := NewActivity("", ActivityTypeAdoption, start, start.Add(time.Hour), "loc", "", "org")
	assert.Error(t, err)

	_, err = NewActivity("title", ActivityType("party"), start, start.Add(time.Hour), "loc", "", "org")
	assert.Error(t, err)

	_, err = NewActivity("title", ActivityTypeAdoption, start, start.Add(-time.Hour), "loc", "", "org")
	assert.Error(t, err, "end date before start date")

	_, err = NewActivity("title", ActivityTypeAdoption, start, start.Add(time.Hour), "", "", "org")
	assert.Error(t, err)

	_, err = NewActivity("title", ActivityTypeAdoption, start, start.Add(time.Hour), "loc", "", "")
	assert.Error(t, err)
}

func TestIsFull(t *testing.T) {
	a := newUpcomingActivity(t)
	assert.False(t, a.IsFull(), "no limit means never full")

	limit := 2
	require.NoError(t, a.Update(UpdateAttrs{ParticipantLimit: &limit}))
	assert.False(t, a.IsFull())

	reconstructed := reconstructWithParticipants(t, &limit, 2)
	assert.True(t, reconstructed.IsFull())

	over := reconstructWithParticipants(t, &limit, 3)
	assert.True(t, over.IsFull(), "count beyond limit is still full")
}

func reconstructWithParticipants(t *testing.T, limit *int, count int) *Activity {
	t.Helper()
	now := time.Now()
	a, err := ReconstructActivity(
		1, "Adoption day", ActivityTypeAdoption,
		now, now.Add(4*time.Hour),
		"Main shelter", "desc",
		limit, count,
		StatusUpcoming, "shelter team",
		nil, nil, nil,
		now, now,
		1,
	)
	require.NoError(t, err)
	return a
}

func TestActivityTypeIsValid(t *testing.T) {
	assert.True(t, ActivityTypeAdoption.IsValid())
	assert.True(t, ActivityTypeVolunteer.IsValid())
	assert.True(t, ActivityTypeFundraising.IsValid())
	assert.True(t, ActivityTypeEducation.IsValid())
	assert.False(t, ActivityType("concert").IsValid())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusUpcoming.IsValid())
	assert.True(t, StatusOngoing.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("paused").IsValid())
}
