package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPet(t *testing.T) *Pet {
	t.Helper()
	p, err := NewPet("Buddy", PetTypeDog, "Labrador", 3, GenderMale)
	require.NoError(t, err)
	return p
}

func TestNewPet(t *testing.T) {
	p := newTestPet(t)

	assert.Equal(t, "Buddy", p.Name())
	assert.Equal(t, PetTypeDog, p.Type())
	assert.Equal(t, HealthStatusHealthy, p.HealthStatus())
	assert.Equal(t, AdoptionStatusAvailable, p.AdoptionStatus())
	assert.Equal(t, 0, p.ViewCount())
	assert.Equal(t, 0, p.FavoriteCount())
	assert.Equal(t, 1, p.Version())
	assert.True(t, p.IsAvailable())
}

func TestNewPet_Validation(t *testing.T) {
	_, err := NewPet("", PetTypeDog, "Labrador", 3, GenderMale)
	assert.Error(t, err)

	_, err = NewPet("Buddy", PetType("dragon"), "Labrador", 3, GenderMale)
	assert.Error(t, err)

	_, err = NewPet("Buddy", PetTypeDog, "Labrador", -1, GenderMale)
	assert.Error(t, err)

	_, err = NewPet("Buddy", PetTypeDog, "Labrador", 3, Gender("unknown"))
	assert.Error(t, err)
}

func TestPetTypeIsValid(t *testing.T) {
	valid := []PetType{PetTypeDog, PetTypeCat, PetTypeRabbit, PetTypeBird, PetTypeHamster, PetTypeOther}
	for _, pt := range valid {
		assert.True(t, pt.IsValid(), pt)
	}
	assert.False(t, PetType("fish").IsValid())
}

func TestHealthStatusIsValid(t *testing.T) {
	valid := []HealthStatus{HealthStatusHealthy, HealthStatusTreating, HealthStatusRecovered, HealthStatusCritical}
	for _, s := range valid {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, HealthStatus("sick").IsValid())
}

func TestAdoptionStatusIsValid(t *testing.T) {
	valid := []AdoptionStatus{AdoptionStatusAvailable, AdoptionStatusPending, AdoptionStatusAdopted, AdoptionStatusUnavailable}
	for _, s := range valid {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, AdoptionStatus("reserved").IsValid())
}

func TestMarkAdopted(t *testing.T) {
	p := newTestPet(t)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	p.MarkAdopted("Alice", date)

	assert.Equal(t, AdoptionStatusAdopted, p.AdoptionStatus())
	require.NotNil(t, p.AdoptedBy())
	assert.Equal(t, "Alice", *p.AdoptedBy())
	require.NotNil(t, p.AdoptedDate())
	assert.Equal(t, date, *p.AdoptedDate())
	assert.False(t, p.IsAvailable())
	assert.Equal(t, 2, p.Version())
}

func TestUpdate(t *testing.T) {
	p := newTestPet(t)

	name := "Max"
	weight := 24.5
	health := HealthStatusTreating
	require.NoError(t, p.Update(UpdateAttrs{
		Name:         &name,
		Weight:       &weight,
		HealthStatus: &health,
	}))

	assert.Equal(t, "Max", p.Name())
	require.NotNil(t, p.Weight())
	assert.Equal(t, 24.5, *p.Weight())
	assert.Equal(t, HealthStatusTreating, p.HealthStatus())
	assert.Equal(t, "Labrador", p.Breed(), "untouched field keeps its value")
}

func TestUpdate_InvalidValues(t *testing.T) {
	p := newTestPet(t)

	empty := ""
	assert.Error(t, p.Update(UpdateAttrs{Name: &empty}))

	bad := HealthStatus("sick")
	assert.Error(t, p.Update(UpdateAttrs{HealthStatus: &bad}))

	age := -2
	assert.Error(t, p.Update(UpdateAttrs{Age: &age}))
}
