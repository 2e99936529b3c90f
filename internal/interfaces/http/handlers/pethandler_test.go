package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	petapp "github.com/shelterhq/pawhaven/internal/application/pet"
	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mocks
// =====================================================================

type mockPetRepo struct {
	createFn       func(ctx context.Context, p *pet.Pet) error
	updateFn       func(ctx context.Context, p *pet.Pet) error
	deleteFn       func(ctx context.Context, id uint) error
	getByIDFn      func(ctx context.Context, id uint) (*pet.Pet, error)
	listFn         func(ctx context.Context, filter pet.ListFilter) ([]*pet.Pet, int64, error)
	incViewFn      func(ctx context.Context, id uint) error
	incFavoriteFn  func(ctx context.Context, id uint) error
	decFavoriteFn  func(ctx context.Context, id uint) error
	countFn        func(ctx context.Context) (int64, error)
	countAdoptFn   func(ctx context.Context, status pet.AdoptionStatus) (int64, error)
	countHealthFn  func(ctx context.Context, status pet.HealthStatus) (int64, error)
	countGroupedFn func(ctx context.Context) (map[pet.PetType]int64, error)
}

func (m *mockPetRepo) Create(ctx context.Context, p *pet.Pet) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockPetRepo) Update(ctx context.Context, p *pet.Pet) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockPetRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPetRepo) GetByID(ctx context.Context, id uint) (*pet.Pet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPetRepo) List(ctx context.Context, filter pet.ListFilter) ([]*pet.Pet, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPetRepo) IncrementViewCount(ctx context.Context, id uint) error {
	if m.incViewFn != nil {
		return m.incViewFn(ctx, id)
	}
	return nil
}

func (m *mockPetRepo) IncrementFavoriteCount(ctx context.Context, id uint) error {
	if m.incFavoriteFn != nil {
		return m.incFavoriteFn(ctx, id)
	}
	return nil
}

func (m *mockPetRepo) DecrementFavoriteCount(ctx context.Context, id uint) error {
	if m.decFavoriteFn != nil {
		return m.decFavoriteFn(ctx, id)
	}
	return nil
}

func (m *mockPetRepo) CountByAdoptionStatus(ctx context.Context, status pet.AdoptionStatus) (int64, error) {
	if m.countAdoptFn != nil {
		return m.countAdoptFn(ctx, status)
	}
	return 0, nil
}

func (m *mockPetRepo) CountByHealthStatus(ctx context.Context, status pet.HealthStatus) (int64, error) {
	if m.countHealthFn != nil {
		return m.countHealthFn(ctx, status)
	}
	return 0, nil
}

func (m *mockPetRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockPetRepo) CountGroupByType(ctx context.Context) (map[pet.PetType]int64, error) {
	if m.countGroupedFn != nil {
		return m.countGroupedFn(ctx)
	}
	return map[pet.PetType]int64{}, nil
}

func newPetHandler(repo pet.Repository) *PetHandler {
	log := testutil.NewMockLogger()
	return NewPetHandler(petapp.NewService(repo, log), log)
}

func testPet(t *testing.T, id uint, name string) *pet.Pet {
	t.Helper()

	p, err := pet.NewPet(name, pet.PetTypeDog, "Labrador", 3, pet.GenderMale)
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	return p
}

// =====================================================================
// Create
// =====================================================================

func TestPetHandler_Create_Success(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/pets", map[string]interface{}{
		"name":   "Buddy",
		"type":   "dog",
		"breed":  "Labrador",
		"age":    3,
		"gender": "male",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "pet created successfully", resp.Message)

	var body petapp.PetResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, uint(1), body.ID)
	assert.Equal(t, "Buddy", body.Name)
	assert.Equal(t, "healthy", body.HealthStatus)
	assert.Equal(t, "available", body.AdoptionStatus)
}

func TestPetHandler_Create_InvalidType(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/pets", map[string]interface{}{
		"name":   "Buddy",
		"type":   "dinosaur",
		"breed":  "unknown",
		"age":    3,
		"gender": "male",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Get
// =====================================================================

func TestPetHandler_Get_Success(t *testing.T) {
	p := testPet(t, 5, "Buddy")
	repo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			assert.Equal(t, uint(5), id)
			return p, nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/pets/5", nil)
	testutil.SetURLParam(c, "id", "5")
	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body petapp.PetResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, uint(5), body.ID)
	assert.Equal(t, 1, body.ViewCount, "read bumps the view counter")
}

func TestPetHandler_Get_NotFound(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/pets/99", nil)
	testutil.SetURLParam(c, "id", "99")
	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "pet not found", resp.Message)
}

func TestPetHandler_Get_InvalidID(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/pets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// List
// =====================================================================

func TestPetHandler_List_Success(t *testing.T) {
	repo := &mockPetRepo{
		listFn: func(ctx context.Context, filter pet.ListFilter) ([]*pet.Pet, int64, error) {
			require.NotNil(t, filter.Type)
			assert.Equal(t, pet.PetTypeDog, *filter.Type)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 10, filter.Limit)
			return []*pet.Pet{testPet(t, 1, "Buddy"), testPet(t, 2, "Rex")}, 12, nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/pets", nil)
	testutil.SetQueryParams(c, map[string]string{"type": "dog", "page": "2", "limit": "10"})
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.ListAPIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.EqualValues(t, 12, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 2, resp.TotalPages)

	var body []*petapp.PetResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Len(t, body, 2)
}

func TestPetHandler_List_InvalidTypeFilter(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/pets", nil)
	testutil.SetQueryParams(c, map[string]string{"type": "dinosaur"})
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Update
// =====================================================================

func TestPetHandler_Update_Success(t *testing.T) {
	p := testPet(t, 5, "Buddy")
	repo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			return p, nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodPut, "/pets/5", map[string]interface{}{
		"name": "Max",
	})
	testutil.SetURLParam(c, "id", "5")
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "pet updated successfully", resp.Message)

	var body petapp.PetResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "Max", body.Name)
}

func TestPetHandler_Update_VersionConflict(t *testing.T) {
	repo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			return testPet(t, 5, "Buddy"), nil
		},
		updateFn: func(ctx context.Context, p *pet.Pet) error {
			return pet.ErrVersionConflict
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodPut, "/pets/5", map[string]interface{}{
		"name": "Max",
	})
	testutil.SetURLParam(c, "id", "5")
	handler.Update(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// Delete
// =====================================================================

func TestPetHandler_Delete_Success(t *testing.T) {
	deleted := false
	repo := &mockPetRepo{
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			assert.Equal(t, uint(5), id)
			return nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodDelete, "/pets/5", nil)
	testutil.SetURLParam(c, "id", "5")
	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deleted)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "pet deleted successfully", resp.Message)
}

func TestPetHandler_Delete_NotFound(t *testing.T) {
	repo := &mockPetRepo{
		deleteFn: func(ctx context.Context, id uint) error {
			return pet.ErrPetNotFound
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodDelete, "/pets/99", nil)
	testutil.SetURLParam(c, "id", "99")
	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Favorite
// =====================================================================

func TestPetHandler_Favorite_Success(t *testing.T) {
	bumped := false
	repo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			return testPet(t, 5, "Buddy"), nil
		},
		incFavoriteFn: func(ctx context.Context, id uint) error {
			bumped = true
			return nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodPost, "/pets/5/favorite", nil)
	testutil.SetURLParam(c, "id", "5")
	handler.Favorite(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bumped)
}

func TestPetHandler_Favorite_NotFound(t *testing.T) {
	handler := newPetHandler(&mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/pets/99/favorite", nil)
	testutil.SetURLParam(c, "id", "99")
	handler.Favorite(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Stats
// =====================================================================

func TestPetHandler_Stats(t *testing.T) {
	repo := &mockPetRepo{
		countFn: func(ctx context.Context) (int64, error) { return 10, nil },
		countAdoptFn: func(ctx context.Context, status pet.AdoptionStatus) (int64, error) {
			switch status {
			case pet.AdoptionStatusAvailable:
				return 6, nil
			case pet.AdoptionStatusAdopted:
				return 3, nil
			}
			return 0, nil
		},
		countHealthFn: func(ctx context.Context, status pet.HealthStatus) (int64, error) {
			if status == pet.HealthStatusTreating {
				return 2, nil
			}
			return 0, nil
		},
	}
	handler := newPetHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/pets/stats", nil)
	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body petapp.PetStatsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.EqualValues(t, 10, body.Total)
	assert.EqualValues(t, 6, body.Available)
	assert.EqualValues(t, 3, body.Adopted)
	assert.EqualValues(t, 2, body.Treating)
}
