package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adoptionapp "github.com/shelterhq/pawhaven/internal/application/adoption"
	"github.com/shelterhq/pawhaven/internal/domain/adoption"
	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mocks
// =====================================================================

type mockAdoptionRepo struct {
	createFn     func(ctx context.Context, a *adoption.Adoption) error
	updateFn     func(ctx context.Context, a *adoption.Adoption) error
	getByIDFn    func(ctx context.Context, id uint) (*adoption.Adoption, error)
	countFn      func(ctx context.Context) (int64, error)
	countByFn    func(ctx context.Context, status adoption.Status) (int64, error)
	listRecentFn func(ctx context.Context, limit int) ([]*adoption.Adoption, error)
}

func (m *mockAdoptionRepo) Create(ctx context.Context, a *adoption.Adoption) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAdoptionRepo) Update(ctx context.Context, a *adoption.Adoption) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAdoptionRepo) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockAdoptionRepo) GetByID(ctx context.Context, id uint) (*adoption.Adoption, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAdoptionRepo) List(ctx context.Context, filter adoption.ListFilter) ([]*adoption.Adoption, int64, error) {
	return nil, 0, nil
}

func (m *mockAdoptionRepo) ListRecent(ctx context.Context, limit int) ([]*adoption.Adoption, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockAdoptionRepo) CountByStatus(ctx context.Context, status adoption.Status) (int64, error) {
	if m.countByFn != nil {
		return m.countByFn(ctx, status)
	}
	return 0, nil
}

func (m *mockAdoptionRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func newAdoptionHandler(repo adoption.Repository, petRepo pet.Repository) *AdoptionHandler {
	log := testutil.NewMockLogger()
	return NewAdoptionHandler(adoptionapp.NewService(repo, petRepo, log), log)
}

func testAdoption(t *testing.T, id uint) *adoption.Adoption {
	t.Helper()

	a, err := adoption.NewAdoption(3, "Buddy", adoption.Applicant{
		Name:  "Alice",
		Phone: "13800000000",
	})
	require.NoError(t, err)
	require.NoError(t, a.SetID(id))
	return a
}

// =====================================================================
// Create
// =====================================================================

func TestAdoptionHandler_Create_Success(t *testing.T) {
	handler := newAdoptionHandler(&mockAdoptionRepo{}, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions", map[string]interface{}{
		"petId":          3,
		"petName":        "Buddy",
		"applicantName":  "Alice",
		"applicantPhone": "13800000000",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, uint(1), body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "Alice", body.ApplicantName)
}

func TestAdoptionHandler_Create_MissingApplicant(t *testing.T) {
	handler := newAdoptionHandler(&mockAdoptionRepo{}, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions", map[string]interface{}{
		"petId":   3,
		"petName": "Buddy",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Review
// =====================================================================

func TestAdoptionHandler_Review_Approve(t *testing.T) {
	a := testAdoption(t, 1)
	p := testPet(t, 3, "Buddy")
	petUpdated := false

	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	petRepo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			assert.Equal(t, uint(3), id)
			return p, nil
		},
		updateFn: func(ctx context.Context, updated *pet.Pet) error {
			petUpdated = true
			assert.Equal(t, pet.AdoptionStatusAdopted, updated.AdoptionStatus())
			require.NotNil(t, updated.AdoptedBy())
			assert.Equal(t, "Alice", *updated.AdoptedBy())
			return nil
		},
	}
	handler := newAdoptionHandler(repo, petRepo)

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status":   "approved",
		"approver": "admin",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, petUpdated, "approval marks the pet adopted")

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "adoption reviewed", resp.Message)

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "approved", body.Status)
	require.NotNil(t, body.Approver)
	assert.Equal(t, "admin", *body.Approver)
	assert.NotNil(t, body.ApprovalDate)
}

func TestAdoptionHandler_Review_Approve_PetMissing(t *testing.T) {
	a := testAdoption(t, 1)
	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	petRepo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			return nil, nil
		},
		updateFn: func(ctx context.Context, p *pet.Pet) error {
			t.Fatal("no pet update expected when the pet is gone")
			return nil
		},
	}
	handler := newAdoptionHandler(repo, petRepo)

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status": "approved",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	// The pet follow-up is best effort; the approval itself stands
	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "approved", body.Status)
}

func TestAdoptionHandler_Review_Approve_PetUpdateConflict(t *testing.T) {
	a := testAdoption(t, 1)
	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	petRepo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			return testPet(t, 3, "Buddy"), nil
		},
		updateFn: func(ctx context.Context, p *pet.Pet) error {
			return pet.ErrVersionConflict
		},
	}
	handler := newAdoptionHandler(repo, petRepo)

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status": "approved",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "approved", body.Status)
}

func TestAdoptionHandler_Review_Reject(t *testing.T) {
	a := testAdoption(t, 1)
	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	petRepo := &mockPetRepo{
		getByIDFn: func(ctx context.Context, id uint) (*pet.Pet, error) {
			t.Fatal("rejection must not touch the pet")
			return nil, nil
		},
	}
	handler := newAdoptionHandler(repo, petRepo)

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status":       "rejected",
		"rejecter":     "admin",
		"rejectReason": "housing unsuitable",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "rejected", body.Status)
	require.NotNil(t, body.RejectReason)
	assert.Equal(t, "housing unsuitable", *body.RejectReason)
}

func TestAdoptionHandler_Review_InvalidStatus(t *testing.T) {
	handler := newAdoptionHandler(&mockAdoptionRepo{}, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status": "maybe",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdoptionHandler_Review_AlreadyReviewed(t *testing.T) {
	a := testAdoption(t, 1)
	require.NoError(t, a.Approve("admin", nil))

	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	handler := newAdoptionHandler(repo, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/approve", map[string]interface{}{
		"status": "approved",
	})
	testutil.SetURLParam(c, "id", "1")
	handler.Review(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdoptionHandler_Review_NotFound(t *testing.T) {
	handler := newAdoptionHandler(&mockAdoptionRepo{}, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/99/approve", map[string]interface{}{
		"status": "approved",
	})
	testutil.SetURLParam(c, "id", "99")
	handler.Review(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Cancel
// =====================================================================

func TestAdoptionHandler_Cancel_Success(t *testing.T) {
	a := testAdoption(t, 1)
	repo := &mockAdoptionRepo{
		getByIDFn: func(ctx context.Context, id uint) (*adoption.Adoption, error) {
			return a, nil
		},
	}
	handler := newAdoptionHandler(repo, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/adoptions/1/cancel", nil)
	testutil.SetURLParam(c, "id", "1")
	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "cancelled", body.Status)
}

// =====================================================================
// Stats
// =====================================================================

func TestAdoptionHandler_Stats(t *testing.T) {
	repo := &mockAdoptionRepo{
		countFn: func(ctx context.Context) (int64, error) { return 8, nil },
		countByFn: func(ctx context.Context, status adoption.Status) (int64, error) {
			switch status {
			case adoption.StatusPending:
				return 3, nil
			case adoption.StatusApproved:
				return 4, nil
			case adoption.StatusRejected:
				return 1, nil
			}
			return 0, nil
		},
	}
	handler := newAdoptionHandler(repo, &mockPetRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/adoptions/stats", nil)
	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body adoptionapp.AdoptionStatsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.EqualValues(t, 8, body.Total)
	assert.EqualValues(t, 3, body.Pending)
	assert.EqualValues(t, 4, body.Approved)
	assert.EqualValues(t, 1, body.Rejected)
}
