package adoption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingAdoption(t *testing.T) *Adoption {
	t.Helper()
	a, err := NewAdoption(1, "Buddy", Applicant{Name: "Alice", Phone: "13800000000"})
	require.NoError(t, err)
	return a
}

func TestNewAdoption(t *testing.T) {
	a := newPendingAdoption(t)

	assert.Equal(t, StatusPending, a.Status())
	assert.Equal(t, uint(1), a.PetID())
	assert.Equal(t, "Buddy", a.PetName())
	assert.False(t, a.ApplicationDate().IsZero())
	assert.Equal(t, 1, a.Version())
	assert.Nil(t, a.ApprovalDate())
	assert.Nil(t, a.RejectionDate())
}

func TestNewAdoption_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		petID     uint
		petName   string
		applicant Applicant
	}{
		{"missing pet ID", 0, "Buddy", Applicant{Name: "Alice", Phone: "123"}},
		{"missing pet name", 1, "", Applicant{Name: "Alice", Phone: "123"}},
		{"missing applicant name", 1, "Buddy", Applicant{Phone: "123"}},
		{"missing applicant phone", 1, "Buddy", Applicant{Name: "Alice"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAdoption(tc.petID, tc.petName, tc.applicant)
			assert.Error(t, err)
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusCancelled, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusApproved, false},
		{StatusApproved, StatusPending, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApprove(t *testing.T) {
	a := newPendingAdoption(t)
	remarks := "good home"

	err := a.Approve("admin", &remarks)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, a.Status())
	require.NotNil(t, a.Approver())
	assert.Equal(t, "admin", *a.Approver())
	assert.NotNil(t, a.ApprovalDate())
	require.NotNil(t, a.Remarks())
	assert.Equal(t, "good home", *a.Remarks())
	assert.Equal(t, 2, a.Version())
}

func TestApprove_NotPending(t *testing.T) {
	a := newPendingAdoption(t)
	require.NoError(t, a.Approve("admin", nil))

	err := a.Approve("admin", nil)
	assert.Error(t, err)
	assert.Equal(t, StatusApproved, a.Status())
}

func TestReject(t *testing.T) {
	a := newPendingAdoption(t)

	err := a.Reject("reviewer", "no stable housing", nil)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, a.Status())
	require.NotNil(t, a.Rejecter())
	assert.Equal(t, "reviewer", *a.Rejecter())
	require.NotNil(t, a.RejectReason())
	assert.Equal(t, "no stable housing", *a.RejectReason())
	assert.NotNil(t, a.RejectionDate())
}

func TestReject_RequiresReason(t *testing.T) {
	a := newPendingAdoption(t)

	err := a.Reject("reviewer", "", nil)
	assert.Error(t, err)
	assert.Equal(t, StatusPending, a.Status(), "failed rejection must not change status")
}

func TestCancel(t *testing.T) {
	a := newPendingAdoption(t)

	require.NoError(t, a.Cancel())
	assert.Equal(t, StatusCancelled, a.Status())

	assert.Error(t, a.Cancel(), "cancelled applications cannot be cancelled again")
}

func TestUpdate_OnlyPending(t *testing.T) {
	a := newPendingAdoption(t)
	require.NoError(t, a.Approve("admin", nil))

	name := "Bob"
	err := a.Update(UpdateAttrs{ApplicantName: &name})
	assert.Error(t, err)
	assert.Equal(t, "Alice", a.Applicant().Name)
}
