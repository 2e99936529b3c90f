package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("alice", "$2a$10$hash", "Alice Zhang", RoleStaff)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newActiveUser(t)

	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, RoleStaff, u.Role())
	assert.Equal(t, StatusActive, u.Status())
	assert.True(t, u.IsActive())
	assert.Equal(t, 1, u.Version())
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "hash", "Alice", RoleStaff)
	assert.Error(t, err)

	_, err = NewUser("alice", "", "Alice", RoleStaff)
	assert.Error(t, err)

	_, err = NewUser("alice", "hash", "Alice", Role("superuser"))
	assert.Error(t, err)
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.True(t, RoleVolunteer.IsValid())
	assert.False(t, Role("root").IsValid())
}

func TestFreezeUnfreeze(t *testing.T) {
	u := newActiveUser(t)

	u.Freeze()
	assert.Equal(t, StatusLocked, u.Status())
	assert.False(t, u.IsActive())

	u.Unfreeze()
	assert.Equal(t, StatusActive, u.Status())
	assert.True(t, u.IsActive())
}

func TestChangePassword(t *testing.T) {
	u := newActiveUser(t)

	require.NoError(t, u.ChangePassword("$2a$10$newhash"))
	assert.Equal(t, "$2a$10$newhash", u.PasswordHash())

	assert.Error(t, u.ChangePassword(""))
}

func TestSetID(t *testing.T) {
	u := newActiveUser(t)

	require.NoError(t, u.SetID(7))
	assert.Equal(t, uint(7), u.ID())

	assert.Error(t, u.SetID(8), "ID can only be set once")
	assert.Equal(t, uint(7), u.ID())
}
