package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authapp "github.com/shelterhq/pawhaven/internal/application/auth"
	userapp "github.com/shelterhq/pawhaven/internal/application/user"
	"github.com/shelterhq/pawhaven/internal/domain/user"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mocks
// =====================================================================

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	getByIDFn       func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) CountByStatus(ctx context.Context, status user.Status) (int64, error) {
	return 0, nil
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubHasher struct {
	verifyErr error
}

func (s *stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (s *stubHasher) Verify(hashedPassword, password string) error {
	return s.verifyErr
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Generate(userID uint, username, role string) (string, error) {
	return s.token, s.err
}

func testUser(t *testing.T, id uint, username string) *user.User {
	t.Helper()

	u, err := user.NewUser(username, "$2a$10$stub", "Test User", user.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func newAuthHandler(repo user.Repository, hasher userapp.PasswordHasher, tokens authapp.TokenIssuer) *AuthHandler {
	log := testutil.NewMockLogger()
	return NewAuthHandler(authapp.NewService(repo, hasher, tokens, log), log)
}

// =====================================================================
// Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	u := testUser(t, 1, "alice")
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			assert.Equal(t, "alice", username)
			return u, nil
		},
	}
	handler := newAuthHandler(repo, &stubHasher{}, &stubTokenIssuer{token: "test-token"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "login successful", resp.Message)

	var body authapp.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "test-token", body.AccessToken)
	require.NotNil(t, body.User)
	assert.Equal(t, "alice", body.User.Username)
	assert.Equal(t, uint(1), body.User.ID)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	repo := &mockUserRepo{}
	handler := newAuthHandler(repo, &stubHasher{}, &stubTokenIssuer{token: "test-token"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "ghost",
		"password": "secret123",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "invalid username or password", resp.Message)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	u := testUser(t, 1, "alice")
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	handler := newAuthHandler(repo, &stubHasher{verifyErr: assert.AnError}, &stubTokenIssuer{token: "test-token"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "invalid username or password", resp.Message)
}

func TestAuthHandler_Login_DisabledAccount(t *testing.T) {
	u := testUser(t, 1, "alice")
	u.Freeze()
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	handler := newAuthHandler(repo, &stubHasher{}, &stubTokenIssuer{token: "test-token"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "account is disabled", resp.Message)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newAuthHandler(&mockUserRepo{}, &stubHasher{}, &stubTokenIssuer{token: "t"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Message, "password is required")
}

// =====================================================================
// Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u *user.User) error {
			assert.Equal(t, "hashed:secret123", u.PasswordHash())
			return u.SetID(7)
		},
	}
	handler := newAuthHandler(repo, &stubHasher{}, &stubTokenIssuer{token: "t"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username": "newstaff",
		"password": "secret123",
		"realName": "New Staff",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "registration successful", resp.Message)

	var body userapp.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, uint(7), body.ID)
	assert.Equal(t, "newstaff", body.Username)
	assert.Equal(t, "staff", body.Role)
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u *user.User) error {
			return user.ErrUsernameTaken
		},
	}
	handler := newAuthHandler(repo, &stubHasher{}, &stubTokenIssuer{token: "t"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"realName": "Alice",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "username already exists", resp.Message)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler := newAuthHandler(&mockUserRepo{}, &stubHasher{}, &stubTokenIssuer{token: "t"})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username": "alice",
		"password": "123",
		"realName": "Alice",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
