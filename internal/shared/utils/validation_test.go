package utils

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/shared/errors"
)

type validationFixture struct {
	Name   string `json:"name" binding:"required,min=2,max=50"`
	Email  string `json:"email" binding:"omitempty,email"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
	Age    int    `json:"age" binding:"gte=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(&validationFixture{
		Name:   "Alice",
		Email:  "alice@example.com",
		Status: "active",
		Age:    30,
	})
	assert.NoError(t, err)
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   validationFixture
		wantMsg string
	}{
		{
			name:    "missing required field",
			input:   validationFixture{Status: "active"},
			wantMsg: "name is required",
		},
		{
			name:    "too short",
			input:   validationFixture{Name: "A", Status: "active"},
			wantMsg: "name must be at least 2 characters long",
		},
		{
			name:    "bad enum value",
			input:   validationFixture{Name: "Alice", Status: "frozen"},
			wantMsg: "status must be one of [active inactive]",
		},
		{
			name:    "bad email",
			input:   validationFixture{Name: "Alice", Email: "not-an-email", Status: "active"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "negative number",
			input:   validationFixture{Name: "Alice", Status: "active", Age: -1},
			wantMsg: "age must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "validation failed", appErr.Message)
			assert.Contains(t, appErr.Details, tt.wantMsg)
		})
	}
}

func TestValidateStruct_CollectsAllFields(t *testing.T) {
	err := ValidateStruct(&validationFixture{})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "status is required")
}

func TestBindingError_FieldErrors(t *testing.T) {
	// The same error ShouldBindJSON surfaces for a failed binding tag
	rawErr := validate.Struct(&validationFixture{Name: "Alice"})
	require.Error(t, rawErr)

	appErr := errors.GetAppError(BindingError(rawErr))
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "invalid request body", appErr.Message)
	assert.Contains(t, appErr.Details, "status is required")
}

func TestBindingError_MalformedBody(t *testing.T) {
	appErr := errors.GetAppError(BindingError(goerrors.New("unexpected EOF")))
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "invalid request body", appErr.Message)
	assert.Equal(t, "unexpected EOF", appErr.Details)
}
