package validator

import (
	"testing"

	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,max=5"`
	X        *int   `json:"x" validate:"required"`
}

func TestCustomValidator(t *testing.T) {
	v := New()
	zero := 0

	assert.NoError(t, v.Validate(&sampleRequest{Username: "bob", X: &zero}))

	err := v.Validate(&sampleRequest{Username: "toolongname"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "username must be at most 5 characters")
	assert.Contains(t, appErr.Details(), "x is required")
}
