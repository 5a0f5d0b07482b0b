package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertRetryable(t *testing.T, err error) {
	t.Helper()

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr), "expected a domain error, got %v", err)
	assert.True(t, baseErr.Retryable())
}
