package usecases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	domainerrors "tredora.backend/internal/domain/errors"
)

func asAppError(t *testing.T, err error) *domainerrors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func assertableError(msg string) error {
	return errors.New(msg)
}
