package apperror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run(`kind survives wrapping`, func(t *testing.T) {
		err := errors.Wrap(Conflict("already applied"), "apply")
		require.Equal(t, KindConflict, KindOf(err))
		require.True(t, Is(err, KindConflict))
		require.Equal(t, "already applied", PublicMessage(err, "fallback"))
	})

	t.Run(`plain errors are internal`, func(t *testing.T) {
		err := errors.New("db is down")
		require.Equal(t, KindInternal, KindOf(err))
		require.Equal(t, "fallback", PublicMessage(err, "fallback"))
		require.Equal(t, http.StatusInternalServerError, KindOf(err).HTTPStatus())
	})

	t.Run(`codes and statuses`, func(t *testing.T) {
		require.Equal(t, "NOT_FOUND", KindNotFound.Code())
		require.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
		require.Equal(t, "PERMISSION_DENIED", KindPermissionDenied.Code())
		require.Equal(t, http.StatusForbidden, KindPermissionDenied.HTTPStatus())
		require.Equal(t, "VALIDATION_ERROR", KindValidation.Code())
		require.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
		require.Equal(t, "CONFLICT", KindConflict.Code())
		require.Equal(t, http.StatusConflict, KindConflict.HTTPStatus())
	})

	t.Run(`wrapped cause is kept for logs`, func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := Wrap(KindConflict, cause, "already exists")
		require.ErrorIs(t, err, cause)
		require.Equal(t, "already exists", PublicMessage(err, ""))
		require.Contains(t, err.Error(), "duplicate key")
	})
}
