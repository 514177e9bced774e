package serrors_test

import (
	"bowshell/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrInvalidPolicy,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("missing host")

	e1 := serrors.With(serrors.ErrBadRequest, "unknown scheme %q", "ftp")
	require.Equal(t, `unknown scheme "ftp"`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrInvalidPolicy, base, "allowed host %d", 3)
	require.Equal(t, "allowed host 3: missing host", e2.Error())

	var e3 *serrors.Error
	require.Equal(t, "<nil>", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvalidPolicy, base, "validating")

	require.ErrorIs(t, e, serrors.ErrInvalidPolicy)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)

	var ce customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	e := serrors.With(serrors.ErrNotFound, "no such link")
	require.Equal(t, serrors.ErrNotFound, e.Kind())
	require.Equal(t, "no such link", e.Message())
	require.NoError(t, e.Unwrap())
}

func TestKindOfAndHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   serrors.Kind
		status int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "x"), serrors.ErrBadRequest, http.StatusBadRequest},
		{"invalid policy", serrors.With(serrors.ErrInvalidPolicy, "x"), serrors.ErrInvalidPolicy, http.StatusBadRequest},
		{"not found", serrors.With(serrors.ErrNotFound, "x"), serrors.ErrNotFound, http.StatusNotFound},
		{
			"wrapped by fmt",
			fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "inner")),
			serrors.ErrBadRequest,
			http.StatusBadRequest,
		},
		{"plain error", errors.New("boom"), serrors.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, serrors.KindOf(tt.err))
			require.Equal(t, tt.status, serrors.HTTPStatus(tt.err))
		})
	}
}
