package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestErrorsIs(t *testing.T) {
	err := fmt.Errorf("load bill: %w", NotFound("bill", "b-1"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, NotFoundError, TypeOf(err))
	assert.Equal(t, InternalError, TypeOf(errors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, InternalError, "save failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Nil(t, Wrap(nil, InternalError, "nothing"))
}

func TestToConnect(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", NotFound("event", "e-1"), connect.CodeNotFound},
		{"validation", ValidationFailed("bad amount", "negative"), connect.CodeInvalidArgument},
		{"parse", ParseFailed("no header row", nil), connect.CodeInvalidArgument},
		{"auth", Unauthenticated("authentication required"), connect.CodeUnauthenticated},
		{"forbidden", Forbidden("not yours"), connect.CodePermissionDenied},
		{"plain", errors.New("boom"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cerr *connect.Error
			require.ErrorAs(t, ToConnect(tt.err), &cerr)
			assert.Equal(t, tt.want, cerr.Code())
		})
	}
}

func TestToConnectNotFoundDetail(t *testing.T) {
	var cerr *connect.Error
	require.ErrorAs(t, ToConnect(NotFound("bill", "b-42")), &cerr)
	require.Len(t, cerr.Details(), 1)

	msg, err := cerr.Details()[0].Value()
	require.NoError(t, err)
	s, ok := msg.(*structpb.Struct)
	require.True(t, ok)
	assert.Equal(t, "bill", s.Fields["entity"].GetStringValue())
	assert.Equal(t, "b-42", s.Fields["id"].GetStringValue())
}
