package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilArgumentError(t *testing.T) {
	err := NewNilArgumentError("client")
	require.EqualError(t, err, "argument 'client' must not be nil")
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("SIGN_UP_URL", "must be absolute")
	require.EqualError(t, err, "invalid argument 'SIGN_UP_URL': must be absolute")
}
