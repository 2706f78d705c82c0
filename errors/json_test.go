package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := WrapWithContext(stderrors.New("secret detail"), CodeForbidden, "permission denied",
		map[string]interface{}{"path": "/root/link"})

	resp := ToJSON(err)

	require.Equal(t, "FORBIDDEN", resp.Code)
	require.Equal(t, "permission denied", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "/root/link", resp.Context["path"])
}

func TestToJSON_PlainError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "plain", resp.Message)
	require.Nil(t, resp.Context)
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(stderrors.New("cause"), CodeIO, "read failed")

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.JSONEq(t, `{"code":"IO_ERROR","message":"read failed","classification":"RETRYABLE"}`, string(data))
	require.NotContains(t, string(data), "cause")
}
