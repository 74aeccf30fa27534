package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/codestreak/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	t.Run("decoded", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}`))
		require.NoError(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &dst))
		assert.Equal(t, "alice", dst.Name)
	})
	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		assert.ErrorIs(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &dst), httputil.ErrEmptyBody)
	})
	t.Run("too large", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("a", httputil.MaxBodyBytes) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(big)))
		assert.Error(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &dst))
	})
}

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "already exists", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{Code: http.StatusConflict, Message: "already exists"}, resp)
}

func TestWriteJSONResponseUnencodable(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusOK, map[string]any{"ch": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
