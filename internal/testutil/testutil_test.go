package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest(http.MethodPost, "/api/loans", map[string]string{"isbn": "001"})
	b, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isbn":"001"}`, string(b))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

	r = NewRequest(http.MethodPost, "/api/loans", `{"isbn":`)
	b, err = io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"isbn":`, string(b))

	r = NewRequest(http.MethodGet, "/api/books", nil)
	assert.Empty(t, r.Header.Get("Content-Type"))
}

func TestRecordHTTPResponse(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"errors":["title is required"]}`))
	})

	rec := RecordHTTPResponse(Serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, rec.Body["success"])
	assert.Equal(t, []string{"title is required"}, rec.Errors)
}
