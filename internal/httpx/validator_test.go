package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"libraryapi/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	Author string `json:"author" validate:"required,max=5"`
	ISBN   string `json:"isbn" validate:"required"`
	Pages  string `json:"pages" validate:"omitempty,min=2"`
}

func TestValidate_ValidInput(t *testing.T) {
	errs := Validate(testRequest{Title: "test", Author: "artur", ISBN: "001"})
	assert.Empty(t, errs)
}

func TestValidate_ReportsFieldsInOrder(t *testing.T) {
	errs := Validate(testRequest{})

	require.Len(t, errs, 3)
	assert.Equal(t, apierror.FieldError{Field: "title", Message: "title is required"}, errs[0])
	assert.Equal(t, apierror.FieldError{Field: "author", Message: "author is required"}, errs[1])
	assert.Equal(t, apierror.FieldError{Field: "isbn", Message: "isbn is required"}, errs[2])
}

func TestValidate_Messages(t *testing.T) {
	errs := Validate(testRequest{Title: "t", Author: "too long", ISBN: "1", Pages: "x"})

	require.Len(t, errs, 2)
	assert.Equal(t, "author must be at most 5 characters", errs[0].Message)
	assert.Equal(t, "pages must be at least 2 characters", errs[1].Message)
}

func TestValidate_NotBlank(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "empty", title: "", want: "title is required"},
		{name: "spaces", title: "   ", want: "title must not be blank"},
		{name: "whitespace mix", title: "\t\n ", want: "title must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(testRequest{Title: tt.title, Author: "artur", ISBN: "001"})

			require.Len(t, errs, 1)
			assert.Equal(t, apierror.FieldError{Field: "title", Message: tt.want}, errs[0])
		})
	}

	assert.Empty(t, Validate(testRequest{Title: " go ", Author: "artur", ISBN: "001"}))
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"test","author":"artur","isbn":"001"}`))
		var req testRequest

		require.NoError(t, DecodeAndValidate(r, &req))
		assert.Equal(t, "001", req.ISBN)
	})

	t.Run("empty body reports every required field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		var req testRequest

		err := DecodeAndValidate(r, &req)

		var validationErr *apierror.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Len(t, validationErr.Fields, 3)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
		var req testRequest

		err := DecodeAndValidate(r, &req)

		var statusErr apierror.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	})
}
