package apierror

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidation_KeepsValidatorOrder(t *testing.T) {
	body := FromValidation([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "author", Message: "author is required"},
		{Field: "isbn", Message: "isbn is required"},
	})

	assert.Equal(t, []string{"title is required", "author is required", "isbn is required"}, body.Errors)
}

func TestFromValidation_Empty(t *testing.T) {
	body := FromValidation(nil)
	assert.NotNil(t, body.Errors)
	assert.Empty(t, body.Errors)
}

func TestFromBusiness(t *testing.T) {
	body := FromBusiness(BusinessError{Message: "Isbn already register"})
	assert.Equal(t, []string{"Isbn already register"}, body.Errors)
}

func TestFromStatus(t *testing.T) {
	body, status := FromStatus(NewStatusError(http.StatusBadRequest, "book not found for passed isbn"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"book not found for passed isbn"}, body.Errors)

	body, status = FromStatus(NewStatusError(http.StatusNotFound, ""))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, []string{"Not Found"}, body.Errors)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors []string
	}{
		{
			name: "validation",
			err: &ValidationError{Fields: []FieldError{
				{Field: "title", Message: "title is required"},
				{Field: "isbn", Message: "isbn is required"},
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"title is required", "isbn is required"},
		},
		{
			name:       "business rule",
			err:        fmt.Errorf("save book: %w", BusinessError{Message: "Isbn already register"}),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"Isbn already register"},
		},
		{
			name:       "status coded",
			err:        NewStatusError(http.StatusBadRequest, "book not found for passed isbn"),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"book not found for passed isbn"},
		},
		{
			name:       "not found has no body",
			err:        fmt.Errorf("book 7: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "named not found has no body",
			err:        NotFound("book not found for passed isbn"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid argument",
			err:        fmt.Errorf("book id is not set: %w", ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"book id is not set: invalid argument"},
		},
		{
			name:       "unknown",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantErrors: []string{internalErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Classify(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErrors == nil {
				assert.Nil(t, body)
				return
			}
			require.NotNil(t, body)
			assert.Equal(t, tt.wantErrors, body.Errors)
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	err := BusinessError{Message: "Isbn already register"}
	s1, b1 := Classify(err)
	s2, b2 := Classify(err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, b1, b2)
}
