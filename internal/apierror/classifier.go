package apierror

import (
	"errors"
	"net/http"
)

const internalErrorMessage = "Internal server error"

// APIErrors is the body rendered for every classified failure.
type APIErrors struct {
	Errors []string `json:"errors"`
}

// FromValidation renders one message per field failure.
func FromValidation(fields []FieldError) APIErrors {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Message)
	}
	return APIErrors{Errors: msgs}
}

// FromBusiness renders a single business-rule violation.
func FromBusiness(err BusinessError) APIErrors {
	return APIErrors{Errors: []string{err.Message}}
}

// FromStatus renders a status-coded failure together with its status.
func FromStatus(err StatusError) (APIErrors, int) {
	return APIErrors{Errors: []string{err.Error()}}, err.Status
}

// Classify maps any error returned by a domain operation to a status code and
// an optional body. A nil body means the response carries no content.
func Classify(err error) (int, *APIErrors) {
	var (
		validationErr *ValidationError
		businessErr   BusinessError
		statusErr     StatusError
	)

	switch {
	case err == nil:
		return http.StatusOK, nil
	case errors.As(err, &validationErr):
		body := FromValidation(validationErr.Fields)
		return http.StatusBadRequest, &body
	case errors.As(err, &businessErr):
		body := FromBusiness(businessErr)
		return http.StatusBadRequest, &body
	case errors.As(err, &statusErr):
		body, status := FromStatus(statusErr)
		return status, &body
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, nil
	case errors.Is(err, ErrInvalidArgument):
		body := APIErrors{Errors: []string{err.Error()}}
		return http.StatusBadRequest, &body
	default:
		body := APIErrors{Errors: []string{internalErrorMessage}}
		return http.StatusInternalServerError, &body
	}
}
