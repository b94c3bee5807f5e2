package httpx

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"libraryapi/internal/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Validate checks s against its validate tags and returns one FieldError per
// failure, in struct field order.
func Validate(s interface{}) []apierror.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apierror.FieldError{{Message: err.Error()}}
	}

	var errors []apierror.FieldError
	for _, fe := range validationErrors {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "notblank":
			message = fmt.Sprintf("%s must not be blank", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errors = append(errors, apierror.FieldError{
			Field:   field,
			Message: message,
		})
	}
	return errors
}

// DecodeAndValidate reads a JSON body into dst and validates it. The returned
// error is ready for WriteError.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		return apierror.NewStatusError(http.StatusBadRequest, "Invalid request body")
	}
	if fields := Validate(dst); len(fields) > 0 {
		return &apierror.ValidationError{Fields: fields}
	}
	return nil
}
