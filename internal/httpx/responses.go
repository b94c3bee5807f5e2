package httpx

import (
	"log/slog"
	"net/http"

	"libraryapi/internal/apierror"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Errors  []string    `json:"errors"`
	Meta    interface{} `json:"meta,omitempty"`
}

func buildMeta(r *http.Request, customMeta map[string]interface{}) interface{} {
	requestID := RequestIDFrom(r)
	if requestID == "" && customMeta == nil {
		return nil
	}
	meta := make(map[string]interface{}, len(customMeta)+1)
	if requestID != "" {
		meta["request_id"] = requestID
	}
	for k, v := range customMeta {
		meta[k] = v
	}
	return meta
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func JSONSuccess(w http.ResponseWriter, r *http.Request, data interface{}, customMeta map[string]interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, customMeta),
	})
}

func JSONSuccessCreated(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, nil),
	})
}

func JSONSuccessNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONErrors writes a classified error body with the given status.
func JSONErrors(w http.ResponseWriter, r *http.Request, statusCode int, body apierror.APIErrors) {
	writeJSON(w, statusCode, ErrorResponse{
		Success: false,
		Errors:  body.Errors,
		Meta:    buildMeta(r, nil),
	})
}

// JSONError writes a single-message error body.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	JSONErrors(w, r, statusCode, apierror.APIErrors{Errors: []string{message}})
}

// WriteError classifies err and renders it. Not-found errors produce an
// empty 404. Unclassified errors are logged and reported as 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := apierror.Classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r),
			"error", err,
		)
	}
	if body == nil {
		w.WriteHeader(status)
		return
	}
	JSONErrors(w, r, status, *body)
}
