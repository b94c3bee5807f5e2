package loan

import (
	"errors"
	"net/http"

	"libraryapi/internal/apierror"
	"libraryapi/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// LoanRequest is the body accepted by POST /api/loans.
type LoanRequest struct {
	Customer string `json:"customer" validate:"required,notblank"`
	ISBN     string `json:"isbn" validate:"required,notblank"`
}

type LoanCreated struct {
	ID int64 `json:"id"`
}

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
}

// Create handles POST /api/loans
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	id, err := h.service.Create(r.Context(), req.Customer, req.ISBN)
	if err != nil {
		// an unknown ISBN is a bad request here, not a missing resource
		if errors.Is(err, ErrBookNotFound) {
			err = apierror.NewStatusError(http.StatusBadRequest, err.Error())
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, LoanCreated{ID: id})
}
