package book

import (
	"net/http"
	"strconv"

	"libraryapi/internal/apierror"
	"libraryapi/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// BookRequest is the body accepted by create and update.
type BookRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	Author string `json:"author" validate:"required,notblank"`
	ISBN   string `json:"isbn" validate:"required,notblank"`
}

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes mounts the book endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.Find)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Create handles POST /api/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	saved, err := h.service.Save(r.Context(), Draft{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, saved)
}

// GetByID handles GET /api/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, ok := h.resolve(w, r)
	if !ok {
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Find handles GET /api/books
func (h *HTTPHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter Filter
	if query.Has("title") {
		v := query.Get("title")
		filter.Title = &v
	}
	if query.Has("author") {
		v := query.Get("author")
		filter.Author = &v
	}
	if query.Has("isbn") {
		v := query.Get("isbn")
		filter.ISBN = &v
	}

	page, err := intParam(query.Get("page"))
	if err != nil {
		httpx.WriteError(w, r, apierror.NewStatusError(http.StatusBadRequest, "Invalid page"))
		return
	}
	size, err := intParam(query.Get("size"))
	if err != nil {
		httpx.WriteError(w, r, apierror.NewStatusError(http.StatusBadRequest, "Invalid size"))
		return
	}

	result, err := h.service.Find(r.Context(), filter, PageRequest{Page: page, Size: size})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, result, map[string]interface{}{
		"total_pages": result.TotalPages(),
	})
}

// Update handles PUT /api/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	b, ok := h.resolve(w, r)
	if !ok {
		return
	}
	b.Title = req.Title
	b.Author = req.Author
	b.ISBN = req.ISBN

	updated, err := h.service.Update(r.Context(), b)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, updated, nil)
}

// Delete handles DELETE /api/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), b); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// resolve loads the book named by the {id} URL parameter. It writes the
// response and returns false when the book cannot be served.
func (h *HTTPHandler) resolve(w http.ResponseWriter, r *http.Request) (Book, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, r, apierror.NewStatusError(http.StatusBadRequest, "Invalid book id"))
		return Book{}, false
	}

	b, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return Book{}, false
	}
	if !found {
		httpx.WriteError(w, r, ErrNotFound)
		return Book{}, false
	}
	return b, true
}

// intParam parses an optional integer query parameter. Empty means zero.
func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
