// AngelaMos | 2026
// handler.go

package gallery

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/gallery", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := core.DecodeJSON(r, &in); err != nil {
		core.JSONError(w, err)
		return
	}

	img, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.Created(w, "Gallery image created successfully", img)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListParams{
		PageParams: core.ParsePageParams(r),
		Tag:        q.Get("tag"),
		Category:   q.Get("category"),
		IsActive:   core.ParseBoolQuery(r, "isActive"),
	}

	images, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, "Gallery images retrieved successfully", ListResponse{
		Images:     images,
		Pagination: core.NewPagination(params.PageParams, total),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	img, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Gallery image retrieved successfully", img)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	img, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Gallery image updated successfully", img)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Gallery image deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		core.BadRequest(w, "Invalid gallery image ID")
	case errors.Is(err, ErrGalleryIDTaken):
		core.JSONError(w, core.ConflictError("Gallery image with this ID already exists"))
	case errors.Is(err, core.ErrNotFound) && !core.IsAppError(err):
		core.NotFound(w, "Gallery image not found")
	default:
		core.JSONError(w, err)
	}
}
