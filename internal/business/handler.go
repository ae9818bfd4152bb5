// AngelaMos | 2026
// handler.go

package business

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
	r.Route("/business", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{slug}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{slug}", h.Update)
			r.Delete("/{slug}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := core.DecodeJSON(r, &in); err != nil {
		core.JSONError(w, err)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.Created(w, "Business created successfully", b)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		PageParams:  core.ParsePageParams(r),
		ProjectType: r.URL.Query().Get("project_type"),
	}

	businesses, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, "Businesses retrieved successfully", ListResponse{
		Businesses: businesses,
		Pagination: core.NewPagination(params.PageParams, total),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Business retrieved successfully", detail)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "slug"), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Business updated successfully", b)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Business deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSlugTaken):
		core.JSONError(w, core.ConflictError("Business with this slug already exists"))
	case errors.Is(err, core.ErrNotFound) && !core.IsAppError(err):
		core.NotFound(w, "Business not found")
	default:
		core.JSONError(w, err)
	}
}
