// AngelaMos | 2026
// handler.go

package project

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
	r.Route("/project", func(r chi.Router) {
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

	p, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err, "Project with this slug or project_id already exists")
		return
	}

	core.Created(w, "Project created successfully", p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListParams{
		PageParams:   core.ParsePageParams(r),
		BusinessSlug: q.Get("business_slug"),
		Type:         q.Get("project_type"),
	}

	projects, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, "Projects retrieved successfully", ListResponse{
		Projects:   projects,
		Pagination: core.NewPagination(params.PageParams, total),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, err, "")
		return
	}

	core.OK(w, "Project retrieved successfully", view)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "slug"), req)
	if err != nil {
		h.fail(w, err, "Project with this slug already exists")
		return
	}

	core.OK(w, "Project updated successfully", p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.fail(w, err, "")
		return
	}

	core.OK(w, "Project deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error, conflict string) {
	switch {
	case errors.Is(err, ErrSlugTaken), errors.Is(err, ErrProjectIDTaken):
		core.JSONError(w, core.ConflictError(conflict))
	case errors.Is(err, ErrBusinessNotFound):
		core.NotFound(w, "Business not found with the provided slug")
	case errors.Is(err, core.ErrNotFound) && !core.IsAppError(err):
		core.NotFound(w, "Project not found")
	default:
		core.JSONError(w, err)
	}
}
