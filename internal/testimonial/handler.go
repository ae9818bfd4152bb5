// AngelaMos | 2026
// handler.go

package testimonial

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
	r.Route("/testimonial", func(r chi.Router) {
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

	t, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.Created(w, "Testimonial created successfully", t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListParams{
		PageParams:   core.ParsePageParams(r),
		ProjectSlug:  q.Get("project_slug"),
		BusinessSlug: q.Get("business_slug"),
	}

	testimonials, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, "Testimonials retrieved successfully", ListResponse{
		Testimonials: testimonials,
		Pagination:   core.NewPagination(params.PageParams, total),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Testimonial retrieved successfully", view)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Testimonial updated successfully", t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "Testimonial deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		core.BadRequest(w, "Invalid testimonial ID")
	case errors.Is(err, ErrTestimonialIDTaken):
		core.JSONError(w, core.ConflictError("Testimonial with this ID already exists"))
	case errors.Is(err, ErrProjectNotFound):
		core.NotFound(w, "Project not found with the provided slug")
	case errors.Is(err, ErrBusinessNotFound):
		core.NotFound(w, "Business not found with the provided slug")
	case errors.Is(err, core.ErrNotFound) && !core.IsAppError(err):
		core.NotFound(w, "Testimonial not found")
	default:
		core.JSONError(w, err)
	}
}
