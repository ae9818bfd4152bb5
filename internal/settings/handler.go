// AngelaMos | 2026
// handler.go

package settings

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const maxDocumentBytes = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the four settings documents under /website. Reads
// are public; writes require an admin session.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	admin := chi.Chain(authenticator, adminOnly)

	r.Route("/website", func(r chi.Router) {
		mount := func(path string, kind Kind, extra func(chi.Router)) {
			r.Route(path, func(r chi.Router) {
				r.Get("/", h.get(kind))
				if extra != nil {
					extra(r)
				}

				r.With(admin...).Post("/", h.create(kind))
				r.With(admin...).Put("/", h.update(kind))
				r.With(admin...).Delete("/", h.delete(kind))
			})
		}

		mount("/settings", KindWebsite, nil)
		mount("/home-settings", KindHome, nil)
		mount("/contact-us-settings", KindContact, func(r chi.Router) {
			r.Get("/form-config", h.FormConfig)
		})
		mount("/about-us-settings", KindAboutUs, nil)
	})
}

func (h *Handler) get(kind Kind) http.HandlerFunc {
	label := definitions[kind].label
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.Get(r.Context(), kind)
		if err != nil {
			h.fail(w, label, err, label+" settings not found")
			return
		}
		core.OK(w, label+" settings retrieved successfully", view)
	}
}

func (h *Handler) create(kind Kind) http.HandlerFunc {
	label := definitions[kind].label
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			core.JSONError(w, err)
			return
		}

		view, err := h.service.Create(r.Context(), kind, body)
		if err != nil {
			h.fail(w, label, err, label+" settings not found")
			return
		}
		core.Created(w, label+" settings created successfully", view)
	}
}

func (h *Handler) update(kind Kind) http.HandlerFunc {
	label := definitions[kind].label
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			core.JSONError(w, err)
			return
		}

		view, err := h.service.Update(r.Context(), kind, body)
		if err != nil {
			h.fail(w, label, err,
				label+" settings not found. Please create settings first.")
			return
		}
		core.OK(w, label+" settings updated successfully", view)
	}
}

func (h *Handler) delete(kind Kind) http.HandlerFunc {
	label := definitions[kind].label
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Delete(r.Context(), kind); err != nil {
			h.fail(w, label, err, label+" settings not found")
			return
		}
		core.OK(w, label+" settings deleted successfully", nil)
	}
}

func (h *Handler) FormConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.FormConfig(r.Context())
	if err != nil {
		h.fail(w, definitions[KindContact].label, err,
			"Contact Us settings not found")
		return
	}
	core.OK(w, "Form configuration retrieved successfully", cfg)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		return nil, core.InvalidInputError("Invalid request body")
	}
	return body, nil
}

func (h *Handler) fail(w http.ResponseWriter, label string, err error, notFound string) {
	switch {
	case errors.Is(err, ErrExists):
		core.JSONError(w, core.ConflictError(
			label+" settings already exist. Please use update endpoint.",
		))
	case errors.Is(err, ErrProjectNotFound):
		core.NotFound(w, "Featured project not found")
	case errors.Is(err, ErrTestimonialNotFound):
		core.NotFound(w, "Testimonial not found")
	case errors.Is(err, core.ErrNotFound) && !core.IsAppError(err):
		core.NotFound(w, notFound)
	default:
		core.JSONError(w, err)
	}
}
