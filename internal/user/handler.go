// AngelaMos | 2026
// handler.go

package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/auth"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListUsers)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
		r.Patch("/{id}/toggle-status", h.ToggleStatus)
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListUsersParams{
		PageParams: core.ParsePageParams(r),
		Search:     strings.TrimSpace(q.Get("search")),
		Role:       q.Get("role"),
		IsActive:   core.ParseBoolQuery(r, "isActive"),
	}

	users, total, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, "Users retrieved successfully", UserListResponse{
		Users:      ToUserResponseList(users),
		Pagination: core.NewPagination(params.PageParams, total),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "User retrieved successfully", UserEnvelope{
		User: ToUserResponse(user),
	})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if err := core.ValidateStruct(h.validator, req); err != nil {
		core.JSONError(w, err)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "User updated successfully", UserEnvelope{
		User: ToUserResponse(user),
	})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteUser(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		h.fail(w, err)
		return
	}

	core.OK(w, "User deleted successfully", nil)
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.ToggleStatus(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		h.fail(w, err)
		return
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}

	core.OK(w, message, UserEnvelope{User: ToUserResponse(user)})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		core.BadRequest(w, "Invalid user ID format")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "User not found")
	case errors.Is(err, ErrSelfToggle):
		core.JSONError(w, core.InvalidOperationError(
			"You cannot deactivate your own account",
		))
	case errors.Is(err, ErrSelfDelete):
		core.JSONError(w, core.InvalidOperationError(
			"You cannot delete your own account",
		))
	default:
		core.JSONError(w, auth.MapUserConflict(err))
	}
}
