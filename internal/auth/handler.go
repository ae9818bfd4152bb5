// AngelaMos | 2026
// handler.go

package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
)

type Handler struct {
	service   *Service
	tokens    *TokenManager
	validator *validator.Validate
}

func NewHandler(service *Service, tokens *TokenManager) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/check-login", h.CheckLogin)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Post("/change-password", h.ChangePassword)

			r.With(adminOnly).Post("/register", h.Register)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if err := core.ValidateStruct(h.validator, req); err != nil {
		core.JSONError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			core.Unauthorized(w, "Invalid credentials")
		case errors.Is(err, ErrAccountDisabled):
			core.Forbidden(w, "Account is deactivated. Please contact support")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	h.tokens.SetCookie(w, result.Token.Token)

	core.OK(w, "Login successful", LoginResponse{
		User:  result.User,
		Token: result.Token.Token,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if err := core.ValidateStruct(h.validator, req); err != nil {
		core.JSONError(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.JSONError(w, MapUserConflict(err))
		return
	}

	core.Created(w, "User registered successfully", UserEnvelope{User: *user})
}

// Logout only clears the client cookie. Issued tokens stay valid until
// they expire or the account is deactivated.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.tokens.ClearCookie(w)
	core.OK(w, "Logout successful", nil)
}

func (h *Handler) CheckLogin(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r, h.tokens.CookieName())

	status, message := h.service.CheckLogin(r.Context(), token)

	core.OK(w, message, status)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "User not found")
			return
		}
		core.JSONError(w, err)
		return
	}

	core.OK(w, "User retrieved successfully", UserEnvelope{User: *user})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if err := core.ValidateStruct(h.validator, req); err != nil {
		core.JSONError(w, err)
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := h.service.ChangePassword(r.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			core.Unauthorized(w, "Current password is incorrect")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "User not found")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, "Password changed successfully", nil)
}

// MapUserConflict turns credential-store uniqueness errors into their
// Conflict responses and passes anything else through.
func MapUserConflict(err error) error {
	switch {
	case errors.Is(err, ErrEmailExists):
		return core.ConflictError("Email already registered")
	case errors.Is(err, ErrPhoneExists):
		return core.ConflictError("Phone number already registered")
	}
	return err
}
