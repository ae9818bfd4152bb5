// AngelaMos | 2026
// handler_test.go

package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  []core.FieldError `json:"errors"`
}

func newRouter(t *testing.T) (http.Handler, *fixture) {
	t.Helper()

	f := newFixture(t, Options{})
	pass := func(next http.Handler) http.Handler { return next }

	r := chi.NewRouter()
	NewHandler(f.svc).RegisterRoutes(r, pass, pass)
	return r, f
}

func do(t *testing.T, h http.Handler, method, path string, payload any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestHandlerSettingsLifecycle(t *testing.T) {
	h, _ := newRouter(t)
	const path = "/website/home-settings/"

	code, env := do(t, h, http.MethodPut, path, map[string]any{"heroTitle": "x"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Home settings not found. Please create settings first.", env.Message)

	code, env = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Home settings not found", env.Message)

	code, env = do(t, h, http.MethodPost, path, homeBody(feature("a", "img-a")))
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Home settings created successfully", env.Message)

	code, env = do(t, h, http.MethodPost, path, homeBody())
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Home settings already exist. Please use update endpoint.", env.Message)

	code, env = do(t, h, http.MethodPut, path, map[string]any{"heroTitle": "Updated"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Home settings updated successfully", env.Message)

	var view map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Updated", view["heroTitle"])

	code, env = do(t, h, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Home settings deleted successfully", env.Message)

	code, _ = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandlerValidationErrors(t *testing.T) {
	h, _ := newRouter(t)

	code, env := do(t, h, http.MethodPost, "/website/settings/",
		map[string]any{"title": 12})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "title", env.Errors[0].Field)

	code, env = do(t, h, http.MethodPost, "/website/about-us-settings/",
		map[string]any{"heroDescription": "About"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", env.Message)
}

func TestHandlerFormConfig(t *testing.T) {
	h, _ := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/website/contact-us-settings/form-config", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Contact Us settings not found", env.Message)

	code, _ = do(t, h, http.MethodPost, "/website/contact-us-settings/", contactBody())
	require.Equal(t, http.StatusCreated, code)

	code, env = do(t, h, http.MethodGet, "/website/contact-us-settings/form-config", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Form configuration retrieved successfully", env.Message)

	var cfg FormConfig
	require.NoError(t, json.Unmarshal(env.Data, &cfg))
	assert.Equal(t, []string{"name", "email", "phone", "message"}, cfg.MandatoryFields)
	assert.NotContains(t, cfg.Fields, "company")
}

func TestHandlerWritesAreGated(t *testing.T) {
	f := newFixture(t, Options{})
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			core.Unauthorized(w, "Not authorized to access this route. Please login")
		})
	}
	pass := func(next http.Handler) http.Handler { return next }

	r := chi.NewRouter()
	NewHandler(f.svc).RegisterRoutes(r, deny, pass)

	code, _ := do(t, r, http.MethodPost, "/website/contact-us-settings/", contactBody())
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, r, http.MethodGet, "/website/contact-us-settings/", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
