// AngelaMos | 2026
// server_test.go

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type flag struct{ down bool }

func (f *flag) SetShutdown(v bool) { f.down = v }

func newTestServer(h ShutdownNotifier) *Server {
	return New(Config{
		ServerConfig: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		HealthHandler: h,
	})
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(nil)
	srv.Router().Get("/known", func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, "ok", nil)
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var env core.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/known", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	srv := newTestServer(nil)
	srv.Router().Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestShutdownFlipsHealth(t *testing.T) {
	f := &flag{}
	srv := newTestServer(f)

	require.NoError(t, srv.Shutdown(context.Background(), 0))
	assert.True(t, f.down)
}
