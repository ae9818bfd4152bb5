// AngelaMos | 2026
// service_test.go

package project

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type memRepo struct {
	mu       sync.Mutex
	projects map[string]Project
}

func newMemRepo() *memRepo {
	return &memRepo{projects: map[string]Project{}}
}

func (m *memRepo) Create(_ context.Context, p *Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cur := range m.projects {
		if cur.Slug == p.Slug {
			return ErrSlugTaken
		}
		if cur.ProjectID == p.ProjectID {
			return ErrProjectIDTaken
		}
	}
	m.projects[p.ID] = *p
	return nil
}

func (m *memRepo) GetBySlug(_ context.Context, slug string) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.projects[id]; ok {
		return &p, nil
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) Update(_ context.Context, p *Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cur := range m.projects {
		if cur.Slug == p.Slug && cur.ID != p.ID {
			return ErrSlugTaken
		}
	}
	m.projects[p.ID] = *p
	return nil
}

func (m *memRepo) Delete(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, p := range m.projects {
		if p.Slug == slug {
			delete(m.projects, id)
			return nil
		}
	}
	return core.ErrNotFound
}

func (m *memRepo) List(_ context.Context, params ListParams) ([]Project, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Project{}
	for _, p := range m.projects {
		if params.BusinessSlug != "" && p.BusinessSlug != params.BusinessSlug {
			continue
		}
		if params.Type != "" && p.Type != params.Type {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *memRepo) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.projects), nil
}

func businessLookup(slugs ...string) core.Lookup {
	known := map[string]bool{}
	for _, s := range slugs {
		known[s] = true
	}
	return func(_ context.Context, slug string) (any, error) {
		if known[slug] {
			return map[string]string{"slug": slug}, nil
		}
		return nil, core.ErrNotFound
	}
}

func validInput(name string) Input {
	asset := core.Asset{URL: "https://cdn.example.com/a.png", PublicID: "a"}
	return Input{
		BusinessSlug: "Acme",
		Name:         name,
		Description:  "A tower",
		Type:         "commercial",
		HeroImage:    asset,
		Detail: Detail{
			Image:       asset,
			Title:       "Detail",
			Description: `<b>Tall</b><img src=x onerror="alert(1)">`,
		},
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newMemRepo(), businessLookup("acme"))
	svc.newCode = func(prefix string) string { return prefix + "123456789" }

	in := validInput("Sky Tower")
	in.Documents = []Document{{
		Image:       core.Asset{URL: "u", PublicID: "p"},
		Title:       "Brochure",
		Description: "PDF",
		FileName:    "brochure.pdf",
		FileLink:    core.Asset{URL: "u2", PublicID: "p2"},
	}}

	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "PRJ123456789", p.ProjectID)
	assert.Equal(t, "sky-tower", p.Slug)
	assert.Equal(t, "acme", p.BusinessSlug)
	assert.NotContains(t, p.Detail.V.Description, "onerror")
	assert.Equal(t, defaultButtonTitle, p.Documents.V[0].ButtonTitle)
}

func TestCreateRejectsUnknownBusiness(t *testing.T) {
	svc := NewService(newMemRepo(), businessLookup("acme"))

	in := validInput("Sky Tower")
	in.BusinessSlug = "ghost"

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestCreateRejectsDuplicateRankings(t *testing.T) {
	svc := NewService(newMemRepo(), businessLookup("acme"))

	in := validInput("Sky Tower")
	in.Images = []Image{
		{Ranking: 1, URL: "a", PublicID: "a"},
		{Ranking: 1, URL: "b", PublicID: "b"},
	}

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestUpdate(t *testing.T) {
	svc := NewService(newMemRepo(), businessLookup("acme", "beta"))
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Sky Tower"))
	require.NoError(t, err)

	ghost := "ghost"
	_, err = svc.Update(ctx, "sky-tower", UpdateRequest{BusinessSlug: &ghost})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	beta := "beta"
	typ := "residential"
	p, err := svc.Update(ctx, "sky-tower", UpdateRequest{BusinessSlug: &beta, Type: &typ})
	require.NoError(t, err)

	assert.Equal(t, created.ProjectID, p.ProjectID)
	assert.Equal(t, "beta", p.BusinessSlug)
	assert.Equal(t, "residential", p.Type)
	assert.Equal(t, "Sky Tower", p.Name)
}

func TestGetAttachesBusiness(t *testing.T) {
	businesses := map[string]bool{"acme": true}
	lookup := core.Lookup(func(_ context.Context, slug string) (any, error) {
		if businesses[slug] {
			return map[string]string{"slug": slug}, nil
		}
		return nil, core.ErrNotFound
	})

	svc := NewService(newMemRepo(), lookup)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("Sky Tower"))
	require.NoError(t, err)

	view, err := svc.Get(ctx, "sky-tower")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"slug": "acme"}, view.Business)

	delete(businesses, "acme")
	view, err = svc.Get(ctx, "sky-tower")
	require.NoError(t, err)
	assert.Nil(t, view.Business)
}

func TestGetByIDMalformed(t *testing.T) {
	svc := NewService(newMemRepo(), nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestHandlerMessages(t *testing.T) {
	svc := NewService(newMemRepo(), businessLookup("acme"))
	pass := func(next http.Handler) http.Handler { return next }
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, pass, pass)

	send := func(method, path string, body any) (int, core.Envelope) {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

		var env core.Envelope
		require.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&env))
		return rec.Code, env
	}

	in := validInput("Sky Tower")
	in.BusinessSlug = "ghost"
	code, env := send(http.MethodPost, "/project/", in)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Business not found with the provided slug", env.Message)

	code, _ = send(http.MethodPost, "/project/", validInput("Sky Tower"))
	require.Equal(t, http.StatusCreated, code)

	code, env = send(http.MethodPost, "/project/", validInput("Sky Tower"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Project with this slug or project_id already exists", env.Message)

	code, env = send(http.MethodGet, "/project/sky-tower", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Project retrieved successfully", env.Message)
	assert.NotNil(t, env.Data.(map[string]any)["business"])

	code, env = send(http.MethodGet, "/project/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Project not found", env.Message)
}
