// AngelaMos | 2026
// service_test.go

package business

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type memRepo struct {
	mu     sync.Mutex
	bySlug map[string]Business
}

func newMemRepo() *memRepo {
	return &memRepo{bySlug: map[string]Business{}}
}

func (m *memRepo) Create(_ context.Context, b *Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bySlug[b.Slug]; ok {
		return ErrSlugTaken
	}
	b.CreatedAt = time.Now().Add(time.Duration(len(m.bySlug)) * time.Millisecond)
	b.UpdatedAt = b.CreatedAt
	m.bySlug[b.Slug] = *b
	return nil
}

func (m *memRepo) GetBySlug(_ context.Context, slug string) (*Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bySlug[slug]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &b, nil
}

func (m *memRepo) Update(_ context.Context, b *Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var oldSlug string
	for slug, cur := range m.bySlug {
		if cur.ID == b.ID {
			oldSlug = slug
		}
	}
	if oldSlug == "" {
		return core.ErrNotFound
	}
	if other, ok := m.bySlug[b.Slug]; ok && other.ID != b.ID {
		return ErrSlugTaken
	}

	delete(m.bySlug, oldSlug)
	b.UpdatedAt = time.Now()
	m.bySlug[b.Slug] = *b
	return nil
}

func (m *memRepo) Delete(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bySlug[slug]; !ok {
		return core.ErrNotFound
	}
	delete(m.bySlug, slug)
	return nil
}

func (m *memRepo) List(_ context.Context, params ListParams) ([]Business, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Business
	for _, b := range m.bySlug {
		if params.ProjectType != "" {
			found := false
			for _, t := range b.ProjectTypes.V {
				found = found || t == params.ProjectType
			}
			if !found {
				continue
			}
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	total := len(out)
	if params.Paginated() {
		start := min(params.Offset(), total)
		end := min(start+params.Limit, total)
		out = out[start:end]
	}
	return out, total, nil
}

func (m *memRepo) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bySlug), nil
}

func validInput(title string) Input {
	asset := core.Asset{URL: "https://cdn.example.com/a.png", PublicID: "a"}
	return Input{
		Title:         title,
		Overview:      "What we do",
		Description:   "<p>We build <b>things</b></p>",
		HeroImage:     asset,
		FeaturedImage: asset,
		ProjectTypes:  []string{"residential"},
	}
}

func TestCreateDerivesSlugAndSanitizes(t *testing.T) {
	svc := NewService(newMemRepo(), nil, nil)

	in := validInput("Green Homes & Villas!")
	in.Description = `<p onclick="x()">Hi</p><script>alert(1)</script>`

	b, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "green-homes-villas", b.Slug)
	assert.Equal(t, "<p>Hi</p>", b.Description)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, []Stat{}, b.Stats.V)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemRepo(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{
			name:   "missing hero image",
			mutate: func(in *Input) { in.HeroImage = core.Asset{} },
			field:  "hero_image.url",
		},
		{
			name:   "bad slug",
			mutate: func(in *Input) { in.Slug = "has space" },
			field:  "slug",
		},
		{
			name: "duplicate stat keys",
			mutate: func(in *Input) {
				in.Stats = []Stat{
					{UniqueKey: "k", Title: "A", StatValue: "1"},
					{UniqueKey: "k", Title: "B", StatValue: "2"},
				}
			},
			field: "businessStats",
		},
		{
			name:   "malformed testimonial id",
			mutate: func(in *Input) { in.Testimonials = []string{"nope"} },
			field:  "business_testimonials[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput("Acme")
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)
			require.Error(t, err)

			appErr := core.ToAppError(err)
			var fields []string
			for _, fe := range appErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc := NewService(newMemRepo(), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("Acme"))
	require.NoError(t, err)

	tagline := "Building since 1990"
	slug := "acme-builders"
	b, err := svc.Update(ctx, "acme", UpdateRequest{Tagline: &tagline, Slug: &slug})
	require.NoError(t, err)

	assert.Equal(t, tagline, b.Tagline)
	assert.Equal(t, "Acme", b.Title)
	assert.Equal(t, []string{"residential"}, b.ProjectTypes.V)

	_, err = svc.GetBySlug(ctx, "acme")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.GetBySlug(ctx, "acme-builders")
	assert.NoError(t, err)
}

func TestGetExpandsReferences(t *testing.T) {
	const (
		liveID = "5b0d7f0e-8c7e-4d5e-9a55-0c0b6c8f1a11"
		goneID = "9f0d7f0e-8c7e-4d5e-9a55-0c0b6c8f1a22"
	)
	testimonials := core.Lookup(func(_ context.Context, id string) (any, error) {
		if id == liveID {
			return map[string]string{"name": "Ravi"}, nil
		}
		return nil, core.ErrNotFound
	})

	svc := NewService(newMemRepo(), nil, testimonials)
	ctx := context.Background()

	in := validInput("Acme")
	in.Testimonials = []string{liveID, goneID}
	in.ProjectDetails = []string{liveID}
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	detail, err := svc.Get(ctx, "ACME")
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]string{"name": "Ravi"}}, detail.Testimonials)
	assert.Empty(t, detail.ProjectDetails)
	assert.Equal(t, []string{liveID, goneID}, detail.Business.Testimonials.V)
}

func newTestRouter(svc *Service) http.Handler {
	pass := func(next http.Handler) http.Handler { return next }
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, pass, pass)
	return r
}

func send(t *testing.T, h http.Handler, method, path string, body any) (int, core.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env core.Envelope
	require.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&env))
	return rec.Code, env
}

func TestHandlerCRUD(t *testing.T) {
	h := newTestRouter(NewService(newMemRepo(), nil, nil))

	code, env := send(t, h, http.MethodPost, "/business/", validInput("Acme"))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Business created successfully", env.Message)

	code, env = send(t, h, http.MethodPost, "/business/", validInput("Acme"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Business with this slug already exists", env.Message)

	code, env = send(t, h, http.MethodGet, "/business/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Business not found", env.Message)

	code, _ = send(t, h, http.MethodPut, "/business/acme",
		map[string]any{"business_tagline": "New"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = send(t, h, http.MethodDelete, "/business/acme", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = send(t, h, http.MethodDelete, "/business/acme", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandlerListPagination(t *testing.T) {
	svc := NewService(newMemRepo(), nil, nil)
	ctx := context.Background()
	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.Create(ctx, validInput(title))
		require.NoError(t, err)
	}

	h := newTestRouter(svc)

	code, env := send(t, h, http.MethodGet, "/business/?limit=2&page=2", nil)
	require.Equal(t, http.StatusOK, code)

	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var list struct {
		Businesses []Business      `json:"businesses"`
		Pagination core.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(raw, &list))

	assert.Len(t, list.Businesses, 1)
	assert.Equal(t, core.Pagination{Total: 3, Page: 2, Limit: 2, Pages: 2}, list.Pagination)

	_, env = send(t, h, http.MethodGet, "/business/", nil)
	raw, err = json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, core.Pagination{Total: 3, Page: 1, Limit: 3, Pages: 1}, list.Pagination)
}
