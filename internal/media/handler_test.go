// AngelaMos | 2026
// handler_test.go

package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fakeStore struct {
	mu        sync.Mutex
	stored    []string
	deleted   []string
	deleteErr map[string]error
	results   map[string]string
	listed    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		deleteErr: map[string]error{},
		results:   map[string]string{},
	}
}

func (f *fakeStore) Store(
	_ context.Context,
	r io.Reader,
	filename, folder string,
) (*Asset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, filename)

	return &Asset{
		PublicID:     folder + "/" + filename,
		URL:          "https://cdn.example.com/" + folder + "/" + filename,
		ResourceType: KindImage,
		Format:       "png",
		Bytes:        int64(len(b)),
	}, nil
}

func (f *fakeStore) Delete(_ context.Context, id, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if err := f.deleteErr[id]; err != nil {
		return "", err
	}
	if r, ok := f.results[id]; ok {
		return r, nil
	}
	return ResultOK, nil
}

func (f *fakeStore) Describe(_ context.Context, id, kind string) (*Asset, error) {
	return &Asset{PublicID: id, ResourceType: normalizeKind(kind)}, nil
}

func (f *fakeStore) List(_ context.Context, folder, _ string, maxResults int) ([]Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed = append(f.listed, folder)
	out := make([]Asset, 0, 2)
	for i := range min(2, maxResults) {
		out = append(out, Asset{PublicID: folder + "/" + string(rune('a'+i))})
	}
	return out, nil
}

func (f *fakeStore) Ping(context.Context) error { return nil }

func passthrough(next http.Handler) http.Handler { return next }

func newRouter(store Store) http.Handler {
	r := chi.NewRouter()
	NewHandler(store, config.MediaConfig{
		UploadFolder: "uploads",
		MaxFileSize:  1 << 20,
		MaxFiles:     2,
	}).RegisterRoutes(r, passthrough, passthrough)
	return r
}

type part struct {
	field, name string
	body        []byte
}

func multipartRequest(t *testing.T, path string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := mw.CreateFormFile(p.field, p.name)
		require.NoError(t, err)
		_, err = fw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) string {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if dst != nil {
		require.NoError(t, json.Unmarshal(env.Data, dst))
	}
	return env.Message
}

func TestUploadSingle(t *testing.T) {
	store := newFakeStore()
	router := newRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "/upload/single",
		part{"file", "logo.png", pngHeader}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var asset Asset
	assert.Equal(t, "File uploaded successfully", decode(t, rec, &asset))
	assert.Equal(t, "uploads/logo.png", asset.PublicID)
	assert.Equal(t, []string{"logo.png"}, store.stored)
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		parts   []part
		message string
	}{
		{
			name:    "no file",
			path:    "/upload/single",
			parts:   []part{{"other", "x.png", pngHeader}},
			message: "No file uploaded",
		},
		{
			name:    "not an image",
			path:    "/upload/single",
			parts:   []part{{"file", "notes.png", []byte("plain text pretending")}},
			message: "Only image files are allowed (jpeg, jpg, png, gif, webp)",
		},
		{
			name:    "too large",
			path:    "/upload/single",
			parts:   []part{{"file", "big.png", append(pngHeader, make([]byte, 1<<20)...)}},
			message: "File too large. Maximum size is 1MB",
		},
		{
			name: "too many",
			path: "/upload/multiple",
			parts: []part{
				{"files", "a.png", pngHeader},
				{"files", "b.png", pngHeader},
				{"files", "c.png", pngHeader},
			},
			message: "Too many files. Maximum is 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			rec := httptest.NewRecorder()
			newRouter(store).ServeHTTP(rec, multipartRequest(t, tt.path, tt.parts...))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec, nil))
			assert.Empty(t, store.stored)
		})
	}
}

func TestUploadMultiple(t *testing.T) {
	store := newFakeStore()
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, multipartRequest(t, "/upload/multiple",
		part{"files", "a.png", pngHeader},
		part{"files", "b.png", pngHeader},
	))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body MultipleUploadResponse
	assert.Equal(t, "2 file(s) uploaded successfully", decode(t, rec, &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "uploads/a.png", body.Files[0].PublicID)
	assert.Equal(t, "uploads/b.png", body.Files[1].PublicID)
}

func TestDeleteFile(t *testing.T) {
	store := newFakeStore()
	store.results["uploads/gone"] = ResultNotFound
	store.deleteErr["uploads/broken"] = ErrDeleteFailed
	router := newRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/upload/uploads%2Flogo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "File deleted successfully", decode(t, rec, nil))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/upload/uploads%2Fgone", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "File not found", decode(t, rec, nil))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/upload/uploads%2Fbroken", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, []string{"uploads/logo", "uploads/gone", "uploads/broken"}, store.deleted)
}

func TestFolderFiles(t *testing.T) {
	store := newFakeStore()
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/upload/folder/gallery?maxResults=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body FolderResponse
	decode(t, rec, &body)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, []string{"gallery"}, store.listed)
}

func TestReleaserSwallowsFailures(t *testing.T) {
	store := newFakeStore()
	store.deleteErr["b"] = errors.New("host down")

	var logs bytes.Buffer
	r := NewReleaser(store, slog.New(slog.NewTextHandler(&logs, nil)))
	r.Release(context.Background(), "a", "", "b", "c")

	assert.Equal(t, []string{"a", "b", "c"}, store.deleted)
	assert.Contains(t, logs.String(), "media release failed")
	assert.Contains(t, logs.String(), "public_id=b")
}
