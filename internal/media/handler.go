// AngelaMos | 2026
// handler.go

package media

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const (
	defaultFolderResults = 500
	multipartOverhead    = 1 << 20
	formMemory           = 8 << 20
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

type Handler struct {
	store       Store
	folder      string
	maxFileSize int64
	maxFiles    int
}

func NewHandler(store Store, cfg config.MediaConfig) *Handler {
	return &Handler{
		store:       store,
		folder:      cfg.UploadFolder,
		maxFileSize: cfg.MaxFileSize,
		maxFiles:    cfg.MaxFiles,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/upload", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/single", h.UploadSingle)
		r.Post("/multiple", h.UploadMultiple)
		r.Get("/file/{publicId}", h.GetFile)
		r.Get("/folder/{folderName}", h.GetFolderFiles)
		r.Delete("/{publicId}", h.DeleteFile)
	})
}

type MultipleUploadResponse struct {
	Files []Asset `json:"files"`
	Count int     `json:"count"`
}

func (h *Handler) UploadSingle(w http.ResponseWriter, r *http.Request) {
	files, err := h.parseFiles(w, r, "file", 1)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	if len(files) == 0 {
		core.BadRequest(w, "No file uploaded")
		return
	}

	asset, err := h.upload(r, files[0])
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "File uploaded successfully", asset)
}

func (h *Handler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	files, err := h.parseFiles(w, r, "files", h.maxFiles)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	if len(files) == 0 {
		core.BadRequest(w, "No files uploaded")
		return
	}

	assets := make([]Asset, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			asset, uploadErr := h.upload(r, fh)
			if uploadErr != nil {
				errs[i] = uploadErr
				return
			}
			assets[i] = *asset
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w,
		fmt.Sprintf("%d file(s) uploaded successfully", len(assets)),
		MultipleUploadResponse{Files: assets, Count: len(assets)},
	)
}

// parseFiles reads the multipart form and checks every file under field
// against the size limit and the image allowlist before anything is sent
// to the media host.
func (h *Handler) parseFiles(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	limit int,
) ([]*multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(
		w,
		r.Body,
		int64(limit)*h.maxFileSize+multipartOverhead,
	)

	if err := r.ParseMultipartForm(formMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, core.InvalidInputError(h.tooLargeMessage())
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, core.InvalidInputError("Invalid multipart form")
	}

	files := r.MultipartForm.File[field]
	if len(files) > limit {
		return nil, core.InvalidInputError(
			fmt.Sprintf("Too many files. Maximum is %d", limit),
		)
	}

	for _, fh := range files {
		if fh.Size > h.maxFileSize {
			return nil, core.InvalidInputError(h.tooLargeMessage())
		}
		if err := checkImage(fh); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (h *Handler) tooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size is %dMB", h.maxFileSize>>20)
}

func checkImage(fh *multipart.FileHeader) error {
	f, err := fh.Open()
	if err != nil {
		return core.InvalidInputError("Cannot read uploaded file")
	}
	defer f.Close() //nolint:errcheck // read-only

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return core.InvalidInputError("Cannot read uploaded file")
	}

	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return core.InvalidInputError(
			"Only image files are allowed (jpeg, jpg, png, gif, webp)",
		)
	}
	return nil
}

func (h *Handler) upload(r *http.Request, fh *multipart.FileHeader) (*Asset, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return h.store.Store(r.Context(), f, fh.Filename, h.folder)
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	publicID := decodePublicID(chi.URLParam(r, "publicId"))

	result, err := h.store.Delete(
		r.Context(),
		publicID,
		r.URL.Query().Get("resourceType"),
	)
	if err != nil {
		core.InternalServerError(w, fmt.Errorf("cloudinary deletion failed: %w", err))
		return
	}

	message := "File deleted successfully"
	if result == ResultNotFound {
		message = "File not found"
	}

	core.OK(w, message, DeleteResponse{
		Success: true,
		Message: message,
		Result:  result,
	})
}

func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	publicID := decodePublicID(chi.URLParam(r, "publicId"))

	asset, err := h.store.Describe(
		r.Context(),
		publicID,
		r.URL.Query().Get("resourceType"),
	)
	if err != nil {
		core.InternalServerError(w, fmt.Errorf("failed to get file details: %w", err))
		return
	}

	core.OK(w, "File details retrieved successfully", asset)
}

type FolderResponse struct {
	Files []Asset `json:"files"`
	Count int     `json:"count"`
}

func (h *Handler) GetFolderFiles(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("resourceType")
	if kind == "" {
		kind = KindImage
	}

	maxResults := core.ParseIntQuery(r, "maxResults", defaultFolderResults)
	if maxResults <= 0 {
		maxResults = defaultFolderResults
	}

	assets, err := h.store.List(
		r.Context(),
		decodePublicID(chi.URLParam(r, "folderName")),
		kind,
		maxResults,
	)
	if err != nil {
		core.InternalServerError(w, fmt.Errorf("failed to get files from folder: %w", err))
		return
	}

	core.OK(w, "Folder files retrieved successfully", FolderResponse{
		Files: assets,
		Count: len(assets),
	})
}

// decodePublicID turns an escaped folder separator back into "/". chi
// matches on the raw path, so the parameter may still carry "%2F".
func decodePublicID(id string) string {
	id = strings.ReplaceAll(id, "%2F", "/")
	return strings.ReplaceAll(id, "%2f", "/")
}
