// AngelaMos | 2026
// store.go

package media

import (
	"context"
	"errors"
	"io"
	"time"
)

const (
	KindImage = "image"
	KindVideo = "video"
	KindRaw   = "raw"

	// ResultOK and ResultNotFound are the two delete outcomes the host
	// reports that count as success.
	ResultOK       = "ok"
	ResultNotFound = "not found"
)

var ErrDeleteFailed = errors.New("failed to delete file from media host")

// Asset describes one file held by the media host.
type Asset struct {
	PublicID     string     `json:"public_id"`
	URL          string     `json:"url"`
	ResourceType string     `json:"resource_type,omitempty"`
	Type         string     `json:"type,omitempty"`
	Format       string     `json:"format"`
	Width        int        `json:"width,omitempty"`
	Height       int        `json:"height,omitempty"`
	Bytes        int64      `json:"bytes"`
	Folder       string     `json:"folder,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Store is the remote asset host. Delete returns ResultOK or
// ResultNotFound; any other outcome is an error.
type Store interface {
	Store(ctx context.Context, r io.Reader, filename, folder string) (*Asset, error)
	Delete(ctx context.Context, assetID, kind string) (string, error)
	Describe(ctx context.Context, assetID, kind string) (*Asset, error)
	List(ctx context.Context, folder, kind string, maxResults int) ([]Asset, error)
	Ping(ctx context.Context) error
}

func normalizeKind(kind string) string {
	switch kind {
	case KindVideo, KindRaw:
		return kind
	}
	return KindImage
}
