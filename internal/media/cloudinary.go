// AngelaMos | 2026
// cloudinary.go

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrNotConfigured = errors.New("media host is not configured")

// Cloudinary is the Store backed by the Cloudinary upload and admin APIs.
// Admin and destroy calls share one token bucket.
type Cloudinary struct {
	cld     *cloudinary.Cloudinary
	limiter *rate.Limiter
}

func NewCloudinary(cfg config.MediaConfig) (*Cloudinary, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	switch {
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	case cfg.HasCloudinary():
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	default:
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}

	cld.Config.URL.Secure = true

	burst := max(cfg.AdminBurst, 1)
	limit := rate.Inf
	if cfg.AdminRate > 0 {
		limit = rate.Limit(cfg.AdminRate)
	}

	return &Cloudinary{
		cld:     cld,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

func (c *Cloudinary) Store(
	ctx context.Context,
	r io.Reader,
	filename, folder string,
) (*Asset, error) {
	ctx, span := core.StartSpan(ctx, "media.upload",
		attribute.String("media.filename", filename),
		attribute.String("media.folder", folder),
	)
	defer span.End()

	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err == nil && res.Error.Message != "" {
		err = errors.New(res.Error.Message)
	}
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}

	return &Asset{
		PublicID:     res.PublicID,
		URL:          res.SecureURL,
		ResourceType: res.ResourceType,
		Format:       res.Format,
		Width:        res.Width,
		Height:       res.Height,
		Bytes:        int64(res.Bytes),
	}, nil
}

func (c *Cloudinary) Delete(
	ctx context.Context,
	assetID, kind string,
) (string, error) {
	ctx, span := core.StartSpan(ctx, "media.delete",
		attribute.String("media.public_id", assetID),
	)
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("delete %s: %w", assetID, err)
	}

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     assetID,
		ResourceType: normalizeKind(kind),
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return "", fmt.Errorf("delete %s: %w", assetID, err)
	}

	switch res.Result {
	case ResultOK, ResultNotFound:
		return res.Result, nil
	}

	if res.Error.Message != "" {
		return "", fmt.Errorf("delete %s: %s: %w", assetID, res.Error.Message, ErrDeleteFailed)
	}
	return "", fmt.Errorf("delete %s: %w", assetID, ErrDeleteFailed)
}

func (c *Cloudinary) Describe(
	ctx context.Context,
	assetID, kind string,
) (*Asset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("describe %s: %w", assetID, err)
	}

	res, err := c.cld.Admin.Asset(ctx, admin.AssetParams{
		PublicID:     assetID,
		AssetType:    api.AssetType(normalizeKind(kind)),
		DeliveryType: api.Upload,
	})
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", assetID, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("describe %s: %s", assetID, res.Error.Message)
	}

	asset := toAsset(*res)
	if dir := path.Dir(res.PublicID); dir != "." {
		asset.Folder = dir
	}
	return &asset, nil
}

func (c *Cloudinary) List(
	ctx context.Context,
	folder, kind string,
	maxResults int,
) ([]Asset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}

	res, err := c.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.AssetType(normalizeKind(kind)),
		DeliveryType: string(api.Upload),
		Prefix:       folder,
		MaxResults:   maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("list %s: %s", folder, res.Error.Message)
	}

	assets := make([]Asset, 0, len(res.Assets))
	for _, a := range res.Assets {
		assets = append(assets, toBriefAsset(a))
	}
	return assets, nil
}

func (c *Cloudinary) Ping(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	res, err := c.cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("cloudinary ping: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary ping: %s", res.Error.Message)
	}
	return nil
}

func toAsset(a admin.AssetResult) Asset {
	out := Asset{
		PublicID:     a.PublicID,
		URL:          a.SecureURL,
		ResourceType: a.ResourceType,
		Type:         a.Type,
		Format:       a.Format,
		Width:        a.Width,
		Height:       a.Height,
		Bytes:        int64(a.Bytes),
	}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt.UTC().Truncate(time.Second)
		out.CreatedAt = &created
	}
	return out
}

func toBriefAsset(a api.BriefAssetResult) Asset {
	out := Asset{
		PublicID:     a.PublicID,
		URL:          a.SecureURL,
		ResourceType: a.AssetType,
		Type:         a.Type,
		Format:       a.Format,
		Width:        a.Width,
		Height:       a.Height,
		Bytes:        int64(a.Bytes),
	}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt.UTC().Truncate(time.Second)
		out.CreatedAt = &created
	}
	if a.AssetFolder != "" {
		out.Folder = a.AssetFolder
	} else if dir := path.Dir(a.PublicID); dir != "." {
		out.Folder = dir
	}
	return out
}

// Unconfigured stands in when no Cloudinary credentials are present.
// Every call fails with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Store(context.Context, io.Reader, string, string) (*Asset, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Delete(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Describe(context.Context, string, string) (*Asset, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) List(context.Context, string, string, int) ([]Asset, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Ping(context.Context) error { return ErrNotConfigured }

var (
	_ Store = (*Cloudinary)(nil)
	_ Store = Unconfigured{}
)
