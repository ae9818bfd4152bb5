// AngelaMos | 2026
// releaser.go

package media

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Releaser deletes assets that are no longer referenced. Failures are
// logged and recorded on the current span; they never reach the caller.
type Releaser struct {
	store  Store
	logger *slog.Logger
}

func NewReleaser(store Store, logger *slog.Logger) *Releaser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Releaser{store: store, logger: logger}
}

// Release removes each image asset in order. Blank ids are skipped.
func (r *Releaser) Release(ctx context.Context, publicIDs ...string) {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}

		result, err := r.store.Delete(ctx, id, KindImage)
		if err != nil {
			r.logger.WarnContext(ctx, "media release failed",
				"public_id", id,
				"kind", KindImage,
				"error", err,
			)
			core.AddSpanEvent(ctx, "media.release_failed",
				attribute.String("media.public_id", id),
				attribute.String("error", err.Error()),
			)
			continue
		}

		r.logger.DebugContext(ctx, "media released",
			"public_id", id,
			"result", result,
		)
	}
}
