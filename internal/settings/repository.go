// AngelaMos | 2026
// repository.go

package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// ErrExists is returned by Insert when the kind already has a document.
var ErrExists = errors.New("settings already exist")

type Record struct {
	Kind      Kind                       `db:"kind"       json:"kind"`
	Document  core.JSONB[map[string]any] `db:"document"   json:"document"`
	CreatedAt time.Time                  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time                  `db:"updated_at" json:"updatedAt"`
}

// MutateFunc computes the replacement document from the stored record.
// Returning an error aborts the update and leaves the record unchanged.
type MutateFunc func(current *Record) (map[string]any, error)

type Repository interface {
	Insert(ctx context.Context, kind Kind, doc map[string]any) (*Record, error)
	Get(ctx context.Context, kind Kind) (*Record, error)
	Mutate(ctx context.Context, kind Kind, fn MutateFunc) (prev, next *Record, err error)
	Delete(ctx context.Context, kind Kind) (*Record, error)
	Existing(ctx context.Context) ([]Kind, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert relies on the primary key over kind: of two concurrent creates
// exactly one row is written and the other sees ErrExists.
func (r *repository) Insert(
	ctx context.Context,
	kind Kind,
	doc map[string]any,
) (*Record, error) {
	query := `
		INSERT INTO site_settings (kind, document)
		VALUES ($1, $2)
		ON CONFLICT (kind) DO NOTHING
		RETURNING kind, document, created_at, updated_at`

	var rec Record
	err := r.db.GetContext(ctx, &rec, query, string(kind), core.NewJSONB(doc))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("insert %s settings: %w", kind, ErrExists)
	}
	if err != nil {
		return nil, core.StoreError("insert "+string(kind)+" settings", err)
	}

	return &rec, nil
}

func (r *repository) Get(ctx context.Context, kind Kind) (*Record, error) {
	query := `
		SELECT kind, document, created_at, updated_at
		FROM site_settings
		WHERE kind = $1`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, string(kind)); err != nil {
		return nil, core.StoreError("get "+string(kind)+" settings", err)
	}

	return &rec, nil
}

func (r *repository) Mutate(
	ctx context.Context,
	kind Kind,
	fn MutateFunc,
) (*Record, *Record, error) {
	var prev, next Record

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &prev, `
			SELECT kind, document, created_at, updated_at
			FROM site_settings
			WHERE kind = $1
			FOR UPDATE`, string(kind))
		if err != nil {
			return core.StoreError("lock "+string(kind)+" settings", err)
		}

		doc, err := fn(&prev)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &next, `
			UPDATE site_settings
			SET document = $2, updated_at = NOW()
			WHERE kind = $1
			RETURNING kind, document, created_at, updated_at`,
			string(kind), core.NewJSONB(doc))
		if err != nil {
			return core.StoreError("update "+string(kind)+" settings", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &prev, &next, nil
}

func (r *repository) Delete(ctx context.Context, kind Kind) (*Record, error) {
	query := `
		DELETE FROM site_settings
		WHERE kind = $1
		RETURNING kind, document, created_at, updated_at`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, string(kind)); err != nil {
		return nil, core.StoreError("delete "+string(kind)+" settings", err)
	}

	return &rec, nil
}

func (r *repository) Existing(ctx context.Context) ([]Kind, error) {
	var out []Kind
	err := r.db.SelectContext(ctx, &out,
		`SELECT kind FROM site_settings ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("list settings kinds: %w", err)
	}
	return out, nil
}
