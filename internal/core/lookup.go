// AngelaMos | 2026
// lookup.go

package core

import (
	"context"
	"errors"
)

// Lookup resolves a soft reference (a slug or a store id) to the record it
// names. A missing record is reported as an error wrapping ErrNotFound.
type Lookup func(ctx context.Context, key string) (any, error)

// LookupOf adapts a typed getter to a Lookup.
func LookupOf[T any](get func(ctx context.Context, key string) (*T, error)) Lookup {
	return func(ctx context.Context, key string) (any, error) {
		v, err := get(ctx, key)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Exists reports whether key resolves. Errors other than not-found are
// returned as is.
func (l Lookup) Exists(ctx context.Context, key string) (bool, error) {
	if l == nil {
		return true, nil
	}

	_, err := l(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	}
	return false, err
}

// Expand resolves key for display. Anything but a hit yields nil.
func (l Lookup) Expand(ctx context.Context, key string) any {
	if l == nil || key == "" {
		return nil
	}

	v, err := l(ctx, key)
	if err != nil {
		return nil
	}
	return v
}
