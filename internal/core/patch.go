// AngelaMos | 2026
// patch.go

package core

// SetIf copies *src into *dst when src is non-nil. Partial update requests
// use pointer fields so that an absent field leaves the stored value alone.
func SetIf[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}
