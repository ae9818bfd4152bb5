// AngelaMos | 2026
// identifier.go

package core

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	PrefixUser        = "USR"
	PrefixProject     = "PRJ"
	PrefixTestimonial = "TST"
	PrefixGallery     = "GAL"
)

// NewCodeID returns prefix + last six digits of the unix millisecond clock
// + three random digits, e.g. PRJ123045678. Collisions within the same
// millisecond are possible; the unique index on the column is the real
// guard.
func NewCodeID(prefix string) string {
	return newCodeIDAt(prefix, time.Now())
}

func newCodeIDAt(prefix string, now time.Time) string {
	ms := now.UnixMilli() % 1_000_000
	//nolint:gosec // G404: human-facing code, not a secret
	return fmt.Sprintf("%s%06d%03d", prefix, ms, rand.IntN(1000))
}

// NewUserCode returns USR followed by width random digits.
func NewUserCode(width int) string {
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.Grow(len(PrefixUser) + width)
	b.WriteString(PrefixUser)
	for range width {
		//nolint:gosec // G404: human-facing code, not a secret
		b.WriteByte(byte('0' + rand.IntN(10)))
	}

	return b.String()
}
