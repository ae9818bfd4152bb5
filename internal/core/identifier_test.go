// AngelaMos | 2026
// identifier_test.go

package core

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCodeID(t *testing.T) {
	pattern := regexp.MustCompile(`^PRJ\d{9}$`)
	for range 50 {
		assert.Regexp(t, pattern, NewCodeID(PrefixProject))
	}
}

func TestNewCodeIDUsesLastSixClockDigits(t *testing.T) {
	at := time.UnixMilli(1_700_000_123_045)
	code := newCodeIDAt(PrefixGallery, at)

	assert.Len(t, code, len(PrefixGallery)+9)
	assert.Equal(t, "GAL123045", code[:9])
}

func TestNewUserCode(t *testing.T) {
	assert.Regexp(t, `^USR\d{2}$`, NewUserCode(2))
	assert.Regexp(t, `^USR\d{5}$`, NewUserCode(5))
	assert.Regexp(t, `^USR\d$`, NewUserCode(0))
}
