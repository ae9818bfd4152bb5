// AngelaMos | 2026
// repository_test.go

package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchConditionDeclaresEscape(t *testing.T) {
	cond := searchCondition(3)

	assert.Equal(t, 3, strings.Count(cond, "ILIKE $3 ESCAPE '\\'"))
	assert.NotContains(t, cond, "$4")
}
