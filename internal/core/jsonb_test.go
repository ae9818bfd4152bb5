// AngelaMos | 2026
// jsonb_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBScan(t *testing.T) {
	var j JSONB[[]Asset]
	require.NoError(t, j.Scan([]byte(`[{"url":"u","public_id":"p"}]`)))
	assert.Equal(t, []Asset{{URL: "u", PublicID: "p"}}, j.V)

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j.V)

	assert.Error(t, j.Scan(42))
	assert.Error(t, j.Scan("{not json"))
}

func TestJSONBValue(t *testing.T) {
	v, err := NewJSONB(map[string]int{"a": 1}).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)
}

func TestSanitizeHTML(t *testing.T) {
	got := SanitizeHTML(`  <p onclick="x()">Hi <b>there</b></p><script>alert(1)</script> `)
	assert.Equal(t, `<p>Hi <b>there</b></p>`, got)
}

func TestSetIf(t *testing.T) {
	dst := "keep"
	SetIf(&dst, nil)
	assert.Equal(t, "keep", dst)

	next := "replace"
	SetIf(&dst, &next)
	assert.Equal(t, "replace", dst)
}
