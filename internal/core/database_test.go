// AngelaMos | 2026
// database_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a_b", `a\_b`},
		{"50%", `50\%`},
		{`c:\dir`, `c:\\dir`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLike(tt.in))
		})
	}
}
