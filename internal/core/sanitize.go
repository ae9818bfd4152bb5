// AngelaMos | 2026
// sanitize.go

package core

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips scripts, event handlers and unsafe URLs from rich
// text while keeping ordinary formatting tags.
func SanitizeHTML(s string) string {
	return strings.TrimSpace(htmlPolicy.Sanitize(s))
}
