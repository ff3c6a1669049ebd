package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict rejects every tag and attribute; only text survives.
var strict = bluemonday.StrictPolicy()

// SanitizeText strips all markup from free-text input before storage.
// Calling it on an already-clean string returns the string unchanged.
func SanitizeText(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
