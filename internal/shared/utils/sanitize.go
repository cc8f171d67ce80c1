package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML from user-supplied free text. Ticket notes
// and chat messages are rendered verbatim by the frontend.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes any HTML markup from free-text input.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
