// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe HTML from user-supplied rich text before
// it is stored. Descriptions, impact notes, and tip content come straight
// from clients and are later rendered by web frontends we do not control.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows common user-generated-content formatting (paragraphs,
// emphasis, lists, safe links) and removes scripts, event handlers, and
// javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
