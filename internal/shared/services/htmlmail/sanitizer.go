// Package htmlmail sanitizes HTML email bodies before they are stored or rendered.
package htmlmail

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from inbound HTML email content.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a sanitizer with a UGC policy suitable for
// user-submitted email bodies. Images keep their src so inline
// screenshots in support emails survive.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowImages()
	policy.AllowAttrs("style").OnElements("span", "p", "div", "td", "th", "table")
	return &Sanitizer{policy: policy}
}

// Sanitize returns a safe version of the given HTML fragment.
func (s *Sanitizer) Sanitize(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
