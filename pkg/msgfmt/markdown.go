// Package msgfmt turns normalized query results into chat-ready text.
// Everything in here is a pure function.
package msgfmt

import (
	"regexp"
	"strings"
)

var (
	boldRE      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRE    = regexp.MustCompile(`\*(.+?)\*`)
	codeRE      = regexp.MustCompile("`(.+?)`")
	underlineRE = regexp.MustCompile(`__(.+?)__`)
	headingRE   = regexp.MustCompile(`(?m)^#{1,6} `)
)

// CleanupMarkdown strips emphasis markup the generator tends to produce.
// Each rule is a single non-greedy pass in a fixed order: bold, italic,
// inline code, double underscore, then leading heading markers. Nested or
// overlapping markup is not guaranteed to fully resolve.
func CleanupMarkdown(text string) string {
	text = boldRE.ReplaceAllString(text, "$1")
	text = italicRE.ReplaceAllString(text, "$1")
	text = codeRE.ReplaceAllString(text, "$1")
	text = underlineRE.ReplaceAllString(text, "$1")
	text = headingRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
