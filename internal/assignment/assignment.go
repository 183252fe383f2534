// Package assignment holds the first-round assignment email sent to candidates.
//
// The document is a static asset: every recipient, including test sends,
// receives byte-identical content.
package assignment

import _ "embed"

//go:embed assignment.html
var document string

// Render returns the assignment email as a self-contained HTML document.
func Render() string {
	return document
}
