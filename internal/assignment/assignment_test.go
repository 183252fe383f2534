package assignment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Idempotent(t *testing.T) {
	first := Render()
	second := Render()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestRender_SelfContainedDocument(t *testing.T) {
	doc := Render()

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<style>")
	assert.Contains(t, doc, "</html>")
	assert.NotContains(t, doc, "<link rel=\"stylesheet\"")
}

func TestRender_FixedContent(t *testing.T) {
	doc := Render()

	assert.Contains(t, doc, "Dear Candidate,")
	assert.Contains(t, doc, "View Assignment Document")
	assert.Contains(t, doc, "Submit Assignment")
	assert.Contains(t, doc, "GDGC Team")
}

func TestRender_NoPlaceholders(t *testing.T) {
	doc := Render()

	for _, marker := range []string{"{{", "}}", "%s", "%v", "{email}", "@example.com"} {
		assert.NotContains(t, doc, marker)
	}
}
