package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	got := Fallback("need help moving a couch this weekend", "Service")

	assert.Equal(t, "Service Request", got.Title)
	assert.Equal(t, "need help moving a couch this weekend", got.Description)
	assert.Equal(t, []string{"Service", "New"}, got.Tags)
}

func TestFallbackKeepsRawText(t *testing.T) {
	raw := "  spaced   and unpolished text  "
	got := Fallback(raw, "Bounty")
	assert.Equal(t, raw, got.Description)
}
