package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plain(t *testing.T) {
	t.Helper()
	prev := IsTTY
	IsTTY = false
	t.Cleanup(func() { IsTTY = prev })
}

func TestStatusLines_Plain(t *testing.T) {
	plain(t)

	assert.Equal(t, "  OK: done", SuccessLine("done"))
	assert.Equal(t, "  ERROR: boom", ErrorLine("boom"))
	assert.Equal(t, "  WARN: careful", WarningLine("careful"))
	assert.Equal(t, "  note", InfoLine("note"))
	assert.Equal(t, "=== Folders ===", SectionHeader("Folders"))
	assert.Equal(t, "\n", PageFooter())
}

func TestBadges_Plain(t *testing.T) {
	plain(t)

	assert.Equal(t, "[OK]", PresentBadge())
	assert.Equal(t, "[NEW]", MissingBadge())
	assert.Equal(t, "[DEL]", ExtraBadge())
	assert.Equal(t, "ATELIER", Logo())
	assert.Equal(t, "text", RenderHighlight("text"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "abcdef", Truncate("abcdef", 2))
}
