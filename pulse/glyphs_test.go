package pulse

import (
	"testing"

	"github.com/oliverbestmann/kframe/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphBuffer_IgnoresEmptyText(t *testing.T) {
	g := NewGlyphBuffer()
	g.PushText("", glm.Vec2f{}, 1, 0, ColorWhite)

	assert.Equal(t, 0, g.Len())
}

func TestTextCommand_Layout(t *testing.T) {
	cmd := TextCommand{Text: "ab c\nd", Pos: glm.Vec2f{1, 2}, Size: 10}

	glyphs := cmd.Layout()
	require.Len(t, glyphs, 4)

	assert.Equal(t, 'a', glyphs[0].Rune)
	assert.Equal(t, glm.Vec2f{1, 2}, glyphs[0].Rect.Min)

	assert.Equal(t, 'b', glyphs[1].Rune)
	assert.InDelta(t, 7, glyphs[1].Rect.Min[0], 1e-4)

	// the space advances the pen without producing a glyph
	assert.Equal(t, 'c', glyphs[2].Rune)
	assert.InDelta(t, 19, glyphs[2].Rect.Min[0], 1e-4)

	// newline resets x and moves down one line
	assert.Equal(t, 'd', glyphs[3].Rune)
	assert.InDelta(t, 1, glyphs[3].Rect.Min[0], 1e-4)
	assert.InDelta(t, 18, glyphs[3].Rect.Min[1], 1e-4)
}

func TestTextCommand_LayoutTab(t *testing.T) {
	cmd := TextCommand{Text: "a\tb", Size: 10}

	glyphs := cmd.Layout()
	require.Len(t, glyphs, 2)

	// a tab stop is eight advances wide
	assert.InDelta(t, 48, glyphs[1].Rect.Min[0], 1e-4)
}
