package pulse

import (
	"github.com/oliverbestmann/kframe/glm"
)

// advance and line height relative to the glyph height
const (
	glyphAdvance    = 0.6
	glyphLineHeight = 1.6
	glyphTabStop    = 8
)

type TextCommand struct {
	Text  string
	Pos   glm.Vec2f
	Size  float32
	Depth float32
	Color Color
}

// Glyph is a single positioned character of a laid out TextCommand.
type Glyph struct {
	Rune rune
	Rect Rectangle2f
}

type GlyphBuffer struct {
	commands []TextCommand
}

func NewGlyphBuffer() *GlyphBuffer {
	return &GlyphBuffer{}
}

func (g *GlyphBuffer) PushText(text string, pos glm.Vec2f, size, depth float32, color Color) {
	if text == "" {
		return
	}

	g.commands = append(g.commands, TextCommand{
		Text:  text,
		Pos:   pos,
		Size:  size,
		Depth: depth,
		Color: color,
	})
}

func (g *GlyphBuffer) Commands() []TextCommand {
	return g.commands
}

func (g *GlyphBuffer) Len() int {
	return len(g.commands)
}

// Layout places every visible character of the command using a fixed
// advance per character. Whitespace and control characters move the pen
// but produce no glyph.
func (cmd TextCommand) Layout() []Glyph {
	var glyphs []Glyph

	advance := cmd.Size * glyphAdvance
	tabWidth := advance * glyphTabStop

	posX, posY := cmd.Pos.XY()
	baseX := posX

	for _, ch := range cmd.Text {
		switch {
		case ch == ' ':
			posX += advance
			continue

		case ch == '\t':
			col := int((posX-baseX)/tabWidth) + 1
			posX = baseX + float32(col)*tabWidth
			continue

		case ch == '\n':
			posX = baseX
			posY += cmd.Size * glyphLineHeight
			continue

		case ch < 32:
			continue
		}

		glyphs = append(glyphs, Glyph{
			Rune: ch,
			Rect: RectangleFromXYWH(posX, posY, advance, cmd.Size),
		})

		posX += advance
	}

	return glyphs
}
