// Package preview renders the static matrix-rain sample shown next to the
// theme list.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rlr-github/rory-themes/internal/catalog"
)

// The pattern is defined over a pixel-like coordinate space: slot i, j has
// its origin at (originX + stepX*i, originY + stepY*j).
const (
	originX = 20
	stepX   = 30
	originY = 50
	stepY   = 20

	// slotWidth is the number of terminal cells per horizontal step; wide
	// emoji glyphs take two of them.
	slotWidth = 3
	// HeaderRows are the title line and the blank line below it.
	HeaderRows = 2
)

// Cell is one glyph placed on the grid.
type Cell struct {
	Row   int
	Col   int
	Glyph string
	Width int
	Color string
}

// Grid is a rendered preview, independent of any terminal styling.
type Grid struct {
	Cols       int
	Rows       int
	Title      string
	TitleColor string
	Background string
	// Cells are ordered by row, then column.
	Cells []Cell
}

// Visible reports whether the slot with origin (x, y) carries a glyph.
func Visible(x, y int) bool {
	return (x+y)%40 < 20
}

// GlyphAt returns the glyph drawn at (x, y): the theme icon or "0".
func GlyphAt(icon string, x, y int) string {
	if (x+y)%60 < 30 {
		return icon
	}
	return "0"
}

// ColorAt returns the primary colour or the secondary one for (x, y).
func ColorAt(c catalog.Colors, x, y int) string {
	if (x+y)%80 < 40 {
		return c.Primary
	}
	return c.Secondary
}

// Title returns the heading line for d.
func Title(d catalog.ThemeDescriptor) string {
	return d.Icon + " " + d.Name + " Theme"
}

// Render lays out the preview for d on a cols x rows area.
func Render(d catalog.ThemeDescriptor, cols, rows int) Grid {
	g := Grid{
		Cols:       max(cols, 0),
		Rows:       max(rows, 0),
		Title:      Title(d),
		TitleColor: d.Colors.Primary,
		Background: d.Colors.Background,
	}

	for j := 0; HeaderRows+j < g.Rows; j++ {
		y := originY + stepY*j
		for i := 0; ; i++ {
			col := 1 + slotWidth*i
			if col >= g.Cols {
				break
			}
			x := originX + stepX*i
			if !Visible(x, y) {
				continue
			}
			glyph := GlyphAt(d.Icon, x, y)
			w := runewidth.StringWidth(glyph)
			if col+w > g.Cols {
				continue
			}
			g.Cells = append(g.Cells, Cell{
				Row:   HeaderRows + j,
				Col:   col,
				Glyph: glyph,
				Width: w,
				Color: ColorAt(d.Colors, x, y),
			})
		}
	}
	return g
}

// painter renders one run of text. An empty color means background only.
type painter func(text, color string, bold bool) string

// Lines returns the grid as unstyled text, one entry per row, each padded
// to the grid width.
func (g Grid) Lines() []string {
	return g.lines(func(text, _ string, _ bool) string { return text })
}

// Paint renders the grid with lipgloss: glyphs in their colours and the
// whole area filled with the background colour.
func (g Grid) Paint() string {
	base := lipgloss.NewStyle()
	if g.Background != "" {
		base = base.Background(lipgloss.Color(g.Background))
	}
	return strings.Join(g.lines(func(text, color string, bold bool) string {
		s := base
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		if bold {
			s = s.Bold(true)
		}
		return s.Render(text)
	}), "\n")
}

func (g Grid) lines(paint painter) []string {
	out := make([]string, 0, g.Rows)
	next := 0
	for r := 0; r < g.Rows; r++ {
		var b strings.Builder
		pos := 0
		fill := func(to int) {
			if to > pos {
				b.WriteString(paint(strings.Repeat(" ", to-pos), "", false))
				pos = to
			}
		}

		if r == 0 {
			title := runewidth.Truncate(g.Title, g.Cols, "")
			w := runewidth.StringWidth(title)
			fill((g.Cols - w) / 2)
			if title != "" {
				b.WriteString(paint(title, g.TitleColor, true))
				pos += w
			}
		}

		for next < len(g.Cells) && g.Cells[next].Row == r {
			c := g.Cells[next]
			fill(c.Col)
			b.WriteString(paint(c.Glyph, c.Color, false))
			pos += c.Width
			next++
		}

		fill(g.Cols)
		out = append(out, b.String())
	}
	return out
}
