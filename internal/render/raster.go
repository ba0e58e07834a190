package render

import (
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"
)

type Cell struct {
	Ch rune
	Fg color.RGBA
	Bg color.RGBA
}

// Grid is a character-cell rendering of a Scene, row-major.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

func (g Grid) At(col, row int) Cell {
	return g.Cells[row*g.Cols+col]
}

func (g Grid) set(col, row int, c Cell) {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return
	}
	g.Cells[row*g.Cols+col] = c
}

func (g Grid) cell(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return Cell{}, false
	}
	return g.Cells[row*g.Cols+col], true
}

// Rasterize scales the scene down to cols x rows character cells. Every
// rect covers at least one cell so bullets stay visible on small terminals.
func Rasterize(sc Scene, cols, rows int) Grid {
	if cols <= 0 || rows <= 0 || sc.Width <= 0 || sc.Height <= 0 {
		return Grid{}
	}

	g := Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range g.Cells {
		g.Cells[i] = Cell{Ch: ' ', Fg: ColorWhite, Bg: sc.Background}
	}

	sx := float64(cols) / float64(sc.Width)
	sy := float64(rows) / float64(sc.Height)

	for _, op := range sc.Rects {
		x0, x1 := span(op.Rect.X, op.Rect.W, sx)
		y0, y1 := span(op.Rect.Y, op.Rect.H, sy)
		border := op.StrokeWidth > 0

		for row := y0; row < y1; row++ {
			for col := x0; col < x1; col++ {
				bg := op.Fill
				if border && (row == y0 || row == y1-1 || col == x0 || col == x1-1) {
					bg = op.Stroke
				}
				g.set(col, row, Cell{Ch: ' ', Fg: ColorWhite, Bg: bg})
			}
		}
	}

	for _, op := range sc.Texts {
		col, row := anchor(op, sx, sy)
		if op.Shadow != nil {
			scol, srow := anchor(TextOp{
				Text:     op.Text,
				X:        op.X + ShadowOffset,
				Y:        op.Y + ShadowOffset,
				Centered: op.Centered,
			}, sx, sy)
			// A shadow that lands on the same cells would just hide the text.
			if scol != col || srow != row {
				g.writeText(scol, srow, op.Text, *op.Shadow)
			}
		}
		g.writeText(col, row, op.Text, op.Color)
	}

	return g
}

func (g Grid) writeText(col, row int, text string, fg color.RGBA) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if existing, ok := g.cell(col, row); ok {
			g.set(col, row, Cell{Ch: r, Fg: fg, Bg: existing.Bg})
		}
		col += w
	}
}

func anchor(op TextOp, sx, sy float64) (int, int) {
	col := int(math.Round(op.X * sx))
	row := int(math.Round(op.Y * sy))
	if op.Centered {
		col -= runewidth.StringWidth(op.Text) / 2
	}
	return col, row
}

// span converts a pixel interval to a half-open cell interval that is never
// empty.
func span(pos, size, scale float64) (int, int) {
	a := int(math.Round(pos * scale))
	b := int(math.Round((pos + size) * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}
