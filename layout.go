package flextab

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout is the result of [Table.Autofit]: one width per column and one
// height per row in each group. Units are character cells relative to the
// table default font size; backends multiply by their own glyph metrics.
type Layout struct {
	ColumnWidths []float64              `json:"column_widths" yaml:"column_widths"`
	RowHeights   map[RowGroup][]float64 `json:"row_heights" yaml:"row_heights"`
}

// Autofit computes column widths and row heights from content and style
// alone. A cell's width is the display width of its widest paragraph line
// (or inline image), scaled by its font size relative to the table default,
// plus padding on both sides. Cells hidden by a merged region contribute
// nothing, and an owner cell spanning several columns contributes to no
// column width (analogously for row heights), matching how spreadsheet
// autofit treats merged spans. The result depends only on the table state,
// so repeated calls agree.
func (t *Table) Autofit() Layout {
	l := Layout{
		ColumnWidths: make([]float64, len(t.keys)),
		RowHeights:   make(map[RowGroup][]float64, 3),
	}
	for g := Body; g <= Footer; g++ {
		heights := make([]float64, len(t.groups[g]))
		for ri, row := range t.groups[g] {
			for ci := range row {
				if t.isHidden(g, ri, ci) {
					continue
				}
				colSpan, rowSpan := 1, 1
				if r, ok := t.regionAt(g, ri, ci); ok {
					colSpan = r.cols.To - r.cols.From + 1
					rowSpan = r.rows.To - r.rows.From + 1
				}
				c := &row[ci]
				if colSpan == 1 {
					if w := t.cellWidth(c); w > l.ColumnWidths[ci] {
						l.ColumnWidths[ci] = w
					}
				}
				if rowSpan == 1 {
					if h := t.cellHeight(c); h > heights[ri] {
						heights[ri] = h
					}
				}
			}
		}
		l.RowHeights[g] = heights
	}
	return l
}

func (t *Table) fontScale(s *Style) float64 {
	if s.FontSize <= 0 || t.def.FontSize <= 0 {
		return 1
	}
	return s.FontSize / t.def.FontSize
}

func (t *Table) cellWidth(c *cell) float64 {
	var max float64
	for _, p := range c.content.Paragraphs {
		var sb strings.Builder
		var images float64
		for _, ch := range p.Chunks {
			if ch.Image != nil {
				images += ch.Image.Width
				continue
			}
			sb.WriteString(ch.Text)
		}
		// Chunks may carry embedded newlines; only the widest visual
		// line matters.
		var text float64
		for _, part := range strings.Split(sb.String(), "\n") {
			if w := float64(runewidth.StringWidth(part)); w > text {
				text = w
			}
		}
		if line := text + images; line > max {
			max = line
		}
	}
	return max*t.fontScale(&c.style) + 2*c.style.Padding
}

func (t *Table) cellHeight(c *cell) float64 {
	lines := 0
	for _, p := range c.content.Paragraphs {
		lines++
		for _, ch := range p.Chunks {
			lines += strings.Count(ch.Text, "\n")
		}
	}
	if lines == 0 {
		lines = 1
	}
	h := float64(lines) * t.fontScale(&c.style)
	for _, p := range c.content.Paragraphs {
		for _, ch := range p.Chunks {
			if ch.Image != nil && ch.Image.Height > h {
				h = ch.Image.Height
			}
		}
	}
	return h
}
