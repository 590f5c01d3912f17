package flextab

// BorderLine describes one side of a cell border.
// The zero value draws nothing.
type BorderLine struct {
	Style LineStyle `json:"style" yaml:"style"`
	Width float64   `json:"width,omitempty" yaml:"width,omitempty"`
	Color string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Style is the fully resolved visual record of a cell. Cells copy the table
// default at construction; style options overwrite individual fields, so the
// last option to touch a field wins. There is no inheritance between cells.
type Style struct {
	FontFamily string     `json:"font_family" yaml:"font_family"`
	FontSize   float64    `json:"font_size" yaml:"font_size"`
	Bold       bool       `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic     bool       `json:"italic,omitempty" yaml:"italic,omitempty"`
	Color      string     `json:"color" yaml:"color"`
	Background string     `json:"background,omitempty" yaml:"background,omitempty"`
	Align      Alignment  `json:"align" yaml:"align"`
	Padding    float64    `json:"padding" yaml:"padding"`
	Top        BorderLine `json:"top" yaml:"top"`
	Right      BorderLine `json:"right" yaml:"right"`
	Bottom     BorderLine `json:"bottom" yaml:"bottom"`
	Left       BorderLine `json:"left" yaml:"left"`
}

// DefaultStyle returns the style every cell starts from when the table
// carries no explicit default.
func DefaultStyle() Style {
	return Style{
		FontFamily: "sans",
		FontSize:   11,
		Color:      "#000000",
		Align:      AlignLeft,
		Padding:    1,
	}
}

// StyleOption overwrites one or more fields of a cell style.
type StyleOption func(*Style)

// Bold sets the bold flag.
func Bold(b bool) StyleOption { return func(s *Style) { s.Bold = b } }

// Italic sets the italic flag.
func Italic(b bool) StyleOption { return func(s *Style) { s.Italic = b } }

// FontFamily sets the font family name.
func FontFamily(name string) StyleOption { return func(s *Style) { s.FontFamily = name } }

// FontSize sets the font size in points.
func FontSize(pt float64) StyleOption { return func(s *Style) { s.FontSize = pt } }

// TextColor sets the text color.
func TextColor(c string) StyleOption { return func(s *Style) { s.Color = c } }

// Background sets the cell background color.
func Background(c string) StyleOption { return func(s *Style) { s.Background = c } }

// Align sets horizontal alignment.
func Align(a Alignment) StyleOption { return func(s *Style) { s.Align = a } }

// Padding sets the horizontal cell padding in character cells.
func Padding(w float64) StyleOption { return func(s *Style) { s.Padding = w } }

// BorderTop sets the top border line.
func BorderTop(l BorderLine) StyleOption { return func(s *Style) { s.Top = l } }

// BorderRight sets the right border line.
func BorderRight(l BorderLine) StyleOption { return func(s *Style) { s.Right = l } }

// BorderBottom sets the bottom border line.
func BorderBottom(l BorderLine) StyleOption { return func(s *Style) { s.Bottom = l } }

// BorderLeft sets the left border line.
func BorderLeft(l BorderLine) StyleOption { return func(s *Style) { s.Left = l } }

// Borders sets all four border lines at once.
func Borders(l BorderLine) StyleOption {
	return func(s *Style) {
		s.Top, s.Right, s.Bottom, s.Left = l, l, l, l
	}
}

// OuterBorder draws line on the outward-facing sides of the selection:
// each side of a selected cell whose neighbor in that direction is not
// itself selected. Interior sides are left alone. Perimeter detection
// needs the whole resolved selection, so this is a table operation rather
// than a [StyleOption].
func (t *Table) OuterBorder(sel Selection, line BorderLine) error {
	return t.borderPerimeter(sel, line, true)
}

// InnerBorders draws line on the sides between adjacent selected cells,
// leaving the selection's outer edge alone. The counterpart of
// [Table.OuterBorder].
func (t *Table) InnerBorders(sel Selection, line BorderLine) error {
	return t.borderPerimeter(sel, line, false)
}

func (t *Table) borderPerimeter(sel Selection, line BorderLine, outer bool) error {
	coords, err := t.resolve(sel)
	if err != nil {
		return err
	}
	in := make(map[coord]bool, len(coords))
	for _, c := range coords {
		in[c] = true
	}
	for _, c := range coords {
		s := &t.groups[sel.Group][c.row][c.col].style
		if in[coord{row: c.row - 1, col: c.col}] != outer {
			s.Top = line
		}
		if in[coord{row: c.row + 1, col: c.col}] != outer {
			s.Bottom = line
		}
		if in[coord{row: c.row, col: c.col - 1}] != outer {
			s.Left = line
		}
		if in[coord{row: c.row, col: c.col + 1}] != outer {
			s.Right = line
		}
	}
	return nil
}

// Style applies opts to every cell selected by sel. Fields are overwritten
// individually, so applying the same options twice is a no-op the second
// time, and options on disjoint selections commute. An empty selection is a
// no-op. Hidden cells inside merged regions are styled like any other cell;
// their style simply has no visual effect until an Unmerge exposes them.
func (t *Table) Style(sel Selection, opts ...StyleOption) error {
	coords, err := t.resolve(sel)
	if err != nil {
		return err
	}
	for _, c := range coords {
		cell := &t.groups[sel.Group][c.row][c.col]
		for _, opt := range opts {
			opt(&cell.style)
		}
	}
	return nil
}
