package flextab

import "fmt"

// Column is one input column for [New]: a unique key, an optional display
// label, and the body values in row order.
type Column struct {
	Key    string
	Label  string
	Values []string
}

type coord struct{ row, col int }

type cell struct {
	content Content
	style   Style
}

// Table holds an ordered set of columns and three row groups of styled
// cells. All mutation goes through the exported operations; a failed
// operation leaves the table exactly as it was. A Table is not safe for
// concurrent use.
type Table struct {
	keys     []string
	labels   []string
	colIndex map[string]int
	groups   [3][][]cell
	regions  [3][]region
	def      Style
}

// New builds a table from ordered columns. All columns must carry the same
// number of values and distinct non-empty keys; violations return [ErrShape].
// The header group is seeded with one row of column labels (falling back to
// the key when the label is empty) and the footer group starts empty.
// defaults adjusts the immutable table-level default style that every cell
// starts from.
func New(columns []Column, defaults ...StyleOption) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrShape)
	}
	def := DefaultStyle()
	for _, opt := range defaults {
		opt(&def)
	}
	t := &Table{
		keys:     make([]string, len(columns)),
		labels:   make([]string, len(columns)),
		colIndex: make(map[string]int, len(columns)),
		def:      def,
	}
	n := len(columns[0].Values)
	for i, col := range columns {
		if col.Key == "" {
			return nil, fmt.Errorf("%w: empty column key at index %d", ErrShape, i)
		}
		if _, dup := t.colIndex[col.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate column key %q", ErrShape, col.Key)
		}
		if len(col.Values) != n {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrShape, col.Key, len(col.Values), n)
		}
		t.keys[i] = col.Key
		t.labels[i] = col.Label
		if t.labels[i] == "" {
			t.labels[i] = col.Key
		}
		t.colIndex[col.Key] = i
	}

	label := t.newRow()
	for i := range columns {
		label[i].content = Text(t.labels[i])
	}
	t.groups[Header] = append(t.groups[Header], label)

	for r := 0; r < n; r++ {
		row := t.newRow()
		for i, col := range columns {
			row[i].content = Text(col.Values[r])
		}
		t.groups[Body] = append(t.groups[Body], row)
	}
	return t, nil
}

func (t *Table) newRow() []cell {
	row := make([]cell, len(t.keys))
	for i := range row {
		row[i].style = t.def
	}
	return row
}

// Keys returns the ordered column keys. The slice is a copy.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Labels returns the ordered display labels. The slice is a copy.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.keys) }

// NumRows returns the number of rows in a row group, or 0 for an invalid
// group.
func (t *Table) NumRows(g RowGroup) int {
	if g < Body || g > Footer {
		return 0
	}
	return len(t.groups[g])
}

// Default returns the immutable table-level default style.
func (t *Table) Default() Style { return t.def }

// AddHeaderRow appends a row of plain-text cells to the header group.
// One value per column is required; anything else returns [ErrShape].
func (t *Table) AddHeaderRow(values ...string) error {
	return t.addRow(Header, values)
}

// AddFooterRow appends a row of plain-text cells to the footer group.
// One value per column is required; anything else returns [ErrShape].
func (t *Table) AddFooterRow(values ...string) error {
	return t.addRow(Footer, values)
}

func (t *Table) addRow(g RowGroup, values []string) error {
	if len(values) != len(t.keys) {
		return fmt.Errorf("%w: %s row has %d values, want %d", ErrShape, g, len(values), len(t.keys))
	}
	row := t.newRow()
	for i, v := range values {
		row[i].content = Text(v)
	}
	t.groups[g] = append(t.groups[g], row)
	return nil
}

// CellText returns the plain text of one cell, paragraphs joined by
// newlines. Out-of-range coordinates return [ErrSelector]. Hidden cells
// report empty text: their content was discarded by the merge.
func (t *Table) CellText(g RowGroup, row, col int) (string, error) {
	if err := t.checkCoord(g, row, col); err != nil {
		return "", err
	}
	return t.groups[g][row][col].content.String(), nil
}

// CellStyle returns the resolved style record of one cell. Out-of-range
// coordinates return [ErrSelector].
func (t *Table) CellStyle(g RowGroup, row, col int) (Style, error) {
	if err := t.checkCoord(g, row, col); err != nil {
		return Style{}, err
	}
	return t.groups[g][row][col].style, nil
}

func (t *Table) checkCoord(g RowGroup, row, col int) error {
	if g < Body || g > Footer {
		return fmt.Errorf("%w: unknown row group %d", ErrSelector, int(g))
	}
	if row < 0 || row >= len(t.groups[g]) {
		return fmt.Errorf("%w: row %d out of range for %s group", ErrSelector, row, g)
	}
	if col < 0 || col >= len(t.keys) {
		return fmt.Errorf("%w: column %d out of range", ErrSelector, col)
	}
	return nil
}
