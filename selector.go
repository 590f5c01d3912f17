package flextab

import "fmt"

// Selection addresses a set of cells: a row group, a row selector, and a
// column selector. Nil selectors mean "all". The zero value
// selects every body cell.
type Selection struct {
	Group RowGroup
	Rows  RowSelector
	Cols  ColumnSelector
}

// RowSelector picks rows within one row group. Implementations are
// [AllRows], [Rows], and [RowsWhere]; the set is closed so selections
// resolve to concrete coordinates exactly once, before any mutation.
type RowSelector interface {
	resolveRows(t *Table, g RowGroup) ([]int, error)
}

// ColumnSelector picks columns by key. Implementations are [AllColumns],
// [Columns], and [ColumnsWhere].
type ColumnSelector interface {
	resolveCols(t *Table) ([]int, error)
}

// --- Row selectors ---

type allRows struct{}

// AllRows selects every row of the group. Equivalent to a nil Rows field.
func AllRows() RowSelector { return allRows{} }

func (allRows) resolveRows(t *Table, g RowGroup) ([]int, error) {
	out := make([]int, len(t.groups[g]))
	for i := range out {
		out[i] = i
	}
	return out, nil
}

type rowList []int

// Rows selects rows by zero-based index, in the given order.
func Rows(indexes ...int) RowSelector { return rowList(indexes) }

func (l rowList) resolveRows(t *Table, g RowGroup) ([]int, error) {
	out := make([]int, 0, len(l))
	for _, i := range l {
		if i < 0 || i >= len(t.groups[g]) {
			return nil, fmt.Errorf("%w: row %d out of range for %s group", ErrSelector, i, g)
		}
		out = append(out, i)
	}
	return out, nil
}

type rowFunc func(RowData) bool

// RowsWhere selects the rows for which pred returns true. The predicate
// reads cell values through [RowData]; referencing an unknown column key
// fails the whole selection with [ErrSelector].
func RowsWhere(pred func(RowData) bool) RowSelector { return rowFunc(pred) }

func (f rowFunc) resolveRows(t *Table, g RowGroup) ([]int, error) {
	var out []int
	for i := range t.groups[g] {
		var badKey string
		rd := RowData{t: t, g: g, row: i, badKey: &badKey}
		keep := f(rd)
		if badKey != "" {
			return nil, fmt.Errorf("%w: unknown column key %q", ErrSelector, badKey)
		}
		if keep {
			out = append(out, i)
		}
	}
	return out, nil
}

// RowData gives a row predicate read access to one row.
type RowData struct {
	t      *Table
	g      RowGroup
	row    int
	badKey *string
}

// Index returns the zero-based row index within its group.
func (r RowData) Index() int { return r.row }

// Col returns the plain text of the cell in the named column. An unknown
// key returns "" and fails the enclosing selection with [ErrSelector] once
// the predicate returns.
func (r RowData) Col(key string) string {
	i, ok := r.t.colIndex[key]
	if !ok {
		*r.badKey = key
		return ""
	}
	return r.t.groups[r.g][r.row][i].content.String()
}

// --- Column selectors ---

type allCols struct{}

// AllColumns selects every column. Equivalent to a nil Cols field.
func AllColumns() ColumnSelector { return allCols{} }

func (allCols) resolveCols(t *Table) ([]int, error) {
	out := make([]int, len(t.keys))
	for i := range out {
		out[i] = i
	}
	return out, nil
}

type colList []string

// Columns selects columns by key, in the given order.
func Columns(keys ...string) ColumnSelector { return colList(keys) }

func (l colList) resolveCols(t *Table) ([]int, error) {
	out := make([]int, 0, len(l))
	for _, key := range l {
		i, ok := t.colIndex[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown column key %q", ErrSelector, key)
		}
		out = append(out, i)
	}
	return out, nil
}

type colFunc func(string) bool

// ColumnsWhere selects the columns whose key satisfies pred, in table
// order.
func ColumnsWhere(pred func(key string) bool) ColumnSelector { return colFunc(pred) }

func (f colFunc) resolveCols(t *Table) ([]int, error) {
	var out []int
	for i, key := range t.keys {
		if f(key) {
			out = append(out, i)
		}
	}
	return out, nil
}

// resolve expands sel into concrete coordinates, row-major. Resolution
// happens in full before any mutation, so an invalid selection never leaves
// a half-applied operation behind.
func (t *Table) resolve(sel Selection) ([]coord, error) {
	if sel.Group < Body || sel.Group > Footer {
		return nil, fmt.Errorf("%w: unknown row group %d", ErrSelector, int(sel.Group))
	}
	rows := sel.Rows
	if rows == nil {
		rows = AllRows()
	}
	cols := sel.Cols
	if cols == nil {
		cols = AllColumns()
	}
	ri, err := rows.resolveRows(t, sel.Group)
	if err != nil {
		return nil, err
	}
	ci, err := cols.resolveCols(t)
	if err != nil {
		return nil, err
	}
	out := make([]coord, 0, len(ri)*len(ci))
	for _, r := range ri {
		for _, c := range ci {
			out = append(out, coord{row: r, col: c})
		}
	}
	return out, nil
}
