package flextab

import "fmt"

// Span is an inclusive index range.
type Span struct {
	From, To int
}

func (s Span) valid() bool { return s.From >= 0 && s.From <= s.To }

type region struct {
	rows, cols Span
}

func (r region) contains(row, col int) bool {
	return row >= r.rows.From && row <= r.rows.To && col >= r.cols.From && col <= r.cols.To
}

func (r region) intersects(o region) bool {
	return r.rows.From <= o.rows.To && o.rows.From <= r.rows.To &&
		r.cols.From <= o.cols.To && o.cols.From <= r.cols.To
}

// ColumnSpan converts an inclusive key range into a column index [Span], so
// merges can be addressed by key instead of position. Unknown keys return
// [ErrSelector]; a reversed range returns [ErrShape].
func (t *Table) ColumnSpan(from, to string) (Span, error) {
	i, ok := t.colIndex[from]
	if !ok {
		return Span{}, fmt.Errorf("%w: unknown column key %q", ErrSelector, from)
	}
	j, ok := t.colIndex[to]
	if !ok {
		return Span{}, fmt.Errorf("%w: unknown column key %q", ErrSelector, to)
	}
	if j < i {
		return Span{}, fmt.Errorf("%w: column %q precedes %q", ErrShape, to, from)
	}
	return Span{From: i, To: j}, nil
}

// Merge collapses the rectangle rows x cols within one row group into a
// single rendered cell. The top-left cell becomes the content owner; the
// content of every other covered cell is discarded and is not recoverable
// by a later [Table.Unmerge]. A rectangle that touches an existing merged
// region returns [ErrMergeConflict]; out-of-range or reversed spans return
// [ErrSelector] or [ErrShape]. On any error the table is unchanged.
func (t *Table) Merge(g RowGroup, rows, cols Span) error {
	if g < Body || g > Footer {
		return fmt.Errorf("%w: unknown row group %d", ErrSelector, int(g))
	}
	if !rows.valid() || !cols.valid() {
		return fmt.Errorf("%w: reversed or negative span", ErrShape)
	}
	if rows.To >= len(t.groups[g]) {
		return fmt.Errorf("%w: row %d out of range for %s group", ErrSelector, rows.To, g)
	}
	if cols.To >= len(t.keys) {
		return fmt.Errorf("%w: column %d out of range", ErrSelector, cols.To)
	}
	nr := region{rows: rows, cols: cols}
	for _, r := range t.regions[g] {
		if r.intersects(nr) {
			return fmt.Errorf("%w: rows %d-%d cols %d-%d overlap an existing region in %s group",
				ErrMergeConflict, rows.From, rows.To, cols.From, cols.To, g)
		}
	}
	t.regions[g] = append(t.regions[g], nr)
	for r := rows.From; r <= rows.To; r++ {
		for c := cols.From; c <= cols.To; c++ {
			if r == rows.From && c == cols.From {
				continue
			}
			t.groups[g][r][c].content = Content{}
		}
	}
	return nil
}

// Unmerge removes the merged region covering the given coordinate,
// restoring its cells as independent. The covered cells come back empty:
// merging discarded their content. Coordinates not covered by any region
// are a no-op. Out-of-range coordinates return [ErrSelector].
func (t *Table) Unmerge(g RowGroup, row, col int) error {
	if err := t.checkCoord(g, row, col); err != nil {
		return err
	}
	for i, r := range t.regions[g] {
		if r.contains(row, col) {
			t.regions[g] = append(t.regions[g][:i], t.regions[g][i+1:]...)
			return nil
		}
	}
	return nil
}

// IsHidden reports whether the cell at the given coordinate is covered by a
// merged region without being its owner. Out-of-range coordinates return
// [ErrSelector].
func (t *Table) IsHidden(g RowGroup, row, col int) (bool, error) {
	if err := t.checkCoord(g, row, col); err != nil {
		return false, err
	}
	return t.isHidden(g, row, col), nil
}

func (t *Table) isHidden(g RowGroup, row, col int) bool {
	r, ok := t.regionAt(g, row, col)
	return ok && !(row == r.rows.From && col == r.cols.From)
}

func (t *Table) regionAt(g RowGroup, row, col int) (region, bool) {
	for _, r := range t.regions[g] {
		if r.contains(row, col) {
			return r, true
		}
	}
	return region{}, false
}
