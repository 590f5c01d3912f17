// Package flextab models styled tables in memory: three row groups (header,
// body, footer), selector-addressed styling, cell merging, and autofit
// layout. It renders nothing itself; rendering backends consume a
// [Snapshot] of the finished table.
//
// # Building a Table
//
// A table is built from ordered columns, each with a stable key, an
// optional display label, and its body values:
//
//	t, err := flextab.New([]flextab.Column{
//		{Key: "name", Label: "Name", Values: []string{"Alice", "Bob"}},
//		{Key: "age", Values: []string{"30", "25"}},
//	})
//
// Construction seeds the header group with one row of labels. All columns
// must be the same length and keys must be unique; violations return
// [ErrShape]. Extra rows go in with [Table.AddHeaderRow] and
// [Table.AddFooterRow].
//
// # Selections
//
// Every styling and content operation addresses cells through a
// [Selection]: a row group plus row and column selectors. Selectors form a
// small closed set — [AllRows], [Rows], [RowsWhere] and [AllColumns],
// [Columns], [ColumnsWhere] — and resolve to concrete coordinates exactly
// once, before anything is mutated. Nil selectors mean "all", so the zero
// Selection is every body cell:
//
//	t.Style(flextab.Selection{}, flextab.Bold(true))
//	t.Style(flextab.Selection{
//		Rows: flextab.RowsWhere(func(r flextab.RowData) bool { return r.Col("age") > "28" }),
//		Cols: flextab.Columns("age"),
//	}, flextab.Background("#fde9e9"))
//
// Unknown column keys — in a [Columns] list or touched by a [RowsWhere]
// predicate — fail the whole operation with [ErrSelector] and leave the
// table untouched.
//
// # Styling
//
// Cells copy the immutable table default style at construction; there is
// no inheritance between neighbors. [StyleOption] funcs such as [Bold],
// [Background], [FontSize], and [BorderTop] overwrite single fields, so
// for overlapping selections the last write to a field wins, applying the
// same options twice changes nothing, and options on disjoint selections
// commute. An empty selection is a no-op, not an error.
//
// Two border helpers work on the selection as a whole rather than per
// cell: [Table.OuterBorder] draws a line along the selection's outward
// edge and [Table.InnerBorders] along the sides between adjacent selected
// cells.
//
// # Merging
//
// [Table.Merge] collapses a rectangle within one row group into a single
// rendered cell. The top-left cell owns the content; the rest are hidden
// and their content is discarded. Rectangles overlapping an existing
// region return [ErrMergeConflict] with the table unchanged.
// [Table.Unmerge] removes a region, restoring independent (now empty)
// covered cells — the discarded content does not come back.
//
// Hidden cells accept style deltas like any other cell (harmless until an
// Unmerge exposes them) and silently ignore content writes.
//
// # Content and Footnotes
//
// Cell content is zero or more paragraphs of chunks; a chunk is a text run
// or an inline [Image] placeholder. [Table.SetText] fills a selection
// row-major, recycling values; [Table.SetContent] places rich content; and
// [Table.Footnote] appends a superscript marker to the selected cells plus
// a note row in the footer group.
//
// # Layout
//
// [Table.Autofit] computes per-column widths and per-row heights from
// content and style only, in character cells relative to the default font
// size. Merged owners spanning several columns contribute to no column
// width (and analogously for rows); hidden cells contribute nothing. The
// result is deterministic for a given table state.
//
// # Snapshots
//
// [Table.Snapshot] produces a deep, read-only view — ordered columns,
// resolved per-cell style and merge information, the default style, and
// the autofit layout — that backends turn into HTML, Word, PDF, or
// anything else. [Snapshot.EncodeJSON] and [Snapshot.EncodeYAML] serialize
// it for out-of-process consumers.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrShape] — bad construction input or row arity
//   - [ErrSelector] — unknown column key, row group, or out-of-range index
//   - [ErrMergeConflict] — merge rectangle overlaps an existing region
//
// Every operation either applies fully or returns an error with the table
// in its prior state.
//
// # Concurrency
//
// A [Table] is a plain in-memory value with no hidden state. Operations
// are synchronous and non-blocking; concurrent use of one Table requires
// external serialization.
package flextab
