package flextab

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// SnapshotColumn is one column of a [Snapshot]: the stable key plus the
// displayed label.
type SnapshotColumn struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// SnapshotCell is a fully resolved cell as a rendering backend sees it.
// Owners of merged regions carry RowSpan/ColSpan greater than one; covered
// cells report Hidden and spans of zero. Plain cells have spans of one.
type SnapshotCell struct {
	Content Content `json:"content" yaml:"content"`
	Style   Style   `json:"style" yaml:"style"`
	Hidden  bool    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	RowSpan int     `json:"row_span" yaml:"row_span"`
	ColSpan int     `json:"col_span" yaml:"col_span"`
}

// Snapshot is a read-only view of a finalized table: ordered columns, the
// three row groups with styles and merges resolved per cell, the table
// default style, and the autofit layout. It shares nothing with the Table
// it was taken from, so backends may hold it while the table keeps
// changing.
type Snapshot struct {
	Columns []SnapshotColumn              `json:"columns" yaml:"columns"`
	Groups  map[RowGroup][][]SnapshotCell `json:"groups" yaml:"groups"`
	Default Style                         `json:"default" yaml:"default"`
	Layout  Layout                        `json:"layout" yaml:"layout"`
}

// Snapshot captures the current table state for rendering backends.
func (t *Table) Snapshot() *Snapshot {
	s := &Snapshot{
		Columns: make([]SnapshotColumn, len(t.keys)),
		Groups:  make(map[RowGroup][][]SnapshotCell, 3),
		Default: t.def,
		Layout:  t.Autofit(),
	}
	for i, key := range t.keys {
		s.Columns[i] = SnapshotColumn{Key: key, Label: t.labels[i]}
	}
	for g := Body; g <= Footer; g++ {
		rows := make([][]SnapshotCell, len(t.groups[g]))
		for ri, row := range t.groups[g] {
			out := make([]SnapshotCell, len(row))
			for ci, c := range row {
				sc := SnapshotCell{
					Content: c.content.clone(),
					Style:   c.style,
					RowSpan: 1,
					ColSpan: 1,
				}
				if r, ok := t.regionAt(g, ri, ci); ok {
					if ri == r.rows.From && ci == r.cols.From {
						sc.RowSpan = r.rows.To - r.rows.From + 1
						sc.ColSpan = r.cols.To - r.cols.From + 1
					} else {
						sc.Hidden = true
						sc.RowSpan, sc.ColSpan = 0, 0
					}
				}
				out[ci] = sc
			}
			rows[ri] = out
		}
		s.Groups[g] = rows
	}
	return s
}

// EncodeJSON writes the snapshot as JSON.
func (s *Snapshot) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}

// EncodeYAML writes the snapshot as YAML.
func (s *Snapshot) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
