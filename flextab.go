package flextab

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrShape         = errors.New("invalid table shape")
	ErrSelector      = errors.New("invalid selection")
	ErrMergeConflict = errors.New("merge conflict")
)

// RowGroup identifies one of the three independent row sequences of a table.
// The zero value is Body, so a zero [Selection] targets body cells.
type RowGroup int

const (
	Body RowGroup = iota
	Header
	Footer
)

var groupNames = [...]string{"body", "header", "footer"}

// String returns the row group name.
func (g RowGroup) String() string {
	if g < Body || g > Footer {
		return "invalid"
	}
	return groupNames[g]
}

// MarshalText encodes the group as its name, so snapshot maps keyed by
// RowGroup read as "header"/"body"/"footer" rather than integers.
func (g RowGroup) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Alignment controls horizontal text alignment within a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

// String returns the alignment name.
func (a Alignment) String() string {
	if a < AlignLeft || a > AlignRight {
		return "invalid"
	}
	return alignNames[a]
}

// MarshalText encodes the alignment as its name.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// LineStyle controls how a border line is drawn.
type LineStyle int

const (
	LineNone LineStyle = iota
	LineSolid
	LineDashed
	LineDotted
)

var lineNames = [...]string{"none", "solid", "dashed", "dotted"}

// String returns the line style name.
func (l LineStyle) String() string {
	if l < LineNone || l > LineDotted {
		return "invalid"
	}
	return lineNames[l]
}

// MarshalText encodes the line style as its name.
func (l LineStyle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
