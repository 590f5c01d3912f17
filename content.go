package flextab

import (
	"fmt"
	"strings"
)

// Image is a placeholder for an inline image inside a cell. The core never
// opens Ref; rendering backends resolve it. Width and Height are in
// character cells so autofit can account for the space the image occupies.
type Image struct {
	Ref    string  `json:"ref" yaml:"ref"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Chunk is one run within a paragraph: either text or an image. Sup marks
// the run as superscript, used for footnote markers.
type Chunk struct {
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Image *Image `json:"image,omitempty" yaml:"image,omitempty"`
	Sup   bool   `json:"sup,omitempty" yaml:"sup,omitempty"`
}

// Paragraph is an ordered sequence of chunks rendered on one line.
type Paragraph struct {
	Chunks []Chunk `json:"chunks" yaml:"chunks"`
}

// Content is the full content of a cell: zero or more paragraphs.
// The zero value is an empty cell.
type Content struct {
	Paragraphs []Paragraph `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
}

// Text returns single-paragraph plain-text content. An empty string yields
// empty content.
func Text(s string) Content {
	if s == "" {
		return Content{}
	}
	return Content{Paragraphs: []Paragraph{{Chunks: []Chunk{{Text: s}}}}}
}

// Empty reports whether the content has no paragraphs.
func (c Content) Empty() bool { return len(c.Paragraphs) == 0 }

// String returns the plain text of the content: chunk texts concatenated,
// paragraphs joined by newlines. Images contribute nothing.
func (c Content) String() string {
	lines := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		var sb strings.Builder
		for _, ch := range p.Chunks {
			sb.WriteString(ch.Text)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// clone deep-copies the paragraph slices so snapshots stay stable while the
// table keeps changing.
func (c Content) clone() Content {
	if len(c.Paragraphs) == 0 {
		return Content{}
	}
	out := Content{Paragraphs: make([]Paragraph, len(c.Paragraphs))}
	for i, p := range c.Paragraphs {
		chunks := make([]Chunk, len(p.Chunks))
		copy(chunks, p.Chunks)
		out.Paragraphs[i] = Paragraph{Chunks: chunks}
	}
	return out
}

// SetContent places the same content in every cell selected by sel.
// Cells hidden by a merged region are skipped silently.
func (t *Table) SetContent(sel Selection, c Content) error {
	coords, err := t.resolve(sel)
	if err != nil {
		return err
	}
	for _, co := range coords {
		if t.isHidden(sel.Group, co.row, co.col) {
			continue
		}
		// Each cell gets its own copy so later per-cell mutation
		// (footnote markers) cannot alias through shared slices.
		t.groups[sel.Group][co.row][co.col].content = c.clone()
	}
	return nil
}

// SetText fills the selected cells in row-major order with plain text,
// recycling texts when the selection is larger. At least one text is
// required; an empty list returns [ErrShape]. Cells hidden by a merged
// region are skipped silently but still consume a value, so visible cells
// keep a stable mapping to the input.
func (t *Table) SetText(sel Selection, texts ...string) error {
	if len(texts) == 0 {
		return fmt.Errorf("%w: no texts given", ErrShape)
	}
	coords, err := t.resolve(sel)
	if err != nil {
		return err
	}
	for i, co := range coords {
		if t.isHidden(sel.Group, co.row, co.col) {
			continue
		}
		t.groups[sel.Group][co.row][co.col].content = Text(texts[i%len(texts)])
	}
	return nil
}

// Footnote appends a superscript marker chunk to every selected cell and
// adds one note row to the footer group: the first column carries the
// marker followed by the note, the remaining columns stay empty. Cells
// hidden by a merged region are skipped silently.
func (t *Table) Footnote(sel Selection, marker string, note Content) error {
	coords, err := t.resolve(sel)
	if err != nil {
		return err
	}
	mark := Chunk{Text: marker, Sup: true}
	for _, co := range coords {
		if t.isHidden(sel.Group, co.row, co.col) {
			continue
		}
		c := &t.groups[sel.Group][co.row][co.col].content
		if c.Empty() {
			c.Paragraphs = []Paragraph{{}}
		}
		last := &c.Paragraphs[len(c.Paragraphs)-1]
		last.Chunks = append(last.Chunks, mark)
	}

	chunks := []Chunk{mark, {Text: " "}}
	for _, p := range note.Paragraphs {
		chunks = append(chunks, p.Chunks...)
	}
	row := t.newRow()
	row[0].content = Content{Paragraphs: []Paragraph{{Chunks: chunks}}}
	t.groups[Footer] = append(t.groups[Footer], row)
	return nil
}
