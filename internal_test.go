package flextab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionIntersects(t *testing.T) {
	t.Parallel()
	a := region{rows: Span{From: 0, To: 1}, cols: Span{From: 0, To: 1}}
	tests := map[string]struct {
		b    region
		want bool
	}{
		"identical":    {b: a, want: true},
		"corner touch": {b: region{rows: Span{From: 1, To: 2}, cols: Span{From: 1, To: 2}}, want: true},
		"right of":     {b: region{rows: Span{From: 0, To: 1}, cols: Span{From: 2, To: 3}}, want: false},
		"below":        {b: region{rows: Span{From: 2, To: 3}, cols: Span{From: 0, To: 1}}, want: false},
		"contained":    {b: region{rows: Span{From: 0, To: 0}, cols: Span{From: 1, To: 1}}, want: true},
		"surrounds":    {b: region{rows: Span{From: 0, To: 9}, cols: Span{From: 0, To: 9}}, want: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, a.intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.intersects(a))
		})
	}
}

func TestRegionContains(t *testing.T) {
	t.Parallel()
	r := region{rows: Span{From: 1, To: 2}, cols: Span{From: 0, To: 1}}
	assert.True(t, r.contains(1, 0))
	assert.True(t, r.contains(2, 1))
	assert.False(t, r.contains(0, 0))
	assert.False(t, r.contains(1, 2))
}

func TestContentCloneNoAliasing(t *testing.T) {
	t.Parallel()
	orig := Text("a")
	cp := orig.clone()
	cp.Paragraphs[0].Chunks[0].Text = "b"
	assert.Equal(t, "a", orig.String())
	assert.Equal(t, "b", cp.String())
}

func TestCellWidthWideChars(t *testing.T) {
	t.Parallel()
	tbl, err := New([]Column{{Key: "a", Values: []string{"你好"}}})
	assert.NoError(t, err)
	c := &tbl.groups[Body][0][0]
	// Two full-width characters are four cells, plus padding.
	assert.InDelta(t, 6, tbl.cellWidth(c), 0.001)
}

func TestFontScaleGuards(t *testing.T) {
	t.Parallel()
	tbl, err := New([]Column{{Key: "a", Values: []string{"x"}}})
	assert.NoError(t, err)
	s := Style{FontSize: 0}
	// A zero font size falls back to scale 1 instead of collapsing widths.
	assert.InDelta(t, 1, tbl.fontScale(&s), 0.001)
}
