package measuretext

import (
	"github.com/cssflow/layout/engine"
)

// TextSource is the one capability measuretext needs beyond a Font: a
// way to read a text node's string content and the Font it should be
// measured with. A Host implementation that wants text layout backed by
// this package satisfies TextSource (in addition to engine.Host) and
// passes itself to New.
type TextSource interface {
	Text(id engine.NodeID) string
	FontFor(id engine.NodeID) *Font
}

// Measurer implements engine.Measurer on top of a TextSource, wrapping
// text the same greedy word-then-grapheme way as the teacher's
// wrapTextScaled (instructions/text_wrap.go), but collapsed to the
// single-line-shrink-wrap contract the engine actually asks a Measurer
// for (spec §4.7/§6 — no multi-pass bidi or justification).
type Measurer struct {
	Source TextSource
}

// New constructs a Measurer reading text/font through source.
func New(source TextSource) *Measurer {
	return &Measurer{Source: source}
}

// Measure implements engine.Measurer.
func (m *Measurer) Measure(id engine.NodeID, req engine.MeasureRequest) engine.Size {
	f := m.Source.FontFor(id)
	text := m.Source.Text(id)
	if f == nil || text == "" {
		return engine.Size{}
	}

	maxWidth := 0.0
	if req.Mode == engine.MeasureAtMost {
		maxWidth = req.Width
	}

	lines := wrapToWidth(f, text, maxWidth)
	width := 0.0
	for _, line := range lines {
		w, _ := f.MeasureString(trimRightSpacesNBSP(line))
		if w > width {
			width = w
		}
	}
	height := float64(len(lines)) * f.LineHeightPx()
	return engine.Size{Width: width, Height: height}
}

// Baseline implements engine.Measurer: the first line's baseline sits
// ascent pixels below the box's top edge.
func (m *Measurer) Baseline(id engine.NodeID, size engine.Size) float64 {
	f := m.Source.FontFor(id)
	if f == nil {
		return 0
	}
	return f.AscentPx()
}
