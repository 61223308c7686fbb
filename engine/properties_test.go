package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssflow/layout/engine"
	"github.com/cssflow/layout/style"
)

// Determinism: two consecutive identical Layout calls return the same
// Result, the second one served from cache.
func TestDeterminism_RepeatedLayoutIsStable(t *testing.T) {
	h := newFakeHost()
	a := h.Add(style.Style{Width: pt(50), Height: pt(50)})
	root := h.Add(style.Style{Width: pt(200), Height: pt(100)}, a)

	d := engine.NewLayoutDriver(h, nil)
	cons := engine.Constraints{AvailableWidth: engine.Indefinite, AvailableHeight: engine.Indefinite}

	first := d.Layout(root, cons, engine.RequestPreferredSize)
	second := d.Layout(root, cons, engine.RequestPreferredSize)
	require.Equal(t, first, second)
}

// Clamping: min wins when min > max, and a mid-range size is left alone.
func TestClamping_MinWinsOverMax(t *testing.T) {
	h := newFakeHost()
	child := h.Add(style.Style{Width: pt(500), MinWidth: pt(300), MaxWidth: pt(100)})
	root := h.Add(style.Style{Width: pt(600)}, child)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 300, sizeOf(d, h, child).Width, 0.01)
}

// Box-sizing duality: a border-box node's outer size already includes
// border and padding, so content = outer - border - padding.
func TestBoxSizingDuality_BorderBoxIncludesBorderAndPadding(t *testing.T) {
	h := newFakeHost()
	node := h.Add(style.Style{
		Width: pt(100), Height: pt(100),
		BoxSizing: style.BoxSizingBorderBox,
		Border:    style.SpacingPt(2),
		Padding:   style.SpacingPt(3),
	})

	d := engine.NewLayoutDriver(h, nil)
	res := d.Layout(node, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.Equal(t, engine.Size{Width: 100, Height: 100}, res.Size)
	require.InDelta(t, 90, res.ContentSize.Width, 0.01)
	require.InDelta(t, 90, res.ContentSize.Height, 0.01)
}

// Cache coherence: invalidating a node forces its next Layout call to
// reflect a style mutation made in between.
func TestDirtyPropagation_InvalidateForcesRecompute(t *testing.T) {
	h := newFakeHost()
	child := h.Add(style.Style{Width: pt(50), Height: pt(50)})
	root := h.Add(style.Style{Width: pt(200), Height: pt(100)}, child)

	d := engine.NewLayoutDriver(h, nil)
	cons := engine.Constraints{AvailableWidth: engine.Indefinite, AvailableHeight: engine.Indefinite}

	d.Layout(root, cons, engine.RequestPreferredSize)
	require.InDelta(t, 50, sizeOf(d, h, child).Width, 0.01)

	h.styles[child] = style.Style{Width: pt(120), Height: pt(50)}
	d.Invalidate(root)
	d.Invalidate(child)

	d.Layout(root, cons, engine.RequestPreferredSize)
	require.InDelta(t, 120, sizeOf(d, h, child).Width, 0.01)
}

// Grid track sum: fr tracks divide whatever space remains after fixed
// tracks and gaps are subtracted, and the resolved track bases plus gaps
// sum exactly to the container's definite inline size.
func TestGridLayout_FrTrackSum(t *testing.T) {
	h := newFakeHost()
	// Explicitly placed in the second column (the first `1fr` track), so
	// its resolved width reflects fr distribution rather than the first
	// fixed(100px) track.
	item := h.Add(style.Style{
		GridColumnStart: style.GridPlacement{Line: 2},
		GridColumnEnd:   style.GridPlacement{Line: 3},
		GridRowStart:    style.GridPlacement{Line: 1},
		GridRowEnd:      style.GridPlacement{Line: 2},
	})
	root := h.Add(style.Style{
		Display: style.DisplayGrid,
		Width:   pt(310),
		GridTemplateColumns: []style.TrackSize{
			style.FixedTrack(pt(100)), style.FrTrack(1), style.FrTrack(2),
		},
		GridTemplateRows: []style.TrackSize{style.FixedTrack(pt(50))},
		ColumnGap:        pt(10),
	}, item)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	// avail for tracks = 310 - 2*10(gap) = 290; fixed track = 100;
	// remaining 190 splits 1:2 -> fr track bases 63.333 / 126.667.
	require.InDelta(t, 63.333, sizeOf(d, h, item).Width, 0.5)
}

// RequestPosition is served from the single position-only cache slot
// (spec §4.3) rather than the general size-result LRU, and still returns
// a coherent Result for a simple block child.
func TestRequestPosition_ServedFromPositionSlot(t *testing.T) {
	h := newFakeHost()
	child := h.Add(style.Style{Width: pt(50), Height: pt(50)})
	root := h.Add(style.Style{Width: pt(200), Height: pt(100)}, child)

	d := engine.NewLayoutDriver(h, nil)
	cons := engine.Constraints{
		AvailableWidth:  engine.Definite(200),
		AvailableHeight: engine.Definite(100),
	}

	first := d.Layout(child, cons, engine.RequestPosition)
	second := d.Layout(child, cons, engine.RequestPosition)
	require.Equal(t, first, second)
	require.Equal(t, engine.Size{Width: 50, Height: 50}, first.Size)
}
