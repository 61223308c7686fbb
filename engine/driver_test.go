package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssflow/layout/engine"
	"github.com/cssflow/layout/style"
)

func pt(v float64) style.Length { return style.Pt(v) }

// Scenario 1: two block children, vertical stacking.
func TestBlockLayout_TwoChildrenStackVertically(t *testing.T) {
	h := newFakeHost()
	a := h.Add(style.Style{Width: pt(100), Height: pt(50)})
	b := h.Add(style.Style{Width: pt(100), Height: pt(50)})
	root := h.Add(style.Style{Width: pt(200), Height: pt(100)}, a, b)

	d := engine.NewLayoutDriver(h, nil)
	res := d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.Equal(t, engine.Size{Width: 200, Height: 100}, res.Size)
	require.Equal(t, engine.Point{X: 0, Y: 0}, d.Origin(a))
	require.Equal(t, engine.Point{X: 0, Y: 50}, d.Origin(b))
}

// Scenario 2: flex row, flex-grow distribution.
func TestFlexLayout_GrowDistribution(t *testing.T) {
	h := newFakeHost()
	x := h.Add(style.Style{Height: pt(50), FlexGrow: 1})
	y := h.Add(style.Style{Height: pt(50), FlexGrow: 2})
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(300)}, x, y)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 100, sizeOf(d, h, x).Width, 0.01)
	require.InDelta(t, 200, sizeOf(d, h, y).Width, 0.01)
	require.InDelta(t, 0, d.Origin(x).X, 0.01)
	require.InDelta(t, 100, d.Origin(y).X, 0.01)
}

// Scenario 3: flex shrink with nowrap.
func TestFlexLayout_ShrinkNoWrap(t *testing.T) {
	h := newFakeHost()
	mk := func() engine.NodeID {
		return h.Add(style.Style{Width: pt(100), Height: pt(50), FlexShrink: 1})
	}
	a, b, c := mk(), mk(), mk()
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(200), FlexWrap: style.FlexNoWrap}, a, b, c)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	total := sizeOf(d, h, a).Width + sizeOf(d, h, b).Width + sizeOf(d, h, c).Width
	require.InDelta(t, 200, total, 0.01)
	require.InDelta(t, 66.667, sizeOf(d, h, a).Width, 0.1)
}

// Scenario 4: absolute fill.
func TestAbsPosLayout_Fill(t *testing.T) {
	h := newFakeHost()
	zero := style.Pt(0)
	abs := h.Add(style.Style{
		Position: style.PositionAbsolute,
		Inset:    style.Inset{Top: zero, Right: zero, Bottom: zero, Left: zero},
	})
	parent := h.Add(style.Style{Width: pt(100), Height: pt(200), Position: style.PositionRelative}, abs)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(parent, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.Equal(t, engine.Size{Width: 100, Height: 200}, sizeOf(d, h, abs))
	require.Equal(t, engine.Point{X: 0, Y: 0}, d.Origin(abs))
}

// Scenario 5: 3x3 grid with fixed tracks.
func TestGridLayout_FixedTracksAutoPlacement(t *testing.T) {
	h := newFakeHost()
	var items []engine.NodeID
	for i := 0; i < 9; i++ {
		items = append(items, h.Add(style.Style{
			GridColumnStart: style.AutoPlacement,
			GridColumnEnd:   style.AutoPlacement,
			GridRowStart:    style.AutoPlacement,
			GridRowEnd:      style.AutoPlacement,
		}))
	}
	root := h.Add(style.Style{
		Display:             style.DisplayGrid,
		GridTemplateColumns: []style.TrackSize{style.FixedTrack(pt(100)), style.FixedTrack(pt(100)), style.FixedTrack(pt(100))},
		GridTemplateRows:    []style.TrackSize{style.FixedTrack(pt(50)), style.FixedTrack(pt(50)), style.FixedTrack(pt(50))},
	}, items...)

	d := engine.NewLayoutDriver(h, nil)
	res := d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.Equal(t, engine.Size{Width: 300, Height: 150}, res.Size)
	for i, id := range items {
		row, col := i/3, i%3
		want := engine.Point{X: float64(100 * col), Y: float64(50 * row)}
		require.Equal(t, want, d.Origin(id), "item %d", i)
		require.Equal(t, engine.Size{Width: 100, Height: 50}, sizeOf(d, h, id), "item %d", i)
	}
}

// Scenario 6: fixed 10px gap + flex-grow with min-width floors.
func TestFlexLayout_GapAndMinWidthFloor(t *testing.T) {
	h := newFakeHost()
	gap := pt(10)
	a := h.Add(style.Style{Height: pt(50), FlexGrow: 1, MinWidth: pt(20)})
	b := h.Add(style.Style{Height: pt(50), FlexGrow: 1, MinWidth: pt(20)})
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(200), ColumnGap: gap, RowGap: gap}, a, b)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 95, sizeOf(d, h, a).Width, 0.01)
	require.InDelta(t, 95, sizeOf(d, h, b).Width, 0.01)
	require.InDelta(t, 0, d.Origin(a).X, 0.01)
	require.InDelta(t, 105, d.Origin(b).X, 0.01)
}

// sizeOf reads back id's last-placed Result.Size, recorded by its
// parent's layout algorithm during the Layout call above.
func sizeOf(d *engine.LayoutDriver, h *fakeHost, id engine.NodeID) engine.Size {
	return d.Result(id).Size
}

// Flex items are reordered by style.Order, not document order (spec
// §4.5 step 1), with ties broken by document order.
func TestFlexLayout_OrderReordersItems(t *testing.T) {
	h := newFakeHost()
	a := h.Add(style.Style{Width: pt(50), Height: pt(20), Order: 2})
	b := h.Add(style.Style{Width: pt(50), Height: pt(20), Order: 1})
	c := h.Add(style.Style{Width: pt(50), Height: pt(20), Order: 1})
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(300)}, a, b, c)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	// b and c share Order 1 and keep their document order (b then c);
	// a's Order 2 pushes it after both.
	require.InDelta(t, 0, d.Origin(b).X, 0.01)
	require.InDelta(t, 50, d.Origin(c).X, 0.01)
	require.InDelta(t, 100, d.Origin(a).X, 0.01)
}

// A block-level child with margin-left/right both auto centers in the
// remaining content width (spec §4.4 step 2).
func TestBlockLayout_MarginAutoCentersChild(t *testing.T) {
	h := newFakeHost()
	auto := style.Auto
	child := h.Add(style.Style{
		Width:  pt(100),
		Height: pt(50),
		Margin: style.Spacing{Top: pt(0), Bottom: pt(0), Left: auto, Right: auto},
	})
	root := h.Add(style.Style{Width: pt(300), Height: pt(50)}, child)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 100, d.Origin(child).X, 0.01)
}

// Two auto margins on a flex item's cross axis center it regardless of
// align-items (spec §4.5 step 9).
func TestFlexLayout_CrossAxisAutoMarginsCenter(t *testing.T) {
	h := newFakeHost()
	auto := style.Auto
	item := h.Add(style.Style{
		Width:  pt(50),
		Height: pt(20),
		Margin: style.Spacing{Top: auto, Bottom: auto, Left: pt(0), Right: pt(0)},
	})
	root := h.Add(style.Style{
		Display:    style.DisplayFlex,
		Width:      pt(100),
		Height:     pt(100),
		AlignItems: style.AlignFlexStart,
	}, item)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 40, d.Origin(item).Y, 0.01)
}

// A flex item absorbs main-axis free space into its auto margin instead
// of justify-content moving it (spec §4.5 step 9).
func TestFlexLayout_MainAxisAutoMarginAbsorbsFreeSpace(t *testing.T) {
	h := newFakeHost()
	auto := style.Auto
	item := h.Add(style.Style{
		Width:  pt(50),
		Height: pt(20),
		Margin: style.Spacing{Top: pt(0), Bottom: pt(0), Left: auto, Right: pt(0)},
	})
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(200)}, item)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 150, d.Origin(item).X, 0.01)
}

// A flex-grow item whose max-width is smaller than its grown size is
// frozen at its max, and the leftover space is re-distributed to the
// other item rather than overflowing (spec §4.5 step 4).
func TestFlexLayout_ClampFreezesAndRedistributes(t *testing.T) {
	h := newFakeHost()
	a := h.Add(style.Style{Height: pt(20), FlexGrow: 1, MaxWidth: pt(60)})
	b := h.Add(style.Style{Height: pt(20), FlexGrow: 1})
	root := h.Add(style.Style{Display: style.DisplayFlex, Width: pt(200)}, a, b)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 60, sizeOf(d, h, a).Width, 0.01)
	require.InDelta(t, 140, sizeOf(d, h, b).Width, 0.01)
}

// GridFlowRowDense backfills the hole a 2-column-span item leaves
// before a later single-cell item would otherwise advance past it
// (spec §4.6 step 3).
func TestGridLayout_DenseFlowBackfillsHoles(t *testing.T) {
	h := newFakeHost()
	wide := h.Add(style.Style{
		GridColumnStart: style.GridPlacement{Auto: true, Span: 2},
		GridRowStart:    style.AutoPlacement,
	})
	narrow := h.Add(style.Style{GridColumnStart: style.AutoPlacement, GridRowStart: style.AutoPlacement})
	backfill := h.Add(style.Style{GridColumnStart: style.AutoPlacement, GridRowStart: style.AutoPlacement})

	root := h.Add(style.Style{
		Display:             style.DisplayGrid,
		GridAutoFlow:        style.GridFlowRowDense,
		GridTemplateColumns: []style.TrackSize{style.FixedTrack(pt(100)), style.FixedTrack(pt(100)), style.FixedTrack(pt(100))},
		GridTemplateRows:    []style.TrackSize{style.FixedTrack(pt(50)), style.FixedTrack(pt(50))},
	}, wide, narrow, backfill)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	// wide occupies (0,0)-(2,1); narrow takes the only remaining cell
	// in row 0 (column 2); dense packing backfills row 1 column 0
	// for backfill instead of leaving it empty and advancing further.
	require.Equal(t, engine.Point{X: 0, Y: 0}, d.Origin(wide))
	require.Equal(t, engine.Point{X: 200, Y: 0}, d.Origin(narrow))
	require.Equal(t, engine.Point{X: 0, Y: 50}, d.Origin(backfill))
}

// Grid container-level justify-content distributes slack between
// columns when the container is wider than its tracks (spec §4.6 step
// 7).
func TestGridLayout_JustifyContentDistributesColumnSlack(t *testing.T) {
	h := newFakeHost()
	a := h.Add(style.Style{GridColumnStart: style.AutoPlacement, GridRowStart: style.AutoPlacement})
	b := h.Add(style.Style{GridColumnStart: style.AutoPlacement, GridRowStart: style.AutoPlacement})
	root := h.Add(style.Style{
		Display:             style.DisplayGrid,
		Width:               pt(300),
		JustifyContent:      style.JustifySpaceBetween,
		GridTemplateColumns: []style.TrackSize{style.FixedTrack(pt(50)), style.FixedTrack(pt(50))},
		GridTemplateRows:    []style.TrackSize{style.FixedTrack(pt(50))},
	}, a, b)

	d := engine.NewLayoutDriver(h, nil)
	d.Layout(root, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
	}, engine.RequestPreferredSize)

	require.InDelta(t, 0, d.Origin(a).X, 0.01)
	require.InDelta(t, 250, d.Origin(b).X, 0.01)
}

// position:fixed resolves against the viewport no matter how many
// position:static ancestors sit in between, while position:absolute
// climbs to the nearest positioned ancestor instead (spec §4.8 step 1).
func TestAbsPosLayout_FixedUsesViewportNotPositionedAncestor(t *testing.T) {
	h := newFakeHost()
	zero := style.Pt(0)
	fixed := h.Add(style.Style{
		Position: style.PositionFixed,
		Inset:    style.Inset{Top: zero, Right: zero, Bottom: zero, Left: zero},
	})
	absolute := h.Add(style.Style{
		Position: style.PositionAbsolute,
		Inset:    style.Inset{Top: zero, Right: zero, Bottom: zero, Left: zero},
	})
	staticChild := h.Add(style.Style{Width: pt(50), Height: pt(50)}, fixed, absolute)
	positioned := h.Add(style.Style{
		Position: style.PositionRelative,
		Width:    pt(50),
		Height:   pt(50),
	}, staticChild)

	d := engine.NewLayoutDriver(h, nil)
	viewport := engine.Size{Width: 800, Height: 600}
	d.Layout(positioned, engine.Constraints{
		AvailableWidth:  engine.Indefinite,
		AvailableHeight: engine.Indefinite,
		Viewport:        viewport,
	}, engine.RequestPreferredSize)

	require.Equal(t, engine.Size{Width: 800, Height: 600}, sizeOf(d, h, fixed))
	require.Equal(t, engine.Size{Width: 50, Height: 50}, sizeOf(d, h, absolute))
}
