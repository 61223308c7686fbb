package engine

import (
	"github.com/cssflow/layout/internal/core/geom"
	"github.com/cssflow/layout/style"
)

// gridItem tracks one child's placement and resolved box across
// GridLayout's passes.
type gridItem struct {
	id                           NodeID
	s                            style.Style
	colStart, colEnd             int // 0-indexed track lines, end exclusive.
	rowStart, rowEnd             int
	result                       Result
}

// track is one resolved grid track (a row or a column).
type track struct {
	sizing style.TrackSize
	base   float64 // resolved size once the algorithm converges.
}

// layoutGridContainer implements GridLayout (spec §4.6): build the
// explicit track list from GridTemplateColumns/Rows, auto-place items
// that don't name explicit lines (growing the implicit grid as needed,
// grounded on the SCKelemen grid.go reference's dynamic track-list
// growth), size tracks (fixed/content/fr in that priority order), then
// position every item within its cell.
func (d *LayoutDriver) layoutGridContainer(id NodeID, s style.Style, cons Constraints, kind RequestKind) Result {
	widthTentative, heightTentative := d.resolver.ownTentative(s, cons)
	resolved := d.boxModel.Resolve(s, widthTentative, heightTentative,
		Some(cons.ContainingBlock.Width), Some(cons.ContainingBlock.Height))

	colGap := d.resolver.ResolveOr(s.ColumnGap, Some(cons.ContainingBlock.Width), 0)
	rowGap := d.resolver.ResolveOr(s.RowGap, Some(cons.ContainingBlock.Height), 0)

	cols := make([]track, len(s.GridTemplateColumns))
	for i, t := range s.GridTemplateColumns {
		cols[i] = track{sizing: t}
	}
	rows := make([]track, len(s.GridTemplateRows))
	for i, t := range s.GridTemplateRows {
		rows[i] = track{sizing: t}
	}

	children := d.Host.Children(id)
	staticPositions := make(map[NodeID]Point, len(children))
	items := make([]*gridItem, 0, len(children))
	for _, child := range children {
		cs := d.Host.Style(child)
		if cs.Display == style.DisplayNone {
			continue
		}
		if cs.IsAbsolutelyPositioned() {
			staticPositions[child] = Point{}
			continue
		}
		items = append(items, &gridItem{id: child, s: cs})
	}

	autoPlace(items, s.GridAutoFlow, &cols, &rows)

	// Grow implicit tracks for any item whose span exceeds the explicit
	// grid (spec §4.6 step 2's implicit-track growth).
	for _, it := range items {
		for it.colEnd > len(cols) {
			cols = append(cols, nextAutoTrack(s.GridAutoColumns, len(cols)-len(s.GridTemplateColumns)))
		}
		for it.rowEnd > len(rows) {
			rows = append(rows, nextAutoTrack(s.GridAutoRows, len(rows)-len(s.GridTemplateRows)))
		}
	}

	availW := resolved.ContentSize.Width
	if !widthTentative.Present {
		availW = cons.ContainingBlock.Width
	}
	availH := resolved.ContentSize.Height
	if !heightTentative.Present {
		availH = cons.ContainingBlock.Height
	}

	d.sizeTracks(cols, availW, colGap, items, true)
	d.sizeTracks(rows, availH, rowGap, items, false)

	usedW := totalTrackSpan(cols, colGap)
	usedH := totalTrackSpan(rows, rowGap)

	// Container-level align-content/justify-content (spec §4.6 step 7):
	// when the container's own size is definite and larger than the
	// tracks' natural sum, distribute the slack across and between
	// tracks the same way AlignContent/JustifyContent distribute flex
	// lines/items.
	colLead, colBetween := 0.0, 0.0
	if widthTentative.Present {
		if slack := availW - usedW; slack > 0 {
			colLead, colBetween = justifyOffsets(s.JustifyContent, slack, len(cols))
		}
	}
	rowLead, rowBetween := 0.0, 0.0
	if heightTentative.Present {
		if slack := availH - usedH; slack > 0 {
			rowLead, rowBetween = contentAlignOffsets(s.AlignContent, slack, len(rows))
		}
	}

	colOffsets := alignedTrackOffsets(cols, colGap, colLead, colBetween)
	rowOffsets := alignedTrackOffsets(rows, rowGap, rowLead, rowBetween)

	posBox, hasPosBox := positionedAncestorFor(s, cons, resolved.ContentSize)
	childPosCons := Constraints{Viewport: cons.Viewport, PositionedContainingBlock: posBox, HasPositionedContainingBlock: hasPosBox}

	for _, it := range items {
		cellX := colOffsets[it.colStart]
		cellW := colOffsets[it.colEnd] - cellX - colGap
		if it.colEnd == len(cols) {
			cellW = colOffsets[it.colEnd] - cellX
		}
		cellY := rowOffsets[it.rowStart]
		cellH := rowOffsets[it.rowEnd] - cellY - rowGap
		if it.rowEnd == len(rows) {
			cellH = rowOffsets[it.rowEnd] - cellY
		}

		childCons := childPosCons
		childCons.AvailableWidth = Definite(cellW)
		childCons.AvailableHeight = Definite(cellH)
		childCons.ContainingBlock = Size{Width: cellW, Height: cellH}
		it.result = d.Layout(it.id, childCons, RequestPreferredSize)

		align := it.s.ResolvedAlignSelf(s.AlignItems)
		justifySelf := it.s.ResolvedJustifySelf(s.JustifyItems)
		x := cellX + alignWithinCell(cellW, it.result.Size.Width, justifySelf)
		y := cellY + alignWithinCell(cellH, it.result.Size.Height, align)
		it.result.Origin = Point{X: x, Y: y}
		d.setOrigin(it.id, it.result.Origin)
		d.setResult(it.id, it.result)
		staticPositions[it.id] = it.result.Origin
	}

	if !widthTentative.Present {
		resolved.ContentSize.Width = usedW
	}
	if !heightTentative.Present {
		resolved.ContentSize.Height = usedH
	}

	d.layoutAbsoluteChildren(id, s, cons, resolved.ContentSize, staticPositions)

	return Result{
		Size:        resolved.BorderBoxSize(),
		Margin:      resolved.Margin,
		Border:      resolved.Border,
		Padding:     resolved.Padding,
		ContentSize: resolved.ContentSize,
	}
}

func alignWithinCell(cellSize, itemSize float64, align style.AlignItems) float64 {
	switch align {
	case style.AlignFlexEnd:
		return cellSize - itemSize
	case style.AlignCenter:
		return (cellSize - itemSize) / 2
	default:
		return 0
	}
}

// autoPlace resolves each item's GridColumnStart/End and
// GridRowStart/End into 0-indexed track ranges (spec §4.6 step 3). An
// item explicit on one axis keeps that axis's line and only
// auto-places the other; an item explicit on neither axis is placed by
// walking the implicit grid in flow order (row-major unless
// GridAutoFlow is column). occupied tracks which (col, row) cells are
// already taken so items never overlap. Dense flow
// (GridFlowRowDense/GridFlowColumnDense) backfills the first open cell
// anywhere in the grid seen so far instead of only ever advancing the
// cursor forward, per CSS's "dense" packing algorithm.
func autoPlace(items []*gridItem, flow style.GridAutoFlow, cols, rows *[]track) {
	column := flow.Column()
	dense := flow.Dense()
	cursorRow, cursorCol := 0, 0
	occupied := make(map[[2]int]bool)

	occupy := func(colStart, colEnd, rowStart, rowEnd int) {
		for c := colStart; c < colEnd; c++ {
			for r := rowStart; r < rowEnd; r++ {
				occupied[[2]int{c, r}] = true
			}
		}
	}
	fits := func(colStart, colEnd, rowStart, rowEnd int) bool {
		for c := colStart; c < colEnd; c++ {
			for r := rowStart; r < rowEnd; r++ {
				if occupied[[2]int{c, r}] {
					return false
				}
			}
		}
		return true
	}

	for _, it := range items {
		colSpan := spanOf(it.s.GridColumnStart, it.s.GridColumnEnd)
		rowSpan := spanOf(it.s.GridRowStart, it.s.GridRowEnd)

		explicitCol := !it.s.GridColumnStart.Auto
		explicitRow := !it.s.GridRowStart.Auto

		switch {
		case explicitCol && explicitRow:
			it.colStart = it.s.GridColumnStart.Line - 1
			it.rowStart = it.s.GridRowStart.Line - 1
		case explicitCol:
			// Pinned on the column axis; walk rows (from the dense-scan
			// origin, or the cursor in sparse flow) to find the next free
			// cell in that column.
			it.colStart = it.s.GridColumnStart.Line - 1
			row := 0
			if !dense {
				row = cursorRow
			}
			for !fits(it.colStart, it.colStart+colSpan, row, row+rowSpan) {
				row++
			}
			it.rowStart = row
		case explicitRow:
			it.rowStart = it.s.GridRowStart.Line - 1
			col := 0
			if !dense {
				col = cursorCol
			}
			for !fits(col, col+colSpan, it.rowStart, it.rowStart+rowSpan) {
				col++
			}
			it.colStart = col
		default:
			startRow, startCol := cursorRow, cursorCol
			if dense {
				startRow, startCol = 0, 0
			}
			row, col := startRow, startCol
			for {
				if column {
					if len(*rows) > 0 && row+rowSpan > len(*rows) && row > 0 {
						row = 0
						col++
					}
					if fits(col, col+colSpan, row, row+rowSpan) {
						break
					}
					row++
				} else {
					if len(*cols) > 0 && col+colSpan > len(*cols) && col > 0 {
						col = 0
						row++
					}
					if fits(col, col+colSpan, row, row+rowSpan) {
						break
					}
					col++
				}
			}
			it.colStart, it.rowStart = col, row
		}

		it.colEnd = it.colStart + colSpan
		it.rowEnd = it.rowStart + rowSpan
		occupy(it.colStart, it.colEnd, it.rowStart, it.rowEnd)

		if !explicitCol && !explicitRow {
			if column {
				cursorRow, cursorCol = it.rowEnd, it.colStart
			} else {
				cursorCol, cursorRow = it.colEnd, it.rowStart
			}
		}
	}
}

func spanOf(start, end style.GridPlacement) int {
	if start.Span > 0 {
		return start.Span
	}
	if end.Span > 0 {
		return end.Span
	}
	if !start.Auto && !end.Auto && end.Line > start.Line {
		return end.Line - start.Line
	}
	return 1
}

func nextAutoTrack(autoDef []style.TrackSize, idx int) track {
	if len(autoDef) == 0 {
		return track{sizing: style.AutoTrack}
	}
	return track{sizing: autoDef[idx%len(autoDef)]}
}

// sizeTracks resolves each track's base size (spec §4.6 step 5): fixed
// lengths first, then content-based auto tracks sized to the largest
// item spanning only that track, then fr tracks dividing whatever space
// remains (or 0 if the remainder is negative, per CSS's floor at zero).
func (d *LayoutDriver) sizeTracks(tracks []track, avail, gap float64, items []*gridItem, columns bool) {
	fixedTotal := 0.0
	frTotal := 0.0
	for i := range tracks {
		t := &tracks[i]
		switch t.sizing.Kind {
		case style.TrackFixed:
			t.base = d.resolver.ResolveOr(t.sizing.Fixed, Some(avail), 0)
			fixedTotal += t.base
		case style.TrackFlex:
			frTotal += t.sizing.Flex
		default: // auto, min-content, max-content, minmax
			t.base = largestItemOnTrack(items, tracks, i, columns, d)
			fixedTotal += t.base
		}
	}
	if len(tracks) > 1 {
		fixedTotal += gap * float64(len(tracks)-1)
	}
	remaining := avail - fixedTotal
	if remaining < 0 {
		remaining = 0
	}
	if frTotal > 0 {
		unit := remaining / frTotal
		for i := range tracks {
			if tracks[i].sizing.Kind == style.TrackFlex {
				tracks[i].base = unit * tracks[i].sizing.Flex
			}
		}
	}
}

func largestItemOnTrack(items []*gridItem, tracks []track, idx int, columns bool, d *LayoutDriver) float64 {
	max := 0.0
	for _, it := range items {
		start, end := it.colStart, it.colEnd
		if !columns {
			start, end = it.rowStart, it.rowEnd
		}
		if start != idx || end != idx+1 {
			continue // only single-track-spanning items contribute directly.
		}
		probe := Constraints{AvailableWidth: MaxContentSpace, AvailableHeight: MaxContentSpace}
		res := d.Layout(it.id, probe, RequestMaxContent)
		size := res.Size.Width
		if !columns {
			size = res.Size.Height
		}
		max = geom.MaxF64(max, size)
	}
	return max
}

// alignedTrackOffsets returns each track's start offset (plus the end of
// the last track), with gaps between tracks and the container-level
// align-content/justify-content lead-in and between-track slack (spec
// §4.6 step 7); both are 0 when the container's own size along that
// axis is indefinite or the tracks already consume all available
// space.
func alignedTrackOffsets(tracks []track, gap, lead, between float64) []float64 {
	offsets := make([]float64, len(tracks)+1)
	cursor := lead
	for i, t := range tracks {
		if i > 0 {
			cursor += between
		}
		offsets[i] = cursor
		cursor += t.base + gap
	}
	offsets[len(tracks)] = cursor
	return offsets
}

func totalTrackSpan(tracks []track, gap float64) float64 {
	total := 0.0
	for i, t := range tracks {
		if i > 0 {
			total += gap
		}
		total += t.base
	}
	return total
}
