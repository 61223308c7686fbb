package engine

import (
	"math"
	"sort"

	"github.com/cssflow/layout/internal/core/geom"
	"github.com/cssflow/layout/style"
)

// flexItem tracks one child's state across FlexLayout's passes, mirroring
// the teacher's internal "node" struct in instructions/auto_layout.go
// (basis/grow/shrink tracked alongside the resolved box so the
// grow/shrink distribution pass never has to re-measure).
type flexItem struct {
	id NodeID
	s  style.Style

	basis        float64
	hypothetical float64 // basis clamped by min/max along the main axis.
	mainSize     float64 // final main-axis size after grow/shrink.
	crossSize    float64
	marginMain   Edges // margin in main-axis terms: start/end.
	marginCross  Edges

	// autoMarginMainStart/End and crossAutoStart/End record which margin
	// sides (translated into main/cross-axis terms) were the Auto
	// keyword, for free-space absorption (spec §4.5 step 9).
	autoMarginMainStart, autoMarginMainEnd bool
	crossAutoStart, crossAutoEnd           bool

	result Result
}

// flexLine is one wrapped row/column of items (spec §4.5 step 3).
type flexLine struct {
	items     []*flexItem
	crossSize float64
}

// layoutFlexContainer implements FlexLayout (spec §4.5): resolve flex
// basis per item, collect into lines (wrapping if FlexWrap != NoWrap),
// distribute remaining main-axis space via grow/shrink, then resolve
// cross-axis sizes and positions via AlignItems/AlignContent.
func (d *LayoutDriver) layoutFlexContainer(id NodeID, s style.Style, cons Constraints, kind RequestKind) Result {
	isRow := s.FlexDirection.IsRow()
	reverse := s.FlexDirection.IsReverse()

	widthTentative, heightTentative := d.resolver.ownTentative(s, cons)
	resolved := d.boxModel.Resolve(s, widthTentative, heightTentative,
		Some(cons.ContainingBlock.Width), Some(cons.ContainingBlock.Height))

	mainAvail, crossAvail := resolved.ContentSize.Width, resolved.ContentSize.Height
	mainDefinite, crossDefinite := widthTentative.Present, heightTentative.Present
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
		mainDefinite, crossDefinite = crossDefinite, mainDefinite
	}

	rowGap := d.resolver.ResolveOr(s.RowGap, Some(cons.ContainingBlock.Height), 0)
	colGap := d.resolver.ResolveOr(s.ColumnGap, Some(cons.ContainingBlock.Width), 0)
	mainGap, crossGap := colGap, rowGap
	if !isRow {
		mainGap, crossGap = rowGap, colGap
	}

	posBox, hasPosBox := positionedAncestorFor(s, cons, resolved.ContentSize)
	childPosCons := Constraints{Viewport: cons.Viewport, PositionedContainingBlock: posBox, HasPositionedContainingBlock: hasPosBox}

	children := d.Host.Children(id)
	staticPositions := make(map[NodeID]Point, len(children))
	items := make([]*flexItem, 0, len(children))

	for _, child := range children {
		cs := d.Host.Style(child)
		if cs.Display == style.DisplayNone {
			continue
		}
		if cs.IsAbsolutelyPositioned() {
			staticPositions[child] = Point{}
			continue
		}
		items = append(items, d.resolveFlexBasis(child, cs, isRow, mainAvail, crossAvail, mainDefinite, childPosCons))
	}

	// Ascending order, stable by document order on ties (spec §4.5 step 1).
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].s.Order < items[j].s.Order
	})

	lines := buildFlexLines(items, s.FlexWrap, mainAvail, mainGap, mainDefinite)
	for _, line := range lines {
		placeFlexLine(line, isRow, mainAvail, mainGap, mainDefinite, d.resolver)
	}

	for _, line := range lines {
		for _, it := range line.items {
			cons := flexChildCrossConstraints(it, isRow, line, crossAvail, crossDefinite, mainAvail, childPosCons)
			it.result = d.Layout(it.id, cons, RequestPreferredSize)
			it.crossSize = crossSizeOf(it.result, isRow)
		}
		line.crossSize = lineCrossSize(line, s.AlignItems)
	}

	totalCross := totalLinesCross(lines, crossGap)
	if !crossDefinite {
		crossAvail = totalCross
	}

	distributeCrossSpace(lines, s.AlignContent, crossAvail, crossGap, totalCross)

	mainSize, crossSize := mainAvail, crossAvail
	if !mainDefinite {
		mainSize = maxLineMain(lines, mainGap)
	}

	placeFlexItems(lines, s, isRow, reverse, mainSize, crossSize, mainGap, crossGap, d)

	for _, line := range lines {
		for _, it := range line.items {
			staticPositions[it.id] = it.result.Origin
		}
	}

	finalW, finalH := mainSize, crossSize
	if !isRow {
		finalW, finalH = crossSize, mainSize
	}
	resolved.ContentSize = Size{Width: finalW, Height: finalH}

	d.layoutAbsoluteChildren(id, s, cons, resolved.ContentSize, staticPositions)

	return Result{
		Size:        resolved.BorderBoxSize(),
		Margin:      resolved.Margin,
		Border:      resolved.Border,
		Padding:     resolved.Padding,
		ContentSize: resolved.ContentSize,
	}
}

// resolveFlexBasis computes one item's flex-basis (spec §4.5 step 2):
// an explicit FlexBasis wins; Auto falls back to the main-axis Width or
// Height; if that's also Auto, the item is measured at MaxContent (its
// natural size).
func (d *LayoutDriver) resolveFlexBasis(id NodeID, s style.Style, isRow bool, mainAvail, crossAvail float64, mainDefinite bool, posCons Constraints) *flexItem {
	basisBasis := Some(mainAvail)
	var basisLen style.Length = s.FlexBasis
	if basisLen.IsAuto() {
		if isRow {
			basisLen = s.Width
		} else {
			basisLen = s.Height
		}
	}

	basis, ok := d.resolver.Resolve(basisLen, basisBasis).Get()
	if !ok {
		// Auto basis with no definite Width/Height: measure intrinsic
		// max-content size along the main axis (spec §4.5 step 2c).
		probe := Constraints{
			AvailableWidth:               MaxContentSpace,
			AvailableHeight:              Indefinite,
			ContainingBlock:              Size{Width: mainAvail, Height: crossAvail},
			Viewport:                     posCons.Viewport,
			PositionedContainingBlock:    posCons.PositionedContainingBlock,
			HasPositionedContainingBlock: posCons.HasPositionedContainingBlock,
		}
		if !isRow {
			probe.AvailableWidth, probe.AvailableHeight = Indefinite, MaxContentSpace
		}
		res := d.Layout(id, probe, RequestMaxContent)
		if isRow {
			basis = res.Size.Width
		} else {
			basis = res.Size.Height
		}
	}

	minL, maxL := s.MinWidth, s.MaxWidth
	if !isRow {
		minL, maxL = s.MinHeight, s.MaxHeight
	}
	hyp := d.resolver.Clamp(basis, minL, maxL, Some(mainAvail))

	margin := d.resolver.ResolveMarginEdges(s.Margin, Some(mainAvail))

	it := &flexItem{id: id, s: s, basis: basis, hypothetical: hyp}
	if isRow {
		it.marginMain = Edges{Left: margin.Left, Right: margin.Right}
		it.marginCross = Edges{Top: margin.Top, Bottom: margin.Bottom}
		it.autoMarginMainStart, it.autoMarginMainEnd = margin.AutoLeft, margin.AutoRight
		it.crossAutoStart, it.crossAutoEnd = margin.AutoTop, margin.AutoBottom
	} else {
		it.marginMain = Edges{Left: margin.Top, Right: margin.Bottom}
		it.marginCross = Edges{Top: margin.Left, Bottom: margin.Right}
		it.autoMarginMainStart, it.autoMarginMainEnd = margin.AutoTop, margin.AutoBottom
		it.crossAutoStart, it.crossAutoEnd = margin.AutoLeft, margin.AutoRight
	}
	return it
}

// buildFlexLines wraps items into lines per spec §4.5 step 3: greedily
// pack items until the next one would overflow mainAvail, unless
// FlexWrap is NoWrap (everything goes on one line regardless) or
// mainAvail is indefinite (nothing can overflow an unknown size).
func buildFlexLines(items []*flexItem, wrap style.FlexWrap, mainAvail, mainGap float64, mainDefinite bool) []*flexLine {
	if wrap == style.FlexNoWrap || !mainDefinite || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	var cur []*flexItem
	used := 0.0
	for _, it := range items {
		size := it.hypothetical + it.marginMain.Left + it.marginMain.Right
		gap := 0.0
		if len(cur) > 0 {
			gap = mainGap
		}
		if len(cur) > 0 && used+gap+size > mainAvail+0.01 {
			lines = append(lines, &flexLine{items: cur})
			cur = nil
			used = 0
			gap = 0
		}
		cur = append(cur, it)
		used += gap + size
	}
	if len(cur) > 0 {
		lines = append(lines, &flexLine{items: cur})
	}
	if wrap == style.FlexWrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// placeFlexLine runs the grow/shrink resolution for one line (spec §4.5
// step 4), grounded on the teacher's placeLines in
// instructions/auto_layout.go: compute the line's used space versus
// mainAvail, then distribute the remainder (or deficit) proportionally
// to FlexGrow (or FlexShrink * basis): every active item but the last gets
// its proportional share and the last active item gets whatever remains,
// so the assigned sizes sum exactly to the target. Items whose distributed size would violate their own
// min/max are frozen at the clamped value and the remaining items absorb
// the leftover, re-iterating until nothing new violates (CSS's "resolving
// flexible lengths" loop) or every item is frozen.
func placeFlexLine(line *flexLine, isRow bool, mainAvail, mainGap float64, mainDefinite bool, resolver LengthResolver) {
	for _, it := range line.items {
		it.mainSize = it.hypothetical
	}
	if !mainDefinite || len(line.items) == 0 {
		return
	}

	used := 0.0
	for i, it := range line.items {
		if i > 0 {
			used += mainGap
		}
		used += it.hypothetical + it.marginMain.Left + it.marginMain.Right
	}
	remaining := mainAvail - used
	if math.Abs(remaining) < 1e-9 {
		return
	}
	growing := remaining > 0

	frozen := make([]bool, len(line.items))
	for pass := 0; pass <= len(line.items); pass++ {
		active := 0
		totalWeight, appliedDelta := 0.0, 0.0
		for i, it := range line.items {
			if frozen[i] {
				appliedDelta += it.mainSize - it.hypothetical
				continue
			}
			if growing {
				totalWeight += it.s.FlexGrow
			} else {
				totalWeight += it.s.FlexShrink * it.hypothetical
			}
			active++
		}
		if active == 0 || totalWeight <= 0 {
			break
		}

		toDistribute := remaining - appliedDelta
		lastActive := -1
		for i := range line.items {
			if !frozen[i] {
				lastActive = i
			}
		}
		assigned := 0.0
		for i, it := range line.items {
			if frozen[i] {
				continue
			}
			var weight float64
			if growing {
				weight = it.s.FlexGrow
			} else {
				weight = it.s.FlexShrink * it.hypothetical
			}
			var share float64
			if i == lastActive {
				share = toDistribute - assigned
			} else {
				share = toDistribute * (weight / totalWeight)
				assigned += share
			}
			if growing {
				it.mainSize = it.hypothetical + share
			} else {
				it.mainSize = geom.MaxF64(0, it.hypothetical+share)
			}
		}

		violated := false
		for i, it := range line.items {
			if frozen[i] {
				continue
			}
			min, max := it.s.MinWidth, it.s.MaxWidth
			if !isRow {
				min, max = it.s.MinHeight, it.s.MaxHeight
			}
			clamped := resolver.Clamp(it.mainSize, min, max, Some(mainAvail))
			if math.Abs(clamped-it.mainSize) > 1e-9 {
				it.mainSize = clamped
				frozen[i] = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}
}

func flexChildCrossConstraints(it *flexItem, isRow bool, line *flexLine, crossAvail float64, crossDefinite bool, mainAvail float64, posCons Constraints) Constraints {
	mainSpace := Definite(it.mainSize)
	crossSpace := Indefinite
	if crossDefinite {
		crossSpace = Definite(crossAvail)
	}
	cons := posCons
	if isRow {
		cons.AvailableWidth, cons.AvailableHeight = mainSpace, crossSpace
		cons.ContainingBlock = Size{Width: mainAvail, Height: crossAvail}
	} else {
		cons.AvailableWidth, cons.AvailableHeight = crossSpace, mainSpace
		cons.ContainingBlock = Size{Width: crossAvail, Height: mainAvail}
	}
	return cons
}

func crossSizeOf(r Result, isRow bool) float64 {
	if isRow {
		return r.Size.Height
	}
	return r.Size.Width
}

func lineCrossSize(line *flexLine, align style.AlignItems) float64 {
	max := 0.0
	for _, it := range line.items {
		max = geom.MaxF64(max, it.crossSize+it.marginCross.Left+it.marginCross.Right)
	}
	return max
}

func totalLinesCross(lines []*flexLine, crossGap float64) float64 {
	total := 0.0
	for i, l := range lines {
		if i > 0 {
			total += crossGap
		}
		total += l.crossSize
	}
	return total
}

func maxLineMain(lines []*flexLine, mainGap float64) float64 {
	max := 0.0
	for _, l := range lines {
		used := 0.0
		for i, it := range l.items {
			if i > 0 {
				used += mainGap
			}
			used += it.mainSize + it.marginMain.Left + it.marginMain.Right
		}
		max = geom.MaxF64(max, used)
	}
	return max
}

// distributeCrossSpace implements the stretch value of AlignContent (spec
// §4.5 step 7): when the container's cross size exceeds the lines'
// natural total, every line (a single line included) grows by an equal
// share of the slack.
func distributeCrossSpace(lines []*flexLine, align style.AlignContent, crossAvail, crossGap, totalCross float64) {
	if len(lines) == 0 {
		return
	}
	slack := crossAvail - totalCross
	if slack <= 0 {
		return
	}
	switch align {
	case style.AlignContentStretch:
		if len(lines) > 0 {
			extra := slack / float64(len(lines))
			for _, l := range lines {
				l.crossSize += extra
			}
		}
	}
	// Offsets for FlexStart/FlexEnd/Center/Space* are applied during
	// placement in placeFlexItems via contentAlignOffsets.
}

func contentAlignOffsets(align style.AlignContent, slack float64, n int) (lead, between float64) {
	if n == 0 {
		return 0, 0
	}
	switch align {
	case style.AlignContentFlexEnd:
		return slack, 0
	case style.AlignContentCenter:
		return slack / 2, 0
	case style.AlignContentSpaceBetween:
		if n > 1 {
			return 0, slack / float64(n-1)
		}
		return 0, 0
	case style.AlignContentSpaceAround:
		return slack / float64(n) / 2, slack / float64(n)
	case style.AlignContentSpaceEvenly:
		return slack / float64(n+1), slack / float64(n+1)
	default:
		return 0, 0
	}
}

func justifyOffsets(justify style.JustifyContent, slack float64, n int) (lead, between float64) {
	if n == 0 {
		return 0, 0
	}
	switch justify {
	case style.JustifyFlexEnd:
		return slack, 0
	case style.JustifyCenter:
		return slack / 2, 0
	case style.JustifySpaceBetween:
		if n > 1 {
			return 0, slack / float64(n-1)
		}
		return 0, 0
	case style.JustifySpaceAround:
		return slack / float64(n) / 2, slack / float64(n)
	case style.JustifySpaceEvenly:
		return slack / float64(n+1), slack / float64(n+1)
	default:
		return 0, 0
	}
}

// placeFlexItems positions every item within its line (justify-content
// along the main axis, align-items/align-self along the cross axis),
// then every line along the cross axis (align-content), writing final
// Origins in container content-box coordinates.
func placeFlexItems(lines []*flexLine, s style.Style, isRow, reverse bool, mainSize, crossSize, mainGap, crossGap float64, d *LayoutDriver) {
	totalCross := totalLinesCross(lines, crossGap)
	crossSlack := crossSize - totalCross
	crossLead, crossBetween := contentAlignOffsets(s.AlignContent, crossSlack, len(lines))

	crossCursor := crossLead
	for _, line := range lines {
		used := 0.0
		for i, it := range line.items {
			if i > 0 {
				used += mainGap
			}
			used += it.mainSize + it.marginMain.Left + it.marginMain.Right
		}
		mainSlack := mainSize - used

		// Auto margins on the main axis absorb free space ahead of
		// justify-content (spec §4.5 step 9): split whatever is left
		// equally among every auto margin on the line, then leave
		// justify-content nothing further to distribute.
		autoMarginCount := 0
		for _, it := range line.items {
			if it.autoMarginMainStart {
				autoMarginCount++
			}
			if it.autoMarginMainEnd {
				autoMarginCount++
			}
		}
		autoMarginShare := 0.0
		if autoMarginCount > 0 && mainSlack > 0 {
			autoMarginShare = mainSlack / float64(autoMarginCount)
			mainSlack = 0
		}

		mainLead, mainBetween := justifyOffsets(s.JustifyContent, mainSlack, len(line.items))

		mainCursor := mainLead
		for i, it := range line.items {
			if i > 0 {
				mainCursor += mainGap + mainBetween
			}
			if it.autoMarginMainStart {
				mainCursor += autoMarginShare
			}
			mainStart := mainCursor + it.marginMain.Left
			mainCursor += it.marginMain.Left + it.mainSize + it.marginMain.Right
			if it.autoMarginMainEnd {
				mainCursor += autoMarginShare
			}

			align := it.s.ResolvedAlignSelf(s.AlignItems)
			if it.crossAutoStart && it.crossAutoEnd {
				// Two auto margins on the cross axis center the item
				// regardless of align-items/align-self (spec §4.5 step 9).
				align = style.AlignCenter
			}
			crossStart := crossCursor + it.marginCross.Left
			switch align {
			case style.AlignFlexEnd:
				crossStart = crossCursor + (line.crossSize - it.crossSize - it.marginCross.Right)
			case style.AlignCenter:
				crossStart = crossCursor + (line.crossSize-it.crossSize-it.marginCross.Left-it.marginCross.Right)/2 + it.marginCross.Left
			case style.AlignStretch, style.AlignBaseline:
				crossStart = crossCursor + it.marginCross.Left
			}

			if isRow {
				it.result.Origin = Point{X: mainStart, Y: crossStart}
			} else {
				it.result.Origin = Point{X: crossStart, Y: mainStart}
			}
		}
		crossCursor += line.crossSize + crossGap + crossBetween
	}

	if reverse {
		mirrorMainAxis(lines, isRow, mainSize)
	}

	for _, line := range lines {
		for _, it := range line.items {
			d.setOrigin(it.id, it.result.Origin)
			d.setResult(it.id, it.result)
		}
	}
}

// mirrorMainAxis flips every item's main-axis origin for row-reverse /
// column-reverse directions, applied after justify-content so the slack
// distribution math stays direction-agnostic.
func mirrorMainAxis(lines []*flexLine, isRow bool, mainSize float64) {
	for _, line := range lines {
		for _, it := range line.items {
			if isRow {
				it.result.Origin.X = mainSize - it.result.Origin.X - it.mainSize
			} else {
				it.result.Origin.Y = mainSize - it.result.Origin.Y - it.mainSize
			}
		}
	}
}
