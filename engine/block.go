package engine

import (
	"github.com/cssflow/layout/internal/core/geom"
	"github.com/cssflow/layout/style"
)

// layoutBlockContainer implements BlockLayout (spec §4.4): children
// stack top-to-bottom in DOM order, each taking the full content-box
// width unless it has its own definite Width, with adjoining vertical
// margins NOT collapsed: each child's top and bottom margins are added
// in full (see DESIGN.md).
func (d *LayoutDriver) layoutBlockContainer(id NodeID, s style.Style, cons Constraints, kind RequestKind) Result {
	widthTentative, heightTentative := d.resolver.ownTentative(s, cons)

	resolved := d.boxModel.Resolve(s, widthTentative, heightTentative,
		Some(cons.ContainingBlock.Width), Some(cons.ContainingBlock.Height))

	contentW, haveW := resolved.ContentSize.Width, widthTentative.Present
	if !haveW {
		contentW = cons.ContainingBlock.Width
	}

	children := d.Host.Children(id)
	staticPositions := make(map[NodeID]Point, len(children))

	y := 0.0
	maxChildW := 0.0
	for _, child := range children {
		cs := d.Host.Style(child)
		if cs.Display == style.DisplayNone || cs.IsAbsolutelyPositioned() {
			// Absolutely positioned children don't participate in flow,
			// but they still need a static-position fallback recorded at
			// the point they would have occupied in flow.
			if cs.IsAbsolutelyPositioned() {
				staticPositions[child] = Point{X: 0, Y: y}
			}
			continue
		}

		childCons := Constraints{
			AvailableWidth:  Definite(contentW),
			AvailableHeight: Indefinite,
			ContainingBlock: Size{Width: contentW, Height: resolved.ContentSize.Height},
			Viewport:        cons.Viewport,
		}
		childCons.PositionedContainingBlock, childCons.HasPositionedContainingBlock =
			positionedAncestorFor(s, cons, Size{Width: contentW, Height: resolved.ContentSize.Height})
		if kind == RequestMinContent {
			childCons.AvailableWidth = MinContentSpace
		} else if kind == RequestMaxContent {
			childCons.AvailableWidth = MaxContentSpace
		}

		childRes := d.Layout(child, childCons, RequestPreferredSize)

		// "margin: 0 auto" centers a definite-width child within the
		// parent's content box (spec §4.4 step 2); CSS ignores auto on
		// the block axis here, so only a pair of equal horizontal autos
		// is special-cased.
		if cs.Margin.Left.IsAuto() && cs.Margin.Right.IsAuto() {
			extra := contentW - childRes.Size.Width
			if extra < 0 {
				extra = 0
			}
			childRes.Margin.Left = extra / 2
			childRes.Margin.Right = extra / 2
		}

		childRes.Origin = Point{X: childRes.Margin.Left, Y: y + childRes.Margin.Top}
		d.setOrigin(child, childRes.Origin)
		d.setResult(child, childRes)

		y += childRes.Margin.Top + childRes.Size.Height + childRes.Margin.Bottom
		maxChildW = geom.MaxF64(maxChildW, childRes.Margin.Horizontal()+childRes.Size.Width)
	}

	if !haveW {
		contentW = maxChildW
		contentW = d.resolver.Clamp(contentW, s.MinWidth, s.MaxWidth, Some(cons.ContainingBlock.Width))
	}
	contentH := resolved.ContentSize.Height
	if !heightTentative.Present {
		contentH = y
		contentH = d.resolver.Clamp(contentH, s.MinHeight, s.MaxHeight, Some(cons.ContainingBlock.Height))
	}

	resolved.ContentSize = Size{Width: contentW, Height: contentH}
	d.layoutAbsoluteChildren(id, s, cons, resolved.ContentSize, staticPositions)

	return Result{
		Size:        resolved.BorderBoxSize(),
		Margin:      resolved.Margin,
		Border:      resolved.Border,
		Padding:     resolved.Padding,
		ContentSize: resolved.ContentSize,
	}
}

// setOrigin stashes a child's resolved Origin so a parent placing its
// own children can report where it put them without every algorithm
// threading an extra out-parameter through Layout's Result.
func (d *LayoutDriver) setOrigin(id NodeID, p Point) {
	if d.origins == nil {
		d.origins = make(map[NodeID]Point)
	}
	d.origins[id] = p
}

// Origin returns the last-computed origin for id, relative to its
// parent's content-box. Valid only after a Layout call covering id's
// parent has returned.
func (d *LayoutDriver) Origin(id NodeID) Point {
	return d.origins[id]
}

// setResult stashes a child's final Result (as placed by its parent's
// algorithm, Origin included) so a caller can read back a descendant's
// resolved box without knowing which constraints its parent used.
func (d *LayoutDriver) setResult(id NodeID, r Result) {
	if d.results == nil {
		d.results = make(map[NodeID]Result)
	}
	d.results[id] = r
}

// Result returns the last-placed Result for id. Valid only after a
// Layout call covering id's parent has returned.
func (d *LayoutDriver) Result(id NodeID) Result {
	return d.results[id]
}
