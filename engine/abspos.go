package engine

import "github.com/cssflow/layout/style"

// layoutAbsPosChild implements AbsPosLayout for one child (spec §4.8):
// resolve Inset against containingBlock on each axis independently, then
// fall back to static (the position the element would have occupied had
// it stayed in flow) when every inset on an axis is Auto, per CSS's
// static-position rule for absolutely positioned boxes.
func (d *LayoutDriver) layoutAbsPosChild(id NodeID, s style.Style, containingBlock, viewport Size, staticPos Point) {
	insetBasisW := Some(containingBlock.Width)
	insetBasisH := Some(containingBlock.Height)

	left, leftOK := d.resolver.Resolve(s.Inset.Left, insetBasisW).Get()
	right, rightOK := d.resolver.Resolve(s.Inset.Right, insetBasisW).Get()
	top, topOK := d.resolver.Resolve(s.Inset.Top, insetBasisH).Get()
	bottom, bottomOK := d.resolver.Resolve(s.Inset.Bottom, insetBasisH).Get()

	widthTentative := d.resolver.Resolve(s.Width, insetBasisW)
	heightTentative := d.resolver.Resolve(s.Height, insetBasisH)

	// When both insets on an axis are definite and Width/Height is Auto,
	// CSS solves Width/Height from the inset span (spec §4.8 step 2).
	if leftOK && rightOK && !widthTentative.Present {
		widthTentative = Some(containingBlock.Width - left - right)
	}
	if topOK && bottomOK && !heightTentative.Present {
		heightTentative = Some(containingBlock.Height - top - bottom)
	}

	resolved := d.boxModel.Resolve(s, widthTentative, heightTentative, insetBasisW, insetBasisH)

	availW := AvailableSpace{Kind: SpaceIndefinite}
	if widthTentative.Present {
		availW = Definite(resolved.ContentSize.Width)
	}
	availH := AvailableSpace{Kind: SpaceIndefinite}
	if heightTentative.Present {
		availH = Definite(resolved.ContentSize.Height)
	}

	childRes := d.Layout(id, Constraints{
		AvailableWidth:               availW,
		AvailableHeight:              availH,
		ContainingBlock:              resolved.ContentSize,
		Viewport:                     viewport,
		PositionedContainingBlock:    resolved.ContentSize,
		HasPositionedContainingBlock: true,
	}, RequestPreferredSize)

	x := resolveAbsAxis(leftOK, left, rightOK, right, childRes.Size.Width, containingBlock.Width, staticPos.X)
	y := resolveAbsAxis(topOK, top, bottomOK, bottom, childRes.Size.Height, containingBlock.Height, staticPos.Y)

	childRes.Origin = Point{X: x, Y: y}
	d.setOrigin(id, childRes.Origin)
	d.setResult(id, childRes)
}

// resolveAbsAxis solves one axis's offset from the pair of insets CSS
// allows to be independently definite, auto, or both-definite (spec
// §4.8 step 3): start wins when both are given (over-constrained case),
// end alone anchors from the far edge, and neither falls back to the
// static position.
func resolveAbsAxis(startOK bool, start float64, endOK bool, end float64, size, containerSize, static float64) float64 {
	switch {
	case startOK:
		return start
	case endOK:
		return containerSize - end - size
	default:
		return static
	}
}
