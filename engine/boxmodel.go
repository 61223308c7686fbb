package engine

import "github.com/cssflow/layout/style"

// BoxModel resolves a node's margin/border/padding box together with its
// content-box size, honoring box-sizing the way CSS defines it: in
// border-box mode, Width/Height describe border-edge to border-edge, so
// the content box is Width/Height minus border and padding; in
// content-box mode they describe the content box directly (spec §4.2).
type BoxModel struct {
	Resolver LengthResolver
}

// Resolved is the fully resolved box for one node along both axes.
type Resolved struct {
	Margin, Border, Padding Edges

	// MarginAutoTop/Right/Bottom/Left record which sides of Margin were
	// the Auto keyword before margin resolution collapsed them to 0, so a
	// layout algorithm can still implement CSS's auto-margin behavior
	// (block centering, flex free-space absorption) instead of treating
	// every Auto margin as a hard 0.
	MarginAutoTop, MarginAutoRight, MarginAutoBottom, MarginAutoLeft bool

	// ContentSize is the content-box size once Width/Height (or the
	// caller-supplied tentative size, for intrinsic-sizing passes) has
	// been reconciled with box-sizing, min/max, and the border+padding
	// sum.
	ContentSize Size
}

// ContentSizeFor converts a node's own Width/Height (already resolved to a
// definite border-box-or-content-box number by the caller, per s's
// BoxSizing) into a content-box size, given the resolved border and
// padding for this node.
//
// tentative is nil-able via OptionF64: when the caller couldn't resolve
// Width/Height to a number at all (Auto, or an unresolvable Percent),
// pass None and get None back — the caller must fall through to
// intrinsic sizing instead.
func (bm BoxModel) ContentSizeFor(s style.Style, tentative OptionF64, border, padding Edges, horizontal bool) OptionF64 {
	v, ok := tentative.Get()
	if !ok {
		return None
	}
	if s.BoxSizing == style.BoxSizingBorderBox {
		if horizontal {
			v -= border.Horizontal() + padding.Horizontal()
		} else {
			v -= border.Vertical() + padding.Vertical()
		}
		if v < 0 {
			v = 0
		}
	}
	return Some(v)
}

// Resolve computes the full box for a node: border and padding resolved
// against basisWidth (CSS always resolves percentage padding/margin/
// border against the containing block's *width*, on every side), then
// Width/Height reconciled into a content-box size via ContentSizeFor and
// clamped by Min/Max.
//
// widthTentative/heightTentative are the node's own Width/Height already
// run through LengthResolver.Resolve against the containing block (None
// if Auto or unresolvable) — BoxModel doesn't re-derive them because
// intrinsic-sizing callers (FlexLayout computing flex-basis, for
// instance) substitute their own tentative size here instead of the
// style's literal Width/Height.
func (bm BoxModel) Resolve(s style.Style, widthTentative, heightTentative OptionF64, basisWidth OptionF64, basisHeight OptionF64) Resolved {
	marginResolved := bm.Resolver.ResolveMarginEdges(s.Margin, basisWidth)
	margin := marginResolved.Edges
	border := bm.Resolver.ResolveEdges(s.Border, basisWidth)
	padding := bm.Resolver.ResolveEdges(s.Padding, basisWidth)

	contentW := bm.ContentSizeFor(s, widthTentative, border, padding, true)
	contentH := bm.ContentSizeFor(s, heightTentative, border, padding, false)

	w, wOK := contentW.Get()
	if wOK {
		w = bm.Resolver.Clamp(w, s.MinWidth, s.MaxWidth, basisWidth)
	}
	h, hOK := contentH.Get()
	if hOK {
		h = bm.Resolver.Clamp(h, s.MinHeight, s.MaxHeight, basisHeight)
	}

	size := Size{}
	if wOK {
		size.Width = w
	}
	if hOK {
		size.Height = h
	}

	return Resolved{
		Margin:           margin,
		Border:           border,
		Padding:          padding,
		MarginAutoTop:    marginResolved.AutoTop,
		MarginAutoRight:  marginResolved.AutoRight,
		MarginAutoBottom: marginResolved.AutoBottom,
		MarginAutoLeft:   marginResolved.AutoLeft,
		ContentSize:      size,
	}
}

// BorderBoxSize converts a content-box size back to a border-box size by
// adding this Resolved's border and padding — the number a parent needs
// when placing this node as a sibling.
func (r Resolved) BorderBoxSize() Size {
	return Size{
		Width:  r.ContentSize.Width + r.Border.Horizontal() + r.Padding.Horizontal(),
		Height: r.ContentSize.Height + r.Border.Vertical() + r.Padding.Vertical(),
	}
}

// ApplyAspectRatio derives a missing axis from the other when s.AspectRatio
// is set and exactly one of width/height is definite (spec §4.2's
// replaced-element sizing rule, generalized to any node with an explicit
// aspect-ratio).
func ApplyAspectRatio(s style.Style, width, height OptionF64) (OptionF64, OptionF64) {
	if s.AspectRatio <= 0 {
		return width, height
	}
	w, wOK := width.Get()
	h, hOK := height.Get()
	switch {
	case wOK && !hOK:
		return width, Some(w / s.AspectRatio)
	case hOK && !wOK:
		return Some(h * s.AspectRatio), height
	default:
		return width, height
	}
}
