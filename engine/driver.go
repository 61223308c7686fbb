package engine

import (
	"github.com/cssflow/layout/cache"
	"github.com/cssflow/layout/style"
)

// LayoutDriver is the engine's single entry point (spec §4.1): given a
// Host, a Measurer, and a root NodeID, it recursively lays out the tree,
// dispatching each node's children to BlockLayout, FlexLayout,
// GridLayout, or InlineLayout according to that node's Display, and
// diverting any absolutely positioned descendant to AbsPosLayout.
//
// A LayoutDriver owns one per-node cache.Cache[Result], the same way the
// teacher's font rendering owns one fontLRU per loaded face rather than
// a single shared cache keyed by everything — see
// internal/render/font_cache.go.
type LayoutDriver struct {
	Host     Host
	Measurer Measurer

	resolver LengthResolver
	boxModel BoxModel

	caches  map[NodeID]*cache.Cache[Result]
	origins map[NodeID]Point
	results map[NodeID]Result
}

// NewLayoutDriver constructs a driver over host and measurer. measurer
// may be nil if the tree contains no text leaves.
func NewLayoutDriver(host Host, measurer Measurer) *LayoutDriver {
	resolver := LengthResolver{}
	return &LayoutDriver{
		Host:     host,
		Measurer: measurer,
		resolver: resolver,
		boxModel: BoxModel{Resolver: resolver},
		caches:   make(map[NodeID]*cache.Cache[Result]),
	}
}

// cacheFor returns (creating if needed) the per-node cache, primed with
// whether this node's style has any parent-size-dependent percentage.
func (d *LayoutDriver) cacheFor(id NodeID, s style.Style) *cache.Cache[Result] {
	c, ok := d.caches[id]
	if !ok {
		c = cache.New[Result](8)
		c.SetParentSizeAffected(styleHasPercent(s))
		d.caches[id] = c
	}
	return c
}

// Invalidate clears id's own cache and marks it dirty. Callers invoke
// this after mutating a node's style or children outside of a layout
// pass. Ancestors are not invalidated: their cached results are reused
// on the next Layout call until each of them is invalidated as well.
func (d *LayoutDriver) Invalidate(id NodeID) {
	if c, ok := d.caches[id]; ok {
		c.MarkDirty()
	}
}

func buildKey(kind RequestKind, cons Constraints) cache.Key {
	return cache.Key{
		Kind:         uint8(kind),
		ReqW:         availableSpaceHash(cons.AvailableWidth),
		ReqH:         availableSpaceHash(cons.AvailableHeight),
		ParentInnerW: cacheKeyHash(cons.ContainingBlock.Width),
		ParentInnerH: cacheKeyHash(cons.ContainingBlock.Height),
	}
}

// Layout computes id's Result against cons, consulting and populating
// id's cache. This is the function every recursive call below goes
// through, so cache hits short-circuit the whole subtree under id.
func (d *LayoutDriver) Layout(id NodeID, cons Constraints, kind RequestKind) Result {
	s := d.Host.Style(id)
	if s.Display == style.DisplayNone {
		return Result{}
	}

	c := d.cacheFor(id, s)
	key := buildKey(kind, cons)

	// RequestPosition only ever runs for a simple block parent's position
	// pass (spec §4.3: "position_cache: optional single entry ... used
	// only when parent is a simple block"), so it's served from the
	// single position slot rather than the general size-result LRU.
	if kind == RequestPosition {
		if hit, ok := c.GetPosition(key); ok {
			return hit
		}
		res := d.computeLayout(id, s, cons, kind)
		c.PutPosition(key, res)
		c.ClearDirty()
		return res
	}

	if hit, ok := c.Get(key); ok {
		return hit
	}

	res := d.computeLayout(id, s, cons, kind)
	c.Put(key, res)
	c.ClearDirty()
	return res
}

// computeLayout performs the actual dispatch (spec §4.1): resolve this
// node's own box, then, unless it's a text leaf, lay out its in-flow
// children with the algorithm its Display selects and its
// absolutely-positioned children with AbsPosLayout.
func (d *LayoutDriver) computeLayout(id NodeID, s style.Style, cons Constraints, kind RequestKind) Result {
	if d.Host.IsText(id) {
		return d.layoutText(id, s, cons)
	}

	if s.AspectRatio > 0 || d.Host.IsReplaced(id) {
		cons = d.applyIntrinsicAspect(id, s, cons)
	}

	switch s.Display {
	case style.DisplayFlex, style.DisplayInlineFlex:
		return d.layoutFlexContainer(id, s, cons, kind)
	case style.DisplayGrid, style.DisplayInlineGrid:
		return d.layoutGridContainer(id, s, cons, kind)
	case style.DisplayInline, style.DisplayInlineBlock:
		return d.layoutBlockContainer(id, s, cons, kind)
	default:
		return d.layoutBlockContainer(id, s, cons, kind)
	}
}

// applyIntrinsicAspect narrows the available space before dispatch: when
// exactly one available axis is definite, s.AspectRatio derives the
// other; when neither is definite and id is a replaced element, its
// IntrinsicSize supplies both (then adjusted by s.AspectRatio if set).
// A replaced element's own natural ratio is not used to derive a
// missing axis.
func (d *LayoutDriver) applyIntrinsicAspect(id NodeID, s style.Style, cons Constraints) Constraints {
	var width, height OptionF64
	if cons.AvailableWidth.IsDefinite() {
		width = Some(cons.AvailableWidth.Value)
	}
	if cons.AvailableHeight.IsDefinite() {
		height = Some(cons.AvailableHeight.Value)
	}
	if !width.Present && !height.Present && d.Host.IsReplaced(id) {
		natural := d.Host.IntrinsicSize(id)
		width, height = Some(natural.Width), Some(natural.Height)
	}
	width, height = ApplyAspectRatio(s, width, height)
	if w, ok := width.Get(); ok {
		cons.AvailableWidth = Definite(w)
	}
	if h, ok := height.Get(); ok {
		cons.AvailableHeight = Definite(h)
	}
	return cons
}

func (d *LayoutDriver) layoutText(id NodeID, s style.Style, cons Constraints) Result {
	if d.Measurer == nil {
		return Result{}
	}
	req := MeasureRequest{Mode: MeasureUnbounded}
	if cons.AvailableWidth.IsDefinite() {
		req = MeasureRequest{Mode: MeasureAtMost, Width: cons.AvailableWidth.Value}
	}
	size := d.Measurer.Measure(id, req)

	resolved := d.boxModel.Resolve(s, Some(size.Width), Some(size.Height),
		Some(cons.ContainingBlock.Width), Some(cons.ContainingBlock.Height))

	return Result{
		Size:        resolved.BorderBoxSize(),
		Margin:      resolved.Margin,
		Border:      resolved.Border,
		Padding:     resolved.Padding,
		ContentSize: resolved.ContentSize,
	}
}

// layoutAbsoluteChildren runs AbsPosLayout over id's children that are
// absolutely or fixed positioned (spec §4.8 step 1): a Fixed child
// resolves against the viewport no matter how deep it sits under
// position:static ancestors, an Absolute child resolves against the
// nearest ancestor box that established a positioned containing block
// (ownContentSize when id itself is one, else whatever cons already
// carries down), and falls back to the viewport when no ancestor ever
// established one (CSS's own fallback to the initial containing block).
// In-flow layout algorithms call this after placing their in-flow
// children so static position fallbacks see the final flow layout.
func (d *LayoutDriver) layoutAbsoluteChildren(id NodeID, s style.Style, cons Constraints, ownContentSize Size, staticPositions map[NodeID]Point) {
	positionedBox, hasPositionedBox := positionedAncestorFor(s, cons, ownContentSize)
	for _, child := range d.Host.Children(id) {
		cs := d.Host.Style(child)
		if !cs.IsAbsolutelyPositioned() {
			continue
		}
		containingBlock := cons.Viewport
		if cs.Position != style.PositionFixed && hasPositionedBox {
			containingBlock = positionedBox
		}
		d.layoutAbsPosChild(child, cs, containingBlock, cons.Viewport, staticPositions[child])
	}
}
