// Package style defines the LayoutStyle contract (spec §3/§6): the plain
// data the engine reads to lay a node out. It owns no tree, no cascade,
// no tokenizer — a Host hands back a Style value for each node it is
// asked about, built however the caller likes (hardcoded, parsed by
// cssvalue, or computed from a real CSS cascade upstream).
package style

// Display selects which of the five layout algorithms LayoutDriver
// dispatches to for a node's children (spec §4.1).
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayInline
	DisplayInlineBlock
	DisplayInlineFlex
	DisplayInlineGrid
	DisplayNone
)

// Position selects how a node's own box is placed relative to its
// containing block.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// BoxSizing chooses whether Width/Height describe the content box or the
// border box (spec §4.2).
type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

// Overflow records the CSS overflow value for the host. The engine does
// not read it: it has no effect on any size or position, and no
// clipping or scrolling is implemented.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowClip
)

// FlexDirection is the main-axis direction for a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsReverse reports whether items are laid out back-to-front along the
// main axis.
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// FlexWrap controls whether flex items are forced onto one line.
type FlexWrap uint8

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapOn
	FlexWrapReverse
)

// JustifyContent distributes free space along the main axis (flex) or
// inline axis (grid).
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems is a container's default cross-axis alignment for its
// children, overridable per item by AlignSelf.
type AlignItems uint8

const (
	AlignStretch AlignItems = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
)

// AlignContent distributes free space across cross-axis lines (only
// meaningful when a flex container wraps onto more than one line, or for
// a grid's track alignment).
type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// GridAutoFlow controls how auto-placed grid items walk the implicit
// grid (spec §4.6).
type GridAutoFlow uint8

const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
	GridFlowRowDense
	GridFlowColumnDense
)

// Dense reports whether this flow mode backfills earlier holes in the
// implicit grid instead of only ever advancing forward.
func (f GridAutoFlow) Dense() bool {
	return f == GridFlowRowDense || f == GridFlowColumnDense
}

// Column reports whether auto-placement advances down columns instead of
// across rows.
func (f GridAutoFlow) Column() bool {
	return f == GridFlowColumn || f == GridFlowColumnDense
}

// Spacing is a four-sided box of Length values: margin, padding, or
// border-width, keyed the CSS way (top, right, bottom, left).
type Spacing struct {
	Top, Right, Bottom, Left Length
}

// SpacingPt builds a Spacing with all four sides set to the same
// concrete pixel length. Convenient for tests and simple fixtures.
func SpacingPt(v float64) Spacing {
	p := Pt(v)
	return Spacing{Top: p, Right: p, Bottom: p, Left: p}
}

// Inset is the set of CSS inset properties (top/right/bottom/left) used
// by AbsPosLayout (spec §4.8). Unlike Spacing, every side may be Auto.
type Inset struct {
	Top, Right, Bottom, Left Length
}

// TrackSizeKind tags a grid track-sizing function's variant.
type TrackSizeKind uint8

const (
	TrackFixed TrackSizeKind = iota
	TrackFlex
	TrackMinContent
	TrackMaxContent
	TrackAuto
	TrackMinMax
)

// TrackSize is a single grid-template track sizing function: a fixed
// length, an `fr` flex factor, one of the min/max-content keywords, or a
// minmax(min, max) pair (spec §4.6).
type TrackSize struct {
	Kind TrackSizeKind

	// Fixed holds the length for TrackFixed.
	Fixed Length

	// Flex holds the fr factor for TrackFlex.
	Flex float64

	// Min/Max hold the two track functions of a TrackMinMax pair.
	Min, Max *TrackSize
}

// FixedTrack builds a TrackSize for a concrete length (e.g. "100px").
func FixedTrack(l Length) TrackSize { return TrackSize{Kind: TrackFixed, Fixed: l} }

// FrTrack builds a TrackSize for an `fr` flexible track.
func FrTrack(fr float64) TrackSize { return TrackSize{Kind: TrackFlex, Flex: fr} }

// MinMaxTrack builds a TrackSize for minmax(min, max).
func MinMaxTrack(min, max TrackSize) TrackSize {
	return TrackSize{Kind: TrackMinMax, Min: &min, Max: &max}
}

// AutoTrack is the `auto` track sizing keyword.
var AutoTrack = TrackSize{Kind: TrackAuto}

// GridPlacement is a single grid-line placement (grid-column-start,
// grid-row-end, etc). Line is 1-indexed per the CSS Grid spec; Auto
// means the placement is left to auto-placement or to Span.
type GridPlacement struct {
	Line int
	Auto bool
	Span int // 0 means "no explicit span", 1 is the CSS default.
}

// AutoPlacement is the zero-span, auto-line placement used when a grid
// item's style doesn't name an explicit line or span.
var AutoPlacement = GridPlacement{Auto: true}

// Style is the full LayoutStyle contract a Host hands back per node
// (spec §3). Every Length field defaults to Auto; every enum field
// defaults to its CSS initial value (Display: Block, Position: Static,
// JustifyContent: FlexStart, etc.) so a zero-value Style behaves like an
// unstyled block element.
type Style struct {
	Display  Display
	Position Position

	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	BoxSizing BoxSizing
	Overflow  Overflow

	Margin  Spacing
	Padding Spacing
	Border  Spacing

	Inset Inset

	AspectRatio float64 // 0 means unset.

	// Flex container properties.
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent
	RowGap, ColumnGap Length

	// Flex item properties.
	FlexGrow, FlexShrink float64
	FlexBasis            Length
	AlignSelf            *AlignItems // nil means "inherit AlignItems from parent".
	Order                int

	// Grid container properties.
	GridTemplateColumns []TrackSize
	GridTemplateRows    []TrackSize
	GridAutoFlow        GridAutoFlow
	GridAutoColumns     []TrackSize
	GridAutoRows        []TrackSize
	JustifyItems        AlignItems
	JustifyItemsSelf    *AlignItems

	// Grid item properties.
	GridColumnStart, GridColumnEnd GridPlacement
	GridRowStart, GridRowEnd       GridPlacement

	// ZIndex only affects paint order in a full renderer; the engine
	// does not read it or copy it into Result, and it plays no part in
	// any size or position computation.
	ZIndex int
}

// ResolvedAlignSelf returns the item's effective cross-axis alignment,
// falling back to the parent container's AlignItems when AlignSelf is
// unset.
func (s Style) ResolvedAlignSelf(parentAlignItems AlignItems) AlignItems {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parentAlignItems
}

// ResolvedJustifySelf returns the item's effective inline-axis alignment
// within its grid cell, falling back to the container's JustifyItems when
// JustifyItemsSelf is unset.
func (s Style) ResolvedJustifySelf(parentJustifyItems AlignItems) AlignItems {
	if s.JustifyItemsSelf != nil {
		return *s.JustifyItemsSelf
	}
	return parentJustifyItems
}

// IsAbsolutelyPositioned reports whether this node is taken out of
// normal flow and positioned against a containing block by AbsPosLayout.
func (s Style) IsAbsolutelyPositioned() bool {
	return s.Position == PositionAbsolute || s.Position == PositionFixed
}
