// Package engine implements the layout algorithms themselves: the
// recursive LayoutDriver dispatch and the five per-Display algorithms it
// delegates to (spec §4). The engine owns no tree storage of its own —
// it walks a caller-supplied Host by NodeID, the same capability-set
// split the teacher's instructions package draws between Shape (paints
// itself) and a container that merely owns children.
package engine

import "github.com/cssflow/layout/style"

// Size is a resolved two-dimensional box size in pixels.
type Size struct {
	Width, Height float64
}

// Point is a resolved 2D offset in pixels, relative to a node's
// containing block's content-box origin.
type Point struct {
	X, Y float64
}

// Edges is a resolved four-sided box of pixel values (margin, border, or
// padding after length resolution).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// Result is what LayoutDriver produces for a single node: its border-box
// size, its origin relative to its containing block, and the resolved
// edges needed to place children and draw borders.
type Result struct {
	Size     Size
	Origin   Point
	Margin   Edges
	Border   Edges
	Padding  Edges

	// ContentSize is the size of the content box alone: Size minus
	// border and padding (see Resolved.BorderBoxSize).
	ContentSize Size
}

// OptionF64 is a present-or-absent float64, standing in for the
// LengthNum-generic Option<Num> the spec describes (spec §4.2); the
// engine computes in plain float64 rather than being monomorphized over
// numeric.Num, so this is simply a bool-tagged float.
type OptionF64 struct {
	Value   float64
	Present bool
}

// Some builds a present OptionF64.
func Some(v float64) OptionF64 { return OptionF64{Value: v, Present: true} }

// None is the absent OptionF64.
var None = OptionF64{}

// Get returns the value and whether it was present.
func (o OptionF64) Get() (float64, bool) { return o.Value, o.Present }

// Or returns the value if present, else fallback.
func (o OptionF64) Or(fallback float64) float64 {
	if o.Present {
		return o.Value
	}
	return fallback
}

// AvailableSpace is the space a node's parent offers it along one axis:
// a Definite amount, MinContent/MaxContent ("size yourself to your
// smallest/largest intrinsic size"), or Indefinite (e.g. height in a
// scrolling container with unconstrained height).
type AvailableSpaceKind uint8

const (
	SpaceDefinite AvailableSpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
	SpaceIndefinite
)

type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64 // meaningful only when Kind == SpaceDefinite.
}

// Definite builds an AvailableSpace carrying a concrete pixel amount.
func Definite(v float64) AvailableSpace { return AvailableSpace{Kind: SpaceDefinite, Value: v} }

// Indefinite is the AvailableSpace for an axis with no known constraint.
var Indefinite = AvailableSpace{Kind: SpaceIndefinite}

// MinContentSpace / MaxContentSpace request a node's intrinsic min/max
// size along this axis.
var (
	MinContentSpace = AvailableSpace{Kind: SpaceMinContent}
	MaxContentSpace = AvailableSpace{Kind: SpaceMaxContent}
)

// IsDefinite reports whether this AvailableSpace carries a concrete
// pixel amount.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == SpaceDefinite }

// Constraints bundles the two axes of AvailableSpace a node is laid out
// against, plus the containing block it is positioned within.
type Constraints struct {
	AvailableWidth  AvailableSpace
	AvailableHeight AvailableSpace

	// ContainingBlock is the content-box size of the element this node's
	// percentages resolve against.
	ContainingBlock Size

	// Viewport is the initial containing block (spec §4.1's
	// layout(node, available_size, viewport) signature): the box a
	// position:fixed descendant's Inset resolves against regardless of
	// how many position:static ancestors sit between it and the root.
	Viewport Size

	// PositionedContainingBlock / HasPositionedContainingBlock track the
	// nearest ancestor box whose style established a new positioned
	// containing block (Position != Static) — what a position:absolute
	// descendant's Inset resolves against (spec §4.8 step 1). Every
	// container algorithm sets these for its own children: to its own
	// just-resolved content box when its own Position != Static, else
	// passed through unchanged. HasPositionedContainingBlock false means
	// no positioned ancestor exists yet, so AbsPosLayout falls back to
	// Viewport (CSS's own fallback to the initial containing block).
	PositionedContainingBlock    Size
	HasPositionedContainingBlock bool
}

// positionedAncestorFor decides what cons.PositionedContainingBlock should
// become for id's children: id's own just-resolved content box when id
// itself establishes a new positioned containing block, else whatever
// ancestor box cons already carries down.
func positionedAncestorFor(s style.Style, cons Constraints, ownContentBox Size) (Size, bool) {
	if s.Position != style.PositionStatic {
		return ownContentBox, true
	}
	return cons.PositionedContainingBlock, cons.HasPositionedContainingBlock
}

// RequestKind distinguishes the four things a caller can ask
// LayoutDriver for about a node (spec §4.1/4.3).
type RequestKind uint8

const (
	RequestPreferredSize RequestKind = iota
	RequestMinContent
	RequestMaxContent
	RequestPosition
)

// styleHasPercent reports whether any Length in s that contributes to
// sizing depends on the parent's content-box size — used to decide
// whether a node's cache must key on ParentInnerW/H (spec §4.3).
func styleHasPercent(s style.Style) bool {
	fields := []style.Length{
		s.Width, s.Height, s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight,
		s.Margin.Top, s.Margin.Right, s.Margin.Bottom, s.Margin.Left,
		s.Padding.Top, s.Padding.Right, s.Padding.Bottom, s.Padding.Left,
		s.FlexBasis,
		s.Inset.Top, s.Inset.Right, s.Inset.Bottom, s.Inset.Left,
	}
	for _, l := range fields {
		if l.Kind == style.LengthPercent {
			return true
		}
	}
	return false
}
