package engine

import "github.com/cssflow/layout/style"

// NodeID identifies a node within a Host's tree. The engine never
// allocates these itself — the Host owns the tree and hands IDs back
// through Children.
type NodeID uint32

// Host is the tree-storage capability a caller must provide: enough to
// walk a node tree and read its style, without the engine ever knowing
// how that tree is actually stored (spec §6, mirroring the split the
// teacher draws between a Shape that draws itself and a container that
// merely owns children — see instructions/shape.go's BoundedShape and
// instructions/group.go's Group).
type Host interface {
	// Style returns the style of the given node.
	Style(id NodeID) style.Style

	// Children returns id's children in tree order. Order matters for
	// Order-less placement (DOM order is the fallback for FlexLayout and
	// the default auto-placement order for GridLayout).
	Children(id NodeID) []NodeID

	// IsText reports whether id is a leaf text node, whose intrinsic
	// size comes from Measurer rather than from laying out Children.
	IsText(id NodeID) bool

	// IsReplaced reports whether id is a replaced element (image, video,
	// canvas) with a natural size of its own, reported by IntrinsicSize.
	IsReplaced(id NodeID) bool

	// IntrinsicSize returns a replaced element's natural size, used as
	// the definite-size fallback when neither Width/Height nor
	// AspectRatio can otherwise resolve it. Only called when
	// IsReplaced(id) is true.
	IntrinsicSize(id NodeID) Size
}

// MeasureMode mirrors AvailableSpaceKind for the subset a Measurer is
// asked to honor: a text run is never asked to measure against
// MinContent/MaxContent directly, only Definite (wrap to this width) or
// Indefinite (report the unwrapped single-line size).
type MeasureMode uint8

const (
	MeasureExact MeasureMode = iota
	MeasureAtMost
	MeasureUnbounded
)

// MeasureRequest is what LayoutDriver passes a Measurer for a text leaf.
type MeasureRequest struct {
	Mode  MeasureMode
	Width float64 // meaningful when Mode != MeasureUnbounded.
}

// Measurer is the text-shaping capability a caller must provide to lay
// out text leaves (spec §4.7, §6). Implementations measure single-line,
// shrink-to-fit text only — multi-pass bidi/line-breaking beyond greedy
// word wrap is explicitly out of scope (see measuretext for the
// reference implementation used by this module's own tests).
type Measurer interface {
	// Measure returns the size text content for id would occupy when
	// wrapped to req.Width (or its natural unwrapped size, if req.Mode
	// is MeasureUnbounded).
	Measure(id NodeID, req MeasureRequest) Size

	// Baseline returns the distance from the top of the measured box to
	// its first line's text baseline. LayoutDriver does not call it:
	// flex items with AlignBaseline are placed at the cross-start edge of
	// their line, the same as AlignFlexStart.
	Baseline(id NodeID, size Size) float64
}
