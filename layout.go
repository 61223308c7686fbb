// Package layout is the public entry point: it re-exports the engine
// and style types under one namespace and provides the top-level
// Layout function, the same way the teacher's root package re-exports
// its internal subpackages through aliases.go.
package layout

import (
	"github.com/cssflow/layout/engine"
	"github.com/cssflow/layout/style"
)

// Type aliases for the public API.
type (
	Host     = engine.Host
	Measurer = engine.Measurer
	NodeID   = engine.NodeID

	Size           = engine.Size
	Point          = engine.Point
	Edges          = engine.Edges
	Result         = engine.Result
	Constraints    = engine.Constraints
	AvailableSpace = engine.AvailableSpace

	Style         = style.Style
	Length        = style.Length
	Spacing       = style.Spacing
	Inset         = style.Inset
	TrackSize     = style.TrackSize
	GridPlacement = style.GridPlacement
)

// Re-exported style enum values, so a caller can write layout.DisplayFlex
// instead of importing the style subpackage directly for the common case.
const (
	DisplayBlock       = style.DisplayBlock
	DisplayFlex        = style.DisplayFlex
	DisplayGrid        = style.DisplayGrid
	DisplayInline      = style.DisplayInline
	DisplayInlineBlock = style.DisplayInlineBlock
	DisplayInlineFlex  = style.DisplayInlineFlex
	DisplayInlineGrid  = style.DisplayInlineGrid
	DisplayNone        = style.DisplayNone

	PositionStatic   = style.PositionStatic
	PositionRelative = style.PositionRelative
	PositionAbsolute = style.PositionAbsolute
	PositionFixed    = style.PositionFixed
)

// Re-exported Length constructors.
var (
	Auto       = style.Auto
	Pt         = style.Pt
	Pct        = style.Pct
	MinContent = style.MinContent
	MaxContent = style.MaxContent
	FitContent = style.FitContent
)

// Re-exported AvailableSpace constructors.
var (
	Definite   = engine.Definite
	Indefinite = engine.Indefinite
)

// NewDriver constructs a LayoutDriver over host and measurer (measurer
// may be nil for trees with no text leaves).
func NewDriver(host Host, measurer Measurer) *engine.LayoutDriver {
	return engine.NewLayoutDriver(host, measurer)
}

// Layout runs LayoutDriver against root with the given available space
// on each axis, returning the computed Result for root. viewport is
// the initial containing block that any position:fixed descendant
// resolves against regardless of how deep it sits in the tree; callers
// with no fixed-position content can pass containingBlock again. Call
// driver.Origin(id) for any descendant's resolved position afterward.
func Layout(driver *engine.LayoutDriver, root NodeID, availableWidth, availableHeight AvailableSpace, containingBlock, viewport Size) Result {
	return driver.Layout(root, Constraints{
		AvailableWidth:  availableWidth,
		AvailableHeight: availableHeight,
		ContainingBlock: containingBlock,
		Viewport:        viewport,
	}, engine.RequestPreferredSize)
}
