package engine

import "github.com/cssflow/layout/style"

// LengthResolver turns a style.Length into a concrete pixel value given
// a resolution basis (spec §4.2). It has no state of its own — every
// method is a pure function of its arguments, grounded on the same
// "resolve against an optional basis, fall through to None on anything
// that can't be known yet" shape the teacher's ContainerStyle/ItemStyle
// percentage handling follows in instructions/auto_layout.go.
type LengthResolver struct {
	// ResolveCalc resolves a style.LengthCalc handle against the given
	// basis. Supplying calc() evaluation is a host concern (spec
	// explicitly keeps calc() opaque to the engine); a nil ResolveCalc
	// makes every Calc length resolve to None.
	ResolveCalc func(handle int32, basis OptionF64) OptionF64

	// ResolveEnv resolves a style.LengthEnv by name (e.g. safe-area
	// insets). A nil ResolveEnv falls through to the Length's own
	// EnvFallback.
	ResolveEnv func(name string) OptionF64
}

// Resolve converts l to a concrete pixel value against basis (typically
// a parent's content-box size along the relevant axis). Returns None for
// Auto, MinContent, MaxContent, and FitContent: those are intrinsic
// keywords a caller must handle by invoking RequestMinContent /
// RequestMaxContent instead of treating them as a plain number.
func (r LengthResolver) Resolve(l style.Length, basis OptionF64) OptionF64 {
	switch l.Kind {
	case style.LengthPoints:
		return Some(l.Value)

	case style.LengthPercent:
		if v, ok := basis.Get(); ok {
			return Some(v * l.Value)
		}
		return None

	case style.LengthCalc:
		if r.ResolveCalc == nil {
			return None
		}
		return r.ResolveCalc(l.CalcHandle, basis)

	case style.LengthEnv:
		if r.ResolveEnv != nil {
			if v, ok := r.ResolveEnv(l.EnvName).Get(); ok {
				return Some(v)
			}
		}
		if l.EnvFallback != nil {
			return r.Resolve(*l.EnvFallback, basis)
		}
		return None

	default: // Auto, MinContent, MaxContent, FitContent, Undefined.
		return None
	}
}

// ResolveOr is Resolve with a fallback substituted for None, for call
// sites that want a definite number no matter what (e.g. padding, which
// CSS always treats as 0 when unresolvable).
func (r LengthResolver) ResolveOr(l style.Length, basis OptionF64, fallback float64) float64 {
	if v, ok := r.Resolve(l, basis).Get(); ok {
		return v
	}
	return fallback
}

// ResolveEdges resolves all four sides of a Spacing against a single
// basis (the containing block's inline size — per CSS, percentage
// margin/padding on every side resolves against the *width*, even for
// Top/Bottom). Unresolvable sides fall back to 0, matching CSS's
// treatment of indefinite-percentage padding/margin/border.
func (r LengthResolver) ResolveEdges(s style.Spacing, basis OptionF64) Edges {
	return Edges{
		Top:    r.ResolveOr(s.Top, basis, 0),
		Right:  r.ResolveOr(s.Right, basis, 0),
		Bottom: r.ResolveOr(s.Bottom, basis, 0),
		Left:   r.ResolveOr(s.Left, basis, 0),
	}
}

// MarginEdges is a resolved Edges for margin specifically, carrying which
// sides were Auto alongside the resolved (Auto-as-0) numbers: block's
// "margin: 0 auto" centering and flex's auto-margin space absorption both
// need to know which sides were Auto, not just their resolved value, so
// ResolveEdges (which collapses Auto to 0 uniformly, matching CSS's
// treatment of unresolvable border/padding) can't serve them directly.
type MarginEdges struct {
	Edges
	AutoTop, AutoRight, AutoBottom, AutoLeft bool
}

// ResolveMarginEdges is ResolveEdges for margin, additionally recording
// which sides are the Auto keyword.
func (r LengthResolver) ResolveMarginEdges(s style.Spacing, basis OptionF64) MarginEdges {
	return MarginEdges{
		Edges:      r.ResolveEdges(s, basis),
		AutoTop:    s.Top.IsAuto(),
		AutoRight:  s.Right.IsAuto(),
		AutoBottom: s.Bottom.IsAuto(),
		AutoLeft:   s.Left.IsAuto(),
	}
}

// ownTentative resolves a node's own Width/Height against cons before any
// children are considered: an explicit Length on the style wins; Auto
// falls back to the available space offered by the parent when that
// space is itself definite (block's "auto width fills the containing
// block" rule, generalized here to both axes so a flex item's
// align-items: stretch — which hands the cross axis down as a Definite
// AvailableSpace — can make an Auto cross-size child fill it the same
// way). Both fall through to None when neither source resolves,
// leaving the node to size itself from its children (spec §4.2/§4.4).
func (r LengthResolver) ownTentative(s style.Style, cons Constraints) (width, height OptionF64) {
	width = r.Resolve(s.Width, Some(cons.ContainingBlock.Width))
	if !width.Present && cons.AvailableWidth.IsDefinite() {
		width = Some(cons.AvailableWidth.Value)
	}
	height = r.Resolve(s.Height, Some(cons.ContainingBlock.Height))
	if !height.Present && cons.AvailableHeight.IsDefinite() {
		height = Some(cons.AvailableHeight.Value)
	}
	return width, height
}

// Clamp applies a node's MinWidth/MaxWidth-style bounds to a tentative
// size, resolving both bounds against basis. A Max that resolves to None
// imposes no ceiling; a Min that resolves to None imposes no floor. If
// both resolve and Min > Max, CSS's own rule applies: Min wins.
func (r LengthResolver) Clamp(tentative float64, min, max style.Length, basis OptionF64) float64 {
	out := tentative
	if maxV, ok := r.Resolve(max, basis).Get(); ok && out > maxV {
		out = maxV
	}
	if minV, ok := r.Resolve(min, basis).Get(); ok && out < minV {
		out = minV
	}
	return out
}
