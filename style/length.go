package style

// LengthKind tags which variant of the Length sum type a value holds.
// Go has no native sum types, so this follows the same "tagged struct"
// shape the teacher uses for its enums (zero value is always the CSS
// initial behavior — see ContainerStyle/ItemStyle in the teacher's
// instructions package, where 0 means "auto").
type LengthKind uint8

const (
	// LengthAuto is the zero value: "let the consumer decide" (spec §9,
	// "Auto as absence, not value").
	LengthAuto LengthKind = iota
	LengthPoints
	LengthPercent
	LengthCalc
	LengthMinContent
	LengthMaxContent
	LengthFitContent
	LengthEnv
	LengthUndefined
)

// Length is the CSS <length-percentage> sum type from spec §3:
// Auto | Points(L) | Percent(f32) | Calc(handle) | MinContent | MaxContent
// | FitContent | Env(name, fallback) | Undefined.
type Length struct {
	Kind LengthKind

	// Value holds the Points value in pixels, or the Percent fraction
	// (0.5 == 50%).
	Value float64

	// CalcHandle is an opaque host-resolved handle for LengthCalc,
	// passed back to the host's ResolveCalc callback unchanged.
	CalcHandle int32

	// EnvName/EnvFallback are used only for LengthEnv.
	EnvName     string
	EnvFallback *Length
}

// Auto is the explicit zero-value constructor, for readability at call
// sites that build a Style literal.
var Auto = Length{Kind: LengthAuto}

// Undefined represents a style field that was never set and carries no
// fallback behavior of its own (distinct from Auto, which has
// consumer-defined fallback policy).
var Undefined = Length{Kind: LengthUndefined}

// MinContent, MaxContent, FitContent are the three intrinsic-sizing
// keywords.
var (
	MinContent = Length{Kind: LengthMinContent}
	MaxContent = Length{Kind: LengthMaxContent}
	FitContent = Length{Kind: LengthFitContent}
)

// Pt constructs a Length::Points(v) value (a concrete pixel length).
func Pt(v float64) Length { return Length{Kind: LengthPoints, Value: v} }

// Pct constructs a Length::Percent(p) value. p is a fraction, not a
// percentage: Pct(0.5) is CSS "50%".
func Pct(p float64) Length { return Length{Kind: LengthPercent, Value: p} }

// Calc constructs a Length::Calc(handle) value for a host-resolved
// calc() expression.
func Calc(handle int32) Length { return Length{Kind: LengthCalc, CalcHandle: handle} }

// Env constructs a Length::Env(name, fallback) value.
func Env(name string, fallback Length) Length {
	return Length{Kind: LengthEnv, EnvName: name, EnvFallback: &fallback}
}

// IsAuto reports whether this Length is the Auto variant.
func (l Length) IsAuto() bool { return l.Kind == LengthAuto }

// IsDefinite reports whether this Length can resolve to a concrete number
// without recursing into the owning node's intrinsic size (Points and
// Percent against a known basis; Percent against an unknown basis is
// still "not definite" but that can only be known at resolution time).
func (l Length) IsDefinite() bool {
	return l.Kind == LengthPoints || l.Kind == LengthPercent
}
