// Package measuretext is a reference Measurer (engine.Measurer)
// implementation: it loads TrueType fonts and measures/wraps text the
// same way the engine's Host asks it to, so a caller that has no text
// shaping stack of its own can still lay out text nodes end to end.
//
// Font loading, face caching, and metrics here are adapted from the
// teacher's internal/render font package, trimmed to measurement only
// (DrawString and its image/draw dependency are dropped — this package
// never paints, only measures).
package measuretext

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/cssflow/layout/internal/core/geom"
)

const defaultDPI = 72

// Font wraps a TrueType font with the pixel-accurate metrics the engine
// needs to measure and wrap text.
type Font struct {
	tt            *truetype.Font
	sizePt        float64
	dpi           float64
	letterPercent float64
	capRatio      float64
}

// LoadFont loads a .ttf file from disk at the given point size (1pt =
// 1/72 inch; defaults to 72 DPI, so 1pt = 1px until SetDPI is called).
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{
		tt:       ttf,
		dpi:      defaultDPI,
		capRatio: 0.85,
	}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFontFromBytes parses a TrueType font from bytes and panics on
// error. Intended for package-level static initialization with
// //go:embed.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI sets the font's DPI scaling. Values <= 0 reset to 72.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetFontSizePt sets the font size in points, floored just above zero to
// avoid degenerate scaling.
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// SetLetterSpacingPercent sets tracking as a percentage of font size.
func (f *Font) SetLetterSpacingPercent(percent float64) *Font {
	f.letterPercent = percent
	return f
}

// HeightPt returns the font size in points.
func (f *Font) HeightPt() float64 { return f.sizePt }

// HeightPx returns the font size in pixels at the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

func (f *Font) cacheKey() string {
	return fmt.Sprintf("%p_%.3f_%.1f", f.tt, f.sizePt, f.dpi)
}

// Face returns a font.Face configured with the current size and DPI,
// served from the package's shared face cache.
func (f *Font) Face() font.Face {
	key := f.cacheKey()
	if face, ok := faceCache.get(key); ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	faceCache.put(key, face)
	return face
}

// TrackingPx returns the tracking offset in pixels applied between
// glyphs.
func (f *Font) TrackingPx() float64 {
	return (f.letterPercent / 100.0) * f.HeightPx()
}

// AscentPx returns the distance from baseline to top, in pixels.
func (f *Font) AscentPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Ascent)
}

// DescentPx returns the distance from baseline to bottom, in pixels.
func (f *Font) DescentPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Descent)
}

// LineHeightPx returns ascent + descent + leading, in pixels.
func (f *Font) LineHeightPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Height)
}

// CapHeightPx estimates the visual cap height (the height of "H"), used
// by text-align/vertical centering callers that want to align on glyph
// ink rather than the full ascent. Falls back to a fraction of ascent
// when the face reports no usable glyph bounds for 'H'.
func (f *Font) CapHeightPx() float64 {
	face := f.Face()
	if b, _, ok := face.GlyphBounds('H'); ok {
		h := geom.Unfix(b.Max.Y - b.Min.Y)
		if h > 0 {
			return h
		}
	}
	return f.AscentPx() * f.capRatio
}

// MeasureString measures a single line's pixel width and line height.
// Width includes glyph advances plus tracking between characters.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	face := f.Face()
	adv := font.MeasureString(face, s)
	w = geom.Unfix(adv)
	runes := []rune(s)
	if len(runes) > 1 {
		w += float64(len(runes)-1) * f.TrackingPx()
	}
	h = f.LineHeightPx()
	return
}
