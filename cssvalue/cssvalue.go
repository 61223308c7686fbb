// Package cssvalue parses individual CSS length and grid-track literals
// into style.Length / style.TrackSize values. It is a convenience for
// test fixtures and simple hosts that want to write "16px" or "1fr"
// instead of constructing style.Length/style.TrackSize literals by
// hand — it is not a CSS tokenizer, has no notion of a cascade or a
// full property grammar, and never participates in layout itself (spec
// explicitly keeps full CSS tokenization/cascade out of scope).
package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cssflow/layout/style"
)

// ParseLength parses a single CSS <length-percentage> token: "auto",
// "16px" / bare "16" (treated as pixels), "50%", "min-content",
// "max-content", or "fit-content".
func ParseLength(s string) (style.Length, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "auto":
		return style.Auto, nil
	case "min-content":
		return style.MinContent, nil
	case "max-content":
		return style.MaxContent, nil
	case "fit-content":
		return style.FitContent, nil
	}

	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return style.Length{}, fmt.Errorf("cssvalue: invalid percent length %q: %w", s, err)
		}
		return style.Pct(v / 100), nil
	}

	numeric := strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return style.Length{}, fmt.Errorf("cssvalue: invalid length %q: %w", s, err)
	}
	return style.Pt(v), nil
}

// MustParseLength is ParseLength but panics on error, for building test
// fixtures and static tables where a bad literal is a programming
// mistake, not a runtime condition.
func MustParseLength(s string) style.Length {
	l, err := ParseLength(s)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseTrackSize parses a single grid-template track: a length (as
// ParseLength), an `fr` flex factor like "2fr", or "auto".
func ParseTrackSize(s string) (style.TrackSize, error) {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return style.AutoTrack, nil
	}
	if strings.HasSuffix(s, "fr") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "fr"), 64)
		if err != nil {
			return style.TrackSize{}, fmt.Errorf("cssvalue: invalid fr track %q: %w", s, err)
		}
		return style.FrTrack(v), nil
	}
	l, err := ParseLength(s)
	if err != nil {
		return style.TrackSize{}, err
	}
	return style.FixedTrack(l), nil
}

// ParseTrackList parses a whitespace-separated grid-template-columns /
// grid-template-rows value, e.g. "100px 1fr 2fr".
func ParseTrackList(s string) ([]style.TrackSize, error) {
	fields := strings.Fields(s)
	out := make([]style.TrackSize, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTrackSize(f)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// MustParseTrackList is ParseTrackList but panics on error.
func MustParseTrackList(s string) []style.TrackSize {
	t, err := ParseTrackList(s)
	if err != nil {
		panic(err)
	}
	return t
}
