package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssflow/layout/style"
)

func TestFlexDirectionHelpers(t *testing.T) {
	require.True(t, style.FlexRow.IsRow())
	require.True(t, style.FlexRowReverse.IsRow())
	require.False(t, style.FlexColumn.IsRow())

	require.False(t, style.FlexRow.IsReverse())
	require.True(t, style.FlexRowReverse.IsReverse())
	require.True(t, style.FlexColumnReverse.IsReverse())
}

func TestGridAutoFlowHelpers(t *testing.T) {
	require.False(t, style.GridFlowRow.Dense())
	require.True(t, style.GridFlowRowDense.Dense())
	require.True(t, style.GridFlowColumnDense.Dense())

	require.False(t, style.GridFlowRow.Column())
	require.True(t, style.GridFlowColumn.Column())
	require.True(t, style.GridFlowColumnDense.Column())
}

func TestResolvedAlignSelfFallsBackToParent(t *testing.T) {
	var s style.Style
	require.Equal(t, style.AlignCenter, s.ResolvedAlignSelf(style.AlignCenter))

	self := style.AlignFlexEnd
	s.AlignSelf = &self
	require.Equal(t, style.AlignFlexEnd, s.ResolvedAlignSelf(style.AlignCenter))
}

func TestResolvedJustifySelfFallsBackToParent(t *testing.T) {
	var s style.Style
	require.Equal(t, style.AlignStretch, s.ResolvedJustifySelf(style.AlignStretch))

	self := style.AlignCenter
	s.JustifyItemsSelf = &self
	require.Equal(t, style.AlignCenter, s.ResolvedJustifySelf(style.AlignStretch))
}

func TestIsAbsolutelyPositioned(t *testing.T) {
	require.False(t, style.Style{Position: style.PositionStatic}.IsAbsolutelyPositioned())
	require.False(t, style.Style{Position: style.PositionRelative}.IsAbsolutelyPositioned())
	require.True(t, style.Style{Position: style.PositionAbsolute}.IsAbsolutelyPositioned())
	require.True(t, style.Style{Position: style.PositionFixed}.IsAbsolutelyPositioned())
}

func TestSpacingPt(t *testing.T) {
	sp := style.SpacingPt(4)
	want := style.Pt(4)
	require.Equal(t, want, sp.Top)
	require.Equal(t, want, sp.Right)
	require.Equal(t, want, sp.Bottom)
	require.Equal(t, want, sp.Left)
}

func TestAutoPlacementIsAutoWithNoSpan(t *testing.T) {
	require.True(t, style.AutoPlacement.Auto)
	require.Equal(t, 0, style.AutoPlacement.Span)
}

func TestTrackConstructors(t *testing.T) {
	fixed := style.FixedTrack(style.Pt(100))
	require.Equal(t, style.TrackFixed, fixed.Kind)
	require.Equal(t, style.Pt(100), fixed.Fixed)

	fr := style.FrTrack(2)
	require.Equal(t, style.TrackFlex, fr.Kind)
	require.Equal(t, 2.0, fr.Flex)

	mm := style.MinMaxTrack(style.AutoTrack, fr)
	require.Equal(t, style.TrackMinMax, mm.Kind)
	require.Equal(t, style.TrackAuto, mm.Min.Kind)
	require.Equal(t, style.TrackFlex, mm.Max.Kind)
}
