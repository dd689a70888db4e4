package keycap

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NameDefaultsFromFirstLegend(t *testing.T) {
	k := New(WithLegends("X"))
	assert.Equal(t, "X", k.Name)
}

func TestNew_NameFallsBackToKeycap(t *testing.T) {
	assert.Equal(t, "keycap", New(WithLegends("")).Name)
	assert.Equal(t, "keycap", New().Name)
}

func TestNew_ExplicitNameWinsOverLegends(t *testing.T) {
	k := New(WithName("tilde"), WithLegends("`", "", "~"))
	assert.Equal(t, "tilde", k.Name)
}

func TestNew_NameStaysMutable(t *testing.T) {
	k := New(WithLegends("A"))
	k.Name = "1.25U_" + k.Name
	assert.Contains(t, k.CommandLine(), "1.25U_A.stl")
}

func TestApply_LastOptionWins(t *testing.T) {
	k := New(WithKeyHeight(7), WithKeyHeight(11))
	assert.Equal(t, 11.0, k.KeyHeight)
}

func TestApply_ReapplyRestoresCallerChoice(t *testing.T) {
	// Simulates a family layer: defaults overlaid after construction, then
	// the caller's options applied again on top.
	opts := []Option{WithStemInsideTolerance(0.15)}
	k := New(opts...)
	k.StemInsideTolerance = 0.2 // family default
	k.Apply(opts...)
	assert.Equal(t, 0.15, k.StemInsideTolerance)
}

func TestQuote_PinnedEscapes(t *testing.T) {
	// The single-quote output is known not to survive the shell; the test
	// pins the current behavior rather than validating correctness.
	assert.Equal(t, `[\"'\"]`, Quote([]string{"'"}))
	assert.Equal(t, `["\""]`, Quote([]string{`"`}))
	assert.Equal(t, `[\"A\"]`, Quote([]string{"A"}))
}

func TestQuote_MultipleLegends(t *testing.T) {
	assert.Equal(t, `[\"-\",\"\",\"_\"]`, Quote([]string{"-", "", "_"}))
}

func TestQuote_EmptyList(t *testing.T) {
	assert.Equal(t, "[]", Quote(nil))
}

func TestCommandLine_Idempotent(t *testing.T) {
	k := New(WithLegends("Q"))
	require.Equal(t, k.CommandLine(), k.CommandLine())
}

func TestCommandLine_EndToEnd(t *testing.T) {
	k := New(
		WithKeyLength(13.7),
		WithKeyWidth(13.7),
		WithDishInvert(false),
		WithLegends("A"),
	)
	line := k.CommandLine()
	assert.Contains(t, line, `-D KEY_LENGTH="13.7"`)
	assert.Contains(t, line, `-D KEY_WIDTH="13.7"`)
	assert.Contains(t, line, `-D DISH_INVERT="false"`)
	assert.Contains(t, line, `-D LEGENDS="[\"A\"]"`)
}

func TestCommandLine_DuplicateRenderFlag(t *testing.T) {
	k := New(WithLegends("A"))
	line := k.CommandLine()

	rendered := `-D RENDER="[\"keycap\", \"stem\"]"`
	require.Equal(t, 2, strings.Count(line, rendered),
		"RENDER must appear exactly twice with identical content")

	defs := strings.Index(line, "-D ")
	require.True(t, strings.HasPrefix(line[defs:], rendered),
		"first definition must be RENDER")
	last := strings.LastIndex(line, rendered)
	assert.Equal(t, "scad/keycap_playground.scad", strings.TrimSpace(line[last+len(rendered):]),
		"second RENDER must be the final definition, right before the script path")
}

func TestCommandLine_SlotListsLongerThanLegends(t *testing.T) {
	// Slot lists may exceed the legend count; every entry serializes, no
	// truncation.
	k := New(
		WithLegends("A"),
		WithFonts("Gotham Rounded:style=Bold", "Gotham Rounded:style=Bold", "Arial Black:style=Regular"),
		WithFontSizes(5.5, 4, 4),
	)
	line := k.CommandLine()
	assert.Contains(t, line,
		`-D LEGEND_FONTS="[\"Gotham Rounded:style=Bold\", \"Gotham Rounded:style=Bold\", \"Arial Black:style=Regular\"]"`)
	assert.Contains(t, line, `-D LEGEND_FONT_SIZES="[5.5, 4, 4]"`)
}

func TestCommandLine_StemLocations(t *testing.T) {
	k := New(WithLegends("shift"), WithStemLocations(Vec3{0, 0, 0}, Vec3{12, 0, 0}, Vec3{-12, 0, 0}))
	assert.Contains(t, k.CommandLine(), `-D STEM_LOCATIONS="[[0, 0, 0], [12, 0, 0], [-12, 0, 0]]"`)
}

func TestCommandLine_RoundsLengthAndWidth(t *testing.T) {
	k := New(WithKeyLength(KeyUnit*1.25 - BetweenSpace))
	assert.Contains(t, k.CommandLine(), `-D KEY_LENGTH="17.32"`)
}

func TestCommandLine_OutputAndScriptPaths(t *testing.T) {
	k := New(
		WithName("enter"),
		WithOpenSCADPath("/usr/bin/openscad"),
		WithOutputPath("/tmp/stls"),
		WithPlaygroundPath("/opt/keycap_playground"),
	)
	line := k.CommandLine()
	assert.True(t, strings.HasPrefix(line, "/usr/bin/openscad -o /tmp/stls/enter.stl "))
	assert.True(t, strings.HasSuffix(line, " /opt/keycap_playground/scad/keycap_playground.scad"))
}

func TestCommandLine_DefaultsGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "default_command_line", []byte(New().CommandLine()))
}

func TestOptions_SliceOptionsCopyTheirArgument(t *testing.T) {
	trans := []Vec3{{1, 2, 3}}
	k := New(WithTrans(trans...))
	k.Trans[0] = Vec3{9, 9, 9}
	assert.Equal(t, Vec3{1, 2, 3}, trans[0], "mutating the keycap must not reach the caller's slice")
}
