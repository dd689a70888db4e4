package catalog

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycapgen/internal/keycap"
)

func TestKeycaps_NamesGolden(t *testing.T) {
	g := goldie.New(t)
	names := Names(Keycaps())
	g.Assert(t, "catalog_names", []byte(strings.Join(names, "\n")+"\n"))
}

func TestKeycaps_FreshInstancesPerCall(t *testing.T) {
	a := Keycaps()
	b := Keycaps()
	a[0].Name = "mutated"
	assert.Equal(t, "blank", b[0].Name)
}

func TestBase_FamilyDefaults(t *testing.T) {
	k := Base(keycap.WithLegends("A"))
	assert.Equal(t, "riskeycap", k.KeyProfile)
	assert.Equal(t, keycap.Vec3{0, 110.1, 90}, k.KeyRotation)
	assert.Equal(t, "box_cherry", k.StemType)
	assert.Equal(t, 0.2, k.StemInsideTolerance)
}

func TestOverridePrecedence_SurvivesDeepChains(t *testing.T) {
	// FKey sits three layers above the base (Base -> Alphas -> FKey), each
	// setting its own font sizes; an explicit option still wins.
	k := FKey(keycap.WithLegends("F1"), keycap.WithFontSizes(2, 2, 2))
	assert.Equal(t, []float64{2, 2, 2}, k.FontSizes)

	// And without the override, the most-derived family default applies.
	assert.Equal(t, []float64{3, 4, 4}, FKey(keycap.WithLegends("F1")).FontSizes)
}

func TestOverridePrecedence_ScalarThroughSizeFamily(t *testing.T) {
	k := U225(keycap.WithLegends("shift"), keycap.WithStemInsideTolerance(0.33))
	assert.Equal(t, 0.33, k.StemInsideTolerance)
	// The family's own length default still applies when not overridden.
	assert.Contains(t, k.CommandLine(), `-D KEY_LENGTH="31.82"`)
}

func TestSlotTweakFamilies_EditWithoutReapply(t *testing.T) {
	k := Tilde(keycap.WithName("tilde"), keycap.WithLegends("`", "", "~"))
	require.Len(t, k.FontSizes, 4)
	assert.Equal(t, 6.5, k.FontSizes[0])
	assert.Equal(t, 5.5, k.FontSizes[2])
	assert.Equal(t, keycap.Vec3{5.5, -1, 1}, k.Trans[2])
	// Untouched slots keep the NumRow defaults.
	assert.Equal(t, 4.5, k.FontSizes[1])
}

func TestArrows_UseHackFont(t *testing.T) {
	k := Arrows(keycap.WithName("left"), keycap.WithLegends("◀"))
	assert.Equal(t, "Hack", k.Fonts[0])
}

func TestSizeFamilies_PrefixNames(t *testing.T) {
	assert.Equal(t, "1.25U_A", U125(keycap.WithLegends("A")).Name)
	assert.Equal(t, "2U_caps", U200(keycap.WithLegends("caps")).Name)
	// An already-tagged name is left alone.
	assert.Equal(t, "2U_caps", U200(keycap.WithName("2U_caps"), keycap.WithLegends("caps")).Name)
}

func TestWideKeys_CarryStabilizerStems(t *testing.T) {
	k := U625(keycap.WithLegends(""))
	assert.Equal(t, []keycap.Vec3{{0, 0, 0}, {50, 0, 0}, {-50, 0, 0}}, k.StemLocations)
}

func TestSpacebars_GetInvertedDishRotation(t *testing.T) {
	space := LeftSpace(keycap.WithName("LSpace"), keycap.WithLegends(""), keycap.WithDishInvert(true))
	assert.Equal(t, keycap.Vec3{0, 111.88, 90}, space.KeyRotation)
	assert.True(t, space.DishInvert)

	// Without the inverted dish the wide-key rotation applies.
	plain := LeftSpace(keycap.WithName("LSpace"), keycap.WithLegends(""))
	assert.Equal(t, keycap.Vec3{0, 107.85, 90}, plain.KeyRotation)
}

func TestKeycaps_GlobalOptionsThreadThrough(t *testing.T) {
	caps := Keycaps(keycap.WithOpenSCADPath("/opt/openscad/bin/openscad"))
	for _, k := range caps {
		require.Equal(t, "/opt/openscad/bin/openscad", k.OpenSCADPath)
	}
}

func TestKeycaps_PreEscapedLegendsForwardedVerbatim(t *testing.T) {
	caps := Keycaps()
	byName := make(map[string]int, len(caps))
	for i, k := range caps {
		byName[k.Name] = i
	}
	assert.Equal(t, []string{"7", "", `"&"`}, caps[byName["7"]].Legends)
	assert.Equal(t, []string{`\\\\`, "", `"|"`}, caps[byName["bslash"]].Legends)
	assert.Equal(t, []string{`⌂`}, caps[byName["home"]].Legends)
}
