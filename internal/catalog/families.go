// Package catalog defines the keycap families for the Riskeyboard 70 and the
// ordered list of every keycap on the board.
//
// Families replace what a class hierarchy would do with plain constructor
// functions: each family builds its parent with the caller's options, overlays
// its own defaults, then re-applies the caller's options. That second apply is
// what keeps an explicit option in charge no matter how many family layers sit
// above the base — without it, a family's defaults would clobber the caller's
// choice as soon as two layers stack.
//
// A few families only nudge individual legend slots (a font size here, a
// translate there) after the chain has run; those edit in place and do not
// re-apply, same as the tuning they encode was always done.
package catalog

import (
	"strings"

	"keycapgen/internal/keycap"
)

const (
	gothamBold = "Gotham Rounded:style=Bold"
	arialBlack = "Arial Black:style=Regular"
)

// prefixName prepends a size tag to the keycap's name unless it already
// carries one.
func prefixName(k *keycap.Keycap, tag string) {
	if !strings.HasPrefix(k.Name, tag) {
		k.Name = tag + k.Name
	}
}

// Base is the common profile for every key on the board: riskeycap profile,
// printed on its side, thick stem walls for good sound and feel.
func Base(opts ...keycap.Option) *keycap.Keycap {
	k := keycap.New(opts...)
	k.KeyProfile = "riskeycap"
	k.KeyRotation = keycap.Vec3{0, 110.1, 90}
	k.KeyLength = keycap.KeyUnit - keycap.BetweenSpace
	k.KeyWidth = keycap.KeyUnit - keycap.BetweenSpace
	k.WallThickness = 0.45 * 2.25
	k.UniformWallThickness = true
	k.DishThickness = 0.6 // Note: Not actually used
	k.StemType = "box_cherry"
	k.StemTopThickness = 0.5 // Note: Not actually used
	k.StemInsideTolerance = 0.2
	// Stem side supports seem unnecessary at 0.16mm layer height
	k.StemSideSupports = []float64{0, 0, 0, 0}
	k.StemLocations = []keycap.Vec3{{0, 0, 0}}
	k.StemSidesWallThickness = 0.5 // Thick (good sound/feel)
	// Legends get stretched on the Z because the caps print on their side
	k.Scale = []keycap.Vec3{
		{1, 1, 1},
		{1, 1.75, 3}, // For the pipe to make it taller/more of a divider
		{1, 1, 3},
	}
	k.Fonts = []string{
		arialBlack,
	}
	k.FontSizes = []float64{
		5.5,
		4, // Second legend (top right)
		4, // Front legend
	}
	k.Trans = []keycap.Vec3{
		{-3, -2.6, 2}, // Lower left corner
		{3.5, 3, 1},   // Top right
		{0.15, -3, 2}, // Front legend
	}
	k.Rotation = []keycap.Vec3{
		{0, 0, 0},
		{0, -20, 0},
		{68, 0, 0},
	}
	k.Apply(opts...)
	return k
}

// Alphas covers the plain letter keys: centered single legend.
func Alphas(opts ...keycap.Option) *keycap.Keycap {
	k := Base(opts...)
	k.FontSizes = []float64{
		5.5,
		4,
		4, // Front legend
	}
	k.Trans = []keycap.Vec3{
		{-0.1, 0, 0}, // Centered when angled -20°
		{3.5, 3, 1},
		{0.15, -3, 2},
	}
	k.Apply(opts...)
	return k
}

// FKey is for F1-F12 and similar: the text is too large at alpha size.
func FKey(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.FontSizes = []float64{
		3,
		4,
		4,
	}
	k.Apply(opts...)
	return k
}

// Home is the ⌂ key, which wants a much larger glyph.
func Home(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.FontSizes = []float64{
		9,
		4,
		4,
	}
	k.Fonts = []string{
		arialBlack,
	}
	k.Apply(opts...)
	return k
}

// NumRow lays out number-row keys: digit left, divider pipe, symbol right,
// F-key text on the front face.
func NumRow(opts ...keycap.Option) *keycap.Keycap {
	k := Base(opts...)
	k.Fonts = []string{
		gothamBold, // Main char
		gothamBold, // Pipe character
		gothamBold, // Symbol
		arialBlack, // F-key
	}
	k.FontSizes = []float64{
		4.5,
		4.5, // Pipe
		4.5, // Symbols
		3.5, // Front legend
	}
	k.Trans = []keycap.Vec3{
		{-0.3, 0, 0}, // Left
		{2.6, 0, 0},  // Center pipe
		{5, 0, 1},    // Right-side symbols
		{0.15, -2, 2},
	}
	k.Rotation = []keycap.Vec3{
		{0, -20, 0},
		{0, -20, 0},
		{0, -20, 0},
		{68, 0, 0},
	}
	k.Scale = []keycap.Vec3{
		{1, 1, 3},
		{1, 1.75, 3}, // For the pipe to make it taller/more of a divider
		{1, 1, 3},
		{1, 1, 3},
	}
	k.Apply(opts...)
	return k
}

// Tilde nudges the ` and ~ glyphs, which come out too small by default.
func Tilde(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.FontSizes[0] = 6.5 // ` symbol
	k.FontSizes[2] = 5.5 // ~ symbol
	k.Trans[0] = keycap.Vec3{-0.3, -2.7, 0}
	k.Trans[2] = keycap.Vec3{5.5, -1, 1}
	return k
}

// Two swaps in a font where the @ renders better.
func Two(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.Fonts[2] = "Aharoni"
	k.FontSizes[2] = 4.5
	k.Trans[2] = keycap.Vec3{5.4, 0, 1}
	return k
}

// Three shrinks the # slightly.
func Three(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.FontSizes[2] = 4
	k.Trans[2] = keycap.Vec3{5.5, 0, 1} // Move to the right a bit
	return k
}

// Five shrinks the % which sits too close to the divider.
func Five(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.FontSizes[2] = 3.75
	k.Trans[2] = keycap.Vec3{5.2, 0, 1}
	return k
}

// Seven shrinks the &.
func Seven(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.FontSizes[2] = 3.85
	k.Trans[2] = keycap.Vec3{5.2, 0, 1}
	return k
}

// Eight enlarges the tiny * and repositions it.
func Eight(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.FontSizes[2] = 7.5
	k.Trans[2] = keycap.Vec3{5.2, -1.9, 1}
	return k
}

// Equal recenters = and +, which sit a bit off.
func Equal(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.Trans[0] = keycap.Vec3{-0.3, -0.5, 0}
	k.Trans[2] = keycap.Vec3{5, -0.3, 1}
	return k
}

// Dash moves the underscore down-right and squishes it a bit.
func Dash(opts ...keycap.Option) *keycap.Keycap {
	k := NumRow(opts...)
	k.Trans[2] = keycap.Vec3{5.2, -1, 1}
	k.Scale[2] = keycap.Vec3{0.8, 1, 3}
	return k
}

// DoubleLegends covers regular keys with two legends: ,./;'[]
func DoubleLegends(opts ...keycap.Option) *keycap.Keycap {
	k := Base(opts...)
	k.Fonts = []string{
		gothamBold, // Main legend
		gothamBold, // Pipe character
		gothamBold, // Second legend
	}
	k.FontSizes = []float64{
		4.5,
		4.5, // Pipe
		3,
	}
	k.Trans = []keycap.Vec3{
		{-2, 0, 0}, // Left
		{0, 0, 0},  // Center pipe
		{2, 0, 0},  // Right-side symbols
	}
	k.Rotation = []keycap.Vec3{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	k.Scale = []keycap.Vec3{
		{1, 1, 1},
		{1, 1.75, 3}, // For the pipe to make it taller/more of a divider
		{1, 1, 1},
	}
	k.Apply(opts...)
	return k
}

// PrtSc shrinks both legends to fit "prt"/"sc".
func PrtSc(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.FontSizes = []float64{
		2.5,
		3,
		2.5,
	}
	k.Apply(opts...)
	return k
}

// PgPtr is the page-up/page-down pair: "pg" text plus a Hack-font triangle.
func PgPtr(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.FontSizes = []float64{
		3,
		3,
		4.5,
	}
	k.Fonts[2] = "Hack"
	k.Apply(opts...)
	return k
}

// Minus doubles up the - and _ since they render tiny.
func Minus(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.Scale = []keycap.Vec3{
		{2, 2, 1},
		{1, 1.75, 3}, // For the pipe to make it taller/more of a divider
		{2, 2, 1},
	}
	k.Apply(opts...)
	return k
}

// Tick repositions ` and ~ on the double-legend layout.
func Tick(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.Trans = []keycap.Vec3{
		{-2.5, -1, 0},
		{0, 0, 0},
		{2, -0.5, 0},
	}
	k.FontSizes = []float64{
		5.5,
		4.5, // Pipe
		4.5,
	}
	k.Apply(opts...)
	return k
}

// GtLt drops , . < > down a touch; they sit too high for some reason.
func GtLt(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.Trans[0] = keycap.Vec3{-0.3, -0.1, 0}
	k.Trans[2] = keycap.Vec3{5.2, -0.35, 1}
	return k
}

// Brackets moves the curly braces right a smidge.
func Brackets(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.Trans[2] = keycap.Vec3{5.2, 0, 1}
	return k
}

// Semicolon aligns the top dot of ; with the top dot of :.
func Semicolon(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.Trans[0] = keycap.Vec3{0.2, -0.4, 0}
	k.Trans[2] = keycap.Vec3{4.7, 0, 1}
	return k
}

// OneUText sizes down word legends (ctrl, del, ins) on 1U keys.
func OneUText(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.FontSizes[0] = 4
	k.Trans[0] = keycap.Vec3{2.5, 0, 0}
	k.Apply(opts...)
	return k
}

// Arrows renders the ◀▶▲▼ glyphs, which need the Hack font.
func Arrows(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.Fonts[0] = "Hack"
	return k
}

// FontAwesome is for centered FontAwesome icon keycaps.
func FontAwesome(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.Fonts[0] = "FontAwesome"
	k.FontSizes[0] = 5
	k.Trans[0] = keycap.Vec3{2.6, 0.3, 0}
	return k
}

// U125 is the base for all 1.25U keycaps.
func U125(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*1.25 - keycap.BetweenSpace
	k.Trans[0] = keycap.Vec3{0.5, 0, 0}
	k.Apply(opts...)
	prefixName(k, "1.25U_")
	return k
}

// U140 is the base for all 1.4U keycaps.
func U140(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = (keycap.KeyUnit-2)*1.4 + 2 - keycap.BetweenSpace
	k.FontSizes[0] = 4
	k.Trans[0] = keycap.Vec3{0, 0, 0}
	k.Apply(opts...)
	prefixName(k, "1.4U_")
	return k
}

// U160 is the base for all 1.6U keycaps.
func U160(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = (keycap.KeyUnit-2)*1.6 + 2 - keycap.BetweenSpace
	k.FontSizes[0] = 4
	k.Trans[0] = keycap.Vec3{0, 0, 0}
	k.Apply(opts...)
	prefixName(k, "1.6U_")
	return k
}

// U150 is the base for all 1.5U keycaps. Built on DoubleLegends because of
// the \| key.
func U150(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.KeyLength = keycap.KeyUnit*1.5 - keycap.BetweenSpace
	k.Trans[0] = keycap.Vec3{1.5, 0, 0}
	k.Apply(opts...)
	prefixName(k, "1.5U_")
	return k
}

// Bslash needs a very minor adjustment to the backslash.
func Bslash(opts ...keycap.Option) *keycap.Keycap {
	k := DoubleLegends(opts...)
	k.KeyLength = (keycap.KeyUnit-2)*2 + 2 - keycap.BetweenSpace
	k.Trans[0] = keycap.Vec3{-1.2, 0, 0.3} // Move \ left a bit more than normal
	return k
}

// Tab centers the word "tab" on the 1.5U blank.
func Tab(opts ...keycap.Option) *keycap.Keycap {
	k := U150(opts...)
	k.FontSizes[0] = 4.5
	k.Trans[0] = keycap.Vec3{2.6, 0, 0} // Centered when angled -20°
	return k
}

// U175 is the base for all 1.75U keycaps.
func U175(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*1.75 - keycap.BetweenSpace
	k.KeyRotation = keycap.Vec3{0, 107.85, 90}
	k.Apply(opts...)
	prefixName(k, "1.75U_")
	return k
}

// wideRotation picks the print rotation for long keys; spacebars (inverted
// dish) sit at a different angle on the plate.
func wideRotation(k *keycap.Keycap) {
	k.KeyRotation = keycap.Vec3{0, 107.85, 90} // Same as 1.75U
	if k.DishInvert {
		k.KeyRotation = keycap.Vec3{0, 111.88, 90} // Spacebars are different
	}
}

// U200 is the base for all 2U keycaps.
func U200(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = (keycap.KeyUnit-2)*2 + 2 - keycap.BetweenSpace
	k.FontSizes[0] = 4
	wideRotation(k)
	k.Apply(opts...)
	prefixName(k, "2U_")
	return k
}

// U225 is the base for all 2.25U keycaps; wide enough for stabilizer stems.
func U225(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*2.25 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {12, 0, 0}, {-12, 0, 0}}
	k.Trans[0] = keycap.Vec3{3.1, 0.2, 0}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "2.25U_")
	return k
}

// U250 is the base for all 2.5U keycaps.
func U250(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*2.5 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {12, 0, 0}, {-12, 0, 0}}
	k.Trans[0] = keycap.Vec3{3.1, 0.2, 0}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "2.5U_")
	return k
}

// U260 is the base for all 2.6U keycaps.
func U260(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = (keycap.KeyUnit-2)*2.6 + 2 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {11, 0, 0}, {-12, 0, 0}}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "2.6U_")
	return k
}

// Enter shifts the right stabilizer stem slightly.
func Enter(opts ...keycap.Option) *keycap.Keycap {
	k := U260(opts...)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {11.5, 0, 0}, {-12, 0, 0}}
	k.Apply(opts...)
	prefixName(k, "2.6U_")
	return k
}

// Backspace shrinks the word to fit and shifts a stem like Enter.
func Backspace(opts ...keycap.Option) *keycap.Keycap {
	k := U260(opts...)
	k.FontSizes[0] = 3
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {11.5, 0, 0}, {-12, 0, 0}}
	k.Apply(opts...)
	prefixName(k, "2.6U_")
	return k
}

// LeftSpace is the left space bar.
func LeftSpace(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = 49 + 2 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {20, 0, 0}, {-20, 0, 0}}
	k.Apply(opts...)
	return k
}

// RightSpace is the right space bar.
func RightSpace(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = 51 + 2 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {21, 0, 0}, {-21, 0, 0}}
	k.Apply(opts...)
	return k
}

// U275 is the base for all 2.75U keycaps.
func U275(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*2.75 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {12, 0, 0}, {-12, 0, 0}}
	k.Trans[0] = keycap.Vec3{3.1, 0.2, 0}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "2.75U_")
	return k
}

// U625 is the base for all 6.25U keycaps.
func U625(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*6.25 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {50, 0, 0}, {-50, 0, 0}}
	k.Trans[0] = keycap.Vec3{3.1, 0.2, 0}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "6.25U_")
	return k
}

// U700 is the base for all 7U keycaps.
func U700(opts ...keycap.Option) *keycap.Keycap {
	k := Alphas(opts...)
	k.KeyLength = keycap.KeyUnit*7 - keycap.BetweenSpace
	wideRotation(k)
	k.StemLocations = []keycap.Vec3{{0, 0, 0}, {57, 0, 0}, {-57, 0, 0}}
	k.Trans[0] = keycap.Vec3{3.1, 0.2, 0}
	k.FontSizes[0] = 4
	k.Apply(opts...)
	prefixName(k, "7U_")
	return k
}
