// Package keycap holds the parameter model for a single parametric keycap: a
// flat bag of geometry, stem, and legend typography settings plus the
// serializer that turns it into one OpenSCAD command line. The model performs
// no validation; every value is forwarded verbatim and OpenSCAD itself is the
// validator.
package keycap

import (
	"path/filepath"
	"strings"
)

// KeyUnit is the square that makes up the entire space of a key.
//
// Typed float64 on purpose: derived sizes like KeyUnit*2.25-BetweenSpace must
// round at every step the way runtime float math does, because the 2-decimal
// trim in the command line is sensitive to which side of .005 the stored
// value lands on. Untyped (exact) constant arithmetic would shift a few of
// them.
const KeyUnit float64 = 14.5

// BetweenSpace is the gap between adjacent keycaps.
const BetweenSpace float64 = 0.8

// Vec3 is a 3-D offset, rotation, or scale triple.
type Vec3 [3]float64

// Keycap describes one keycap's geometry, stem, and legends. Construct with
// New, which fills in every default; override fields with options or by
// assigning to them directly (the catalog's family constructors do both).
//
// The legend-slot lists (Fonts, FontSizes, Trans, Trans2, Rotation, Rotation2,
// Scale, Underset) are indexed positionally against Legends. They may be
// longer than Legends — trailing entries describe slots a particular key never
// fills — and are serialized in full, never truncated.
type Keycap struct {
	Name   string
	Render []string // Which sub-outputs to produce: "keycap", "stem", "legends"

	// Outer geometry
	KeyProfile           string
	KeyLength            float64
	KeyWidth             float64
	KeyRotation          Vec3
	KeyHeight            float64
	KeyTopDifference     float64
	WallThickness        float64
	UniformWallThickness bool
	PolygonLayers        int
	PolygonLayerRotation float64
	PolygonEdges         int
	PolygonRotation      bool
	CornerRadius         float64
	CornerRadiusCurve    float64

	// Dish (top scoop)
	DishThickness float64
	DishType      string
	DishDepth     float64
	DishInvert    bool
	DishTilt      float64
	DishTiltCurve bool
	DishFn        int
	DishCornerFn  int

	// Stem
	StemType                string
	StemTopThickness        float64
	StemInset               float64
	StemInsideTolerance     float64
	StemOutsideToleranceX   float64
	StemOutsideToleranceY   float64
	StemSideSupports        []float64 // One entry per side, 0 = no support
	StemLocations           []Vec3    // Multiple entries for wide keys
	StemSidesWallThickness  float64
	StemSnapFit             bool
	StemWallsInset          float64
	StemWallsTolerance      float64

	// Homing dot
	HomingDotLength float64 // 0 means no dot
	HomingDotWidth  float64
	HomingDotX      float64
	HomingDotY      float64
	HomingDotZ      float64 // How far it sticks out

	// Legends and their per-slot typography
	Legends      []string
	Fonts        []string
	FontSizes    []float64
	Trans        []Vec3
	Trans2       []Vec3
	Rotation     []Vec3
	Rotation2    []Vec3
	Scale        []Vec3
	Underset     []Vec3
	LegendCarved bool

	// Paths
	PlaygroundPath string // Directory holding the geometry script
	OpenSCADPath   string // Renderer binary
	OutputPath     string // Where the STL goes
}

// New returns a Keycap with every field defaulted, then applies the given
// options in order. If no explicit name was set, the name defaults to the
// first legend, falling back to "keycap" when that is empty. The name stays
// mutable afterward; size families prefix it with tags like "1.25U_".
func New(opts ...Option) *Keycap {
	k := &Keycap{
		Render:                 []string{"keycap", "stem"},
		KeyProfile:             "riskeycap",
		KeyLength:              KeyUnit - BetweenSpace,
		KeyWidth:               KeyUnit - BetweenSpace,
		KeyRotation:            Vec3{0, 0, 0},
		KeyHeight:              9,
		KeyTopDifference:       5,
		WallThickness:          0.45 * 2.25,
		DishThickness:          0.6,
		DishType:               "sphere",
		DishDepth:              1,
		DishTilt:               0,
		DishTiltCurve:          true,
		DishFn:                 256,
		DishCornerFn:           64,
		UniformWallThickness:   true,
		PolygonLayers:          10,
		PolygonLayerRotation:   0,
		PolygonEdges:           4,
		PolygonRotation:        true,
		CornerRadius:           1,
		CornerRadiusCurve:      3,
		StemType:               "box_cherry",
		StemTopThickness:       0.5,
		StemInset:              1,
		StemInsideTolerance:    0.2,
		StemOutsideToleranceX:  0.05,
		StemOutsideToleranceY:  0.05,
		StemSideSupports:       []float64{0, 0, 0, 0},
		StemLocations:          []Vec3{{0, 0, 0}},
		StemSidesWallThickness: 0.5,
		HomingDotLength:        0,
		HomingDotWidth:         1,
		HomingDotX:             0,
		HomingDotY:             -(KeyUnit - BetweenSpace) * 0.3,
		HomingDotZ:             0,
		Legends:                []string{""},
		Trans:                  []Vec3{{0, 0, 0}},
		Trans2:                 []Vec3{{0, 0, 0}},
		Rotation:               []Vec3{{0, 0, 0}},
		Rotation2:              []Vec3{{0, 0, 0}},
		Scale:                  []Vec3{{1, 1, 1}},
		Underset:               []Vec3{{0, 0, 0}},
		PlaygroundPath:         ".",
		OpenSCADPath:           "openscad",
		OutputPath:             ".",
	}
	k.Apply(opts...)
	if k.Name == "" {
		if len(k.Legends) > 0 && k.Legends[0] != "" {
			k.Name = k.Legends[0]
		} else {
			k.Name = "keycap"
		}
	}
	return k
}

// Apply applies options to an already-constructed keycap. Family constructors
// call it a second time after overlaying their own defaults, so an explicit
// caller option always wins no matter how many specialization layers sit
// between the caller and the base defaults.
func (k *Keycap) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(k)
	}
}

// Quote escapes the legend list for the trip through the outer shell into
// OpenSCAD's own string parser. A single-quote legend becomes `\"'\"` and a
// double-quote legend becomes the standalone `"\""` token; everything else is
// wrapped in escaped double quotes. The trailing comma is stripped before the
// closing bracket.
//
// NOTE: The single-quote case doesn't come out of the shell correctly and the
// quote keycap has to be rendered by hand on the command line. The behavior is
// kept as-is (and pinned by tests) rather than silently changed.
func Quote(legends []string) string {
	out := "["
	for _, legend := range legends {
		switch legend {
		case "'":
			out += `\"` + "'" + `\",`
		case `"`:
			out += `"\""`
		default:
			out += `\"` + legend + `\",`
		}
	}
	out = strings.TrimRight(out, ",")
	return out + "]"
}

// CommandLine returns the OpenSCAD invocation that renders this keycap. It is
// side-effect-free and idempotent: calling it twice on an unmutated keycap
// yields byte-identical strings.
//
// The RENDER definition is emitted twice — once up front and once again at the
// very end — because OpenSCAD only reliably honors the last occurrence of that
// particular definition in some environments.
func (k *Keycap) CommandLine() string {
	var b strings.Builder
	b.WriteString(k.OpenSCADPath + " -o ")
	b.WriteString(filepath.Join(k.OutputPath, k.Name+".stl") + " ")
	def := func(name, value string) {
		b.WriteString("-D " + name + `="` + value + `" `)
	}
	def("RENDER", scadStrings(k.Render))
	def("KEY_PROFILE", scadString(k.KeyProfile))
	def("KEY_LENGTH", scadNum(round2(k.KeyLength)))
	def("KEY_WIDTH", scadNum(round2(k.KeyWidth)))
	def("KEY_TOP_DIFFERENCE", scadNum(k.KeyTopDifference))
	def("KEY_ROTATION", scadNums(k.KeyRotation[:]))
	def("KEY_HEIGHT", scadNum(k.KeyHeight))
	def("WALL_THICKNESS", scadNum(k.WallThickness))
	def("UNIFORM_WALL_THICKNESS", scadBool(k.UniformWallThickness))
	def("DISH_THICKNESS", scadNum(k.DishThickness))
	def("DISH_INVERT", scadBool(k.DishInvert))
	def("DISH_TYPE", scadString(k.DishType))
	def("DISH_DEPTH", scadNum(k.DishDepth))
	def("DISH_TILT", scadNum(k.DishTilt))
	def("DISH_TILT_CURVE", scadBool(k.DishTiltCurve))
	def("DISH_FN", scadNum(float64(k.DishFn)))
	def("DISH_CORNER_FN", scadNum(float64(k.DishCornerFn)))
	def("POLYGON_LAYERS", scadNum(float64(k.PolygonLayers)))
	def("POLYGON_LAYER_ROTATION", scadNum(k.PolygonLayerRotation))
	def("POLYGON_EDGES", scadNum(float64(k.PolygonEdges)))
	def("POLYGON_ROTATION", scadBool(k.PolygonRotation))
	def("CORNER_RADIUS", scadNum(k.CornerRadius))
	def("CORNER_RADIUS_CURVE", scadNum(k.CornerRadiusCurve))
	def("STEM_TYPE", scadString(k.StemType))
	def("STEM_TOP_THICKNESS", scadNum(k.StemTopThickness))
	def("STEM_INSET", scadNum(k.StemInset))
	def("STEM_INSIDE_TOLERANCE", scadNum(k.StemInsideTolerance))
	def("STEM_OUTSIDE_TOLERANCE_X", scadNum(k.StemOutsideToleranceX))
	def("STEM_OUTSIDE_TOLERANCE_Y", scadNum(k.StemOutsideToleranceY))
	def("STEM_SIDE_SUPPORTS", scadNums(k.StemSideSupports))
	def("STEM_SIDES_WALL_THICKNESS", scadNum(k.StemSidesWallThickness))
	def("STEM_LOCATIONS", scadVecs(k.StemLocations))
	def("STEM_SNAP_FIT", scadBool(k.StemSnapFit))
	def("STEM_WALLS_INSET", scadNum(k.StemWallsInset))
	def("STEM_WALLS_TOLERANCE", scadNum(k.StemWallsTolerance))
	def("HOMING_DOT_LENGTH", scadNum(k.HomingDotLength))
	def("HOMING_DOT_WIDTH", scadNum(k.HomingDotWidth))
	def("HOMING_DOT_X", scadNum(k.HomingDotX))
	def("HOMING_DOT_Y", scadNum(k.HomingDotY))
	def("HOMING_DOT_Z", scadNum(k.HomingDotZ))
	def("LEGENDS", Quote(k.Legends))
	def("LEGEND_FONTS", scadStrings(k.Fonts))
	def("LEGEND_FONT_SIZES", scadNums(k.FontSizes))
	def("LEGEND_TRANS", scadVecs(k.Trans))
	def("LEGEND_TRANS2", scadVecs(k.Trans2))
	def("LEGEND_ROTATION", scadVecs(k.Rotation))
	def("LEGEND_ROTATION2", scadVecs(k.Rotation2))
	def("LEGEND_SCALE", scadVecs(k.Scale))
	def("LEGEND_UNDERSET", scadVecs(k.Underset))
	def("RENDER", scadStrings(k.Render))
	b.WriteString(filepath.Join(k.PlaygroundPath, "scad", "keycap_playground.scad"))
	return b.String()
}

// String returns the command line; a Keycap prints as its invocation.
func (k *Keycap) String() string {
	return k.CommandLine()
}
