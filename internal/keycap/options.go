package keycap

// Option mutates a Keycap under construction. Options stand in for keyword
// overrides: New applies them over the base defaults, and family constructors
// re-apply the caller's options after overlaying their own defaults, so the
// caller's choice is never shadowed by a family layer.
//
// Slice-valued options copy their argument. Families adjust individual slot
// entries in place after re-applying the caller's options, and those edits
// must not reach back into the caller's slice.
type Option func(*Keycap)

func copyVecs(v []Vec3) []Vec3 {
	return append([]Vec3(nil), v...)
}

// WithName sets the keycap's explicit name, overriding legend-based naming.
func WithName(name string) Option {
	return func(k *Keycap) { k.Name = name }
}

// WithRender selects which sub-outputs to produce ("keycap", "stem", "legends").
func WithRender(render ...string) Option {
	return func(k *Keycap) { k.Render = append([]string(nil), render...) }
}

// WithLegends sets the ordered legend strings for this keycap's slots.
func WithLegends(legends ...string) Option {
	return func(k *Keycap) { k.Legends = append([]string(nil), legends...) }
}

func WithKeyProfile(profile string) Option {
	return func(k *Keycap) { k.KeyProfile = profile }
}

func WithKeyLength(v float64) Option {
	return func(k *Keycap) { k.KeyLength = v }
}

func WithKeyWidth(v float64) Option {
	return func(k *Keycap) { k.KeyWidth = v }
}

func WithKeyRotation(v Vec3) Option {
	return func(k *Keycap) { k.KeyRotation = v }
}

func WithKeyHeight(v float64) Option {
	return func(k *Keycap) { k.KeyHeight = v }
}

func WithKeyTopDifference(v float64) Option {
	return func(k *Keycap) { k.KeyTopDifference = v }
}

func WithWallThickness(v float64) Option {
	return func(k *Keycap) { k.WallThickness = v }
}

func WithUniformWallThickness(b bool) Option {
	return func(k *Keycap) { k.UniformWallThickness = b }
}

func WithPolygonLayers(n int) Option {
	return func(k *Keycap) { k.PolygonLayers = n }
}

func WithPolygonLayerRotation(v float64) Option {
	return func(k *Keycap) { k.PolygonLayerRotation = v }
}

func WithPolygonEdges(n int) Option {
	return func(k *Keycap) { k.PolygonEdges = n }
}

func WithPolygonRotation(b bool) Option {
	return func(k *Keycap) { k.PolygonRotation = b }
}

func WithCornerRadius(v float64) Option {
	return func(k *Keycap) { k.CornerRadius = v }
}

func WithCornerRadiusCurve(v float64) Option {
	return func(k *Keycap) { k.CornerRadiusCurve = v }
}

func WithDishThickness(v float64) Option {
	return func(k *Keycap) { k.DishThickness = v }
}

func WithDishType(t string) Option {
	return func(k *Keycap) { k.DishType = t }
}

func WithDishDepth(v float64) Option {
	return func(k *Keycap) { k.DishDepth = v }
}

// WithDishInvert flips the dish into a bump; spacebars use it.
func WithDishInvert(b bool) Option {
	return func(k *Keycap) { k.DishInvert = b }
}

func WithDishTilt(v float64) Option {
	return func(k *Keycap) { k.DishTilt = v }
}

func WithDishTiltCurve(b bool) Option {
	return func(k *Keycap) { k.DishTiltCurve = b }
}

func WithDishFn(n int) Option {
	return func(k *Keycap) { k.DishFn = n }
}

func WithDishCornerFn(n int) Option {
	return func(k *Keycap) { k.DishCornerFn = n }
}

func WithStemType(t string) Option {
	return func(k *Keycap) { k.StemType = t }
}

func WithStemTopThickness(v float64) Option {
	return func(k *Keycap) { k.StemTopThickness = v }
}

func WithStemInset(v float64) Option {
	return func(k *Keycap) { k.StemInset = v }
}

func WithStemInsideTolerance(v float64) Option {
	return func(k *Keycap) { k.StemInsideTolerance = v }
}

func WithStemOutsideToleranceX(v float64) Option {
	return func(k *Keycap) { k.StemOutsideToleranceX = v }
}

func WithStemOutsideToleranceY(v float64) Option {
	return func(k *Keycap) { k.StemOutsideToleranceY = v }
}

func WithStemSideSupports(sides ...float64) Option {
	return func(k *Keycap) { k.StemSideSupports = append([]float64(nil), sides...) }
}

// WithStemLocations sets the stem positions; wide keys carry several.
func WithStemLocations(locs ...Vec3) Option {
	return func(k *Keycap) { k.StemLocations = copyVecs(locs) }
}

func WithStemSidesWallThickness(v float64) Option {
	return func(k *Keycap) { k.StemSidesWallThickness = v }
}

func WithStemSnapFit(b bool) Option {
	return func(k *Keycap) { k.StemSnapFit = b }
}

func WithStemWallsInset(v float64) Option {
	return func(k *Keycap) { k.StemWallsInset = v }
}

func WithStemWallsTolerance(v float64) Option {
	return func(k *Keycap) { k.StemWallsTolerance = v }
}

// WithHomingDot puts a standard homing dot on the keycap (F and J, usually).
func WithHomingDot() Option {
	return func(k *Keycap) { k.HomingDotLength = 3 }
}

func WithHomingDotLength(v float64) Option {
	return func(k *Keycap) { k.HomingDotLength = v }
}

func WithHomingDotWidth(v float64) Option {
	return func(k *Keycap) { k.HomingDotWidth = v }
}

func WithHomingDotX(v float64) Option {
	return func(k *Keycap) { k.HomingDotX = v }
}

func WithHomingDotY(v float64) Option {
	return func(k *Keycap) { k.HomingDotY = v }
}

func WithHomingDotZ(v float64) Option {
	return func(k *Keycap) { k.HomingDotZ = v }
}

func WithFonts(fonts ...string) Option {
	return func(k *Keycap) { k.Fonts = append([]string(nil), fonts...) }
}

func WithFontSizes(sizes ...float64) Option {
	return func(k *Keycap) { k.FontSizes = append([]float64(nil), sizes...) }
}

func WithTrans(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Trans = copyVecs(vecs) }
}

func WithTrans2(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Trans2 = copyVecs(vecs) }
}

func WithRotation(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Rotation = copyVecs(vecs) }
}

func WithRotation2(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Rotation2 = copyVecs(vecs) }
}

func WithScale(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Scale = copyVecs(vecs) }
}

func WithUnderset(vecs ...Vec3) Option {
	return func(k *Keycap) { k.Underset = copyVecs(vecs) }
}

// WithLegendCarved switches legends from printed to carved geometry.
func WithLegendCarved(b bool) Option {
	return func(k *Keycap) { k.LegendCarved = b }
}

func WithPlaygroundPath(p string) Option {
	return func(k *Keycap) { k.PlaygroundPath = p }
}

func WithOpenSCADPath(p string) Option {
	return func(k *Keycap) { k.OpenSCADPath = p }
}

func WithOutputPath(p string) Option {
	return func(k *Keycap) { k.OutputPath = p }
}
