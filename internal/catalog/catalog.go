package catalog

import (
	"keycapgen/internal/keycap"
)

// Keycaps returns the full ordered Riskeyboard 70 catalog, one entry per
// physical key plus a few extras. Entries are constructed eagerly on each
// call, so callers get fresh instances they may mutate (the renderer changes
// Name and Render for the legends pass).
//
// A few symbol legends are pre-escaped for the shell they historically passed
// through (`^^`, `"&"`, `">"`, `"<"`); they are forwarded verbatim.
func Keycaps(opts ...keycap.Option) []*keycap.Keycap {
	with := func(extra ...keycap.Option) []keycap.Option {
		return append(append([]keycap.Option(nil), opts...), extra...)
	}
	return []*keycap.Keycap{
		// 1U keys
		Alphas(with(keycap.WithName("blank"), keycap.WithLegends(""))...),
		Alphas(with(keycap.WithLegends("fn"))...),
		FKey(with(keycap.WithLegends("F1"))...),
		FKey(with(keycap.WithLegends("F2"))...),
		FKey(with(keycap.WithLegends("F3"))...),
		FKey(with(keycap.WithLegends("F4"))...),
		FKey(with(keycap.WithLegends("F5"))...),
		FKey(with(keycap.WithLegends("F6"))...),
		FKey(with(keycap.WithLegends("F7"))...),
		FKey(with(keycap.WithLegends("F8"))...),
		FKey(with(keycap.WithLegends("F9"))...),
		FKey(with(keycap.WithLegends("F10"))...),
		FKey(with(keycap.WithLegends("F11"))...),
		FKey(with(keycap.WithLegends("F12"))...),
		FKey(with(keycap.WithLegends("esc"))...),
		PrtSc(with(keycap.WithName("prt"), keycap.WithLegends("prt", "", "sc"))...),
		FKey(with(keycap.WithLegends("ins"))...),
		FKey(with(keycap.WithLegends("del"))...),
		Home(with(keycap.WithName("home"), keycap.WithLegends(`⌂`))...), // ⌂
		FKey(with(keycap.WithLegends("end"))...),
		PgPtr(with(keycap.WithName("pup"), keycap.WithLegends("pg", "", `▲`))...), // ▲
		PgPtr(with(keycap.WithName("pdn"), keycap.WithLegends("pg", "", `▼`))...), // ▼

		DoubleLegends(with(keycap.WithName("1"), keycap.WithLegends("1", "", "!"))...),
		DoubleLegends(with(keycap.WithName("2"), keycap.WithLegends("2", "", "@"))...),
		DoubleLegends(with(keycap.WithName("3"), keycap.WithLegends("3", "", "#"))...),
		DoubleLegends(with(keycap.WithName("4"), keycap.WithLegends("4", "", "$"))...),
		DoubleLegends(with(keycap.WithName("5"), keycap.WithLegends("5", "", "%"))...),
		// The next two symbols are pre-escaped to survive the shell: ^^
		// collapses to ^, and "&" keeps the & from being treated specially.
		DoubleLegends(with(keycap.WithName("6"), keycap.WithLegends("6", "", "^^"))...),
		DoubleLegends(with(keycap.WithName("7"), keycap.WithLegends("7", "", `"&"`))...),
		DoubleLegends(with(keycap.WithName("8"), keycap.WithLegends("8", "", "*"))...),
		DoubleLegends(with(keycap.WithName("9"), keycap.WithLegends("9", "", "("))...),
		DoubleLegends(with(keycap.WithName("0"), keycap.WithLegends("0", "", ")"))...),
		DoubleLegends(with(keycap.WithName("equal"), keycap.WithLegends("=", "", "+"))...),
		DoubleLegends(with(keycap.WithName("gt"), keycap.WithLegends(".", "", `">"`))...),
		DoubleLegends(with(keycap.WithName("lt"), keycap.WithLegends(",", "", `"<"`))...),
		Tick(with(keycap.WithName("tick"), keycap.WithLegends("`", "", "~"))...),
		DoubleLegends(with(keycap.WithName("quote"), keycap.WithLegends("'", "", `\\\"`))...),
		Minus(with(keycap.WithName("minus"), keycap.WithLegends("-", "", "_"))...),
		U140(with(keycap.WithLegends("alt"))...),
		U160(with(keycap.WithName("LCtrl"), keycap.WithLegends("ctrl"))...),
		U160(with(keycap.WithLegends("tab"))...),
		U200(with(keycap.WithLegends("caps"))...),
		U200(with(keycap.WithName("RCtrl"), keycap.WithLegends("ctrl"))...),
		U200(with(keycap.WithName("RShift"), keycap.WithLegends("shift"))...),
		Bslash(with(keycap.WithName("bslash"), keycap.WithLegends(`\\\\`, "", `"|"`))...),

		// TODO: 2.6U and longer need supports on the sides
		U260(with(keycap.WithName("LShift"), keycap.WithLegends("shift"))...),
		Enter(with(keycap.WithLegends("enter"))...),
		Backspace(with(keycap.WithLegends("backspace"))...),
		LeftSpace(with(keycap.WithName("LSpace"), keycap.WithLegends(""), keycap.WithDishInvert(true))...),
		RightSpace(with(keycap.WithName("RSpace"), keycap.WithLegends(""), keycap.WithDishInvert(true))...),

		Arrows(with(keycap.WithName("left"), keycap.WithLegends("◀"))...),
		Arrows(with(keycap.WithName("right"), keycap.WithLegends("▶"))...),
		Arrows(with(keycap.WithName("up"), keycap.WithLegends("▲"))...),
		Arrows(with(keycap.WithName("down"), keycap.WithLegends("▼"))...),
	}
}

// Names returns the catalog's keycap names in order.
func Names(caps []*keycap.Keycap) []string {
	names := make([]string, len(caps))
	for i, k := range caps {
		names[i] = k.Name
	}
	return names
}
