package keycap

import (
	"strconv"
	"strings"
)

// Encoders for the values embedded in the OpenSCAD command line. The geometry
// script reads every `-D NAME="value"` as OpenSCAD source, so two dialects are
// in play and must not be mixed up:
//
//   - Strings, string lists, and booleans are encoded as JSON with a space
//     after each comma (`["keycap", "stem"]`), then have their double quotes
//     escaped so they survive the outer shell's double-quoting. encoding/json
//     is not used because it emits `["keycap","stem"]` with no way to control
//     separators, and the script side is matched byte for byte.
//   - Numbers and numeric lists are printed plainly (`[0, 110.1, 90]`), with
//     no quote escaping. Numeric values never contain quotes so they don't
//     need the JSON treatment.

// escapeQuotes prepares an already-JSON-encoded value for embedding inside the
// shell-level double quotes of a `-D NAME="..."` flag.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// jsonString encodes a single string as a JSON string literal.
func jsonString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u` + strconv.FormatInt(int64(r)|0x10000, 16)[1:])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// scadString encodes a tag/string field: JSON-encode, escape for outer quoting.
func scadString(s string) string {
	return escapeQuotes(jsonString(s))
}

// scadStrings encodes a list of strings (render modes, font names).
func scadStrings(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = jsonString(v)
	}
	return escapeQuotes("[" + strings.Join(parts, ", ") + "]")
}

// scadBool encodes a boolean flag value.
func scadBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// scadNum prints a number in shortest-roundtrip form: 4 not 4.0, 110.1, and
// the full 17 digits when that's what the float actually holds.
func scadNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// round2 rounds to 2 decimal places. Key lengths like 14.5*2.25-0.8 carry
// binary-float noise, so the command line trims them the same way the catalog
// has always published them (17.325 stored as 17.324999... comes out 17.32).
//
// The rounding goes through decimal formatting rather than
// math.Round(v*100)/100: multiplying first can push a value that sits just
// below a half-way point onto it exactly (17.324999...*100 == 1732.5) and
// round the wrong way.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// scadNums prints a flat numeric list: `[0, 110.1, 90]`.
func scadNums(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = scadNum(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// scadVecs prints a list of 3-D vectors: `[[0, 0, 0], [12, 0, 0]]`.
func scadVecs(vecs []Vec3) string {
	parts := make([]string, len(vecs))
	for i, v := range vecs {
		parts[i] = scadNums(v[:])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
