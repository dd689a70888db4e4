package keycap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScadNum_ShortestForm(t *testing.T) {
	assert.Equal(t, "4", scadNum(4))
	assert.Equal(t, "5.5", scadNum(5.5))
	assert.Equal(t, "110.1", scadNum(110.1))
	assert.Equal(t, "-4.109999999999999", scadNum(-(KeyUnit-BetweenSpace)*0.3))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "13.7", scadNum(round2(KeyUnit-BetweenSpace)))
	assert.Equal(t, "39.08", scadNum(round2(KeyUnit*2.75-BetweenSpace)))
	assert.Equal(t, "89.83", scadNum(round2(KeyUnit*6.25-BetweenSpace)))
}

func TestRound2_ValuesJustBelowHalfway(t *testing.T) {
	// These lengths are stored just below the .005 midpoint (17.325 is really
	// 17.324999...), so they round down even though value*100 would land on
	// the midpoint exactly.
	assert.Equal(t, "17.32", scadNum(round2(KeyUnit*1.25-BetweenSpace)))
	assert.Equal(t, "24.57", scadNum(round2(KeyUnit*1.75-BetweenSpace)))
	assert.Equal(t, "31.82", scadNum(round2(KeyUnit*2.25-BetweenSpace)))
}

func TestScadNums(t *testing.T) {
	assert.Equal(t, "[0, 110.1, 90]", scadNums([]float64{0, 110.1, 90}))
	assert.Equal(t, "[]", scadNums(nil))
}

func TestScadVecs(t *testing.T) {
	assert.Equal(t, "[[0, 0, 0], [12, 0, 0]]", scadVecs([]Vec3{{0, 0, 0}, {12, 0, 0}}))
}

func TestScadStrings_SpaceAfterComma(t *testing.T) {
	// The geometry script side expects the comma-space dialect, not compact
	// JSON.
	assert.Equal(t, `[\"keycap\", \"stem\"]`, scadStrings([]string{"keycap", "stem"}))
}

func TestScadString_EscapesForOuterQuoting(t *testing.T) {
	assert.Equal(t, `\"sphere\"`, scadString("sphere"))
	// The inner quote's JSON escape picks up its own outer-level escape, so
	// `a"b` comes out as \"a\\"b\".
	assert.Equal(t, `\"a\\"b\"`, scadString(`a"b`))
}

func TestScadBool(t *testing.T) {
	assert.Equal(t, "true", scadBool(true))
	assert.Equal(t, "false", scadBool(false))
}

func TestJSONString_Backslash(t *testing.T) {
	assert.Equal(t, `"a\\b"`, jsonString(`a\b`))
}
