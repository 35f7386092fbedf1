package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allModes() []Mode {
	return []Mode{
		ModeComfort,
		ModeEco,
		ModeFrostProtection,
		ModeStop,
		ModeComfortMinus1,
		ModeComfortMinus2,
	}
}

func TestModeWireRoundTrip(t *testing.T) {
	for _, m := range allModes() {
		got, err := ModeFromWireCode(m.WireCode())
		require.NoError(t, err, "mode %s", m)
		assert.Equal(t, m, got)

		got, err = ModeFromWireString(m.WireString())
		require.NoError(t, err, "mode %s", m)
		assert.Equal(t, m, got)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"comfort", ModeComfort},
		{"Comfort", ModeComfort},
		{"eco", ModeEco},
		{"frost-protection", ModeFrostProtection},
		{"frost", ModeFrostProtection},
		{"stop", ModeStop},
		{"comfort-1", ModeComfortMinus1},
		{"comfort-minus-1", ModeComfortMinus1},
		{"comfort-2", ModeComfortMinus2},
		{"comfort-minus-2", ModeComfortMinus2},
		{" eco ", ModeEco},
	}

	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		require.NoError(t, err, "ParseMode(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseMode(%q)", tc.in)
	}
}

func TestParseModeRejectsUnknownTokens(t *testing.T) {
	for _, in := range []string{"", "warm", "comfortable", "frostprotection", "0"} {
		_, err := ParseMode(in)
		assert.ErrorIs(t, err, ErrUnknownMode, "ParseMode(%q)", in)
	}
}

func TestModeFromWireCodeRejectsOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 6, 42} {
		_, err := ModeFromWireCode(code)
		assert.ErrorIs(t, err, ErrUnrecognizedWireCode, "code %d", code)
	}
}

func TestModeFromWire(t *testing.T) {
	cases := []struct {
		raw  string
		want Mode
	}{
		{`0`, ModeComfort},
		{`1`, ModeEco},
		{`"cft"`, ModeComfort},
		{`"fro"`, ModeFrostProtection},
		{`5`, ModeComfortMinus2},
	}

	for _, tc := range cases {
		got, err := ModeFromWire(json.RawMessage(tc.raw))
		require.NoError(t, err, "raw %s", tc.raw)
		assert.Equal(t, tc.want, got, "raw %s", tc.raw)
	}

	for _, raw := range []string{`"hot"`, `9`, `null`, `{"mode":1}`} {
		_, err := ModeFromWire(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrUnrecognizedWireCode, "raw %s", raw)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "frost-protection", ModeFrostProtection.String())
	assert.Equal(t, "unknown", ModeUnknown.String())
	assert.Equal(t, "unknown", Mode(99).String())
	assert.False(t, ModeUnknown.Valid())
	assert.False(t, Mode(99).Valid())
	for _, m := range allModes() {
		assert.True(t, m.Valid())
	}
}
