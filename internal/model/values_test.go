package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDecimal(t *testing.T) {
	tests := map[float64]string{
		28.625:       "28.625",
		30:           "30",
		0.5:          "0.5",
		27.3125:      "27.3125",
		1.0 / 3.0:    "0.3333",
		-0.00001:     "0",
		29.999999999: "30",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDecimal(in), "format %v", in)
	}
}

func TestParseDecimal(t *testing.T) {
	assert.Equal(t, Dec(28.5), ParseDecimal(" 28.5 "))
	assert.Equal(t, Dec(30), ParseDecimal("30"))
	assert.False(t, ParseDecimal("").Known)
	assert.False(t, ParseDecimal(NA).Known)
	assert.False(t, ParseDecimal("30A").Known)
	assert.False(t, ParseDecimal("NaN").Known)
}

func TestDecimalRange_String(t *testing.T) {
	assert.Equal(t, "33.9375 to 34.9375", DecimalRange{Min: Dec(33.9375), Max: Dec(34.9375)}.String())
	assert.Equal(t, "28", Fixed(Dec(28)).String())
	assert.Equal(t, "28", DecimalRange{Min: Dec(28)}.String())
	assert.Equal(t, NA, DecimalRange{}.String())
}

func TestParseRange(t *testing.T) {
	r := ParseRange("34 to 30")
	assert.Equal(t, Dec(30), r.Min)
	assert.Equal(t, Dec(34), r.Max)

	r = ParseRange("28")
	assert.Equal(t, Dec(28), r.Min)
	assert.False(t, r.Max.Known)

	assert.False(t, ParseRange(NA).Known())
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, Fixed(Dec(28)), DecimalRange{Min: Dec(28)}.Collapse())
	assert.Equal(t, DecimalRange{}, DecimalRange{}.Collapse())

	band := DecimalRange{Min: Dec(1), Max: Dec(2)}
	assert.Equal(t, band, band.Collapse())
}

func TestText(t *testing.T) {
	assert.False(t, Str("  ").Known)
	assert.False(t, Str(NA).Known)
	assert.Equal(t, "Hardwire", Str(" Hardwire ").Value)
	assert.Equal(t, NA, UnknownText.String())

	assert.Equal(t, Dec(30), Str("30").Number())
	assert.False(t, Str("30 Amps").Number().Known)
	assert.False(t, UnknownText.Number().Known)
}

func TestJSON_UnknownIsNA(t *testing.T) {
	type wrapper struct {
		D Decimal      `json:"d"`
		R DecimalRange `json:"r"`
		T Text         `json:"t"`
	}

	b, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"N/A","r":"N/A","t":"N/A"}`, string(b))

	b, err = json.Marshal(wrapper{D: Dec(28.625), R: DecimalRange{Min: Dec(33), Max: Dec(34.5)}, T: Str("240")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"28.625","r":"33 to 34.5","t":"240"}`, string(b))
}

func TestJSON_DecodeLooseForms(t *testing.T) {
	var w struct {
		D Decimal      `json:"d"`
		R DecimalRange `json:"r"`
		T Text         `json:"t"`
		B Text         `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":28.5,"r":"30","t":40,"b":true}`), &w))
	assert.Equal(t, Dec(28.5), w.D)
	assert.Equal(t, Dec(30), w.R.Min)
	assert.Equal(t, "40", w.T.Value)
	assert.Equal(t, "true", w.B.Value)
}
