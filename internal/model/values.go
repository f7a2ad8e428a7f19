package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NA is how an Unknown value is rendered everywhere (JSON, TSV, charts).
const NA = "N/A"

// Decimal is a numeric value in inches (or amps, volts, lbs) that may be Unknown.
type Decimal struct {
	Value float64
	Known bool
}

// Dec returns a known Decimal.
func Dec(v float64) Decimal {
	return Decimal{Value: v, Known: true}
}

// UnknownDecimal is the zero Decimal.
var UnknownDecimal = Decimal{}

// FormatDecimal renders v with at most 4 fractional digits and no trailing zeros.
func FormatDecimal(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func (d Decimal) String() string {
	if !d.Known {
		return NA
	}
	return FormatDecimal(d.Value)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = UnknownDecimal
	switch v := raw.(type) {
	case float64:
		*d = Dec(v)
	case string:
		*d = ParseDecimal(v)
	}
	return nil
}

// ParseDecimal reads a plain number as written by FormatDecimal. It does not
// coerce anything else: "30A" or "N/A" are Unknown.
func ParseDecimal(s string) Decimal {
	s = strings.TrimSpace(s)
	if s == "" || s == NA {
		return UnknownDecimal
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return UnknownDecimal
	}
	return Dec(f)
}

// DecimalRange is a tolerance band. Min == Max means a single fixed value.
type DecimalRange struct {
	Min Decimal
	Max Decimal
}

// Fixed returns a range whose Min and Max are both d.
func Fixed(d Decimal) DecimalRange {
	return DecimalRange{Min: d, Max: d}
}

// Known reports whether at least the lower bound is known.
func (r DecimalRange) Known() bool {
	return r.Min.Known
}

// Collapse fills an unknown Max with Min, for sources that give one value.
func (r DecimalRange) Collapse() DecimalRange {
	if r.Min.Known && !r.Max.Known {
		r.Max = r.Min
	}
	return r
}

// String renders "a to b" for a real band, otherwise the lower bound.
func (r DecimalRange) String() string {
	if r.Min.Known && r.Max.Known && r.Max.Value > r.Min.Value {
		return r.Min.String() + " to " + r.Max.String()
	}
	return r.Min.String()
}

// ParseRange reads the form written by DecimalRange.String. A lone value
// leaves Max unknown.
func ParseRange(s string) DecimalRange {
	parts := strings.SplitN(s, " to ", 2)
	r := DecimalRange{Min: ParseDecimal(parts[0])}
	if len(parts) == 2 {
		r.Max = ParseDecimal(parts[1])
	}
	if r.Min.Known && r.Max.Known && r.Min.Value > r.Max.Value {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

func (r DecimalRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *DecimalRange) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = DecimalRange{}
	switch v := raw.(type) {
	case float64:
		r.Min = Dec(v)
	case string:
		*r = ParseRange(v)
	}
	return nil
}

// Text is an opaque string value that may be Unknown.
type Text struct {
	Value string
	Known bool
}

// Str returns a known Text, or Unknown for blank input.
func Str(s string) Text {
	s = strings.TrimSpace(s)
	if s == "" || s == NA {
		return Text{}
	}
	return Text{Value: s, Known: true}
}

// UnknownText is the zero Text.
var UnknownText = Text{}

func (t Text) String() string {
	if !t.Known {
		return NA
	}
	return t.Value
}

// Number returns the value as a number only when the whole text is numeric.
func (t Text) Number() Decimal {
	if !t.Known {
		return UnknownDecimal
	}
	return ParseDecimal(t.Value)
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Text) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = UnknownText
	switch v := raw.(type) {
	case string:
		*t = Str(v)
	case float64:
		*t = Str(FormatDecimal(v))
	case bool:
		*t = Str(strconv.FormatBool(v))
	}
	return nil
}
