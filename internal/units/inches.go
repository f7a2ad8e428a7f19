// Package units converts retailer dimension strings into inches.
package units

import (
	"regexp"
	"strconv"
	"strings"

	"appliancefit/internal/model"
)

var (
	reParenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	reInchMarks     = regexp.MustCompile(`(?i)inches|inch|"|”|″`)
	reSpaces        = regexp.MustCompile(`\s+`)
	reWholeFraction = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	reFraction      = regexp.MustCompile(`^(\d+)/(\d+)$`)
	reNumber        = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	reRangeDash     = regexp.MustCompile(`\s*[-–—]\s*`)
	reRangeTo       = regexp.MustCompile(`(?i)\s+to\s+`)
	reFirstNumber   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

const rangeSep = " to "

func clean(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reParenthetical.ReplaceAllString(s, "")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// ParseInches converts strings like `28 5/8 Inch`, `27 5/16"`, `5/8` or
// `29.75` into inches. Anything else, including a zero denominator, is Unknown.
func ParseInches(text string) model.Decimal {
	s := reInchMarks.ReplaceAllString(clean(text), "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	if s == "" {
		return model.UnknownDecimal
	}

	if m := reWholeFraction.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		if frac, ok := fraction(m[2], m[3]); ok {
			return model.Dec(whole + frac)
		}
		return model.UnknownDecimal
	}
	if m := reFraction.FindStringSubmatch(s); m != nil {
		if frac, ok := fraction(m[1], m[2]); ok {
			return model.Dec(frac)
		}
		return model.UnknownDecimal
	}
	if m := reNumber.FindStringSubmatch(s); m != nil {
		return model.ParseDecimal(m[1])
	}
	return model.UnknownDecimal
}

func fraction(num, den string) (float64, bool) {
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// ParseInchesRange parses `33 15/16" - 34 15/16"`, `34" – 36 3/8"` or
// `33 15/16 to 34 15/16` into an ordered band. A single value leaves Max
// Unknown, and so does a range where only one side parses; that side becomes
// Min.
func ParseInchesRange(text string) model.DecimalRange {
	raw := clean(text)
	if raw == "" {
		return model.DecimalRange{}
	}

	normalized := reRangeTo.ReplaceAllString(reRangeDash.ReplaceAllString(raw, rangeSep), rangeSep)
	var parts []string
	for _, p := range strings.Split(normalized, rangeSep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) != 2 {
		return model.DecimalRange{Min: ParseInches(raw)}
	}

	a, b := ParseInches(parts[0]), ParseInches(parts[1])
	switch {
	case !a.Known && !b.Known:
		return model.DecimalRange{}
	case !b.Known:
		return model.DecimalRange{Min: a}
	case !a.Known:
		return model.DecimalRange{Min: b}
	case a.Value <= b.Value:
		return model.DecimalRange{Min: a, Max: b}
	default:
		return model.DecimalRange{Min: b, Max: a}
	}
}

// FirstNumber pulls the first number out of free text ("240 Volts" -> 240).
func FirstNumber(text string) model.Decimal {
	m := reFirstNumber.FindStringSubmatch(text)
	if m == nil {
		return model.UnknownDecimal
	}
	return model.ParseDecimal(m[1])
}

// Format renders inches with at most 4 decimals and no trailing zeros.
func Format(v float64) string {
	return model.FormatDecimal(v)
}
