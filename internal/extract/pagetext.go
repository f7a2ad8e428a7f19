package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"appliancefit/internal/model"
	"appliancefit/internal/units"
)

var reSpaceBeforeNewline = regexp.MustCompile(`[ \t\r\f\v]+\n`)

// lookbehind is how many bytes before a "Label:" match, on the same line, are
// inspected for cut-out context.
const lookbehind = 24

var hiddenElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// blockElements end a line, so adjacent "Label: value" pairs never merge
// even in minified markup.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "dt": true, "dd": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "dl": true, "table": true, "section": true,
	"article": true, "header": true, "footer": true,
}

// PageText flattens the visible body text. Scripts and styles are dropped;
// br and block elements become line breaks, table cells are space separated.
func PageText(doc *goquery.Document) string {
	var sb strings.Builder
	writeText(&sb, doc.Find("body"))
	text := strings.ReplaceAll(sb.String(), nbsp, " ")
	return reSpaceBeforeNewline.ReplaceAllString(text, "\n")
}

func writeText(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			sb.WriteString(c.Text())
		case name == "br":
			sb.WriteByte('\n')
		case name == "#comment" || hiddenElements[name]:
		default:
			writeText(sb, c)
			if blockElements[name] {
				sb.WriteByte('\n')
			} else if name == "td" || name == "th" {
				sb.WriteByte(' ')
			}
		}
	})
}

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[ \t]*:[ \t]*([^\n\r]+)`)
}

// Pick returns the value after the first "label:" in text, e.g. the
// "28 5/8 Inch" of "Cutout Width: 28 5/8 Inch".
func Pick(text, label string) model.Text {
	m := labelPattern(label).FindStringSubmatch(text)
	if m == nil {
		return model.UnknownText
	}
	return model.Str(m[1])
}

// PickOutsideCutout is Pick for loose labels such as "Width": a match whose
// preceding words name a cut-out, opening, cavity or niche is skipped.
func PickOutsideCutout(text, label string) model.Text {
	re := labelPattern(label)
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		from := idx[0] - lookbehind
		if from < 0 {
			from = 0
		}
		if nl := strings.LastIndexByte(text[from:idx[0]], '\n'); nl >= 0 {
			from += nl + 1
		}
		if hasCutoutContext(NormalizeLabel(text[from:idx[2]])) {
			continue
		}
		return model.Str(text[idx[2]:idx[3]])
	}
	return model.UnknownText
}

// PickNumber is Pick reduced to the first number in the value, rendered as
// text ("240 Volts" -> "240").
func PickNumber(text, label string) model.Text {
	v := Pick(text, label)
	if !v.Known {
		return model.UnknownText
	}
	n := units.FirstNumber(v.Value)
	if !n.Known {
		return model.UnknownText
	}
	return model.Str(n.String())
}
