package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"appliancefit/internal/model"
	"appliancefit/internal/units"
)

// Page regions of the retailer product page.
const (
	specRegionSelector    = `div.tab-pane[id$="-specs-tab-pane"]`
	specHeaderSelector    = "div.bold"
	bodyHeaderSelector    = "h1,h2,h3,h4,div.bold,div.font-bold,strong"
	bodyBoundarySelector  = "h1,h2,h3,h4"
	specRowClass          = "spec-bar"
	specColumnSelector    = "div.col"
	combinedDimensionsKey = "dimensions"
)

var (
	reLabelValue = regexp.MustCompile(`^([^:]+)\s*:\s*(.+)$`)
	reTimes      = regexp.MustCompile(`(?i)\s*[x×]\s*`)
	reSpacedDash = regexp.MustCompile(`\s+[-–—]\s+`)
)

// Field is one named value a section scan looks for.
type Field struct {
	Name    string
	Aliases []Alias
}

// Family is the alias set for a width/height/depth group.
type Family struct {
	Width  []Alias
	Height []Alias
	Depth  []Alias
}

func (f Family) fields() []Field {
	return []Field{
		{Name: "width", Aliases: f.Width},
		{Name: "height", Aliases: f.Height},
		{Name: "depth", Aliases: f.Depth},
	}
}

// Dimensions holds raw width/height/depth text; the unit parser converts it.
type Dimensions struct {
	Width  model.Text
	Height model.Text
	Depth  model.Text
}

// Section is the outcome of scanning one titled section.
type Section struct {
	Found  bool
	values map[string]model.Text
}

// Get returns the value bound to field name, or Unknown.
func (s Section) Get(name string) model.Text {
	return s.values[name]
}

// bindings accumulates field values during a single section walk. A field
// keeps the first value bound to it.
type bindings struct {
	fields []Field
	values map[string]model.Text
}

func newBindings(fields []Field) *bindings {
	return &bindings{fields: fields, values: make(map[string]model.Text, len(fields))}
}

// bind assigns value to the first unbound field whose aliases match key.
func (b *bindings) bind(key, value string) bool {
	for _, f := range b.fields {
		if b.values[f.Name].Known {
			continue
		}
		for _, a := range f.Aliases {
			if matchesKey(key, a) {
				b.values[f.Name] = model.Str(value)
				return true
			}
		}
	}
	return false
}

func (b *bindings) fill(name, value string) {
	if !b.values[name].Known {
		b.values[name] = model.Str(value)
	}
}

func (b *bindings) complete() bool {
	for _, f := range b.fields {
		if !b.values[f.Name].Known {
			return false
		}
	}
	return true
}

func (b *bindings) section() Section {
	return Section{Found: true, values: b.values}
}

func (b *bindings) dimensions() Dimensions {
	return Dimensions{Width: b.values["width"], Height: b.values["height"], Depth: b.values["depth"]}
}

type scanMode int

const (
	// specScan walks the structured specifications tab.
	specScan scanMode = iota
	// bodyScan walks the product page outside the specifications tab and
	// ignores cut-out rows.
	bodyScan
)

type row struct {
	label string
	value string
}

// specRegion returns the specifications tab, or the whole body when the page
// has none.
func specRegion(doc *goquery.Document) *goquery.Selection {
	if pane := doc.Find(specRegionSelector); pane.Length() > 0 {
		return pane.First()
	}
	return doc.Find("body")
}

// mainRegion returns a detached copy of the body without the specifications tab.
func mainRegion(doc *goquery.Document) *goquery.Selection {
	root := doc.Find("body").Clone()
	root.Find(specRegionSelector).Remove()
	return root
}

// findHeader returns the first element matching selector whose normalized text
// equals one of titles.
func findHeader(root *goquery.Selection, selector string, titles []string) *goquery.Selection {
	keys := titleKeys(titles)
	if len(keys) == 0 {
		return nil
	}
	var header *goquery.Selection
	root.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if containsKey(keys, NormalizeLabel(s.Text())) {
			header = s
			return false
		}
		return true
	})
	return header
}

// ExtractFamily reads width/height/depth from the specifications section
// titled by any of sectionTitles. A page without that section yields all
// Unknown.
func ExtractFamily(doc *goquery.Document, sectionTitles []string, family Family) Dimensions {
	header := findHeader(specRegion(doc), specHeaderSelector, sectionTitles)
	if header == nil {
		return Dimensions{}
	}
	return walkSection(header, specScan, family.fields(), true).dimensions()
}

// ExtractMainFamily is ExtractFamily over the product page body, outside the
// specifications tab. Rows labelled as cut-out, opening, cavity or niche
// measurements are skipped even here, since marketing copy repeats them.
func ExtractMainFamily(doc *goquery.Document, sectionTitles []string, family Family) Dimensions {
	header := findHeader(mainRegion(doc), bodyHeaderSelector, sectionTitles)
	if header == nil {
		return Dimensions{}
	}
	return walkSection(header, bodyScan, family.fields(), false).dimensions()
}

// ScanSection binds arbitrary fields from a specifications section.
func ScanSection(doc *goquery.Document, sectionTitles []string, fields []Field) Section {
	header := findHeader(specRegion(doc), specHeaderSelector, sectionTitles)
	if header == nil {
		return Section{}
	}
	return walkSection(header, specScan, fields, false).section()
}

// walkSection visits the header's following siblings until the next header
// and returns what it bound.
func walkSection(header *goquery.Selection, mode scanMode, fields []Field, combined bool) *bindings {
	acc := newBindings(fields)
	for node := header.Next(); node.Length() > 0; node = node.Next() {
		if isBoundary(node, mode) {
			break
		}
		for _, r := range readRows(node, mode) {
			key := NormalizeLabel(r.label)
			value := cleanValue(r.value)
			if key == "" || value == "" {
				continue
			}
			if mode == bodyScan && hasCutoutContext(key) {
				continue
			}
			if acc.bind(key, value) {
				continue
			}
			if combined && strings.Contains(key, combinedDimensionsKey) && !acc.complete() {
				if h, w, d, ok := splitHxWxD(value); ok {
					acc.fill("height", h)
					acc.fill("width", w)
					acc.fill("depth", d)
				}
			}
		}
		if mode == bodyScan && acc.complete() {
			break
		}
	}
	return acc
}

func isBoundary(node *goquery.Selection, mode scanMode) bool {
	if mode == specScan {
		return node.Is(specHeaderSelector)
	}
	return node.Is(bodyBoundarySelector) || node.HasClass("bold") || node.HasClass("font-bold")
}

// readRows pulls label/value pairs out of one sibling node. The specifications
// tab only uses column rows and tables; the page body also has list items
// (bare or inside a list) and plain "Label: value" lines.
func readRows(node *goquery.Selection, mode scanMode) []row {
	if node.HasClass(specRowClass) {
		cols := node.Find(specColumnSelector)
		if cols.Length() >= 2 {
			return []row{{label: cols.First().Text(), value: cols.Last().Text()}}
		}
		return nil
	}
	if cols := node.ChildrenFiltered(specColumnSelector); cols.Length() >= 2 {
		return []row{{label: cols.First().Text(), value: cols.Last().Text()}}
	}
	if node.Is("tr") {
		return tableRow(node)
	}
	if node.Is("table") {
		var rows []row
		node.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, tableRow(tr)...)
		})
		return rows
	}
	if mode == specScan {
		return nil
	}

	if node.Is("ul,ol") {
		var rows []row
		node.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			if r, ok := splitLabelValue(li.Text()); ok {
				rows = append(rows, r)
			}
		})
		return rows
	}
	if node.Is("li") {
		if r, ok := splitLabelValue(node.Text()); ok {
			return []row{r}
		}
		return nil
	}
	var rows []row
	for _, line := range strings.Split(strings.ReplaceAll(node.Text(), nbsp, " "), "\n") {
		if r, ok := splitLabelValue(line); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

func tableRow(tr *goquery.Selection) []row {
	cells := tr.Find("td,th")
	if cells.Length() < 2 {
		return nil
	}
	return []row{{label: cells.Eq(0).Text(), value: cells.Eq(1).Text()}}
}

func splitLabelValue(line string) (row, bool) {
	m := reLabelValue.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return row{}, false
	}
	return row{label: m[1], value: m[2]}, true
}

func cleanValue(s string) string {
	s = strings.ReplaceAll(s, nbsp, " ")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

func hasCutoutContext(key string) bool {
	for _, w := range cutoutContext {
		if strings.Contains(key, w) {
			return true
		}
	}
	return false
}

// splitHxWxD splits a combined `33 7/8" x 23 1/16" x 23 3/4"` value into
// height, width and depth. Dash separated triples such as
// `28 5/8" - 28 1/2" - 23 1/2"` split only when every part reads as inches.
func splitHxWxD(value string) (h, w, d string, ok bool) {
	value = cleanValue(value)
	if parts, ok := splitTriple(reTimes, value); ok {
		return parts[0], parts[1], parts[2], true
	}
	parts, ok := splitTriple(reSpacedDash, value)
	if !ok {
		return "", "", "", false
	}
	for _, p := range parts {
		if !units.ParseInches(p).Known {
			return "", "", "", false
		}
	}
	return parts[0], parts[1], parts[2], true
}

func splitTriple(sep *regexp.Regexp, value string) ([]string, bool) {
	parts := sep.Split(value, -1)
	if len(parts) != 3 {
		return nil, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, false
		}
	}
	return parts, true
}
