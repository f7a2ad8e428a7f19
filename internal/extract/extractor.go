// Package extract turns a retailer product page into a canonical appliance
// spec. Every field is resolved through an ordered chain of strategies; the
// first strategy that yields a known value wins and the rest are skipped.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"appliancefit/internal/model"
	"appliancefit/internal/observability"
	"appliancefit/internal/units"
)

// ErrParse is returned when the markup cannot be read at all.
var ErrParse = errors.New("parse product page")

// Strategy is one way of finding a field value on a page.
type Strategy[T any] struct {
	Name string
	Find func(p *page) T
}

// page carries one parsed document through a single extraction. Section
// scans are memoized so a chain that reaches the same section twice walks
// it once.
type page struct {
	doc      *goquery.Document
	text     string
	families map[string]Dimensions
	sections map[string]Section
	unknown  []string
}

func newPage(doc *goquery.Document, text string) *page {
	return &page{
		doc:      doc,
		text:     text,
		families: make(map[string]Dimensions),
		sections: make(map[string]Section),
	}
}

// familyScan names a dimension family lookup.
type familyScan struct {
	key    string
	titles []string
	family Family
	main   bool
}

var (
	cutoutSpecScan  = familyScan{key: "cutout", titles: cutoutSectionTitles, family: cutoutFamily}
	overallSpecScan = familyScan{key: "overall", titles: overallSectionTitles, family: overallFamily}
	overallMainScan = familyScan{key: "overall-main", titles: mainSectionTitles, family: mainFamily, main: true}
)

func (p *page) dims(s familyScan) Dimensions {
	if d, ok := p.families[s.key]; ok {
		return d
	}
	var d Dimensions
	if s.main {
		d = ExtractMainFamily(p.doc, s.titles, s.family)
	} else {
		d = ExtractFamily(p.doc, s.titles, s.family)
	}
	p.families[s.key] = d
	return d
}

// sectionScan names a service section lookup.
type sectionScan struct {
	key    string
	titles []string
	fields []Field
}

var (
	ventilationScan = sectionScan{key: "ventilation", titles: ventilationSectionTitles, fields: ventilationFields}
	plumbingScan    = sectionScan{key: "plumbing", titles: plumbingSectionTitles, fields: plumbingFields}
	gasScan         = sectionScan{key: "gas", titles: gasSectionTitles, fields: gasFields}
	installScan     = sectionScan{key: "install", titles: installSectionTitles, fields: installFields}
	electricalScan  = sectionScan{key: "electrical", titles: electricalSectionTitles, fields: electricalFields}
)

func (p *page) section(s sectionScan) Section {
	if sec, ok := p.sections[s.key]; ok {
		return sec
	}
	sec := ScanSection(p.doc, s.titles, s.fields)
	p.sections[s.key] = sec
	return sec
}

func resolve[T any](p *page, field string, known func(T) bool, chain []Strategy[T]) T {
	for _, s := range chain {
		if v := s.Find(p); known(v) {
			log.Debug().Str("field", field).Str("strategy", s.Name).Msg("[Extract] field bound")
			return v
		}
	}
	p.unknown = append(p.unknown, field)
	var zero T
	return zero
}

func knownText(t model.Text) bool          { return t.Known }
func knownDecimal(d model.Decimal) bool    { return d.Known }
func knownRange(r model.DecimalRange) bool { return r.Known() }

// Strategy constructors.

func pageText(label string) Strategy[model.Text] {
	return Strategy[model.Text]{Name: "page:" + label, Find: func(p *page) model.Text {
		return Pick(p.text, label)
	}}
}

func pageNumber(label string) Strategy[model.Text] {
	return Strategy[model.Text]{Name: "page#:" + label, Find: func(p *page) model.Text {
		return PickNumber(p.text, label)
	}}
}

func pageInches(label string) Strategy[model.Decimal] {
	return Strategy[model.Decimal]{Name: "page:" + label, Find: func(p *page) model.Decimal {
		return units.ParseInches(Pick(p.text, label).Value)
	}}
}

func pageRange(label string) Strategy[model.DecimalRange] {
	return Strategy[model.DecimalRange]{Name: "page:" + label, Find: func(p *page) model.DecimalRange {
		return units.ParseInchesRange(Pick(p.text, label).Value)
	}}
}

func looseRange(label string) Strategy[model.DecimalRange] {
	return Strategy[model.DecimalRange]{Name: "loose:" + label, Find: func(p *page) model.DecimalRange {
		return units.ParseInchesRange(PickOutsideCutout(p.text, label).Value)
	}}
}

func familyRange(s familyScan, pick func(Dimensions) model.Text) Strategy[model.DecimalRange] {
	return Strategy[model.DecimalRange]{Name: "section:" + s.key, Find: func(p *page) model.DecimalRange {
		return units.ParseInchesRange(pick(p.dims(s)).Value)
	}}
}

func sectionText(s sectionScan, field string) Strategy[model.Text] {
	return Strategy[model.Text]{Name: "section:" + s.key + "." + field, Find: func(p *page) model.Text {
		return p.section(s).Get(field)
	}}
}

func sectionNumber(s sectionScan, field string) Strategy[model.Text] {
	return Strategy[model.Text]{Name: "section#:" + s.key + "." + field, Find: func(p *page) model.Text {
		v := p.section(s).Get(field)
		if n := units.FirstNumber(v.Value); v.Known && n.Known {
			return model.Str(n.String())
		}
		return model.UnknownText
	}}
}

func sectionInches(s sectionScan, field string) Strategy[model.Decimal] {
	return Strategy[model.Decimal]{Name: "section:" + s.key + "." + field, Find: func(p *page) model.Decimal {
		return units.ParseInches(p.section(s).Get(field).Value)
	}}
}

func when(cond bool, s Strategy[model.DecimalRange]) Strategy[model.DecimalRange] {
	if cond {
		return s
	}
	return Strategy[model.DecimalRange]{Name: s.Name + " (skipped)", Find: func(*page) model.DecimalRange {
		return model.DecimalRange{}
	}}
}

// textChain tries each page label in order, then an optional section field.
func textChain(labels []string, sec *sectionScan, field string) []Strategy[model.Text] {
	chain := make([]Strategy[model.Text], 0, len(labels)+1)
	for _, l := range labels {
		chain = append(chain, pageText(l))
	}
	if sec != nil {
		chain = append(chain, sectionText(*sec, field))
	}
	return chain
}

func width(d Dimensions) model.Text  { return d.Width }
func height(d Dimensions) model.Text { return d.Height }
func depth(d Dimensions) model.Text  { return d.Depth }

// Dimension chains in priority order: most specific page label, the
// specifications section, the page body (overall only), then loose labels.
var (
	cutoutWidthChain = []Strategy[model.DecimalRange]{
		pageRange("Cutout Width"),
		familyRange(cutoutSpecScan, width),
		pageRange("Cut-Out Width"),
		pageRange("Cut Out Width"),
	}
	cutoutHeightChain = []Strategy[model.DecimalRange]{
		pageRange("Cutout Height"),
		familyRange(cutoutSpecScan, height),
		pageRange("Cut-Out Height"),
		pageRange("Cut Out Height"),
	}
	overallWidthChain = []Strategy[model.DecimalRange]{
		pageRange("Overall Width"),
		familyRange(overallSpecScan, width),
		familyRange(overallMainScan, width),
		looseRange("Product Width"),
		looseRange("Width"),
	}
	overallHeightChain = []Strategy[model.DecimalRange]{
		pageRange("Overall Height"),
		familyRange(overallSpecScan, height),
		familyRange(overallMainScan, height),
		looseRange("Product Height"),
		looseRange("Height"),
		looseRange("Heigh"),
	}
	overallDepthChain = []Strategy[model.DecimalRange]{
		pageRange("Overall Depth"),
		familyRange(overallSpecScan, depth),
		familyRange(overallMainScan, depth),
		looseRange("Product Depth"),
		looseRange("Depth"),
	}
)

// cutoutDepthChain only trusts "Cabinet Depth" once the page has shown some
// other cut-out measurement.
func cutoutDepthChain(haveCutout bool) []Strategy[model.DecimalRange] {
	return []Strategy[model.DecimalRange]{
		pageRange("Cutout Depth"),
		familyRange(cutoutSpecScan, depth),
		pageRange("Cut-Out Depth"),
		pageRange("Cut Out Depth"),
		when(haveCutout, pageRange("Cabinet Depth")),
	}
}

var (
	voltageChain = []Strategy[model.Text]{
		pageNumber("Voltage"), pageNumber("Volts"), sectionNumber(electricalScan, "voltage"),
	}
	amperageChain = []Strategy[model.Text]{
		pageNumber("Amps"), pageNumber("Amperage"), pageNumber("Amp Rating"), sectionNumber(electricalScan, "amperage"),
	}
	weightChain = []Strategy[model.Text]{pageNumber("Net Weight"), pageNumber("Product Weight"), pageNumber("Weight")}

	minCFMChain = []Strategy[model.Text]{
		pageNumber("Minimum CFM"), pageNumber("Min CFM"), sectionNumber(ventilationScan, "min_cfm"),
	}
	recommendedCFMChain = []Strategy[model.Text]{
		pageNumber("Recommended CFM"), pageNumber("Blower CFM"), sectionNumber(ventilationScan, "recommended_cfm"),
	}
	bottomClearanceChain = []Strategy[model.Decimal]{
		pageInches("Bottom Clearance Required"), pageInches("Bottom Clearance"), sectionInches(installScan, "bottom_clearance"),
	}
	topClearanceChain = []Strategy[model.Decimal]{
		pageInches("Top Clearance Required"), pageInches("Top Clearance"), sectionInches(installScan, "top_clearance"),
	}
)

// Extract builds a Spec from a parsed product page. It never fails: anything
// it cannot find is Unknown. pageText may be empty, in which case it is
// derived from doc.
func Extract(doc *goquery.Document, text, sourceURL, requestedModel string) model.Spec {
	if text == "" {
		text = PageText(doc)
	}
	p := newPage(doc, text)
	str := func(field string, chain []Strategy[model.Text]) model.Text {
		return resolve(p, field, knownText, chain)
	}
	rng := func(field string, chain []Strategy[model.DecimalRange]) model.DecimalRange {
		return resolve(p, field, knownRange, chain)
	}
	dec := func(field string, chain []Strategy[model.Decimal]) model.Decimal {
		return resolve(p, field, knownDecimal, chain)
	}

	var s model.Spec

	brand := str("Brand", textChain([]string{"Brand"}, nil, ""))
	if brand.Known {
		s.BrandLine = brand
		s.Manufacturer = model.Str(strings.Fields(brand.Value)[0])
	}
	modelText := str("Model Number", textChain([]string{"Model"}, nil, ""))
	if !modelText.Known {
		modelText = model.Str(requestedModel)
	}
	s.ModelNumber = model.Str(model.NormalizeModel(modelText.Value))

	s.FuelType = str("Fuel Type", textChain([]string{"Fuel Type"}, nil, ""))
	s.Configuration = str("Configuration", textChain([]string{"Configuration"}, nil, ""))
	s.ApplianceType = str("Appliance Type", textChain([]string{"Appliance Type", "Product Type"}, nil, ""))

	s.OverallWidth = rng("Overall Width", overallWidthChain)
	s.OverallHeight = rng("Overall Height", overallHeightChain)
	s.OverallDepth = rng("Overall Depth", overallDepthChain)

	cw := rng("Cutout Width", cutoutWidthChain).Collapse()
	ch := rng("Cutout Height", cutoutHeightChain).Collapse()
	cd := rng("Cutout Depth", cutoutDepthChain(cw.Known() || ch.Known())).Collapse()
	s.CutoutWidthMin, s.CutoutWidthMax = cw.Min, cw.Max
	s.CutoutHeightMin, s.CutoutHeightMax = ch.Min, ch.Max
	s.CutoutDepthMin, s.CutoutDepthMax = cd.Min, cd.Max

	s.Voltage = str("Voltage", voltageChain)
	s.Amperage = str("Amperage", amperageChain)
	s.Phase = str("Phase", textChain([]string{"Phase"}, nil, ""))
	s.ConnectionType = str("Connection Type", textChain([]string{"Connection Type", "Plug Type", "Power Connection"}, nil, ""))
	s.DedicatedCircuitRequired = str("Dedicated Circuit Required", textChain([]string{"Dedicated Circuit Required", "Dedicated Circuit"}, nil, ""))

	s.FrontVenting = str("Front Venting", textChain([]string{"Front Venting", "Front Vent"}, nil, ""))
	s.RearClearanceRequired = str("Rear Clearance Required", textChain([]string{"Rear Clearance Required", "Rear Clearance"}, &installScan, "rear_clearance"))
	s.BottomClearance = dec("Bottom Clearance", bottomClearanceChain)
	s.TopClearance = dec("Top Clearance", topClearanceChain)
	s.ExternalVentRequired = str("External Vent Required", textChain([]string{"External Vent Required", "External Venting", "External Vent"}, nil, ""))
	s.CoolingFanRequired = str("Cooling Fan Required", textChain([]string{"Cooling Fan Required", "Cooling Fan"}, nil, ""))
	s.UnitWeight = str("Unit Weight", weightChain)
	s.CabinetMaterialRestrictions = str("Cabinet Material Restrictions", textChain([]string{"Cabinet Material Restrictions", "Cabinet Material"}, &installScan, "cabinet_material"))
	s.SupportPlatformRequired = str("Support Platform Required", textChain([]string{"Support Platform Required", "Support Platform"}, &installScan, "support_platform"))

	s.Ventilation = model.Ventilation{
		Required:             str("Ventilation Required", textChain([]string{"Ventilation Required", "Venting Required"}, &ventilationScan, "required")),
		Type:                 str("Ventilation Type", textChain([]string{"Ventilation Type", "Venting Type", "Vent Type"}, &ventilationScan, "type")),
		MinCFM:               str("Ventilation Min CFM", minCFMChain),
		RecommendedCFM:       str("Ventilation Recommended CFM", recommendedCFMChain),
		DuctDiameter:         str("Ventilation Duct Diameter", textChain([]string{"Duct Diameter", "Duct Size"}, &ventilationScan, "duct_diameter")),
		RecirculatingAllowed: str("Ventilation Recirculating Allowed", textChain([]string{"Recirculating Allowed", "Recirculating", "Ductless Convertible"}, &ventilationScan, "recirculating")),
	}
	s.Plumbing = model.Plumbing{
		WaterSupplyRequired: str("Water Supply Required", textChain([]string{"Water Supply Required", "Water Connection Required"}, &plumbingScan, "water_required")),
		WaterLineSize:       str("Water Line Size", textChain([]string{"Water Line Size", "Water Inlet Size", "Water Line"}, &plumbingScan, "water_line")),
		DrainRequired:       str("Drain Required", textChain([]string{"Drain Required"}, &plumbingScan, "drain_required")),
		DrainSize:           str("Drain Size", textChain([]string{"Drain Size"}, &plumbingScan, "drain_size")),
	}
	s.Gas = model.Gas{
		Required:       str("Gas Required", textChain([]string{"Gas Required"}, &gasScan, "required")),
		Type:           str("Gas Type", textChain([]string{"Gas Type"}, &gasScan, "type")),
		SupplyPressure: str("Gas Supply Pressure", textChain([]string{"Gas Supply Pressure", "Gas Pressure", "Inlet Pressure"}, &gasScan, "pressure")),
		ConnectionSize: str("Gas Connection Size", textChain([]string{"Gas Connection Size", "Gas Inlet Size", "Gas Connection"}, &gasScan, "connection")),
	}

	s.SourceURL = model.Str(sourceURL)
	s.Manuals = ClassifyManuals(doc, sourceURL)

	for _, f := range p.unknown {
		observability.UnknownFields.WithLabelValues(f).Inc()
	}
	log.Debug().
		Str("model", s.ModelNumber.String()).
		Int("unknown", len(p.unknown)).
		Msg("[Extract] spec extracted")
	return s
}

// ExtractHTML parses raw markup and extracts a Spec from it.
func ExtractHTML(html, sourceURL, requestedModel string) (model.Spec, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.Spec{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Extract(doc, "", sourceURL, requestedModel), nil
}
