package model

import "strings"

// Spec is the canonical appliance specification record. Every field is always
// present; a missing value is Unknown, never an absent key.
type Spec struct {
	Manufacturer  Text `json:"Manufacturer"`
	BrandLine     Text `json:"Brand Line"`
	ModelNumber   Text `json:"Model Number"`
	FuelType      Text `json:"Fuel Type"`
	Configuration Text `json:"Configuration"`
	ApplianceType Text `json:"Appliance Type"`

	OverallWidth  DecimalRange `json:"Overall Width (in)"`
	OverallHeight DecimalRange `json:"Overall Height (in)"`
	OverallDepth  DecimalRange `json:"Overall Depth (in)"`

	CutoutWidthMin  Decimal `json:"Cutout Width Min (in)"`
	CutoutWidthMax  Decimal `json:"Cutout Width Max (in)"`
	CutoutHeightMin Decimal `json:"Cutout Height Min (in)"`
	CutoutHeightMax Decimal `json:"Cutout Height Max (in)"`
	CutoutDepthMin  Decimal `json:"Cutout Depth Min (in)"`
	CutoutDepthMax  Decimal `json:"Cutout Depth Max (in)"`

	Voltage                  Text `json:"Voltage"`
	Amperage                 Text `json:"Amperage (A)"`
	Phase                    Text `json:"Phase"`
	ConnectionType           Text `json:"Connection Type"`
	DedicatedCircuitRequired Text `json:"Dedicated Circuit Required"`

	FrontVenting                Text    `json:"Front Venting"`
	RearClearanceRequired       Text    `json:"Rear Clearance Required"`
	BottomClearance             Decimal `json:"Bottom Clearance Required (in)"`
	TopClearance                Decimal `json:"Top Clearance Required (in)"`
	ExternalVentRequired        Text    `json:"External Vent Required"`
	CoolingFanRequired          Text    `json:"Cooling Fan Required"`
	UnitWeight                  Text    `json:"Unit Weight (lbs)"`
	CabinetMaterialRestrictions Text    `json:"Cabinet Material Restrictions"`
	SupportPlatformRequired     Text    `json:"Support Platform Required"`

	SourceURL Text `json:"Spec Source URL"`

	Ventilation Ventilation `json:"Ventilation"`
	Plumbing    Plumbing    `json:"Plumbing"`
	Gas         Gas         `json:"Gas"`

	Manuals ManualReferences `json:"Manuals"`
}

type Ventilation struct {
	Required             Text `json:"Required"`
	Type                 Text `json:"Type"`
	MinCFM               Text `json:"Min CFM"`
	RecommendedCFM       Text `json:"Recommended CFM"`
	DuctDiameter         Text `json:"Duct Diameter"`
	RecirculatingAllowed Text `json:"Recirculating Allowed"`
}

type Plumbing struct {
	WaterSupplyRequired Text `json:"Water Supply Required"`
	WaterLineSize       Text `json:"Water Line Size"`
	DrainRequired       Text `json:"Drain Required"`
	DrainSize           Text `json:"Drain Size"`
}

type Gas struct {
	Required       Text `json:"Required"`
	Type           Text `json:"Type"`
	SupplyPressure Text `json:"Supply Pressure"`
	ConnectionSize Text `json:"Connection Size"`
}

// ManualRef is one linked document from a product page.
type ManualRef struct {
	Kind  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ManualReferences holds at most one document per kind. Primary is whichever
// kind appeared first on the page.
type ManualReferences struct {
	Primary       *ManualRef `json:"primary"`
	Specification *ManualRef `json:"specification"`
	Installation  *ManualRef `json:"installation"`
}

// Known reports whether any manual was classified.
func (m ManualReferences) Known() bool {
	return m.Primary != nil
}

// Resolved reports whether the record came from anywhere at all.
func (s Spec) Resolved() bool {
	return s.ModelNumber.Known || s.SourceURL.Known
}

// NormalizeModel upper-cases a model number and drops everything that is not
// a letter or digit ("kodc 304-ess" -> "KODC304ESS").
func NormalizeModel(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	var b strings.Builder
	for _, r := range v {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CatalogKey is the lookup key used by catalogs: trimmed and case-insensitive.
func CatalogKey(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
