package model

import "strings"

// column binds one spreadsheet column to a Spec field.
type column struct {
	name string
	get  func(*Spec) string
	set  func(*Spec, string)
}

func textCol(name string, f func(*Spec) *Text) column {
	return column{
		name: name,
		get:  func(s *Spec) string { return f(s).String() },
		set:  func(s *Spec, v string) { *f(s) = Str(v) },
	}
}

func decCol(name string, f func(*Spec) *Decimal) column {
	return column{
		name: name,
		get:  func(s *Spec) string { return f(s).String() },
		set:  func(s *Spec, v string) { *f(s) = ParseDecimal(v) },
	}
}

func rangeCol(name string, f func(*Spec) *DecimalRange) column {
	return column{
		name: name,
		get:  func(s *Spec) string { return f(s).String() },
		set:  func(s *Spec, v string) { *f(s) = ParseRange(strings.TrimSpace(v)) },
	}
}

// columns is the catalog sheet layout, in export order.
var columns = []column{
	textCol("Manufacturer", func(s *Spec) *Text { return &s.Manufacturer }),
	textCol("Brand Line", func(s *Spec) *Text { return &s.BrandLine }),
	textCol("Model Number", func(s *Spec) *Text { return &s.ModelNumber }),
	textCol("Fuel Type", func(s *Spec) *Text { return &s.FuelType }),
	textCol("Configuration", func(s *Spec) *Text { return &s.Configuration }),
	textCol("Appliance Type", func(s *Spec) *Text { return &s.ApplianceType }),
	rangeCol("Overall Width (in)", func(s *Spec) *DecimalRange { return &s.OverallWidth }),
	rangeCol("Overall Height (in)", func(s *Spec) *DecimalRange { return &s.OverallHeight }),
	rangeCol("Overall Depth (in)", func(s *Spec) *DecimalRange { return &s.OverallDepth }),
	decCol("Cutout Width Min (in)", func(s *Spec) *Decimal { return &s.CutoutWidthMin }),
	decCol("Cutout Width Max (in)", func(s *Spec) *Decimal { return &s.CutoutWidthMax }),
	decCol("Cutout Height Min (in)", func(s *Spec) *Decimal { return &s.CutoutHeightMin }),
	decCol("Cutout Height Max (in)", func(s *Spec) *Decimal { return &s.CutoutHeightMax }),
	decCol("Cutout Depth Min (in)", func(s *Spec) *Decimal { return &s.CutoutDepthMin }),
	textCol("Voltage", func(s *Spec) *Text { return &s.Voltage }),
	textCol("Amperage (A)", func(s *Spec) *Text { return &s.Amperage }),
	textCol("Phase", func(s *Spec) *Text { return &s.Phase }),
	textCol("Connection Type", func(s *Spec) *Text { return &s.ConnectionType }),
	textCol("Dedicated Circuit Required", func(s *Spec) *Text { return &s.DedicatedCircuitRequired }),
	textCol("Front Venting", func(s *Spec) *Text { return &s.FrontVenting }),
	textCol("Rear Clearance Required", func(s *Spec) *Text { return &s.RearClearanceRequired }),
	decCol("Bottom Clearance Required (in)", func(s *Spec) *Decimal { return &s.BottomClearance }),
	decCol("Top Clearance Required (in)", func(s *Spec) *Decimal { return &s.TopClearance }),
	textCol("External Vent Required", func(s *Spec) *Text { return &s.ExternalVentRequired }),
	textCol("Cooling Fan Required", func(s *Spec) *Text { return &s.CoolingFanRequired }),
	textCol("Unit Weight (lbs)", func(s *Spec) *Text { return &s.UnitWeight }),
	textCol("Cabinet Material Restrictions", func(s *Spec) *Text { return &s.CabinetMaterialRestrictions }),
	textCol("Support Platform Required", func(s *Spec) *Text { return &s.SupportPlatformRequired }),
	textCol("Spec Source URL", func(s *Spec) *Text { return &s.SourceURL }),
	textCol("Ventilation Required", func(s *Spec) *Text { return &s.Ventilation.Required }),
	textCol("Ventilation Type", func(s *Spec) *Text { return &s.Ventilation.Type }),
	textCol("Ventilation Min CFM", func(s *Spec) *Text { return &s.Ventilation.MinCFM }),
	textCol("Ventilation Recommended CFM", func(s *Spec) *Text { return &s.Ventilation.RecommendedCFM }),
	textCol("Ventilation Duct Diameter", func(s *Spec) *Text { return &s.Ventilation.DuctDiameter }),
	textCol("Ventilation Recirculating Allowed", func(s *Spec) *Text { return &s.Ventilation.RecirculatingAllowed }),
	textCol("Water Supply Required", func(s *Spec) *Text { return &s.Plumbing.WaterSupplyRequired }),
	textCol("Water Line Size", func(s *Spec) *Text { return &s.Plumbing.WaterLineSize }),
	textCol("Drain Required", func(s *Spec) *Text { return &s.Plumbing.DrainRequired }),
	textCol("Drain Size", func(s *Spec) *Text { return &s.Plumbing.DrainSize }),
	textCol("Gas Required", func(s *Spec) *Text { return &s.Gas.Required }),
	textCol("Gas Type", func(s *Spec) *Text { return &s.Gas.Type }),
	textCol("Gas Supply Pressure", func(s *Spec) *Text { return &s.Gas.SupplyPressure }),
	textCol("Gas Connection Size", func(s *Spec) *Text { return &s.Gas.ConnectionSize }),
}

// Columns returns the sheet header row.
func Columns() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

// Row renders the spec in column order, Unknown as "N/A".
func (s Spec) Row() []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = c.get(&s)
	}
	return row
}

// TSVRow is Row joined by tabs, ready to paste into the catalog sheet.
func (s Spec) TSVRow() string {
	return strings.Join(s.Row(), "\t")
}

// SpecFromRow builds a Spec from a header row and one data row. Headers are
// matched case-insensitively; unknown headers are ignored and missing ones
// stay Unknown. A sheet that only carries a single cutout depth fills both
// depth bounds.
func SpecFromRow(headers, cells []string) Spec {
	byName := make(map[string]column, len(columns))
	for _, c := range columns {
		byName[strings.ToLower(c.name)] = c
	}

	var s Spec
	for i, h := range headers {
		c, ok := byName[strings.ToLower(strings.TrimSpace(h))]
		if !ok || i >= len(cells) {
			continue
		}
		c.set(&s, cells[i])
	}
	if s.CutoutDepthMin.Known && !s.CutoutDepthMax.Known {
		s.CutoutDepthMax = s.CutoutDepthMin
	}
	return s
}
