package compat

import "appliancefit/internal/model"

// Chart identifiers, in output order.
const (
	ChartCutout      = "cutout"
	ChartElectrical  = "electrical"
	ChartVentilation = "ventilation"
	ChartGas         = "gas"
	ChartPlumbing    = "plumbing"
)

func diff(old, new model.Decimal) string {
	if !old.Known || !new.Known {
		return model.NA
	}
	return model.FormatDecimal(new.Value - old.Value)
}

func decimalRow(label string, old, new model.Decimal) model.ChartRow {
	return model.ChartRow{Label: label, Old: old.String(), New: new.String(), Diff: diff(old, new)}
}

// textRow only computes a diff when both values are plain numbers; text such
// as "6 in" or "Yes" is never coerced.
func textRow(label string, old, new model.Text) model.ChartRow {
	return model.ChartRow{Label: label, Old: old.String(), New: new.String(), Diff: diff(old.Number(), new.Number())}
}

// rangeRow diffs the lower bounds.
func rangeRow(label string, old, new model.DecimalRange) model.ChartRow {
	return model.ChartRow{Label: label, Old: old.String(), New: new.String(), Diff: diff(old.Min, new.Min)}
}

// Charts builds the per-category comparison tables.
func Charts(existing, replacement model.Spec) []model.Chart {
	o, n := existing, replacement
	return []model.Chart{
		{
			ID:    ChartCutout,
			Title: "Cut-Out Dimensions",
			Rows: []model.ChartRow{
				decimalRow("Cut-Out Width Min (in)", o.CutoutWidthMin, n.CutoutWidthMin),
				decimalRow("Cut-Out Width Max (in)", o.CutoutWidthMax, n.CutoutWidthMax),
				decimalRow("Cut-Out Height Min (in)", o.CutoutHeightMin, n.CutoutHeightMin),
				decimalRow("Cut-Out Height Max (in)", o.CutoutHeightMax, n.CutoutHeightMax),
				decimalRow("Cut-Out Depth Min (in)", o.CutoutDepthMin, n.CutoutDepthMin),
				decimalRow("Cut-Out Depth Max (in)", o.CutoutDepthMax, n.CutoutDepthMax),
				rangeRow("Overall Width (in)", o.OverallWidth, n.OverallWidth),
				rangeRow("Overall Height (in)", o.OverallHeight, n.OverallHeight),
				rangeRow("Overall Depth (in)", o.OverallDepth, n.OverallDepth),
			},
		},
		{
			ID:    ChartElectrical,
			Title: "Electrical",
			Rows: []model.ChartRow{
				textRow("Voltage", o.Voltage, n.Voltage),
				textRow("Amperage (A)", o.Amperage, n.Amperage),
				textRow("Phase", o.Phase, n.Phase),
				textRow("Connection Type", o.ConnectionType, n.ConnectionType),
				textRow("Dedicated Circuit Required", o.DedicatedCircuitRequired, n.DedicatedCircuitRequired),
			},
		},
		{
			ID:    ChartVentilation,
			Title: "Ventilation",
			Rows: []model.ChartRow{
				textRow("Ventilation Required", o.Ventilation.Required, n.Ventilation.Required),
				textRow("Ventilation Type", o.Ventilation.Type, n.Ventilation.Type),
				textRow("Min CFM", o.Ventilation.MinCFM, n.Ventilation.MinCFM),
				textRow("Recommended CFM", o.Ventilation.RecommendedCFM, n.Ventilation.RecommendedCFM),
				textRow("Duct Diameter", o.Ventilation.DuctDiameter, n.Ventilation.DuctDiameter),
				textRow("Recirculating Allowed", o.Ventilation.RecirculatingAllowed, n.Ventilation.RecirculatingAllowed),
				textRow("Front Venting", o.FrontVenting, n.FrontVenting),
				textRow("External Vent Required", o.ExternalVentRequired, n.ExternalVentRequired),
			},
		},
		{
			ID:    ChartGas,
			Title: "Gas",
			Rows: []model.ChartRow{
				textRow("Gas Required", o.Gas.Required, n.Gas.Required),
				textRow("Gas Type", o.Gas.Type, n.Gas.Type),
				textRow("Gas Supply Pressure", o.Gas.SupplyPressure, n.Gas.SupplyPressure),
				textRow("Gas Connection Size", o.Gas.ConnectionSize, n.Gas.ConnectionSize),
			},
		},
		{
			ID:    ChartPlumbing,
			Title: "Plumbing",
			Rows: []model.ChartRow{
				textRow("Water Supply Required", o.Plumbing.WaterSupplyRequired, n.Plumbing.WaterSupplyRequired),
				textRow("Water Line Size", o.Plumbing.WaterLineSize, n.Plumbing.WaterLineSize),
				textRow("Drain Required", o.Plumbing.DrainRequired, n.Plumbing.DrainRequired),
				textRow("Drain Size", o.Plumbing.DrainSize, n.Plumbing.DrainSize),
			},
		},
	}
}
