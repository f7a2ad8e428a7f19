package extract

// Section title aliases. Manufacturers name the same section differently; a
// header must equal one of these after NormalizeLabel.
var (
	cutoutSectionTitles = []string{
		"Cut Out Dimensions",
		"Cut-Out Dimensions",
		"Cutout Dimensions",
		"Installation Dimensions",
		"Cavity Dimensions",
		"Cabinet Opening Dimensions",
		"Opening Dimensions",
		"Built-In Opening Dimensions",
		"Rough Opening Dimensions",
	}

	overallSectionTitles = []string{
		"Dimensions",
		"Product Dimensions",
		"Overall Dimensions",
		"Exterior Dimensions",
		"Unit Dimensions",
		"Product Size",
		"Product Measurements",
		"Dimensions & Weight",
		"Dimensions & Weights",
		"Dimension & Weight",
		"Dimension & Weights",
		"Weight & Dimensions",
		"Weights & Dimensions",
		"Dimensions and Weight",
		"Dimensions and Weights",
		"Weight and Dimensions",
		"Weights and Dimensions",
		"Dimensions / Clearances / Weight",
	}

	mainSectionTitles = []string{
		"Dimensions",
		"Product Dimensions",
		"Overall Dimensions",
		"Exterior Dimensions",
		"Unit Dimensions",
		"Product Size",
		"Product Measurements",
	}

	ventilationSectionTitles = []string{"Ventilation", "Venting", "Ventilation Specifications", "Ventilation Requirements", "Blower"}
	plumbingSectionTitles    = []string{"Plumbing", "Plumbing Requirements", "Water", "Water Connection", "Water & Drain"}
	gasSectionTitles         = []string{"Gas", "Gas Specifications", "Gas Requirements", "Fuel & Gas"}
	installSectionTitles     = []string{"Installation", "Installation Requirements", "Installation Specifications", "Clearances"}
	electricalSectionTitles  = []string{"Electrical", "Electrical Specifications", "Electrical Requirements", "Power", "Power Requirements"}
)

// Dimension field families. Width, height and depth aliases are tried in
// order; the first row that matches binds the field.
var (
	cutoutFamily = Family{
		Width: []Alias{
			Phrase("width"),
			Phrase("cut out width"),
			Phrase("cavity width"),
			Phrase("niche width"),
			AllOf("minimum", "width", "cabinetry"),
			AllOf("minimum", "width", "cabinet"),
			AllOf("cabinet", "opening", "width"),
		},
		Height: []Alias{
			Phrase("height"),
			Phrase("cut out height"),
			Phrase("cavity height"),
			Phrase("niche height"),
			AllOf("minimum", "height", "cabinetry"),
			AllOf("minimum", "height", "cabinet"),
			AllOf("cabinet", "opening", "height"),
		},
		Depth: []Alias{
			Phrase("depth"),
			Phrase("cut out depth"),
			Phrase("cavity depth"),
			Phrase("niche depth"),
			Phrase("cabinet depth"),
			AllOf("minimum", "depth", "cabinetry"),
			AllOf("minimum", "depth", "cabinet"),
			AllOf("cabinet", "opening", "depth"),
		},
	}

	overallFamily = Family{
		Width:  phrases("width", "overall width", "product width", "unit width"),
		Height: phrases("height", "heigh", "overall height", "product height", "unit height"),
		Depth:  phrases("depth", "overall depth", "product depth", "unit depth"),
	}

	mainFamily = Family{
		Width:  phrases("width", "overall width", "product width", "unit width", "exterior width"),
		Height: phrases("height", "heigh", "overall height", "product height", "unit height", "exterior height"),
		Depth:  phrases("depth", "overall depth", "product depth", "unit depth", "exterior depth"),
	}
)

// cutoutContext marks labels that describe the cabinet opening rather than
// the appliance. Rows outside the cut-out section carrying these words are
// skipped.
var cutoutContext = []string{"cutout", "cut out", "cavity", "niche", "opening"}

// Service sections. A row binds at most one field, the first whose aliases
// match, so field order matters.
var (
	ventilationFields = []Field{
		{Name: "required", Aliases: []Alias{AllOf("vent", "required")}},
		{Name: "type", Aliases: []Alias{AllOf("vent", "type"), AllOf("vent", "system")}},
		{Name: "min_cfm", Aliases: []Alias{AllOf("minimum", "cfm"), AllOf("min", "cfm")}},
		{Name: "recommended_cfm", Aliases: []Alias{AllOf("recommended", "cfm"), Phrase("cfm")}},
		{Name: "duct_diameter", Aliases: []Alias{Phrase("duct diameter"), Phrase("duct size"), Phrase("duct")}},
		{Name: "recirculating", Aliases: []Alias{Phrase("recirculat"), Phrase("ductless")}},
	}

	plumbingFields = []Field{
		{Name: "water_required", Aliases: []Alias{AllOf("water", "required"), Phrase("water supply"), Phrase("water connection")}},
		{Name: "water_line", Aliases: []Alias{Phrase("water line"), Phrase("water inlet"), AllOf("water", "size")}},
		{Name: "drain_required", Aliases: []Alias{AllOf("drain", "required")}},
		{Name: "drain_size", Aliases: []Alias{Phrase("drain size"), Phrase("drain hose"), Phrase("drain")}},
	}

	gasFields = []Field{
		{Name: "required", Aliases: []Alias{AllOf("gas", "required")}},
		{Name: "type", Aliases: []Alias{Phrase("gas type"), Phrase("fuel type"), Phrase("conversion")}},
		{Name: "pressure", Aliases: []Alias{Phrase("pressure")}},
		{Name: "connection", Aliases: []Alias{Phrase("gas connection"), Phrase("gas inlet"), Phrase("inlet size"), Phrase("connection size")}},
	}

	electricalFields = []Field{
		{Name: "voltage", Aliases: []Alias{Phrase("voltage"), Phrase("volts")}},
		{Name: "amperage", Aliases: []Alias{Phrase("amperage"), Phrase("amps"), Phrase("amp rating"), Phrase("circuit breaker")}},
	}

	installFields = []Field{
		{Name: "rear_clearance", Aliases: []Alias{Phrase("rear clearance")}},
		{Name: "bottom_clearance", Aliases: []Alias{Phrase("bottom clearance")}},
		{Name: "top_clearance", Aliases: []Alias{Phrase("top clearance")}},
		{Name: "support_platform", Aliases: []Alias{Phrase("support platform"), Phrase("platform")}},
		{Name: "cabinet_material", Aliases: []Alias{Phrase("cabinet material")}},
	}
)
