// Package lca implements the impact-aggregation pipeline for product
// life cycle assessment: process-mapping resolution, unit normalization,
// greenhouse-gas extraction, and CO2-equivalent aggregation using IPCC
// AR5 global-warming potentials (ISO 14040/14044 methodology).
package lca

// ProcessMapping links a raw material name to an ecoinvent process.
type ProcessMapping struct {
	MaterialName string
	ProcessUUID  string
	ProcessName  string
	Unit         string
	Category     string
	Subcategory  string
}

// LCIFlow is a single elementary flow produced by a process instance.
type LCIFlow struct {
	FlowName    string
	Category    string // air, water, soil
	Compartment string
	Amount      float64 // mass in Unit
	Unit        string
}

// GHGBreakdown attributes a CO2-equivalent contribution to one gas.
type GHGBreakdown struct {
	Gas       string  `json:"gas"`
	MassKg    float64 `json:"mass_kg"`
	GWPFactor float64 `json:"gwp_factor"`
	CO2e      float64 `json:"co2e"`
}

// WaterFootprint splits water consumption between life-cycle stages.
// All values are litres.
type WaterFootprint struct {
	AgriculturalL float64 `json:"agricultural_l"`
	ProcessingL   float64 `json:"processing_l"`
	TotalL        float64 `json:"total_l"`
}

// WasteOutput estimates solid waste generated per material line.
// All values are kilograms.
type WasteOutput struct {
	TotalKg      float64 `json:"total_kg"`
	RecyclableKg float64 `json:"recyclable_kg"`
	HazardousKg  float64 `json:"hazardous_kg"`
}

// DataQuality identifies which estimation tier produced a result.
// Exposing the tier lets report consumers distinguish an
// ecoinvent-backed number from a category-default estimate.
type DataQuality string

const (
	// QualityISOCompliant marks results backed by a resolved ecoinvent
	// process and a full inventory run.
	QualityISOCompliant DataQuality = "iso_compliant"

	// QualityCategoryAverage marks results estimated from
	// category/subcategory average impact factors.
	QualityCategoryAverage DataQuality = "category_average"

	// QualityDefaultEstimate marks results produced by the global
	// default coefficients, the coarsest tier.
	QualityDefaultEstimate DataQuality = "default_estimate"
)

// Result is the aggregate environmental impact of one material line.
type Result struct {
	MaterialName string         `json:"material_name"`
	AmountKg     float64        `json:"amount_kg"`
	ProcessUUID  string         `json:"process_uuid,omitempty"`
	ProcessName  string         `json:"process_name,omitempty"`
	TotalCO2eKg  float64        `json:"total_co2e_kg"`
	GHGBreakdown []GHGBreakdown `json:"ghg_breakdown"`
	Water        WaterFootprint `json:"water_footprint"`
	Waste        WasteOutput    `json:"waste_output"`
	DataQuality  DataQuality    `json:"data_quality"`
}

// Line is one ingredient or packaging input of a product recipe.
type Line struct {
	Material string  `json:"material"        yaml:"material"`
	Amount   float64 `json:"amount"          yaml:"amount"`
	Unit     string  `json:"unit"            yaml:"unit"`
	Kind     string  `json:"kind,omitempty"  yaml:"kind,omitempty"` // "ingredient" or "packaging"
}

// ProductResult sums per-line results across a whole product recipe.
type ProductResult struct {
	ProductName string         `json:"product_name,omitempty"`
	Lines       []Result       `json:"lines"`
	TotalCO2eKg float64        `json:"total_co2e_kg"`
	Water       WaterFootprint `json:"water_footprint"`
	Waste       WasteOutput    `json:"waste_output"`

	// ISOCompliant is true only when every line resolved through the
	// ecoinvent-backed inventory path, with no fallback estimates.
	ISOCompliant bool `json:"iso_compliant"`
}

// ImpactFactor holds per-kilogram impact coefficients for the legacy
// footprint path and the category-average tables.
type ImpactFactor struct {
	CarbonKgPerKg float64
	WaterLPerKg   float64
	EnergyMJPerKg float64
	LandM2aPerKg  float64
}
