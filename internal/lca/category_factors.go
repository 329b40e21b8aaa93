package lca

import "strings"

// categoryFactors holds average per-kilogram impact factors per material
// category. These are the tier-2 fallback of the legacy footprint path,
// applied when a material has no exact process mapping. Represented as
// data rather than branching code so the aggregation logic stays
// testable independent of the reference values.
//
// Coefficients derived from literature averages (Poore & Nemecek 2018;
// ecoinvent 3.x category means).
var categoryFactors = map[string]ImpactFactor{
	"Fruits":             {CarbonKgPerKg: 0.42, WaterLPerKg: 350, EnergyMJPerKg: 2.0, LandM2aPerKg: 0.7},
	"Citrus fruits":      {CarbonKgPerKg: 0.36, WaterLPerKg: 420, EnergyMJPerKg: 1.8, LandM2aPerKg: 0.8},
	"Berries":            {CarbonKgPerKg: 1.10, WaterLPerKg: 410, EnergyMJPerKg: 4.1, LandM2aPerKg: 0.5},
	"Vegetables":         {CarbonKgPerKg: 0.37, WaterLPerKg: 240, EnergyMJPerKg: 1.6, LandM2aPerKg: 0.4},
	"Grains":             {CarbonKgPerKg: 0.60, WaterLPerKg: 1500, EnergyMJPerKg: 3.6, LandM2aPerKg: 1.9},
	"Malted grains":      {CarbonKgPerKg: 0.80, WaterLPerKg: 1450, EnergyMJPerKg: 5.9, LandM2aPerKg: 1.9},
	"Sugar crops":        {CarbonKgPerKg: 0.45, WaterLPerKg: 175, EnergyMJPerKg: 2.8, LandM2aPerKg: 1.0},
	"Sweeteners":         {CarbonKgPerKg: 0.70, WaterLPerKg: 190, EnergyMJPerKg: 4.0, LandM2aPerKg: 1.1},
	"Dairy":              {CarbonKgPerKg: 2.80, WaterLPerKg: 1020, EnergyMJPerKg: 7.5, LandM2aPerKg: 8.9},
	"Nuts":               {CarbonKgPerKg: 0.43, WaterLPerKg: 4130, EnergyMJPerKg: 3.2, LandM2aPerKg: 7.9},
	"Oils":               {CarbonKgPerKg: 3.10, WaterLPerKg: 2360, EnergyMJPerKg: 11.2, LandM2aPerKg: 10.3},
	"Botanicals":         {CarbonKgPerKg: 0.55, WaterLPerKg: 310, EnergyMJPerKg: 2.3, LandM2aPerKg: 1.6},
	"Spices":             {CarbonKgPerKg: 1.60, WaterLPerKg: 7000, EnergyMJPerKg: 6.8, LandM2aPerKg: 3.1},
	"Beverages":          {CarbonKgPerKg: 0.95, WaterLPerKg: 620, EnergyMJPerKg: 4.4, LandM2aPerKg: 1.3},
	"Alcohol base":       {CarbonKgPerKg: 1.70, WaterLPerKg: 2700, EnergyMJPerKg: 18.5, LandM2aPerKg: 2.3},
	"Water":              {CarbonKgPerKg: 0.001, WaterLPerKg: 1.0, EnergyMJPerKg: 0.01, LandM2aPerKg: 0},
	"Glass packaging":    {CarbonKgPerKg: 0.90, WaterLPerKg: 3.0, EnergyMJPerKg: 13.0, LandM2aPerKg: 0.01},
	"PET packaging":      {CarbonKgPerKg: 2.90, WaterLPerKg: 18.0, EnergyMJPerKg: 72.0, LandM2aPerKg: 0.01},
	"Aluminum packaging": {CarbonKgPerKg: 9.10, WaterLPerKg: 30.0, EnergyMJPerKg: 160.0, LandM2aPerKg: 0.02},
	"Steel packaging":    {CarbonKgPerKg: 2.30, WaterLPerKg: 24.0, EnergyMJPerKg: 25.0, LandM2aPerKg: 0.02},
	"Paper packaging":    {CarbonKgPerKg: 1.05, WaterLPerKg: 38.0, EnergyMJPerKg: 25.5, LandM2aPerKg: 1.0},
	"Cork":               {CarbonKgPerKg: 0.20, WaterLPerKg: 6.5, EnergyMJPerKg: 5.0, LandM2aPerKg: 3.4},
	"Plastic closures":   {CarbonKgPerKg: 2.50, WaterLPerKg: 16.0, EnergyMJPerKg: 62.0, LandM2aPerKg: 0.01},
	"Labels":             {CarbonKgPerKg: 1.20, WaterLPerKg: 36.0, EnergyMJPerKg: 27.0, LandM2aPerKg: 0.9},
}

// subcategoryFactors refines a category average where finer data
// exists. Checked before the category table.
var subcategoryFactors = map[string]ImpactFactor{
	"Sugarcane derivatives": {CarbonKgPerKg: 0.65, WaterLPerKg: 180, EnergyMJPerKg: 3.8, LandM2aPerKg: 1.0},
	"Malted grains":         {CarbonKgPerKg: 0.80, WaterLPerKg: 1450, EnergyMJPerKg: 5.9, LandM2aPerKg: 1.9},
	"Container glass":       {CarbonKgPerKg: 0.85, WaterLPerKg: 2.5, EnergyMJPerKg: 12.0, LandM2aPerKg: 0.01},
}

// GetCategoryFactor returns the average impact factors for a category,
// preferring the subcategory refinement when one exists.
func GetCategoryFactor(category, subcategory string) (ImpactFactor, bool) {
	if subcategory != "" {
		if f, ok := subcategoryFactors[subcategory]; ok {
			return f, true
		}
	}
	f, ok := categoryFactors[category]
	return f, ok
}

// categoryKeyword classifies a material name into a category by
// substring. Checked in order against the lower-cased name; first
// match wins.
type categoryKeyword struct {
	substring string
	category  string
}

var categoryKeywords = []categoryKeyword{
	{"malt", "Malted grains"},
	{"barley", "Grains"},
	{"wheat", "Grains"},
	{"rye", "Grains"},
	{"oat", "Grains"},
	{"corn", "Grains"},
	{"maize", "Grains"},
	{"rice", "Grains"},
	{"lemon", "Citrus fruits"},
	{"lime", "Citrus fruits"},
	{"orange", "Citrus fruits"},
	{"grapefruit", "Citrus fruits"},
	{"berry", "Berries"},
	{"berries", "Berries"},
	{"currant", "Berries"},
	{"apple", "Fruits"},
	{"pear", "Fruits"},
	{"grape", "Fruits"},
	{"cherry", "Fruits"},
	{"peach", "Fruits"},
	{"fruit", "Fruits"},
	{"sugarcane", "Sugar crops"},
	{"sugar beet", "Sugar crops"},
	{"sugar", "Sweeteners"},
	{"honey", "Sweeteners"},
	{"agave", "Sweeteners"},
	{"milk", "Dairy"},
	{"cream", "Dairy"},
	{"whey", "Dairy"},
	{"almond", "Nuts"},
	{"hazelnut", "Nuts"},
	{"walnut", "Nuts"},
	{"nut", "Nuts"},
	{"oil", "Oils"},
	{"juniper", "Botanicals"},
	{"coriander", "Botanicals"},
	{"angelica", "Botanicals"},
	{"elderflower", "Botanicals"},
	{"hop", "Botanicals"},
	{"herb", "Botanicals"},
	{"botanical", "Botanicals"},
	{"pepper", "Spices"},
	{"cinnamon", "Spices"},
	{"ginger", "Spices"},
	{"vanilla", "Spices"},
	{"clove", "Spices"},
	{"spice", "Spices"},
	{"carrot", "Vegetables"},
	{"beet", "Vegetables"},
	{"potato", "Vegetables"},
	{"vegetable", "Vegetables"},
	{"ethanol", "Alcohol base"},
	{"spirit", "Alcohol base"},
	{"wine", "Beverages"},
	{"beer", "Beverages"},
	{"juice", "Beverages"},
	{"water", "Water"},
	{"glass", "Glass packaging"},
	{"pet", "PET packaging"},
	{"aluminium", "Aluminum packaging"},
	{"aluminum", "Aluminum packaging"},
	{"steel", "Steel packaging"},
	{"tinplate", "Steel packaging"},
	{"cardboard", "Paper packaging"},
	{"carton", "Paper packaging"},
	{"paper", "Paper packaging"},
	{"cork", "Cork"},
	{"cap", "Plastic closures"},
	{"closure", "Plastic closures"},
	{"label", "Labels"},
}

// ClassifyMaterial guesses the category of a material with no process
// mapping. Returns ("", false) when nothing matches.
func ClassifyMaterial(material string) (string, bool) {
	name := strings.ToLower(material)
	for _, kw := range categoryKeywords {
		if strings.Contains(name, kw.substring) {
			return kw.category, true
		}
	}
	return "", false
}

// specialOverride pins impact factors for specific high-impact
// materials that category averages misrepresent.
type specialOverride struct {
	substring string
	factors   ImpactFactor
}

// specialOverrides is the tier-3 fallback, checked by substring against
// the lower-cased material name after the category tier has failed.
var specialOverrides = []specialOverride{
	{"coconut", ImpactFactor{CarbonKgPerKg: 2.30, WaterLPerKg: 2690, EnergyMJPerKg: 8.4, LandM2aPerKg: 2.6}},
	{"molasses", ImpactFactor{CarbonKgPerKg: 0.61, WaterLPerKg: 155, EnergyMJPerKg: 3.1, LandM2aPerKg: 0.9}},
}

// GetSpecialOverride returns pinned impact factors for known
// high-impact materials.
func GetSpecialOverride(material string) (ImpactFactor, bool) {
	name := strings.ToLower(material)
	for _, o := range specialOverrides {
		if strings.Contains(name, o.substring) {
			return o.factors, true
		}
	}
	return ImpactFactor{}, false
}
