package lca

// processMappings maps exact material names to ecoinvent processes.
// Static reference data, populated once, read-only at runtime. Absence
// from this table is a normal outcome: the caller falls through to
// category-based defaults.
//
// Process names and units follow ecoinvent 3.x conventions.
var processMappings = map[string]ProcessMapping{
	"Molasses, from sugarcane": {
		MaterialName: "Molasses, from sugarcane",
		ProcessUUID:  "8a5bb5e6-5c5f-4a12-9f4e-3d2b1c0a9e01",
		ProcessName:  "molasses, from sugarcane production",
		Unit:         "kg",
		Category:     "Sweeteners",
		Subcategory:  "Sugarcane derivatives",
	},
	"Cane sugar": {
		MaterialName: "Cane sugar",
		ProcessUUID:  "f2c74d1b-03a8-4f5a-8b63-7e9d0c2b1a02",
		ProcessName:  "sugar production, from sugarcane",
		Unit:         "kg",
		Category:     "Sweeteners",
		Subcategory:  "Sugarcane derivatives",
	},
	"Beet sugar": {
		MaterialName: "Beet sugar",
		ProcessUUID:  "0d9e8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c03",
		ProcessName:  "sugar production, from sugar beet",
		Unit:         "kg",
		Category:     "Sweeteners",
		Subcategory:  "Sugar beet derivatives",
	},
	"Honey": {
		MaterialName: "Honey",
		ProcessUUID:  "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c04",
		ProcessName:  "honey production",
		Unit:         "kg",
		Category:     "Sweeteners",
		Subcategory:  "Apiculture",
	},
	"Apples": {
		MaterialName: "Apples",
		ProcessUUID:  "2b3c4d5e-6f7a-4b9c-0d1e-2f3a4b5c6d05",
		ProcessName:  "apple production",
		Unit:         "kg",
		Category:     "Fruits",
		Subcategory:  "Pome fruits",
	},
	"Grapes": {
		MaterialName: "Grapes",
		ProcessUUID:  "3c4d5e6f-7a8b-4c0d-1e2f-3a4b5c6d7e06",
		ProcessName:  "grape production",
		Unit:         "kg",
		Category:     "Fruits",
		Subcategory:  "Vine fruits",
	},
	"Juniper berries": {
		MaterialName: "Juniper berries",
		ProcessUUID:  "4d5e6f7a-8b9c-4d1e-2f3a-4b5c6d7e8f07",
		ProcessName:  "juniper berry production, wild harvest",
		Unit:         "kg",
		Category:     "Botanicals",
		Subcategory:  "Berries",
	},
	"Barley grain": {
		MaterialName: "Barley grain",
		ProcessUUID:  "5e6f7a8b-9c0d-4e2f-3a4b-5c6d7e8f9a08",
		ProcessName:  "barley grain production",
		Unit:         "kg",
		Category:     "Grains",
		Subcategory:  "Cereals",
	},
	"Malted barley": {
		MaterialName: "Malted barley",
		ProcessUUID:  "6f7a8b9c-0d1e-4f3a-4b5c-6d7e8f9a0b09",
		ProcessName:  "barley malt production",
		Unit:         "kg",
		Category:     "Grains",
		Subcategory:  "Malted grains",
	},
	"Wheat grain": {
		MaterialName: "Wheat grain",
		ProcessUUID:  "7a8b9c0d-1e2f-4a4b-5c6d-7e8f9a0b1c10",
		ProcessName:  "wheat grain production",
		Unit:         "kg",
		Category:     "Grains",
		Subcategory:  "Cereals",
	},
	"Ethanol, from fermentation": {
		MaterialName: "Ethanol, from fermentation",
		ProcessUUID:  "8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d11",
		ProcessName:  "ethanol production from fermentation of sugar crops",
		Unit:         "kg",
		Category:     "Alcohol base",
		Subcategory:  "Fermentation",
	},
	"Water, municipal": {
		MaterialName: "Water, municipal",
		ProcessUUID:  "9c0d1e2f-3a4b-4c6d-7e8f-9a0b1c2d3e12",
		ProcessName:  "tap water production, conventional treatment",
		Unit:         "kg",
		Category:     "Water",
		Subcategory:  "Municipal supply",
	},
	"Glass bottle": {
		MaterialName: "Glass bottle",
		ProcessUUID:  "0d1e2f3a-4b5c-4d7e-8f9a-0b1c2d3e4f13",
		ProcessName:  "packaging glass production, green",
		Unit:         "kg",
		Category:     "Glass packaging",
		Subcategory:  "Container glass",
	},
	"Aluminium can": {
		MaterialName: "Aluminium can",
		ProcessUUID:  "1e2f3a4b-5c6d-4e8f-9a0b-1c2d3e4f5a14",
		ProcessName:  "aluminium beverage can production",
		Unit:         "kg",
		Category:     "Aluminum packaging",
		Subcategory:  "Cans",
	},
	"PET bottle": {
		MaterialName: "PET bottle",
		ProcessUUID:  "2f3a4b5c-6d7e-4f9a-0b1c-2d3e4f5a6b15",
		ProcessName:  "polyethylene terephthalate production, bottle grade",
		Unit:         "kg",
		Category:     "PET packaging",
		Subcategory:  "Bottles",
	},
	"Paper label": {
		MaterialName: "Paper label",
		ProcessUUID:  "3a4b5c6d-7e8f-4a0b-1c2d-3e4f5a6b7c16",
		ProcessName:  "paper production, woodfree, coated",
		Unit:         "kg",
		Category:     "Paper packaging",
		Subcategory:  "Labels",
	},
	"Cork stopper": {
		MaterialName: "Cork stopper",
		ProcessUUID:  "4b5c6d7e-8f9a-4b1c-2d3e-4f5a6b7c8d17",
		ProcessName:  "cork stopper production, natural",
		Unit:         "kg",
		Category:     "Cork",
		Subcategory:  "Closures",
	},
}

// GetProcessMapping looks up the ecoinvent mapping for an exact
// material name. Not-found is an expected outcome, not an error.
func GetProcessMapping(material string) (ProcessMapping, bool) {
	m, ok := processMappings[material]
	return m, ok
}
