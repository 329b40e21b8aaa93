package lca

// CarbonFootprint estimates kg CO2e for an arbitrary material using the
// legacy cascading fallback:
//
//  1. exact process mapping with a matching ecoinvent factor entry
//  2. substring overrides for known high-impact materials
//  3. category/subcategory average impact factors
//  4. global default coefficients
//
// The cascade is deliberate: the system always returns a number rather
// than blocking report generation, at the cost of precision for
// unmapped materials. Never errors; the result is never negative.
func CarbonFootprint(material string, amount float64, unit string) float64 {
	kg, _ := EstimateFootprint(material, amount, unit)
	return kg
}

// EstimateFootprint is CarbonFootprint plus the data-quality tier that
// supplied the factors, for callers that surface provenance.
func EstimateFootprint(material string, amount float64, unit string) (float64, DataQuality) {
	amountKg := ToKilograms(amount, unit, material)
	if amountKg <= 0 {
		_, quality := resolveFootprintFactors(material)
		return 0, quality
	}

	factors, quality := resolveFootprintFactors(material)
	return factors.CarbonKgPerKg * amountKg, quality
}

// resolveFootprintFactors walks the fallback tiers for a material and
// reports which tier supplied the factors.
func resolveFootprintFactors(material string) (ImpactFactor, DataQuality) {
	// Tier 1: exact mapping with ecoinvent factors.
	if mapping, ok := GetProcessMapping(material); ok {
		if factors, ok := GetEcoinventFactor(mapping.ProcessUUID); ok {
			return factors, QualityISOCompliant
		}
		// Mapped but no factor entry: fall through to the mapping's own
		// category before guessing from the name.
		if factors, ok := GetCategoryFactor(mapping.Category, mapping.Subcategory); ok {
			return factors, QualityCategoryAverage
		}
	}

	// Pinned overrides outrank name classification: the keyword table
	// misclassifies these materials (e.g. "coconut" matches "nut").
	if factors, ok := GetSpecialOverride(material); ok {
		return factors, QualityCategoryAverage
	}

	// Category averages from name classification.
	if category, ok := ClassifyMaterial(material); ok {
		if factors, ok := GetCategoryFactor(category, ""); ok {
			return factors, QualityCategoryAverage
		}
	}

	// Tier 4: global defaults.
	return DefaultImpactFactor, QualityDefaultEstimate
}
