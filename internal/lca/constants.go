package lca

const (
	// WaterAgriculturalLPerKg is the agricultural-stage water footprint
	// per kilogram of input, in litres. Together with the processing
	// share this gives the 26 L/kg total used by the ISO path.
	WaterAgriculturalLPerKg = 24.0

	// WaterProcessingLPerKg is the processing-stage water footprint per
	// kilogram of input, in litres.
	WaterProcessingLPerKg = 2.0

	// WasteTotalFraction is the total solid waste generated as a
	// fraction of input mass.
	WasteTotalFraction = 0.05

	// WasteRecyclableFraction is the recyclable share of input mass.
	WasteRecyclableFraction = 0.03

	// WasteHazardousFraction is the hazardous share of input mass.
	WasteHazardousFraction = 0.002

	// DefaultCarbonKgPerKg is the global default carbon coefficient,
	// applied when no mapping, category, or override matches. The
	// pipeline always returns a number rather than blocking report
	// generation, at the cost of precision for unmapped materials.
	DefaultCarbonKgPerKg = 0.8

	// DefaultWaterLPerKg is the global default water coefficient.
	DefaultWaterLPerKg = 15.0

	// DefaultEnergyMJPerKg is the global default energy coefficient.
	DefaultEnergyMJPerKg = 5.0

	// DefaultLandM2aPerKg is the global default land-use coefficient.
	DefaultLandM2aPerKg = 0.5

	// DefaultDensityKgPerL is assumed for liquids with no entry in the
	// density table (water-equivalent).
	DefaultDensityKgPerL = 1.0
)

// DefaultImpactFactor is the coarsest estimation tier, used when every
// other lookup fails.
var DefaultImpactFactor = ImpactFactor{
	CarbonKgPerKg: DefaultCarbonKgPerKg,
	WaterLPerKg:   DefaultWaterLPerKg,
	EnergyMJPerKg: DefaultEnergyMJPerKg,
	LandM2aPerKg:  DefaultLandM2aPerKg,
}
