package lca

// ecoinventFactors maps a process UUID to per-kilogram impact factors.
// This is the tier-1 lookup of the legacy footprint path: an exact
// process mapping whose UUID appears here yields the most precise
// estimate available without a full inventory run.
//
// Coefficients are cradle-to-gate literature values (ecoinvent 3.x,
// Poore & Nemecek 2018 supplementary data).
var ecoinventFactors = map[string]ImpactFactor{
	"8a5bb5e6-5c5f-4a12-9f4e-3d2b1c0a9e01": {CarbonKgPerKg: 0.61, WaterLPerKg: 155, EnergyMJPerKg: 3.1, LandM2aPerKg: 0.9},  // molasses
	"f2c74d1b-03a8-4f5a-8b63-7e9d0c2b1a02": {CarbonKgPerKg: 0.72, WaterLPerKg: 210, EnergyMJPerKg: 4.6, LandM2aPerKg: 1.2},  // cane sugar
	"0d9e8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c03": {CarbonKgPerKg: 0.54, WaterLPerKg: 130, EnergyMJPerKg: 5.0, LandM2aPerKg: 1.1},  // beet sugar
	"1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c04": {CarbonKgPerKg: 0.92, WaterLPerKg: 28, EnergyMJPerKg: 2.2, LandM2aPerKg: 0.3},   // honey
	"2b3c4d5e-6f7a-4b9c-0d1e-2f3a4b5c6d05": {CarbonKgPerKg: 0.43, WaterLPerKg: 180, EnergyMJPerKg: 1.9, LandM2aPerKg: 0.6},  // apples
	"3c4d5e6f-7a8b-4c0d-1e2f-3a4b5c6d7e06": {CarbonKgPerKg: 0.58, WaterLPerKg: 610, EnergyMJPerKg: 2.4, LandM2aPerKg: 1.5},  // grapes
	"4d5e6f7a-8b9c-4d1e-2f3a-4b5c6d7e8f07": {CarbonKgPerKg: 0.35, WaterLPerKg: 90, EnergyMJPerKg: 1.1, LandM2aPerKg: 2.0},   // juniper berries
	"5e6f7a8b-9c0d-4e2f-3a4b-5c6d7e8f9a08": {CarbonKgPerKg: 0.52, WaterLPerKg: 1300, EnergyMJPerKg: 3.3, LandM2aPerKg: 1.8}, // barley grain
	"6f7a8b9c-0d1e-4f3a-4b5c-6d7e8f9a0b09": {CarbonKgPerKg: 0.78, WaterLPerKg: 1420, EnergyMJPerKg: 5.8, LandM2aPerKg: 1.9}, // malted barley
	"7a8b9c0d-1e2f-4a4b-5c6d-7e8f9a0b1c10": {CarbonKgPerKg: 0.57, WaterLPerKg: 1830, EnergyMJPerKg: 3.9, LandM2aPerKg: 2.1}, // wheat grain
	"8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d11": {CarbonKgPerKg: 1.65, WaterLPerKg: 2860, EnergyMJPerKg: 19.8, LandM2aPerKg: 2.4}, // ethanol
	"9c0d1e2f-3a4b-4c6d-7e8f-9a0b1c2d3e12": {CarbonKgPerKg: 0.0003, WaterLPerKg: 1.0, EnergyMJPerKg: 0.005, LandM2aPerKg: 0}, // municipal water
	"0d1e2f3a-4b5c-4d7e-8f9a-0b1c2d3e4f13": {CarbonKgPerKg: 0.85, WaterLPerKg: 2.5, EnergyMJPerKg: 12.0, LandM2aPerKg: 0.01}, // glass bottle
	"1e2f3a4b-5c6d-4e8f-9a0b-1c2d3e4f5a14": {CarbonKgPerKg: 8.50, WaterLPerKg: 28.0, EnergyMJPerKg: 155.0, LandM2aPerKg: 0.02}, // aluminium can
	"2f3a4b5c-6d7e-4f9a-0b1c-2d3e4f5a6b15": {CarbonKgPerKg: 2.73, WaterLPerKg: 17.5, EnergyMJPerKg: 69.0, LandM2aPerKg: 0.01}, // PET bottle
	"3a4b5c6d-7e8f-4a0b-1c2d-3e4f5a6b7c16": {CarbonKgPerKg: 1.10, WaterLPerKg: 35.0, EnergyMJPerKg: 26.5, LandM2aPerKg: 0.9},  // paper label
	"4b5c6d7e-8f9a-4b1c-2d3e-4f5a6b7c8d17": {CarbonKgPerKg: 0.19, WaterLPerKg: 6.0, EnergyMJPerKg: 4.8, LandM2aPerKg: 3.5},    // cork stopper
}

// GetEcoinventFactor returns per-kg impact factors for a process UUID.
func GetEcoinventFactor(processUUID string) (ImpactFactor, bool) {
	f, ok := ecoinventFactors[processUUID]
	return f, ok
}
