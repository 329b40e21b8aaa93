package lca

import (
	"context"

	"github.com/rs/zerolog"
)

// Aggregator computes environmental impact for product recipes from the
// static reference tables and an inventory provider. It holds no
// mutable state; concurrent calculations are safe.
type Aggregator struct {
	inventory InventoryProvider
	logger    zerolog.Logger
}

// NewAggregator creates an Aggregator. Pass NewSimulatedInventory()
// unless a real inventory backend is available.
func NewAggregator(provider InventoryProvider, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		inventory: provider,
		logger:    logger,
	}
}

// RunInventory resolves the process mapping for a material and runs the
// inventory provider for the normalized mass. An unmapped material
// yields an empty slice, which callers must treat as "no data
// available" rather than zero impact. Provider failures are logged and
// also yield an empty slice; the caller falls back to coarser estimate
// tiers within the same calculation.
func (a *Aggregator) RunInventory(ctx context.Context, material string, amount float64, unit string) []LCIFlow {
	mapping, ok := GetProcessMapping(material)
	if !ok {
		a.logger.Debug().
			Str("material", material).
			Msg("no process mapping, inventory unavailable")
		return nil
	}

	amountKg := ToKilograms(amount, unit, material)

	flows, err := a.inventory.Inventory(ctx, mapping, amountKg)
	if err != nil {
		a.logger.Error().
			Err(err).
			Str("material", material).
			Str("process_uuid", mapping.ProcessUUID).
			Msg("inventory lookup failed, falling back to default estimates")
		return nil
	}
	return flows
}

// CalculateImpact runs the full ISO-compliant pipeline for one material
// line: inventory, greenhouse-gas extraction, CO2e aggregation, and
// fixed-ratio water/waste estimates. Returns (nil, false) when the
// inventory produced no flows, i.e. the material is entirely unmapped.
func (a *Aggregator) CalculateImpact(ctx context.Context, material string, amount float64, unit string) (*Result, bool) {
	flows := a.RunInventory(ctx, material, amount, unit)
	if len(flows) == 0 {
		return nil, false
	}

	amountKg := ToKilograms(amount, unit, material)
	totalCO2e, breakdown := CalculateCO2e(ExtractGHGFlows(flows))

	result := &Result{
		MaterialName: material,
		AmountKg:     amountKg,
		TotalCO2eKg:  totalCO2e,
		GHGBreakdown: breakdown,
		Water:        waterFootprintForMass(amountKg),
		Waste:        wasteOutputForMass(amountKg),
		DataQuality:  QualityISOCompliant,
	}

	if mapping, ok := GetProcessMapping(material); ok {
		result.ProcessUUID = mapping.ProcessUUID
		result.ProcessName = mapping.ProcessName
	}

	a.logger.Debug().
		Str("material", material).
		Float64("amount_kg", amountKg).
		Float64("total_co2e_kg", totalCO2e).
		Int("ghg_flows", len(breakdown)).
		Msg("ISO-compliant impact calculated")

	return result, true
}

// CalculateProduct aggregates impact across all lines of a product
// recipe. Lines that resolve through the inventory path contribute
// ISO-compliant results; the rest degrade to the legacy footprint
// cascade so a product total is always produced.
func (a *Aggregator) CalculateProduct(ctx context.Context, productName string, lines []Line) *ProductResult {
	product := &ProductResult{
		ProductName:  productName,
		Lines:        make([]Result, 0, len(lines)),
		ISOCompliant: true,
	}

	for _, line := range lines {
		result, ok := a.CalculateImpact(ctx, line.Material, line.Amount, line.Unit)
		if !ok {
			result = a.fallbackResult(line)
			product.ISOCompliant = false
		}

		product.Lines = append(product.Lines, *result)
		product.TotalCO2eKg += result.TotalCO2eKg
		product.Water.AgriculturalL += result.Water.AgriculturalL
		product.Water.ProcessingL += result.Water.ProcessingL
		product.Water.TotalL += result.Water.TotalL
		product.Waste.TotalKg += result.Waste.TotalKg
		product.Waste.RecyclableKg += result.Waste.RecyclableKg
		product.Waste.HazardousKg += result.Waste.HazardousKg
	}

	a.logger.Info().
		Str("product", productName).
		Int("lines", len(lines)).
		Float64("total_co2e_kg", product.TotalCO2eKg).
		Bool("iso_compliant", product.ISOCompliant).
		Msg("product impact aggregated")

	return product
}

// fallbackResult builds a line result from the legacy footprint cascade
// when the inventory path produced no data.
func (a *Aggregator) fallbackResult(line Line) *Result {
	amountKg := ToKilograms(line.Amount, line.Unit, line.Material)
	if amountKg < 0 {
		amountKg = 0
	}

	factors, quality := resolveFootprintFactors(line.Material)

	a.logger.Debug().
		Str("material", line.Material).
		Str("data_quality", string(quality)).
		Msg("inventory unavailable, using footprint cascade")

	return &Result{
		MaterialName: line.Material,
		AmountKg:     amountKg,
		TotalCO2eKg:  factors.CarbonKgPerKg * amountKg,
		GHGBreakdown: nil,
		Water: WaterFootprint{
			AgriculturalL: factors.WaterLPerKg * amountKg,
			TotalL:        factors.WaterLPerKg * amountKg,
		},
		Waste:       wasteOutputForMass(amountKg),
		DataQuality: quality,
	}
}

// waterFootprintForMass applies the fixed 26 L/kg ratio split between
// agricultural and processing stages.
func waterFootprintForMass(amountKg float64) WaterFootprint {
	return WaterFootprint{
		AgriculturalL: WaterAgriculturalLPerKg * amountKg,
		ProcessingL:   WaterProcessingLPerKg * amountKg,
		TotalL:        (WaterAgriculturalLPerKg + WaterProcessingLPerKg) * amountKg,
	}
}

// wasteOutputForMass applies the fixed waste fractions of input mass.
func wasteOutputForMass(amountKg float64) WasteOutput {
	return WasteOutput{
		TotalKg:      WasteTotalFraction * amountKg,
		RecyclableKg: WasteRecyclableFraction * amountKg,
		HazardousKg:  WasteHazardousFraction * amountKg,
	}
}
