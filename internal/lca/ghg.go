package lca

// ExtractGHGFlows keeps only flows emitted to air whose name resolves
// to a recognized greenhouse gas. Input order is preserved.
func ExtractGHGFlows(flows []LCIFlow) []LCIFlow {
	ghg := make([]LCIFlow, 0, len(flows))
	for _, f := range flows {
		if f.Category != "air" {
			continue
		}
		if _, ok := GasFormulaForFlow(f.FlowName); !ok {
			continue
		}
		ghg = append(ghg, f)
	}
	return ghg
}

// CalculateCO2e aggregates greenhouse-gas flows into a CO2-equivalent
// total using AR5 GWP factors. Flows whose name resolves to no
// recognized gas, or whose gas has no GWP factor, are dropped from both
// the breakdown and the total (logged, never zero-filled). The returned
// total always equals the sum of the breakdown entries' MassKg × GWPFactor.
func CalculateCO2e(ghgFlows []LCIFlow) (float64, []GHGBreakdown) {
	var total float64
	breakdown := make([]GHGBreakdown, 0, len(ghgFlows))

	for _, f := range ghgFlows {
		gas, ok := GasFormulaForFlow(f.FlowName)
		if !ok {
			l := pkgLogger()
			l.Debug().
				Str("flow", f.FlowName).
				Msg("flow matches no recognized gas formula, dropping from CO2e total")
			continue
		}

		gwp, ok := GetGWPFactor(gas)
		if !ok {
			l := pkgLogger()
			l.Warn().
				Str("flow", f.FlowName).
				Str("gas", gas).
				Msg("no GWP factor for gas, dropping flow from CO2e total")
			continue
		}

		co2e := f.Amount * gwp
		breakdown = append(breakdown, GHGBreakdown{
			Gas:       gas,
			MassKg:    f.Amount,
			GWPFactor: gwp,
			CO2e:      co2e,
		})
		total += co2e
	}

	return total, breakdown
}
