package lca

import "strings"

// GWPFactors maps gas formulas to IPCC AR5 100-year global-warming
// potentials, in kg CO2e per kg of gas.
//
// Source: IPCC Fifth Assessment Report (AR5), WG1 Table 8.A.1.
var GWPFactors = map[string]float64{
	"CO2":      1,
	"CH4":      28,
	"N2O":      265,
	"SF6":      23500,
	"NF3":      16100,
	"HFC-134a": 1300,
	"CF4":      6630,
}

// GetGWPFactor returns the AR5 100-year GWP for the given gas formula.
// Returns (0, false) for gases outside the recognized set; callers drop
// such flows from the CO2e total rather than zero-filling them.
func GetGWPFactor(gas string) (float64, bool) {
	factor, ok := GWPFactors[gas]
	return factor, ok
}

// gasMatcher resolves an elementary-flow name to a gas formula by
// substring matching.
type gasMatcher struct {
	substrings []string
	formula    string
}

// gasMatchers is evaluated in order and the first match wins. Order is
// load-bearing: a flow name containing several gas substrings resolves
// to the earliest entry, matching the established behavior of the
// reporting pipeline.
var gasMatchers = []gasMatcher{
	{[]string{"Carbon dioxide", "carbon dioxide", "CO2"}, "CO2"},
	{[]string{"Methane", "methane", "CH4"}, "CH4"},
	{[]string{"Dinitrogen monoxide", "Nitrous oxide", "nitrous oxide", "N2O"}, "N2O"},
	{[]string{"Sulfur hexafluoride", "Sulphur hexafluoride", "SF6"}, "SF6"},
	{[]string{"Nitrogen trifluoride", "NF3"}, "NF3"},
	{[]string{"1,1,1,2-Tetrafluoroethane", "HFC-134a"}, "HFC-134a"},
	{[]string{"Tetrafluoromethane", "CF4"}, "CF4"},
}

// GasFormulaForFlow resolves a flow name (e.g. "Carbon dioxide, fossil")
// to a recognized greenhouse-gas formula. Returns ("", false) when the
// name matches none of the recognized gases.
func GasFormulaForFlow(flowName string) (string, bool) {
	for _, m := range gasMatchers {
		for _, s := range m.substrings {
			if strings.Contains(flowName, s) {
				return m.formula, true
			}
		}
	}
	return "", false
}
