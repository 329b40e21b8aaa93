package lca

import "strings"

// ToKilograms normalizes an amount in the given unit to kilograms.
// Volume units are converted via the material density table.
//
// Supported units: kg, g, t/tonne, L/liter/litre, mL. Unrecognized
// units are passed through 1:1 with a warning; a hard failure here
// would block report generation for a single mislabelled line.
func ToKilograms(amount float64, unit, material string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg", "kilogram", "kilograms":
		return amount
	case "g", "gram", "grams":
		return amount / 1000.0
	case "t", "ton", "tonne", "tonnes", "metric ton":
		return amount * 1000.0
	case "l", "liter", "liters", "litre", "litres":
		return amount * DensityKgPerL(material)
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return amount * DensityKgPerL(material) / 1000.0
	default:
		l := pkgLogger()
		l.Warn().
			Str("unit", unit).
			Str("material", material).
			Msg("unrecognized unit, passing amount through unconverted")
		return amount
	}
}
