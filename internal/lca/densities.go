package lca

import "strings"

// materialDensity maps a material-name substring to a density in kg/L.
type materialDensity struct {
	substring string
	kgPerL    float64
}

// materialDensities is checked in order against the lower-cased material
// name; the first match wins. Treating every liquid as water-equivalent
// would materially distort results for dense ingredients like molasses
// or light ones like ethanol, so common beverage inputs get explicit
// densities.
//
// Sources: FAO/INFOODS density database; supplier technical sheets.
var materialDensities = []materialDensity{
	{"molasses", 1.40},
	{"honey", 1.45},
	{"glycerin", 1.26},
	{"glycerol", 1.26},
	{"syrup", 1.33},
	{"concentrate", 1.30},
	{"cream", 1.02},
	{"juice", 1.05},
	{"ethanol", 0.79},
	{"spirit", 0.79},
	{"alcohol", 0.79},
	{"oil", 0.90},
	{"vinegar", 1.01},
	{"wine", 0.99},
	{"beer", 1.01},
	{"milk", 1.03},
}

// DensityKgPerL returns the density used to convert liquid volumes of
// the given material to mass. Unrecognized materials get
// DefaultDensityKgPerL (water-equivalent).
func DensityKgPerL(material string) float64 {
	name := strings.ToLower(material)
	for _, d := range materialDensities {
		if strings.Contains(name, d.substring) {
			return d.kgPerL
		}
	}
	return DefaultDensityKgPerL
}
