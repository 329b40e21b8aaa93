// Package report turns aggregated impact results into the structured
// audit-trail documents shipped to producers: a PDF narrative and a
// JSON export. Purely presentational; all numbers arrive precomputed.
package report

import (
	"fmt"
	"time"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

// Document is the structured audit-trail report for one product
// calculation, ready for rendering.
type Document struct {
	Title       string            `json:"title"`
	GeneratedAt time.Time         `json:"generated_at"`
	Product     lca.ProductResult `json:"product"`
	Methodology string            `json:"methodology"`
	DataNotice  string            `json:"data_notice"`
}

const methodologyText = "Greenhouse-gas flows are aggregated into CO2-equivalents " +
	"using IPCC AR5 100-year global-warming potentials, following the " +
	"ISO 14040/14044 life cycle assessment framework. Mass is normalized " +
	"to kilograms with material-specific densities for volume units."

// Build assembles the report document for a product result.
func Build(product lca.ProductResult) Document {
	title := "Product Impact Report"
	if product.ProductName != "" {
		title = fmt.Sprintf("Product Impact Report - %s", product.ProductName)
	}

	return Document{
		Title:       title,
		GeneratedAt: time.Now().UTC(),
		Product:     product,
		Methodology: methodologyText,
		DataNotice:  dataNotice(product),
	}
}

// dataNotice states how much of the result is ecoinvent-backed versus
// estimated, so readers can judge confidence per line.
func dataNotice(product lca.ProductResult) string {
	if product.ISOCompliant {
		return "All lines resolved against ecoinvent process data."
	}

	estimated := 0
	for _, line := range product.Lines {
		if line.DataQuality != lca.QualityISOCompliant {
			estimated++
		}
	}
	return fmt.Sprintf(
		"%d of %d lines use category-average or default estimates; treat line-level figures as indicative.",
		estimated, len(product.Lines))
}

// qualityLabel renders a DataQuality tier for display.
func qualityLabel(q lca.DataQuality) string {
	switch q {
	case lca.QualityISOCompliant:
		return "ecoinvent"
	case lca.QualityCategoryAverage:
		return "category avg"
	case lca.QualityDefaultEstimate:
		return "default"
	default:
		return string(q)
	}
}
