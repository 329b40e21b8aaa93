package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

func sampleProduct(t *testing.T) lca.ProductResult {
	t.Helper()
	aggregator := lca.NewAggregator(lca.NewSimulatedInventory(), zerolog.Nop())
	product := aggregator.CalculateProduct(context.Background(), "Craft Gin 700ml", []lca.Line{
		{Material: "Ethanol, from fermentation", Amount: 0.3, Unit: "kg", Kind: "ingredient"},
		{Material: "Juniper berries", Amount: 0.02, Unit: "kg", Kind: "ingredient"},
		{Material: "Mystery compound 42", Amount: 0.01, Unit: "kg", Kind: "ingredient"},
		{Material: "Glass bottle", Amount: 0.5, Unit: "kg", Kind: "packaging"},
	})
	return *product
}

func TestBuild(t *testing.T) {
	doc := Build(sampleProduct(t))

	assert.Equal(t, "Product Impact Report - Craft Gin 700ml", doc.Title)
	assert.False(t, doc.GeneratedAt.IsZero())
	assert.NotEmpty(t, doc.Methodology)
	assert.Contains(t, doc.DataNotice, "1 of 4 lines")
}

func TestBuild_ISOCompliantNotice(t *testing.T) {
	product := lca.ProductResult{
		ProductName:  "cider",
		ISOCompliant: true,
		Lines: []lca.Result{
			{MaterialName: "Apples", DataQuality: lca.QualityISOCompliant},
		},
	}

	doc := Build(product)
	assert.Equal(t, "All lines resolved against ecoinvent process data.", doc.DataNotice)
}

func TestBuild_UntitledProduct(t *testing.T) {
	doc := Build(lca.ProductResult{})
	assert.Equal(t, "Product Impact Report", doc.Title)
}

func TestRenderPDF(t *testing.T) {
	doc := Build(sampleProduct(t))

	var buf bytes.Buffer
	require.NoError(t, RenderPDF(doc, &buf))

	assert.Greater(t, buf.Len(), 1000, "rendered PDF should not be trivially small")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF stream")
}

func TestQualityLabel(t *testing.T) {
	assert.Equal(t, "ecoinvent", qualityLabel(lca.QualityISOCompliant))
	assert.Equal(t, "category avg", qualityLabel(lca.QualityCategoryAverage))
	assert.Equal(t, "default", qualityLabel(lca.QualityDefaultEstimate))
	assert.Equal(t, "other", qualityLabel(lca.DataQuality("other")))
}
