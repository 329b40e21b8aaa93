package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMarginMM   = 15.0
	lineHeightMM   = 6.0
	headerSizePt   = 16.0
	sectionSizePt  = 12.0
	bodySizePt     = 9.5
	tableLabelWMM  = 70.0
	tableNumberWMM = 27.0
)

// RenderPDF writes the document as an A4 PDF to w.
func RenderPDF(doc Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", headerSizePt)
	pdf.MultiCell(0, 8, doc.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", bodySizePt)
	pdf.CellFormat(0, lineHeightMM,
		fmt.Sprintf("Generated %s", doc.GeneratedAt.Format("2006-01-02 15:04 UTC")),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeSummary(pdf, doc)
	writeLines(pdf, doc)
	writeGHGBreakdown(pdf, doc)
	writeFootnotes(pdf, doc)

	return pdf.Output(w)
}

func writeSummary(pdf *gofpdf.Fpdf, doc Document) {
	sectionHeader(pdf, "Summary")

	p := doc.Product
	rows := []struct {
		label string
		value string
	}{
		{"Total carbon footprint", fmt.Sprintf("%.3f kg CO2e", p.TotalCO2eKg)},
		{"Water footprint", fmt.Sprintf("%.1f L (agricultural %.1f, processing %.1f)",
			p.Water.TotalL, p.Water.AgriculturalL, p.Water.ProcessingL)},
		{"Waste output", fmt.Sprintf("%.3f kg (recyclable %.3f, hazardous %.3f)",
			p.Waste.TotalKg, p.Waste.RecyclableKg, p.Waste.HazardousKg)},
		{"ISO 14044 compliant", fmt.Sprintf("%t", p.ISOCompliant)},
	}

	pdf.SetFont("Helvetica", "", bodySizePt)
	for _, r := range rows {
		pdf.CellFormat(tableLabelWMM, lineHeightMM, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeightMM, r.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeLines(pdf *gofpdf.Fpdf, doc Document) {
	sectionHeader(pdf, "Material Lines")

	pdf.SetFont("Helvetica", "B", bodySizePt)
	pdf.CellFormat(tableLabelWMM, lineHeightMM, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(tableNumberWMM, lineHeightMM, "Mass (kg)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(tableNumberWMM, lineHeightMM, "kg CO2e", "B", 0, "R", false, 0, "")
	pdf.CellFormat(tableNumberWMM, lineHeightMM, "Water (L)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, lineHeightMM, "Data quality", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", bodySizePt)
	for _, line := range doc.Product.Lines {
		pdf.CellFormat(tableLabelWMM, lineHeightMM, line.MaterialName, "", 0, "L", false, 0, "")
		pdf.CellFormat(tableNumberWMM, lineHeightMM, fmt.Sprintf("%.3f", line.AmountKg), "", 0, "R", false, 0, "")
		pdf.CellFormat(tableNumberWMM, lineHeightMM, fmt.Sprintf("%.3f", line.TotalCO2eKg), "", 0, "R", false, 0, "")
		pdf.CellFormat(tableNumberWMM, lineHeightMM, fmt.Sprintf("%.1f", line.Water.TotalL), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, lineHeightMM, qualityLabel(line.DataQuality), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeGHGBreakdown(pdf *gofpdf.Fpdf, doc Document) {
	sectionHeader(pdf, "Greenhouse Gas Breakdown")

	pdf.SetFont("Helvetica", "B", bodySizePt)
	pdf.CellFormat(tableLabelWMM, lineHeightMM, "Material / Gas", "B", 0, "L", false, 0, "")
	pdf.CellFormat(tableNumberWMM, lineHeightMM, "Mass (kg)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(tableNumberWMM, lineHeightMM, "GWP (AR5)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, lineHeightMM, "kg CO2e", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", bodySizePt)
	for _, line := range doc.Product.Lines {
		if len(line.GHGBreakdown) == 0 {
			continue
		}
		pdf.CellFormat(0, lineHeightMM, line.MaterialName, "", 1, "L", false, 0, "")
		for _, b := range line.GHGBreakdown {
			pdf.CellFormat(tableLabelWMM, lineHeightMM, "    "+b.Gas, "", 0, "L", false, 0, "")
			pdf.CellFormat(tableNumberWMM, lineHeightMM, fmt.Sprintf("%.6g", b.MassKg), "", 0, "R", false, 0, "")
			pdf.CellFormat(tableNumberWMM, lineHeightMM, fmt.Sprintf("%.0f", b.GWPFactor), "", 0, "R", false, 0, "")
			pdf.CellFormat(0, lineHeightMM, fmt.Sprintf("%.6g", b.CO2e), "", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(3)
}

func writeFootnotes(pdf *gofpdf.Fpdf, doc Document) {
	sectionHeader(pdf, "Methodology")
	pdf.SetFont("Helvetica", "", bodySizePt)
	pdf.MultiCell(0, 5, doc.Methodology, "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", bodySizePt)
	pdf.MultiCell(0, 5, doc.DataNotice, "", "L", false)
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", sectionSizePt)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}
