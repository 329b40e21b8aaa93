package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
	"github.com/AvallenSolutions/lca-engine/internal/report"
)

// productInput is the YAML recipe accepted by the product command.
type productInput struct {
	ProductName string     `yaml:"productName"`
	Lines       []lca.Line `yaml:"lines"`
}

func newProductCmd(opts *rootOptions) *cobra.Command {
	var (
		inputPath string
		pdfPath   string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "product",
		Short: "Calculate the full impact of a product recipe",
		Long: "Reads a YAML recipe (productName plus ingredient/packaging lines) and " +
			"aggregates impact across all lines, optionally writing a PDF report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read recipe: %w", err)
			}

			var input productInput
			if err := yaml.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("parse recipe: %w", err)
			}
			if len(input.Lines) == 0 {
				return fmt.Errorf("recipe %s has no lines", inputPath)
			}

			aggregator := opts.newAggregator()
			result := aggregator.CalculateProduct(cmd.Context(), input.ProductName, input.Lines)

			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return fmt.Errorf("create report file: %w", err)
				}
				defer f.Close()

				if err := report.RenderPDF(report.Build(*result), f); err != nil {
					return fmt.Errorf("render report: %w", err)
				}
				opts.logger.Info().Str("path", pdfPath).Msg("PDF report written")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}

			_, err = fmt.Fprintf(out, "%s: %.3f kg CO2e across %d lines (ISO compliant: %t)\n",
				result.ProductName, result.TotalCO2eKg, len(result.Lines), result.ISOCompliant)
			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to YAML recipe file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF report to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
