package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

func newCalculateCmd(opts *rootOptions) *cobra.Command {
	var (
		material string
		amount   float64
		unit     string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "One-shot impact calculation for a single material",
		RunE: func(cmd *cobra.Command, _ []string) error {
			aggregator := opts.newAggregator()
			out := cmd.OutOrStdout()

			result, ok := aggregator.CalculateImpact(cmd.Context(), material, amount, unit)
			if !ok {
				// No inventory data: the legacy footprint cascade still
				// produces an answer, flagged as an estimate.
				kg, quality := lca.EstimateFootprint(material, amount, unit)
				estimate := struct {
					Material    string          `json:"material"`
					TotalCO2eKg float64         `json:"total_co2e_kg"`
					DataQuality lca.DataQuality `json:"data_quality"`
				}{
					Material:    material,
					TotalCO2eKg: kg,
					DataQuality: quality,
				}
				if asJSON {
					return writeJSON(out, estimate)
				}
				_, err := fmt.Fprintf(out, "%s: %.3f kg CO2e (estimate, no ecoinvent process data)\n",
					material, estimate.TotalCO2eKg)
				return err
			}

			if asJSON {
				return writeJSON(out, result)
			}
			_, err := fmt.Fprintf(out, "%s: %.3f kg CO2e, %.1f L water, %.3f kg waste (%s)\n",
				result.MaterialName, result.TotalCO2eKg, result.Water.TotalL,
				result.Waste.TotalKg, result.DataQuality)
			return err
		},
	}

	cmd.Flags().StringVar(&material, "material", "", "material name (e.g. \"Molasses, from sugarcane\")")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in the given unit")
	cmd.Flags().StringVar(&unit, "unit", "kg", "unit: kg, g, t, L, mL")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a summary line")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
