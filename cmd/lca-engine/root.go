// Command lca-engine runs the LCA impact-calculation engine: one-shot
// footprint estimates, full product calculations with PDF reports, and
// the job API service polled by the reporting UI.
package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AvallenSolutions/lca-engine/internal/config"
	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

// rootOptions carries state shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "lca-engine",
		Short:         "Product life cycle assessment engine",
		Long:          "Calculates product environmental impact (CO2e, water, waste) from ingredient and packaging inputs.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Logging.Level = opts.logLevel
			}

			opts.cfg = cfg
			opts.logger = config.NewLogger(cfg.Logging)
			lca.SetLogger(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (trace..error)")

	cmd.AddCommand(
		newCalculateCmd(opts),
		newProductCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

func (o *rootOptions) newAggregator() *lca.Aggregator {
	return lca.NewAggregator(lca.NewSimulatedInventory(), o.logger)
}
