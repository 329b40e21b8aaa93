package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AvallenSolutions/lca-engine/internal/jobs"
	"github.com/AvallenSolutions/lca-engine/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calculation job API and worker pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := jobs.NewStore(opts.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			pool := jobs.NewPool(store, opts.newAggregator(), opts.logger, opts.cfg.Worker.Count)
			api := server.New(opts.cfg.Server.Addr, store, opts.logger)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return pool.Run(ctx)
			})

			g.Go(func() error {
				return api.ListenAndServe()
			})

			g.Go(func() error {
				<-ctx.Done()
				opts.logger.Info().Msg("shutting down")

				shutdownCtx, cancel := context.WithTimeout(
					context.Background(), opts.cfg.Server.ShutdownTimeout.Std())
				defer cancel()
				return api.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}
