package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

const defaultPollInterval = 500 * time.Millisecond

// Pool drains pending jobs with a fixed number of workers. Each worker
// claims a job, runs the aggregator, and stores the outcome. Workers
// stop when the context is cancelled.
type Pool struct {
	store      *Store
	aggregator *lca.Aggregator
	logger     zerolog.Logger
	workers    int
	interval   time.Duration
}

// NewPool creates a worker pool. workers < 1 is clamped to 1.
func NewPool(store *Store, aggregator *lca.Aggregator, logger zerolog.Logger, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		store:      store,
		aggregator: aggregator,
		logger:     logger,
		workers:    workers,
		interval:   defaultPollInterval,
	}
}

// Run blocks until ctx is cancelled, processing pending jobs. Always
// returns nil after a clean shutdown; store errors are logged and the
// worker keeps polling.
func (p *Pool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < p.workers; i++ {
		worker := i
		g.Go(func() error {
			p.runWorker(ctx, worker)
			return nil
		})
	}

	return g.Wait()
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	log := p.logger.With().Int("worker", id).Logger()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if !p.processOne(ctx, log) {
			select {
			case <-ctx.Done():
				log.Debug().Msg("worker stopping")
				return
			case <-ticker.C:
			}
		}

		select {
		case <-ctx.Done():
			log.Debug().Msg("worker stopping")
			return
		default:
		}
	}
}

// processOne claims and runs a single job. Returns false when the queue
// was empty or the claim failed, signalling the caller to back off.
func (p *Pool) processOne(ctx context.Context, log zerolog.Logger) bool {
	job, ok, err := p.store.ClaimNext(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("claim failed")
		}
		return false
	}
	if !ok {
		return false
	}

	start := time.Now()
	result := p.aggregator.CalculateProduct(ctx, job.ProductName, job.Lines)

	if err := p.store.Complete(ctx, job.ID, result); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("storing result failed")
		if failErr := p.store.Fail(context.WithoutCancel(ctx), job.ID, err.Error()); failErr != nil {
			log.Error().Err(failErr).Str("job_id", job.ID).Msg("marking job failed also failed")
		}
		return true
	}

	log.Info().
		Str("job_id", job.ID).
		Str("product", job.ProductName).
		Float64("total_co2e_kg", result.TotalCO2eKg).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("job completed")
	return true
}
