package simulator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"FiscalSim/internal/calculator"
	"FiscalSim/internal/log"
	"FiscalSim/internal/model"
)

// Run is the outcome of one simulation inside a batch.
type Run struct {
	ID     uuid.UUID
	Index  int
	Seed   uint64
	Series model.Series
	Total  decimal.Decimal
}

// RunBatch simulates runs independent years. Run i uses seed p.Seed+i on its
// own Simulator, so results do not depend on workers or scheduling order.
func RunBatch(ctx context.Context, p model.Params, runs, workers int) ([]Run, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", runs)
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]Run, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := p.Seed + uint64(i)
			sim, err := New(p.WithSeed(seed))
			if err != nil {
				return err
			}
			series, err := sim.Year()
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			results[i] = Run{
				ID:     uuid.New(),
				Index:  i,
				Seed:   seed,
				Series: series,
				Total:  calculator.TotalRevenue(series),
			}
			log.Debugw("batch run finished", "run", i, "seed", seed, "total", results[i].Total.StringFixed(2))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("batch of %d runs finished with %d workers", runs, workers)
	return results, nil
}

// Totals extracts the annual revenue of each run, in run order.
func Totals(runs []Run) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = r.Total.InexactFloat64()
	}
	return out
}
