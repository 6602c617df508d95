package rules

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// Engine advances a grid one generation at a time.
//
// Every generation is computed in two passes: all neighbor counts are taken
// from the current grid first, and only then are cells updated. No cell's new
// state can leak into another cell's count within the same generation.
type Engine struct {
	workers int
	bounded bool
	pool    *model.CountsPool
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers splits each pass into row bands processed by n goroutines.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// WithBounded limits both passes to the live region plus a one cell margin
func WithBounded(bounded bool) Option {
	return func(e *Engine) {
		e.bounded = bounded
	}
}

// WithCountsPool reuses neighbor count buffers across generations
func WithCountsPool(pool *model.CountsPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// NewEngine returns a single-worker engine unless configured otherwise
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Advance replaces the grid's cells with the next generation
func (e *Engine) Advance(g *model.Grid) {
	if g == nil {
		return
	}
	region, ok := e.region(g)
	if !ok {
		// nothing alive, nothing can be born
		return
	}

	var counts model.Counts
	if e.pool != nil {
		counts = e.pool.Get(g.Rows(), g.Cols())
		defer model.CountsToPool(counts, e.pool)
	} else {
		counts = model.NewCounts(g.Rows(), g.Cols())
	}

	// Pass 1: snapshot every count against the current generation
	e.run(region, func(r0, r1 int) {
		for r := r0; r < r1; r++ {
			for c := region.MinCol; c <= region.MaxCol; c++ {
				counts[r][c] = CountNeighbors(g, r, c)
			}
		}
	})

	// Pass 2: apply the rule using only the snapshot
	e.run(region, func(r0, r1 int) {
		for r := r0; r < r1; r++ {
			for c := region.MinCol; c <= region.MaxCol; c++ {
				alive := g.Test(r, c) == 1
				if next := ApplyConwayRules(counts[r][c], alive); next != alive {
					g.Set(r, c, next)
				}
			}
		}
	})
}

// region returns the rows and columns a generation has to visit
func (e *Engine) region(g *model.Grid) (model.Bounds, bool) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return model.Bounds{}, false
	}
	if !e.bounded {
		return model.Bounds{MinRow: 0, MaxRow: g.Rows() - 1, MinCol: 0, MaxCol: g.Cols() - 1}, true
	}
	b, ok := g.BoundingBox()
	if !ok {
		return b, false
	}
	return model.Bounds{
		MinRow: max(0, b.MinRow-1),
		MaxRow: min(g.Rows()-1, b.MaxRow+1),
		MinCol: max(0, b.MinCol-1),
		MaxCol: min(g.Cols()-1, b.MaxCol+1),
	}, true
}

// run executes fn over the region's rows, split into bands across the
// configured workers, and returns only once every band has finished
func (e *Engine) run(region model.Bounds, fn func(r0, r1 int)) {
	var (
		height = region.MaxRow - region.MinRow + 1
		end    = region.MaxRow + 1
	)
	if e.workers <= 1 || height <= 1 {
		fn(region.MinRow, end)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = region.MinRow + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, end)
		)
		if startRow >= end {
			break
		}

		eg.Go(func() error {
			fn(startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait is the barrier between passes
	eg.Wait()
}
