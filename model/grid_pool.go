package model

import "sync"

// Counts is a per-generation snapshot of neighbor counts, indexed [row][col]
type Counts [][]int

// CountsToPool returns a counts buffer to the pool for reuse
func CountsToPool(counts Counts, pool *CountsPool) {
	if pool == nil {
		return
	}

	pool.Put(counts)
}

// CountsPool recycles neighbor count buffers between generations
type CountsPool struct {
	pool sync.Pool
}

func NewCountsPool() *CountsPool {
	return &CountsPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Counts{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, sized and zeroed for rows x cols
func (p *CountsPool) Get(rows, cols int) Counts {
	c := *p.pool.Get().(*Counts)
	if len(c) != rows {
		c = make(Counts, rows)
	}
	for i := range c {
		if len(c[i]) != cols {
			c[i] = make([]int, cols)
		} else {
			clear(c[i])
		}
	}
	return c
}

// Put returns a buffer to the pool
func (p *CountsPool) Put(c Counts) {
	p.pool.Put(&c)
}

// NewCounts allocates a zeroed buffer without a pool
func NewCounts(rows, cols int) Counts {
	c := make(Counts, rows)
	for i := range c {
		c[i] = make([]int, cols)
	}
	return c
}
