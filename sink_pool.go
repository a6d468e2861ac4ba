package serial

// SinkPool hands out reusable BufferSinks. It retains every returned sink and
// rewinds each one to an empty write position before lending it again; the
// stale bytes are not cleared, only made unreachable.
//
// A SinkPool lives as long as the program that created it and needs no teardown.
type SinkPool struct {
	pool *Pool[*BufferSink]
}

// NewSinkPool creates a pool of BufferSinks with the given capacity each.
// A non-positive capacity selects DefaultSinkCapacity.
func NewSinkPool(sinkCapacity int) *SinkPool {
	if sinkCapacity <= 0 {
		sinkCapacity = DefaultSinkCapacity
	}
	return &SinkPool{
		pool: NewPool(Unbounded,
			func() *BufferSink { return NewBufferSink(sinkCapacity) },
			(*BufferSink).Reset,
		),
	}
}

// With borrows a sink for the duration of fn.
func (p *SinkPool) With(fn func(*BufferSink) error) error {
	return p.pool.With(fn)
}

// Stats returns the counters of the underlying pool.
func (p *SinkPool) Stats() PoolStats { return p.pool.Stats() }

// WithSink is like SinkPool.With for functions that produce a result.
func WithSink[R any](p *SinkPool, fn func(*BufferSink) (R, error)) (R, error) {
	return WithValue(p.pool, fn)
}
