package serial

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/puzpuzpuz/xsync/v4"
)

// Unbounded is the Pool capacity that retains every returned object.
const Unbounded = 0

// idleSet holds objects waiting to be borrowed again. Both operations must be
// safe for concurrent use and must never block.
type idleSet[T any] interface {
	take() (T, bool)
	give(T) bool
}

// boundedIdle keeps at most a fixed number of objects in a lock-free queue.
type boundedIdle[T any] struct {
	q *xsync.MPMCQueue[T]
}

func (b boundedIdle[T]) take() (T, bool) { return b.q.TryDequeue() }
func (b boundedIdle[T]) give(t T) bool   { return b.q.TryEnqueue(t) }

// unboundedIdle keeps every returned object in a growable ring.
type unboundedIdle[T any] struct {
	mu sync.Mutex
	q  *queue.Queue
}

func (u *unboundedIdle[T]) take() (t T, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.q.Length() == 0 {
		return t, false
	}
	return u.q.Remove().(T), true
}

func (u *unboundedIdle[T]) give(t T) bool {
	u.mu.Lock()
	u.q.Add(t)
	u.mu.Unlock()
	return true
}

// PoolStats is a snapshot of a pool's lifetime counters.
type PoolStats struct {
	Created int64 // objects built by the factory
	Reused  int64 // borrows served from the idle set
	Dropped int64 // returns discarded because the idle set was full
}

// Pool is a thread-safe cache of reusable objects.
//
// Objects are only reachable through With and WithValue, which borrow one
// object for the duration of a call and return it afterwards on every exit
// path, panics included. A borrow never blocks: when no idle object is
// available a new one is built. A return never blocks either: when the idle
// set is full the object is dropped.
//
// Every borrowed object is either fresh from the factory or has been passed
// through the prepare hook since its last use.
type Pool[T any] struct {
	idle      idleSet[T]
	newObject func() T
	prepare   func(T)

	created *xsync.Counter
	reused  *xsync.Counter
	dropped *xsync.Counter
}

// NewPool creates a pool retaining at most capacity idle objects; a capacity
// of Unbounded (or any non-positive value) retains all of them. newObject
// builds fresh objects. prepare, if not nil, restores an idle object before it
// is handed out again; with a nil prepare only naturally reusable objects
// should be pooled.
func NewPool[T any](capacity int, newObject func() T, prepare func(T)) *Pool[T] {
	if newObject == nil {
		panic("serial: NewPool called with a nil factory")
	}
	p := &Pool[T]{
		newObject: newObject,
		prepare:   prepare,
		created:   xsync.NewCounter(),
		reused:    xsync.NewCounter(),
		dropped:   xsync.NewCounter(),
	}
	if capacity <= 0 {
		p.idle = &unboundedIdle[T]{q: queue.New()}
	} else {
		p.idle = boundedIdle[T]{q: xsync.NewMPMCQueue[T](capacity)}
	}
	return p
}

func (p *Pool[T]) borrow() T {
	t, ok := p.idle.take()
	if !ok {
		p.created.Inc()
		return p.newObject()
	}
	p.reused.Inc()
	if p.prepare != nil {
		p.prepare(t)
	}
	return t
}

func (p *Pool[T]) release(t T) {
	if !p.idle.give(t) {
		p.dropped.Inc()
	}
}

// With borrows an object, passes it to fn and returns it to the pool when fn
// completes. fn must not retain the object after it returns.
func (p *Pool[T]) With(fn func(T) error) error {
	t := p.borrow()
	defer p.release(t)
	return fn(t)
}

// Stats returns the pool's counters.
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Created: p.created.Value(),
		Reused:  p.reused.Value(),
		Dropped: p.dropped.Value(),
	}
}

// WithValue is like Pool.With for functions that produce a result.
func WithValue[T, R any](p *Pool[T], fn func(T) (R, error)) (R, error) {
	t := p.borrow()
	defer p.release(t)
	return fn(t)
}
