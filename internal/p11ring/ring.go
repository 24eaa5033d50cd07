// Package p11ring keeps bounded histories of recent values.
package p11ring

import (
	"sync"
)

// Ring holds the most recent values added to it, up to a fixed capacity.
type Ring[T any] struct {
	mtx  sync.Mutex
	vals []T // len(vals) is the capacity
	next int // where the next value goes
	size int // how many slots hold values
}

// New returns an empty ring with capacity for n values. A capacity less than
// one is treated as one.
func New[T any](n int) *Ring[T] {
	if n < 1 {
		n = 1
	}
	return &Ring[T]{vals: make([]T, n)}
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.vals)
}

// Len returns the number of values held by the ring.
func (r *Ring[T]) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.size
}

// Add stores v as the most recent value. If the ring was full, the oldest
// value is evicted and returned along with true.
func (r *Ring[T]) Add(v T) (evicted T, ok bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.size == len(r.vals) {
		evicted, ok = r.vals[r.next], true
	} else {
		r.size++
	}

	r.vals[r.next] = v
	r.next = (r.next + 1) % len(r.vals)

	return evicted, ok
}

// Recent returns up to limit values, newest first. A negative limit returns
// every value.
func (r *Ring[T]) Recent(limit int) []T {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	n := r.size
	if limit >= 0 && limit < n {
		n = limit
	}

	res := make([]T, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, r.vals[r.index(i)])
	}
	return res
}

// Resize changes the capacity to n, keeping the most recent values. Values
// that no longer fit are returned, newest first.
func (r *Ring[T]) Resize(n int) (evicted []T) {
	if n < 1 {
		n = 1
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	keep := r.size
	if keep > n {
		keep = n
	}

	vals := make([]T, n)
	for i := 0; i < keep; i++ {
		vals[keep-1-i] = r.vals[r.index(i)]
	}
	for i := keep; i < r.size; i++ {
		evicted = append(evicted, r.vals[r.index(i)])
	}

	r.vals = vals
	r.size = keep
	r.next = keep % n

	return evicted
}

// index maps age (0 is newest) to a slot. Caller must hold the lock.
func (r *Ring[T]) index(age int) int {
	i := r.next - 1 - age
	for i < 0 {
		i += len(r.vals)
	}
	return i
}

//
//
//

// Set is a collection of rings, one per key, created on demand.
type Set[T any] struct {
	mtx   sync.Mutex
	cap   int
	rings map[string]*Ring[T]
}

// NewSet returns an empty set whose rings have capacity n.
func NewSet[T any](n int) *Set[T] {
	return &Set[T]{
		cap:   n,
		rings: map[string]*Ring[T]{},
	}
}

// Get returns the ring for key, creating it if necessary.
func (s *Set[T]) Get(key string) *Ring[T] {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	r, ok := s.rings[key]
	if !ok {
		r = New[T](s.cap)
		s.rings[key] = r
	}
	return r
}

// Lookup returns the ring for key, if it exists.
func (s *Set[T]) Lookup(key string) (*Ring[T], bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	r, ok := s.rings[key]
	return r, ok
}

// All returns a snapshot of every ring in the set, by key.
func (s *Set[T]) All() map[string]*Ring[T] {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	all := make(map[string]*Ring[T], len(s.rings))
	for k, r := range s.rings {
		all[k] = r
	}
	return all
}

// Resize changes the capacity of every ring, current and future, and returns
// the values that were evicted as a result.
func (s *Set[T]) Resize(n int) (evicted []T) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cap = n
	for _, r := range s.rings {
		evicted = append(evicted, r.Resize(n)...)
	}
	return evicted
}
