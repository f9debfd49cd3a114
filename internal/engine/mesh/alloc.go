package mesh

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted is returned when vertex storage cannot be allocated.
var ErrResourceExhausted = errors.New("resource exhausted")

// Allocator hands out vertex storage. Every slice returned by Alloc must be
// handed back to Free by its owner.
type Allocator interface {
	Alloc(n int) ([]Vertex, error)
	Free(v []Vertex)
}

// HeapAllocator allocates from the Go heap under a vertex budget.
// A zero Budget means unlimited.
type HeapAllocator struct {
	Budget int

	inUse int
}

// NewHeapAllocator creates an allocator limited to budget live vertices.
func NewHeapAllocator(budget int) *HeapAllocator {
	return &HeapAllocator{Budget: budget}
}

// Alloc returns storage for exactly n vertices.
func (a *HeapAllocator) Alloc(n int) ([]Vertex, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid vertex count %d", n)
	}
	if a.Budget > 0 && a.inUse+n > a.Budget {
		return nil, fmt.Errorf("%d vertices requested, %d of %d in use: %w",
			n, a.inUse, a.Budget, ErrResourceExhausted)
	}
	a.inUse += n
	return make([]Vertex, n), nil
}

// Free releases storage previously returned by Alloc.
func (a *HeapAllocator) Free(v []Vertex) {
	a.inUse -= cap(v)
	if a.inUse < 0 {
		a.inUse = 0
	}
}

// InUse returns the number of live vertices.
func (a *HeapAllocator) InUse() int {
	return a.inUse
}
