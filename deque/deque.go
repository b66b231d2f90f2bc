// Package deque provides a double-ended queue backed by a ring buffer.
package deque

import "github.com/dogmatiq/winnow"

// A Deque is a double-ended queue of E values stored contiguously in a ring
// buffer.
//
// The zero value is an empty queue ready for use. A Deque is not safe for
// concurrent use; callers that share one across goroutines must serialize
// access to it.
type Deque[E any] struct {
	ring []E // len(ring) is always zero or a power of two
	head int // slot within ring of the element at position 0
	size int
}

var _ winnow.Sequence[int] = (*Deque[int])(nil)

// minRingSize is the number of slots allocated the first time an element is
// pushed onto a deque.
const minRingSize = 8

// PushBack appends v to the back of the queue.
func (d *Deque[E]) PushBack(v E) {
	if d.size == len(d.ring) {
		d.grow(d.size + 1)
	}

	d.ring[d.slot(d.size)] = v
	d.size++
}

// PushFront prepends v to the front of the queue.
func (d *Deque[E]) PushFront(v E) {
	if d.size == len(d.ring) {
		d.grow(d.size + 1)
	}

	d.head = (d.head - 1) & (len(d.ring) - 1)
	d.ring[d.head] = v
	d.size++
}

// PopFront removes and returns the element at the front of the queue.
//
// It panics if the queue is empty.
func (d *Deque[E]) PopFront() E {
	if d.size == 0 {
		panic("deque is empty")
	}

	var zero E

	v := d.ring[d.head]
	d.ring[d.head] = zero // avoid memory leak
	d.head = (d.head + 1) & (len(d.ring) - 1)
	d.size--

	return v
}

// PopBack removes and returns the element at the back of the queue.
//
// It panics if the queue is empty.
func (d *Deque[E]) PopBack() E {
	if d.size == 0 {
		panic("deque is empty")
	}

	var zero E

	i := d.slot(d.size - 1)
	v := d.ring[i]
	d.ring[i] = zero // avoid memory leak
	d.size--

	return v
}

// Retain removes all elements from the queue for which keep() returns false.
//
// It has the same contract as [winnow.Retain].
func (d *Deque[E]) Retain(keep func(*E) bool) {
	winnow.Retain(d, keep)
}

// Front returns a pointer to the element at the front of the queue.
//
// It panics if the queue is empty. The pointer remains valid only until the
// queue is next modified.
func (d *Deque[E]) Front() *E {
	if d.size == 0 {
		panic("deque is empty")
	}

	return &d.ring[d.head]
}

// Back returns a pointer to the element at the back of the queue.
//
// It panics if the queue is empty. The pointer remains valid only until the
// queue is next modified.
func (d *Deque[E]) Back() *E {
	if d.size == 0 {
		panic("deque is empty")
	}

	return &d.ring[d.slot(d.size-1)]
}

// Len returns the number of elements in the queue.
func (d *Deque[E]) Len() int {
	return d.size
}

// Cap returns the number of elements the queue can hold without growing.
func (d *Deque[E]) Cap() int {
	return len(d.ring)
}

// Grow ensures the queue has room for n more elements without reallocating.
//
// It panics if n is negative.
func (d *Deque[E]) Grow(n int) {
	if n < 0 {
		panic("cannot grow by a negative amount")
	}

	if d.size+n > len(d.ring) {
		d.grow(d.size + n)
	}
}

// Clear removes all elements from the queue, retaining its capacity.
func (d *Deque[E]) Clear() {
	d.Truncate(0)
}

// At returns a pointer to the element at position i, where position 0 is the
// front of the queue.
//
// The pointer remains valid only until the queue is next modified.
func (d *Deque[E]) At(i int) *E {
	if i < 0 || i >= d.size {
		panic("index out of range")
	}

	return &d.ring[d.slot(i)]
}

// Swap exchanges the elements at positions i and j.
func (d *Deque[E]) Swap(i, j int) {
	if i < 0 || i >= d.size || j < 0 || j >= d.size {
		panic("index out of range")
	}

	i, j = d.slot(i), d.slot(j)
	d.ring[i], d.ring[j] = d.ring[j], d.ring[i]
}

// Truncate discards the elements at position n and beyond, reducing the
// length of the queue to n.
//
// It panics if n is negative or greater than the current length.
func (d *Deque[E]) Truncate(n int) {
	if n < 0 || n > d.size {
		panic("truncation length out of range")
	}

	var zero E
	for i := n; i < d.size; i++ {
		d.ring[d.slot(i)] = zero // avoid memory leak
	}

	d.size = n
}

// slot returns the index within the ring of the element at position i.
func (d *Deque[E]) slot(i int) int {
	return (d.head + i) & (len(d.ring) - 1)
}

// grow replaces the ring with one large enough to hold at least n elements,
// relinearizing the contents so that the front of the queue is at slot 0.
func (d *Deque[E]) grow(n int) {
	size := minRingSize
	for size < n {
		size *= 2
	}

	ring := make([]E, size)

	k := copy(ring, d.ring[d.head:min(d.head+d.size, len(d.ring))])
	copy(ring[k:], d.ring[:d.size-k])

	d.ring = ring
	d.head = 0
}
