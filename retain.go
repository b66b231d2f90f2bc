package winnow

// Retain removes all elements from seq for which keep() returns false.
//
// It makes a single forward pass over seq, calling keep() exactly once per
// element in increasing index order. keep() receives a pointer to the element
// in place, so any modification it makes to a retained element is preserved.
// The relative order of the retained elements is unchanged.
//
// Retain operates on seq's own storage and performs no allocation of its
// own. It calls Truncate at most once, after the pass completes, and not at
// all if every element is retained. keep() must not call methods on seq.
//
// If keep() panics the panic propagates to the caller and seq retains its
// original length, holding every element exactly once. The elements already
// retained occupy the lowest indexes in retention order, the elements
// already rejected follow in unspecified order, and the unvisited elements
// remain at their original positions. The element that caused the panic is
// not re-examined.
func Retain[E any](seq Sequence[E], keep func(*E) bool) {
	n := seq.Len()
	del := 0

	for i := 0; i < n; i++ {
		if !keep(seq.At(i)) {
			del++
		} else if del > 0 {
			seq.Swap(i-del, i)
		}
	}

	if del > 0 {
		seq.Truncate(n - del)
	}
}
