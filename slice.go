package winnow

// Slice removes all elements from s for which keep() returns false and
// returns the shortened slice.
//
// It makes a single forward pass over s, calling keep() exactly once per
// element in increasing index order. keep() receives a pointer to the
// element in place, so any modification it makes to a retained element is
// preserved. The relative order of the retained elements is unchanged.
// keep() must not access s itself, and the pointer it receives is valid
// only for the duration of the call.
//
// The result shares s's backing array. Callers should use the result in
// place of s, as in s = winnow.Slice(s, keep). The vacated tail of the
// backing array is zeroed so that discarded values can be collected.
//
// If keep() panics the panic propagates to the caller and s keeps its
// original length, holding every element exactly once; no slot is zeroed.
// The elements already retained occupy the lowest indexes in retention
// order, the elements already rejected follow in unspecified order, and the
// unvisited elements remain at their original positions.
func Slice[E any, S ~[]E](s S, keep func(*E) bool) S {
	del := 0

	for i := range s {
		if !keep(&s[i]) {
			del++
		} else if del > 0 {
			s[i-del], s[i] = s[i], s[i-del]
		}
	}

	if del == 0 {
		return s
	}

	n := len(s) - del
	clear(s[n:])

	return s[:n]
}
