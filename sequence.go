package winnow

// Sequence is a contiguously-stored, index-addressable sequence of E values
// whose length can be reduced in place.
//
// It is the capability a container must provide for [Retain] to operate on
// it.
type Sequence[E any] interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// At returns a pointer to the element at index i.
	//
	// The pointer is valid until the next call to a method that adds,
	// removes or reorders elements.
	At(i int) *E

	// Swap exchanges the elements at indexes i and j.
	Swap(i, j int)

	// Truncate reduces the length of the sequence to n elements, discarding
	// those beyond the new length.
	//
	// The discarded elements must not remain reachable via the sequence's
	// storage once Truncate returns.
	Truncate(n int)
}
