// Package winnow provides in-place retention for contiguously-stored
// sequences, driven by predicates that may modify the elements they inspect.
//
// It is the mutating counterpart to ordinary filtering: the predicate
// receives a pointer to each element, and changes made to retained elements
// are kept.
package winnow
