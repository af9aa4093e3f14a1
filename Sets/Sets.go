package Sets

// Set of elements of type E.
type Set[E any] interface {
	//Put e into the set. Returning true iff e wasn't already present.
	Put(e E) bool
	//Has element e.
	Has(e E) bool
	//Remove e from the set. Returning true iff e was present.
	Remove(e E) bool
	//Size of the set.
	Size() uint
	//Range calls f on every element until f returns false.
	Range(f func(E) bool)
}
