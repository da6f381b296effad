package params

import "strconv"

// NotFoundError indicates keyed access to a name the collection does not hold
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "parameter not found: " + e.Name
}

// IndexError indicates positional access outside the collection's range
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "parameter index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Len) + ")"
}

// LengthMismatchError indicates parallel sequences of incompatible lengths
type LengthMismatchError struct {
	Field string
	Want  int
	Got   int
}

func (e *LengthMismatchError) Error() string {
	return e.Field + " length " + strconv.Itoa(e.Got) + " does not match expected length " + strconv.Itoa(e.Want)
}
