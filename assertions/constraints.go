package assertions

// AndConstraint continues a chain on the assertions object that produced it.
type AndConstraint[P any] struct {
	And P
}

// AndWhichConstraint additionally exposes the value an assertion extracted.
// Which holds the zero value when the assertion failed.
type AndWhichConstraint[P any, W any] struct {
	And   P
	Which W
}
