package qbaf

import "fmt"

// Argument pairs an argument name with an optional free-text description.
//
// Identity is the name alone: two Arguments are the same argument exactly
// when their names match, whatever their descriptions say. The core
// framework API is keyed by plain name strings; Argument exists for
// surfaces that carry human-readable context alongside the key, such as
// document loaders and report renderers.
type Argument struct {
	// Name is the immutable identity of the argument.
	Name string

	// Description is informational only and never participates in
	// identity or comparisons.
	Description string
}

// NewArgument creates an Argument with an empty description.
func NewArgument(name string) Argument {
	return Argument{Name: name}
}

// Equal reports whether both values identify the same argument. Only the
// names are compared.
func (a Argument) Equal(other Argument) bool {
	return a.Name == other.Name
}

// String returns Argument(<name>).
func (a Argument) String() string {
	return fmt.Sprintf("Argument(%s)", a.Name)
}
