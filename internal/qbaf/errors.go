package qbaf

import (
	"errors"
	"fmt"
)

// FrameworkError represents an error detected while constructing, mutating
// or evaluating a framework.
//
// Framework errors include:
//   - Invalid relation endpoint: relation references an unknown argument
//   - Conflicting relation: same ordered pair as both attack and support
//   - Non-disjoint relations: construction-time attack/support overlap
//   - Cyclic graph: final strengths requested on a cyclic framework
//   - Unknown argument: strength lookup for an absent argument
//   - Invalid reversal set: reversal over arguments neither framework has
//
// FrameworkError includes structured fields for diagnostics. Idempotent
// no-ops (removing an absent relation, adding a present argument) are
// defined behavior and never produce an error.
type FrameworkError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Argument names the offending argument, when the error concerns a
	// single argument.
	Argument string

	// Agent and Patient name the offending relation endpoints, when the
	// error concerns a relation.
	Agent   string
	Patient string
}

// ErrorCode categorizes framework errors.
type ErrorCode string

const (
	// ErrCodeInvalidRelationEndpoint indicates a relation referencing an
	// argument that is not part of the framework.
	ErrCodeInvalidRelationEndpoint ErrorCode = "INVALID_RELATION_ENDPOINT"

	// ErrCodeConflictingRelation indicates an attack added where a support
	// exists for the same ordered pair, or vice versa.
	ErrCodeConflictingRelation ErrorCode = "CONFLICTING_RELATION"

	// ErrCodeNonDisjointRelations indicates construction-time overlap
	// between the attack and support relation sets.
	ErrCodeNonDisjointRelations ErrorCode = "NON_DISJOINT_RELATIONS"

	// ErrCodeCyclicGraphUnsupported indicates a final-strength computation
	// attempted on a graph containing a directed cycle.
	ErrCodeCyclicGraphUnsupported ErrorCode = "CYCLIC_GRAPH_UNSUPPORTED"

	// ErrCodeUnknownArgument indicates a lookup for an argument that is
	// not part of the framework.
	ErrCodeUnknownArgument ErrorCode = "UNKNOWN_ARGUMENT"

	// ErrCodeInvalidReversalSet indicates a reversal requested over a set
	// that is not contained in the union of both frameworks' arguments.
	ErrCodeInvalidReversalSet ErrorCode = "INVALID_REVERSAL_SET"

	// ErrCodeInvalidArgumentList indicates mismatched argument and
	// strength lists passed to the constructor.
	ErrCodeInvalidArgumentList ErrorCode = "INVALID_ARGUMENT_LIST"
)

// Error implements the error interface.
func (e *FrameworkError) Error() string {
	if e.Agent != "" || e.Patient != "" {
		return fmt.Sprintf("%s: %s (agent=%s, patient=%s)", e.Code, e.Message, e.Agent, e.Patient)
	}
	if e.Argument != "" {
		return fmt.Sprintf("%s: %s (argument=%s)", e.Code, e.Message, e.Argument)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCyclicGraphError returns true if the error reports an unsupported
// cyclic graph. Uses errors.As to handle wrapped errors.
func IsCyclicGraphError(err error) bool {
	var fe *FrameworkError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeCyclicGraphUnsupported
	}
	return false
}

// IsUnknownArgumentError returns true if the error reports a lookup for an
// absent argument. Uses errors.As to handle wrapped errors.
func IsUnknownArgumentError(err error) bool {
	var fe *FrameworkError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeUnknownArgument
	}
	return false
}

// IsConflictingRelationError returns true if the error reports an
// attack/support conflict on a single ordered pair.
func IsConflictingRelationError(err error) bool {
	var fe *FrameworkError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeConflictingRelation
	}
	return false
}

// IsInvalidEndpointError returns true if the error reports a relation
// endpoint outside the framework's argument set.
func IsInvalidEndpointError(err error) bool {
	var fe *FrameworkError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeInvalidRelationEndpoint
	}
	return false
}

// IsInvalidReversalSetError returns true if the error reports a reversal
// set outside the union of both frameworks' arguments.
func IsInvalidReversalSetError(err error) bool {
	var fe *FrameworkError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeInvalidReversalSet
	}
	return false
}

// NewInvalidEndpointError creates a FrameworkError for a relation whose
// agent or patient is not part of the framework.
func NewInvalidEndpointError(agent, patient, missing string) *FrameworkError {
	return &FrameworkError{
		Code:     ErrCodeInvalidRelationEndpoint,
		Message:  fmt.Sprintf("relation endpoint %q is not an argument of the framework", missing),
		Argument: missing,
		Agent:    agent,
		Patient:  patient,
	}
}

// NewConflictingRelationError creates a FrameworkError for an ordered pair
// that already carries the opposite relation kind.
func NewConflictingRelationError(agent, patient, existing string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeConflictingRelation,
		Message: fmt.Sprintf("pair already related by %s", existing),
		Agent:   agent,
		Patient: patient,
	}
}

// NewNonDisjointRelationsError creates a FrameworkError for an ordered
// pair present in both the attack and support sets at construction.
func NewNonDisjointRelationsError(agent, patient string) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeNonDisjointRelations,
		Message: "attack and support relation sets are not disjoint",
		Agent:   agent,
		Patient: patient,
	}
}

// NewCyclicGraphError creates a FrameworkError for a final-strength
// computation over a cyclic attack/support graph.
func NewCyclicGraphError() *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeCyclicGraphUnsupported,
		Message: "final strengths are undefined on a cyclic framework",
	}
}

// NewUnknownArgumentError creates a FrameworkError for an absent argument.
func NewUnknownArgumentError(name string) *FrameworkError {
	return &FrameworkError{
		Code:     ErrCodeUnknownArgument,
		Message:  fmt.Sprintf("argument %q is not part of the framework", name),
		Argument: name,
	}
}

// NewInvalidReversalSetError creates a FrameworkError for a reversal set
// containing arguments that neither framework has.
func NewInvalidReversalSetError(name string) *FrameworkError {
	return &FrameworkError{
		Code:     ErrCodeInvalidReversalSet,
		Message:  fmt.Sprintf("argument %q belongs to neither framework", name),
		Argument: name,
	}
}

// NewInvalidArgumentListError creates a FrameworkError for mismatched
// constructor lists.
func NewInvalidArgumentListError(args, strengths int) *FrameworkError {
	return &FrameworkError{
		Code:    ErrCodeInvalidArgumentList,
		Message: fmt.Sprintf("got %d arguments but %d initial strengths", args, strengths),
	}
}
