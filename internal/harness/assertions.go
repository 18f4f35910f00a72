package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// AssertionError is returned when an assertion fails. It includes the
// expected and actual outcomes to make scenario failures readable
// without re-running anything.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	return buf.String()
}

// assertFinalStrengths checks the named arguments' final strengths on
// the selected framework. Subset match: arguments not listed in the
// assertion are not checked.
func assertFinalStrengths(fw *qbaf.Framework, a Assertion) error {
	final, err := fw.FinalStrengths()
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(a.Strengths) {
		want := a.Strengths[name]
		got, ok := final[name]
		if !ok {
			return &AssertionError{
				Type:     AssertFinalStrengths,
				Expected: fmt.Sprintf("%s has final strength %v", name, want),
				Actual:   fmt.Sprintf("%s is not part of the %s framework", name, a.Framework),
			}
		}
		if got != want {
			return &AssertionError{
				Type:     AssertFinalStrengths,
				Expected: fmt.Sprintf("%s has final strength %v", name, want),
				Actual:   fmt.Sprintf("%s has final strength %v", name, got),
			}
		}
	}
	return nil
}

// assertAcyclic checks cycle detection on the selected framework.
func assertAcyclic(fw *qbaf.Framework, a Assertion) error {
	got := fw.IsAcyclic()
	if got != *a.Expect {
		return &AssertionError{
			Type:     AssertAcyclic,
			Expected: fmt.Sprintf("acyclic == %v for the %s framework", *a.Expect, a.Framework),
			Actual:   fmt.Sprintf("acyclic == %v", got),
		}
	}
	return nil
}

// assertStrengthConsistent checks the focal ordering agreement between
// the modified and reference frameworks.
func assertStrengthConsistent(reference, modified *qbaf.Framework, topic []string, a Assertion) error {
	got, err := modified.StrengthConsistent(reference, topic[0], topic[1])
	if err != nil {
		return err
	}
	if got != *a.Expect {
		return &AssertionError{
			Type:     AssertStrengthConsistent,
			Expected: fmt.Sprintf("strength consistency on (%s, %s) == %v", topic[0], topic[1], *a.Expect),
			Actual:   fmt.Sprintf("strength consistency == %v", got),
		}
	}
	return nil
}

// assertExplanationSets checks that the computed antichain matches the
// expected one exactly, ignoring order.
func assertExplanationSets(a Assertion, got []qbaf.ArgSet) error {
	want := make([]qbaf.ArgSet, 0, len(*a.Sets))
	for _, names := range *a.Sets {
		want = append(want, qbaf.NewArgSet(names...))
	}

	if !sameSetCollection(want, got) {
		return &AssertionError{
			Type:     a.Type,
			Expected: formatSets(want),
			Actual:   formatSets(got),
		}
	}
	return nil
}

// sameSetCollection compares two explanation collections as unordered
// multisets of argument sets.
func sameSetCollection(want, got []qbaf.ArgSet) bool {
	if len(want) != len(got) {
		return false
	}
	matched := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !matched[i] && w.Equal(g) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// formatSets renders a collection of argument sets for error messages.
func formatSets(sets []qbaf.ArgSet) string {
	if len(sets) == 0 {
		return "no explanations"
	}
	parts := make([]string, len(sets))
	for i, set := range sets {
		parts[i] = set.String()
	}
	return strings.Join(parts, ", ")
}

// sortedKeys returns map keys in sorted order for deterministic error
// reporting.
func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
