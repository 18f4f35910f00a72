package harness

import (
	"fmt"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// Result holds the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Checks records one outcome per assertion, in declaration order.
	Checks []CheckResult
}

// CheckResult is the outcome of a single assertion.
type CheckResult struct {
	// Type is the assertion type that was evaluated.
	Type string

	// Err is nil when the assertion passed, an *AssertionError when it
	// failed, or an evaluation error (for example a cyclic framework
	// under a strength assertion).
	Err error
}

// Failures returns the errors of all failed checks.
func (r *Result) Failures() []error {
	var out []error
	for _, check := range r.Checks {
		if check.Err != nil {
			out = append(out, check.Err)
		}
	}
	return out
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Failures()) == 0
}

// Run builds both frameworks and evaluates every assertion. A non-nil
// error means the scenario could not be set up at all (invalid framework
// documents); assertion failures are reported through the Result.
func Run(scenario *Scenario) (*Result, error) {
	reference, err := scenario.Reference.Framework()
	if err != nil {
		return nil, fmt.Errorf("reference framework: %w", err)
	}
	modified, err := scenario.Modified.Framework()
	if err != nil {
		return nil, fmt.Errorf("modified framework: %w", err)
	}

	result := &Result{Scenario: scenario.Name}
	for _, assertion := range scenario.Assertions {
		result.Checks = append(result.Checks, CheckResult{
			Type: assertion.Type,
			Err:  evaluate(reference, modified, scenario.Topic, assertion),
		})
	}
	return result, nil
}

// evaluate dispatches one assertion against the built frameworks.
func evaluate(reference, modified *qbaf.Framework, topic []string, a Assertion) error {
	target := modified
	if a.Framework == FrameworkReference {
		target = reference
	}

	switch a.Type {
	case AssertFinalStrengths:
		return assertFinalStrengths(target, a)
	case AssertAcyclic:
		return assertAcyclic(target, a)
	case AssertStrengthConsistent:
		return assertStrengthConsistent(reference, modified, topic, a)
	case AssertSSIExplanations:
		sets, err := modified.MinimalSSIExplanations(reference, topic[0], topic[1])
		if err != nil {
			return err
		}
		return assertExplanationSets(a, sets)
	case AssertCSIExplanations:
		sets, err := modified.MinimalCSIExplanations(reference, topic[0], topic[1])
		if err != nil {
			return err
		}
		return assertExplanationSets(a, sets)
	default:
		// validateScenario rejects unknown types before Run is reached.
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}
