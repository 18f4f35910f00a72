package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// loadFixture loads a scenario from testdata/scenarios, failing the test
// on any parse error.
func loadFixture(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(scenarioPath(name))
	require.NoError(t, err, "fixture %s must parse", name)
	return s
}

// TestRun_BoostedAttacker tests that every assertion in the
// boosted-attacker fixture holds.
func TestRun_BoostedAttacker(t *testing.T) {
	scenario := loadFixture(t, "boosted-attacker")

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Passed(), "failures: %v", result.Failures())
	assert.Equal(t, "boosted-attacker", result.Scenario)
	require.Len(t, result.Checks, len(scenario.Assertions))
	for i, check := range result.Checks {
		assert.Equal(t, scenario.Assertions[i].Type, check.Type)
		assert.NoError(t, check.Err)
	}
}

// TestRun_ConsistentPair tests the fixture where both frameworks agree
// and the empty set is the only explanation.
func TestRun_ConsistentPair(t *testing.T) {
	result, err := Run(loadFixture(t, "consistent-pair"))
	require.NoError(t, err)
	assert.True(t, result.Passed(), "failures: %v", result.Failures())
}

// TestRun_CyclicModified tests that acyclicity assertions evaluate on
// the selected framework.
func TestRun_CyclicModified(t *testing.T) {
	result, err := Run(loadFixture(t, "cyclic-modified"))
	require.NoError(t, err)
	assert.True(t, result.Passed(), "failures: %v", result.Failures())
}

// TestRun_FailedAssertion tests that a wrong expectation surfaces as an
// AssertionError carrying both sides of the comparison.
func TestRun_FailedAssertion(t *testing.T) {
	scenario := loadFixture(t, "boosted-attacker")
	wrong := true
	scenario.Assertions = []Assertion{
		{Type: AssertStrengthConsistent, Expect: &wrong},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Checks, 1)
	var assertionErr *AssertionError
	require.ErrorAs(t, result.Checks[0].Err, &assertionErr)
	assert.Equal(t, AssertStrengthConsistent, assertionErr.Type)
	assert.Contains(t, assertionErr.Expected, "true")
	assert.Contains(t, assertionErr.Actual, "false")
	assert.False(t, result.Passed())
	assert.Len(t, result.Failures(), 1)
}

// TestRun_WrongExplanationSets tests the set-collection mismatch path.
func TestRun_WrongExplanationSets(t *testing.T) {
	scenario := loadFixture(t, "boosted-attacker")
	scenario.Assertions = []Assertion{
		{Type: AssertSSIExplanations, Sets: &[][]string{{"gamma"}}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	var assertionErr *AssertionError
	require.ErrorAs(t, result.Checks[0].Err, &assertionErr)
	assert.Equal(t, "{gamma}", assertionErr.Expected)
	assert.Equal(t, "{beta}", assertionErr.Actual)
}

// TestRun_ExplanationOrderInsensitive tests that expected sets match in
// any declaration order.
func TestRun_ExplanationOrderInsensitive(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: split-cause
description: two independent initial-strength changes
reference:
  arguments:
    - name: a
      strength: 1.0
    - name: b
      strength: 1.0
modified:
  arguments:
    - name: a
      strength: 2.0
    - name: b
      strength: 0.0
topic: [a, b]
assertions:
  - type: ssi_explanations
    sets: [[b], [a]]
  - type: csi_explanations
    sets: [[a, b]]
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Passed(), "failures: %v", result.Failures())
}

// TestRun_CyclicStrengthAssertion tests that evaluation errors, as
// opposed to assertion failures, propagate through CheckResult.Err.
func TestRun_CyclicStrengthAssertion(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: cyclic-strengths
description: strengths are undefined on a cyclic framework
reference:
  arguments:
    - name: a
      strength: 1.0
    - name: b
      strength: 1.0
modified:
  arguments:
    - name: a
      strength: 1.0
    - name: b
      strength: 1.0
  attacks:
    - [a, b]
    - [b, a]
topic: [a, b]
assertions:
  - type: final_strengths
    framework: modified
    strengths:
      a: 1.0
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Checks, 1)
	require.Error(t, result.Checks[0].Err)
	assert.True(t, qbaf.IsCyclicGraphError(result.Checks[0].Err))
	var assertionErr *AssertionError
	assert.False(t, errors.As(result.Checks[0].Err, &assertionErr))
}

// TestRun_InvalidFrameworkDocument tests that construction errors abort
// the run instead of surfacing as assertion failures.
func TestRun_InvalidFrameworkDocument(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: dangling-edge
description: relation endpoint missing from the argument list
reference:
  arguments:
    - name: a
      strength: 1.0
  attacks:
    - [ghost, a]
modified:
  arguments:
    - name: a
      strength: 1.0
topic: [a, a]
assertions:
  - type: strength_consistent
    expect: true
`))
	require.NoError(t, err)

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference framework")
	assert.True(t, qbaf.IsInvalidEndpointError(err))
}
