// Package testutil provides shared builders for framework tests.
package testutil

import (
	"sort"
	"testing"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// Framework builds a framework from an initial-strength map and relation
// pair lists, failing the test on construction errors.
//
// Arguments are passed to the constructor in sorted name order so tests
// are deterministic regardless of map iteration:
//
//	fw := testutil.Framework(t,
//		map[string]float64{"alpha": 1, "beta": 1},
//		[][2]string{{"beta", "alpha"}}, // attacks
//		nil,                            // supports
//	)
func Framework(t *testing.T, strengths map[string]float64, attacks, supports [][2]string) *qbaf.Framework {
	t.Helper()

	names := make([]string, 0, len(strengths))
	for name := range strengths {
		names = append(names, name)
	}
	sort.Strings(names)

	initial := make([]float64, len(names))
	for i, name := range names {
		initial[i] = strengths[name]
	}

	fw, err := qbaf.New(names, initial, Relations(attacks), Relations(supports))
	if err != nil {
		t.Fatalf("building test framework: %v", err)
	}
	return fw
}

// Relations converts [agent, patient] pairs to qbaf.Relation values.
func Relations(pairs [][2]string) []qbaf.Relation {
	out := make([]qbaf.Relation, len(pairs))
	for i, p := range pairs {
		out[i] = qbaf.Relation{Agent: p[0], Patient: p[1]}
	}
	return out
}
