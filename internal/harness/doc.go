// Package harness runs conformance scenarios for framework comparison.
//
// A scenario pairs a reference framework (QBF) with a modified one (QBF′)
// and a focal argument pair, then asserts on final strengths, acyclicity,
// strength consistency and minimal SSI/CSI explanations. Scenarios are
// YAML files, so the expected behavior of the explanation machinery reads
// as data rather than test code.
//
// Deterministic by construction: frameworks iterate in sorted name order
// and explanation searches return sorted antichains, so the same scenario
// always produces the same report. Golden snapshots (see golden.go)
// exploit this to pin byte-exact expected reports under testdata/golden.
package harness
