package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// Report captures the complete comparison outcome of a scenario. All
// slices are sorted and encoding/json renders map keys in sorted order,
// so serialization is byte-deterministic and fit for golden comparison.
type Report struct {
	Scenario        string          `json:"scenario"`
	Topic           []string        `json:"topic"`
	Reference       FrameworkReport `json:"reference"`
	Modified        FrameworkReport `json:"modified"`
	Consistent      bool            `json:"consistent"`
	SSIExplanations [][]string      `json:"ssi_explanations"`
	CSIExplanations [][]string      `json:"csi_explanations"`
}

// FrameworkReport is the per-framework slice of a Report.
type FrameworkReport struct {
	Arguments        []string           `json:"arguments"`
	InitialStrengths map[string]float64 `json:"initial_strengths"`
	FinalStrengths   map[string]float64 `json:"final_strengths"`
}

// BuildReport runs the full comparison for a scenario: both frameworks'
// strengths, the consistency verdict, and the minimal SSI and CSI
// explanations. Both frameworks must be acyclic and must contain the
// topic arguments.
func BuildReport(scenario *Scenario) (*Report, error) {
	reference, err := scenario.Reference.Framework()
	if err != nil {
		return nil, fmt.Errorf("reference framework: %w", err)
	}
	modified, err := scenario.Modified.Framework()
	if err != nil {
		return nil, fmt.Errorf("modified framework: %w", err)
	}

	refReport, err := frameworkReport(reference)
	if err != nil {
		return nil, fmt.Errorf("reference framework: %w", err)
	}
	modReport, err := frameworkReport(modified)
	if err != nil {
		return nil, fmt.Errorf("modified framework: %w", err)
	}

	a, b := scenario.Topic[0], scenario.Topic[1]
	consistent, err := modified.StrengthConsistent(reference, a, b)
	if err != nil {
		return nil, err
	}
	ssi, err := modified.MinimalSSIExplanations(reference, a, b)
	if err != nil {
		return nil, err
	}
	csi, err := modified.MinimalCSIExplanations(reference, a, b)
	if err != nil {
		return nil, err
	}

	return &Report{
		Scenario:        scenario.Name,
		Topic:           scenario.Topic,
		Reference:       refReport,
		Modified:        modReport,
		Consistent:      consistent,
		SSIExplanations: setsToNames(ssi),
		CSIExplanations: setsToNames(csi),
	}, nil
}

// frameworkReport extracts the serializable view of one framework.
func frameworkReport(fw *qbaf.Framework) (FrameworkReport, error) {
	final, err := fw.FinalStrengths()
	if err != nil {
		return FrameworkReport{}, err
	}
	return FrameworkReport{
		Arguments:        fw.Arguments(),
		InitialStrengths: fw.InitialStrengths(),
		FinalStrengths:   final,
	}, nil
}

// setsToNames flattens explanation sets to sorted name lists.
func setsToNames(sets []qbaf.ArgSet) [][]string {
	out := make([][]string, len(sets))
	for i, set := range sets {
		out[i] = set.Names()
	}
	return out
}

// RunWithGolden builds a scenario's report and compares it against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected comparison output;
// any semantic change to strength propagation or explanation search
// shows up as a golden diff.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	report, err := BuildReport(scenario)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
