package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbafio"
)

// Scenario defines a framework-comparison conformance scenario.
// Scenarios validate the strength and explanation machinery by building
// two frameworks and asserting on the comparison between them.
type Scenario struct {
	// Name uniquely identifies this scenario. Doubles as the golden file
	// name for snapshot tests.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Reference is the baseline framework (QBF).
	Reference qbafio.Document `yaml:"reference"`

	// Modified is the framework under comparison (QBF′).
	Modified qbafio.Document `yaml:"modified"`

	// Topic names the two focal arguments whose relative strength
	// ordering is compared.
	Topic []string `yaml:"topic"`

	// Assertions validate the comparison. Supported types:
	// final_strengths, acyclic, strength_consistent, ssi_explanations,
	// csi_explanations.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one aspect of the comparison.
type Assertion struct {
	// Type selects the check, one of the Assert* constants.
	Type string `yaml:"type"`

	// Framework selects the target framework for final_strengths and
	// acyclic: "reference" or "modified".
	Framework string `yaml:"framework,omitempty"`

	// Strengths holds expected final strengths (subset match, only the
	// named arguments are checked). Used by final_strengths.
	Strengths map[string]float64 `yaml:"strengths,omitempty"`

	// Expect is the expected boolean outcome. Used by acyclic and
	// strength_consistent; a pointer so an omitted value fails
	// validation instead of silently meaning false.
	Expect *bool `yaml:"expect,omitempty"`

	// Sets is the exact expected antichain, each inner list one
	// explanation set. Used by ssi_explanations and csi_explanations;
	// order-insensitive. An empty list means "no explanations".
	Sets *[][]string `yaml:"sets,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalStrengths     = "final_strengths"
	AssertAcyclic            = "acyclic"
	AssertStrengthConsistent = "strength_consistent"
	AssertSSIExplanations    = "ssi_explanations"
	AssertCSIExplanations    = "csi_explanations"
)

// Framework selector constants for assertions.
const (
	FrameworkReference = "reference"
	FrameworkModified  = "modified"
)

// LoadScenario reads and parses a scenario YAML file. Returns an error if
// the file doesn't exist, is malformed, contains unknown fields (typos),
// or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a scenario from YAML bytes with strict field
// validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Reference.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid reference framework: %w", err)
	}
	if err := scenario.Modified.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid modified framework: %w", err)
	}
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Reference.Arguments) == 0 {
		return fmt.Errorf("reference framework must declare arguments")
	}
	if len(s.Modified.Arguments) == 0 {
		return fmt.Errorf("modified framework must declare arguments")
	}
	if len(s.Topic) != 2 {
		return fmt.Errorf("topic must name exactly 2 arguments, got %d", len(s.Topic))
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertFinalStrengths:
		if err := validateFrameworkSelector(index, a); err != nil {
			return err
		}
		if len(a.Strengths) == 0 {
			return fmt.Errorf("assertions[%d]: strengths is required for final_strengths", index)
		}
	case AssertAcyclic:
		if err := validateFrameworkSelector(index, a); err != nil {
			return err
		}
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for acyclic", index)
		}
	case AssertStrengthConsistent:
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for strength_consistent", index)
		}
	case AssertSSIExplanations, AssertCSIExplanations:
		if a.Sets == nil {
			return fmt.Errorf("assertions[%d]: sets is required for %s (use [] for none)", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

// validateFrameworkSelector checks the reference/modified selector.
func validateFrameworkSelector(index int, a *Assertion) error {
	switch a.Framework {
	case FrameworkReference, FrameworkModified:
		return nil
	case "":
		return fmt.Errorf("assertions[%d]: framework is required for %s", index, a.Type)
	default:
		return fmt.Errorf("assertions[%d]: framework must be %q or %q, got %q",
			index, FrameworkReference, FrameworkModified, a.Framework)
	}
}
