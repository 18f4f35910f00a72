// Package qbafio loads argumentation frameworks from YAML documents.
//
// The core qbaf package is deliberately serialization-free; every file
// concern lives here. A framework document looks like:
//
//	arguments:
//	  - name: alpha
//	    strength: 1.0
//	    description: optional free text
//	  - name: beta
//	    strength: 1.0
//	attacks:
//	  - [beta, alpha]
//	supports: []
//
// Argument names are normalized to Unicode NFC before construction, so
// documents written with different composed/decomposed forms of the same
// name refer to the same argument.
package qbafio

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// Document is the YAML shape of a framework file.
type Document struct {
	// Arguments lists the arguments with their initial strengths.
	Arguments []ArgumentDoc `yaml:"arguments"`

	// Attacks lists [attacker, attacked] pairs.
	Attacks []Pair `yaml:"attacks,omitempty"`

	// Supports lists [supporter, supported] pairs.
	Supports []Pair `yaml:"supports,omitempty"`
}

// ArgumentDoc is one argument entry.
type ArgumentDoc struct {
	// Name identifies the argument. Required, unique per document.
	Name string `yaml:"name"`

	// Strength is the initial strength. Defaults to 0.
	Strength float64 `yaml:"strength"`

	// Description is optional free text carried through to reports. It
	// never participates in argument identity.
	Description string `yaml:"description,omitempty"`
}

// Pair is a two-element [agent, patient] YAML sequence.
type Pair [2]string

// UnmarshalYAML decodes a relation pair, rejecting sequences that do not
// have exactly two elements.
func (p *Pair) UnmarshalYAML(value *yaml.Node) error {
	var raw []string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("line %d: relation pair must have exactly 2 elements, got %d", value.Line, len(raw))
	}
	p[0] = raw[0]
	p[1] = raw[1]
	return nil
}

// Parse decodes a framework document from YAML bytes. Decoding is strict:
// unknown fields are rejected so typos fail loudly. Argument names are
// NFC-normalized and must be unique after normalization.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a framework document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read framework file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Normalize NFC-normalizes every name in place and validates the
// document-level constraints that the core constructor cannot see.
// Parse calls it automatically; callers decoding documents embedded in
// larger YAML files (for example harness scenarios) call it themselves.
func (doc *Document) Normalize() error {
	seen := make(map[string]struct{}, len(doc.Arguments))
	for i := range doc.Arguments {
		name := norm.NFC.String(doc.Arguments[i].Name)
		if name == "" {
			return fmt.Errorf("arguments[%d]: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("arguments[%d]: duplicate argument name %q", i, name)
		}
		seen[name] = struct{}{}
		doc.Arguments[i].Name = name
	}
	for i := range doc.Attacks {
		doc.Attacks[i][0] = norm.NFC.String(doc.Attacks[i][0])
		doc.Attacks[i][1] = norm.NFC.String(doc.Attacks[i][1])
	}
	for i := range doc.Supports {
		doc.Supports[i][0] = norm.NFC.String(doc.Supports[i][0])
		doc.Supports[i][1] = norm.NFC.String(doc.Supports[i][1])
	}
	return nil
}

// Framework constructs the validated framework described by the document.
// Construction errors (unknown relation endpoints, attack/support
// overlap) surface as qbaf.FrameworkError values.
func (d *Document) Framework() (*qbaf.Framework, error) {
	names := make([]string, len(d.Arguments))
	strengths := make([]float64, len(d.Arguments))
	for i, arg := range d.Arguments {
		names[i] = arg.Name
		strengths[i] = arg.Strength
	}
	attacks := make([]qbaf.Relation, len(d.Attacks))
	for i, pair := range d.Attacks {
		attacks[i] = qbaf.Relation{Agent: pair[0], Patient: pair[1]}
	}
	supports := make([]qbaf.Relation, len(d.Supports))
	for i, pair := range d.Supports {
		supports[i] = qbaf.Relation{Agent: pair[0], Patient: pair[1]}
	}
	return qbaf.New(names, strengths, attacks, supports)
}

// ArgumentValues returns the document's arguments as qbaf.Argument
// values, descriptions included, in document order.
func (d *Document) ArgumentValues() []qbaf.Argument {
	out := make([]qbaf.Argument, len(d.Arguments))
	for i, arg := range d.Arguments {
		out[i] = qbaf.Argument{Name: arg.Name, Description: arg.Description}
	}
	return out
}

// LoadFramework is the common one-call path: read, parse and construct.
func LoadFramework(path string) (*qbaf.Framework, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	fw, err := doc.Framework()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fw, nil
}
