package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// ValidationResult holds validation results for a framework document.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Acyclic   bool   `json:"acyclic"`
	Arguments int    `json:"arguments"`
	Attacks   int    `json:"attacks"`
	Supports  int    `json:"supports"`
	Path      string `json:"path"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <framework.yaml>",
		Short: "Validate a framework document",
		Long: `Validate a framework YAML document without evaluating strengths.

Checks that the document parses, that every relation endpoint names a
declared argument, that no pair is both an attack and a support, and
that the relation graph is acyclic. Exits 1 when the framework is
structurally invalid or cyclic, 2 on unreadable or malformed files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	fw, err := loadFramework(formatter, path)
	if err != nil {
		return err
	}

	result := ValidationResult{
		Valid:     true,
		Acyclic:   fw.IsAcyclic(),
		Arguments: len(fw.Arguments()),
		Attacks:   fw.Attacks().Len(),
		Supports:  fw.Supports().Len(),
		Path:      path,
	}

	if !result.Acyclic {
		result.Valid = false
		if formatter.Format == "json" {
			if err := formatter.Error(string(qbaf.ErrCodeCyclicGraphUnsupported), "relation graph contains a cycle", result); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(formatter.Writer, "✗ %s: relation graph contains a cycle; strengths are undefined\n", path)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%s: relation graph contains a cycle", path))
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ %s: %d argument(s), %d attack(s), %d support(s)\n",
		path, result.Arguments, result.Attacks, result.Supports)
	return nil
}
