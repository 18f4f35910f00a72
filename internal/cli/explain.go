package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
)

// Explanation kinds accepted by the --kind flag.
const (
	KindSSI = "ssi"
	KindCSI = "csi"
)

// ExplainResult holds the minimal explanations for an inconsistency.
type ExplainResult struct {
	Reference    string     `json:"reference"`
	Modified     string     `json:"modified"`
	Topic        []string   `json:"topic"`
	Kind         string     `json:"kind"`
	Consistent   bool       `json:"consistent"`
	Explanations [][]string `json:"explanations"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		topic []string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "explain <reference.yaml> <modified.yaml>",
		Short: "Find minimal explanations for a strength inconsistency",
		Long: `Find the minimal sets of arguments responsible for a strength
inconsistency between two frameworks.

An SSI explanation is a set of arguments that is sufficient on its own
to produce the inconsistency: reverting everything outside the set back
to the reference framework still leaves the focal ordering disagreeing.
A CSI explanation additionally requires that reverting exactly the set
restores agreement. When the frameworks already agree, the empty set is
the only explanation.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(rootOpts, args[0], args[1], topic, kind, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&topic, "topic", nil, "focal argument pair, e.g. --topic alpha,beta (required)")
	cmd.Flags().StringVar(&kind, "kind", KindSSI, "explanation kind (ssi|csi)")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func runExplain(opts *RootOptions, referencePath, modifiedPath string, topic []string, kind string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	if len(topic) != 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--topic must name exactly 2 arguments, got %d", len(topic)))
	}
	if kind != KindSSI && kind != KindCSI {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid kind %q: must be %q or %q", kind, KindSSI, KindCSI))
	}

	reference, modified, err := loadComparison(formatter, referencePath, modifiedPath)
	if err != nil {
		return err
	}

	consistent, err := modified.StrengthConsistent(reference, topic[0], topic[1])
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to check consistency", err)
	}

	var sets []qbaf.ArgSet
	if kind == KindSSI {
		sets, err = modified.MinimalSSIExplanations(reference, topic[0], topic[1])
	} else {
		sets, err = modified.MinimalCSIExplanations(reference, topic[0], topic[1])
	}
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to compute explanations", err)
	}

	result := ExplainResult{
		Reference:    referencePath,
		Modified:     modifiedPath,
		Topic:        topic,
		Kind:         kind,
		Consistent:   consistent,
		Explanations: setsToNames(sets),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if consistent {
		fmt.Fprintf(formatter.Writer, "✓ consistent on (%s, %s); only the empty set explains\n", topic[0], topic[1])
		return nil
	}
	if len(sets) == 0 {
		fmt.Fprintf(formatter.Writer, "no %s explanations found for (%s, %s)\n", strings.ToUpper(kind), topic[0], topic[1])
		return nil
	}
	fmt.Fprintf(formatter.Writer, "minimal %s explanations for (%s, %s):\n", strings.ToUpper(kind), topic[0], topic[1])
	for _, set := range sets {
		fmt.Fprintf(formatter.Writer, "  %s\n", set.String())
	}
	return nil
}

// setsToNames flattens explanation sets to sorted name lists for JSON.
func setsToNames(sets []qbaf.ArgSet) [][]string {
	out := make([][]string, len(sets))
	for i, set := range sets {
		out[i] = set.Names()
	}
	return out
}
