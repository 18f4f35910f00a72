package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConsistencyResult holds the verdict of a strength-consistency check.
type ConsistencyResult struct {
	Reference  string   `json:"reference"`
	Modified   string   `json:"modified"`
	Topic      []string `json:"topic"`
	Consistent bool     `json:"consistent"`
}

// NewConsistentCommand creates the consistent command.
func NewConsistentCommand(rootOpts *RootOptions) *cobra.Command {
	var topic []string

	cmd := &cobra.Command{
		Use:   "consistent <reference.yaml> <modified.yaml>",
		Short: "Check strength consistency between two frameworks",
		Long: `Check whether two frameworks agree on the relative final strength of
a pair of focal arguments.

The frameworks are consistent on the pair when both order the two
arguments the same way: both strictly less, both strictly greater, or
both equal. Both arguments must exist in both frameworks.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsistent(rootOpts, args[0], args[1], topic, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&topic, "topic", nil, "focal argument pair, e.g. --topic alpha,beta (required)")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func runConsistent(opts *RootOptions, referencePath, modifiedPath string, topic []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	if len(topic) != 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--topic must name exactly 2 arguments, got %d", len(topic)))
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

	result := ConsistencyResult{
		Reference:  referencePath,
		Modified:   modifiedPath,
		Topic:      topic,
		Consistent: consistent,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if consistent {
		fmt.Fprintf(formatter.Writer, "✓ consistent on (%s, %s)\n", topic[0], topic[1])
	} else {
		fmt.Fprintf(formatter.Writer, "✗ inconsistent on (%s, %s)\n", topic[0], topic[1])
	}
	return nil
}
