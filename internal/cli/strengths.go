package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StrengthsResult holds the evaluated strengths of one framework.
type StrengthsResult struct {
	Path             string             `json:"path"`
	InitialStrengths map[string]float64 `json:"initial_strengths"`
	FinalStrengths   map[string]float64 `json:"final_strengths"`
}

// NewStrengthsCommand creates the strengths command.
func NewStrengthsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strengths <framework.yaml>",
		Short: "Compute final strengths",
		Long: `Compute the final strength of every argument in a framework.

Each argument's final strength is its initial strength minus the final
strengths of its attackers plus the final strengths of its supporters.
The relation graph must be acyclic.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrengths(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runStrengths(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	final, err := fw.FinalStrengths()
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to compute strengths", err)
	}

	result := StrengthsResult{
		Path:             path,
		InitialStrengths: fw.InitialStrengths(),
		FinalStrengths:   final,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, name := range fw.Arguments() {
		fmt.Fprintf(formatter.Writer, "%s\t%v\t%v\n", name, result.InitialStrengths[name], final[name])
	}
	return nil
}
