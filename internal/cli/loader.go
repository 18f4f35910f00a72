package cli

import (
	"errors"
	"fmt"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbaf"
	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/qbafio"
)

// ErrCodeIO labels errors that happen before a framework exists:
// unreadable files, malformed YAML, duplicate names.
const ErrCodeIO = "IO_ERROR"

// errorCode classifies an error for CLI output. Framework errors keep
// their own code; everything else is an I/O or parse problem.
func errorCode(err error) string {
	var fwErr *qbaf.FrameworkError
	if errors.As(err, &fwErr) {
		return string(fwErr.Code)
	}
	return ErrCodeIO
}

// exitCodeFor maps an error to a process exit code. Semantic framework
// errors mean the input parsed but describes an invalid or undecidable
// framework (exit 1); anything else is a command error (exit 2).
func exitCodeFor(err error) int {
	var fwErr *qbaf.FrameworkError
	if errors.As(err, &fwErr) {
		return ExitFailure
	}
	return ExitCommandError
}

// loadFramework reads a framework document and reports failures through
// the formatter before returning the ExitError.
func loadFramework(formatter *OutputFormatter, path string) (*qbaf.Framework, error) {
	formatter.VerboseLog("Loading framework from %s", path)
	fw, err := qbafio.LoadFramework(path)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return nil, WrapExitError(exitCodeFor(err), fmt.Sprintf("failed to load %s", path), err)
	}
	formatter.VerboseLog("Loaded %d argument(s)", len(fw.Arguments()))
	return fw, nil
}

// loadComparison reads the reference and modified framework documents
// for the two-framework commands.
func loadComparison(formatter *OutputFormatter, referencePath, modifiedPath string) (reference, modified *qbaf.Framework, err error) {
	reference, err = loadFramework(formatter, referencePath)
	if err != nil {
		return nil, nil, err
	}
	modified, err = loadFramework(formatter, modifiedPath)
	if err != nil {
		return nil, nil, err
	}
	return reference, modified, nil
}
