package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/mindping/internal/logger"
)

var (
	// ErrNotInitialized is returned when the journal store has not been created yet.
	ErrNotInitialized = errors.New("journal not initialized, run 'mindping init' first")
	// ErrEmptyDraft is returned when a save is attempted with no text and no emoji.
	ErrEmptyDraft = errors.New("nothing to save: write some text or pick an emoji")
	// ErrInvalidPreference is returned when a preference value is not accepted.
	ErrInvalidPreference = errors.New("invalid preference")
)

// Process exit codes, so scripts can tell bad input from a broken journal.
const (
	ExitFailure        = 1
	ExitInvalidInput   = 2
	ExitNotInitialized = 3
)

// IsUserError reports whether err was caused by what the user asked for
// rather than by the journal or the machine.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyDraft) || errors.Is(err, ErrInvalidPreference)
}

// ExitCode maps err to the code the process should exit with. A nil error is 0.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotInitialized):
		return ExitNotInitialized
	case IsUserError(err):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Warning formats a non-fatal problem the user should know about
func Warning(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Warning: %v", err)
}

// Fatal reports err on stderr and exits with ExitCode(err). Rejected input is
// logged as a warning, anything else as an error. Fatal(nil) returns.
func Fatal(err error) {
	if err == nil {
		return
	}
	if IsUserError(err) {
		logger.Warn("Command rejected", "error", err)
	} else {
		logger.Error("Command execution failed", "error", err)
	}
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(ExitCode(err))
}

// Fatalf is Fatal with a formatted error; %w keeps the wrapped exit code.
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
