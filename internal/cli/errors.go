// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for megasena commands.
//
// Commands always return errors and let App.Run display them, except in
// JSON mode where the envelope already carries the error.

package cli

import (
	"errors"
	"fmt"
	"io"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError is used for every failure
	ExitGeneralError = 1
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError is a command failure with the message to show the user.
type CommandError struct {
	Command string // Command that failed (e.g., "status", "gerar")
	Reason  string // Message shown to the user
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return e.Command + " failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new command error.
func NewCommandError(command, reason string, err error) error {
	return &CommandError{
		Command: command,
		Reason:  reason,
		Err:     err,
	}
}

// reportedError marks an error that has already been written out, so
// App.Run only turns it into an exit code.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// IsCommandError checks if an error is a CommandError.
func IsCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err in the human-readable format.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// GetExitCode maps an error to the process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneralError
}
