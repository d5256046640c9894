package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"hdrfmt/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeValidation    ExitCode = 6
	ExitCodeFileOperation ExitCode = 7
	ExitCodeClipboard     ExitCode = 11
	ExitCodeServer        ExitCode = 12
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgReadInput     = "Failed to read header input"
	ErrMsgRender        = "Failed to render headers"
	ErrMsgClipboardCopy = "Failed to copy to clipboard"
	ErrMsgClipboardRead = "Failed to read from clipboard"
	ErrMsgServe         = "Web server failed"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap keeps the code and suggestion of a wrapped *Error; anything else
// becomes ExitCodeGeneral.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn logs err, prints it to stderr and returns the exit code the
// process should terminate with.
func HandleReturn(err error) ExitCode {
	return HandleReturnTo(os.Stderr, err)
}

func HandleReturnTo(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Error()
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Int("exit_code", int(exitCode)).Msg(e.Message)
		} else {
			logger.Error().Int("exit_code", int(exitCode)).Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(w, line)
			} else {
				if strings.HasPrefix(line, "  ") {
					cyan.Fprintln(w, line)
				} else {
					fmt.Fprintln(w, "           "+line)
				}
			}
		}
	}

	fmt.Fprintln(w)

	return exitCode
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file (hdrfmt config path) or the HDRFMT_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

// NoInputError is returned when stdin is a terminal and no other source was
// given, instead of blocking on a read.
func NoInputError() *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: "No header input given",
		Suggestion: "Pass a file, pipe text on stdin, or read the clipboard:\n" +
			"  hdrfmt format headers.txt\n" +
			"  pbpaste | hdrfmt format\n" +
			"  hdrfmt format --paste",
	}
}

func FileError(path string, err error) *Error {
	return &Error{
		Code:       ExitCodeFileOperation,
		Message:    fmt.Sprintf("Failed to read '%s'", path),
		Underlying: err,
	}
}

func ClipboardError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    message,
		Underlying: err,
		Suggestion: "A clipboard utility is required on Linux (xclip, xsel or wl-clipboard).",
	}
}

func ServerError(err error) *Error {
	return &Error{
		Code:       ExitCodeServer,
		Message:    ErrMsgServe,
		Underlying: err,
	}
}
