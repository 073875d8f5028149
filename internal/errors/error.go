package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryExport     Category = "export"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a file, such as a syntax error in goey.json.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// GoeyError is a structured error with an optional location and a hint.
type GoeyError struct {
	// Code is a unique error identifier (e.g., "G010").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where in a file the error occurred, if anywhere.
	Location *Location

	// Context contains surrounding file lines, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GoeyError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GoeyError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *GoeyError by code, so sentinel values such as
// ErrInvalidConfig match every error created from the same code.
func (e *GoeyError) Is(target error) bool {
	t, ok := target.(*GoeyError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithLocation adds a file location to the error.
func (e *GoeyError) WithLocation(file string, line, column int) *GoeyError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.ContextStart = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GoeyError) WithSuggestion(s string) *GoeyError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *GoeyError) WithDetail(d string) *GoeyError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *GoeyError) WithDetailf(format string, args ...any) *GoeyError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *GoeyError) Wrap(err error) *GoeyError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := max(targetLine-contextSize/2, 1)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine
}

// New creates a GoeyError from a registered error code.
func New(code string) *GoeyError {
	template, ok := registry[code]
	if !ok {
		return &GoeyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GoeyError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new GoeyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *GoeyError {
	return &GoeyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a GoeyError.
func FromError(err error, code string) *GoeyError {
	if err == nil {
		return nil
	}
	var ge *GoeyError
	if errors.As(err, &ge) {
		return ge
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first GoeyError in err's chain, or "".
func CodeOf(err error) string {
	var ge *GoeyError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}
