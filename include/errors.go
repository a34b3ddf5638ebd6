package include

import (
	"fmt"
	"strings"
)

// CircularReferenceError reports an include of a document that is one of its
// own ancestors.
type CircularReferenceError struct {
	// Path is the canonical path included a second time.
	Path string
	// Chain lists the canonical include chain from the root, ending with Path.
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	if len(e.Chain) == 0 {
		return "circular reference: " + e.Path
	}

	return fmt.Sprintf("circular reference: %s (%s)", e.Path, strings.Join(e.Chain, " -> "))
}

// IncludeError reports a directive target that cannot be included.
type IncludeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *IncludeError) Error() string {
	msg := fmt.Sprintf("failed to include %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *IncludeError) Unwrap() error {
	return e.Err
}

// NoParentError reports a document path without a containing directory.
type NoParentError struct {
	Path string
}

func (e *NoParentError) Error() string {
	return "unable to get parent directory of " + e.Path
}

// MergeError reports a glob match whose content cannot be merged with the
// matches before it.
type MergeError struct {
	// Path is the matched file that failed to merge.
	Path string
	Err  error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("failed to merge %s: %v", e.Path, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// ParsingError reports a file that is not a single valid YAML or JSON document.
type ParsingError struct {
	Path string
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// InvalidStringValueError reports a directive whose payload is not a string.
type InvalidStringValueError struct {
	Tag string
	// Value describes the payload found instead.
	Value string
	// Path and Line locate the directive.
	Path string
	Line int
}

func (e *InvalidStringValueError) Error() string {
	at := ""
	if e.Path != "" {
		at = fmt.Sprintf(" at %s:%d", e.Path, e.Line)
	}

	return fmt.Sprintf("%s expects a string value, got %s%s", e.Tag, e.Value, at)
}

// IOError reports a file that cannot be read or decoded.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
