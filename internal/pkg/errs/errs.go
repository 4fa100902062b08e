package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Thin seam over cockroachdb/errors so call sites never import it directly.

// Wrap annotates err with msg, keeping the original stack. Nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates a sentinel error with a stack trace attached.
func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is without losing err's message
// or stack. Used to map domain errors onto usecase sentinels.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

// markedError carries the mark in the unwrap chain itself, so the standard
// library's errors.Is matches both the cause chain and the mark.
type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Unwrap() []error {
	return []error{e.cause, e.mark}
}

// Format delegates to the cause so %+v still renders its stack.
func (e *markedError) Format(f fmt.State, verb rune) {
	if formatter, ok := e.cause.(fmt.Formatter); ok {
		formatter.Format(f, verb)
		return
	}
	fmt.Fprintf(f, "%v", e.cause)
}

// ExtractStackLines renders the error with its stack and returns at most
// maxLines lines, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	rendered := fmt.Sprintf("%+v", err)
	lines := strings.Split(rendered, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
