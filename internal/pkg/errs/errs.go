package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that errors.Is(result, markErr) holds while err stays in the chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{error: cr.Mark(err, markErr), mark: markErr}
}

type marked struct {
	error
	mark error
}

func (m *marked) Unwrap() error        { return m.error }
func (m *marked) Is(target error) bool { return target == m.mark }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// UserMessenger is implemented by errors that know how they should read in a notice.
type UserMessenger interface {
	UserMessage() string
}

// Message returns the most specific human-readable text carried by err, or fallback.
// Precedence is decided by the error itself (see platform.Error): field error, non-field error,
// server detail, transport message.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var m UserMessenger
	if errors.As(err, &m) {
		if msg := strings.TrimSpace(m.UserMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}

// LocalError is raised before any request leaves the process. It matches its kind and,
// through Unwrap, the rule that produced it.
type LocalError struct {
	kind  error
	cause error
	msg   string
}

func NewLocal(kind error, msg string) error {
	return &LocalError{kind: kind, msg: msg}
}

func NewLocalCause(kind, cause error, msg string) error {
	return &LocalError{kind: kind, cause: cause, msg: msg}
}

func (e *LocalError) Error() string       { return e.kind.Error() + ": " + e.msg }
func (e *LocalError) UserMessage() string { return e.msg }
func (e *LocalError) Unwrap() error       { return e.cause }
func (e *LocalError) Is(target error) bool {
	return target == e.kind
}
