package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"booking-console/internal/pkg/errs"
)

const (
	fieldDetail         = "detail"
	fieldNonFieldErrors = "non_field_errors"
)

// Field errors are reported in this order; any other field follows alphabetically.
var preferredFields = []string{"username", "email", "password"}

// Error is a rejection answered by the platform with an HTTP status.
type Error struct {
	Method string
	Path   string
	Status int
	Kind   error

	FieldErrors    map[string][]string
	NonFieldErrors []string
	Detail         string
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform: %s %s: status %d: %v", e.Method, e.Path, e.Status, e.Kind)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// UserMessage picks the first field error, then the first non-field error, then detail.
func (e *Error) UserMessage() string {
	for _, field := range e.fieldOrder() {
		if msgs := e.FieldErrors[field]; len(msgs) > 0 && msgs[0] != "" {
			return msgs[0]
		}
	}
	if len(e.NonFieldErrors) > 0 && e.NonFieldErrors[0] != "" {
		return e.NonFieldErrors[0]
	}
	return e.Detail
}

func (e *Error) fieldOrder() []string {
	order := make([]string, 0, len(e.FieldErrors))
	seen := make(map[string]bool, len(preferredFields))
	for _, f := range preferredFields {
		seen[f] = true
		if _, ok := e.FieldErrors[f]; ok {
			order = append(order, f)
		}
	}

	rest := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// TransportError means no HTTP answer was obtained.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("platform: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == errs.ErrTransport
}

func (e *TransportError) UserMessage() string {
	return "Network error: the booking service could not be reached."
}

// decodeErrorBody reads a DRF-style error payload. Values may be a string or a list of
// strings; anything else is ignored.
func decodeErrorBody(body []byte, e *Error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return
	}

	for key, value := range raw {
		msgs := decodeMessages(value)
		switch key {
		case fieldDetail:
			if len(msgs) > 0 {
				e.Detail = msgs[0]
			}
		case fieldNonFieldErrors:
			e.NonFieldErrors = msgs
		default:
			if len(msgs) == 0 {
				continue
			}
			if e.FieldErrors == nil {
				e.FieldErrors = make(map[string][]string)
			}
			e.FieldErrors[key] = msgs
		}
	}
}

func decodeMessages(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return compact(list)
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return compact([]string{single})
	}
	return nil
}

func compact(msgs []string) []string {
	out := msgs[:0]
	for _, m := range msgs {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
