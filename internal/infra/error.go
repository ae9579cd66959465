package infra

import (
	"errors"
	"log/slog"

	"booking-console/internal/pkg/errs"
)

type StoreErrorKind string

const (
	KindConnection StoreErrorKind = "connection"
	KindQuery      StoreErrorKind = "query"
	KindInvalidKey StoreErrorKind = "invalid_key"
)

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
		err = errs.Wrap(err, msg)
	}

	slogger.Error("Credential store error: "+msg, logArgs...)

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
