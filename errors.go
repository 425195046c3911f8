package main

import (
	"errors"
	"fmt"
)

type errorKind int

const (
	errKindConfig errorKind = iota + 1
	errKindParse
	errKindCollision
	errKindNetwork
)

func (k errorKind) String() string {
	switch k {
	case errKindConfig:
		return "config"
	case errKindParse:
		return "parse"
	case errKindCollision:
		return "collision"
	case errKindNetwork:
		return "network"
	}
	return "unknown"
}

// runError is the only error type that crosses component boundaries. The
// kind is assigned once at the failure point and never re-classified.
type runError struct {
	kind errorKind
	msg  string
	err  error
}

func (e *runError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *runError) Unwrap() error {
	return e.err
}

func configError(format string, a ...any) error {
	return &runError{kind: errKindConfig, msg: fmt.Sprintf(format, a...)}
}

func parseError(err error, format string, a ...any) error {
	return &runError{kind: errKindParse, msg: fmt.Sprintf(format, a...), err: err}
}

func collisionError(format string, a ...any) error {
	return &runError{kind: errKindCollision, msg: fmt.Sprintf(format, a...)}
}

func networkError(err error, format string, a ...any) error {
	return &runError{kind: errKindNetwork, msg: fmt.Sprintf(format, a...), err: err}
}

func errorIsKind(err error, kind errorKind) bool {
	var re *runError
	return errors.As(err, &re) && re.kind == kind
}
