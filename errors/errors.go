// Package errors provides constant error values and positional errors for yaml nodes.
package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSeparator separates the message of an Error from the cause it wraps.
const ErrSeparator = " -- "

// Error is a string based error type allowing packages to declare const sentinel errors.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target is this Error or this Error wrapping a cause.
func (s Error) Is(target error) bool {
	return s.Error() == target.Error() || strings.HasPrefix(target.Error(), s.Error()+ErrSeparator)
}

// As sets target to this Error if target is an *Error.
func (s Error) As(target any) bool {
	v := reflect.ValueOf(target).Elem()
	if v.Type().Name() == "Error" && v.CanSet() {
		v.SetString(string(s))
		return true
	}
	return false
}

// Wrap returns an error carrying this Error's message with err as its cause.
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

// Wrapf is Wrap with a formatted cause.
func (s Error) Wrapf(format string, args ...any) error {
	return s.Wrap(fmt.Errorf(format, args...))
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeparator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) As(target any) bool {
	return Error(w.msg).As(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// NodeError is an error raised while handling a specific yaml node.
type NodeError struct {
	Line   int
	Column int
	Err    error
}

// AtNode attaches the position of node to err. A nil node or nil err leaves err unchanged.
func AtNode(err error, node *yaml.Node) error {
	if err == nil || node == nil {
		return err
	}

	// keep the innermost position
	var ne *NodeError
	if errors.As(err, &ne) {
		return err
	}

	return &NodeError{
		Line:   node.Line,
		Column: node.Column,
		Err:    err,
	}
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// The below are just wrappers as we are stealing the namespace of the errors package

// Is checks if err is equivalent to target
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}
