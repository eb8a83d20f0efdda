package sql

import (
	"errors"
	"fmt"
)

// Sentinel errors for statement building failures. The typed errors below
// match these through errors.Is, so callers can branch on the category
// without unpacking the details.
var (
	// ErrMalformedJoin is returned when a join descriptor is missing its
	// type or table.
	ErrMalformedJoin = errors.New("dialect/sql: malformed join descriptor")

	// ErrMissingOperand is returned when a condition operator receives fewer
	// operands than it requires.
	ErrMissingOperand = errors.New("dialect/sql: missing condition operand")

	// ErrUnknownOperator is returned when a condition uses an operator token
	// that is not recognized.
	ErrUnknownOperator = errors.New("dialect/sql: unknown condition operator")

	// ErrInvalidConfiguration is returned by constructors when a required
	// dependency is missing or unusable. It is never returned by Build.
	ErrInvalidConfiguration = errors.New("dialect/sql: invalid configuration")
)

// MalformedJoinError reports a join descriptor that cannot be compiled.
type MalformedJoinError struct {
	Index int    // position of the descriptor in the join list
	Field string // "type" or "table"
}

// Error returns the error string.
func (e *MalformedJoinError) Error() string {
	return fmt.Sprintf("dialect/sql: join descriptor %d is missing its %s", e.Index, e.Field)
}

// Is reports whether the target matches ErrMalformedJoin.
func (e *MalformedJoinError) Is(err error) bool {
	return err == ErrMalformedJoin
}

// IsMalformedJoin returns true if the error reports a malformed join descriptor.
func IsMalformedJoin(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedJoinError
	return errors.As(err, &e) || errors.Is(err, ErrMalformedJoin)
}

// MissingOperandError reports a condition operator invoked with fewer
// operands than it requires.
type MissingOperandError struct {
	Operator string // normalized operator token
	Want     int    // number of operands the operator requires
	Got      int    // number of operands supplied
}

// Error returns the error string.
func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("dialect/sql: operator %s requires %d operands, got %d", e.Operator, e.Want, e.Got)
}

// Is reports whether the target matches ErrMissingOperand.
func (e *MissingOperandError) Is(err error) bool {
	return err == ErrMissingOperand
}

// IsMissingOperand returns true if the error reports a missing condition operand.
func IsMissingOperand(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingOperandError
	return errors.As(err, &e) || errors.Is(err, ErrMissingOperand)
}

// UnknownOperatorError reports a condition operator token that is not part of
// the supported operator set.
type UnknownOperatorError struct {
	Operator string // the unrecognized token, case-normalized
}

// Error returns the error string.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("dialect/sql: unknown operator %q", e.Operator)
}

// Is reports whether the target matches ErrUnknownOperator.
func (e *UnknownOperatorError) Is(err error) bool {
	return err == ErrUnknownOperator
}

// IsUnknownOperator returns true if the error reports an unknown condition operator.
func IsUnknownOperator(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownOperatorError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownOperator)
}

// InvalidConfigurationError reports a missing or unusable dependency at
// construction time.
type InvalidConfigurationError struct {
	Component string // component being constructed
	Reason    string
}

// Error returns the error string.
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("dialect/sql: %s: %s", e.Component, e.Reason)
}

// Is reports whether the target matches ErrInvalidConfiguration.
func (e *InvalidConfigurationError) Is(err error) bool {
	return err == ErrInvalidConfiguration
}

// IsInvalidConfiguration returns true if the error reports an invalid configuration.
func IsInvalidConfiguration(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidConfigurationError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidConfiguration)
}
