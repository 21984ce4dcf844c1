package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// ErrNotFound is the shared lookup-miss sentinel across layers.
var ErrNotFound = errors.New("resource not found")

// ValidationError names the offending field of a synchronously rejected
// input. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StateTransitionError names the illegal (from, to) pair, or a mutation
// attempted outside the editable states.
type StateTransitionError struct {
	From    constants.RequestState
	To      constants.RequestState
	Message string
}

func (e *StateTransitionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("state %s: %s", e.From, e.Message)
	}
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

// ExtractionKind classifies system faults in the extraction path. Unreadable
// and incorrect documents are not faults; they travel as task statuses.
type ExtractionKind string

const (
	ExtractionTechnicalFailure ExtractionKind = "TECHNICAL_FAILURE" // I/O, decode, network fault; retried with backoff
	ExtractionTimeout          ExtractionKind = "TIMEOUT"           // polling ceiling exceeded
)

// ExtractionError wraps a pipeline fault with its kind.
type ExtractionError struct {
	Kind   ExtractionKind
	Detail string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction %s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("extraction %s: %s", e.Kind, e.Detail)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

func NewExtractionError(kind ExtractionKind, detail string, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Detail: detail, Cause: cause}
}

// GraduationBlockedError lists the children still pending or rejected when
// graduation was attempted.
type GraduationBlockedError struct {
	RequestID string
	Offenders []string
}

func (e *GraduationBlockedError) Error() string {
	return fmt.Sprintf("request %s cannot graduate: %s", e.RequestID, strings.Join(e.Offenders, "; "))
}

// IntegrityError names the field whose uniqueness was violated.
type IntegrityError struct {
	Field string
	Value string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("duplicate value for %s: %q", e.Field, e.Value)
}
