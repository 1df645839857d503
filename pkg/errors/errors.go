// Package errors provides structured error handling for the layout engine
// and the tools built around it.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a collaborator broke the element tree contract.
	KindContract
	// KindDocument indicates a layout document could not be decoded or validated.
	KindDocument
	// KindConfig indicates a configuration error.
	KindConfig
	// KindMeasure indicates a content measurement failure (fonts, text).
	KindMeasure
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindDocument:
		return "document"
	case KindConfig:
		return "config"
	case KindMeasure:
		return "measure"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error reported by the toolkit.
type LayoutError struct {
	// Op is the operation that failed (e.g., "text.DefaultFace").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element names the element involved, if any.
	Element string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.arrange").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ContractError is the panic value used by the layout engine when the
// element tree violates its contract: cycles, excessive depth, a single-child
// container with several children, or a border region claimed twice.
// These are programming errors in the collaborator and are never returned.
type ContractError struct {
	// Op is the engine operation that detected the violation.
	Op string
	// Element describes the offending element.
	Element string
	// Reason explains the violation.
	Reason string
}

func (e *ContractError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s: contract violation on %s: %s", e.Op, e.Element, e.Reason)
	}
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Reason)
}

// DocumentError represents a validation failure in a layout document.
type DocumentError struct {
	// Path locates the node in the document (e.g., "root.children[2]").
	Path string
	// Field is the offending field, if any.
	Field string
	// Reason explains the failure.
	Reason string
}

func (e *DocumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Path, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
