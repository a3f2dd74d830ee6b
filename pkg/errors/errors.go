// Package errors provides structured error reporting for the firstframe
// startup pipeline. Failures in this library never abort application startup;
// they are reported here and the caller proceeds without the failed artifact.
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
	// KindIO indicates a filesystem read failure other than file-not-found.
	KindIO
	// KindParsing indicates malformed input, such as an unparseable
	// product descriptor.
	KindParsing
	// KindImage indicates a splash image decode or scale failure.
	KindImage
	// KindWindow indicates a native surface construction failure.
	KindWindow
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParsing:
		return "parsing"
	case KindImage:
		return "image"
	case KindWindow:
		return "window"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StartupError represents a structured error in the startup pipeline.
type StartupError struct {
	// Op is the operation that failed (e.g., "framestate.Read").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StartupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "startup.ShowAction.Run").
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

// ErrorHandler receives errors reported by the startup pipeline.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StartupError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
