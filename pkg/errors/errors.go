// Package errors provides structured error reporting for the attributed
// library.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindFont indicates a font parsing or registration error.
	KindFont
	// KindConfig indicates a tool configuration error.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the attributed library.
type Error struct {
	// Op is the operation that failed (e.g., "graphics.ParseFace").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the attributed library.
type Handler interface {
	// Handle is called when an error is reported.
	Handle(err *Error)
}
