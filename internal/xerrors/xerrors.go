// Package xerrors defines the error-kind taxonomy shared across the core:
// every package-level error constructed anywhere in the module wraps a Kind
// so callers can branch on failure category with errors.As, regardless of
// which package raised it.
package xerrors

import "fmt"

// Kind enumerates the error categories the core can raise.
type Kind int

const (
	// InvalidParameter marks a bad algorithm parameter (k=0, epsilon<=0 or
	// NaN, tolerance<=0, probability outside (0,1], diversity outside [0,1]).
	InvalidParameter Kind = iota
	// DimensionMismatch marks a matrix view or segmenter receiving a pixel
	// slice whose length does not equal width*height.
	DimensionMismatch
	// LengthMismatch marks sampling weights/scores disagreeing in length
	// with the points they score.
	LengthMismatch
	// Empty marks clustering or sampling invoked on an empty point set when
	// the algorithm requires at least one point.
	Empty
	// ParseError marks a malformed hex color string.
	ParseError
	// ExtractionFailure wraps an underlying clustering/sampling failure
	// surfaced during palette synthesis.
	ExtractionFailure
	// SelectionFailure wraps a sampling failure surfaced from
	// Palette.FindSwatches[WithTheme].
	SelectionFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case DimensionMismatch:
		return "dimension mismatch"
	case LengthMismatch:
		return "length mismatch"
	case Empty:
		return "empty input"
	case ParseError:
		return "parse error"
	case ExtractionFailure:
		return "extraction failure"
	case SelectionFailure:
		return "selection failure"
	default:
		return "unknown"
	}
}

// Error is the concrete error type raised throughout the core. It carries a
// Kind, a message, and an optional cause, set when the error is built with
// Wrap.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// New constructs an Error of the given kind with no cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if ok := asError(err, &e); !ok {
		return false
	}
	return e.Kind == kind
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
