package jpeg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes a DecodeError per the decoder's error taxonomy.
type Kind int

const (
	// KindIO covers input source failure or unexpected EOF.
	KindIO Kind = iota + 1

	// KindInvalidMarker covers a byte that was expected to start a marker
	// but was not 0xFF-prefixed, or an unknown, length-inconsistent marker.
	KindInvalidMarker

	// KindUnsupportedProfile covers non-baseline SOF markers, precision
	// other than 8, restart markers, and chroma subsampling beyond 4:4:4.
	KindUnsupportedProfile

	// KindMalformedSegment covers a declared segment length inconsistent
	// with its payload, or out-of-range table/component indices.
	KindMalformedSegment

	// KindInvalidHuffmanCode covers 16 bits read without a matching
	// symbol, or an attempt to decode with an unconfigured table.
	KindInvalidHuffmanCode

	// KindInvalidCoefficient covers a block position overflowing 64.
	KindInvalidCoefficient
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "Io"
	case KindInvalidMarker:
		return "InvalidMarker"
	case KindUnsupportedProfile:
		return "UnsupportedProfile"
	case KindMalformedSegment:
		return "MalformedSegment"
	case KindInvalidHuffmanCode:
		return "InvalidHuffmanCode"
	case KindInvalidCoefficient:
		return "InvalidCoefficient"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DecodeError is the error type returned by Decode. Every failure the
// core pipeline reports is wrapped in one of these, so a caller can
// recover the Kind with errors.As regardless of how deep the failure
// originated.
type DecodeError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("jpeg: %s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("jpeg: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *DecodeError) Unwrap() error { return e.cause }

// newErr builds a DecodeError with no wrapped cause.
func newErr(kind Kind, format string, args ...interface{}) error {
	return &DecodeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapErr builds a DecodeError around a lower-level cause, annotating it
// with pkg/errors so %+v on the result carries a stack trace back to the
// call site that first observed the failure.
func wrapErr(kind Kind, cause error, format string, args ...interface{}) error {
	return &DecodeError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// AsDecodeError reports whether err is (or wraps) a *DecodeError, and
// returns it.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
