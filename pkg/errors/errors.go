// Package errors defines the coded errors shared by the sigil CLI and HTTP
// service.
//
// Every failure a caller may want to react to carries a [Code]. Codes are
// grouped into a [Kind], which the service maps to an HTTP status and the
// CLI to an exit code:
//
//	INVALID_*                       KindInvalid      400 / exit 2
//	NOT_FOUND, *_NOT_FOUND,
//	ATTACHMENT_POINT                KindNotFound     404 / exit 3
//	UNSUPPORTED                     KindUnsupported  501 / exit 1
//	anything else                   KindInternal     500 / exit 1
//
// Attachment point lookups fail with their own error type in package symbol.
// It exposes a Code method returning [ErrCodeAttachmentPoint], so [GetCode]
// and [Is] treat it like an [*Error].
//
//	err := errors.New(errors.ErrCodeInvalidColor, "invalid color %q", c)
//	if errors.GetCode(err).Kind() == errors.KindInvalid {
//	    // reject the request
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSymbol Code = "INVALID_SYMBOL"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeSymbolNotFound Code = "SYMBOL_NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	ErrCodeAttachmentPoint Code = "ATTACHMENT_POINT"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by how a caller should respond.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindUnsupported
)

// Kind classifies c. Unknown and empty codes are internal.
func (c Code) Kind() Kind {
	switch {
	case strings.HasPrefix(string(c), "INVALID_"):
		return KindInvalid
	case c == ErrCodeNotFound, strings.HasSuffix(string(c), "_NOT_FOUND"), c == ErrCodeAttachmentPoint:
		return KindNotFound
	case c == ErrCodeUnsupported:
		return KindUnsupported
	default:
		return KindInternal
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

type coder interface {
	Code() Code
}

// Is reports whether any error in err's chain carries code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the first [*Error], or other error with a
// Code method, in err's chain. It returns "" when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns the message of an [*Error] without its code prefix,
// or err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
