package rpc

import (
	"errors"
	"net/http"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
)

// Code is a machine-readable error code carried in error responses.
type Code string

const (
	CodeBadRequest          Code = "BAD_REQUEST"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeNotFound            Code = "NOT_FOUND"
	CodePayloadTooLarge     Code = "PAYLOAD_TOO_LARGE"
	CodeInternalServerError Code = "INTERNAL_SERVER_ERROR"
)

// Status returns the HTTP status for the code.
func (c Code) Status() int {
	switch c {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Message is the default human-readable message for the code.
func (c Code) Message() string {
	switch c {
	case CodeBadRequest:
		return "Bad request"
	case CodeUnauthorized:
		return "Unauthorized"
	case CodeNotFound:
		return "Not found"
	case CodePayloadTooLarge:
		return "Request body too large"
	default:
		return "Internal server error"
	}
}

// Error is a procedure failure that maps onto an HTTP error response.
// Gates and handlers return it to choose the status the caller sees.
type Error struct {
	Code    Code
	Message string
	Issues  []dto.Issue
	cause   error
}

// NewError creates an Error with the code's default message when message is empty.
func NewError(code Code, message string) *Error {
	if message == "" {
		message = code.Message()
	}
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause, kept for logs and never sent to clients.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status of the error.
func (e *Error) Status() int {
	return e.Code.Status()
}

// Response converts the error into its wire representation.
func (e *Error) Response() dto.ErrorResponse {
	return dto.ErrorResponse{
		Error:  e.Message,
		Code:   string(e.Code),
		Issues: e.Issues,
	}
}

// Predefined errors returned by the HTTP adapter.
var (
	ErrUnauthorized = NewError(CodeUnauthorized, "")
	ErrInvalidBody  = NewError(CodeBadRequest, "Invalid request body")
	ErrBodyTooLarge = NewError(CodePayloadTooLarge, "")
)

const (
	inputValidationMessage  = "Input validation failed"
	outputValidationMessage = "Output validation failed"
)

// AsError converts any error into an *Error.
// Errors that are not *Error become INTERNAL_SERVER_ERROR with the original as cause.
func AsError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return NewError(CodeInternalServerError, "").Wrap(err)
}
