package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Externally visible failures carry a stable,
// human-readable cause string; stack traces stay in the logs.
var (
	// ErrUnsupportedFormat is a client-facing rejection (400-equivalent) for a
	// declared file extension the extractor does not handle.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrResponseParse means the model reply could not be parsed after the one
	// permitted repair attempt; it fails the whole batch.
	ErrResponseParse = errors.New("failed to parse model response")
	// ErrExternalCall is a transport-level failure against an external API,
	// fatal to the current operation.
	ErrExternalCall = errors.New("external call failed")
	// ErrConfiguration means required credentials or settings are missing.
	ErrConfiguration = errors.New("configuration error")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
