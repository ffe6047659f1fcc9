package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the error domain for calorie.space errors.
const Domain = "github.com/louisbranch/calorie.space"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable description
	Field    string            // Offending request field, if any
	Metadata map[string]string // Additional context
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// InvalidField creates a domain error naming the request field that failed
// validation.
func InvalidField(code Code, field, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// WithMetadata creates a domain error with metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ToGRPCStatus converts the error to a gRPC status with errdetails.
func (e *Error) ToGRPCStatus() error {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
	}
	if e.Field != "" {
		details = append(details, &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: e.Field, Description: e.Message},
			},
		})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		// If we can't attach details, return the basic status
		return st.Err()
	}
	return withDetails.Err()
}

// ToGRPC converts any error into a gRPC status error. Domain errors keep
// their code, existing status errors pass through, and everything else
// becomes Internal wrapping the cause message.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.ToGRPCStatus()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}

// Internalf wraps cause as an Internal domain error with a formatted prefix.
func Internalf(cause error, format string, args ...any) *Error {
	message := fmt.Sprintf(format, args...)
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return Wrap(CodeInternal, message, cause)
}

// FieldViolations returns the BadRequest field names carried by a gRPC
// status error, in order.
func FieldViolations(err error) []string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	var fields []string
	for _, detail := range st.Details() {
		if badRequest, ok := detail.(*errdetails.BadRequest); ok {
			for _, violation := range badRequest.GetFieldViolations() {
				fields = append(fields, violation.GetField())
			}
		}
	}
	return fields
}
