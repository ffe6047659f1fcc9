// Package errors provides structured domain errors that map onto gRPC status
// codes with errdetails attached.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Profile errors
	CodeProfileInvalidAge           Code = "PROFILE_INVALID_AGE"
	CodeProfileInvalidWeight        Code = "PROFILE_INVALID_WEIGHT"
	CodeProfileInvalidHeight        Code = "PROFILE_INVALID_HEIGHT"
	CodeProfileInvalidGender        Code = "PROFILE_INVALID_GENDER"
	CodeProfileInvalidActivityLevel Code = "PROFILE_INVALID_ACTIVITY_LEVEL"

	// Meal errors
	CodeMealInvalidQuantity Code = "MEAL_INVALID_QUANTITY"
	CodeMealSessionClosed   Code = "MEAL_SESSION_CLOSED"

	// Workout errors
	CodeWorkoutInvalidTargetArea   Code = "WORKOUT_INVALID_TARGET_AREA"
	CodeWorkoutInvalidFitnessLevel Code = "WORKOUT_INVALID_FITNESS_LEVEL"

	// Credential errors
	CodeCredentialMissing Code = "CREDENTIAL_MISSING"
	CodeCredentialInvalid Code = "CREDENTIAL_INVALID"

	// Internal errors
	CodeInternal Code = "INTERNAL"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeProfileInvalidAge,
		CodeProfileInvalidWeight,
		CodeProfileInvalidHeight,
		CodeProfileInvalidGender,
		CodeProfileInvalidActivityLevel,
		CodeMealInvalidQuantity,
		CodeWorkoutInvalidTargetArea,
		CodeWorkoutInvalidFitnessLevel:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeMealSessionClosed:
		return codes.FailedPrecondition

	// Unauthenticated - missing or rejected credential
	case CodeCredentialMissing,
		CodeCredentialInvalid:
		return codes.Unauthenticated

	case CodeInternal:
		return codes.Internal

	default:
		return codes.Unknown
	}
}
