package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeProfileInvalidAge, codes.InvalidArgument},
		{CodeProfileInvalidActivityLevel, codes.InvalidArgument},
		{CodeMealInvalidQuantity, codes.InvalidArgument},
		{CodeWorkoutInvalidTargetArea, codes.InvalidArgument},
		{CodeMealSessionClosed, codes.FailedPrecondition},
		{CodeCredentialMissing, codes.Unauthenticated},
		{CodeCredentialInvalid, codes.Unauthenticated},
		{CodeInternal, codes.Internal},
		{CodeUnknown, codes.Unknown},
		{Code("SOMETHING_ELSE"), codes.Unknown},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(CodeProfileInvalidAge, "Age must be greater than 0"))
	if !stderrors.Is(err, New(CodeProfileInvalidAge, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeProfileInvalidHeight, "")) {
		t.Fatal("expected errors.Is to reject different code")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(CodeInternal, "boom", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := InvalidField(CodeProfileInvalidWeight, "weight", "Weight must be greater than 0").ToGRPCStatus()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status, got %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	if st.Message() != "Weight must be greater than 0" {
		t.Fatalf("message = %q", st.Message())
	}

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.ErrorInfo); ok {
			info = d
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.GetReason() != string(CodeProfileInvalidWeight) || info.GetDomain() != Domain {
		t.Fatalf("error info = %+v", info)
	}

	fields := FieldViolations(err)
	if len(fields) != 1 || fields[0] != "weight" {
		t.Fatalf("field violations = %v, want [weight]", fields)
	}
}

func TestToGRPCStatusWithoutFieldOmitsBadRequest(t *testing.T) {
	err := New(CodeMealSessionClosed, "meal session is closed").ToGRPCStatus()
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
	if fields := FieldViolations(err); len(fields) != 0 {
		t.Fatalf("field violations = %v, want none", fields)
	}
}

func TestToGRPC(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if err := ToGRPC(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
	t.Run("domain", func(t *testing.T) {
		err := ToGRPC(fmt.Errorf("ctx: %w", New(CodeCredentialInvalid, "Invalid or missing API key")))
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
		}
	})
	t.Run("status passthrough", func(t *testing.T) {
		in := status.Error(codes.Canceled, "gone")
		if got := ToGRPC(in); status.Code(got) != codes.Canceled {
			t.Fatalf("code = %v, want %v", status.Code(got), codes.Canceled)
		}
	})
	t.Run("plain error", func(t *testing.T) {
		err := ToGRPC(stderrors.New("unexpected"))
		st, _ := status.FromError(err)
		if st.Code() != codes.Internal || st.Message() != "unexpected" {
			t.Fatalf("status = %v %q, want Internal unexpected", st.Code(), st.Message())
		}
	})
}

func TestInternalf(t *testing.T) {
	cause := stderrors.New("nan")
	err := Internalf(cause, "Error calculating calories")
	if err.Message != "Error calculating calories: nan" {
		t.Fatalf("message = %q", err.Message)
	}
	if err.Code != CodeInternal {
		t.Fatalf("code = %v, want %v", err.Code, CodeInternal)
	}
}
