// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/luavend/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "malformed_directive_error",
			code:    errors.ErrMalformedDirective,
			message: "missing field",
			wantStr: "[MALFORMED_DIRECTIVE] missing field",
		},
		{
			name:    "conflict_error",
			code:    errors.ErrSubstitutionConflict,
			message: "literal maps twice",
			wantStr: "[SUBSTITUTION_CONFLICT] literal maps twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrRegistryAccess, "cannot open registry root")

	if err.Wrapped != inner {
		t.Error("Wrap() should keep the inner error")
	}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	want := "[REGISTRY_ACCESS] cannot open registry root: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrRegistryAccess, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrPathNotAbsolute, "path %q is relative", "a/b")

	if !errors.IsErrorCode(err, errors.ErrPathNotAbsolute) {
		t.Error("IsErrorCode should match the code")
	}
	if errors.IsErrorCode(err, errors.ErrInternal) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrInternal) {
		t.Error("IsErrorCode should be false for non-coded errors")
	}

	// Codes survive wrapping.
	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("outermost code should win")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigLoad, "x")); got != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigLoad)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSubstitutionConflict, "conflict").
		WithDetail("from", "a").
		WithDetail("to_first", "x")

	details := errors.GetErrorDetails(err)
	if details["from"] != "a" || details["to_first"] != "x" {
		t.Errorf("details not recorded: %v", details)
	}
}
