package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrConfig, "config error"},
		{ErrBootstrap, "bootstrap error"},
		{ErrTrace, "trace error"},
		{ErrPolicy, "policy error"},
		{ErrResource, "resource error"},
		{ErrInternal, "internal error"},
		{ErrorKind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSandboxError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SandboxError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "<nil>",
		},
		{
			name: "full error",
			err: &SandboxError{
				Op:     "bootstrap",
				Kind:   ErrBootstrap,
				Detail: "setrlimit failed",
				Err:    fmt.Errorf("operation not permitted"),
			},
			expected: "bootstrap: setrlimit failed: operation not permitted",
		},
		{
			name: "kind only",
			err: &SandboxError{
				Kind: ErrTrace,
			},
			expected: "trace error",
		},
		{
			name: "with underlying error",
			err: &SandboxError{
				Op:   "trace",
				Kind: ErrTrace,
				Err:  fmt.Errorf("no such process"),
			},
			expected: "trace: trace error: no such process",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("SandboxError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSandboxError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &SandboxError{
		Op:   "test",
		Kind: ErrInternal,
		Err:  underlying,
	}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	var nilErr *SandboxError
	if got := nilErr.Unwrap(); got != nil {
		t.Errorf("nil.Unwrap() = %v, want nil", got)
	}
}

func TestSandboxError_Is(t *testing.T) {
	err1 := &SandboxError{Kind: ErrConfig, Op: "test1"}
	err2 := &SandboxError{Kind: ErrConfig, Op: "test2"}
	err3 := &SandboxError{Kind: ErrTrace, Op: "test3"}

	if !err1.Is(err2) {
		t.Error("err1.Is(err2) should be true (same kind)")
	}
	if err1.Is(err3) {
		t.Error("err1.Is(err3) should be false (different kind)")
	}
	if err1.Is(fmt.Errorf("some error")) {
		t.Error("err1.Is(fmt.Errorf(...)) should be false")
	}

	var nilErr *SandboxError
	if !nilErr.Is(nil) {
		t.Error("nil.Is(nil) should be true")
	}
}

func TestNew(t *testing.T) {
	err := New(ErrConfig, "validate", "command is empty")

	if err.Kind != ErrConfig {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrConfig)
	}
	if err.Op != "validate" {
		t.Errorf("Op = %q, want %q", err.Op, "validate")
	}
	if err.Detail != "command is empty" {
		t.Errorf("Detail = %q, want %q", err.Detail, "command is empty")
	}
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := Wrap(underlying, ErrTrace, "attach")

	if err.Err != underlying {
		t.Error("Wrapped error should preserve underlying error")
	}
	if err.Kind != ErrTrace {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrTrace)
	}
	if err.Op != "attach" {
		t.Errorf("Op = %q, want %q", err.Op, "attach")
	}
}

func TestWrapWithDetail(t *testing.T) {
	underlying := fmt.Errorf("syscall failed")
	err := WrapWithDetail(underlying, ErrBootstrap, "seccomp", "invalid architecture")

	if err.Detail != "invalid architecture" {
		t.Errorf("Detail = %q, want %q", err.Detail, "invalid architecture")
	}
}

func TestIsKind(t *testing.T) {
	err := &SandboxError{Kind: ErrConfig}
	wrapped := fmt.Errorf("wrapped: %w", err)

	if !IsKind(err, ErrConfig) {
		t.Error("IsKind(err, ErrConfig) should be true")
	}
	if !IsKind(wrapped, ErrConfig) {
		t.Error("IsKind(wrapped, ErrConfig) should be true")
	}
	if IsKind(err, ErrTrace) {
		t.Error("IsKind(err, ErrTrace) should be false")
	}
	if IsKind(fmt.Errorf("plain error"), ErrConfig) {
		t.Error("IsKind(plain error, ErrConfig) should be false")
	}
}

func TestGetKind(t *testing.T) {
	err := &SandboxError{Kind: ErrResource}
	wrapped := fmt.Errorf("wrapped: %w", err)

	kind, ok := GetKind(err)
	if !ok || kind != ErrResource {
		t.Errorf("GetKind(err) = (%v, %v), want (%v, true)", kind, ok, ErrResource)
	}

	kind, ok = GetKind(wrapped)
	if !ok || kind != ErrResource {
		t.Errorf("GetKind(wrapped) = (%v, %v), want (%v, true)", kind, ok, ErrResource)
	}

	_, ok = GetKind(fmt.Errorf("plain error"))
	if ok {
		t.Error("GetKind(plain error) should return false")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *SandboxError
		kind ErrorKind
	}{
		{"ErrMissingCommand", ErrMissingCommand, ErrConfig},
		{"ErrInvalidLimits", ErrInvalidLimits, ErrConfig},
		{"ErrInvalidWhitelist", ErrInvalidWhitelist, ErrConfig},
		{"ErrRlimitFailed", ErrRlimitFailed, ErrBootstrap},
		{"ErrExecFailed", ErrExecFailed, ErrBootstrap},
		{"ErrTraceLost", ErrTraceLost, ErrTrace},
		{"ErrResourceProbe", ErrResourceProbe, ErrResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("%s.Kind = %v, want %v", tt.name, tt.err.Kind, tt.kind)
			}
			wrapped := Wrap(fmt.Errorf("underlying"), tt.kind, "test")
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) should be true", tt.name)
			}
		})
	}
}

func TestErrorChain(t *testing.T) {
	underlying := fmt.Errorf("file not found")
	err1 := Wrap(underlying, ErrConfig, "config.Load")
	err2 := fmt.Errorf("run failed: %w", err1)

	if !errors.Is(err2, ErrMissingCommand) {
		t.Error("errors.Is should find ErrMissingCommand in chain (same Kind)")
	}

	var serr *SandboxError
	if !errors.As(err2, &serr) {
		t.Error("errors.As should find SandboxError in chain")
	}
	if serr.Op != "config.Load" {
		t.Errorf("serr.Op = %q, want %q", serr.Op, "config.Load")
	}

	if errors.Unwrap(err1) != underlying {
		t.Error("Unwrap should return underlying error")
	}
}
