// Package errors provides predefined sentinel errors for common failure cases.
package errors

// Configuration errors.
var (
	// ErrMissingCommand indicates a run configuration has no command to execute.
	ErrMissingCommand = &SandboxError{
		Kind:   ErrConfig,
		Detail: "no command specified",
	}

	// ErrInvalidLimits indicates a resource limit is zero, negative, or
	// otherwise unusable.
	ErrInvalidLimits = &SandboxError{
		Kind:   ErrConfig,
		Detail: "invalid resource limits",
	}

	// ErrInvalidWhitelist indicates the syscall whitelist names a syscall
	// this package has no canonical ID for.
	ErrInvalidWhitelist = &SandboxError{
		Kind:   ErrConfig,
		Detail: "invalid syscall whitelist",
	}

	// ErrInvalidFilesystemPattern indicates the filesystem whitelist
	// pattern does not compile as a regular expression.
	ErrInvalidFilesystemPattern = &SandboxError{
		Kind:   ErrConfig,
		Detail: "invalid filesystem whitelist pattern",
	}
)

// Bootstrap errors (raised by the child process between fork and the
// target's exec).
var (
	// ErrRlimitFailed indicates setrlimit failed in the bootstrap child.
	ErrRlimitFailed = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to set resource limit",
	}

	// ErrRedirectFailed indicates stdio redirection failed in the
	// bootstrap child.
	ErrRedirectFailed = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to redirect standard stream",
	}

	// ErrChdirFailed indicates the working directory change failed.
	ErrChdirFailed = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to change working directory",
	}

	// ErrExecFailed indicates the target's execve failed.
	ErrExecFailed = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to exec target command",
	}

	// ErrCapabilityDrop indicates dropping capabilities before exec failed.
	ErrCapabilityDrop = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to drop capabilities",
	}

	// ErrSeccompFilter indicates installing the optional seccomp
	// prefilter failed.
	ErrSeccompFilter = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to install seccomp prefilter",
	}

	// ErrCgroupSetup indicates the optional cgroup cap could not be applied.
	ErrCgroupSetup = &SandboxError{
		Kind:   ErrBootstrap,
		Detail: "failed to set up cgroup",
	}
)

// Trace errors.
var (
	// ErrTraceLost indicates the supervisor lost contact with the tracee
	// (wait4 failed for a reason other than the tracee exiting).
	ErrTraceLost = &SandboxError{
		Kind:   ErrTrace,
		Detail: "lost contact with traced process",
	}

	// ErrRegisterAccess indicates a PTRACE_GETREGS/SETREGS call failed.
	ErrRegisterAccess = &SandboxError{
		Kind:   ErrTrace,
		Detail: "failed to access tracee registers",
	}
)

// Resource monitor errors.
var (
	// ErrResourceProbe indicates a /proc read used by a resource monitor failed.
	ErrResourceProbe = &SandboxError{
		Kind:   ErrResource,
		Detail: "failed to probe process resource usage",
	}
)
