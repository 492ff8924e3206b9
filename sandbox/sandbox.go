// Package sandbox implements the supervised-execution engine: it forks a
// target program under ptrace, enforces a syscall/filesystem policy and
// wall-time/memory limits, and reduces the run to a single Verdict.
package sandbox

// Verdict is the closed outcome enumeration of one supervised run. Its
// numeric values follow original_source/sandbox_linux.hpp's Verdict enum
// so that a caller embedding this package alongside the original judge's
// wire format sees the same integers.
type Verdict int

const (
	None Verdict = iota
	AC
	WA
	ML
	TL
	RE
	CE
	RV
	ER
)

// String returns the two-letter verdict code.
func (v Verdict) String() string {
	switch v {
	case AC:
		return "AC"
	case WA:
		return "WA"
	case ML:
		return "ML"
	case TL:
		return "TL"
	case RE:
		return "RE"
	case CE:
		return "CE"
	case RV:
		return "RV"
	case ER:
		return "ER"
	default:
		return "NO"
	}
}

// Config is the run configuration accepted by Run, equivalent to
// original_source/sandbox_linux.hpp's Config and spec.md's Run
// Configuration record. The *MS/*MB/Nproc fields use -1 for unset;
// their Go zero value is 0, so config.Default builds a Config with all
// three at -1.
type Config struct {
	// TimeMS is the wall-clock cap in milliseconds. -1 means unset; it
	// also drives an RLIMIT_CPU guard of roughly 2-3x the wall seconds,
	// a secondary bound behind the wall monitor, which fires first for a
	// spinning tracee.
	TimeMS int `json:"time"`
	// MemoryMB is the RSS cap in megabytes. -1 means unset; it also
	// drives RLIMIT_DATA/RLIMIT_AS set to MemoryMB+10.
	MemoryMB int `json:"memory"`
	// Nproc is the RLIMIT_NPROC cap. -1 means unset.
	Nproc int `json:"nproc"`

	// Dir is the working directory the bootstrap child chdirs into
	// before exec. Empty means no chdir.
	Dir string `json:"dir,omitempty"`

	// Cmd is the executable to run. Argv[0] defaults to Cmd when Argv
	// is empty.
	Cmd  string   `json:"cmd"`
	Argv []string `json:"argv,omitempty"`
	Envp []string `json:"envp,omitempty"`

	// Stdin, Stdout, Stderr name files to redirect the target's standard
	// streams to. An empty field closes that stream instead.
	Stdin  string `json:"stdin,omitempty"`
	Stdout string `json:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty"`

	// SyscallWhitelist names the syscalls (by canonical name, see
	// package abi) the target may invoke. An empty list allows every
	// syscall past the first-syscall guard.
	SyscallWhitelist []string `json:"syscall_whitelist,omitempty"`

	// FilesystemWhitelist is a regular expression tested against the
	// absolute path of every path argument to a path-taking syscall. An
	// empty pattern allows every path.
	FilesystemWhitelist string `json:"filesystem_whitelist,omitempty"`

	// SeccompPrefilter installs an optional SECCOMP_RET_TRACE BPF
	// program in the bootstrap child that lets whitelisted syscalls run
	// without a ptrace round trip, trapping only the rest to the
	// tracer. Off by default so the per-syscall-stop path described by
	// this package's design is exercised unconditionally.
	SeccompPrefilter bool `json:"seccomp_prefilter,omitempty"`

	// DropCapabilities bounds the target to an empty capability set
	// before exec, as defense in depth beyond the rlimit/policy model.
	DropCapabilities bool `json:"drop_capabilities,omitempty"`

	// UseCgroup additionally caps memory.max/pids.max via a cgroup v2
	// controller at CgroupPath, best-effort: failures to set it up are
	// logged and ignored rather than failing the run, since it is a
	// supplementary guard on top of the rlimit-based bounds.
	UseCgroup  bool   `json:"use_cgroup,omitempty"`
	CgroupPath string `json:"cgroup_path,omitempty"`
}
