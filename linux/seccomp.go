// Package linux provides seccomp BPF filter support.
package linux

import (
	"fmt"
	"syscall"
	"unsafe"

	"sandbox-go/abi"
)

// Seccomp constants.
const (
	SECCOMP_MODE_FILTER = 2
	SECCOMP_RET_TRACE   = 0x7ff00000
	SECCOMP_RET_ALLOW   = 0x7fff0000

	PR_SET_NO_NEW_PRIVS = 38
	PR_SET_SECCOMP      = 22
)

// BPF constants.
const (
	BPF_LD  = 0x00
	BPF_JMP = 0x05
	BPF_RET = 0x06
	BPF_W   = 0x00
	BPF_ABS = 0x20
	BPF_JEQ = 0x10
	BPF_K   = 0x00
)

const offsetNR = 0

// sockFprog is the BPF program structure passed to PR_SET_SECCOMP.
type sockFprog struct {
	Len    uint16
	Filter *sockFilter
}

// sockFilter is a single BPF instruction.
type sockFilter struct {
	Code uint16
	Jt   uint8
	Jf   uint8
	K    uint32
}

// InstallPrefilter installs a SECCOMP_RET_TRACE filter that lets every
// syscall named in whitelist run without a ptrace round trip
// (SECCOMP_RET_ALLOW) while trapping everything else to the tracer
// (SECCOMP_RET_TRACE), which the supervisor then observes as an ordinary
// PTRACE_EVENT_SECCOMP stop and evaluates exactly like any other
// syscall-stop. An empty whitelist traces every syscall, equivalent to
// running without the prefilter at all. Native64 syscall numbers only:
// this is a fast-path optimization, not the policy's sole enforcement
// point, so a 32-bit tracee simply traps every syscall to the tracer.
func InstallPrefilter(whitelist []string) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_PRCTL, PR_SET_NO_NEW_PRIVS, 1, 0); errno != 0 {
		return fmt.Errorf("prctl(PR_SET_NO_NEW_PRIVS): %v", errno)
	}

	filter := buildPrefilter(whitelist)
	prog := sockFprog{
		Len:    uint16(len(filter)),
		Filter: &filter[0],
	}

	_, _, errno := syscall.Syscall(syscall.SYS_PRCTL,
		PR_SET_SECCOMP,
		SECCOMP_MODE_FILTER,
		uintptr(unsafe.Pointer(&prog)))
	if errno != 0 {
		return fmt.Errorf("prctl(PR_SET_SECCOMP): %v", errno)
	}
	return nil
}

// buildPrefilter builds a "load syscall number, compare against each
// whitelisted number, ALLOW on match, TRACE otherwise" BPF program. Every
// check instruction falls through (jf=0) to the next check on a miss, and
// jumps (jt) past the remaining checks and the default TRACE return to the
// trailing ALLOW return on a hit.
func buildPrefilter(whitelist []string) []sockFilter {
	numbers := make([]uint32, 0, len(whitelist))
	for _, name := range whitelist {
		id := abi.Lookup(name)
		if id == 0 {
			continue
		}
		if nr, ok := abi.IDToNumber(abi.Native64, id); ok {
			numbers = append(numbers, uint32(nr))
		}
	}

	filter := []sockFilter{
		bpfStmt(BPF_LD|BPF_W|BPF_ABS, offsetNR),
	}
	for i, nr := range numbers {
		jt := uint8(len(numbers) - i) // remaining checks + the TRACE return below
		filter = append(filter, bpfJump(BPF_JMP|BPF_JEQ|BPF_K, nr, jt, 0))
	}
	filter = append(filter, bpfStmt(BPF_RET|BPF_K, SECCOMP_RET_TRACE))
	filter = append(filter, bpfStmt(BPF_RET|BPF_K, SECCOMP_RET_ALLOW))
	return filter
}

func bpfStmt(code uint16, k uint32) sockFilter {
	return sockFilter{Code: code, Jt: 0, Jf: 0, K: k}
}

func bpfJump(code uint16, k uint32, jt, jf uint8) sockFilter {
	return sockFilter{Code: code, Jt: jt, Jf: jf, K: k}
}
