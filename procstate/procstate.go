// Package procstate provides a read/write view over a traced process's
// registers: its detected ABI personality, the syscall it is currently
// stopped in, and that syscall's arguments.
package procstate

import (
	"fmt"
	"syscall"

	"sandbox-go/abi"
)

// State is a snapshot of one ptrace-stop's registers for a single tracee.
// It is cheap to construct and is not kept across stops: personality can
// change between syscalls (a 64-bit loader exec'ing a 32-bit target), so
// every stop gets its own Snapshot.
type State struct {
	pid         int
	personality abi.Personality
	regs        syscall.PtraceRegs
}

// Snapshot reads the tracee's current registers via PTRACE_GETREGS and
// classifies its personality from the CS/DS segment selectors, exactly as
// original_source/process_state_linux.cpp's constructor does.
func Snapshot(pid int) (*State, error) {
	var regs syscall.PtraceRegs
	if err := syscall.PtraceGetRegs(pid, &regs); err != nil {
		return nil, fmt.Errorf("procstate: get regs for pid %d: %w", pid, err)
	}
	return &State{pid: pid, personality: personalityOf(regs), regs: regs}, nil
}

// personalityOf classifies the x86_64/i386/x32 personality from CS/DS,
// matching process_state_linux.cpp: CS 0x23 is a pure 32-bit (compat32)
// code segment; CS 0x33 with DS 0x2b is the x32 combination; CS 0x33
// otherwise is native 64-bit.
func personalityOf(regs syscall.PtraceRegs) abi.Personality {
	switch regs.Cs {
	case 0x23:
		return abi.Compat32
	case 0x33:
		if regs.Ds == 0x2b {
			return abi.X32
		}
		return abi.Native64
	default:
		// Unrecognized segment selector: treat as native64, the safest
		// default to run the (unchanged) native table against.
		return abi.Native64
	}
}

// New builds a State directly from a known pid and personality, without
// reading registers. Useful for constructing a syscall to inject (set via
// SetSyscall/SetParam, then WriteBack) rather than one observed from a
// live stop.
func New(pid int, personality abi.Personality) *State {
	return &State{pid: pid, personality: personality}
}

// Pid returns the tracee's pid.
func (s *State) Pid() int { return s.pid }

// Personality returns the ABI this snapshot was taken under.
func (s *State) Personality() abi.Personality { return s.personality }

// Syscall resolves the canonical syscall ID for Orig_rax under this
// snapshot's personality. Returns abi.None if the raw number has no
// canonical mapping (an unrecognized or reserved syscall number).
func (s *State) Syscall() abi.ID {
	return abi.NumberToID(s.personality, s.regs.Orig_rax)
}

// RawSyscallNumber returns the unresolved Orig_rax value, for logging an
// unrecognized syscall by number rather than name.
func (s *State) RawSyscallNumber() uint64 {
	return s.regs.Orig_rax
}

// SetSyscall rewrites Orig_rax to the given canonical syscall under this
// snapshot's personality. Returns false if this personality has no
// number for id. Callers must follow with WriteBack to take effect.
func (s *State) SetSyscall(id abi.ID) bool {
	n, ok := abi.IDToNumber(s.personality, id)
	if !ok {
		return false
	}
	s.regs.Orig_rax = n
	return true
}

// paramRegister returns a pointer to the register backing argument index
// i (0-5) under this snapshot's personality, and whether that register
// needs to be treated as a zero-extended 32-bit value on write-back
// (true for every compat32 register, since the kernel only reads the
// low 32 bits of a 32-bit syscall's arguments but the full 64-bit
// register holds stale high bits from the previous native context).
func (s *State) paramRegister(i int) (reg *uint64, mask32 bool, ok bool) {
	switch s.personality {
	case abi.Native64:
		regs := [6]*uint64{&s.regs.Rdi, &s.regs.Rsi, &s.regs.Rdx, &s.regs.R10, &s.regs.R8, &s.regs.R9}
		if i < 0 || i >= len(regs) {
			return nil, false, false
		}
		return regs[i], false, true
	case abi.Compat32, abi.X32:
		// x32 shares x86_64 calling convention for registers (it's an
		// LP64-register/ILP32-data ABI), so only true compat32 (i386)
		// needs the Rbx/Rcx/Rdx/Rsi/Rdi/Rbp order and the 32-bit mask.
		if s.personality == abi.X32 {
			regs := [6]*uint64{&s.regs.Rdi, &s.regs.Rsi, &s.regs.Rdx, &s.regs.R10, &s.regs.R8, &s.regs.R9}
			if i < 0 || i >= len(regs) {
				return nil, false, false
			}
			return regs[i], false, true
		}
		regs := [6]*uint64{&s.regs.Rbx, &s.regs.Rcx, &s.regs.Rdx, &s.regs.Rsi, &s.regs.Rdi, &s.regs.Rbp}
		if i < 0 || i >= len(regs) {
			return nil, false, false
		}
		return regs[i], true, true
	default:
		return nil, false, false
	}
}

// i386ABIMask clears the high 32 bits of a register so a compat32
// argument write-back doesn't leak stale bits from a wider context, the
// same masking original_source/process_state_linux.cpp calls
// I386ABI_MASK.
const i386ABIMask uint64 = 0xFFFFFFFF00000000

// GetParam returns syscall argument i (0-indexed, 0-5), masked to 32
// bits for compat32. ok is false for an out-of-range index.
func (s *State) GetParam(i int) (value uint64, ok bool) {
	reg, mask32, ok := s.paramRegister(i)
	if !ok {
		return 0, false
	}
	v := *reg
	if mask32 {
		v &^= i386ABIMask
	}
	return v, true
}

// SetParam writes syscall argument i. For compat32 the written value is
// first masked to 32 bits and the register's high bits are cleared, so a
// write never smuggles a 64-bit value through a 32-bit argument slot.
func (s *State) SetParam(i int, value uint64) bool {
	reg, mask32, ok := s.paramRegister(i)
	if !ok {
		return false
	}
	if mask32 {
		*reg = value &^ i386ABIMask
	} else {
		*reg = value
	}
	return true
}

// WriteBack flushes any mutation made via SetSyscall/SetParam back to the
// tracee with PTRACE_SETREGS. The policy engine in this module never
// mutates a denied syscall in place (it kills the tracee instead), so
// nothing in this module calls it; it is available to a policy that
// rewrites rather than rejects.
func (s *State) WriteBack() error {
	if err := syscall.PtraceSetRegs(s.pid, &s.regs); err != nil {
		return fmt.Errorf("procstate: set regs for pid %d: %w", s.pid, err)
	}
	return nil
}
