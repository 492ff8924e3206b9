package procstate

import (
	"syscall"
	"testing"

	"sandbox-go/abi"
)

func TestPersonalityOf(t *testing.T) {
	cases := []struct {
		name string
		cs   uint64
		ds   uint64
		want abi.Personality
	}{
		{"native64", 0x33, 0x2b00, abi.Native64},
		{"compat32", 0x23, 0x2b, abi.Compat32},
		{"x32", 0x33, 0x2b, abi.X32},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := personalityOf(syscall.PtraceRegs{Cs: c.cs, Ds: c.ds})
			if got != c.want {
				t.Errorf("personalityOf(Cs=%#x,Ds=%#x) = %v, want %v", c.cs, c.ds, got, c.want)
			}
		})
	}
}

func TestSyscallRoundTripNative64(t *testing.T) {
	s := &State{pid: 1, personality: abi.Native64}
	if !s.SetSyscall(abi.Openat) {
		t.Fatal("SetSyscall(Openat) failed for native64")
	}
	if got := s.Syscall(); got != abi.Openat {
		t.Fatalf("Syscall() = %v, want Openat", got)
	}
}

func TestParamRoundTripNative64(t *testing.T) {
	s := &State{pid: 1, personality: abi.Native64}
	for i, want := range []uint64{10, 20, 30, 40, 50, 60} {
		if !s.SetParam(i, want) {
			t.Fatalf("SetParam(%d) failed", i)
		}
		got, ok := s.GetParam(i)
		if !ok || got != want {
			t.Fatalf("GetParam(%d) = (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}
	if _, ok := s.GetParam(6); ok {
		t.Fatal("GetParam(6) should be out of range")
	}
}

func TestParamCompat32MasksHighBits(t *testing.T) {
	s := &State{pid: 1, personality: abi.Compat32}
	// Simulate stale high bits left over from a prior native64 context.
	s.regs.Rbx = 0xFFFFFFFF_DEADBEEF
	got, ok := s.GetParam(0)
	if !ok || got != 0xDEADBEEF {
		t.Fatalf("GetParam(0) = (%#x, %v), want (0xDEADBEEF, true)", got, ok)
	}

	if !s.SetParam(0, 0x12345678) {
		t.Fatal("SetParam(0) failed")
	}
	if s.regs.Rbx != 0x12345678 {
		t.Fatalf("Rbx = %#x after SetParam, want 0x12345678 (high bits cleared)", s.regs.Rbx)
	}
}

func TestSyscallRoundTripX32PreservesTagBit(t *testing.T) {
	s := &State{pid: 1, personality: abi.X32}
	if !s.SetSyscall(abi.Execve) {
		t.Fatal("SetSyscall(Execve) failed for x32")
	}
	// x32's execve is remapped to 520 with the 0x40000000 tag bit set on
	// the wire; Orig_rax must carry that bit or a real kernel would read
	// it as the unrelated native64 syscall 520.
	if s.regs.Orig_rax&0x40000000 == 0 {
		t.Fatalf("Orig_rax = %#x after SetSyscall, want x32 tag bit set", s.regs.Orig_rax)
	}
	if got := s.Syscall(); got != abi.Execve {
		t.Fatalf("Syscall() = %v, want Execve", got)
	}
}

func TestParamX32UsesNativeRegisterOrder(t *testing.T) {
	s := &State{pid: 1, personality: abi.X32}
	s.regs.Rdi = 7
	got, ok := s.GetParam(0)
	if !ok || got != 7 {
		t.Fatalf("GetParam(0) = (%d, %v), want (7, true)", got, ok)
	}
}
