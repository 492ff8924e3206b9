package policy

import (
	"os"
	"regexp"
	"testing"

	"sandbox-go/abi"
	"sandbox-go/procstate"
)

func whitelist(ids ...abi.ID) map[abi.ID]bool {
	m := make(map[abi.ID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestFirstSyscallMustBeExecve(t *testing.T) {
	p := New(whitelist(abi.Execve, abi.Read), nil)
	st := procstate.New(123, abi.Native64)
	st.SetSyscall(abi.Read)

	d := p.Decide(st)
	if d.Accept {
		t.Fatal("expected rejection: first syscall was not execve")
	}
}

func TestFirstSyscallAcceptsExecve(t *testing.T) {
	p := New(whitelist(abi.Execve), nil)
	st := procstate.New(123, abi.Native64)
	st.SetSyscall(abi.Execve)

	d := p.Decide(st)
	if !d.Accept {
		t.Fatalf("expected acceptance of initial execve, got reject: %s", d.Reason)
	}
}

func TestWhitelistRejectsUnlisted(t *testing.T) {
	p := New(whitelist(abi.Execve), nil)
	st := procstate.New(123, abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st) // consume the first-syscall slot

	st2 := procstate.New(123, abi.Native64)
	st2.SetSyscall(abi.Socket)
	d := p.Decide(st2)
	if d.Accept {
		t.Fatal("expected rejection: socket not whitelisted")
	}
}

func TestKillAllowsSelfOnly(t *testing.T) {
	p := New(whitelist(abi.Execve, abi.Kill), nil)
	st := procstate.New(42, abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st)

	self := procstate.New(42, abi.Native64)
	self.SetSyscall(abi.Kill)
	self.SetParam(0, 42)
	if d := p.Decide(self); !d.Accept {
		t.Fatalf("expected self-kill to be accepted, got: %s", d.Reason)
	}

	other := procstate.New(42, abi.Native64)
	other.SetSyscall(abi.Kill)
	other.SetParam(0, 999)
	if d := p.Decide(other); d.Accept {
		t.Fatal("expected kill of another pid to be rejected")
	}
}

func TestPrctlAllowsOnlyDeathsigAndSetName(t *testing.T) {
	p := New(whitelist(abi.Execve, abi.Prctl), nil)
	st := procstate.New(1, abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st)

	denied := procstate.New(1, abi.Native64)
	denied.SetSyscall(abi.Prctl)
	denied.SetParam(0, 4) // PR_SET_DUMPABLE, not in the allow-list
	if d := p.Decide(denied); d.Accept {
		t.Fatal("expected PR_SET_DUMPABLE to be rejected")
	}

	deathsig := procstate.New(1, abi.Native64)
	deathsig.SetSyscall(abi.Prctl)
	deathsig.SetParam(0, prGetDeathsig)
	if d := p.Decide(deathsig); !d.Accept {
		t.Fatalf("expected PR_GET_DEATHSIG to be accepted, got: %s", d.Reason)
	}

	setName := procstate.New(1, abi.Native64)
	setName.SetSyscall(abi.Prctl)
	setName.SetParam(0, prSetName)
	if d := p.Decide(setName); !d.Accept {
		t.Fatalf("expected PR_SET_NAME to be accepted, got: %s", d.Reason)
	}
}

func TestEmptyWhitelistAcceptsEverything(t *testing.T) {
	p := New(nil, nil)
	st := procstate.New(1, abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st) // consume the first-syscall slot

	for _, id := range []abi.ID{abi.Socket, abi.Bpf, abi.Ptrace, abi.Mount} {
		s := procstate.New(1, abi.Native64)
		s.SetSyscall(id)
		if d := p.Decide(s); !d.Accept {
			t.Errorf("empty whitelist: %s should be accepted, got reject: %s", abi.Name(id), d.Reason)
		}
	}
}

func TestPathSyscallsCheckedEvenOffWhitelist(t *testing.T) {
	fsPattern := regexp.MustCompile(`^/allowed`)
	p := New(whitelist(abi.Execve, abi.Write), fsPattern)
	st := procstate.New(os.Getpid(), abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st)

	// access is not in the syscall whitelist, but the path family is
	// always routed through the filesystem check rather than the
	// generic whitelist membership test: a null path argument fails
	// that check (rather than being silently waved through because
	// Access itself was never whitelisted).
	denied := procstate.New(os.Getpid(), abi.Native64)
	denied.SetSyscall(abi.Access)
	denied.SetParam(0, 0)
	if d := p.Decide(denied); d.Accept {
		t.Fatal("expected access with a null path argument to be rejected")
	}
}

func TestUnrecognizedSyscallRejected(t *testing.T) {
	p := New(whitelist(abi.Execve), nil)
	st := procstate.New(1, abi.Native64)
	st.SetSyscall(abi.Execve)
	p.Decide(st)

	// A compat32 State whose Orig_rax was never set holds number 0, which
	// the compat32 table leaves unmapped, so it resolves to abi.None.
	bad := procstate.New(1, abi.Compat32)
	if bad.Syscall() != abi.None {
		t.Fatalf("expected abi.None for compat32 number 0, got %v", bad.Syscall())
	}
	if d := p.Decide(bad); d.Accept {
		t.Fatal("expected rejection for an unrecognized syscall")
	}
}
