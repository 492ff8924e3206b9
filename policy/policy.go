// Package policy implements the syscall/path whitelist decision engine
// that the supervisor consults on every ptrace syscall-stop.
package policy

import (
	"fmt"
	"os"
	"regexp"

	"sandbox-go/abi"
	"sandbox-go/memio"
	"sandbox-go/procstate"
)

// atFDCWD is the special dirfd value meaning "resolve relative to the
// calling process's current working directory", per fcntl.h.
const atFDCWD = -100

// Decision is the result of evaluating one syscall-stop.
type Decision struct {
	Accept bool
	Reason string
}

func accept() Decision { return Decision{Accept: true} }

func reject(format string, args ...any) Decision {
	return Decision{Accept: false, Reason: fmt.Sprintf(format, args...)}
}

// Policy holds one run's syscall whitelist and filesystem whitelist, plus
// the single piece of mutable state the decision algorithm needs: whether
// the next syscall-stop is still the very first one this tracee has
// produced.
type Policy struct {
	whitelist    map[abi.ID]bool
	fsPattern    *regexp.Regexp
	firstSyscall bool
}

// New builds a Policy from a syscall whitelist (nil or empty means
// unrestricted: every syscall is accepted once past the first-syscall
// guard) and an (optional, may be nil) filesystem path whitelist
// pattern. A nil fsPattern means no path the path-argument syscalls
// resolve will ever match, i.e. every open/openat/access/stat/... is
// denied — callers that want an "allow any path" policy should pass
// regexp.MustCompile(".*").
func New(whitelist map[abi.ID]bool, fsPattern *regexp.Regexp) *Policy {
	return &Policy{whitelist: whitelist, fsPattern: fsPattern, firstSyscall: true}
}

// Decide runs the six-step algorithm against one syscall-stop snapshot:
// first-syscall-must-be-execve, empty-whitelist unrestricted mode,
// path-argument syscalls checked against the filesystem whitelist,
// kill-family self-only check, prctl-family restricted subfunction
// check, default syscall-whitelist membership. It does not distinguish
// syscall entry from syscall exit — the same decision is made (and
// re-made, idempotently) at both stops, matching
// original_source/sandbox_linux.cpp's handle_syscall.
func (p *Policy) Decide(st *procstate.State) Decision {
	id := st.Syscall()

	if p.firstSyscall {
		p.firstSyscall = false
		if id != abi.Execve {
			return reject("first syscall must be execve, got %s", syscallLabel(st, id))
		}
		return accept()
	}

	if len(p.whitelist) == 0 {
		return accept()
	}

	if id == abi.None {
		return reject("unrecognized syscall number %d", st.RawSyscallNumber())
	}

	switch id {
	case abi.Openat, abi.Faccessat, abi.Readlinkat, abi.Newfstatat:
		return p.decideOpen(st, id, 0, 1)
	case abi.Open, abi.Access, abi.Mkdir, abi.Unlink, abi.Readlink, abi.Stat, abi.Fstat, abi.Lstat:
		return p.decideOpen(st, id, -1, 0)
	case abi.Kill, abi.Tkill, abi.Tgkill:
		return p.decideKill(st, id)
	case abi.Prctl:
		return p.decidePrctl(st)
	}

	if !p.whitelist[id] {
		return reject("syscall %s not in whitelist", abi.Name(id))
	}
	return accept()
}

func syscallLabel(st *procstate.State, id abi.ID) string {
	if id == abi.None {
		return fmt.Sprintf("#%d", st.RawSyscallNumber())
	}
	return abi.Name(id)
}

// decideOpen resolves the path argument of the no-dirfd family (open,
// access, mkdir, unlink, readlink, stat, fstat, lstat — dirfdParam < 0,
// implicit AT_FDCWD) or the dirfd-taking *at family (openat, faccessat,
// readlinkat, newfstatat — dirfdParam is the dirfd argument index,
// pathParam the path argument index) and checks it against the
// filesystem whitelist pattern.
func (p *Policy) decideOpen(st *procstate.State, id abi.ID, dirfdParam, pathParam int) Decision {
	pathAddr, ok := st.GetParam(pathParam)
	if !ok {
		return reject("%s: could not read path argument", abi.Name(id))
	}

	var dirfd int32 = atFDCWD
	if dirfdParam >= 0 {
		raw, ok := st.GetParam(dirfdParam)
		if !ok {
			return reject("%s: could not read dirfd argument", abi.Name(id))
		}
		dirfd = int32(raw)
	}

	pathBytes, err := memio.ReadCString(st.Pid(), uintptr(pathAddr))
	if err != nil {
		return reject("%s: could not read path string: %v", abi.Name(id), err)
	}
	path := string(pathBytes)

	resolved, err := resolvePath(st.Pid(), dirfd, path)
	if err != nil {
		return reject("%s: could not resolve path %q: %v", abi.Name(id), path, err)
	}

	if p.fsPattern == nil || !p.fsPattern.MatchString(resolved) {
		return reject("%s: path %q not in filesystem whitelist", abi.Name(id), resolved)
	}
	return accept()
}

// resolvePath turns a (dirfd, path) pair into an absolute path the
// filesystem whitelist pattern can be matched against, following
// original_source/sandbox_linux.cpp's get_full_path/do_readlink/
// getcwd_pid/getfd_pid.
func resolvePath(pid int, dirfd int32, path string) (string, error) {
	if len(path) > 0 && path[0] == '/' {
		return path, nil
	}

	var base string
	var err error
	if dirfd == atFDCWD {
		base, err = os.Readlink(fmt.Sprintf("/proc/%d/cwd", pid))
	} else if dirfd >= 0 {
		base, err = os.Readlink(fmt.Sprintf("/proc/%d/fd/%d", pid, dirfd))
	} else {
		return "", fmt.Errorf("invalid dirfd %d", dirfd)
	}
	if err != nil {
		return "", err
	}
	if path == "" {
		return base, nil
	}
	return base + "/" + path, nil
}

// decideKill allows a traced process to signal only itself: the
// original's handle_kill restricts kill/tkill/tgkill to the caller's own
// pid, so a sandboxed program can't reach out and signal anything else on
// the host.
func (p *Policy) decideKill(st *procstate.State, id abi.ID) Decision {
	target, ok := st.GetParam(0)
	if !ok {
		return reject("%s: could not read target pid", abi.Name(id))
	}
	if int32(target) != int32(st.Pid()) {
		return reject("%s: target %d is not self (%d)", abi.Name(id), int32(target), st.Pid())
	}
	return accept()
}

// Allowed prctl subfunctions: PR_GET_DEATHSIG and PR_SET_NAME are
// commonly needed by ordinary runtimes and benign, so they're accepted
// regardless of the general syscall whitelist; every other subfunction
// is denied, since most of the rest let a traced process change its own
// traceability or escape the capability-dropping done at bootstrap.
const (
	prGetDeathsig = 3
	prSetName     = 15
)

func (p *Policy) decidePrctl(st *procstate.State) Decision {
	option, ok := st.GetParam(0)
	if !ok {
		return reject("prctl: could not read option argument")
	}
	switch int32(option) {
	case prGetDeathsig, prSetName:
		return accept()
	}
	return reject("prctl: subfunction %d is restricted", int32(option))
}
