package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"syscall"
	"time"

	"sandbox-go/abi"
	serrors "sandbox-go/errors"
	"sandbox-go/logging"
	"sandbox-go/monitor"
	"sandbox-go/policy"
	"sandbox-go/procstate"
	"sandbox-go/utils"
)

// Result is the outcome of one supervised run.
type Result struct {
	Verdict  Verdict
	ExitCode int
	Reason   string
}

// Run launches cfg.Cmd under ptrace and supervises it to a Verdict. It
// blocks until the target exits, is killed for a policy violation, or a
// resource monitor preempts it.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Cmd == "" {
		return Result{Verdict: ER}, serrors.ErrMissingCommand
	}

	// ptrace(2) calls on a tracee must all come from the OS thread that
	// observed its creation (Start, below).
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pipe, err := utils.NewConfigPipe()
	if err != nil {
		return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrInternal, "sandbox.Run")
	}

	self, err := os.Executable()
	if err != nil {
		return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrInternal, "sandbox.Run")
	}

	cmd := exec.Command(self, bootstrapSubcommand)
	cmd.ExtraFiles = []*os.File{pipe.ReaderFile()}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr

	data, err := json.Marshal(cfg)
	if err != nil {
		return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrConfig, "sandbox.Run")
	}

	if err := cmd.Start(); err != nil {
		pipe.CloseReader()
		return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrBootstrap, "start bootstrap")
	}
	pipe.CloseReader()

	if err := pipe.WriteAndClose(data); err != nil {
		return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrBootstrap, "send config")
	}

	pid := cmd.Process.Pid
	runLogger := logging.WithRun(logging.Default(), fmt.Sprintf("%d", pid))

	result, err := supervise(ctx, pid, cfg)
	runLogger = logging.WithVerdict(runLogger, result.Verdict.String())
	runLogger.Info("run finished", "exit_code", result.ExitCode, "reason", result.Reason)
	return result, err
}

// bootstrapSubcommand is the hidden cobra command name the re-exec'd
// process dispatches to RunBootstrap.
const bootstrapSubcommand = "__sandbox_init__"

// supervise runs the wait4 classification loop described by this
// package's design: the first stop is special-cased as either the
// bootstrap's pre-traceme death, the target's post-exec SIGTRAP, or a
// self-raised SIGUSR1 reporting exec failure; every subsequent stop goes
// through the ordinary syscall-stop path.
func supervise(ctx context.Context, pid int, cfg Config) (Result, error) {
	fsPattern := regexp.MustCompile(".*")
	if cfg.FilesystemWhitelist != "" {
		compiled, err := regexp.Compile(cfg.FilesystemWhitelist)
		if err != nil {
			syscall.Kill(pid, syscall.SIGKILL)
			return Result{Verdict: ER}, serrors.Wrap(err, serrors.ErrConfig, "supervise")
		}
		fsPattern = compiled
	}

	pol := policy.New(buildWhitelistSet(cfg.SyscallWhitelist), fsPattern)

	var wallMon, rssMon *monitor.Monitor
	if cfg.TimeMS > 0 {
		wallMon = monitor.WallTime(time.Duration(cfg.TimeMS) * time.Millisecond)
	}
	if cfg.MemoryMB > 0 {
		rssMon = monitor.RSS(pid, uint64(cfg.MemoryMB)*1024*1024, 20*time.Millisecond)
	}
	stopMonitors := func() {
		if wallMon != nil {
			wallMon.Stop()
		}
		if rssMon != nil {
			rssMon.Stop()
		}
	}
	defer stopMonitors()

	type waitOutcome struct {
		status syscall.WaitStatus
		err    error
	}
	waits := make(chan waitOutcome, 1)
	requestWait := func() {
		go func() {
			var status syscall.WaitStatus
			_, err := syscall.Wait4(pid, &status, 0, nil)
			waits <- waitOutcome{status, err}
		}()
	}

	requestWait()
	first := true

	for {
		var wallDone, rssDone <-chan monitor.Result
		if wallMon != nil {
			wallDone = wallMon.Done()
		}
		if rssMon != nil {
			rssDone = rssMon.Done()
		}

		select {
		case <-ctx.Done():
			syscall.Kill(pid, syscall.SIGKILL)
			syscall.Wait4(pid, nil, 0, nil)
			return Result{Verdict: ER, Reason: "context cancelled"}, ctx.Err()

		case r := <-wallDone:
			wallMon = nil
			if r.Exceeded {
				syscall.Kill(pid, syscall.SIGKILL)
				syscall.Wait4(pid, nil, 0, nil)
				return Result{Verdict: TL, Reason: "wall-clock limit exceeded"}, nil
			}

		case r := <-rssDone:
			rssMon = nil
			if r.Exceeded {
				syscall.Kill(pid, syscall.SIGKILL)
				syscall.Wait4(pid, nil, 0, nil)
				return Result{Verdict: ML, Reason: "memory limit exceeded"}, nil
			}

		case w := <-waits:
			if w.err != nil {
				return Result{Verdict: ER}, serrors.Wrap(w.err, serrors.ErrTrace, "wait4")
			}
			status := w.status

			if first {
				first = false
				res, done, err := handleFirstStop(pid, status, pol)
				if done {
					return res, err
				}
				requestWait()
				continue
			}

			res, done, err := handleStop(pid, status, pol)
			if done {
				return res, err
			}
			requestWait()
		}
	}
}

// handleFirstStop classifies the tracee's very first wait4 result: the
// bootstrap child exiting before it ever called PTRACE_TRACEME (ER), a
// self-raised SIGUSR1 reporting a failed exec (ER), or the expected
// post-exec SIGTRAP, whose registers still report the execve: that stop
// is handed to the policy's first-syscall guard before the ordinary
// syscall-stop loop starts.
func handleFirstStop(pid int, status syscall.WaitStatus, pol *policy.Policy) (Result, bool, error) {
	switch {
	case status.Exited():
		return Result{Verdict: ER, Reason: "bootstrap exited before tracing began"}, true, nil
	case status.Signaled():
		return Result{Verdict: ER, Reason: "bootstrap killed before tracing began"}, true, nil
	case status.Stopped() && status.StopSignal() == syscall.SIGUSR1:
		return Result{Verdict: ER, Reason: "target exec failed"}, true, nil
	case status.Stopped():
		if err := syscall.PtraceSetOptions(pid, syscall.PTRACE_O_TRACESYSGOOD); err != nil {
			syscall.Kill(pid, syscall.SIGKILL)
			return Result{Verdict: ER}, true, serrors.Wrap(err, serrors.ErrTrace, "set ptrace options")
		}
		st, err := procstate.Snapshot(pid)
		if err != nil {
			syscall.Kill(pid, syscall.SIGKILL)
			return Result{Verdict: ER}, true, serrors.Wrap(err, serrors.ErrTrace, "snapshot")
		}
		if decision := pol.Decide(st); !decision.Accept {
			syscall.Kill(pid, syscall.SIGKILL)
			syscall.Wait4(pid, nil, 0, nil)
			return Result{Verdict: RV, Reason: decision.Reason}, true, nil
		}
		if err := syscall.PtraceSyscall(pid, 0); err != nil {
			syscall.Kill(pid, syscall.SIGKILL)
			return Result{Verdict: ER}, true, serrors.Wrap(err, serrors.ErrTrace, "resume after first stop")
		}
		return Result{}, false, nil
	default:
		return Result{Verdict: ER, Reason: "unexpected first wait status"}, true, nil
	}
}

// handleStop classifies every stop after the first: normal exit, signal
// death, or an ordinary syscall-stop evaluated by the policy engine.
func handleStop(pid int, status syscall.WaitStatus, pol *policy.Policy) (Result, bool, error) {
	switch {
	case status.Exited():
		code := status.ExitStatus()
		if code == 0 {
			return Result{Verdict: AC, ExitCode: code}, true, nil
		}
		return Result{Verdict: RE, ExitCode: code, Reason: "exited with nonzero status"}, true, nil

	case status.Signaled():
		return Result{Verdict: RE, Reason: fmt.Sprintf("killed by signal %s", status.Signal())}, true, nil

	case status.Stopped():
		sig := status.StopSignal()
		if sig == syscall.SIGTRAP|0x80 || sig == syscall.SIGTRAP {
			st, err := procstate.Snapshot(pid)
			if err != nil {
				syscall.Kill(pid, syscall.SIGKILL)
				return Result{Verdict: ER}, true, serrors.Wrap(err, serrors.ErrTrace, "snapshot")
			}
			decision := pol.Decide(st)
			if !decision.Accept {
				syscall.Kill(pid, syscall.SIGKILL)
				syscall.Wait4(pid, nil, 0, nil)
				return Result{Verdict: RV, Reason: decision.Reason}, true, nil
			}
			if err := syscall.PtraceSyscall(pid, 0); err != nil {
				return Result{Verdict: ER}, true, serrors.Wrap(err, serrors.ErrTrace, "resume")
			}
			return Result{}, false, nil
		}

		// Any other stop signal (SIGSEGV, SIGFPE, SIGXCPU from the
		// RLIMIT_CPU guard, ...) is not delivered; the tracee is killed
		// instead: this engine does not step through arbitrary signal
		// delivery.
		syscall.Kill(pid, syscall.SIGKILL)
		syscall.Wait4(pid, nil, 0, nil)
		if sig == syscall.SIGXCPU {
			return Result{Verdict: TL, Reason: "CPU time limit exceeded"}, true, nil
		}
		return Result{Verdict: RE, Reason: fmt.Sprintf("stopped by signal %s", sig)}, true, nil

	default:
		return Result{Verdict: ER, Reason: "unexpected wait status"}, true, nil
	}
}

// buildWhitelistSet resolves a run configuration's syscall whitelist
// into the canonical-ID set policy.New expects. An empty whitelist
// yields nil, which the policy treats as "allow every syscall past the
// first-syscall guard". Kept local to sandbox (rather than shared with
// config.BuildWhitelist) since config imports sandbox for Config itself.
func buildWhitelistSet(names []string) map[abi.ID]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[abi.ID]bool, len(names))
	for _, name := range names {
		if id := abi.Lookup(name); id != abi.None {
			set[id] = true
		}
	}
	return set
}
