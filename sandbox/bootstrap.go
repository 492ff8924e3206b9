package sandbox

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	serrors "sandbox-go/errors"
	"sandbox-go/linux"
	"sandbox-go/logging"
)

// bootstrapConfigFD is the fd the supervisor places its utils.ConfigPipe
// reader end at via cmd.ExtraFiles (files 0/1/2 are stdio, so the first
// ExtraFiles entry lands at 3).
const bootstrapConfigFD = 3

// RunBootstrap is the entry point for the hidden "__sandbox_init__"
// re-exec. It reads a Config as JSON from bootstrapConfigFD, applies
// rlimits/chdir/stdio/capabilities/seccomp/cgroup, becomes a ptrace
// tracee, and execs the target. It does not return on success: the
// process image is replaced by the target's. On failure it reports the
// error to stderr and raises SIGUSR1 on itself before exiting, so a
// supervisor already waiting on this pid observes an ordinary ptrace
// stop rather than a bare exit.
func RunBootstrap() {
	cfg, err := readBootstrapConfig()
	if err != nil {
		bootstrapFail(serrors.Wrap(err, serrors.ErrBootstrap, "read config"))
	}

	if err := applyLimits(cfg); err != nil {
		bootstrapFail(err)
	}

	if cfg.Dir != "" {
		if err := os.Chdir(cfg.Dir); err != nil {
			bootstrapFail(serrors.WrapWithDetail(err, serrors.ErrBootstrap, "chdir", cfg.Dir))
		}
	}

	if err := redirectStdio(cfg); err != nil {
		bootstrapFail(err)
	}

	if cfg.UseCgroup {
		if err := joinCgroup(cfg); err != nil {
			// Cgroup caps are a best-effort secondary bound: log and
			// continue rather than failing the run over them.
			logging.Warn("cgroup setup failed, continuing without it", "error", err)
		}
	}

	if cfg.DropCapabilities {
		if err := linux.DropCapabilities(nil); err != nil {
			bootstrapFail(serrors.Wrap(err, serrors.ErrBootstrap, "drop capabilities"))
		}
	}

	if cfg.SeccompPrefilter {
		if err := linux.InstallPrefilter(cfg.SyscallWhitelist); err != nil {
			bootstrapFail(serrors.Wrap(err, serrors.ErrBootstrap, "install seccomp prefilter"))
		}
	}

	// PTRACE_TRACEME is the last syscall this process issues before the
	// target's own exec, so the supervisor's very first observed stop is
	// that exec, exactly as if the target had been fork+exec'd directly.
	if _, _, errno := syscall.RawSyscall(syscall.SYS_PTRACE, syscall.PTRACE_TRACEME, 0, 0); errno != 0 {
		bootstrapFail(serrors.Wrap(errno, serrors.ErrBootstrap, "ptrace(PTRACE_TRACEME)"))
	}

	argv := cfg.Argv
	if len(argv) == 0 {
		argv = []string{cfg.Cmd}
	}
	envp := cfg.Envp
	if envp == nil {
		envp = []string{}
	}

	err = syscall.Exec(cfg.Cmd, argv, envp)
	// Reaching here means Exec failed; it never returns on success.
	bootstrapFail(serrors.Wrap(err, serrors.ErrBootstrap, "exec target"))
}

// readBootstrapConfig reads and decodes the Config handed down the
// inherited config pipe fd.
func readBootstrapConfig() (*Config, error) {
	f := os.NewFile(bootstrapConfigFD, "configpipe-reader")
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config pipe: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// applyLimits sets the rlimits described by original_source's run_child:
// RLIMIT_DATA/RLIMIT_AS from MemoryMB, RLIMIT_CPU from TimeMS (a secondary
// guard behind the wall-time monitor), RLIMIT_NPROC from Nproc, an
// unbounded RLIMIT_STACK, and RLIMIT_CORE disabled outright.
func applyLimits(cfg *Config) error {
	if cfg.MemoryMB >= 0 {
		bytes := uint64(cfg.MemoryMB+10) * 1024 * 1024
		if err := setRlimit(unix.RLIMIT_DATA, bytes, bytes*2); err != nil {
			return err
		}
		if err := setRlimit(unix.RLIMIT_AS, bytes, bytes*2); err != nil {
			return err
		}
	}

	if cfg.TimeMS >= 0 {
		soft := uint64(2*cfg.TimeMS+999) / 1000
		hard := uint64(3 * cfg.TimeMS / 1000)
		// Short limits round hard below soft; setrlimit rejects that.
		if hard < soft {
			hard = soft
		}
		if err := setRlimit(unix.RLIMIT_CPU, soft, hard); err != nil {
			return err
		}
	}

	if cfg.Nproc >= 0 {
		n := uint64(cfg.Nproc)
		if err := setRlimit(unix.RLIMIT_NPROC, n, n*2); err != nil {
			return err
		}
	}

	if err := setRlimit(unix.RLIMIT_STACK, unix.RLIM_INFINITY, unix.RLIM_INFINITY); err != nil {
		return err
	}
	if err := setRlimit(unix.RLIMIT_CORE, 0, 0); err != nil {
		return err
	}
	return nil
}

func setRlimit(resource int, soft, hard uint64) error {
	rl := unix.Rlimit{Cur: soft, Max: hard}
	if err := unix.Setrlimit(resource, &rl); err != nil {
		return serrors.Wrap(err, serrors.ErrBootstrap, fmt.Sprintf("setrlimit(%d)", resource))
	}
	return nil
}

// redirectStdio opens the configured stdin/stdout/stderr paths and dup2s
// them over the standard fds, closing the corresponding stream when a
// path is unset, matching original_source's run_child.
func redirectStdio(cfg *Config) error {
	if cfg.Stdin != "" {
		if err := redirectFD(cfg.Stdin, os.O_RDONLY, syscall.Stdin); err != nil {
			return err
		}
	} else {
		os.Stdin.Close()
	}

	if cfg.Stdout != "" {
		if err := redirectFD(cfg.Stdout, os.O_WRONLY, syscall.Stdout); err != nil {
			return err
		}
	} else {
		os.Stdout.Close()
	}

	if cfg.Stderr != "" {
		if err := redirectFD(cfg.Stderr, os.O_WRONLY, syscall.Stderr); err != nil {
			return err
		}
	} else {
		os.Stderr.Close()
	}
	return nil
}

func redirectFD(path string, flag int, target int) error {
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return serrors.WrapWithDetail(err, serrors.ErrBootstrap, "redirect stdio", path)
	}
	defer f.Close()
	if err := syscall.Dup2(int(f.Fd()), target); err != nil {
		return serrors.WrapWithDetail(err, serrors.ErrBootstrap, "dup2", path)
	}
	return nil
}

// joinCgroup creates (if needed) and joins the cgroup named by
// cfg.CgroupPath, or the default per-run path derived from the process's
// own pid when CgroupPath is unset, and applies memory/pids caps.
func joinCgroup(cfg *Config) error {
	path := cfg.CgroupPath
	if path == "" {
		path = linux.GetCgroupPath(fmt.Sprintf("boot-%d", os.Getpid()))
	}
	linux.EnsureParentControllers(path)

	cg, err := linux.NewCgroup(path)
	if err != nil {
		return fmt.Errorf("create cgroup: %w", err)
	}
	if err := cg.AddProcess(os.Getpid()); err != nil {
		return fmt.Errorf("join cgroup: %w", err)
	}

	var memBytes int64
	if cfg.MemoryMB > 0 {
		memBytes = int64(cfg.MemoryMB) * 1024 * 1024
	}
	return cg.ApplyLimits(memBytes, int64(cfg.Nproc))
}

// bootstrapFail logs the failure, self-raises SIGUSR1 (already a ptrace
// tracee at any point this can be called past the TRACEME call; prior to
// that it simply exits, which the supervisor still observes correctly as
// a non-exec failure), and exits non-zero.
func bootstrapFail(err error) {
	logging.Error("bootstrap failed", "error", err)
	fmt.Fprintln(os.Stderr, err)
	syscall.Kill(os.Getpid(), syscall.SIGUSR1)
	os.Exit(1)
}
