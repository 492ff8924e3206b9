package sandbox

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestMain intercepts the hidden re-exec: when this test binary is
// launched with the bootstrap subcommand as its first argument (exactly
// what Run's exec.Command(self, bootstrapSubcommand) does), it dispatches
// straight to RunBootstrap instead of running the test suite. RunBootstrap
// never returns on success, since it ends in syscall.Exec.
func TestMain(m *testing.M) {
	if len(os.Args) > 1 && os.Args[1] == bootstrapSubcommand {
		RunBootstrap()
		return
	}
	os.Exit(m.Run())
}

func TestRunAccepted(t *testing.T) {
	if _, err := os.Stat("/bin/true"); err != nil {
		t.Skip("no /bin/true on this system")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := Config{
		Cmd:      "/bin/true",
		TimeMS:   3000,
		MemoryMB: 64,
		Nproc:    16,
	}

	result, err := Run(ctx, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Verdict != AC {
		t.Errorf("Run() verdict = %v, reason %q, want AC", result.Verdict, result.Reason)
	}
}

func TestRunRejectedByWhitelist(t *testing.T) {
	if _, err := os.Stat("/bin/true"); err != nil {
		t.Skip("no /bin/true on this system")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := Config{
		Cmd:      "/bin/true",
		TimeMS:   3000,
		MemoryMB: 64,
		Nproc:    16,
		// Only execve is allowed, so every syscall /bin/true issues
		// after the initial exec is denied.
		SyscallWhitelist: []string{"execve"},
	}

	result, err := Run(ctx, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Verdict != RV {
		t.Errorf("Run() verdict = %v, reason %q, want RV", result.Verdict, result.Reason)
	}
}

func TestRunMissingCommand(t *testing.T) {
	ctx := context.Background()
	_, err := Run(ctx, Config{})
	if err == nil {
		t.Error("Run() with empty Cmd should error")
	}
}

func TestRunWallTimeExceeded(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh on this system")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := Config{
		Cmd:      "/bin/sh",
		Argv:     []string{"/bin/sh", "-c", "while true; do :; done"},
		TimeMS:   200,
		MemoryMB: 64,
		Nproc:    16,
	}

	result, err := Run(ctx, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Verdict != TL {
		t.Errorf("Run() verdict = %v, reason %q, want TL", result.Verdict, result.Reason)
	}
}
