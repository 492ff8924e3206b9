// Package linux provides cgroup v2 resource management.
package linux

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const cgroupRoot = "/sys/fs/cgroup"

// Cgroup represents a cgroup v2 control group used as a secondary,
// best-effort memory/process cap alongside a run's rlimit-based bounds.
type Cgroup struct {
	path string
}

// NewCgroup creates or opens a cgroup at the given path.
// Path should be relative to /sys/fs/cgroup (e.g., "sandbox-go/run-id").
func NewCgroup(cgroupPath string) (*Cgroup, error) {
	fullPath := filepath.Join(cgroupRoot, cgroupPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return nil, fmt.Errorf("create cgroup directory: %w", err)
	}
	return &Cgroup{path: fullPath}, nil
}

// Path returns the filesystem path of the cgroup.
func (c *Cgroup) Path() string {
	return c.path
}

// AddProcess adds a process to this cgroup.
func (c *Cgroup) AddProcess(pid int) error {
	procsPath := filepath.Join(c.path, "cgroup.procs")
	return os.WriteFile(procsPath, []byte(strconv.Itoa(pid)), 0644)
}

// ApplyLimits sets memory.max and pids.max on the cgroup. A zero or
// negative value leaves the corresponding controller file untouched
// (unset, matching this package's Config -1-means-unset convention).
func (c *Cgroup) ApplyLimits(memoryBytes, pidsLimit int64) error {
	if memoryBytes > 0 {
		path := filepath.Join(c.path, "memory.max")
		if err := os.WriteFile(path, []byte(strconv.FormatInt(memoryBytes, 10)), 0644); err != nil {
			return fmt.Errorf("set memory.max: %w", err)
		}
	}
	if pidsLimit > 0 {
		path := filepath.Join(c.path, "pids.max")
		if err := os.WriteFile(path, []byte(strconv.FormatInt(pidsLimit, 10)), 0644); err != nil {
			return fmt.Errorf("set pids.max: %w", err)
		}
	}
	return nil
}

// Destroy removes the cgroup. The cgroup must be empty (the traced
// process must already have exited) for this to succeed.
func (c *Cgroup) Destroy() error {
	return os.Remove(c.path)
}

// GetMemoryCurrent returns current memory usage in bytes.
func (c *Cgroup) GetMemoryCurrent() (int64, error) {
	data, err := os.ReadFile(filepath.Join(c.path, "memory.current"))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}

// GetPidsCurrent returns the current number of processes in the cgroup.
func (c *Cgroup) GetPidsCurrent() (int64, error) {
	data, err := os.ReadFile(filepath.Join(c.path, "pids.current"))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}

// EnsureParentControllers enables controllers on parent cgroups so the
// child cgroup is permitted to use memory/pids limits. Best effort: some
// controllers may be unavailable in unprivileged or test environments,
// in which case ApplyLimits's writes will simply fail and the caller
// (the bootstrap child) treats cgroup setup as advisory.
func EnsureParentControllers(cgroupPath string) {
	parts := strings.Split(strings.Trim(cgroupPath, "/"), "/")
	current := cgroupRoot
	controllers := "+memory +pids"

	for _, part := range parts {
		controlFile := filepath.Join(current, "cgroup.subtree_control")
		os.WriteFile(controlFile, []byte(controllers), 0644)
		current = filepath.Join(current, part)
	}
}

// GetCgroupPath returns the default cgroup path for a run when
// Config.CgroupPath is unset.
func GetCgroupPath(runID string) string {
	return filepath.Join("sandbox-go", runID)
}
