// Package linux provides Linux-specific primitives (capabilities, cgroups,
// seccomp) used to harden a supervised run beyond ptrace and rlimits.
package linux

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"
)

// Capability constants (from linux/capability.h).
const (
	CAP_CHOWN              = 0
	CAP_DAC_OVERRIDE       = 1
	CAP_DAC_READ_SEARCH    = 2
	CAP_FOWNER             = 3
	CAP_FSETID             = 4
	CAP_KILL               = 5
	CAP_SETGID             = 6
	CAP_SETUID             = 7
	CAP_SETPCAP            = 8
	CAP_LINUX_IMMUTABLE    = 9
	CAP_NET_BIND_SERVICE   = 10
	CAP_NET_BROADCAST      = 11
	CAP_NET_ADMIN          = 12
	CAP_NET_RAW            = 13
	CAP_IPC_LOCK           = 14
	CAP_IPC_OWNER          = 15
	CAP_SYS_MODULE         = 16
	CAP_SYS_RAWIO          = 17
	CAP_SYS_CHROOT         = 18
	CAP_SYS_PTRACE         = 19
	CAP_SYS_PACCT          = 20
	CAP_SYS_ADMIN          = 21
	CAP_SYS_BOOT           = 22
	CAP_SYS_NICE           = 23
	CAP_SYS_RESOURCE       = 24
	CAP_SYS_TIME           = 25
	CAP_SYS_TTY_CONFIG     = 26
	CAP_MKNOD              = 27
	CAP_LEASE              = 28
	CAP_AUDIT_WRITE        = 29
	CAP_AUDIT_CONTROL      = 30
	CAP_SETFCAP            = 31
	CAP_MAC_OVERRIDE       = 32
	CAP_MAC_ADMIN          = 33
	CAP_SYSLOG             = 34
	CAP_WAKE_ALARM         = 35
	CAP_BLOCK_SUSPEND      = 36
	CAP_AUDIT_READ         = 37
	CAP_PERFMON            = 38
	CAP_BPF                = 39
	CAP_CHECKPOINT_RESTORE = 40
)

var (
	lastCapOnce  sync.Once
	lastCapValue = 40 // fallback for kernels without cap_last_cap
)

// getLastCap returns the highest capability supported by the kernel,
// detected once from /proc/sys/kernel/cap_last_cap and falling back to a
// PR_CAPBSET_READ probe if that file is unavailable.
func getLastCap() int {
	lastCapOnce.Do(func() {
		if data, err := os.ReadFile("/proc/sys/kernel/cap_last_cap"); err == nil {
			if val, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && val >= 0 {
				lastCapValue = val
				return
			}
		}
		for cap := 40; cap <= 63; cap++ {
			ret, _, _ := syscall.Syscall(syscall.SYS_PRCTL, PR_CAPBSET_READ, uintptr(cap), 0)
			if ret == ^uintptr(0) {
				lastCapValue = cap - 1
				return
			}
		}
		lastCapValue = 63
	})
	return lastCapValue
}

// capabilityMap maps capability names to numbers.
var capabilityMap = map[string]int{
	"CAP_CHOWN":              CAP_CHOWN,
	"CAP_DAC_OVERRIDE":       CAP_DAC_OVERRIDE,
	"CAP_DAC_READ_SEARCH":    CAP_DAC_READ_SEARCH,
	"CAP_FOWNER":             CAP_FOWNER,
	"CAP_FSETID":             CAP_FSETID,
	"CAP_KILL":               CAP_KILL,
	"CAP_SETGID":             CAP_SETGID,
	"CAP_SETUID":             CAP_SETUID,
	"CAP_SETPCAP":            CAP_SETPCAP,
	"CAP_LINUX_IMMUTABLE":    CAP_LINUX_IMMUTABLE,
	"CAP_NET_BIND_SERVICE":   CAP_NET_BIND_SERVICE,
	"CAP_NET_BROADCAST":      CAP_NET_BROADCAST,
	"CAP_NET_ADMIN":          CAP_NET_ADMIN,
	"CAP_NET_RAW":            CAP_NET_RAW,
	"CAP_IPC_LOCK":           CAP_IPC_LOCK,
	"CAP_IPC_OWNER":          CAP_IPC_OWNER,
	"CAP_SYS_MODULE":         CAP_SYS_MODULE,
	"CAP_SYS_RAWIO":          CAP_SYS_RAWIO,
	"CAP_SYS_CHROOT":         CAP_SYS_CHROOT,
	"CAP_SYS_PTRACE":         CAP_SYS_PTRACE,
	"CAP_SYS_PACCT":          CAP_SYS_PACCT,
	"CAP_SYS_ADMIN":          CAP_SYS_ADMIN,
	"CAP_SYS_BOOT":           CAP_SYS_BOOT,
	"CAP_SYS_NICE":           CAP_SYS_NICE,
	"CAP_SYS_RESOURCE":       CAP_SYS_RESOURCE,
	"CAP_SYS_TIME":           CAP_SYS_TIME,
	"CAP_SYS_TTY_CONFIG":     CAP_SYS_TTY_CONFIG,
	"CAP_MKNOD":              CAP_MKNOD,
	"CAP_LEASE":              CAP_LEASE,
	"CAP_AUDIT_WRITE":        CAP_AUDIT_WRITE,
	"CAP_AUDIT_CONTROL":      CAP_AUDIT_CONTROL,
	"CAP_SETFCAP":            CAP_SETFCAP,
	"CAP_MAC_OVERRIDE":       CAP_MAC_OVERRIDE,
	"CAP_MAC_ADMIN":          CAP_MAC_ADMIN,
	"CAP_SYSLOG":             CAP_SYSLOG,
	"CAP_WAKE_ALARM":         CAP_WAKE_ALARM,
	"CAP_BLOCK_SUSPEND":      CAP_BLOCK_SUSPEND,
	"CAP_AUDIT_READ":         CAP_AUDIT_READ,
	"CAP_PERFMON":            CAP_PERFMON,
	"CAP_BPF":                CAP_BPF,
	"CAP_CHECKPOINT_RESTORE": CAP_CHECKPOINT_RESTORE,
}

// prctl constants relevant to capability bounding.
const (
	PR_CAPBSET_READ = 23
	PR_CAPBSET_DROP = 24
)

// DropCapabilities drops every capability from the bounding set except
// those named in keep, via a PR_CAPBSET_DROP loop over every capability
// the running kernel supports. Called by the bootstrap child right
// before the target's exec, as defense in depth beyond this package's
// rlimit/policy resource model. Unknown names in keep are ignored.
func DropCapabilities(keep []string) error {
	allowed := make(map[int]bool, len(keep))
	for _, name := range keep {
		if cap, ok := capabilityMap[strings.ToUpper(name)]; ok {
			allowed[cap] = true
		}
	}

	lastCap := getLastCap()
	for cap := 0; cap <= lastCap; cap++ {
		if allowed[cap] {
			continue
		}
		ret, _, _ := syscall.Syscall(syscall.SYS_PRCTL, PR_CAPBSET_READ, uintptr(cap), 0)
		if ret != 1 {
			continue // not in the bounding set to begin with
		}
		if _, _, errno := syscall.Syscall(syscall.SYS_PRCTL, PR_CAPBSET_DROP, uintptr(cap), 0); errno != 0 && errno != syscall.EINVAL {
			return fmt.Errorf("drop cap %d: %v", cap, errno)
		}
	}
	return nil
}

// CapabilityToName converts a capability number to its name.
func CapabilityToName(cap int) string {
	for name, num := range capabilityMap {
		if num == cap {
			return name
		}
	}
	return fmt.Sprintf("CAP_%d", cap)
}

// NameToCapability converts a capability name to its number.
func NameToCapability(name string) (int, bool) {
	cap, ok := capabilityMap[strings.ToUpper(name)]
	return cap, ok
}

// AllCapabilities returns all known capability names.
func AllCapabilities() []string {
	caps := make([]string, 0, len(capabilityMap))
	for name := range capabilityMap {
		caps = append(caps, name)
	}
	return caps
}
