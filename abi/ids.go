package abi

// Canonical syscall identifiers. The set intentionally covers everything
// the policy engine special-cases (execve, the open/openat family, the
// kill/tkill/tgkill family, prctl) plus
// the common syscall surface a dynamically linked ELF touches between
// exec and its first real work, so whitelist-based policies can cover a
// realistic program without falling back to "allow everything not
// recognized". It is not the full ~450-entry kernel table; spec.md notes
// the full tables are generated/embedded separately and out of scope for
// hand-authored core logic.
const (
	None ID = iota
	Read
	Write
	Open
	Close
	Stat
	Fstat
	Lstat
	Poll
	Lseek
	Mmap
	Mprotect
	Munmap
	Brk
	RtSigaction
	RtSigprocmask
	RtSigreturn
	Ioctl
	Pread64
	Pwrite64
	Readv
	Writev
	Access
	Pipe
	Select
	SchedYield
	Mremap
	Msync
	Mincore
	Madvise
	Dup
	Dup2
	Pause
	Nanosleep
	Getitimer
	Alarm
	Setitimer
	Getpid
	Sendfile
	Socket
	Connect
	Accept
	Sendto
	Recvfrom
	Sendmsg
	Recvmsg
	Shutdown
	Bind
	Listen
	Getsockname
	Getpeername
	Socketpair
	Setsockopt
	Getsockopt
	Clone
	Fork
	Vfork
	Execve
	Exit
	Wait4
	Kill
	Uname
	Fcntl
	Flock
	Fsync
	Fdatasync
	Truncate
	Ftruncate
	Getdents
	Getcwd
	Chdir
	Fchdir
	Rename
	Mkdir
	Rmdir
	Creat
	Link
	Unlink
	Symlink
	Readlink
	Chmod
	Fchmod
	Chown
	Fchown
	Lchown
	Umask
	Gettimeofday
	Getrlimit
	Getrusage
	Sysinfo
	Times
	Ptrace
	Getuid
	Syslog
	Getgid
	Setuid
	Setgid
	Geteuid
	Getegid
	Setpgid
	Getppid
	Getpgrp
	Setsid
	Setreuid
	Setregid
	Getgroups
	Setgroups
	Setresuid
	Getresuid
	Setresgid
	Getresgid
	Getpgid
	Setfsuid
	Setfsgid
	Getsid
	Capget
	Capset
	RtSigpending
	RtSigtimedwait
	RtSigqueueinfo
	RtSigsuspend
	Sigaltstack
	Mknod
	SysPersonality
	Statfs
	Fstatfs
	Getpriority
	Setpriority
	SchedSetscheduler
	SchedGetscheduler
	Mlock
	Munlock
	Mlockall
	Munlockall
	Prctl
	ArchPrctl
	Setrlimit
	Chroot
	Sync
	Acct
	Settimeofday
	Mount
	Umount2
	Reboot
	Sethostname
	Setdomainname
	Gettid
	Futex
	SchedSetaffinity
	SchedGetaffinity
	SetTidAddress
	RestartSyscall
	Timer_create
	ClockGettime
	ClockNanosleep
	ExitGroup
	EpollWait
	EpollCtl
	Tgkill
	Utimes
	Waitid
	Openat
	Mkdirat
	Mknodat
	Fchownat
	Newfstatat
	Unlinkat
	Renameat
	Linkat
	Symlinkat
	Readlinkat
	Fchmodat
	Faccessat
	Unshare
	SetRobustList
	GetRobustList
	Splice
	Tee
	Utimensat
	EpollPwait
	Signalfd
	TimerfdCreate
	Eventfd
	Fallocate
	Accept4
	Eventfd2
	EpollCreate1
	Dup3
	Pipe2
	InotifyInit1
	Preadv
	Pwritev
	RecvMmsg
	Prlimit64
	Syncfs
	SendMmsg
	Setns
	Getcpu
	ProcessVmReadv
	ProcessVmWritev
	Kcmp
	FinitModule
	SchedSetattr
	SchedGetattr
	Renameat2
	Seccomp
	Getrandom
	MemfdCreate
	Bpf
	Execveat
	Userfaultfd
	Membarrier
	Mlock2
	CopyFileRange
	Preadv2
	Pwritev2
	Statx
	Rseq
	Openat2
	Faccessat2
	CloseRange
	Clone3
	Tkill
	Vhangup
	SchedSetparam
	ClockSettime
	ClockGetres
	AddKey
	RequestKey
	Keyctl
	InotifyAddWatch
	InotifyRmWatch
	Pselect6
	Ppoll
	SyncFileRange
	TimerfdGettime
	FanotifyInit
	FanotifyMark
	ClockAdjtime
	Sigsuspend

	idCount
)

var idNames = [idCount]string{
	None:              "none",
	Read:              "read",
	Write:             "write",
	Open:              "open",
	Close:             "close",
	Stat:              "stat",
	Fstat:             "fstat",
	Lstat:             "lstat",
	Poll:              "poll",
	Lseek:             "lseek",
	Mmap:              "mmap",
	Mprotect:          "mprotect",
	Munmap:            "munmap",
	Brk:               "brk",
	RtSigaction:       "rt_sigaction",
	RtSigprocmask:     "rt_sigprocmask",
	RtSigreturn:       "rt_sigreturn",
	Ioctl:             "ioctl",
	Pread64:           "pread64",
	Pwrite64:          "pwrite64",
	Readv:             "readv",
	Writev:            "writev",
	Access:            "access",
	Pipe:              "pipe",
	Select:            "select",
	SchedYield:        "sched_yield",
	Mremap:            "mremap",
	Msync:             "msync",
	Mincore:           "mincore",
	Madvise:           "madvise",
	Dup:               "dup",
	Dup2:              "dup2",
	Pause:             "pause",
	Nanosleep:         "nanosleep",
	Getitimer:         "getitimer",
	Alarm:             "alarm",
	Setitimer:         "setitimer",
	Getpid:            "getpid",
	Sendfile:          "sendfile",
	Socket:            "socket",
	Connect:           "connect",
	Accept:            "accept",
	Sendto:            "sendto",
	Recvfrom:          "recvfrom",
	Sendmsg:           "sendmsg",
	Recvmsg:           "recvmsg",
	Shutdown:          "shutdown",
	Bind:              "bind",
	Listen:            "listen",
	Getsockname:       "getsockname",
	Getpeername:       "getpeername",
	Socketpair:        "socketpair",
	Setsockopt:        "setsockopt",
	Getsockopt:        "getsockopt",
	Clone:             "clone",
	Fork:              "fork",
	Vfork:             "vfork",
	Execve:            "execve",
	Exit:              "exit",
	Wait4:             "wait4",
	Kill:              "kill",
	Uname:             "uname",
	Fcntl:             "fcntl",
	Flock:             "flock",
	Fsync:             "fsync",
	Fdatasync:         "fdatasync",
	Truncate:          "truncate",
	Ftruncate:         "ftruncate",
	Getdents:          "getdents",
	Getcwd:            "getcwd",
	Chdir:             "chdir",
	Fchdir:            "fchdir",
	Rename:            "rename",
	Mkdir:             "mkdir",
	Rmdir:             "rmdir",
	Creat:             "creat",
	Link:              "link",
	Unlink:            "unlink",
	Symlink:           "symlink",
	Readlink:          "readlink",
	Chmod:             "chmod",
	Fchmod:            "fchmod",
	Chown:             "chown",
	Fchown:            "fchown",
	Lchown:            "lchown",
	Umask:             "umask",
	Gettimeofday:      "gettimeofday",
	Getrlimit:         "getrlimit",
	Getrusage:         "getrusage",
	Sysinfo:           "sysinfo",
	Times:             "times",
	Ptrace:            "ptrace",
	Getuid:            "getuid",
	Syslog:            "syslog",
	Getgid:            "getgid",
	Setuid:            "setuid",
	Setgid:            "setgid",
	Geteuid:           "geteuid",
	Getegid:           "getegid",
	Setpgid:           "setpgid",
	Getppid:           "getppid",
	Getpgrp:           "getpgrp",
	Setsid:            "setsid",
	Setreuid:          "setreuid",
	Setregid:          "setregid",
	Getgroups:         "getgroups",
	Setgroups:         "setgroups",
	Setresuid:         "setresuid",
	Getresuid:         "getresuid",
	Setresgid:         "setresgid",
	Getresgid:         "getresgid",
	Getpgid:           "getpgid",
	Setfsuid:          "setfsuid",
	Setfsgid:          "setfsgid",
	Getsid:            "getsid",
	Capget:            "capget",
	Capset:            "capset",
	RtSigpending:      "rt_sigpending",
	RtSigtimedwait:    "rt_sigtimedwait",
	RtSigqueueinfo:    "rt_sigqueueinfo",
	RtSigsuspend:      "rt_sigsuspend",
	Sigaltstack:       "sigaltstack",
	Mknod:             "mknod",
	SysPersonality:    "personality",
	Statfs:            "statfs",
	Fstatfs:           "fstatfs",
	Getpriority:       "getpriority",
	Setpriority:       "setpriority",
	SchedSetscheduler: "sched_setscheduler",
	SchedGetscheduler: "sched_getscheduler",
	Mlock:             "mlock",
	Munlock:           "munlock",
	Mlockall:          "mlockall",
	Munlockall:        "munlockall",
	Prctl:             "prctl",
	ArchPrctl:         "arch_prctl",
	Setrlimit:         "setrlimit",
	Chroot:            "chroot",
	Sync:              "sync",
	Acct:              "acct",
	Settimeofday:      "settimeofday",
	Mount:             "mount",
	Umount2:           "umount2",
	Reboot:            "reboot",
	Sethostname:       "sethostname",
	Setdomainname:     "setdomainname",
	Gettid:            "gettid",
	Futex:             "futex",
	SchedSetaffinity:  "sched_setaffinity",
	SchedGetaffinity:  "sched_getaffinity",
	SetTidAddress:     "set_tid_address",
	RestartSyscall:    "restart_syscall",
	Timer_create:      "timer_create",
	ClockGettime:      "clock_gettime",
	ClockNanosleep:    "clock_nanosleep",
	ExitGroup:         "exit_group",
	EpollWait:         "epoll_wait",
	EpollCtl:          "epoll_ctl",
	Tgkill:            "tgkill",
	Utimes:            "utimes",
	Waitid:            "waitid",
	Openat:            "openat",
	Mkdirat:           "mkdirat",
	Mknodat:           "mknodat",
	Fchownat:          "fchownat",
	Newfstatat:        "newfstatat",
	Unlinkat:          "unlinkat",
	Renameat:          "renameat",
	Linkat:            "linkat",
	Symlinkat:         "symlinkat",
	Readlinkat:        "readlinkat",
	Fchmodat:          "fchmodat",
	Faccessat:         "faccessat",
	Unshare:           "unshare",
	SetRobustList:     "set_robust_list",
	GetRobustList:     "get_robust_list",
	Splice:            "splice",
	Tee:               "tee",
	Utimensat:         "utimensat",
	EpollPwait:        "epoll_pwait",
	Signalfd:          "signalfd",
	TimerfdCreate:     "timerfd_create",
	Eventfd:           "eventfd",
	Fallocate:         "fallocate",
	Accept4:           "accept4",
	Eventfd2:          "eventfd2",
	EpollCreate1:      "epoll_create1",
	Dup3:              "dup3",
	Pipe2:             "pipe2",
	InotifyInit1:      "inotify_init1",
	Preadv:            "preadv",
	Pwritev:           "pwritev",
	RecvMmsg:          "recvmmsg",
	Prlimit64:         "prlimit64",
	Syncfs:            "syncfs",
	SendMmsg:          "sendmmsg",
	Setns:             "setns",
	Getcpu:            "getcpu",
	ProcessVmReadv:    "process_vm_readv",
	ProcessVmWritev:   "process_vm_writev",
	Kcmp:              "kcmp",
	FinitModule:       "finit_module",
	SchedSetattr:      "sched_setattr",
	SchedGetattr:      "sched_getattr",
	Renameat2:         "renameat2",
	Seccomp:           "seccomp",
	Getrandom:         "getrandom",
	MemfdCreate:       "memfd_create",
	Bpf:               "bpf",
	Execveat:          "execveat",
	Userfaultfd:       "userfaultfd",
	Membarrier:        "membarrier",
	Mlock2:            "mlock2",
	CopyFileRange:     "copy_file_range",
	Preadv2:           "preadv2",
	Pwritev2:          "pwritev2",
	Statx:             "statx",
	Rseq:              "rseq",
	Openat2:           "openat2",
	Faccessat2:        "faccessat2",
	CloseRange:        "close_range",
	Clone3:            "clone3",
	Tkill:             "tkill",
	Vhangup:           "vhangup",
	SchedSetparam:     "sched_setparam",
	ClockSettime:      "clock_settime",
	ClockGetres:       "clock_getres",
	AddKey:            "add_key",
	RequestKey:        "request_key",
	Keyctl:            "keyctl",
	InotifyAddWatch:   "inotify_add_watch",
	InotifyRmWatch:    "inotify_rm_watch",
	Pselect6:          "pselect6",
	Ppoll:             "ppoll",
	SyncFileRange:     "sync_file_range",
	TimerfdGettime:    "timerfd_gettime",
	FanotifyInit:      "fanotify_init",
	FanotifyMark:      "fanotify_mark",
	ClockAdjtime:      "clock_adjtime",
	Sigsuspend:        "sigsuspend",
}
