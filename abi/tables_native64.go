package abi

// native64Entries is the x86_64 syscall table, transcribed from
// original_source/syscalls_x86_64.h (the actual kernel ABI ordering).
var native64Entries = []tableEntry{
	{0, Read}, {1, Write}, {2, Open}, {3, Close}, {4, Stat}, {5, Fstat},
	{6, Lstat}, {7, Poll}, {8, Lseek}, {9, Mmap}, {10, Mprotect},
	{11, Munmap}, {12, Brk}, {13, RtSigaction}, {14, RtSigprocmask},
	{15, RtSigreturn}, {16, Ioctl}, {17, Pread64}, {18, Pwrite64},
	{19, Readv}, {20, Writev}, {21, Access}, {22, Pipe}, {23, Select},
	{24, SchedYield}, {25, Mremap}, {26, Msync}, {27, Mincore},
	{28, Madvise}, {32, Dup}, {33, Dup2}, {34, Pause}, {35, Nanosleep},
	{36, Getitimer}, {37, Alarm}, {38, Setitimer}, {39, Getpid},
	{40, Sendfile}, {41, Socket}, {42, Connect}, {43, Accept},
	{44, Sendto}, {45, Recvfrom}, {46, Sendmsg}, {47, Recvmsg},
	{48, Shutdown}, {49, Bind}, {50, Listen}, {51, Getsockname},
	{52, Getpeername}, {53, Socketpair}, {54, Setsockopt},
	{55, Getsockopt}, {56, Clone}, {57, Fork}, {58, Vfork}, {59, Execve},
	{60, Exit}, {61, Wait4}, {62, Kill}, {63, Uname}, {72, Fcntl},
	{73, Flock}, {74, Fsync}, {75, Fdatasync}, {76, Truncate},
	{77, Ftruncate}, {78, Getdents}, {79, Getcwd}, {80, Chdir},
	{81, Fchdir}, {82, Rename}, {83, Mkdir}, {84, Rmdir}, {85, Creat},
	{86, Link}, {87, Unlink}, {88, Symlink}, {89, Readlink}, {90, Chmod},
	{91, Fchmod}, {92, Chown}, {93, Fchown}, {94, Lchown}, {95, Umask},
	{96, Gettimeofday}, {97, Getrlimit}, {98, Getrusage}, {99, Sysinfo},
	{100, Times}, {101, Ptrace}, {102, Getuid}, {103, Syslog},
	{104, Getgid}, {105, Setuid}, {106, Setgid}, {107, Geteuid},
	{108, Getegid}, {109, Setpgid}, {110, Getppid}, {111, Getpgrp},
	{112, Setsid}, {113, Setreuid}, {114, Setregid}, {115, Getgroups},
	{116, Setgroups}, {117, Setresuid}, {118, Getresuid},
	{119, Setresgid}, {120, Getresgid}, {121, Getpgid}, {122, Setfsuid},
	{123, Setfsgid}, {124, Getsid}, {125, Capget}, {126, Capset},
	{127, RtSigpending}, {128, RtSigtimedwait}, {129, RtSigqueueinfo},
	{130, RtSigsuspend}, {131, Sigaltstack}, {133, Mknod},
	{135, SysPersonality}, {137, Statfs}, {138, Fstatfs}, {140, Getpriority},
	{141, Setpriority}, {144, SchedSetscheduler}, {145, SchedGetscheduler},
	{149, Mlock}, {150, Munlock}, {151, Mlockall}, {152, Munlockall},
	{157, Prctl}, {158, ArchPrctl}, {160, Setrlimit}, {161, Chroot},
	{162, Sync}, {163, Acct}, {164, Settimeofday}, {165, Mount},
	{166, Umount2}, {169, Reboot}, {170, Sethostname},
	{171, Setdomainname}, {186, Gettid}, {202, Futex},
	{203, SchedSetaffinity}, {204, SchedGetaffinity}, {218, SetTidAddress},
	{219, RestartSyscall}, {222, Timer_create}, {228, ClockGettime},
	{230, ClockNanosleep}, {231, ExitGroup}, {232, EpollWait},
	{233, EpollCtl}, {200, Tkill}, {234, Tgkill}, {235, Utimes},
	{247, Waitid}, {257, Openat}, {258, Mkdirat}, {259, Mknodat},
	{260, Fchownat}, {262, Newfstatat}, {263, Unlinkat}, {264, Renameat},
	{265, Linkat}, {266, Symlinkat}, {267, Readlinkat}, {268, Fchmodat},
	{269, Faccessat}, {272, Unshare}, {273, SetRobustList},
	{274, GetRobustList}, {275, Splice}, {276, Tee}, {280, Utimensat},
	{281, EpollPwait}, {282, Signalfd}, {283, TimerfdCreate},
	{284, Eventfd}, {285, Fallocate}, {288, Accept4}, {290, Eventfd2},
	{291, EpollCreate1}, {292, Dup3}, {293, Pipe2}, {294, InotifyInit1},
	{295, Preadv}, {296, Pwritev}, {299, RecvMmsg}, {302, Prlimit64},
	{306, Syncfs}, {307, SendMmsg}, {308, Setns}, {309, Getcpu},
	{310, ProcessVmReadv}, {311, ProcessVmWritev}, {312, Kcmp},
	{313, FinitModule}, {314, SchedSetattr}, {315, SchedGetattr},
	{316, Renameat2}, {317, Seccomp}, {318, Getrandom},
	{319, MemfdCreate}, {321, Bpf}, {322, Execveat}, {323, Userfaultfd},
	{324, Membarrier}, {325, Mlock2}, {326, CopyFileRange},
	{327, Preadv2}, {328, Pwritev2}, {332, Statx}, {334, Rseq},
	{435, Clone3}, {436, CloseRange}, {437, Openat2}, {439, Faccessat2},
}
