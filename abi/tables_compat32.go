package abi

// compat32Entries is the classic i386 syscall table, used by 32-bit
// binaries running under a 64-bit kernel (personality detected via CS
// 0x23). Numbers differ from native64 for almost every entry; this is
// exactly why a traced process's personality must be resolved before its
// Orig_rax value means anything.
var compat32Entries = []tableEntry{
	{1, Exit}, {2, Fork}, {3, Read}, {4, Write}, {5, Open}, {6, Close},
	{9, Link}, {10, Unlink}, {11, Execve}, {12, Chdir}, {14, Mknod},
	{15, Chmod}, {16, Lchown}, {19, Lseek}, {20, Getpid}, {21, Mount},
	{22, Umount2}, {23, Setuid}, {24, Getuid}, {26, Ptrace}, {27, Alarm},
	{29, Pause}, {33, Access}, {36, Sync}, {37, Kill}, {38, Rename},
	{39, Mkdir}, {40, Rmdir}, {41, Dup}, {42, Pipe}, {43, Times},
	{45, Brk}, {46, Setgid}, {47, Getgid}, {51, Acct}, {52, Umount2},
	{54, Ioctl}, {55, Fcntl}, {57, Setpgid}, {60, Umask}, {61, Chroot},
	{63, Dup2}, {64, Getppid}, {65, Getpgrp}, {66, Setsid}, {70, Setreuid},
	{71, Setregid}, {72, Sigsuspend},
	{73, RtSigpending}, {74, Sethostname}, {75, Setrlimit},
	{76, Getrlimit}, {77, Getrusage}, {78, Gettimeofday},
	{79, Settimeofday}, {80, Getgroups}, {81, Setgroups}, {82, Select},
	{83, Symlink}, {85, Readlink}, {88, Reboot}, {90, Mmap},
	{91, Munmap}, {92, Truncate}, {93, Ftruncate}, {94, Fchmod},
	{95, Fchown}, {96, Getpriority}, {97, Setpriority}, {99, Statfs},
	{100, Fstatfs}, {102, Socketpair}, {103, Syslog}, {104, Setitimer},
	{105, Getitimer}, {106, Stat}, {107, Lstat}, {108, Fstat},
	{110, Vhangup}, {114, Wait4}, {116, Sysinfo}, {118, Fsync},
	{120, Clone}, {122, Uname}, {125, Mprotect}, {126, RtSigprocmask},
	{132, Getpgid}, {133, Fchdir}, {136, SysPersonality}, {138, Setfsuid},
	{139, Setfsgid}, {140, Lseek}, {141, Getdents}, {142, Select},
	{143, Flock}, {144, Msync}, {145, Readv}, {146, Writev},
	{147, Getsid}, {148, Fdatasync}, {150, Mlock}, {151, Munlock},
	{152, Mlockall}, {153, Munlockall}, {154, SchedSetparam},
	{156, SchedSetscheduler}, {157, SchedGetscheduler},
	{158, SchedYield}, {162, Nanosleep}, {163, Mremap}, {164, Setresuid},
	{165, Getresuid}, {168, Poll}, {170, Setresgid}, {171, Getresgid},
	{172, Prctl}, {173, RtSigreturn}, {174, RtSigaction},
	{175, RtSigprocmask}, {176, RtSigpending}, {177, RtSigtimedwait},
	{178, RtSigqueueinfo}, {179, RtSigsuspend}, {180, Pread64},
	{181, Pwrite64}, {182, Chown}, {183, Getcwd}, {184, Capget},
	{185, Capset}, {186, Sigaltstack}, {187, Sendfile}, {190, Vfork},
	{191, Getrlimit}, {196, Lstat}, {198, Lchown}, {199, Getuid},
	{200, Getgid}, {201, Geteuid}, {202, Getegid}, {203, Setreuid},
	{204, Setregid}, {205, Getgroups}, {206, Setgroups}, {207, Fchown},
	{208, Setresuid}, {209, Getresuid}, {210, Setresgid},
	{211, Getresgid}, {212, Chown}, {213, Setuid}, {214, Setgid},
	{215, Setfsuid}, {216, Setfsgid}, {217, SysPersonality}, {218, Mincore},
	{219, Madvise}, {220, Getdents}, {221, Fcntl}, {224, Gettid},
	{238, Tkill}, {240, Futex}, {241, SchedSetaffinity},
	{242, SchedGetaffinity}, {252, ExitGroup}, {254, EpollCreate1},
	{255, EpollCtl}, {256, EpollWait}, {258, SetTidAddress},
	{264, ClockSettime}, {265, ClockGettime}, {266, ClockGetres},
	{267, ClockNanosleep}, {270, Tgkill}, {271, Utimes},
	{284, Waitid}, {286, AddKey}, {287, RequestKey}, {288, Keyctl},
	{292, InotifyAddWatch}, {293, InotifyRmWatch},
	{295, Openat}, {296, Mkdirat}, {297, Mknodat}, {298, Fchownat},
	{300, Newfstatat}, {301, Unlinkat}, {302, Renameat}, {303, Linkat},
	{304, Symlinkat}, {305, Readlinkat}, {306, Fchmodat}, {307, Faccessat},
	{308, Pselect6}, {309, Ppoll}, {310, Unshare}, {311, SetRobustList},
	{312, GetRobustList}, {313, Splice}, {314, SyncFileRange},
	{315, Tee}, {317, Getcpu}, {319, Utimensat}, {320, Signalfd},
	{321, TimerfdCreate}, {322, Eventfd}, {323, Fallocate},
	{325, TimerfdGettime}, {327, Eventfd2},
	{329, Dup3}, {330, Pipe2}, {331, InotifyInit1}, {333, Preadv},
	{334, Pwritev}, {337, RecvMmsg}, {338, FanotifyInit},
	{339, FanotifyMark}, {340, Prlimit64}, {343, ClockAdjtime},
	{344, Syncfs}, {345, SendMmsg}, {346, Setns}, {347, ProcessVmReadv},
	{348, ProcessVmWritev}, {349, Kcmp}, {350, FinitModule},
	{351, SchedSetattr}, {352, SchedGetattr}, {353, Renameat2},
	{354, Seccomp}, {355, Getrandom}, {356, MemfdCreate}, {357, Bpf},
	{358, Execveat}, {359, Socket}, {360, Socketpair}, {361, Bind},
	{362, Connect}, {363, Listen}, {364, Accept4}, {365, Getsockopt},
	{366, Setsockopt}, {367, Getsockname}, {368, Getpeername},
	{369, Sendto}, {370, Sendmsg}, {371, Recvfrom}, {372, Recvmsg},
	{373, Shutdown}, {374, Userfaultfd}, {375, Membarrier},
	{376, Mlock2}, {377, CopyFileRange}, {378, Preadv2},
	{379, Pwritev2}, {383, Statx}, {384, ArchPrctl}, {386, Rseq},
	{437, Clone3}, {436, CloseRange}, {438, Openat2}, {439, Faccessat2},
}
