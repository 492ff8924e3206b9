// Package memio reads NUL-terminated strings out of a traced process's
// address space, one machine word at a time via PTRACE_PEEKDATA.
//
// This deliberately does not use golang.org/x/sys/unix.ProcessVMReadv:
// process_vm_readv requires either the same-user/ptrace-permitted
// relationship that PEEKDATA also needs, or additional capability and
// yama ptrace_scope checks on some kernel configurations, and pulling in
// a second, more-restricted read path buys nothing here, since the
// tracer already holds a ptrace attachment to the tracee for every other
// operation it performs. Using PEEKDATA exclusively means path
// resolution never has a privilege mode process_vm_readv doesn't also
// need.
package memio

import (
	"fmt"
	"syscall"
	"unsafe"
)

const wordSize = int(unsafe.Sizeof(uintptr(0)))

// maxCStringBytes bounds the buffer-doubling loop so a corrupt or
// adversarial tracee (a path argument with no NUL for gigabytes) can't
// make the tracer spin forever reading its memory.
const maxCStringBytes = 1 << 20 // 1 MiB

// ReadCString reads a NUL-terminated byte string from the tracee's
// address space starting at addr, returning the bytes up to (not
// including) the terminator. It reads addr word-by-word, exactly as
// original_source/sandbox_linux.cpp's read_param, doubling its working
// buffer whenever the string hasn't terminated within what's been read
// so far.
func ReadCString(pid int, addr uintptr) ([]byte, error) {
	if addr == 0 {
		return nil, fmt.Errorf("memio: null address")
	}

	buf := make([]byte, 0, wordSize*8)
	word := make([]byte, wordSize)

	for offset := uintptr(0); len(buf) < maxCStringBytes; offset += uintptr(wordSize) {
		n, err := syscall.PtracePeekData(pid, addr+offset, word)
		if err != nil {
			return nil, fmt.Errorf("memio: peek pid %d at %#x: %w", pid, addr+offset, err)
		}
		chunk := word[:n]
		if i := indexByte(chunk, 0); i >= 0 {
			buf = append(buf, chunk[:i]...)
			return buf, nil
		}
		buf = append(buf, chunk...)
	}
	return nil, fmt.Errorf("memio: string at %#x exceeds %d bytes without a NUL terminator", addr, maxCStringBytes)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
