// Package abi provides the canonical syscall identifier space and the
// per-personality (native64/compat32/x32) syscall number tables used to
// translate a traced process's raw Orig_rax value into something the
// policy engine can reason about independent of which ABI the tracee is
// actually running under.
package abi

import "fmt"

// Personality identifies which calling convention and syscall numbering a
// traced process is currently executing under. A single tracee can change
// personality across its lifetime (a 64-bit loader exec'ing a 32-bit
// binary), so it is derived fresh from registers on every stop rather than
// cached once per pid.
type Personality int

const (
	Native64 Personality = iota
	Compat32
	X32
)

func (p Personality) String() string {
	switch p {
	case Native64:
		return "native64"
	case Compat32:
		return "compat32"
	case X32:
		return "x32"
	default:
		return fmt.Sprintf("personality(%d)", int(p))
	}
}

// x32SyscallBit is OR'd into a syscall number by x32 binaries; the kernel
// (and this package) mask it off before table lookup.
const x32SyscallBit = 0x40000000

// ID is a canonical syscall identifier shared across all personalities.
// None is the zero value and means "no canonical id at this slot" —
// either the raw number is out of range for the personality, or that
// personality has no syscall at that number.
type ID int

// Table is a single personality's syscall number <-> canonical ID mapping.
// numberToID is indexed directly by raw kernel syscall number (after
// masking the x32 bit, for X32). idToNumber is the inverse.
type Table struct {
	personality Personality
	numberToID  []ID
	idToNumber  map[ID]uint64
}

// NumberToID resolves a raw Orig_rax value observed under the given
// personality to a canonical ID, or None if the personality has no
// syscall at that number (or the number is out of the table's range).
func (t *Table) NumberToID(number uint64) ID {
	n := number
	if t.personality == X32 {
		n &^= x32SyscallBit
	}
	if n >= uint64(len(t.numberToID)) {
		return None
	}
	return t.numberToID[n]
}

// IDToNumber is the inverse of NumberToID. ok is false if this
// personality does not implement the given canonical syscall. For X32,
// the returned number carries the x32SyscallBit tag NumberToID strips
// off, so a round trip through NumberToID(IDToNumber(id)) recovers id
// and a caller writing the number back to Orig_rax reproduces the wire
// form the kernel expects from an x32 tracee.
func (t *Table) IDToNumber(id ID) (number uint64, ok bool) {
	number, ok = t.idToNumber[id]
	if ok && t.personality == X32 {
		number |= x32SyscallBit
	}
	return
}

// tableFor returns the built table for a personality. Panics on an
// unrecognized personality value, which would indicate a programming
// error (an out-of-range CS/DS decode), not a runtime condition callers
// need to handle.
func tableFor(p Personality) *Table {
	switch p {
	case Native64:
		return &native64Table
	case Compat32:
		return &compat32Table
	case X32:
		return &x32Table
	default:
		panic(fmt.Sprintf("abi: unknown personality %d", int(p)))
	}
}

// NumberToID is a convenience wrapper over tableFor(p).NumberToID.
func NumberToID(p Personality, number uint64) ID {
	return tableFor(p).NumberToID(number)
}

// IDToNumber is a convenience wrapper over tableFor(p).IDToNumber.
func IDToNumber(p Personality, id ID) (uint64, bool) {
	return tableFor(p).IDToNumber(id)
}

// Name returns the canonical syscall name, or "?" for None or any id
// outside the generated range.
func Name(id ID) string {
	if id <= None || int(id) >= len(idNames) {
		return "?"
	}
	return idNames[id]
}

// Lookup returns the canonical ID for a syscall name, or None if the name
// isn't in the generated set. Used by config loading to translate a
// human-written whitelist ("open", "read", ...) into IDs once at startup.
func Lookup(name string) ID {
	if id, ok := nameToID[name]; ok {
		return id
	}
	return None
}

func buildTable(p Personality, entries []tableEntry) Table {
	maxNum := uint64(0)
	for _, e := range entries {
		if e.number > maxNum {
			maxNum = e.number
		}
	}
	numberToID := make([]ID, maxNum+1)
	idToNumber := make(map[ID]uint64, len(entries))
	for _, e := range entries {
		numberToID[e.number] = e.id
		idToNumber[e.id] = e.number
	}
	return Table{personality: p, numberToID: numberToID, idToNumber: idToNumber}
}

type tableEntry struct {
	number uint64
	id     ID
}

var (
	native64Table Table
	compat32Table Table
	x32Table      Table
	nameToID      map[string]ID
)

func init() {
	native64Table = buildTable(Native64, native64Entries)
	compat32Table = buildTable(Compat32, compat32Entries)
	x32Table = buildTable(X32, x32Entries)

	nameToID = make(map[string]ID, len(idNames))
	for i, n := range idNames {
		if i == 0 {
			continue
		}
		nameToID[n] = ID(i)
	}
}
