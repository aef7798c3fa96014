package intcode

import (
	"slices"
)

// Memory is the fixed length word array a program executes against.
type Memory []int64

// Clone returns an independent copy of memory.
func (mem Memory) Clone() Memory {
	return slices.Clone(mem)
}

// Valid returns true if the address lies inside memory.
func (mem Memory) Valid(addr int64) bool {
	return addr >= 0 && addr < int64(len(mem))
}

// Load reads the word at an absolute address.
func (mem Memory) Load(addr int64) (value int64, err error) {
	if !mem.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Store writes the word at an absolute address.
func (mem Memory) Store(addr int64, value int64) (err error) {
	if !mem.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}
