// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package request validates what region of physical memory to dump, and how
// many 32-bit words to show on each row.
package request

import (
	"strings"
)

const WORD_SIZE = 4 // Size of a word, in bytes.

// Request is a validated dump request. It is immutable once created.
type Request struct {
	addr   uint
	size   uint
	perRow uint
}

// New validates the start address, size in bytes, and words per row.
// The first violated constraint is returned as the error.
func New(addr, size, perRow uint) (req Request, err error) {
	switch {
	case addr%WORD_SIZE != 0:
		err = ErrMisalignedAddress
	case size%WORD_SIZE != 0:
		err = ErrMisalignedSize
	case perRow == 0:
		err = ErrZeroRowWidth
	default:
		req = Request{addr: addr, size: size, perRow: perRow}
	}

	return
}

// Parse parses the textual start address, size in bytes, and words per row,
// then validates them with New.
func Parse(addr, size, perRow string) (req Request, err error) {
	var values [3]uint
	args := [3]struct{ name, text string }{
		{"start_addr", addr},
		{"size_bytes", size},
		{"per_row", perRow},
	}

	for n, arg := range args {
		values[n], err = ParseNumber(arg.text)
		if err != nil {
			err = ErrArgument{Name: arg.name, Err: err}
			return
		}
	}

	return New(values[0], values[1], values[2])
}

// Address returns the physical start address, in bytes.
func (req Request) Address() uint {
	return req.addr
}

// Size returns the span to read, in bytes.
func (req Request) Size() uint {
	return req.size
}

// PerRow returns the number of words per row.
func (req Request) PerRow() uint {
	return req.perRow
}

// End returns the address one past the last byte of the span.
func (req Request) End() uint {
	return req.addr + req.size
}

// Words returns the number of words in the span.
func (req Request) Words() uint {
	return req.size / WORD_SIZE
}

// Rows returns the number of rows needed to show every word of the span.
func (req Request) Rows() uint {
	words := req.Words()
	rows := words / req.perRow
	if words%req.perRow != 0 {
		rows++
	}
	return rows
}

func (req Request) String() string {
	var sb strings.Builder
	sb.WriteString(f("start_addr : %#x\n", req.addr))
	sb.WriteString(f("size_bytes : %#x\n", req.size))
	sb.WriteString(f("per_row    : %v\n", req.perRow))
	return sb.String()
}
