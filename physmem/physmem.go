// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package physmem maps a range of the physical address space, read-only.
package physmem

const DEFAULT_DEVICE = "/dev/mem" // Physical memory device.

// Mapping is a read-only view of a physical address range.
type Mapping struct {
	Device string // Device the range was mapped from.
	Offset uint   // Physical address of the first byte of the view.

	data []byte // Page aligned mapping.
	view []byte // Requested range, within data.
}

// Bytes returns the mapped range. It is only valid until Close.
func (mp *Mapping) Bytes() []byte {
	return mp.view
}

// Len returns the length of the mapped range, in bytes.
func (mp *Mapping) Len() uint {
	return uint(len(mp.view))
}
