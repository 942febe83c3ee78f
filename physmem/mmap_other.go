// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !unix

package physmem

// Map always fails, as there is no physical memory device to map.
func Map(device string, offset, length uint) (mp *Mapping, err error) {
	err = &ErrMapping{Device: device, Offset: offset, Length: length, Err: ErrUnsupported}
	return
}

// Close does nothing.
func (mp *Mapping) Close() (err error) {
	mp.view = nil
	return
}
