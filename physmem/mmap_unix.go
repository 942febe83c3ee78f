// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build unix

package physmem

import (
	"math"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ezrec/rawread/internal"
)

// Map maps length bytes of device, starting at offset, read-only.
// The offset need not be page aligned.
func Map(device string, offset, length uint) (mp *Mapping, err error) {
	defer func() {
		if err != nil {
			err = &ErrMapping{Device: device, Offset: offset, Length: length, Err: err}
		}
	}()

	if internal.AddOverflows(offset, length) {
		err = ErrRange
		return
	}

	inf, err := os.OpenFile(device, os.O_RDONLY|os.O_SYNC, 0)
	if err != nil {
		return
	}
	defer inf.Close()

	if length == 0 {
		mp = &Mapping{Device: device, Offset: offset}
		return
	}

	page := uint(unix.Getpagesize())
	base := internal.AlignDown(offset, page)
	delta := offset - base
	size := delta + length
	if size > math.MaxInt || uint64(base) > math.MaxInt64 {
		err = ErrRange
		return
	}

	data, err := unix.Mmap(int(inf.Fd()), int64(base), int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return
	}

	mp = &Mapping{
		Device: device,
		Offset: offset,
		data:   data,
		view:   data[delta:size:size],
	}

	return
}

// Close unmaps the range.
func (mp *Mapping) Close() (err error) {
	if mp.data == nil {
		return
	}

	err = unix.Munmap(mp.data)
	mp.data = nil
	mp.view = nil

	return
}
