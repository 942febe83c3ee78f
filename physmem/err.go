// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package physmem

import (
	"errors"

	"github.com/ezrec/rawread/translate"
)

var f = translate.From

var (
	ErrMap         = errors.New(f("mmap failed"))
	ErrRange       = errors.New(f("range does not fit the address space"))
	ErrUnsupported = errors.New(f("physical memory mapping is not supported on this system"))
)

// ErrMapping describes the range that could not be mapped.
type ErrMapping struct {
	Device string
	Offset uint
	Length uint
	Err    error
}

func (err *ErrMapping) Error() string {
	return f("%v: %v at %#x, %#x bytes: %v", err.Device, ErrMap, err.Offset, err.Length, err.Err)
}

func (err *ErrMapping) Unwrap() error {
	return err.Err
}

// Is matches ErrMap.
func (err *ErrMapping) Is(target error) bool {
	return target == ErrMap
}
