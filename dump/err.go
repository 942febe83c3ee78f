// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package dump

import (
	"errors"

	"github.com/ezrec/rawread/translate"
)

var f = translate.From

var (
	ErrViewSize = errors.New(f("memory view does not match request size"))

	// Sentinel configuration errors
	ErrSentinelMissing = errors.New(f("'sentinels' is not defined"))
	ErrSentinelType    = errors.New(f("'sentinels' is not a list of integers"))
	ErrSentinelRange   = errors.New(f("sentinel is not a 32-bit value"))
)

// ErrOutOfBounds is raised, as a panic, when a word read falls outside the
// memory view.
type ErrOutOfBounds struct {
	Offset uint
	Length int
}

func (err ErrOutOfBounds) Error() string {
	return f("word at offset %#x is outside of %#x byte view", err.Offset, err.Length)
}

// ErrSentinelConfig indicates the sentinel configuration file that failed.
type ErrSentinelConfig struct {
	Filename string
	Err      error
}

func (err *ErrSentinelConfig) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrSentinelConfig) Unwrap() error {
	return err.Err
}
