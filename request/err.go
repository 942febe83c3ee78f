// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package request

import (
	"errors"

	"github.com/ezrec/rawread/translate"
)

var f = translate.From

var (
	ErrMisalignedAddress = errors.New(f("start_addr must be 32b aligned"))
	ErrMisalignedSize    = errors.New(f("size_bytes must be 32b aligned"))
	ErrZeroRowWidth      = errors.New(f("per_row must be nonzero"))
)

// ErrMalformedNumber is the text of an argument that is not a numeral,
// or that does not fit in a native unsigned integer.
type ErrMalformedNumber string

func (err ErrMalformedNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// Is matches any ErrMalformedNumber, regardless of its text.
func (err ErrMalformedNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrMalformedNumber)
	return
}

// ErrArgument names the positional argument that failed to parse.
type ErrArgument struct {
	Name string
	Err  error
}

func (err ErrArgument) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrArgument) Unwrap() error {
	return err.Err
}
