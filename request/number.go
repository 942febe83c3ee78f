// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package request

import (
	"strconv"
	"strings"
)

// ParseNumber parses an unsigned numeral in decimal, octal with a leading
// '0', or hexadecimal with a leading '0x'.
func ParseNumber(text string) (value uint, err error) {
	digits, base := text, 10
	switch {
	case strings.HasPrefix(text, "0x"):
		digits, base = text[2:], 16
	case text == "0":
		// A lone zero has no octal digits after its prefix.
	case strings.HasPrefix(text, "0"):
		digits, base = text[1:], 8
	}

	// ParseUint only permits '_' separators for base 0, and never a sign.
	v64, err := strconv.ParseUint(digits, base, strconv.IntSize)
	if err != nil {
		err = ErrMalformedNumber(text)
		return
	}

	value = uint(v64)
	return
}
