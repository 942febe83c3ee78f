// Package dump renders a span of 32-bit words as rows of hexadecimal values.
//
// Each row starts with the address of its first word, followed by the words
// of the row in increasing address order. Every row holds the requested number
// of words, except the final row of a span that does not divide evenly.
//
// Words matching a known filler pattern (the sentinels) are printed plainly.
// All other words are highlighted, so values of interest stand out.
package dump
