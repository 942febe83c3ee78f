// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package dump

import (
	"encoding/binary"
	"iter"

	"github.com/ezrec/rawread/request"
)

const WORD_SIZE = request.WORD_SIZE

// Row is a single line of the dump.
type Row struct {
	Address uint // Physical address of the first word.
	Offset  uint // Offset of the first word in the memory view.
	Words   uint // Number of words in the row.
}

// Rows returns the rows covering the request, in increasing address order.
// Only the final row may be short.
func Rows(req request.Request) iter.Seq[Row] {
	return func(yield func(row Row) bool) {
		perRow := req.PerRow()
		for n := range req.Rows() {
			offset := n * perRow * WORD_SIZE
			words := perRow
			if remain := (req.Size() - offset) / WORD_SIZE; remain < perRow {
				words = remain
			}
			row := Row{
				Address: req.Address() + offset,
				Offset:  offset,
				Words:   words,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Word returns the native byte order word at offset in the view.
// Reading outside of the view is a defect, and panics with ErrOutOfBounds.
func Word(view []byte, offset uint) uint32 {
	end := offset + WORD_SIZE
	if end < offset || end > uint(len(view)) {
		panic(ErrOutOfBounds{Offset: offset, Length: len(view)})
	}

	return binary.NativeEndian.Uint32(view[offset:end])
}
