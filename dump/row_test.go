package dump

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rawread/request"
)

func collectRows(t *testing.T, addr, size, perRow uint) (rows []Row) {
	req, err := request.New(addr, size, perRow)
	assert.NoError(t, err)
	for row := range Rows(req) {
		rows = append(rows, row)
	}
	return
}

func TestRowsFull(t *testing.T) {
	assert := assert.New(t)

	rows := collectRows(t, 0x1000, 0x20, 4)
	assert.Equal([]Row{
		{Address: 0x1000, Offset: 0x00, Words: 4},
		{Address: 0x1010, Offset: 0x10, Words: 4},
	}, rows)
}

func TestRowsShort(t *testing.T) {
	assert := assert.New(t)

	rows := collectRows(t, 0x1000, 0x14, 4)
	assert.Equal([]Row{
		{Address: 0x1000, Offset: 0x00, Words: 4},
		{Address: 0x1010, Offset: 0x10, Words: 1},
	}, rows)
}

func TestRowsEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(collectRows(t, 0x1000, 0, 4))
}

func TestRowsStop(t *testing.T) {
	assert := assert.New(t)

	req, err := request.New(0, 0x100, 1)
	assert.NoError(err)

	count := 0
	for range Rows(req) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

// checkRows verifies that the rows cover every word of the request exactly
// once, and that only the final row is short.
func checkRows(t *testing.T, addr, size, perRow uint) {
	assert := assert.New(t)

	req, err := request.New(addr, size, perRow)
	if !assert.NoError(err) {
		return
	}

	words := size / WORD_SIZE
	next := uint(0)
	count := uint(0)
	var last Row
	for row := range Rows(req) {
		assert.Equal(next*WORD_SIZE, row.Offset)
		assert.Equal(addr+row.Offset, row.Address)
		assert.NotZero(row.Words)
		assert.LessOrEqual(row.Words, perRow)
		if count > 0 {
			assert.Equal(perRow, last.Words, "only the final row may be short")
		}
		next += row.Words
		last = row
		count++
	}

	assert.Equal(words, next)
	assert.Equal((words+perRow-1)/perRow, count)
	assert.Equal(req.Rows(), count)
	if count > 0 {
		if words%perRow != 0 {
			assert.Equal(words%perRow, last.Words)
		} else {
			assert.Equal(perRow, last.Words)
		}
	}
}

func TestRowsCoverage(t *testing.T) {
	for size := uint(0); size <= 0x100; size += WORD_SIZE {
		for perRow := uint(1); perRow <= 20; perRow++ {
			checkRows(t, 0xfee0_0000, size, perRow)
		}
	}
}

func FuzzRows(f *testing.F) {
	f.Add(uint32(0x1000), uint16(0x20), uint8(4))
	f.Add(uint32(0x1000), uint16(0x14), uint8(4))
	f.Add(uint32(0), uint16(0), uint8(1))
	f.Add(uint32(0xffff_fff0), uint16(0xc), uint8(255))

	f.Fuzz(func(t *testing.T, addr uint32, size uint16, perRow uint8) {
		if perRow == 0 {
			t.Skip()
		}
		checkRows(t, uint(addr)&^3, uint(size)&^3, uint(perRow))
	})
}

func TestWord(t *testing.T) {
	assert := assert.New(t)

	view := make([]byte, 12)
	binary.NativeEndian.PutUint32(view[0:], 0x0123_4567)
	binary.NativeEndian.PutUint32(view[4:], DEADBEEF)
	binary.NativeEndian.PutUint32(view[8:], ALL_ONES)

	assert.Equal(uint32(0x0123_4567), Word(view, 0))
	assert.Equal(DEADBEEF, Word(view, 4))
	assert.Equal(ALL_ONES, Word(view, 8))
}

func TestWordOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	view := make([]byte, 8)

	assert.PanicsWithValue(ErrOutOfBounds{Offset: 8, Length: 8}, func() { Word(view, 8) })
	assert.PanicsWithValue(ErrOutOfBounds{Offset: 6, Length: 8}, func() { Word(view, 6) })
	assert.PanicsWithValue(ErrOutOfBounds{Offset: ^uint(0), Length: 8}, func() { Word(view, ^uint(0)) })
	assert.PanicsWithValue(ErrOutOfBounds{Offset: 0, Length: 0}, func() { Word(nil, 0) })
	assert.NotPanics(func() { Word(view, 4) })
}
