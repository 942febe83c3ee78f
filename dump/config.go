// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package dump

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadSentinels executes a Starlark sentinel configuration, which must assign
// a list or tuple of 32-bit integers to 'sentinels'. ALL_ONES and DEADBEEF
// are predeclared.
//
// src is as for starlark.ExecFile; if nil, the file is read from filename.
func LoadSentinels(filename string, src any) (sentinels Sentinels, err error) {
	defer func() {
		if err != nil {
			err = &ErrSentinelConfig{Filename: filename, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "sentinels"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"ALL_ONES": starlark.MakeUint64(uint64(ALL_ONES)),
		"DEADBEEF": starlark.MakeUint64(uint64(DEADBEEF)),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	st_value, ok := dict["sentinels"]
	if !ok {
		err = ErrSentinelMissing
		return
	}

	var st_list starlark.Indexable
	switch st_value.(type) {
	case *starlark.List, starlark.Tuple:
		st_list = st_value.(starlark.Indexable)
	default:
		err = ErrSentinelType
		return
	}

	sentinels = make(Sentinels, st_list.Len())
	for n := range st_list.Len() {
		st_int, ok := st_list.Index(n).(starlark.Int)
		if !ok {
			sentinels = nil
			err = ErrSentinelType
			return
		}
		st_uint64, ok := st_int.Uint64()
		if !ok || st_uint64 > math.MaxUint32 {
			sentinels = nil
			err = ErrSentinelRange
			return
		}
		sentinels[uint32(st_uint64)] = struct{}{}
	}

	return
}
