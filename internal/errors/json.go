package errors

import (
	"bytes"
	"encoding/json"
	"errors"
)

// FromJSON turns a decoding failure of data, read from file, into a coded
// error located at the offending line and column.
func FromJSON(code, file string, data []byte, err error) *GoeyError {
	ge := New(code).WithDetail(err.Error())

	var offset int64 = -1
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntax):
		offset = syntax.Offset
	case errors.As(err, &typ):
		offset = typ.Offset
	}
	if offset < 0 {
		return ge
	}
	line, col := position(data, offset)
	ge.Location = &Location{File: file, Line: line, Column: col}
	ge.Context, ge.ContextStart = contextLines(data, line, 5)
	return ge
}

// position converts a byte offset into a 1-based line and column. Decoder
// offsets point just past the offending byte.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	col = len(before) - bytes.LastIndexByte(before, '\n') - 1
	if col < 1 {
		col = 1
	}
	return line, col
}

func contextLines(data []byte, target, size int) ([]string, int) {
	lines := bytes.Split(data, []byte("\n"))
	start := max(target-size/2, 1)
	end := min(target+size/2, len(lines))
	out := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, string(lines[n-1]))
	}
	return out, start
}
