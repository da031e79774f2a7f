package resp

import (
	"bytes"

	"respfuzz/pkg/conv"
)

const (
	// MaxBulkSize is the largest bulk string accepted by Decode.
	MaxBulkSize = 512 * 1024 * 1024
	// MaxDepth bounds array nesting.
	MaxDepth = 1024
)

type frame struct {
	arr []Value
	n   int
}

// Decode parses the first frame of buf. It returns the value and the number
// of bytes consumed. Nested arrays are walked with an explicit stack, the
// cursor only moves forward. A buffer that ends inside the frame yields a
// ProtocolError with Truncated set.
func Decode(buf []byte) (Value, int, error) {
	var (
		stack []frame
		pos   int
	)
	for {
		if pos >= len(buf) {
			return Value{}, pos, truncated(pos, "missing type byte")
		}
		start := pos
		tp := Type(buf[pos])
		line, next, err := readLine(buf, pos+1)
		if err != nil {
			return Value{}, pos, err
		}
		var cur Value
		switch tp {
		case TypeSimple, TypeError:
			cur = Value{Type: tp, Str: string(line)}
		case TypeInteger:
			i, err := conv.Btoi(line)
			if err != nil {
				return Value{}, start, malformed(start+1, "invalid integer %q", line)
			}
			cur = Value{Type: tp, Int: i}
		case TypeBulk:
			size, ok := parseLength(line)
			if !ok {
				return Value{}, start, malformed(start+1, "invalid bulk length %q", line)
			}
			if size == -1 {
				cur = Value{Type: tp, Null: true}
				break
			}
			if size < 0 || size > MaxBulkSize {
				return Value{}, start, malformed(start+1, "bulk length %d out of range", size)
			}
			end := next + int(size)
			if end+2 > len(buf) {
				return Value{}, start, &ProtocolError{Offset: next, Reason: "bulk string shorter than declared length", Truncated: true, Need: end + 2}
			}
			if buf[end] != '\r' || buf[end+1] != '\n' {
				return Value{}, start, malformed(end, "bulk string not terminated by CRLF")
			}
			cur = Value{Type: tp, Str: string(buf[next:end])}
			next = end + 2
		case TypeArray:
			count, ok := parseLength(line)
			if !ok {
				return Value{}, start, malformed(start+1, "invalid array length %q", line)
			}
			if count == -1 {
				cur = Value{Type: tp, Null: true}
				break
			}
			if count < 0 || count > MaxBulkSize {
				return Value{}, start, malformed(start+1, "array length %d out of range", count)
			}
			if count == 0 {
				cur = Value{Type: tp}
				break
			}
			if len(stack) >= MaxDepth {
				return Value{}, start, malformed(start, "array nesting deeper than %d", MaxDepth)
			}
			// every element takes at least 3 bytes
			hint := int(count)
			if rem := (len(buf) - next) / 3; hint > rem {
				hint = rem
			}
			stack = append(stack, frame{arr: make([]Value, 0, hint), n: int(count)})
			pos = next
			continue
		default:
			return Value{}, start, malformed(start, "unknown type byte %q", buf[start])
		}
		pos = next
		for {
			if len(stack) == 0 {
				return cur, pos, nil
			}
			top := &stack[len(stack)-1]
			top.arr = append(top.arr, cur)
			if len(top.arr) < top.n {
				break
			}
			cur = Value{Type: TypeArray, Array: top.arr}
			stack = stack[:len(stack)-1]
		}
	}
}

// readLine returns the bytes between off and the next CRLF and the offset
// just past it.
func readLine(buf []byte, off int) ([]byte, int, error) {
	if off > len(buf) {
		return nil, off, truncated(off, "missing line terminator")
	}
	idx := bytes.IndexByte(buf[off:], '\n')
	if idx < 0 {
		return nil, off, truncated(len(buf), "missing line terminator")
	}
	end := off + idx
	if idx == 0 || buf[end-1] != '\r' {
		return nil, off, malformed(end, "line not terminated by CRLF")
	}
	return buf[off : end-1], end + 1, nil
}

// parseLength parses a bulk or array header. Lengths are plain digits or
// -1, no sign other than '-' is allowed.
func parseLength(line []byte) (int64, bool) {
	if len(line) == 0 || line[0] == '+' {
		return 0, false
	}
	n, err := conv.Btoi(line)
	return n, err == nil
}
