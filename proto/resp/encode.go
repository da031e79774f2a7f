package resp

import (
	"fmt"
	"strconv"
	"strings"

	"respfuzz/pkg/conv"
)

var (
	crlfBytes     = []byte("\r\n")
	nilBulkBytes  = []byte("$-1\r\n")
	nilArrayBytes = []byte("*-1\r\n")

	lineReplacer = strings.NewReplacer("\r", " ", "\n", " ")
)

// Encode returns the wire form of v.
//
// Strings and byte slices become bulk strings, integers become ':' frames,
// slices become arrays, nil becomes the nil bulk string and any other scalar
// is sent as a simple string.
func Encode(v interface{}) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the wire form of v to dst.
func AppendEncode(dst []byte, v interface{}) []byte {
	switch x := v.(type) {
	case nil:
		return append(dst, nilBulkBytes...)
	case Value:
		return x.appendTo(dst)
	case *Value:
		if x == nil {
			return append(dst, nilBulkBytes...)
		}
		return x.appendTo(dst)
	case string:
		return appendBulk(dst, x)
	case []byte:
		return appendBulk(dst, string(x))
	case Error:
		return appendLine(append(dst, byte(TypeError)), string(x))
	case int:
		return appendInt(dst, int64(x))
	case int8:
		return appendInt(dst, int64(x))
	case int16:
		return appendInt(dst, int64(x))
	case int32:
		return appendInt(dst, int64(x))
	case int64:
		return appendInt(dst, x)
	case uint:
		return appendUint(dst, uint64(x))
	case uint8:
		return appendUint(dst, uint64(x))
	case uint16:
		return appendUint(dst, uint64(x))
	case uint32:
		return appendUint(dst, uint64(x))
	case uint64:
		return appendUint(dst, x)
	case []string:
		dst = appendHeader(dst, TypeArray, int64(len(x)))
		for _, s := range x {
			dst = appendBulk(dst, s)
		}
		return dst
	case [][]byte:
		dst = appendHeader(dst, TypeArray, int64(len(x)))
		for _, b := range x {
			dst = appendBulk(dst, string(b))
		}
		return dst
	case []interface{}:
		dst = appendHeader(dst, TypeArray, int64(len(x)))
		for _, e := range x {
			dst = AppendEncode(dst, e)
		}
		return dst
	case []Value:
		dst = appendHeader(dst, TypeArray, int64(len(x)))
		for _, e := range x {
			dst = e.appendTo(dst)
		}
		return dst
	}
	return appendLine(append(dst, byte(TypeSimple)), fmt.Sprint(v))
}

// EncodeCommand encodes argv as a multibulk request.
func EncodeCommand(argv ...string) []byte {
	return AppendEncode(nil, argv)
}

func (v Value) appendTo(dst []byte) []byte {
	switch v.Type {
	case TypeSimple, TypeError:
		return appendLine(append(dst, byte(v.Type)), v.Str)
	case TypeInteger:
		return appendInt(dst, v.Int)
	case TypeBulk:
		if v.Null {
			return append(dst, nilBulkBytes...)
		}
		return appendBulk(dst, v.Str)
	case TypeArray:
		if v.Null {
			return append(dst, nilArrayBytes...)
		}
		dst = appendHeader(dst, TypeArray, int64(len(v.Array)))
		for _, e := range v.Array {
			dst = e.appendTo(dst)
		}
		return dst
	}
	// the zero Value
	return append(dst, nilBulkBytes...)
}

func appendHeader(dst []byte, tp Type, n int64) []byte {
	dst = append(dst, byte(tp))
	dst = conv.AppendInt(dst, n)
	return append(dst, crlfBytes...)
}

func appendBulk(dst []byte, s string) []byte {
	dst = appendHeader(dst, TypeBulk, int64(len(s)))
	dst = append(dst, s...)
	return append(dst, crlfBytes...)
}

func appendInt(dst []byte, i int64) []byte {
	return appendHeader(dst, TypeInteger, i)
}

func appendUint(dst []byte, u uint64) []byte {
	dst = append(dst, byte(TypeInteger))
	dst = strconv.AppendUint(dst, u, 10)
	return append(dst, crlfBytes...)
}

// appendLine writes a simple string body. CR and LF cannot appear inside a
// line frame and are replaced by spaces.
func appendLine(dst []byte, s string) []byte {
	if strings.ContainsAny(s, "\r\n") {
		s = lineReplacer.Replace(s)
	}
	dst = append(dst, s...)
	return append(dst, crlfBytes...)
}
