package conv

import (
	"strconv"
)

const (
	minItoa = -128
	maxItoa = 64 * 1024
)

var (
	itoaOffset [maxItoa - minItoa + 1]uint32
	itoaBuffer []byte
)

func init() {
	for i := range itoaOffset {
		itoaOffset[i] = uint32(len(itoaBuffer))
		itoaBuffer = strconv.AppendInt(itoaBuffer, int64(i+minItoa), 10)
	}
}

// AppendInt appends the decimal form of i to dst.
// Small values, which dominate frame headers, are served from a table.
func AppendInt(dst []byte, i int64) []byte {
	if i >= minItoa && i <= maxItoa {
		beg := itoaOffset[i-minItoa]
		if i == maxItoa {
			return append(dst, itoaBuffer[beg:]...)
		}
		end := itoaOffset[i-minItoa+1]
		return append(dst, itoaBuffer[beg:end]...)
	}
	return strconv.AppendInt(dst, i, 10)
}

// Btoi returns the corresponding value i.
func Btoi(b []byte) (int64, error) {
	if len(b) != 0 && len(b) < 10 {
		var neg, i = false, 0
		switch b[0] {
		case '-':
			neg = true
			fallthrough
		case '+':
			i++
		}
		if len(b) != i {
			var n int64
			for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
				n = int64(b[i]-'0') + n*10
			}
			if len(b) == i {
				if neg {
					n = -n
				}
				return n, nil
			}
		}
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// UpperASCII returns s with ASCII letters mapped to upper case.
// Non-ASCII bytes are left alone, unlike strings.ToUpper.
func UpperASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if c := b[j]; c >= 'a' && c <= 'z' {
					b[j] = c - 'a' + 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
