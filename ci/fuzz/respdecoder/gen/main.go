package main

import (
	"github.com/dvyukov/go-fuzz/gen"
)

var zdata = []string{
	"*3\r\n$3\r\nSET\r\n$1\r\na\r\n$1\r\nb\r\n",
	"+OK\r\n",
	"-ERR unknown command 'FOO'\r\n",
	":-42\r\n",
	"$-1\r\n",
	"*-1\r\n",
	"*0\r\n",
	"$5\r\nva\r\nl\r\n",
	"*2\r\n*2\r\n:1\r\n$1\r\nx\r\n*1\r\n+nested\r\n",
	"$10\r\nabc",
}

func main() {
	for _, data := range zdata {
		gen.Emit([]byte(data), nil, true)
	}
}
