package main

import (
	"github.com/dvyukov/go-fuzz/gen"
)

var zdata = []string{
	"GET foo\nBADCMD x\n",
	"SET key:1 value EX 10\nINCR counter\nLRANGE list 0 -1\n",
	"ACL CAT dangerous\nCLIENT LIST\n",
	"hset h f v\nHGETALL h\n",
	"\x00\x01\x02\x03PING\n",
}

func main() {
	for _, data := range zdata {
		gen.Emit([]byte(data), nil, true)
	}
}
