package hashkit

import "github.com/aviddiviner/go-murmur"

func hashMurmur(key []byte) uint32 {
	var uklen = uint32(len(key))
	var seed = 0xdeadbeef * uklen
	return murmur.MurmurHash2(key, seed)
}
