package hashkit

func hashOneOnTime(key []byte) uint32 {
	var value uint32
	for _, c := range key {
		value += uint32(c)
		value += value << 10
		value ^= value >> 6
	}

	value += value << 3
	value ^= value >> 11
	value += value << 15
	return value
}
