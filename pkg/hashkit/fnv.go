package hashkit

const (
	prime32  = 16777619
	offset32 = 2166136261
)

func hashFnv1a32(key []byte) uint32 {
	var hash uint32 = offset32
	for _, c := range key {
		hash ^= uint32(c)
		hash *= prime32
	}
	return hash
}

func hashFnv132(key []byte) uint32 {
	var hash uint32 = offset32
	for _, c := range key {
		hash *= prime32
		hash ^= uint32(c)
	}
	return hash
}
