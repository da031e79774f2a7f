package hashkit

import "github.com/pkg/errors"

// constants defines
const (
	HashMethodFnv1a32   = "fnv1a_32"
	HashMethodFnv132    = "fnv1_32"
	HashMethodOneOnTime = "one_on_time"
	HashMethodMurmur    = "murmur"
)

// ErrUnknownMethod is returned for a hash method name that is not supported.
var ErrUnknownMethod = errors.New("unknown hash method")

// Func hashes a key into 32 bits.
type Func func(key []byte) uint32

// New returns the hash function named by method. An empty method is murmur.
func New(method string) (Func, error) {
	switch method {
	case HashMethodMurmur, "":
		return hashMurmur, nil
	case HashMethodFnv1a32: // fnv family
		return hashFnv1a32, nil
	case HashMethodFnv132:
		return hashFnv132, nil
	case HashMethodOneOnTime: // others
		return hashOneOnTime, nil
	}
	return nil, errors.Wrap(ErrUnknownMethod, method)
}

// Valid reports whether method names a supported hash.
func Valid(method string) bool {
	_, err := New(method)
	return err == nil
}
