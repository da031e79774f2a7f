package version

import (
	"fmt"
)

// Define respfuzz version consts
const (
	Major = 0
	Minor = 3
	Patch = 0
)

var vstr = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

// Str returns the version string.
func Str() string {
	return vstr
}
