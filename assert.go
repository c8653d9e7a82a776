//go:build debug

package tinystr

import "fmt"

// assertIndex panics if idx is outside [0, length).
// Only enabled with -tags debug.
func assertIndex(method string, idx, length int) {
	if idx < 0 || idx >= length {
		panic(fmt.Sprintf("%s: index %d out of range [0, %d)", method, idx, length))
	}
}
