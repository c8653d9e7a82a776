//go:build !debug

package tinystr

// assertIndex is a no-op in production.
// Enable with -tags debug for runtime bounds checks.
func assertIndex(string, int, int) {}
