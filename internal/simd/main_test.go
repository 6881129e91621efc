package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints kernel diagnostic information.
// This helps CI identify which cosine implementation is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active kernel: %s\n", Active())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Features: %v\n", Features())
	fmt.Printf("===============================\n\n")

	os.Exit(m.Run())
}
