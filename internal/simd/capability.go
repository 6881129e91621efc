package simd

import (
	"os"
	"strings"
)

// Kernel identifies a float32 cosine implementation.
type Kernel uint8

const (
	// Scalar is the sequential single-precision loop.
	Scalar Kernel = iota
	// Lanes4 accumulates four lanes in parallel with a scalar remainder.
	Lanes4
	// Accelerated uses hardware vector instructions through vek32.
	Accelerated
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Lanes4:
		return "lanes4"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return Scalar, true
	case "lanes4":
		return Lanes4, true
	case "accelerated", "simd":
		return Accelerated, true
	default:
		return Scalar, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "VECSIM_SIMD"

// Package-level state, initialized once at package init.
var (
	activeKernel Kernel
	hasOverride  bool

	// CPU feature flags (set by platform-specific init)
	hasAVX2  bool // x86-64 AVX2 + FMA
	hasASIMD bool // ARM64 NEON

	// hasVek is true when vek32 reports hardware acceleration (set in accel*.go).
	hasVek bool

	cosineImpl = cosineLanes4
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	hasVek = vekAccelerated()

	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernel(override); ok && Available(k) {
			hasOverride = true
			use(k)
			return
		}
		// Invalid or unavailable override - fall through to auto-detection
	}

	use(selectBest())
}

func selectBest() Kernel {
	if Available(Accelerated) {
		return Accelerated
	}
	return Lanes4
}

func use(k Kernel) {
	activeKernel = k
	cosineImpl = kernelFunc(k)
}

func kernelFunc(k Kernel) func(a, b []float32) float32 {
	switch k {
	case Accelerated:
		return cosineAccelerated
	case Lanes4:
		return cosineLanes4
	default:
		return cosineScalar
	}
}

// Available reports whether k can run on this CPU.
func Available(k Kernel) bool {
	switch k {
	case Scalar, Lanes4:
		return true
	case Accelerated:
		return hasVek && (hasAVX2 || hasASIMD)
	default:
		return false
	}
}

// Active returns the kernel selected at startup.
func Active() Kernel {
	return activeKernel
}

// IsOverridden returns true if VECSIM_SIMD selected the active kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 returns true if x86-64 AVX2+FMA is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// Features lists the detected CPU features relevant to kernel selection.
func Features() []string {
	var out []string
	if hasAVX2 {
		out = append(out, "avx2", "fma")
	}
	if hasASIMD {
		out = append(out, "asimd")
	}
	if hasVek {
		out = append(out, "vek")
	}
	return out
}
