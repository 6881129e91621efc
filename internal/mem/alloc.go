package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer (one cache line).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedFloat64 allocates a zeroed float64 slice of the given length with 64-byte alignment.
func AllocAlignedFloat64(n int) []float64 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 8)
	ptr := unsafe.Pointer(&byteSlice[0])    //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedFloat32 allocates a zeroed float32 slice of the given length with 64-byte alignment.
func AllocAlignedFloat32(n int) []float32 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 4)
	ptr := unsafe.Pointer(&byteSlice[0])    //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// AddrOf returns the address of the first element of s, or 0 for an empty slice.
func AddrOf(s []float64) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0])) //nolint:gosec // address is handed to the host, never dereferenced here
}
