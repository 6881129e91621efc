// Package memory manages host-visible float64 buffers.
//
// A host on the other side of a foreign-function boundary (for example a
// JavaScript runtime driving the js/wasm build) asks the Allocator for a
// buffer, writes vector data straight into it, passes it to the engine and
// finally frees it. The Allocator hands out opaque Handles instead of raw
// pointers:
//
//   - every handle carries a generation, so a freed or recycled handle is
//     rejected rather than aliasing a new buffer
//   - Free must name the element count used at allocation; a mismatch is
//     reported and the buffer stays live
//   - live handles are tracked in a roaring bitmap, so double frees are
//     detected
//
// Buffers are 64-byte aligned and zero-initialized.
package memory
