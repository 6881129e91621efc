// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so host-visible buffers start on a
// cache line and vector loads never straddle one at the buffer head.
package mem
