package memory

import (
	"fmt"
	"log/slog"
	"runtime/metrics"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecsim/internal/conv"
	"github.com/hupe1980/vecsim/internal/mem"
)

// ElementSize is the byte size of one buffer element (float64).
const ElementSize = 8

// Handle is an opaque reference to a buffer: generation<<32 | slot.
// The zero Handle is never valid.
//
// Generations wrap within MaxGeneration, so every Handle stays below 2^53
// and survives a round trip through a float64 (a JavaScript number).
type Handle uint64

// MaxGeneration is the largest generation a slot reaches before wrapping to 1.
const MaxGeneration = 1<<21 - 1

func makeHandle(gen, slot uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot))
}

func (h Handle) slot() uint32 { return uint32(h) }
func (h Handle) gen() uint32  { return uint32(h >> 32) }

// Stats tracks allocator usage.
type Stats struct {
	LiveBuffers uint64 // Current: buffers allocated and not yet freed
	LiveBytes   uint64 // Current: bytes held by live buffers
	TotalAllocs uint64 // Historical: successful allocations
	TotalFrees  uint64 // Historical: successful frees
}

type slot struct {
	data []float64
	gen  uint32
}

// Allocator hands out host-visible float64 buffers.
type Allocator struct {
	mu       sync.Mutex
	slots    []slot
	recycled []uint32
	live     *roaring.Bitmap
	maxBytes uint64
	stats    Stats
	logger   *slog.Logger
}

// New creates an Allocator.
func New(optFns ...Option) *Allocator {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Allocator{
		live:     roaring.New(),
		maxBytes: o.maxBytes,
		logger:   o.logger,
	}
}

// Allocate reserves a zeroed buffer of elementCount float64 values.
func (a *Allocator) Allocate(elementCount int) (Handle, error) {
	if elementCount <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, elementCount)
	}
	size, err := conv.MulInt(elementCount, ElementSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	bytes := uint64(size)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.maxBytes > 0 && a.stats.LiveBytes+bytes > a.maxBytes {
		return 0, fmt.Errorf("%w: %d live + %d requested > %d", ErrMemoryLimit, a.stats.LiveBytes, bytes, a.maxBytes)
	}

	data := mem.AllocAlignedFloat64(elementCount)

	var idx uint32
	if n := len(a.recycled); n > 0 {
		idx = a.recycled[n-1]
		a.recycled = a.recycled[:n-1]
	} else {
		idx, err = conv.IntToUint32(len(a.slots))
		if err != nil {
			return 0, fmt.Errorf("memory: slot table full: %w", err)
		}
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen > MaxGeneration {
		s.gen = 1
	}
	s.data = data

	a.live.Add(idx)
	a.stats.LiveBuffers++
	a.stats.LiveBytes += bytes
	a.stats.TotalAllocs++

	h := makeHandle(s.gen, idx)
	a.logger.Debug("buffer allocated", "handle", uint64(h), "elements", elementCount)
	return h, nil
}

// lookup returns the live slot for h. Caller must hold a.mu.
func (a *Allocator) lookup(h Handle) (*slot, error) {
	idx := h.slot()
	if h.gen() == 0 || !a.live.Contains(idx) || int(idx) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidHandle, uint64(h))
	}
	s := &a.slots[idx]
	if s.gen != h.gen() {
		return nil, fmt.Errorf("%w: %#x (stale generation)", ErrInvalidHandle, uint64(h))
	}
	return s, nil
}

// Float64s returns the buffer behind h without copying.
// The slice is only valid until h is freed.
func (a *Allocator) Float64s(h Handle) ([]float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.data, nil
}

// Addr returns the address of the first element of the buffer behind h.
// On js/wasm this is an offset into the module's linear memory.
func (a *Allocator) Addr(h Handle) (uintptr, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(h)
	if err != nil {
		return 0, err
	}
	return mem.AddrOf(s.data), nil
}

// Free releases the buffer behind h. elementCount must match Allocate.
func (a *Allocator) Free(h Handle, elementCount int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(h)
	if err != nil {
		a.logger.Debug("free rejected", "handle", uint64(h), "error", err)
		return err
	}
	if len(s.data) != elementCount {
		err := fmt.Errorf("%w: allocated %d, freed with %d", ErrSizeMismatch, len(s.data), elementCount)
		a.logger.Debug("free rejected", "handle", uint64(h), "error", err)
		return err
	}

	idx := h.slot()
	s.data = nil
	a.live.Remove(idx)
	a.recycled = append(a.recycled, idx)

	a.stats.LiveBuffers--
	a.stats.LiveBytes -= uint64(elementCount) * ElementSize
	a.stats.TotalFrees++

	a.logger.Debug("buffer freed", "handle", uint64(h), "elements", elementCount)
	return nil
}

// Len returns the element count of the buffer behind h.
func (a *Allocator) Len(h Handle) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(h)
	if err != nil {
		return 0, err
	}
	return len(s.data), nil
}

// Stats returns a snapshot of allocator usage.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// MemorySize reports the total bytes the Go runtime has mapped for this
// process. Informational only.
func (a *Allocator) MemorySize() uint64 {
	return MemorySize()
}

const totalMemoryMetric = "/memory/classes/total:bytes"

// MemorySize reports the total bytes the Go runtime has mapped for this
// process. On js/wasm this approximates the module's linear-memory size:
// the runtime never maps more than the linear memory holds, but the host's
// WebAssembly.Memory buffer may be larger by pages the runtime has not used.
func MemorySize() uint64 {
	sample := []metrics.Sample{{Name: totalMemoryMetric}}
	metrics.Read(sample)
	if sample[0].Value.Kind() != metrics.KindUint64 {
		return 0
	}
	return sample[0].Value.Uint64()
}
